package domain

import "context"

// SeriesRefKind tags how series membership was established.
type SeriesRefKind int

const (
	// SeriesRefNone means the target belongs to no series with more than
	// one member; no single-vs-series choice applies.
	SeriesRefNone SeriesRefKind = iota
	// SeriesRefByExplicitID means membership was resolved through the
	// series identifier stored on every instance. Authoritative and exact.
	SeriesRefByExplicitID
	// SeriesRefByStructuralMatch means membership was inferred by comparing
	// recurrence rule and content fields. A heuristic for legacy data with
	// no stored identifier: two independently created events with identical
	// content are indistinguishable from one series.
	SeriesRefByStructuralMatch
)

// SeriesRef is the resolved series membership for one target instance.
// Members includes the target itself and is empty when Kind is
// SeriesRefNone.
type SeriesRef struct {
	Kind     SeriesRefKind
	SeriesID string
	Members  []*Event
}

// SeriesChoice is the user's answer to the "this event or the whole
// series?" dialog.
type SeriesChoice int

const (
	// ChoiceUnspecified means the caller has not answered yet. An edit or
	// delete of a multi-member series with this choice is not applied;
	// the orchestrator reports OutcomeAwaitingChoice instead.
	ChoiceUnspecified SeriesChoice = iota
	// ChoiceThisEvent applies the operation to the target instance only.
	ChoiceThisEvent
	// ChoiceWholeSeries applies the operation to every series member.
	ChoiceWholeSeries
)

// Outcome is the terminal state of an edit or delete request.
type Outcome int

const (
	// OutcomeApplied means the operation was persisted and the list
	// refreshed.
	OutcomeApplied Outcome = iota
	// OutcomeAwaitingChoice means the target belongs to a multi-member
	// series and the caller must choose a scope before anything is
	// persisted.
	OutcomeAwaitingChoice
)

// BatchItem is the outcome of one call in a per-instance series batch.
type BatchItem struct {
	EventID string
	Err     error
}

// BatchResult carries the per-item outcomes of a concurrent series batch.
// There is no atomicity: items that succeeded stay applied even when
// others fail, and nothing is retried.
type BatchResult struct {
	Items []BatchItem
}

// OK reports whether every call in the batch succeeded.
func (b BatchResult) OK() bool {
	for _, it := range b.Items {
		if it.Err != nil {
			return false
		}
	}
	return true
}

// Failed returns the items whose call failed.
func (b BatchResult) Failed() []BatchItem {
	var out []BatchItem
	for _, it := range b.Items {
		if it.Err != nil {
			out = append(out, it)
		}
	}
	return out
}

// ApplyResult is what an edit or delete request resolves to. Events is the
// freshly listed pool after any mutation; Related is populated when the
// outcome is OutcomeAwaitingChoice so the caller can present the dialog;
// Batch is set when a per-instance series batch was dispatched.
type ApplyResult struct {
	Outcome Outcome
	Related []*Event
	Batch   *BatchResult
	Events  []*Event
}

// CalendarView selects the date window for filtered listings.
type CalendarView string

const (
	ViewAll   CalendarView = ""
	ViewWeek  CalendarView = "week"
	ViewMonth CalendarView = "month"
)

// EventService is the calendar core exposed to the delivery layer.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	SearchEvents(ctx context.Context, term string, view CalendarView, ref Date) ([]*Event, error)
	CreateEvent(ctx context.Context, template *Event) ([]*Event, error)
	CreateEvents(ctx context.Context, templates []*Event) ([]*Event, error)
	CheckOverlap(ctx context.Context, candidate *Event) ([]*Event, error)
	FindRelated(ctx context.Context, eventID string) (SeriesRef, error)
	RequestEdit(ctx context.Context, updated *Event, choice SeriesChoice) (*ApplyResult, error)
	RequestDelete(ctx context.Context, eventID string, choice SeriesChoice) (*ApplyResult, error)
	UpdateSeries(ctx context.Context, seriesID string, update SeriesUpdate) ([]*Event, error)
	DeleteSeries(ctx context.Context, seriesID string) ([]*Event, error)
}
