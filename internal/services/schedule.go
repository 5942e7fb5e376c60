package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"daybook/internal/domain"
	"daybook/internal/recurrence"
)

type scheduleService struct {
	repo           domain.EventRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewScheduleService returns the calendar core: creation with recurrence
// expansion, series resolution, and the single-vs-series edit/delete
// orchestration. It keeps no event state of its own; the full list is
// re-read from the repository after every mutation.
func NewScheduleService(repo domain.EventRepository, logger *slog.Logger, timeout time.Duration) domain.EventService {
	return &scheduleService{
		repo:           repo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *scheduleService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.listEvents(ctx)
}

func (s *scheduleService) listEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *scheduleService) SearchEvents(ctx context.Context, term string, view domain.CalendarView, ref domain.Date) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.listEvents(ctx)
	if err != nil {
		return nil, err
	}
	return FilterEvents(events, term, view, ref), nil
}

// CreateEvent expands the template into its instances and persists them.
// Every instance of a recurring expansion is stamped with a fresh series
// identifier so later edits and deletes resolve membership exactly instead
// of falling back to structural matching.
func (s *scheduleService) CreateEvent(ctx context.Context, template *domain.Event) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if template.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if !template.Repeat.Type.Known() {
		return nil, fmt.Errorf("%w: unknown repeat type %q", domain.ErrInvalidInput, template.Repeat.Type)
	}

	instances := recurrence.Expand(*template)
	if len(instances) == 0 {
		// A recurrence whose end date precedes the event's own date
		// describes nothing.
		return nil, fmt.Errorf("%w: recurrence ends before it starts", domain.ErrInvalidInput)
	}
	created := make([]*domain.Event, len(instances))
	if len(instances) == 1 && !template.Repeat.Recurring() {
		e := instances[0]
		if err := s.repo.Create(ctx, &e); err != nil {
			return nil, fmt.Errorf("%w: create event: %v", domain.ErrPersistFailed, err)
		}
		created[0] = &e
		return created, nil
	}

	seriesID := uuid.NewString()
	for i := range instances {
		instances[i].Repeat.SeriesID = seriesID
		created[i] = &instances[i]
	}
	if err := s.repo.CreateBatch(ctx, created); err != nil {
		return nil, fmt.Errorf("%w: create series: %v", domain.ErrPersistFailed, err)
	}
	return created, nil
}

// CreateEvents bulk-creates already-expanded templates as given. Callers
// that want expansion and series stamping use CreateEvent.
func (s *scheduleService) CreateEvents(ctx context.Context, templates []*domain.Event) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if len(templates) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := s.repo.CreateBatch(ctx, templates); err != nil {
		return nil, fmt.Errorf("%w: create events: %v", domain.ErrPersistFailed, err)
	}
	return templates, nil
}

func (s *scheduleService) CheckOverlap(ctx context.Context, candidate *domain.Event) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.listEvents(ctx)
	if err != nil {
		return nil, err
	}
	return FindOverlapping(candidate, events), nil
}

func (s *scheduleService) FindRelated(ctx context.Context, eventID string) (domain.SeriesRef, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.listEvents(ctx)
	if err != nil {
		return domain.SeriesRef{}, err
	}
	target := findByID(events, eventID)
	if target == nil {
		return domain.SeriesRef{}, domain.ErrNotFound
	}
	return recurrence.FindRelated(target, events), nil
}

// RequestEdit applies an edited instance according to the caller's scope
// choice. Editing a single instance detaches it from its series: the
// persisted copy has its recurrence rule reset to none/0. A whole-series
// edit carries only the shared fields; per-instance dates are untouched.
func (s *scheduleService) RequestEdit(ctx context.Context, updated *domain.Event, choice domain.SeriesChoice) (*domain.ApplyResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	pool, err := s.listEvents(ctx)
	if err != nil {
		return nil, err
	}

	original := findByID(pool, updated.ID)
	if original == nil {
		// The stored copy is gone; apply as a plain single update.
		if err := s.repo.Update(ctx, updated); err != nil {
			return nil, fmt.Errorf("%w: update event: %v", domain.ErrPersistFailed, err)
		}
		return s.refreshed(ctx, nil)
	}

	ref := recurrence.FindRelated(original, pool)
	if ref.Kind == domain.SeriesRefNone || choice == domain.ChoiceThisEvent {
		detached := *updated
		detached.Repeat = domain.RepeatInfo{Type: domain.RepeatNone, Interval: 0}
		if err := s.repo.Update(ctx, &detached); err != nil {
			return nil, fmt.Errorf("%w: update event: %v", domain.ErrPersistFailed, err)
		}
		return s.refreshed(ctx, nil)
	}

	if choice == domain.ChoiceUnspecified {
		return &domain.ApplyResult{
			Outcome: domain.OutcomeAwaitingChoice,
			Related: ref.Members,
			Events:  pool,
		}, nil
	}

	update := sharedFieldsOf(updated)
	if ref.Kind == domain.SeriesRefByExplicitID {
		if err := s.repo.UpdateSeries(ctx, ref.SeriesID, update); err != nil {
			return nil, fmt.Errorf("%w: update series: %v", domain.ErrPersistFailed, err)
		}
		return s.refreshed(ctx, nil)
	}

	// No stored identifier: one update call per member, applying the same
	// shared-field payload to each. No atomicity across the batch.
	batch := s.dispatch(ctx, ref.Members, func(ctx context.Context, member *domain.Event) error {
		patched := *member
		update.Apply(&patched)
		return s.repo.Update(ctx, &patched)
	})
	return s.finishBatch(ctx, "series edit", batch)
}

// RequestDelete deletes the target instance or its whole series, looking
// the stored instance up by id first so resolution always runs against
// ground truth.
func (s *scheduleService) RequestDelete(ctx context.Context, eventID string, choice domain.SeriesChoice) (*domain.ApplyResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	pool, err := s.listEvents(ctx)
	if err != nil {
		return nil, err
	}

	target := findByID(pool, eventID)
	if target == nil {
		return nil, domain.ErrNotFound
	}

	ref := recurrence.FindRelated(target, pool)
	if ref.Kind == domain.SeriesRefNone || choice == domain.ChoiceThisEvent {
		if err := s.repo.Delete(ctx, eventID); err != nil {
			return nil, fmt.Errorf("%w: delete event: %v", domain.ErrPersistFailed, err)
		}
		return s.refreshed(ctx, nil)
	}

	if choice == domain.ChoiceUnspecified {
		return &domain.ApplyResult{
			Outcome: domain.OutcomeAwaitingChoice,
			Related: ref.Members,
			Events:  pool,
		}, nil
	}

	if ref.Kind == domain.SeriesRefByExplicitID {
		if err := s.repo.DeleteSeries(ctx, ref.SeriesID); err != nil {
			return nil, fmt.Errorf("%w: delete series: %v", domain.ErrPersistFailed, err)
		}
		return s.refreshed(ctx, nil)
	}

	batch := s.dispatch(ctx, ref.Members, func(ctx context.Context, member *domain.Event) error {
		return s.repo.Delete(ctx, member.ID)
	})
	return s.finishBatch(ctx, "series delete", batch)
}

func (s *scheduleService) UpdateSeries(ctx context.Context, seriesID string, update domain.SeriesUpdate) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.repo.UpdateSeries(ctx, seriesID, update); err != nil {
		return nil, fmt.Errorf("%w: update series: %v", domain.ErrPersistFailed, err)
	}
	return s.listEvents(ctx)
}

func (s *scheduleService) DeleteSeries(ctx context.Context, seriesID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.repo.DeleteSeries(ctx, seriesID); err != nil {
		return nil, fmt.Errorf("%w: delete series: %v", domain.ErrPersistFailed, err)
	}
	return s.listEvents(ctx)
}

// dispatch fires one call per member concurrently and waits for all of
// them. Calls that already completed stay applied regardless of later
// failures; there is no rollback and no retry.
func (s *scheduleService) dispatch(ctx context.Context, members []*domain.Event, fn func(context.Context, *domain.Event) error) domain.BatchResult {
	items := make([]domain.BatchItem, len(members))
	var wg sync.WaitGroup
	for i, member := range members {
		wg.Add(1)
		go func(i int, member *domain.Event) {
			defer wg.Done()
			items[i] = domain.BatchItem{EventID: member.ID, Err: fn(ctx, member)}
		}(i, member)
	}
	wg.Wait()
	return domain.BatchResult{Items: items}
}

// finishBatch logs per-item failures, refreshes the pool, and reports
// partial failure without blocking the refresh.
func (s *scheduleService) finishBatch(ctx context.Context, op string, batch domain.BatchResult) (*domain.ApplyResult, error) {
	for _, item := range batch.Failed() {
		s.logger.Error(op+" call failed", "event_id", item.EventID, "err", item.Err)
	}
	result, err := s.refreshed(ctx, &batch)
	if err != nil {
		return nil, err
	}
	if !batch.OK() {
		return result, fmt.Errorf("%s: %w", op, domain.ErrPartialSeriesFailure)
	}
	return result, nil
}

func (s *scheduleService) refreshed(ctx context.Context, batch *domain.BatchResult) (*domain.ApplyResult, error) {
	events, err := s.listEvents(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.ApplyResult{
		Outcome: domain.OutcomeApplied,
		Batch:   batch,
		Events:  events,
	}, nil
}

func findByID(events []*domain.Event, id string) *domain.Event {
	for _, e := range events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func sharedFieldsOf(e *domain.Event) domain.SeriesUpdate {
	return domain.SeriesUpdate{
		Title:            &e.Title,
		Description:      &e.Description,
		Location:         &e.Location,
		Category:         &e.Category,
		NotificationTime: &e.NotificationTime,
	}
}
