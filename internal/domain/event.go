package domain

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the referenced event does not exist.
	ErrNotFound = errors.New("event not found")
	// ErrInvalidInput is returned for requests that fail validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrFetchFailed wraps failures to list events from storage.
	ErrFetchFailed = errors.New("fetching events failed")
	// ErrPersistFailed wraps failures of a create, update, or delete call.
	ErrPersistFailed = errors.New("persisting event failed")
	// ErrPartialSeriesFailure reports a per-instance series batch in which
	// some but not all calls succeeded. Completed calls are never rolled
	// back; the next full refresh reflects whichever calls took effect.
	ErrPartialSeriesFailure = errors.New("series batch partially failed")
)

// RepeatType classifies how an event recurs.
type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
	RepeatYearly  RepeatType = "yearly"
)

// RepeatInfo describes an event's recurrence rule. A type of "none" or a
// non-positive interval means the event does not recur, regardless of the
// other fields. SeriesID, when set, identifies the recurring series every
// instance of one expansion belongs to.
type RepeatInfo struct {
	Type     RepeatType `json:"type"`
	Interval int        `json:"interval"`
	EndDate  *Date      `json:"endDate,omitempty"`
	SeriesID string     `json:"id,omitempty"`
}

// Known reports whether t is one of the defined repeat types. The empty
// string counts as known and means the same as RepeatNone.
func (t RepeatType) Known() bool {
	switch t {
	case "", RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly:
		return true
	}
	return false
}

// Recurring reports whether the rule actually repeats. Unknown types never
// recur; they are rejected at the boundary, and treating them as repeating
// here would leave no way to advance a date cursor.
func (r RepeatInfo) Recurring() bool {
	switch r.Type {
	case RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly:
		return r.Interval > 0
	}
	return false
}

// Event is one concrete dated occurrence, standalone or generated from a
// recurrence rule. An event with an empty ID is a template that has not
// been persisted yet. All instances expanded from one template share every
// field except Date and ID.
type Event struct {
	ID               string     `json:"id,omitempty"`
	Title            string     `json:"title"`
	Date             Date       `json:"date"`
	StartTime        string     `json:"startTime"`
	EndTime          string     `json:"endTime"`
	Description      string     `json:"description"`
	Location         string     `json:"location"`
	Category         string     `json:"category"`
	Repeat           RepeatInfo `json:"repeat"`
	NotificationTime int        `json:"notificationTime"` // minutes before start
}

// SeriesUpdate is the shared-field payload applied when a whole series is
// edited. Per-instance dates and times are never part of it. Nil fields are
// left untouched.
type SeriesUpdate struct {
	Title            *string `json:"title,omitempty"`
	Description      *string `json:"description,omitempty"`
	Location         *string `json:"location,omitempty"`
	Category         *string `json:"category,omitempty"`
	NotificationTime *int    `json:"notificationTime,omitempty"`
}

// Apply copies the set fields of the update onto e.
func (u SeriesUpdate) Apply(e *Event) {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Location != nil {
		e.Location = *u.Location
	}
	if u.Category != nil {
		e.Category = *u.Category
	}
	if u.NotificationTime != nil {
		e.NotificationTime = *u.NotificationTime
	}
}

// EventRepository is the persistence collaborator for events and series.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, event *Event) error
	CreateBatch(ctx context.Context, events []*Event) error
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
	UpdateSeries(ctx context.Context, seriesID string, update SeriesUpdate) error
	DeleteSeries(ctx context.Context, seriesID string) error
}
