package notify

import (
	"testing"
	"time"

	"daybook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventAt(id, date, start string, leadMinutes int) *domain.Event {
	d, _ := domain.ParseDate(date)
	return &domain.Event{
		ID:               id,
		Title:            "review",
		Date:             d,
		StartTime:        start,
		EndTime:          "23:59",
		NotificationTime: leadMinutes,
	}
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2024, time.March, 5, 9, 50, 0, 0, time.UTC)
	events := []*domain.Event{
		eventAt("inside-window", "2024-03-05", "10:00", 10),
		eventAt("outside-window", "2024-03-05", "12:00", 10),
		eventAt("already-started", "2024-03-05", "09:00", 10),
		eventAt("long-lead", "2024-03-05", "11:00", 120),
	}

	got := Upcoming(events, now, map[string]struct{}{})
	require.Len(t, got, 2)
	assert.Equal(t, "inside-window", got[0].ID)
	assert.Equal(t, "long-lead", got[1].ID)
}

func TestUpcomingSkipsReported(t *testing.T) {
	now := time.Date(2024, time.March, 5, 9, 55, 0, 0, time.UTC)
	events := []*domain.Event{eventAt("e1", "2024-03-05", "10:00", 10)}

	reported := map[string]struct{}{"e1": {}}
	assert.Empty(t, Upcoming(events, now, reported))

	assert.Len(t, Upcoming(events, now, map[string]struct{}{}), 1)
}

func TestUpcomingExactBoundary(t *testing.T) {
	now := time.Date(2024, time.March, 5, 9, 50, 0, 0, time.UTC)
	// Exactly at the lead boundary counts; exactly at start does not.
	atBoundary := eventAt("boundary", "2024-03-05", "10:00", 10)
	atStart := eventAt("starting", "2024-03-05", "09:50", 10)

	got := Upcoming([]*domain.Event{atBoundary, atStart}, now, map[string]struct{}{})
	require.Len(t, got, 1)
	assert.Equal(t, "boundary", got[0].ID)
}

func TestMessage(t *testing.T) {
	e := eventAt("e1", "2024-03-05", "10:00", 10)
	e.Title = "planning"
	assert.Equal(t, `"planning" starts in 10 minutes`, Message(e))
}
