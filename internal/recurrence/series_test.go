package recurrence

import (
	"testing"
	"time"

	"daybook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weeklyEvent(id, title, date string) *domain.Event {
	d, _ := domain.ParseDate(date)
	return &domain.Event{
		ID:        id,
		Title:     title,
		Date:      d,
		StartTime: "10:00",
		EndTime:   "11:00",
		Category:  "work",
		Repeat:    domain.RepeatInfo{Type: domain.RepeatWeekly, Interval: 1},
	}
}

func TestFindRelatedNonRecurringTarget(t *testing.T) {
	target := weeklyEvent("1", "sync", "2024-01-01")
	target.Repeat = domain.RepeatInfo{Type: domain.RepeatNone, Interval: 0}
	pool := []*domain.Event{target, weeklyEvent("2", "sync", "2024-01-08")}

	ref := FindRelated(target, pool)
	assert.Equal(t, domain.SeriesRefNone, ref.Kind)
	assert.Empty(t, ref.Members)
}

func TestFindRelatedSeriesOfOne(t *testing.T) {
	target := weeklyEvent("1", "sync", "2024-01-01")
	pool := []*domain.Event{target, weeklyEvent("2", "other title", "2024-01-08")}

	ref := FindRelated(target, pool)
	assert.Equal(t, domain.SeriesRefNone, ref.Kind)
	assert.Empty(t, ref.Members)
}

func TestFindRelatedStructuralMatch(t *testing.T) {
	target := weeklyEvent("1", "sync", "2024-01-01")
	sibling := weeklyEvent("2", "sync", "2024-01-08")
	other := weeklyEvent("3", "sync", "2024-01-15")
	other.Location = "room B"
	pool := []*domain.Event{target, sibling, other}

	ref := FindRelated(target, pool)
	assert.Equal(t, domain.SeriesRefByStructuralMatch, ref.Kind)
	assert.Empty(t, ref.SeriesID)
	require.Len(t, ref.Members, 2)
	assert.Contains(t, ref.Members, target)
	assert.Contains(t, ref.Members, sibling)
}

func TestFindRelatedExplicitIDWinsOverStructure(t *testing.T) {
	target := weeklyEvent("1", "sync", "2024-01-01")
	target.Repeat.SeriesID = "series-a"
	sibling := weeklyEvent("2", "renamed after the fact", "2024-01-08")
	sibling.Repeat.SeriesID = "series-a"
	lookalike := weeklyEvent("3", "sync", "2024-01-15") // same content, no id
	pool := []*domain.Event{target, sibling, lookalike}

	ref := FindRelated(target, pool)
	assert.Equal(t, domain.SeriesRefByExplicitID, ref.Kind)
	assert.Equal(t, "series-a", ref.SeriesID)
	require.Len(t, ref.Members, 2)
	assert.NotContains(t, ref.Members, lookalike)
}

func TestFindRelatedExplicitIDSingleton(t *testing.T) {
	target := weeklyEvent("1", "sync", "2024-01-01")
	target.Repeat.SeriesID = "series-a"
	pool := []*domain.Event{target, weeklyEvent("2", "sync", "2024-01-08")}

	ref := FindRelated(target, pool)
	assert.Equal(t, domain.SeriesRefNone, ref.Kind)
}

func TestSameSeriesFieldSensitivity(t *testing.T) {
	base := weeklyEvent("1", "sync", "2024-01-01")

	tests := []struct {
		name   string
		mutate func(*domain.Event)
		same   bool
	}{
		{"identical apart from date and id", func(e *domain.Event) {
			e.ID = "2"
			e.Date = domain.NewDate(2024, time.January, 8)
		}, true},
		{"different title", func(e *domain.Event) { e.Title = "retro" }, false},
		{"different start time", func(e *domain.Event) { e.StartTime = "10:30" }, false},
		{"different end time", func(e *domain.Event) { e.EndTime = "12:00" }, false},
		{"different description", func(e *domain.Event) { e.Description = "agenda" }, false},
		{"different location", func(e *domain.Event) { e.Location = "room B" }, false},
		{"different category", func(e *domain.Event) { e.Category = "personal" }, false},
		{"different interval", func(e *domain.Event) { e.Repeat.Interval = 2 }, false},
		{"different repeat type", func(e *domain.Event) { e.Repeat.Type = domain.RepeatDaily }, false},
		{"different notification time is still the same series", func(e *domain.Event) {
			e.NotificationTime = 60
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := weeklyEvent("1", "sync", "2024-01-01")
			tt.mutate(other)
			assert.Equal(t, tt.same, SameSeries(base, other))
		})
	}
}
