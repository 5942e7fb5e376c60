package services

import (
	"time"

	"daybook/internal/domain"
)

const clockLayout = "15:04"

// ParseDateTime combines a calendar date with an "HH:MM" wall-clock time.
// A malformed time collapses to midnight, which keeps a bad row from ever
// reporting a phantom overlap longer than its day.
func ParseDateTime(date domain.Date, clock string) time.Time {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return date.Time
	}
	return date.Time.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
}

func eventRange(e *domain.Event) (start, end time.Time) {
	return ParseDateTime(e.Date, e.StartTime), ParseDateTime(e.Date, e.EndTime)
}

// Overlapping reports whether the two events' time ranges intersect.
// Touching boundaries (one ends exactly when the other starts) do not
// count as an overlap.
func Overlapping(a, b *domain.Event) bool {
	aStart, aEnd := eventRange(a)
	bStart, bEnd := eventRange(b)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindOverlapping returns the stored events whose time range intersects
// the candidate's, excluding the candidate itself when it is already
// persisted.
func FindOverlapping(candidate *domain.Event, events []*domain.Event) []*domain.Event {
	var out []*domain.Event
	for _, e := range events {
		if candidate.ID != "" && e.ID == candidate.ID {
			continue
		}
		if Overlapping(e, candidate) {
			out = append(out, e)
		}
	}
	return out
}
