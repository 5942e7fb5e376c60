// Package notify scans the event pool for occurrences whose configured
// lead time has been reached and reports each of them once.
package notify

import (
	"fmt"
	"time"

	"daybook/internal/domain"
)

// Upcoming returns the events whose start lies within their notification
// lead time from now, excluding ids already reported. Events that have
// already started are never reported.
func Upcoming(events []*domain.Event, now time.Time, reported map[string]struct{}) []*domain.Event {
	var out []*domain.Event
	for _, e := range events {
		if _, done := reported[e.ID]; done {
			continue
		}
		start := e.Date.Time.Add(clockOffset(e.StartTime))
		lead := start.Sub(now).Minutes()
		if lead > 0 && lead <= float64(e.NotificationTime) {
			out = append(out, e)
		}
	}
	return out
}

// Message renders the user-facing notification line for an event.
func Message(e *domain.Event) string {
	return fmt.Sprintf("%q starts in %d minutes", e.Title, e.NotificationTime)
}

func clockOffset(clock string) time.Duration {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}
