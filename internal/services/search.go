package services

import (
	"strings"

	"daybook/internal/domain"
)

// WeekRange returns the Sunday-through-Saturday window containing ref.
func WeekRange(ref domain.Date) (start, end domain.Date) {
	start = ref.AddDays(-int(ref.Weekday()))
	return start, start.AddDays(6)
}

// MonthRange returns the first and last day of the month containing ref.
func MonthRange(ref domain.Date) (start, end domain.Date) {
	start = domain.NewDate(ref.Year(), ref.Month(), 1)
	end = domain.NewDate(ref.Year(), ref.Month()+1, 1).AddDays(-1)
	return start, end
}

func inRange(d, start, end domain.Date) bool {
	return !d.Before(start.Time) && !d.After(end.Time)
}

func containsTerm(target, term string) bool {
	return strings.Contains(strings.ToLower(target), strings.ToLower(term))
}

// FilterEvents narrows events to those matching the search term in title,
// description, or location, then to the week or month containing ref
// depending on the view. An empty term matches everything; ViewAll skips
// the date restriction.
func FilterEvents(events []*domain.Event, term string, view domain.CalendarView, ref domain.Date) []*domain.Event {
	matched := events
	if term != "" {
		matched = nil
		for _, e := range events {
			if containsTerm(e.Title, term) || containsTerm(e.Description, term) || containsTerm(e.Location, term) {
				matched = append(matched, e)
			}
		}
	}

	var start, end domain.Date
	switch view {
	case domain.ViewWeek:
		start, end = WeekRange(ref)
	case domain.ViewMonth:
		start, end = MonthRange(ref)
	default:
		return matched
	}

	var out []*domain.Event
	for _, e := range matched {
		if inRange(e.Date, start, end) {
			out = append(out, e)
		}
	}
	return out
}
