package recurrence

import (
	"daybook/internal/domain"
)

// Expand turns one event template into the ordered sequence of dated
// instances its recurrence rule describes. Every instance is a copy of the
// template with only the date varied; IDs are left empty for the
// persistence layer to assign.
//
// A template that does not recur (type "none", an unrecognized type, or
// interval <= 0) expands to exactly itself. Otherwise instances run from the template's date through
// the rule's end date, or through CapDate when no end date is set. The
// returned dates are strictly increasing and the template's own date is
// always the first element when it does not already exceed the limit.
func Expand(template domain.Event) []domain.Event {
	if !template.Repeat.Recurring() {
		return []domain.Event{template}
	}

	limit := CapDate
	if template.Repeat.EndDate != nil {
		limit = *template.Repeat.EndDate
	}

	anchorDay := template.Date.Day()
	anchorMonth := template.Date.Month()
	interval := template.Repeat.Interval

	var out []domain.Event
	cur := template.Date
	for !cur.After(limit.Time) {
		inst := template
		inst.Date = cur
		out = append(out, inst)

		switch template.Repeat.Type {
		case domain.RepeatDaily:
			cur = AddDays(cur, interval)
		case domain.RepeatWeekly:
			cur = AddWeeks(cur, interval)
		case domain.RepeatMonthly:
			cur = NextMonthly(cur, anchorDay, interval)
		case domain.RepeatYearly:
			cur = NextYearly(cur, anchorMonth, anchorDay, interval)
		default:
			// Recurring() admits only the four types above. Stop rather
			// than loop on a cursor that can never advance.
			return out
		}
	}
	return out
}
