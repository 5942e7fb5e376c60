package recurrence

import (
	"daybook/internal/domain"
)

// SameSeries reports whether two recurring instances carry the same rule
// (type, interval) and the same content in every field that is shared
// across a series. Dates and IDs are deliberately excluded: those are the
// only fields that vary between instances of one expansion.
func SameSeries(a, b *domain.Event) bool {
	return a.Repeat.Type == b.Repeat.Type &&
		a.Repeat.Interval == b.Repeat.Interval &&
		a.Title == b.Title &&
		a.StartTime == b.StartTime &&
		a.EndTime == b.EndTime &&
		a.Description == b.Description &&
		a.Location == b.Location &&
		a.Category == b.Category
}

// FindRelated resolves which instances in pool belong to the same logical
// series as target. When the target carries an explicit series identifier
// the match is exact; otherwise membership is inferred structurally via
// SameSeries. Either way, a non-recurring target or a "series" whose only
// member is the target itself resolves to SeriesRefNone: a series of one
// is never offered a single-vs-all choice.
func FindRelated(target *domain.Event, pool []*domain.Event) domain.SeriesRef {
	if target == nil || !target.Repeat.Recurring() {
		return domain.SeriesRef{Kind: domain.SeriesRefNone}
	}

	if sid := target.Repeat.SeriesID; sid != "" {
		var members []*domain.Event
		for _, e := range pool {
			if e.Repeat.SeriesID == sid {
				members = append(members, e)
			}
		}
		if len(members) <= 1 {
			return domain.SeriesRef{Kind: domain.SeriesRefNone}
		}
		return domain.SeriesRef{
			Kind:     domain.SeriesRefByExplicitID,
			SeriesID: sid,
			Members:  members,
		}
	}

	var members []*domain.Event
	for _, e := range pool {
		if e.Repeat.Recurring() && SameSeries(e, target) {
			members = append(members, e)
		}
	}
	if len(members) <= 1 {
		return domain.SeriesRef{Kind: domain.SeriesRefNone}
	}
	return domain.SeriesRef{
		Kind:    domain.SeriesRefByStructuralMatch,
		Members: members,
	}
}
