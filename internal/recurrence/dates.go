// Package recurrence implements the calendar arithmetic behind recurring
// events: stepping a cursor date by calendar units, expanding one template
// into its dated instances, and resolving which stored instances belong to
// the same logical series.
package recurrence

import (
	"time"

	"daybook/internal/domain"
)

// CapDate bounds expansion of rules with no end date so an unterminated
// series can never generate instances forever.
var CapDate = domain.NewDate(2025, time.December, 30)

// AddDays shifts d by n calendar days.
func AddDays(d domain.Date, n int) domain.Date {
	return d.AddDays(n)
}

// AddWeeks shifts d by n calendar weeks.
func AddWeeks(d domain.Date, n int) domain.Date {
	return d.AddDays(7 * n)
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NextMonthly advances cur by interval months, anchored to the original
// day-of-month. A target month without the anchor day (day 31 in February,
// April, ...) yields no occurrence at all: the step lands on the anchor day
// of the month after it instead of clamping to the month's last day, so
// e.g. a Jan 31 anchor goes Jan 31 -> Mar 31 with no February instance.
func NextMonthly(cur domain.Date, anchorDay, interval int) domain.Date {
	year := cur.Year()
	month := cur.Month() + time.Month(interval)
	// time.Month arithmetic can leave the range 1..12; normalize through
	// time.Date below, but do the day check against the normalized month.
	norm := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	year, month = norm.Year(), norm.Month()
	for daysInMonth(year, month) < anchorDay {
		norm = time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
		year, month = norm.Year(), norm.Month()
	}
	return domain.NewDate(year, month, anchorDay)
}

// NextYearly advances cur by interval years, anchored to the original
// month and day. A February 29 anchor always steps by 4 years regardless
// of the configured interval so occurrences stay aligned with leap years;
// a landing on a nonexistent date (Feb 29 in a common year) is skipped by
// stepping again, never clamped to Feb 28.
func NextYearly(cur domain.Date, anchorMonth time.Month, anchorDay, interval int) domain.Date {
	step := interval
	if anchorMonth == time.February && anchorDay == 29 {
		step = 4
	}
	year := cur.Year() + step
	for daysInMonth(year, anchorMonth) < anchorDay {
		year += step
	}
	return domain.NewDate(year, anchorMonth, anchorDay)
}
