// Package period maps a (period kind, reference instant) pair to an inclusive
// [start, end] window at full-day granularity.
package period

import (
	"time"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
)

// Resolve returns the window of the given kind containing the reference
// instant. Weeks start on Monday. Both bounds are inclusive: Start is the
// first nanosecond of the first day, End the last nanosecond of the last day,
// in the reference's location. An unknown kind resolves as a month.
func Resolve(kind domain.PeriodType, reference time.Time) domain.PeriodWindow {
	switch kind {
	case domain.PeriodWeek:
		start := startOfDay(reference.AddDate(0, 0, -mondayOffset(reference.Weekday())))
		return window(domain.PeriodWeek, start, start.AddDate(0, 0, 7))
	case domain.PeriodYear:
		start := time.Date(reference.Year(), time.January, 1, 0, 0, 0, 0, reference.Location())
		return window(domain.PeriodYear, start, start.AddDate(1, 0, 0))
	case domain.PeriodMonth:
		return monthWindow(reference)
	default:
		return monthWindow(reference)
	}
}

func monthWindow(reference time.Time) domain.PeriodWindow {
	start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	return window(domain.PeriodMonth, start, start.AddDate(0, 1, 0))
}

func window(kind domain.PeriodType, start, nextStart time.Time) domain.PeriodWindow {
	return domain.PeriodWindow{
		Type:  kind,
		Start: start,
		End:   nextStart.Add(-time.Nanosecond),
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayOffset is the number of days since the most recent Monday.
func mondayOffset(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d) - int(time.Monday)
}
