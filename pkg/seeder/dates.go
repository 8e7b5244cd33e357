package seeder

import (
	"time"
)

// The synthetic generators cover a fixed trading window. The venue is closed
// on Mondays, so no day-level records are emitted for them.
var (
	seedStart = time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	seedEnd   = time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)
)

const closedWeekday = time.Monday

// openDays lists every trading day in [start, end], skipping the closed
// weekday
func openDays(start, end time.Time) []time.Time {
	var days []time.Time
	for d := dateOnly(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == closedWeekday {
			continue
		}
		days = append(days, d)
	}
	return days
}

// monthsIn lists the first day of each month covered by [start, end]
func monthsIn(start, end time.Time) []time.Time {
	var months []time.Time
	y, m, _ := start.Date()
	for d := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC); !d.After(end); d = d.AddDate(0, 1, 0) {
		months = append(months, d)
	}
	return months
}

// monthMultiplier is the seasonal factor applied on top of weekday base
// targets. December trades hot, January is the summer-holiday trough.
func monthMultiplier(m time.Month) float64 {
	switch m {
	case time.December:
		return 1.18
	case time.January:
		return 0.92
	case time.February:
		return 0.97
	default:
		return 1.0
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
