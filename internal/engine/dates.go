package engine

import (
	"fmt"
	"time"
)

// DateKey formats t as the calendar-day key used throughout the ledger
// and for daily-task batching.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekKey returns the ISO-week key (e.g. "2026-W35") used to scope
// weekly goals.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%d", year, week)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}

// IsYesterday reports whether prev is exactly the calendar day before day.
func IsYesterday(prev, day time.Time) bool {
	return DateKey(prev) == DateKey(day.AddDate(0, 0, -1))
}
