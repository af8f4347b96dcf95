package engine

import (
	"time"

	"artquest/internal/config"
	"artquest/internal/store"
)

// ActivityDelta is one accumulation step for a day's counters. Negative
// values are allowed (undo) but never push a counter below zero.
type ActivityDelta struct {
	Tasks  int
	Time   int // minutes
	Points int
}

// RecordActivity accumulates the three counters for date, creating the
// entry with zeros when absent.
func RecordActivity(a *store.Analytics, date time.Time, delta ActivityDelta) {
	if a.DailyActivity == nil {
		a.DailyActivity = map[string]store.DayActivity{}
	}
	key := DateKey(date)
	day := a.DailyActivity[key]
	day.Tasks = clampZero(day.Tasks + delta.Tasks)
	day.Time = clampZero(day.Time + delta.Time)
	day.Points = clampZero(day.Points + delta.Points)
	a.DailyActivity[key] = day
}

// AdjustCategoryProgress adds delta (possibly negative) to the category's
// accumulated points, floored at zero. Unknown categories are rejected
// before mutation.
func AdjustCategoryProgress(a *store.Analytics, category config.Category, delta int) error {
	if !category.IsValid() {
		return ValidationError{Field: "category", Reason: string(category)}
	}
	if a.CategoryProgress == nil {
		a.CategoryProgress = map[string]int{}
	}
	a.CategoryProgress[string(category)] = clampZero(a.CategoryProgress[string(category)] + delta)
	return nil
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
