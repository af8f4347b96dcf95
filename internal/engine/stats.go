package engine

import (
	"time"

	"artquest/internal/config"
	"artquest/internal/store"
)

// OverallStats is the dashboard summary derived from the profile and ledger.
type OverallStats struct {
	TotalTasksCompleted int
	TotalStudyTime      int // minutes
	TotalArtworks       int
	StudyDays           int
	CurrentStreak       int
	TotalPoints         int
	CurrentLevel        int
}

// Overall derives summary stats from the persisted entities.
func Overall(p store.Profile, a store.Analytics, gallerySize int) OverallStats {
	return OverallStats{
		TotalTasksCompleted: p.TotalTasksCompleted,
		TotalStudyTime:      p.TotalStudyTime,
		TotalArtworks:       gallerySize,
		StudyDays:           len(a.DailyActivity),
		CurrentStreak:       p.Streak,
		TotalPoints:         p.Points,
		CurrentLevel:        p.Level,
	}
}

// CategoryStanding is one category's derived mastery.
type CategoryStanding struct {
	Category config.Category
	Points   int
	Level    int
	Percent  int // progress within the current category level, 0-100
}

// CategoryStandings derives per-category levels from accumulated points
// (one level per PointsPerCategoryLevel points).
func CategoryStandings(a store.Analytics) []CategoryStanding {
	out := make([]CategoryStanding, 0, len(config.Categories))
	for _, c := range config.Categories {
		points := a.CategoryProgress[string(c)]
		out = append(out, CategoryStanding{
			Category: c,
			Points:   points,
			Level:    points/config.PointsPerCategoryLevel + 1,
			Percent:  (points % config.PointsPerCategoryLevel) * 100 / config.PointsPerCategoryLevel,
		})
	}
	return out
}

// WeakestCategory returns the category with the least accumulated points.
func WeakestCategory(a store.Analytics) config.Category {
	weakest := config.Categories[0]
	min := a.CategoryProgress[string(weakest)]
	for _, c := range config.Categories[1:] {
		if p := a.CategoryProgress[string(c)]; p < min {
			min = p
			weakest = c
		}
	}
	return weakest
}

// DaySummary is one day in the recent-activity view.
type DaySummary struct {
	Date string
	store.DayActivity
	HeatLevel int // 0-4, for heatmap rendering
}

// RecentActivity returns the last days of activity ending at today, oldest
// first, with heat levels derived from the task count.
func RecentActivity(a store.Analytics, today time.Time, days int) []DaySummary {
	out := make([]DaySummary, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		key := DateKey(date)
		day := a.DailyActivity[key]

		level := 0
		switch {
		case day.Tasks >= 6:
			level = 4
		case day.Tasks >= 4:
			level = 3
		case day.Tasks >= 2:
			level = 2
		case day.Tasks > 0:
			level = 1
		}

		out = append(out, DaySummary{Date: key, DayActivity: day, HeatLevel: level})
	}
	return out
}

// WeekSummary is the last-7-days rollup used to build the weekly report.
type WeekSummary struct {
	CompletedTasks   int
	TotalTime        int
	TotalPoints      int
	ActiveDays       int
	CategoryActivity map[config.Category]int
}

// WeekRollup aggregates the last seven days of ledger activity and counts
// completed daily tasks per category for the same window.
func WeekRollup(a store.Analytics, tasks store.TaskSet, today time.Time) WeekSummary {
	sum := WeekSummary{CategoryActivity: map[config.Category]int{}}
	for _, c := range config.Categories {
		sum.CategoryActivity[c] = 0
	}

	for i := 0; i < 7; i++ {
		key := DateKey(today.AddDate(0, 0, -i))
		day, ok := a.DailyActivity[key]
		if !ok {
			continue
		}
		sum.CompletedTasks += day.Tasks
		sum.TotalTime += day.Time
		sum.TotalPoints += day.Points
		if day.Tasks > 0 {
			sum.ActiveDays++
		}
	}

	cutoff := today.AddDate(0, 0, -7)
	for _, t := range tasks.Daily {
		if !t.Completed || t.CompletedAt == nil || t.CompletedAt.Before(cutoff) {
			continue
		}
		c := config.Category(t.Category)
		if c.IsValid() {
			sum.CategoryActivity[c]++
		}
	}
	return sum
}
