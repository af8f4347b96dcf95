package engine

import (
	"testing"
	"time"

	"artquest/internal/config"
	"artquest/internal/store"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLevelInvariant(t *testing.T) {
	p := store.DefaultProfile(day("2026-08-01"))

	deltas := []int{10, 25, -5, 40, 100, -30, 7, 0, 333}
	for _, d := range deltas {
		AddPoints(&p, d)
		want := p.Points/config.PointsPerLevel + 1
		if p.Level != want {
			t.Fatalf("after delta %d: level=%d, want %d (points=%d)", d, p.Level, want, p.Points)
		}
	}
}

func TestAddPointsNoLevelUpBelowBoundary(t *testing.T) {
	p := store.DefaultProfile(day("2026-08-01"))

	if up := AddPoints(&p, 10); up != nil {
		t.Fatalf("unexpected level-up at %d points", p.Points)
	}
	if p.Points != 10 || p.Level != 1 {
		t.Fatalf("profile=%+v, want points=10 level=1", p)
	}
}

func TestAddPointsLevelUpAtBoundary(t *testing.T) {
	p := store.DefaultProfile(day("2026-08-01"))
	p.Points = 95
	p.Level = LevelForPoints(p.Points)

	up := AddPoints(&p, 10)
	if up == nil {
		t.Fatalf("expected level-up at %d points", p.Points)
	}
	if up.NewLevel != 2 {
		t.Fatalf("NewLevel=%d, want 2", up.NewLevel)
	}
	if p.Points != 105 || p.Level != 2 {
		t.Fatalf("profile=%+v, want points=105 level=2", p)
	}
}

func TestAddPointsNeverEmitsOnDecrease(t *testing.T) {
	p := store.DefaultProfile(day("2026-08-01"))
	p.Points = 105
	p.Level = LevelForPoints(p.Points)

	if up := AddPoints(&p, -10); up != nil {
		t.Fatalf("level-up emitted on decrease")
	}
	if p.Level != 1 {
		t.Fatalf("level=%d, want 1", p.Level)
	}
}

func TestAddPointsFloorsAtZero(t *testing.T) {
	p := store.DefaultProfile(day("2026-08-01"))
	p.Points = 3

	AddPoints(&p, -50)
	if p.Points != 0 || p.Level != 1 {
		t.Fatalf("profile=%+v, want points=0 level=1", p)
	}
}

func TestTouchStreakIdempotentSameDay(t *testing.T) {
	p := store.DefaultProfile(day("2026-08-01"))
	today := day("2026-08-29")

	TouchStreak(&p, today)
	snapshot := p
	TouchStreak(&p, today)

	if p.Points != snapshot.Points || p.Streak != snapshot.Streak {
		t.Fatalf("second TouchStreak mutated profile: %+v vs %+v", p, snapshot)
	}
	if p.LastActiveDate == nil || !SameDay(*p.LastActiveDate, today) {
		t.Fatalf("lastActiveDate not set to today")
	}
}

func TestTouchStreakConsecutiveDayAwardsBonus(t *testing.T) {
	p := store.DefaultProfile(day("2026-08-01"))
	yesterday := day("2026-08-28")
	today := day("2026-08-29")

	TouchStreak(&p, yesterday)
	if p.Streak != 1 {
		t.Fatalf("first activity streak=%d, want 1", p.Streak)
	}

	points := p.Points
	streak := TouchStreak(&p, today)
	if streak != 2 {
		t.Fatalf("streak=%d, want 2", streak)
	}
	if p.Points != points+config.StreakBonus {
		t.Fatalf("points=%d, want %d", p.Points, points+config.StreakBonus)
	}
}

func TestTouchStreakGapResets(t *testing.T) {
	p := store.DefaultProfile(day("2026-08-01"))
	p.Streak = 14
	last := day("2026-08-20")
	p.LastActiveDate = &last

	if streak := TouchStreak(&p, day("2026-08-29")); streak != 1 {
		t.Fatalf("streak after gap=%d, want 1", streak)
	}
}

func TestRecordActivityAccumulatesAndClamps(t *testing.T) {
	a := store.DefaultAnalytics()
	date := day("2026-08-29")

	RecordActivity(&a, date, ActivityDelta{Tasks: 1, Time: 25, Points: 10})
	RecordActivity(&a, date, ActivityDelta{Tasks: 1, Time: 15, Points: 10})

	got := a.DailyActivity[DateKey(date)]
	if got.Tasks != 2 || got.Time != 40 || got.Points != 20 {
		t.Fatalf("day=%+v, want {2 40 20}", got)
	}

	RecordActivity(&a, date, ActivityDelta{Tasks: -5, Time: -100, Points: -100})
	got = a.DailyActivity[DateKey(date)]
	if got.Tasks != 0 || got.Time != 0 || got.Points != 0 {
		t.Fatalf("day after clamp=%+v, want zeros", got)
	}
}

func TestAdjustCategoryProgress(t *testing.T) {
	a := store.DefaultAnalytics()

	if err := AdjustCategoryProgress(&a, config.CategoryAnatomy, 10); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if err := AdjustCategoryProgress(&a, config.CategoryAnatomy, -25); err != nil {
		t.Fatalf("adjust negative: %v", err)
	}
	if got := a.CategoryProgress["anatomy"]; got != 0 {
		t.Fatalf("anatomy=%d, want 0 (floored)", got)
	}

	if err := AdjustCategoryProgress(&a, config.Category("juggling"), 10); err == nil {
		t.Fatalf("expected validation error for unknown category")
	}
}

func TestCategoryStandings(t *testing.T) {
	a := store.DefaultAnalytics()
	a.CategoryProgress["color"] = 75

	for _, cs := range CategoryStandings(a) {
		if cs.Category != config.CategoryColor {
			continue
		}
		if cs.Level != 2 {
			t.Fatalf("color level=%d, want 2", cs.Level)
		}
		if cs.Percent != 50 {
			t.Fatalf("color percent=%d, want 50", cs.Percent)
		}
		return
	}
	t.Fatalf("color standing missing")
}

func TestRecentActivityHeatLevels(t *testing.T) {
	a := store.DefaultAnalytics()
	today := day("2026-08-29")
	a.DailyActivity[DateKey(today)] = store.DayActivity{Tasks: 6}
	a.DailyActivity[DateKey(today.AddDate(0, 0, -1))] = store.DayActivity{Tasks: 1}

	recent := RecentActivity(a, today, 3)
	if len(recent) != 3 {
		t.Fatalf("len=%d, want 3", len(recent))
	}
	if recent[0].HeatLevel != 0 || recent[1].HeatLevel != 1 || recent[2].HeatLevel != 4 {
		t.Fatalf("heat levels=%d,%d,%d want 0,1,4", recent[0].HeatLevel, recent[1].HeatLevel, recent[2].HeatLevel)
	}
}

func TestWeekKeyStable(t *testing.T) {
	a := WeekKey(day("2026-08-24")) // Monday
	b := WeekKey(day("2026-08-29")) // Saturday, same ISO week
	if a != b {
		t.Fatalf("WeekKey differs within one week: %q vs %q", a, b)
	}
	if a == WeekKey(day("2026-09-01")) {
		t.Fatalf("WeekKey should change across weeks")
	}
}
