package tasks

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"artquest/internal/config"
	"artquest/internal/engine"
	"artquest/internal/gemini"
	"artquest/internal/store"
)

type stubGenerator struct {
	taskPlan gemini.Result[gemini.TaskPlan]
	goalPlan gemini.Result[gemini.GoalPlan]
	calls    int
}

func (s *stubGenerator) DailyTasks(_ context.Context, _ map[string]string, _ time.Weekday) gemini.Result[gemini.TaskPlan] {
	s.calls++
	return s.taskPlan
}

func (s *stubGenerator) WeeklyGoals(_ context.Context, _ map[string]string) gemini.Result[gemini.GoalPlan] {
	s.calls++
	return s.goalPlan
}

func testPlan() gemini.Result[gemini.TaskPlan] {
	return gemini.Result[gemini.TaskPlan]{Data: gemini.TaskPlan{Tasks: []gemini.GeneratedTask{
		{Title: "Line drills", Category: "basic", Duration: 15, Difficulty: "beginner"},
		{Title: "Hand study", Category: "anatomy", Duration: 20, Difficulty: "beginner"},
	}}}
}

func testGoals() gemini.Result[gemini.GoalPlan] {
	return gemini.Result[gemini.GoalPlan]{Data: gemini.GoalPlan{Goals: []gemini.GeneratedGoal{
		{Title: "Anatomy week", Category: "anatomy", TargetCount: 3},
	}}}
}

func newTestManager(t *testing.T, gen *stubGenerator, attendance bool) (*Manager, *store.Store) {
	t.Helper()
	ctx := context.Background()
	s, err := store.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	m := NewManager(s, gen, attendance)
	m.now = func() time.Time {
		return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	}
	return m, s
}

func seedAssessment(t *testing.T, s *store.Store) {
	t.Helper()
	err := s.SetAssessment(context.Background(), store.Assessment{
		Levels:     map[string]string{"basic": "beginner"},
		AnalyzedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("seed assessment: %v", err)
	}
}

func TestCheckInRequiresAssessment(t *testing.T) {
	m, _ := newTestManager(t, &stubGenerator{taskPlan: testPlan()}, false)

	_, err := m.CheckIn(context.Background())
	if !errors.Is(err, ErrNoAssessment) {
		t.Fatalf("expected ErrNoAssessment, got %v", err)
	}
}

func TestCheckInGeneratesOncePerDay(t *testing.T) {
	gen := &stubGenerator{taskPlan: testPlan()}
	m, s := newTestManager(t, gen, false)
	seedAssessment(t, s)
	ctx := context.Background()

	first, err := m.CheckIn(ctx)
	if err != nil {
		t.Fatalf("first check-in: %v", err)
	}
	if first.AlreadyCheckedIn {
		t.Fatal("first check-in reported as repeat")
	}
	if len(first.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(first.Tasks))
	}
	if first.Tasks[0].Date != "2026-08-29" {
		t.Fatalf("task date = %q", first.Tasks[0].Date)
	}

	second, err := m.CheckIn(ctx)
	if err != nil {
		t.Fatalf("second check-in: %v", err)
	}
	if !second.AlreadyCheckedIn {
		t.Fatal("second check-in did not report repeat")
	}
	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1", gen.calls)
	}
	if second.Tasks[0].ID != first.Tasks[0].ID {
		t.Fatal("repeat check-in returned different tasks")
	}
}

func TestCheckInAttendanceBonus(t *testing.T) {
	m, s := newTestManager(t, &stubGenerator{taskPlan: testPlan()}, true)
	seedAssessment(t, s)
	ctx := context.Background()

	res, err := m.CheckIn(ctx)
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}
	if !res.AttendanceAwarded {
		t.Fatal("attendance bonus not awarded")
	}
	profile, err := s.UserData(ctx)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile.Points != config.AttendancePoints {
		t.Fatalf("points = %d, want %d", profile.Points, config.AttendancePoints)
	}

	// A repeat check-in on the same day must not award again.
	if _, err := m.CheckIn(ctx); err != nil {
		t.Fatalf("repeat check-in: %v", err)
	}
	profile, _ = s.UserData(ctx)
	if profile.Points != config.AttendancePoints {
		t.Fatalf("repeat check-in changed points to %d", profile.Points)
	}
}

func TestToggleCompleteAndUndo(t *testing.T) {
	m, s := newTestManager(t, &stubGenerator{taskPlan: testPlan()}, false)
	seedAssessment(t, s)
	ctx := context.Background()

	checkin, err := m.CheckIn(ctx)
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}
	id := checkin.Tasks[0].ID

	res, err := m.Toggle(ctx, "daily", id)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !res.Completed {
		t.Fatal("task not marked completed")
	}
	if res.PointsDelta != config.PointsPerTask {
		t.Fatalf("points delta = %d, want %d", res.PointsDelta, config.PointsPerTask)
	}
	if res.Streak != 1 {
		t.Fatalf("streak = %d, want 1", res.Streak)
	}

	profile, _ := s.UserData(ctx)
	if profile.Points != config.PointsPerTask || profile.TotalTasksCompleted != 1 {
		t.Fatalf("profile after complete: points=%d completed=%d", profile.Points, profile.TotalTasksCompleted)
	}
	if profile.TotalStudyTime != 15 {
		t.Fatalf("study time = %d, want 15", profile.TotalStudyTime)
	}
	analytics, _ := s.Analytics(ctx)
	if analytics.DailyActivity["2026-08-29"].Tasks != 1 {
		t.Fatal("ledger missing completion")
	}
	if analytics.CategoryProgress["basic"] != config.PointsPerTask {
		t.Fatalf("category progress = %d", analytics.CategoryProgress["basic"])
	}

	undo, err := m.Toggle(ctx, "daily", id)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if undo.Completed {
		t.Fatal("undo left task completed")
	}
	profile, _ = s.UserData(ctx)
	if profile.Points != 0 || profile.TotalTasksCompleted != 0 || profile.TotalStudyTime != 0 {
		t.Fatalf("profile after undo: %+v", profile)
	}
	if profile.Streak != 1 {
		t.Fatalf("undo reversed the streak: %d", profile.Streak)
	}
	analytics, _ = s.Analytics(ctx)
	if analytics.DailyActivity["2026-08-29"].Tasks != 0 {
		t.Fatal("ledger not reversed")
	}
}

func TestToggleUpdatesWeeklyGoal(t *testing.T) {
	m, s := newTestManager(t, &stubGenerator{taskPlan: testPlan(), goalPlan: testGoals()}, false)
	seedAssessment(t, s)
	ctx := context.Background()

	if _, err := m.RefreshWeeklyGoals(ctx, false); err != nil {
		t.Fatalf("refresh goals: %v", err)
	}
	checkin, err := m.CheckIn(ctx)
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}

	// Second generated task is in the anatomy category, same as the goal.
	if _, err := m.Toggle(ctx, "daily", checkin.Tasks[1].ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	ts, _ := s.Tasks(ctx)
	if ts.Weekly[0].Progress != 1 {
		t.Fatalf("goal progress = %d, want 1", ts.Weekly[0].Progress)
	}

	if _, err := m.Toggle(ctx, "daily", checkin.Tasks[1].ID); err != nil {
		t.Fatalf("undo: %v", err)
	}
	ts, _ = s.Tasks(ctx)
	if ts.Weekly[0].Progress != 0 {
		t.Fatalf("goal progress after undo = %d, want 0", ts.Weekly[0].Progress)
	}
}

func TestToggleUnknownTask(t *testing.T) {
	m, s := newTestManager(t, &stubGenerator{taskPlan: testPlan()}, false)
	seedAssessment(t, s)

	_, err := m.Toggle(context.Background(), "daily", "nope")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	var verr engine.ValidationError
	_, err = m.Toggle(context.Background(), "someday", "nope")
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for collection, got %v", err)
	}
}

func TestRefreshWeeklyGoalsKeepsCurrentWeek(t *testing.T) {
	gen := &stubGenerator{goalPlan: testGoals()}
	m, s := newTestManager(t, gen, false)
	seedAssessment(t, s)
	ctx := context.Background()

	first, err := m.RefreshWeeklyGoals(ctx, false)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if !first.Refreshed {
		t.Fatal("first refresh did not generate")
	}

	kept, err := m.RefreshWeeklyGoals(ctx, false)
	if err != nil {
		t.Fatalf("second refresh: %v", err)
	}
	if kept.Refreshed {
		t.Fatal("second refresh replaced a current-week set")
	}
	if kept.Goals[0].ID != first.Goals[0].ID {
		t.Fatal("goal identity changed without force")
	}

	forced, err := m.RefreshWeeklyGoals(ctx, true)
	if err != nil {
		t.Fatalf("forced refresh: %v", err)
	}
	if !forced.Refreshed {
		t.Fatal("forced refresh did not replace")
	}
	if forced.Goals[0].ID == first.Goals[0].ID {
		t.Fatal("forced refresh kept old goal ids")
	}
}

func TestAddAndDeleteCustom(t *testing.T) {
	m, s := newTestManager(t, &stubGenerator{}, false)
	ctx := context.Background()

	if _, err := m.AddCustom(ctx, "  ", "basic", 15); err == nil {
		t.Fatal("empty title accepted")
	}
	if _, err := m.AddCustom(ctx, "Master study", "nonsense", 15); err == nil {
		t.Fatal("invalid category accepted")
	}

	task, err := m.AddCustom(ctx, "Master study", "", 0)
	if err != nil {
		t.Fatalf("add custom: %v", err)
	}
	if task.Category != string(config.DefaultCategory) || task.Duration != 15 {
		t.Fatalf("defaults not applied: %+v", task)
	}

	if err := m.DeleteCustom(ctx, task.ID); err != nil {
		t.Fatalf("delete custom: %v", err)
	}
	ts, _ := s.Tasks(ctx)
	if len(ts.Custom) != 0 {
		t.Fatalf("custom list not empty: %d", len(ts.Custom))
	}
	if err := m.DeleteCustom(ctx, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestProgressPercent(t *testing.T) {
	cases := []struct {
		progress, target, want int
	}{
		{0, 5, 0},
		{2, 5, 40},
		{5, 5, 100},
		{7, 5, 100},
		{1, 0, 0},
	}
	for _, tc := range cases {
		g := store.WeeklyGoal{Progress: tc.progress, TargetCount: tc.target}
		if got := ProgressPercent(g); got != tc.want {
			t.Errorf("ProgressPercent(%d/%d) = %d, want %d", tc.progress, tc.target, got, tc.want)
		}
	}
}
