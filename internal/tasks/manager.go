// Package tasks implements the task lifecycle: daily check-in, completion
// toggling with point accrual, weekly goals and custom tasks. It is the
// only writer of the task collections and the profile.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"artquest/internal/config"
	"artquest/internal/engine"
	"artquest/internal/gemini"
	"artquest/internal/store"
)

// ErrNoAssessment is returned by operations that need skill levels before
// the user has taken the assessment.
var ErrNoAssessment = errors.New("no assessment yet, run the assessment first")

// ErrTaskNotFound is returned when an id matches no task in the collection.
var ErrTaskNotFound = errors.New("task not found")

// Generator produces AI task and goal plans. Satisfied by *gemini.Client.
type Generator interface {
	DailyTasks(ctx context.Context, levels map[string]string, weekday time.Weekday) gemini.Result[gemini.TaskPlan]
	WeeklyGoals(ctx context.Context, levels map[string]string) gemini.Result[gemini.GoalPlan]
}

// Manager coordinates the store, the engine rules and the generator.
type Manager struct {
	store           *store.Store
	gen             Generator
	attendanceBonus bool

	now func() time.Time
}

func NewManager(s *store.Store, gen Generator, attendanceBonus bool) *Manager {
	return &Manager{
		store:           s,
		gen:             gen,
		attendanceBonus: attendanceBonus,
		now:             time.Now,
	}
}

// CheckInResult reports what a check-in did.
type CheckInResult struct {
	AlreadyCheckedIn  bool
	Tasks             []store.Task
	UsedFallback      bool
	AttendanceAwarded bool
	LevelUp           *engine.LevelUp
}

// CheckIn ensures today has a daily task batch, generating one on the first
// call of the day. Repeat calls on the same day return the existing batch
// and write nothing.
func (m *Manager) CheckIn(ctx context.Context) (*CheckInResult, error) {
	today := m.now()
	dateKey := engine.DateKey(today)

	assessment, err := m.store.Assessment(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading assessment: %w", err)
	}
	if assessment == nil {
		return nil, ErrNoAssessment
	}

	ts, err := m.store.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	if todays := tasksForDate(ts.Daily, dateKey); len(todays) > 0 {
		return &CheckInResult{AlreadyCheckedIn: true, Tasks: todays}, nil
	}

	plan := m.gen.DailyTasks(ctx, assessment.Levels, today.Weekday())
	batch := make([]store.Task, 0, len(plan.Data.Tasks))
	for _, g := range plan.Data.Tasks {
		batch = append(batch, store.Task{
			ID:          uuid.NewString(),
			Title:       g.Title,
			Description: g.Description,
			Category:    g.Category,
			Duration:    g.Duration,
			Difficulty:  g.Difficulty,
			Tips:        g.Tips,
			Date:        dateKey,
			CreatedAt:   today.UTC(),
		})
	}

	// Stale batches from previous days are dropped, not archived; the
	// analytics ledger already holds what was completed.
	ts.Daily = batch
	if err := m.store.SetTasks(ctx, ts); err != nil {
		return nil, fmt.Errorf("saving tasks: %w", err)
	}

	res := &CheckInResult{Tasks: batch, UsedFallback: plan.UsedFallback}
	if m.attendanceBonus {
		profile, err := m.store.UserData(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading profile: %w", err)
		}
		res.LevelUp = engine.AddPoints(&profile, config.AttendancePoints)
		res.AttendanceAwarded = true
		if err := m.store.SetUserData(ctx, profile); err != nil {
			return nil, fmt.Errorf("saving profile: %w", err)
		}
	}
	return res, nil
}

// ToggleResult reports the effect of flipping one task's completion state.
type ToggleResult struct {
	Task        store.Task
	Completed   bool
	PointsDelta int
	LevelUp     *engine.LevelUp
	Streak      int
}

// Toggle flips the completion state of a daily or custom task. Completing
// awards points, advances the streak and records activity; undoing reverses
// the points and counters but never the streak.
func (m *Manager) Toggle(ctx context.Context, collection, id string) (*ToggleResult, error) {
	if collection != "daily" && collection != "custom" {
		return nil, engine.ValidationError{Field: "collection", Reason: collection}
	}

	ts, err := m.store.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	list := ts.Daily
	if collection == "custom" {
		list = ts.Custom
	}
	idx := indexByID(list, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	task := &list[idx]

	profile, err := m.store.UserData(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	analytics, err := m.store.Analytics(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading analytics: %w", err)
	}

	now := m.now()
	res := &ToggleResult{}
	if !task.Completed {
		task.Completed = true
		completedAt := now.UTC()
		task.CompletedAt = &completedAt

		res.PointsDelta = config.PointsPerTask
		res.LevelUp = engine.AddPoints(&profile, config.PointsPerTask)
		res.Streak = engine.TouchStreak(&profile, now)
		profile.TotalTasksCompleted++
		profile.TotalStudyTime += task.Duration

		engine.RecordActivity(&analytics, now, engine.ActivityDelta{Tasks: 1, Time: task.Duration, Points: config.PointsPerTask})
		if err := engine.AdjustCategoryProgress(&analytics, config.Category(task.Category), config.PointsPerTask); err != nil {
			return nil, err
		}
		bumpGoalProgress(ts.Weekly, task.Category, engine.WeekKey(now), 1)
	} else {
		task.Completed = false
		task.CompletedAt = nil

		res.PointsDelta = -config.PointsPerTask
		engine.AddPoints(&profile, -config.PointsPerTask)
		res.Streak = profile.Streak
		if profile.TotalTasksCompleted > 0 {
			profile.TotalTasksCompleted--
		}
		profile.TotalStudyTime -= task.Duration
		if profile.TotalStudyTime < 0 {
			profile.TotalStudyTime = 0
		}

		engine.RecordActivity(&analytics, now, engine.ActivityDelta{Tasks: -1, Time: -task.Duration, Points: -config.PointsPerTask})
		if err := engine.AdjustCategoryProgress(&analytics, config.Category(task.Category), -config.PointsPerTask); err != nil {
			return nil, err
		}
		bumpGoalProgress(ts.Weekly, task.Category, engine.WeekKey(now), -1)
	}
	res.Task = *task
	res.Completed = task.Completed

	if err := m.store.SetTasks(ctx, ts); err != nil {
		return nil, fmt.Errorf("saving tasks: %w", err)
	}
	if err := m.store.SetUserData(ctx, profile); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	if err := m.store.SetAnalytics(ctx, analytics); err != nil {
		return nil, fmt.Errorf("saving analytics: %w", err)
	}
	return res, nil
}

// GoalsResult reports the state of the weekly goal set.
type GoalsResult struct {
	Goals        []store.WeeklyGoal
	Refreshed    bool
	UsedFallback bool
}

// RefreshWeeklyGoals ensures the current ISO week has a goal set. An
// existing set for this week is kept unless force is set; refresh replaces
// the whole collection, progress included.
func (m *Manager) RefreshWeeklyGoals(ctx context.Context, force bool) (*GoalsResult, error) {
	now := m.now()
	week := engine.WeekKey(now)

	ts, err := m.store.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	if !force {
		if current := goalsForWeek(ts.Weekly, week); len(current) > 0 {
			return &GoalsResult{Goals: current}, nil
		}
	}

	assessment, err := m.store.Assessment(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading assessment: %w", err)
	}
	if assessment == nil {
		return nil, ErrNoAssessment
	}

	plan := m.gen.WeeklyGoals(ctx, assessment.Levels)
	goals := make([]store.WeeklyGoal, 0, len(plan.Data.Goals))
	for _, g := range plan.Data.Goals {
		goals = append(goals, store.WeeklyGoal{
			ID:          uuid.NewString(),
			Title:       g.Title,
			Description: g.Description,
			Category:    g.Category,
			TargetCount: g.TargetCount,
			Tasks:       g.Tasks,
			Week:        week,
			CreatedAt:   now.UTC(),
		})
	}
	ts.Weekly = goals
	if err := m.store.SetTasks(ctx, ts); err != nil {
		return nil, fmt.Errorf("saving tasks: %w", err)
	}
	return &GoalsResult{Goals: goals, Refreshed: true, UsedFallback: plan.UsedFallback}, nil
}

// AddCustom appends a user-authored task to the custom collection.
func (m *Manager) AddCustom(ctx context.Context, title, category string, duration int) (*store.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, engine.ValidationError{Field: "title", Reason: "empty"}
	}
	if category == "" {
		category = string(config.DefaultCategory)
	}
	if !config.Category(category).IsValid() {
		return nil, engine.ValidationError{Field: "category", Reason: category}
	}
	if duration <= 0 {
		duration = 15
	}

	ts, err := m.store.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	task := store.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  category,
		Duration:  duration,
		CreatedAt: m.now().UTC(),
	}
	ts.Custom = append(ts.Custom, task)
	if err := m.store.SetTasks(ctx, ts); err != nil {
		return nil, fmt.Errorf("saving tasks: %w", err)
	}
	return &task, nil
}

// DeleteCustom removes a custom task by id. Completed history in the
// analytics ledger is untouched.
func (m *Manager) DeleteCustom(ctx context.Context, id string) error {
	ts, err := m.store.Tasks(ctx)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	idx := indexByID(ts.Custom, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	ts.Custom = append(ts.Custom[:idx], ts.Custom[idx+1:]...)
	if err := m.store.SetTasks(ctx, ts); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}

// Today returns the daily batch for the current date, which may be empty
// when no check-in has happened yet.
func (m *Manager) Today(ctx context.Context) ([]store.Task, error) {
	ts, err := m.store.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	return tasksForDate(ts.Daily, engine.DateKey(m.now())), nil
}

// ProgressPercent is a goal's progress as 0-100, capped at 100.
func ProgressPercent(g store.WeeklyGoal) int {
	if g.TargetCount <= 0 {
		return 0
	}
	pct := g.Progress * 100 / g.TargetCount
	if pct > 100 {
		return 100
	}
	return pct
}

func tasksForDate(daily []store.Task, dateKey string) []store.Task {
	var out []store.Task
	for _, t := range daily {
		if t.Date == dateKey {
			out = append(out, t)
		}
	}
	return out
}

func indexByID(list []store.Task, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// goalsForWeek returns the goals recorded for the given ISO week.
func goalsForWeek(goals []store.WeeklyGoal, week string) []store.WeeklyGoal {
	var out []store.WeeklyGoal
	for _, g := range goals {
		if g.Week == week {
			out = append(out, g)
		}
	}
	return out
}

// bumpGoalProgress moves the first matching current-week goal's progress by
// delta, clamped to [0, target].
func bumpGoalProgress(goals []store.WeeklyGoal, category, week string, delta int) {
	for i := range goals {
		g := &goals[i]
		if g.Week != week || g.Category != category {
			continue
		}
		g.Progress += delta
		if g.Progress < 0 {
			g.Progress = 0
		}
		if g.Progress > g.TargetCount {
			g.Progress = g.TargetCount
		}
		return
	}
}
