package gemini

import (
	"context"
	"time"

	"artquest/internal/config"
)

// Clamp bounds for a generated daily batch.
const (
	minDailyTasks = 1
	maxDailyTasks = 5
)

// AnalyzeAssessment produces the strengths/weaknesses reading of an
// assessment, or the generic fallback when the service is unavailable.
func (c *Client) AnalyzeAssessment(ctx context.Context, levels map[string]string) Result[Analysis] {
	text, err := c.GenerateContent(ctx, analysisPrompt(levels), 0.7)
	if err != nil {
		c.logger.Warn("assessment analysis failed, using fallback", "err", err)
		return fallback(fallbackAnalysis(), err)
	}
	var a Analysis
	if err := decodeLoose(text, &a); err != nil {
		c.logger.Warn("assessment analysis unparseable, using fallback", "err", err)
		return fallback(fallbackAnalysis(), err)
	}
	if !config.SkillLevel(a.OverallLevel).IsValid() {
		a.OverallLevel = string(config.SkillBeginner)
	}
	return ok(a)
}

// DailyTasks generates today's 1-5 task batch.
func (c *Client) DailyTasks(ctx context.Context, levels map[string]string, weekday time.Weekday) Result[TaskPlan] {
	text, err := c.GenerateContent(ctx, dailyTasksPrompt(levels, weekday), 0.7)
	if err != nil {
		c.logger.Warn("daily task generation failed, using fallback", "err", err)
		return fallback(fallbackTaskPlan(levels), err)
	}
	var plan TaskPlan
	if err := decodeLoose(text, &plan); err != nil || len(plan.Tasks) == 0 {
		c.logger.Warn("daily task response unparseable, using fallback", "err", err)
		return fallback(fallbackTaskPlan(levels), errOr(err))
	}
	if len(plan.Tasks) > maxDailyTasks {
		plan.Tasks = plan.Tasks[:maxDailyTasks]
	}
	for i := range plan.Tasks {
		sanitizeTask(&plan.Tasks[i], levels)
	}
	return ok(plan)
}

// WeeklyGoals generates a replacement weekly goal set.
func (c *Client) WeeklyGoals(ctx context.Context, levels map[string]string) Result[GoalPlan] {
	text, err := c.GenerateContent(ctx, weeklyGoalsPrompt(levels), 0.7)
	if err != nil {
		c.logger.Warn("weekly goal generation failed, using fallback", "err", err)
		return fallback(fallbackGoalPlan(), err)
	}
	var plan GoalPlan
	if err := decodeLoose(text, &plan); err != nil || len(plan.Goals) == 0 {
		c.logger.Warn("weekly goal response unparseable, using fallback", "err", err)
		return fallback(fallbackGoalPlan(), errOr(err))
	}
	for i := range plan.Goals {
		g := &plan.Goals[i]
		if !config.Category(g.Category).IsValid() {
			g.Category = string(config.DefaultCategory)
		}
		if g.TargetCount < 1 {
			g.TargetCount = 1
		}
	}
	return ok(plan)
}

// RecommendResources generates learning-resource recommendations.
func (c *Client) RecommendResources(ctx context.Context, levels map[string]string) Result[ResourcePlan] {
	text, err := c.GenerateContent(ctx, resourcesPrompt(levels), 0.7)
	if err != nil {
		c.logger.Warn("resource recommendation failed, using fallback", "err", err)
		return fallback(fallbackResourcePlan(), err)
	}
	var plan ResourcePlan
	if err := decodeLoose(text, &plan); err != nil || len(plan.Resources) == 0 {
		c.logger.Warn("resource response unparseable, using fallback", "err", err)
		return fallback(fallbackResourcePlan(), errOr(err))
	}
	return ok(plan)
}

// WeeklyReport generates the weekly retrospective.
func (c *Client) WeeklyReport(ctx context.Context, in WeekInput) Result[Report] {
	text, err := c.GenerateContent(ctx, weeklyReportPrompt(in), 0.7)
	if err != nil {
		c.logger.Warn("weekly report failed, using fallback", "err", err)
		return fallback(fallbackReport(), err)
	}
	var r Report
	if err := decodeLoose(text, &r); err != nil {
		c.logger.Warn("weekly report unparseable, using fallback", "err", err)
		return fallback(fallbackReport(), err)
	}
	return ok(r)
}

// CoachingMessage generates a short free-text coaching note. This request
// expects prose, not JSON.
func (c *Client) CoachingMessage(ctx context.Context, in CoachInput) Result[string] {
	text, err := c.GenerateContent(ctx, coachingPrompt(in), 0.8)
	if err != nil {
		c.logger.Warn("coaching message failed, using fallback", "err", err)
		return fallback(fallbackCoaching, err)
	}
	return ok(trimmed(text))
}

func sanitizeTask(t *GeneratedTask, levels map[string]string) {
	if !config.Category(t.Category).IsValid() {
		t.Category = string(config.DefaultCategory)
	}
	if t.Duration < 5 {
		t.Duration = 15
	}
	if !config.SkillLevel(t.Difficulty).IsValid() {
		if l := levels[t.Category]; config.SkillLevel(l).IsValid() {
			t.Difficulty = l
		} else {
			t.Difficulty = string(config.SkillBeginner)
		}
	}
}

func errOr(err error) error {
	if err != nil {
		return err
	}
	return errNoJSON
}
