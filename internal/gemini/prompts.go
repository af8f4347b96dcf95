package gemini

import (
	"fmt"
	"strings"
	"time"

	"artquest/internal/config"
)

// assessmentLines renders the per-category skill levels for embedding in a
// prompt, using display names and a stable category order.
func assessmentLines(levels map[string]string) string {
	var b strings.Builder
	for _, c := range config.Categories {
		level := levels[string(c)]
		if level == "" {
			level = string(config.SkillBeginner)
		}
		fmt.Fprintf(&b, "- %s: %s\n", c.Info().Name, level)
	}
	return b.String()
}

const jsonOnly = "Return ONLY the JSON object, no other text."

func analysisPrompt(levels map[string]string) string {
	return fmt.Sprintf(`You are a professional art educator. A student self-assessed their drawing skills as follows:

%s
(each item: beginner, intermediate or advanced)

Provide an analysis for this student as a JSON object of this exact shape:

{
  "strengths": ["strength 1", "strength 2", "strength 3"],
  "weaknesses": ["weakness 1", "weakness 2", "weakness 3"],
  "overallLevel": "beginner|intermediate|advanced",
  "recommendations": ["recommendation 1", "recommendation 2", "recommendation 3"],
  "learningTips": ["tip 1", "tip 2", "tip 3"]
}

%s`, assessmentLines(levels), jsonOnly)
}

func dailyTasksPrompt(levels map[string]string, weekday time.Weekday) string {
	return fmt.Sprintf(`Student skill levels:
%s
Today is %s.

Provide 3-5 drawing practice tasks for today as a JSON object of this exact shape:

{
  "tasks": [
    {
      "title": "task title",
      "description": "concrete task description",
      "category": "basic|anatomy|perspective|shading|color|composition",
      "duration": 15,
      "difficulty": "beginner|intermediate|advanced",
      "tips": "a tip for doing the task"
    }
  ]
}

- Match difficulty to the student's levels
- Split work into focused 15-30 minute chunks
- Tasks must be concrete and immediately actionable
- Cover a variety of categories

%s`, assessmentLines(levels), weekday.String(), jsonOnly)
}

func weeklyGoalsPrompt(levels map[string]string) string {
	return fmt.Sprintf(`Student skill levels:
%s
Provide 3-4 learning goals for this week as a JSON object of this exact shape:

{
  "goals": [
    {
      "title": "goal title",
      "description": "goal description",
      "category": "basic|anatomy|perspective|shading|color|composition",
      "targetCount": 5,
      "tasks": ["sub-task 1", "sub-task 2"]
    }
  ]
}

- Goals should be achievable within one week
- Balance shoring up weaknesses with building on strengths

%s`, assessmentLines(levels), jsonOnly)
}

func resourcesPrompt(levels map[string]string) string {
	return fmt.Sprintf(`Student skill levels:
%s
Recommend 5-8 learning resources as a JSON object of this exact shape:

{
  "resources": [
    {
      "title": "resource title",
      "type": "video|article|tutorial|book",
      "category": "basic|anatomy|perspective|shading|color|composition",
      "description": "what it covers",
      "url": "https://...",
      "difficulty": "beginner|intermediate|advanced"
    }
  ]
}

- Prefer freely accessible material (videos, blogs, online courses)
- Match difficulty to the student's levels

%s`, assessmentLines(levels), jsonOnly)
}

func weeklyReportPrompt(in WeekInput) string {
	var cats strings.Builder
	for _, c := range config.Categories {
		fmt.Fprintf(&cats, "- %s: %d\n", c.Info().Name, in.CategoryActivity[c.Info().Name])
	}
	return fmt.Sprintf(`This week's study data:
- Tasks completed: %d
- Total study time: %d minutes
- Points earned: %d
- Active days: %d

Activity per category:
%s
Review this week's progress and suggest a direction for next week as a JSON object of this exact shape:

{
  "summary": "overall evaluation in 2-3 sentences",
  "achievements": ["achievement 1", "achievement 2"],
  "improvements": ["area to improve 1", "area to improve 2"],
  "nextWeekFocus": "recommended focus for next week",
  "motivationalMessage": "a short encouragement"
}

%s`, in.CompletedTasks, in.TotalTime, in.TotalPoints, in.ActiveDays, cats.String(), jsonOnly)
}

func coachingPrompt(in CoachInput) string {
	return fmt.Sprintf(`Student:
- Level: %d
- Points: %d
- Streak: %d days

Recent activity:
- Tasks completed in the last 7 days: %d
- Weakest category: %s

Write a short coaching message in 2-3 sentences. Be encouraging and
include one concrete tip.`, in.Level, in.Points, in.Streak, in.TasksThisWeek, in.WeakestCategory)
}
