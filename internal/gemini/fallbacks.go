package gemini

import "strings"

// Hardcoded fallback content. The app must remain usable with zero AI
// availability, so every request type has a deterministic substitute.

func fallbackAnalysis() Analysis {
	return Analysis{
		Strengths:    []string{"Understands basic shapes", "Consistent practice habit", "Good observation"},
		Weaknesses:   []string{"Detail rendering", "Conveying volume", "Color harmony"},
		OverallLevel: "beginner",
		Recommendations: []string{
			"Practice basic line work 15 minutes a day",
			"Start with simple object sketches",
			"Follow a beginner fundamentals course",
		},
		LearningTips: []string{
			"Favor consistency over perfection",
			"Build a small daily drawing habit",
			"Learn by copying work you admire",
		},
	}
}

func fallbackTaskPlan(levels map[string]string) TaskPlan {
	difficulty := levels["basic"]
	if difficulty == "" {
		difficulty = "beginner"
	}
	return TaskPlan{Tasks: []GeneratedTask{
		{
			Title:       "Line practice - 100 strokes",
			Description: "Draw 50 horizontal and 50 vertical straight lines without a ruler.",
			Category:    "basic",
			Duration:    15,
			Difficulty:  difficulty,
			Tips:        "Draw from the shoulder, not the wrist.",
		},
		{
			Title:       "Circle practice",
			Description: "Draw 50 circles of varying sizes, freehand.",
			Category:    "basic",
			Duration:    20,
			Difficulty:  difficulty,
			Tips:        "Ghost the motion a few times before committing.",
		},
		{
			Title:       "Simple object sketch",
			Description: "Pick one simple object nearby (a cup, a book) and sketch it.",
			Category:    "basic",
			Duration:    25,
			Difficulty:  difficulty,
			Tips:        "Focus on the overall shape before any detail.",
		},
	}}
}

func fallbackGoalPlan() GoalPlan {
	return GoalPlan{Goals: []GeneratedGoal{
		{
			Title:       "Strengthen line fundamentals",
			Description: "Build stable, confident line work",
			Category:    "basic",
			TargetCount: 5,
			Tasks:       []string{"Straight line drills", "Curve drills", "Varied line weight"},
		},
	}}
}

func fallbackResourcePlan() ResourcePlan {
	return ResourcePlan{Resources: []GeneratedResource{
		{
			Title:       "Drawing fundamentals for beginners",
			Type:        "video",
			Category:    "basic",
			Description: "From line work to basic shapes",
			URL:         "https://youtube.com",
			Difficulty:  "beginner",
		},
		{
			Title:       "Understanding human proportions",
			Type:        "article",
			Category:    "anatomy",
			Description: "Basic proportions and structure of the figure",
			URL:         "https://example.com",
			Difficulty:  "beginner",
		},
	}}
}

func fallbackReport() Report {
	return Report{
		Summary:             "Another week of steady practice. Small, regular sessions are adding up.",
		Achievements:        []string{"Kept a regular practice habit", "Improved fundamentals"},
		Improvements:        []string{"Increase total study time", "Try more categories"},
		NextWeekFocus:       "Focused basic drawing practice",
		MotivationalMessage: "A little every day is what builds skill. Keep going!",
	}
}

const fallbackCoaching = "You're doing well! A daily drawing habit, even a small one, is what builds real skill. Keep the streak alive."

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
