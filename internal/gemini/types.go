package gemini

// Result is the outcome of one generation request. Failures never
// propagate as errors to callers: Data always holds something usable, and
// UsedFallback tells the UI the service was unavailable (Err carries the
// cause for logging).
type Result[T any] struct {
	Data         T
	UsedFallback bool
	Err          error
}

func ok[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

func fallback[T any](data T, err error) Result[T] {
	return Result[T]{Data: data, UsedFallback: true, Err: err}
}

// Analysis is the AI's reading of a skill assessment.
type Analysis struct {
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	OverallLevel    string   `json:"overallLevel"`
	Recommendations []string `json:"recommendations"`
	LearningTips    []string `json:"learningTips"`
}

// GeneratedTask is one proposed practice task.
type GeneratedTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Duration    int    `json:"duration"`
	Difficulty  string `json:"difficulty"`
	Tips        string `json:"tips"`
}

// TaskPlan is a generated daily batch.
type TaskPlan struct {
	Tasks []GeneratedTask `json:"tasks"`
}

// GeneratedGoal is one proposed weekly goal.
type GeneratedGoal struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	TargetCount int      `json:"targetCount"`
	Tasks       []string `json:"tasks"`
}

// GoalPlan is a generated weekly goal set.
type GoalPlan struct {
	Goals []GeneratedGoal `json:"goals"`
}

// GeneratedResource is one recommended learning resource.
type GeneratedResource struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Difficulty  string `json:"difficulty"`
}

// ResourcePlan is a generated resource list.
type ResourcePlan struct {
	Resources []GeneratedResource `json:"resources"`
}

// Report is the weekly retrospective.
type Report struct {
	Summary             string   `json:"summary"`
	Achievements        []string `json:"achievements"`
	Improvements        []string `json:"improvements"`
	NextWeekFocus       string   `json:"nextWeekFocus"`
	MotivationalMessage string   `json:"motivationalMessage"`
}

// WeekInput is the activity summary fed into the weekly-report prompt.
type WeekInput struct {
	CompletedTasks   int
	TotalTime        int
	TotalPoints      int
	ActiveDays       int
	CategoryActivity map[string]int // display name -> count
}

// CoachInput is the context fed into the coaching-message prompt.
type CoachInput struct {
	Level           int
	Points          int
	Streak          int
	TasksThisWeek   int
	WeakestCategory string
}
