package store

import "time"

// Profile holds the single local user's progression state.
// Level is always derived from Points; it is persisted for display but
// recomputed by the engine on every mutation.
type Profile struct {
	Points              int        `json:"points"`
	Level               int        `json:"level"`
	Streak              int        `json:"streak"`
	LastActiveDate      *time.Time `json:"lastActiveDate,omitempty"`
	TotalTasksCompleted int        `json:"totalTasksCompleted"`
	TotalStudyTime      int        `json:"totalStudyTime"` // minutes
	JoinDate            time.Time  `json:"joinDate"`
}

// Task is a daily or custom practice task.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	Duration    int        `json:"duration"` // minutes
	Difficulty  string     `json:"difficulty,omitempty"`
	Tips        string     `json:"tips,omitempty"`
	Date        string     `json:"date,omitempty"` // calendar day (YYYY-MM-DD) for daily tasks
	CreatedAt   time.Time  `json:"createdAt"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// WeeklyGoal is a target count of category-tagged activity for one week.
// The whole collection is replaced on refresh; there is no partial merge.
type WeeklyGoal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	TargetCount int       `json:"targetCount"`
	Progress    int       `json:"progress"`
	Tasks       []string  `json:"tasks,omitempty"` // display-only sub-task descriptions
	Week        string    `json:"week"`            // ISO week key, e.g. 2026-W35
	CreatedAt   time.Time `json:"createdAt"`
}

// TaskSet is the full task collection persisted under the tasks key.
type TaskSet struct {
	Daily  []Task       `json:"daily"`
	Weekly []WeeklyGoal `json:"weekly"`
	Custom []Task       `json:"custom"`
}

// Assessment is the user's self-assessed skill level per category.
// Overwritten wholesale on re-assessment, never merged.
type Assessment struct {
	Levels     map[string]string `json:"levels"` // category key -> beginner|intermediate|advanced
	AnalyzedAt time.Time         `json:"analyzedAt"`
}

// Analysis is the AI-produced (or fallback) reading of an assessment.
type Analysis struct {
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	OverallLevel    string   `json:"overallLevel"`
	Recommendations []string `json:"recommendations"`
	LearningTips    []string `json:"learningTips"`
}

// DayActivity is one day's accumulated counters in the analytics ledger.
type DayActivity struct {
	Tasks  int `json:"tasks"`
	Time   int `json:"time"` // minutes
	Points int `json:"points"`
}

// Analytics is the derived-activity ledger.
type Analytics struct {
	DailyActivity    map[string]DayActivity `json:"dailyActivity"`    // date key -> counters
	CategoryProgress map[string]int         `json:"categoryProgress"` // category key -> accumulated points
	FocusSessions    int                    `json:"focusSessions"`
	CoachingMessage  string                 `json:"coachingMessage,omitempty"` // last cached AI coaching text
}

// Settings holds user preferences consumed by the CLI surfaces.
type Settings struct {
	Notifications    bool          `json:"notifications"`
	NotificationTime string        `json:"notificationTime"`
	Timer            TimerSettings `json:"timer"`
}

// TimerSettings are focus-session durations in minutes.
type TimerSettings struct {
	FocusDuration int `json:"focusDuration"`
	BreakDuration int `json:"breakDuration"`
}

// Artwork is one logged practice piece in the gallery.
type Artwork struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags,omitempty"`
	Path         string    `json:"path,omitempty"` // local image file, if any
	Memo         string    `json:"memo,omitempty"`
	PracticeTime int       `json:"practiceTime,omitempty"` // minutes
	CreatedAt    time.Time `json:"createdAt"`
}

// Resource is a recommended learning resource.
type Resource struct {
	Title       string `json:"title"`
	Type        string `json:"type"` // video|article|tutorial|book
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
}
