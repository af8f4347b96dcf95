// Package config holds the static game configuration (point economy, skill
// categories, timer defaults) and the runtime options read from the
// environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Point economy. Consumed read-only by the progression engine.
const (
	PointsPerTask  = 10
	PointsPerLevel = 100
	StreakBonus    = 5
	FocusPoints    = 5

	// AttendancePoints is awarded by check-in itself when the attendance
	// bonus is enabled. Off by default; see Options.AttendanceBonus.
	AttendancePoints = 5
)

// Category progress leveling: one category level per this many points.
const PointsPerCategoryLevel = 50

// Timer defaults (minutes).
const (
	DefaultFocusDuration = 25
	DefaultShortBreak    = 5
	DefaultLongBreak     = 15
)

// DefaultNotificationTime is the default daily reminder time (HH:MM).
const DefaultNotificationTime = "20:00"

// DefaultEndpoint is the Gemini generateContent endpoint.
const DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

// Category is one of the fixed skill domains used to tag tasks, goals and
// progress.
type Category string

const (
	CategoryBasic       Category = "basic"
	CategoryAnatomy     Category = "anatomy"
	CategoryPerspective Category = "perspective"
	CategoryShading     Category = "shading"
	CategoryColor       Category = "color"
	CategoryComposition Category = "composition"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryBasic, CategoryAnatomy, CategoryPerspective,
		CategoryShading, CategoryColor, CategoryComposition:
		return true
	default:
		return false
	}
}

// DefaultCategory is used when user input is missing/invalid.
const DefaultCategory = CategoryBasic

// Categories lists all category keys in display order.
var Categories = []Category{
	CategoryBasic,
	CategoryAnatomy,
	CategoryPerspective,
	CategoryShading,
	CategoryColor,
	CategoryComposition,
}

// CategoryInfo is the display metadata for a category.
type CategoryInfo struct {
	Name string
	Icon string
}

var categoryInfos = map[Category]CategoryInfo{
	CategoryBasic:       {Name: "Basic drawing", Icon: "📐"},
	CategoryAnatomy:     {Name: "Figure drawing", Icon: "👤"},
	CategoryPerspective: {Name: "Perspective", Icon: "🏛"},
	CategoryShading:     {Name: "Light & shading", Icon: "💡"},
	CategoryColor:       {Name: "Color", Icon: "🎨"},
	CategoryComposition: {Name: "Composition", Icon: "📷"},
}

// Info returns the display metadata for c, falling back to the raw key.
func (c Category) Info() CategoryInfo {
	if info, ok := categoryInfos[c]; ok {
		return info
	}
	return CategoryInfo{Name: string(c), Icon: "📝"}
}

// SkillLevel is a self-assessed proficiency for one category.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

func (l SkillLevel) IsValid() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	default:
		return false
	}
}

// Options are the runtime settings read from the environment (and an
// optional .env file next to the working directory).
type Options struct {
	DBPath          string
	GeminiAPIKey    string
	GeminiEndpoint  string
	Timeout         time.Duration
	AttendanceBonus bool
}

// Load reads Options from the environment. A missing .env file is fine.
func Load() Options {
	_ = godotenv.Load()

	return Options{
		DBPath:          getEnv("ARTQUEST_DB", ""),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiEndpoint:  getEnv("GEMINI_ENDPOINT", DefaultEndpoint),
		Timeout:         time.Duration(getIntEnv("ARTQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		AttendanceBonus: getBoolEnv("ARTQUEST_ATTENDANCE_BONUS", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
