package store

import (
	"context"
	"time"

	"artquest/internal/config"
)

// DefaultProfile returns the zeroed profile used before any write.
func DefaultProfile(now time.Time) Profile {
	return Profile{
		Points:   0,
		Level:    1,
		Streak:   0,
		JoinDate: now.UTC(),
	}
}

// DefaultAnalytics returns an empty ledger with every category present.
func DefaultAnalytics() Analytics {
	progress := make(map[string]int, len(config.Categories))
	for _, c := range config.Categories {
		progress[string(c)] = 0
	}
	return Analytics{
		DailyActivity:    map[string]DayActivity{},
		CategoryProgress: progress,
	}
}

// DefaultSettings returns settings with the configured defaults.
func DefaultSettings() Settings {
	return Settings{
		Notifications:    false,
		NotificationTime: config.DefaultNotificationTime,
		Timer: TimerSettings{
			FocusDuration: config.DefaultFocusDuration,
			BreakDuration: config.DefaultShortBreak,
		},
	}
}

// readFailed records a degraded read. Unreadable or corrupt entries yield
// defaults so the app keeps working; the warning is the only trace.
func (s *Store) readFailed(key string, err error) {
	s.logger.Warn("storage read failed, using defaults", "key", key, "err", err)
}

// UserData reads the profile, defaulting to a fresh one when never written
// or unreadable.
func (s *Store) UserData(ctx context.Context) (Profile, error) {
	p := DefaultProfile(time.Now())
	if _, err := s.getJSON(ctx, KeyUserData, &p); err != nil {
		s.readFailed(KeyUserData, err)
		return DefaultProfile(time.Now()), nil
	}
	if p.Level < 1 {
		p.Level = 1
	}
	return p, nil
}

func (s *Store) SetUserData(ctx context.Context, p Profile) error {
	return s.putJSON(ctx, KeyUserData, p)
}

// Tasks reads the task collections, defaulting to empty lists.
func (s *Store) Tasks(ctx context.Context) (TaskSet, error) {
	var ts TaskSet
	if _, err := s.getJSON(ctx, KeyTasks, &ts); err != nil {
		s.readFailed(KeyTasks, err)
		return TaskSet{}, nil
	}
	return ts, nil
}

func (s *Store) SetTasks(ctx context.Context, ts TaskSet) error {
	return s.putJSON(ctx, KeyTasks, ts)
}

// Assessment returns nil when no assessment has been taken yet.
func (s *Store) Assessment(ctx context.Context) (*Assessment, error) {
	var a Assessment
	ok, err := s.getJSON(ctx, KeyAssessment, &a)
	if err != nil {
		s.readFailed(KeyAssessment, err)
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *Store) SetAssessment(ctx context.Context, a Assessment) error {
	return s.putJSON(ctx, KeyAssessment, a)
}

// Analysis returns nil when no analysis has been produced yet.
func (s *Store) Analysis(ctx context.Context) (*Analysis, error) {
	var a Analysis
	ok, err := s.getJSON(ctx, KeyAnalysis, &a)
	if err != nil {
		s.readFailed(KeyAnalysis, err)
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *Store) SetAnalysis(ctx context.Context, a Analysis) error {
	return s.putJSON(ctx, KeyAnalysis, a)
}

// Analytics reads the ledger, defaulting to a zeroed one.
func (s *Store) Analytics(ctx context.Context) (Analytics, error) {
	a := DefaultAnalytics()
	if _, err := s.getJSON(ctx, KeyAnalytics, &a); err != nil {
		s.readFailed(KeyAnalytics, err)
		return DefaultAnalytics(), nil
	}
	if a.DailyActivity == nil {
		a.DailyActivity = map[string]DayActivity{}
	}
	if a.CategoryProgress == nil {
		a.CategoryProgress = DefaultAnalytics().CategoryProgress
	}
	return a, nil
}

func (s *Store) SetAnalytics(ctx context.Context, a Analytics) error {
	return s.putJSON(ctx, KeyAnalytics, a)
}

// Settings reads user settings, defaulting to the configured defaults.
func (s *Store) Settings(ctx context.Context) (Settings, error) {
	st := DefaultSettings()
	if _, err := s.getJSON(ctx, KeySettings, &st); err != nil {
		s.readFailed(KeySettings, err)
		return DefaultSettings(), nil
	}
	return st, nil
}

func (s *Store) SetSettings(ctx context.Context, st Settings) error {
	return s.putJSON(ctx, KeySettings, st)
}

// Gallery reads the artwork log, newest first.
func (s *Store) Gallery(ctx context.Context) ([]Artwork, error) {
	var g []Artwork
	if _, err := s.getJSON(ctx, KeyGallery, &g); err != nil {
		s.readFailed(KeyGallery, err)
		return nil, nil
	}
	return g, nil
}

func (s *Store) SetGallery(ctx context.Context, g []Artwork) error {
	return s.putJSON(ctx, KeyGallery, g)
}

// CustomResources reads the cached resource recommendations.
func (s *Store) CustomResources(ctx context.Context) ([]Resource, error) {
	var r []Resource
	if _, err := s.getJSON(ctx, KeyCustomResources, &r); err != nil {
		s.readFailed(KeyCustomResources, err)
		return nil, nil
	}
	return r, nil
}

func (s *Store) SetCustomResources(ctx context.Context, r []Resource) error {
	return s.putJSON(ctx, KeyCustomResources, r)
}

// APIKey returns the stored generation-service credential, or "" when unset.
func (s *Store) APIKey(ctx context.Context) (string, error) {
	raw, ok, err := s.getRaw(ctx, KeyAPIKey)
	if err != nil {
		s.readFailed(KeyAPIKey, err)
		return "", nil
	}
	if !ok {
		return "", nil
	}
	return string(raw), nil
}

func (s *Store) SetAPIKey(ctx context.Context, key string) error {
	return s.putRaw(ctx, KeyAPIKey, []byte(key))
}
