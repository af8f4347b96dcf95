package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"artquest/internal/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMissingKeysYieldDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	profile, err := s.UserData(ctx)
	if err != nil {
		t.Fatalf("user data: %v", err)
	}
	if profile.Level != 1 || profile.Points != 0 || profile.Streak != 0 {
		t.Fatalf("default profile = %+v", profile)
	}

	ts, err := s.Tasks(ctx)
	if err != nil {
		t.Fatalf("tasks: %v", err)
	}
	if len(ts.Daily) != 0 || len(ts.Weekly) != 0 || len(ts.Custom) != 0 {
		t.Fatalf("default task set not empty: %+v", ts)
	}

	assessment, err := s.Assessment(ctx)
	if err != nil {
		t.Fatalf("assessment: %v", err)
	}
	if assessment != nil {
		t.Fatalf("assessment should be nil before first write, got %+v", assessment)
	}

	analytics, err := s.Analytics(ctx)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	for _, c := range config.Categories {
		if _, present := analytics.CategoryProgress[string(c)]; !present {
			t.Fatalf("category %q missing from default ledger", c)
		}
	}

	settings, err := s.Settings(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings.Timer.FocusDuration != config.DefaultFocusDuration {
		t.Fatalf("default focus duration = %d", settings.Timer.FocusDuration)
	}

	key, err := s.APIKey(ctx)
	if err != nil || key != "" {
		t.Fatalf("api key = %q, err = %v", key, err)
	}
}

func TestCorruptEntriesDegradeToDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.putRaw(ctx, KeyTasks, []byte("{definitely not json")); err != nil {
		t.Fatalf("seed corrupt tasks: %v", err)
	}
	// Decoding fails midway through this object; the accessor must hand out
	// a pristine default, not the partially filled value.
	if err := s.putRaw(ctx, KeyUserData, []byte(`{"points":50,"level":"x"}`)); err != nil {
		t.Fatalf("seed corrupt profile: %v", err)
	}
	if err := s.putRaw(ctx, KeyAssessment, []byte("[]garbage")); err != nil {
		t.Fatalf("seed corrupt assessment: %v", err)
	}

	ts, err := s.Tasks(ctx)
	if err != nil {
		t.Fatalf("tasks: %v", err)
	}
	if len(ts.Daily) != 0 || len(ts.Weekly) != 0 || len(ts.Custom) != 0 {
		t.Fatalf("corrupt tasks yielded %+v", ts)
	}

	profile, err := s.UserData(ctx)
	if err != nil {
		t.Fatalf("user data: %v", err)
	}
	if profile.Points != 0 || profile.Level != 1 {
		t.Fatalf("corrupt profile yielded %+v", profile)
	}

	assessment, err := s.Assessment(ctx)
	if err != nil || assessment != nil {
		t.Fatalf("corrupt assessment yielded %+v, err = %v", assessment, err)
	}

	// A later write repairs the entry for good.
	fixed := DefaultProfile(time.Now())
	fixed.Points = 30
	if err := s.SetUserData(ctx, fixed); err != nil {
		t.Fatalf("repair profile: %v", err)
	}
	profile, err = s.UserData(ctx)
	if err != nil || profile.Points != 30 {
		t.Fatalf("profile after repair = %+v, err = %v", profile, err)
	}
}

func TestRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	profile := DefaultProfile(time.Now())
	profile.Points = 125
	profile.Level = 2
	profile.Streak = 3
	if err := s.SetUserData(ctx, profile); err != nil {
		t.Fatalf("set user data: %v", err)
	}
	got, err := s.UserData(ctx)
	if err != nil {
		t.Fatalf("get user data: %v", err)
	}
	if got.Points != 125 || got.Level != 2 || got.Streak != 3 {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if err := s.SetAPIKey(ctx, "secret-key"); err != nil {
		t.Fatalf("set api key: %v", err)
	}
	key, err := s.APIKey(ctx)
	if err != nil || key != "secret-key" {
		t.Fatalf("api key round trip = %q, err = %v", key, err)
	}

	// Overwrite replaces, never merges.
	if err := s.SetAPIKey(ctx, "rotated"); err != nil {
		t.Fatalf("rotate api key: %v", err)
	}
	key, _ = s.APIKey(ctx)
	if key != "rotated" {
		t.Fatalf("api key after rotation = %q", key)
	}
}

func TestEraseAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SetAPIKey(ctx, "k"); err != nil {
		t.Fatalf("seed key: %v", err)
	}
	profile := DefaultProfile(time.Now())
	profile.Points = 50
	if err := s.SetUserData(ctx, profile); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	if err := s.EraseAll(ctx); err != nil {
		t.Fatalf("erase all: %v", err)
	}

	key, _ := s.APIKey(ctx)
	if key != "" {
		t.Fatalf("api key survived reset: %q", key)
	}
	got, _ := s.UserData(ctx)
	if got.Points != 0 || got.Level != 1 {
		t.Fatalf("profile survived reset: %+v", got)
	}
}

func TestExportExcludesAPIKey(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SetAPIKey(ctx, "super-secret"); err != nil {
		t.Fatalf("seed key: %v", err)
	}
	if err := s.SetUserData(ctx, DefaultProfile(time.Now())); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	b, err := s.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	doc, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal backup: %v", err)
	}
	if string(b.UserData) == "" {
		t.Fatal("export missing user data")
	}
	if jsonContains(t, doc, "super-secret") {
		t.Fatal("export leaked the api key")
	}
}

func TestImportRestoresValidKeysAndSkipsCorrupt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	profile := DefaultProfile(time.Now())
	profile.Points = 200
	profileRaw, _ := json.Marshal(profile)

	b := Backup{
		UserData:   profileRaw,
		Tasks:      json.RawMessage(`"this is not a task set"`),
		ExportDate: time.Now(),
	}
	report, err := s.Import(ctx, b)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(report.Restored) != 1 || report.Restored[0] != KeyUserData {
		t.Fatalf("restored = %v", report.Restored)
	}
	if len(report.Skipped) != 1 || report.Skipped[0] != KeyTasks {
		t.Fatalf("skipped = %v", report.Skipped)
	}

	got, err := s.UserData(ctx)
	if err != nil {
		t.Fatalf("user data after import: %v", err)
	}
	if got.Points != 200 {
		t.Fatalf("imported points = %d, want 200", got.Points)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SetAssessment(ctx, Assessment{
		Levels:     map[string]string{"basic": "intermediate"},
		AnalyzedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed assessment: %v", err)
	}
	if err := s.SetGallery(ctx, []Artwork{{ID: "a1", Title: "sketch", Category: "basic"}}); err != nil {
		t.Fatalf("seed gallery: %v", err)
	}

	b, err := s.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	fresh := newTestStore(t)
	report, err := fresh.Import(ctx, b)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(report.Skipped) != 0 {
		t.Fatalf("clean document skipped keys: %v", report.Skipped)
	}

	assessment, err := fresh.Assessment(ctx)
	if err != nil || assessment == nil {
		t.Fatalf("assessment after import: %+v, err = %v", assessment, err)
	}
	if assessment.Levels["basic"] != "intermediate" {
		t.Fatalf("assessment levels = %v", assessment.Levels)
	}
	gallery, _ := fresh.Gallery(ctx)
	if len(gallery) != 1 || gallery[0].Title != "sketch" {
		t.Fatalf("gallery after import = %+v", gallery)
	}
}

func jsonContains(t *testing.T, doc []byte, needle string) bool {
	t.Helper()
	return json.Valid(doc) && strings.Contains(string(doc), needle)
}
