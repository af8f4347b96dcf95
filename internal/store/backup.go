package store

import (
	"context"
	"encoding/json"
	"time"
)

// Backup is the portable export document. Every field is optional on import:
// keys are restored independently, so a partially corrupt document still
// restores whatever parses.
type Backup struct {
	UserData        json.RawMessage `json:"userData,omitempty"`
	Tasks           json.RawMessage `json:"tasks,omitempty"`
	Gallery         json.RawMessage `json:"gallery,omitempty"`
	Assessment      json.RawMessage `json:"assessment,omitempty"`
	Settings        json.RawMessage `json:"settings,omitempty"`
	Analytics       json.RawMessage `json:"analytics,omitempty"`
	CustomResources json.RawMessage `json:"customResources,omitempty"`
	ExportDate      time.Time       `json:"exportDate"`
}

var backupKeys = []struct {
	key   string
	field func(*Backup) *json.RawMessage
}{
	{KeyUserData, func(b *Backup) *json.RawMessage { return &b.UserData }},
	{KeyTasks, func(b *Backup) *json.RawMessage { return &b.Tasks }},
	{KeyGallery, func(b *Backup) *json.RawMessage { return &b.Gallery }},
	{KeyAssessment, func(b *Backup) *json.RawMessage { return &b.Assessment }},
	{KeySettings, func(b *Backup) *json.RawMessage { return &b.Settings }},
	{KeyAnalytics, func(b *Backup) *json.RawMessage { return &b.Analytics }},
	{KeyCustomResources, func(b *Backup) *json.RawMessage { return &b.CustomResources }},
}

// Export serializes every namespaced entity into one portable document.
// The API credential is deliberately left out of backups.
func (s *Store) Export(ctx context.Context) (Backup, error) {
	b := Backup{ExportDate: time.Now().UTC()}
	for _, bk := range backupKeys {
		raw, ok, err := s.getRaw(ctx, bk.key)
		if err != nil {
			return Backup{}, err
		}
		if ok {
			*bk.field(&b) = json.RawMessage(raw)
		}
	}
	return b, nil
}

// ImportReport says what an Import call actually restored.
type ImportReport struct {
	Restored []string
	Skipped  []string // present in the document but failed validation
}

// Import restores each present, well-formed key independently.
func (s *Store) Import(ctx context.Context, b Backup) (ImportReport, error) {
	var report ImportReport
	for _, bk := range backupKeys {
		raw := *bk.field(&b)
		if len(raw) == 0 {
			continue
		}
		if !validBackupValue(bk.key, raw) {
			report.Skipped = append(report.Skipped, bk.key)
			continue
		}
		if err := s.putRaw(ctx, bk.key, raw); err != nil {
			return report, err
		}
		report.Restored = append(report.Restored, bk.key)
	}
	return report, nil
}

// validBackupValue checks that raw decodes into the entity shape the key
// holds, so one corrupt field never blocks the rest of the document.
func validBackupValue(key string, raw json.RawMessage) bool {
	var v any
	switch key {
	case KeyUserData:
		v = &Profile{}
	case KeyTasks:
		v = &TaskSet{}
	case KeyGallery:
		v = &[]Artwork{}
	case KeyAssessment:
		v = &Assessment{}
	case KeySettings:
		v = &Settings{}
	case KeyAnalytics:
		v = &Analytics{}
	case KeyCustomResources:
		v = &[]Resource{}
	default:
		return false
	}
	return json.Unmarshal(raw, v) == nil
}
