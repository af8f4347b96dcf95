package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Recognized persistence keys. Every durable entity lives under one of these.
const (
	KeyAPIKey          = "api_key"
	KeyUserData        = "user_data"
	KeyTasks           = "tasks"
	KeyGallery         = "gallery"
	KeySettings        = "settings"
	KeyAssessment      = "assessment"
	KeyAnalysis        = "analysis"
	KeyAnalytics       = "analytics"
	KeyCustomResources = "custom_resources"
)

// AllKeys lists every recognized key, used by EraseAll and Export.
var AllKeys = []string{
	KeyAPIKey,
	KeyUserData,
	KeyTasks,
	KeyGallery,
	KeySettings,
	KeyAssessment,
	KeyAnalysis,
	KeyAnalytics,
	KeyCustomResources,
}

// Store is the namespaced key-value persistence layer. All durable state
// goes through it; callers get typed accessors with safe defaults for
// never-written keys.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// DefaultPath returns the default ArtQuest DB location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".artquest.db"), nil
}

// Open opens (and creates if missing) the SQLite database at path and
// ensures the kv schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, logger: slog.Default()}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// StorageError reports a failed persistence read or write. Reads degrade to
// defaults at the accessor layer; writes surface this error so the caller
// can warn that progress may not be saved.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError reports whether err is (or wraps) a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
