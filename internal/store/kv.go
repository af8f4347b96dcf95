package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// getRaw returns the stored bytes for key, or ok=false when never written.
func (s *Store) getRaw(ctx context.Context, key string) ([]byte, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, &StorageError{Op: "read", Key: key, Err: err}
	}
	return []byte(value), true, nil
}

// putRaw serializes nothing; it persists pre-encoded bytes under key.
func (s *Store) putRaw(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return &StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// getJSON reads and decodes key into v. Returns ok=false (v untouched) when
// the key has never been written; callers supply the default.
func (s *Store) getJSON(ctx context.Context, key string, v any) (bool, error) {
	raw, ok, err := s.getRaw(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, &StorageError{Op: "decode", Key: key, Err: err}
	}
	return true, nil
}

// putJSON encodes v and persists it under key.
func (s *Store) putJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &StorageError{Op: "encode", Key: key, Err: err}
	}
	return s.putRaw(ctx, key, data)
}

// Erase removes a single key. Missing keys are not an error.
func (s *Store) Erase(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return &StorageError{Op: "erase", Key: key, Err: err}
	}
	return nil
}

// EraseAll clears every recognized key. Used only by explicit user reset.
// Each key is retried individually so a partial failure leaves as little
// behind as possible; any failures are reported together.
func (s *Store) EraseAll(ctx context.Context) error {
	var failed []string
	var lastErr error
	for _, key := range AllKeys {
		if err := s.Erase(ctx, key); err != nil {
			// One retry per key before giving up on it.
			if err = s.Erase(ctx, key); err != nil {
				failed = append(failed, key)
				lastErr = err
			}
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("reset incomplete, keys remaining [%s]: %w", strings.Join(failed, ", "), lastErr)
	}
	return nil
}
