// Package gallery manages the log of practice pieces.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"artquest/internal/config"
	"artquest/internal/engine"
	"artquest/internal/store"
)

// ErrArtworkNotFound is returned when an id matches no logged piece.
var ErrArtworkNotFound = errors.New("artwork not found")

// Entry is the caller-supplied part of a new gallery record.
type Entry struct {
	Title        string
	Category     string
	Tags         []string
	Path         string
	Memo         string
	PracticeTime int // minutes
}

// Manager is the only writer of the gallery collection.
type Manager struct {
	store *store.Store

	now func() time.Time
}

func NewManager(s *store.Store) *Manager {
	return &Manager{store: s, now: time.Now}
}

// Add validates and logs a new piece. The list is kept newest first.
func (m *Manager) Add(ctx context.Context, e Entry) (*store.Artwork, error) {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		return nil, engine.ValidationError{Field: "title", Reason: "empty"}
	}
	if e.Category == "" {
		e.Category = string(config.DefaultCategory)
	}
	if !config.Category(e.Category).IsValid() {
		return nil, engine.ValidationError{Field: "category", Reason: e.Category}
	}
	if e.PracticeTime < 0 {
		e.PracticeTime = 0
	}

	items, err := m.store.Gallery(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading gallery: %w", err)
	}
	art := store.Artwork{
		ID:           uuid.NewString(),
		Title:        title,
		Category:     e.Category,
		Tags:         e.Tags,
		Path:         e.Path,
		Memo:         e.Memo,
		PracticeTime: e.PracticeTime,
		CreatedAt:    m.now().UTC(),
	}
	items = append([]store.Artwork{art}, items...)
	if err := m.store.SetGallery(ctx, items); err != nil {
		return nil, fmt.Errorf("saving gallery: %w", err)
	}
	return &art, nil
}

// List returns the log, optionally filtered by category. An empty category
// means everything.
func (m *Manager) List(ctx context.Context, category string) ([]store.Artwork, error) {
	items, err := m.store.Gallery(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading gallery: %w", err)
	}
	if category == "" {
		return items, nil
	}
	if !config.Category(category).IsValid() {
		return nil, engine.ValidationError{Field: "category", Reason: category}
	}
	var out []store.Artwork
	for _, a := range items {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out, nil
}

// Patch describes edits to one piece. Nil fields keep the stored value;
// set fields replace it, so a set-but-empty Memo or Path clears it.
type Patch struct {
	Title        *string
	Category     *string
	Tags         *[]string
	Path         *string
	Memo         *string
	PracticeTime *int // minutes
}

// Update applies p to one piece in place.
func (m *Manager) Update(ctx context.Context, id string, p Patch) (*store.Artwork, error) {
	items, err := m.store.Gallery(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading gallery: %w", err)
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		art := &items[i]
		if p.Title != nil {
			title := strings.TrimSpace(*p.Title)
			if title == "" {
				return nil, engine.ValidationError{Field: "title", Reason: "empty"}
			}
			art.Title = title
		}
		if p.Category != nil {
			if !config.Category(*p.Category).IsValid() {
				return nil, engine.ValidationError{Field: "category", Reason: *p.Category}
			}
			art.Category = *p.Category
		}
		if p.Tags != nil {
			art.Tags = *p.Tags
		}
		if p.Path != nil {
			art.Path = *p.Path
		}
		if p.Memo != nil {
			art.Memo = *p.Memo
		}
		if p.PracticeTime != nil {
			art.PracticeTime = *p.PracticeTime
			if art.PracticeTime < 0 {
				art.PracticeTime = 0
			}
		}
		if err := m.store.SetGallery(ctx, items); err != nil {
			return nil, fmt.Errorf("saving gallery: %w", err)
		}
		updated := *art
		return &updated, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrArtworkNotFound, id)
}

// Remove deletes one piece by id.
func (m *Manager) Remove(ctx context.Context, id string) error {
	items, err := m.store.Gallery(ctx)
	if err != nil {
		return fmt.Errorf("loading gallery: %w", err)
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items = append(items[:i], items[i+1:]...)
		if err := m.store.SetGallery(ctx, items); err != nil {
			return fmt.Errorf("saving gallery: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrArtworkNotFound, id)
}
