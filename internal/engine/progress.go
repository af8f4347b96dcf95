package engine

import (
	"artquest/internal/config"
	"artquest/internal/store"
)

// LevelUp is emitted when a points change pushes the level past its
// previous value. Rendering (toast, banner) is the caller's concern.
type LevelUp struct {
	NewLevel int
}

// LevelForPoints derives the level from total points. The level is never
// mutated independently of points.
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return points/config.PointsPerLevel + 1
}

// AddPoints adds delta to the profile (floored at zero for negative deltas,
// e.g. un-completing a task) and recomputes the level. A LevelUp is returned
// only when the recomputed level exceeds the previous one, never for a
// decrease.
func AddPoints(p *store.Profile, delta int) *LevelUp {
	before := p.Level
	if before < 1 {
		before = 1
	}

	p.Points += delta
	if p.Points < 0 {
		p.Points = 0
	}
	p.Level = LevelForPoints(p.Points)

	if p.Level > before {
		return &LevelUp{NewLevel: p.Level}
	}
	return nil
}
