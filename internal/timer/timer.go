// Package timer holds the focus-session countdown state machine and the
// rules for crediting a finished session.
package timer

import (
	"time"

	"artquest/internal/config"
	"artquest/internal/engine"
	"artquest/internal/store"
)

// State is the countdown lifecycle.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Session is one focus countdown. It does no wall-clock reading of its own;
// the owner feeds elapsed time through Tick.
type Session struct {
	state     State
	total     time.Duration
	remaining time.Duration
}

// New creates an idle session of the given length. Non-positive minutes
// fall back to the default focus duration.
func New(minutes int) *Session {
	if minutes <= 0 {
		minutes = config.DefaultFocusDuration
	}
	d := time.Duration(minutes) * time.Minute
	return &Session{state: StateIdle, total: d, remaining: d}
}

func (s *Session) State() State             { return s.state }
func (s *Session) Remaining() time.Duration { return s.remaining }
func (s *Session) Total() time.Duration     { return s.total }

// Minutes is the session length in whole minutes.
func (s *Session) Minutes() int { return int(s.total / time.Minute) }

// Progress is completion as 0.0 to 1.0.
func (s *Session) Progress() float64 {
	if s.total <= 0 {
		return 1
	}
	return float64(s.total-s.remaining) / float64(s.total)
}

// Start begins the countdown. Starting a paused session resumes it;
// starting a running or finished one is a no-op.
func (s *Session) Start() {
	if s.state == StateIdle || s.state == StatePaused {
		s.state = StateRunning
	}
}

// Pause halts a running countdown.
func (s *Session) Pause() {
	if s.state == StateRunning {
		s.state = StatePaused
	}
}

// Toggle flips between running and paused.
func (s *Session) Toggle() {
	switch s.state {
	case StateRunning:
		s.Pause()
	case StateIdle, StatePaused:
		s.Start()
	}
}

// Tick advances the countdown by elapsed and reports whether this call
// finished the session. Ticks while paused or idle are ignored.
func (s *Session) Tick(elapsed time.Duration) bool {
	if s.state != StateRunning {
		return false
	}
	s.remaining -= elapsed
	if s.remaining <= 0 {
		s.remaining = 0
		s.state = StateDone
		return true
	}
	return false
}

// Award credits a finished focus session: fixed points, study time and a
// ledger entry. The streak is not touched; only task completion drives it.
func Award(p *store.Profile, a *store.Analytics, minutes int, now time.Time) *engine.LevelUp {
	up := engine.AddPoints(p, config.FocusPoints)
	p.TotalStudyTime += minutes
	a.FocusSessions++
	engine.RecordActivity(a, now, engine.ActivityDelta{Time: minutes, Points: config.FocusPoints})
	return up
}
