package engine

import (
	"time"

	"artquest/internal/config"
	"artquest/internal/store"
)

// TouchStreak advances the consecutive-day streak for activity on today.
//
// Policy: the streak advances at most once per calendar day, driven by the
// first qualifying activity of that day. Calling twice with the same today
// is a no-op. Activity on the day after lastActiveDate extends the streak
// and awards the streak bonus; any gap (or first-ever activity) resets the
// streak to 1. lastActiveDate is always set to today afterwards.
func TouchStreak(p *store.Profile, today time.Time) int {
	if p.LastActiveDate != nil && SameDay(*p.LastActiveDate, today) {
		return p.Streak
	}

	if p.LastActiveDate != nil && IsYesterday(*p.LastActiveDate, today) {
		p.Streak++
		AddPoints(p, config.StreakBonus)
	} else {
		p.Streak = 1
	}

	t := today
	p.LastActiveDate = &t
	return p.Streak
}
