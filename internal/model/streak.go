package model

import (
	"time"
)

// Behavior types beyond the addiction enum that carry daily-logging
// streaks.
const (
	BehaviorMoodLogging = "mood_logging"
	BehaviorSleep       = "sleep"
	BehaviorJournal     = "journal"
)

type Streak struct {
	ID            string    `db:"id"`
	BehaviorType  string    `db:"behavior_type"`
	CurrentStreak int       `db:"current_streak"`
	LongestStreak int       `db:"longest_streak"`
	LastResetDate *string   `db:"last_reset_date"`
	StartDate     string    `db:"start_date"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
