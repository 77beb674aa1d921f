package model

import (
	"time"
)

type ResistanceMetrics struct {
	ID                     string     `db:"id"`
	AddictionType          string     `db:"addiction_type"`
	TotalUrges             int        `db:"total_urges"`
	TotalResisted          int        `db:"total_resisted"`
	ResistanceRate         int        `db:"resistance_rate"` // derived percent
	ConsecutiveResistances int        `db:"consecutive_resistances"`
	BestResistanceStreak   int        `db:"best_resistance_streak"`
	TotalResistanceScore   int        `db:"total_resistance_score"`
	DifficultUrgesResisted int        `db:"difficult_urges_resisted"`
	TriggerMastery         CountMap   `db:"trigger_mastery"`
	LastResistanceDate     *time.Time `db:"last_resistance_date"`
	CreatedAt              time.Time  `db:"created_at"`
	UpdatedAt              time.Time  `db:"updated_at"`
}

// Resistance levels, strongest first.
const (
	LevelMaster      = "Master of Resistance"
	LevelChampion    = "Resistance Champion"
	LevelFighter     = "Determined Fighter"
	LevelGrowing     = "Growing Stronger"
	LevelFirstSteps  = "First Steps"
	LevelStartingOut = "Starting Out"
)
