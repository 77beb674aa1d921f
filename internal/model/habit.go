package model

import (
	"fmt"
	"time"
)

const (
	HabitCategoryPhysical     = "physical"
	HabitCategoryMental       = "mental"
	HabitCategorySocial       = "social"
	HabitCategorySpiritual    = "spiritual"
	HabitCategoryProductivity = "productivity"
)

const (
	TrackingCompletion = "completion"
	TrackingDuration   = "duration"
	TrackingCount      = "count"
	TrackingQuantity   = "quantity"
)

var habitCategories = map[string]bool{
	HabitCategoryPhysical:     true,
	HabitCategoryMental:       true,
	HabitCategorySocial:       true,
	HabitCategorySpiritual:    true,
	HabitCategoryProductivity: true,
}

var trackingTypes = map[string]bool{
	TrackingCompletion: true,
	TrackingDuration:   true,
	TrackingCount:      true,
	TrackingQuantity:   true,
}

func ValidateHabitCategory(c string) error {
	if !habitCategories[c] {
		return fmt.Errorf("invalid habit category: %q", c)
	}
	return nil
}

func ValidateTrackingType(t string) error {
	if !trackingTypes[t] {
		return fmt.Errorf("invalid tracking type: %q", t)
	}
	return nil
}

type HealthyHabit struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Category     string    `db:"category"`
	TrackingType string    `db:"tracking_type"`
	TargetValue  float64   `db:"target_value"`
	Unit         string    `db:"unit"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// IsCompleted reports whether a logged value satisfies the habit's
// target under its tracking type. Completion-type habits count any
// positive value; the rest compare against the target. The result is
// persisted on the completion row at write time, so a later target
// change never rewrites history.
func (h *HealthyHabit) IsCompleted(currentValue float64) bool {
	if h.TrackingType == TrackingCompletion {
		return currentValue > 0
	}
	return currentValue >= h.TargetValue
}

type HabitCompletion struct {
	ID           string    `db:"id"`
	HabitID      string    `db:"habit_id"`
	Date         string    `db:"date"`
	Completed    bool      `db:"completed"`
	CurrentValue float64   `db:"current_value"`
	Difficulty   int       `db:"difficulty"` // 1-5
	Notes        string    `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
