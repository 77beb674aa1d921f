package model

import (
	"fmt"
	"time"
)

const (
	AddictionPorn        = "porn"
	AddictionSocialMedia = "social_media"
	AddictionAlcohol     = "alcohol"
	AddictionSmoking     = "smoking"
	AddictionGambling    = "gambling"
	AddictionShopping    = "shopping"
	AddictionGaming      = "gaming"
	AddictionOther       = "other"
)

const (
	EventTypeUrge = "urge"
	// Reserved for a future auto-derived path; never written at log time.
	EventTypeMilestone = "milestone"
)

var addictionTypes = map[string]bool{
	AddictionPorn:        true,
	AddictionSocialMedia: true,
	AddictionAlcohol:     true,
	AddictionSmoking:     true,
	AddictionGambling:    true,
	AddictionShopping:    true,
	AddictionGaming:      true,
	AddictionOther:       true,
}

// ValidateAddictionType rejects values outside the closed enum. The DDL
// carries a matching CHECK constraint, but imports and restores bypass
// the typed write path, so the service boundary validates too.
func ValidateAddictionType(t string) error {
	if !addictionTypes[t] {
		return fmt.Errorf("invalid addiction type: %q", t)
	}
	return nil
}

type AddictionLog struct {
	ID             string    `db:"id"`
	Date           string    `db:"date"`
	AddictionType  string    `db:"addiction_type"`
	EventType      string    `db:"event_type"`
	WasResisted    bool      `db:"was_resisted"`
	UrgeIntensity  *int      `db:"urge_intensity"` // 1-5, nullable
	Trigger        string    `db:"trigger"`
	Location       string    `db:"location"`
	MoodBefore     *int      `db:"mood_before"` // 1-5, nullable
	MoodAfter      *int      `db:"mood_after"`  // 1-5, nullable
	CopingStrategy string    `db:"coping_strategy"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
