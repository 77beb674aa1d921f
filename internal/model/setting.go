package model

import (
	"time"
)

// Well-known setting keys.
const (
	SettingUserName           = "user_name"
	SettingTheme              = "theme"
	SettingOnboardingComplete = "onboarding_complete"
)

const (
	SettingTypeString = "string"
	SettingTypeBool   = "boolean"
	SettingTypeNumber = "number"
)

type AppSetting struct {
	ID        string    `db:"id"`
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
