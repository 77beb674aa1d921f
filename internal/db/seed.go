package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tidewell/tidewell/internal/model"
)

type seedHabit struct {
	name         string
	category     string
	trackingType string
	targetValue  float64
	unit         string
}

var defaultHabits = []seedHabit{
	{"Morning walk", model.HabitCategoryPhysical, model.TrackingDuration, 20, "minutes"},
	{"Drink water", model.HabitCategoryPhysical, model.TrackingCount, 8, "glasses"},
	{"Meditation", model.HabitCategoryMental, model.TrackingDuration, 10, "minutes"},
	{"Read a book", model.HabitCategoryMental, model.TrackingDuration, 15, "minutes"},
	{"Call a friend", model.HabitCategorySocial, model.TrackingCompletion, 1, ""},
	{"Gratitude practice", model.HabitCategorySpiritual, model.TrackingCompletion, 1, ""},
	{"Plan tomorrow", model.HabitCategoryProductivity, model.TrackingCompletion, 1, ""},
	{"No screens after 10pm", model.HabitCategoryMental, model.TrackingCompletion, 1, ""},
}

type seedResource struct {
	name        string
	description string
	phone       string
	url         string
	country     string
}

var defaultResources = []seedResource{
	{"988 Suicide & Crisis Lifeline", "Free, confidential support 24/7", "988", "https://988lifeline.org", "US"},
	{"Crisis Text Line", "Text HOME to reach a counselor", "741741", "https://www.crisistextline.org", "US"},
	{"SAMHSA National Helpline", "Treatment referral and information service", "1-800-662-4357", "https://www.samhsa.gov/find-help/national-helpline", "US"},
	{"International Association for Suicide Prevention", "Directory of crisis centers worldwide", "", "https://www.iasp.info/resources/Crisis_Centres", ""},
}

var defaultSettings = []struct {
	key, value, typ string
}{
	{model.SettingUserName, "", model.SettingTypeString},
	{model.SettingTheme, "dark", model.SettingTypeString},
	{model.SettingOnboardingComplete, "false", model.SettingTypeBool},
}

// Seed inserts default rows for each reference table that is still
// empty. The guard is a row count, not a "seeded" flag, so reseeding is
// naturally skipped once the user has any data.
func Seed(db *sqlx.DB) error {
	now := time.Now()

	empty, err := tableEmpty(db, "healthy_habits")
	if err != nil {
		return err
	}
	if empty {
		for _, h := range defaultHabits {
			_, err = db.Exec(`
				INSERT INTO healthy_habits (id, name, category, tracking_type, target_value, unit, is_active, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`, model.NewID("habit"), h.name, h.category, h.trackingType, h.targetValue, h.unit, true, now, now)
			if err != nil {
				return fmt.Errorf("failed to seed habit %q: %w", h.name, err)
			}
		}
		slog.Info("seeded default habits", "count", len(defaultHabits))
	}

	empty, err = tableEmpty(db, "crisis_resources")
	if err != nil {
		return err
	}
	if empty {
		for _, r := range defaultResources {
			_, err = db.Exec(`
				INSERT INTO crisis_resources (id, name, description, phone, url, country, is_available, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`, model.NewID("crisis"), r.name, r.description, r.phone, r.url, r.country, true, now, now)
			if err != nil {
				return fmt.Errorf("failed to seed crisis resource %q: %w", r.name, err)
			}
		}
		slog.Info("seeded default crisis resources", "count", len(defaultResources))
	}

	empty, err = tableEmpty(db, "app_settings")
	if err != nil {
		return err
	}
	if empty {
		for _, s := range defaultSettings {
			_, err = db.Exec(`
				INSERT INTO app_settings (id, key, value, type, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, model.NewID("setting"), s.key, s.value, s.typ, now, now)
			if err != nil {
				return fmt.Errorf("failed to seed setting %q: %w", s.key, err)
			}
		}
		slog.Info("seeded default settings", "count", len(defaultSettings))
	}

	return nil
}

func tableEmpty(db *sqlx.DB, table string) (bool, error) {
	var count int
	err := db.Get(&count, "SELECT COUNT(*) FROM "+table)
	if err != nil {
		return false, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count == 0, nil
}
