package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewell/tidewell/internal/model"
)

func TestSettingLastWriteWins(t *testing.T) {
	database := setupDB(t)
	repo := NewSettingRepository(database)

	require.NoError(t, repo.Set("theme", "dark", model.SettingTypeString))
	require.NoError(t, repo.Set("theme", "light", model.SettingTypeString))

	setting, err := repo.ByKey("theme")
	require.NoError(t, err)
	assert.Equal(t, "light", setting.Value)

	var count int
	require.NoError(t, database.Get(&count, "SELECT COUNT(*) FROM app_settings WHERE key = 'theme'"))
	assert.Equal(t, 1, count)
}

func TestSettingNotFound(t *testing.T) {
	database := setupDB(t)
	repo := NewSettingRepository(database)

	_, err := repo.ByKey("missing")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestStreakSaveUpsertsSingleRow(t *testing.T) {
	database := setupDB(t)
	repo := NewStreakRepository(database)

	streak := &model.Streak{
		BehaviorType:  "smoking",
		CurrentStreak: 1,
		LongestStreak: 1,
		StartDate:     model.Today(),
	}
	require.NoError(t, repo.Save(streak))

	streak.CurrentStreak = 2
	streak.LongestStreak = 2
	require.NoError(t, repo.Save(streak))

	var count int
	require.NoError(t, database.Get(&count, "SELECT COUNT(*) FROM streaks WHERE behavior_type = 'smoking'"))
	assert.Equal(t, 1, count)

	stored, err := repo.ByBehaviorType("smoking")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.CurrentStreak)
}

func TestResistanceMetricsTriggerMasteryRoundTrip(t *testing.T) {
	database := setupDB(t)
	repo := NewResistanceRepository(database)

	metrics := &model.ResistanceMetrics{
		AddictionType:  model.AddictionGaming,
		TotalUrges:     3,
		TotalResisted:  2,
		ResistanceRate: 67,
		TriggerMastery: model.CountMap{"boredom": 2},
	}
	require.NoError(t, repo.Save(metrics))

	stored, err := repo.ByType(model.AddictionGaming)
	require.NoError(t, err)
	assert.Equal(t, model.CountMap{"boredom": 2}, stored.TriggerMastery)
	assert.Equal(t, 67, stored.ResistanceRate)
}
