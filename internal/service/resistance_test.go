package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewell/tidewell/internal/model"
)

func TestLevelLadder(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		resisted int
		want     string
	}{
		{"master at both thresholds", 90, 50, model.LevelMaster},
		{"one short of master falls to champion", 90, 49, model.LevelChampion},
		{"champion", 80, 30, model.LevelChampion},
		{"fighter", 70, 20, model.LevelFighter},
		{"growing", 60, 10, model.LevelGrowing},
		{"high rate low volume", 100, 5, model.LevelFirstSteps},
		{"first steps", 40, 5, model.LevelFirstSteps},
		{"starting out", 100, 4, model.LevelStartingOut},
		{"zero", 0, 0, model.LevelStartingOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFor(tt.rate, tt.resisted))
		})
	}
}

func TestScoreDeterminism(t *testing.T) {
	env := setupEnv(t)

	// Three resistances to set up the streak, then the fourth at
	// intensity 5: round(10 + 5*2 + min(4*0.5, 20)) = 22.
	for i := 0; i < 3; i++ {
		_, err := env.addiction.LogUrge(UrgeInput{
			AddictionType: model.AddictionGaming,
			WasResisted:   true,
			UrgeIntensity: intPtr(1),
		})
		require.NoError(t, err)
	}

	result, err := env.addiction.LogUrge(UrgeInput{
		AddictionType: model.AddictionGaming,
		WasResisted:   true,
		UrgeIntensity: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 22, result.Score)
	assert.Equal(t, 4, result.Metrics.ConsecutiveResistances)
}

func TestResistanceRateRounds(t *testing.T) {
	env := setupEnv(t)

	for i := 0; i < 10; i++ {
		_, err := env.addiction.LogUrge(UrgeInput{
			AddictionType: model.AddictionShopping,
			WasResisted:   i < 7,
			UrgeIntensity: intPtr(2),
		})
		require.NoError(t, err)
	}

	metrics, err := env.resistance.ByType(model.AddictionShopping)
	require.NoError(t, err)
	assert.Equal(t, 10, metrics.TotalUrges)
	assert.Equal(t, 7, metrics.TotalResisted)
	assert.Equal(t, 70, metrics.ResistanceRate)
}

func TestUrgeScenarioEndToEnd(t *testing.T) {
	env := setupEnv(t)

	result, err := env.addiction.LogUrge(UrgeInput{
		AddictionType: model.AddictionSmoking,
		WasResisted:   true,
		UrgeIntensity: intPtr(4),
		Trigger:       "stress",
	})
	require.NoError(t, err)

	metrics := result.Metrics
	assert.Equal(t, 1, metrics.TotalUrges)
	assert.Equal(t, 1, metrics.TotalResisted)
	assert.Equal(t, 100, metrics.ResistanceRate)
	assert.Equal(t, 1, metrics.DifficultUrgesResisted)
	assert.Equal(t, 1, metrics.ConsecutiveResistances)
	assert.Equal(t, model.CountMap{"stress": 1}, metrics.TriggerMastery)
	// round(10 + 4*2 + min(1*0.5, 20)) = round(18.5) = 19
	assert.Equal(t, 19, result.Score)
	assert.Equal(t, 19, metrics.TotalResistanceScore)

	result, err = env.addiction.LogUrge(UrgeInput{
		AddictionType: model.AddictionSmoking,
		WasResisted:   false,
	})
	require.NoError(t, err)

	metrics = result.Metrics
	assert.Equal(t, 2, metrics.TotalUrges)
	assert.Equal(t, 1, metrics.TotalResisted)
	assert.Equal(t, 50, metrics.ResistanceRate)
	assert.Equal(t, 0, metrics.ConsecutiveResistances)
	assert.Equal(t, 1, metrics.BestResistanceStreak)
	assert.Equal(t, 0, result.Score)
}

func TestUrgeUpdatesStreakInSameWrite(t *testing.T) {
	env := setupEnv(t)

	result, err := env.addiction.LogUrge(UrgeInput{
		AddictionType: model.AddictionAlcohol,
		WasResisted:   true,
		UrgeIntensity: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Streak.CurrentStreak)

	streak, err := env.streaks.ByBehaviorType(model.AddictionAlcohol)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
}

func TestLogUrgeRejectsInvalidInput(t *testing.T) {
	env := setupEnv(t)

	_, err := env.addiction.LogUrge(UrgeInput{AddictionType: "caffeine", WasResisted: true})
	assert.Error(t, err)

	_, err = env.addiction.LogUrge(UrgeInput{
		AddictionType: model.AddictionSmoking,
		WasResisted:   true,
		UrgeIntensity: intPtr(9),
	})
	assert.Error(t, err)

	// Nothing was written.
	logs, err := env.addiction.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestEncouragementFraming(t *testing.T) {
	difficult := EncouragementFor(
		&model.ResistanceMetrics{ConsecutiveResistances: 2, TotalResisted: 2},
		&model.AddictionLog{WasResisted: true, UrgeIntensity: intPtr(5)},
	)
	assert.Contains(t, difficult, "difficult")

	streak := EncouragementFor(
		&model.ResistanceMetrics{ConsecutiveResistances: 12, TotalResisted: 12},
		&model.AddictionLog{WasResisted: true, UrgeIntensity: intPtr(2)},
	)
	assert.Contains(t, streak, "12")

	slip := EncouragementFor(
		&model.ResistanceMetrics{ConsecutiveResistances: 0, TotalResisted: 8},
		&model.AddictionLog{WasResisted: false},
	)
	assert.Contains(t, slip, "8")
}
