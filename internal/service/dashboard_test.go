package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewell/tidewell/internal/model"
)

func TestWellnessScoreZeroWithoutData(t *testing.T) {
	assert.Equal(t, 0, WellnessScore(0, nil, 0))
}

func TestWellnessScoreMoodOnly(t *testing.T) {
	// Perfect mood alone contributes exactly the mood weight.
	assert.Equal(t, 40, WellnessScore(5, nil, 0))
	assert.Equal(t, 24, WellnessScore(3, nil, 0))
}

func TestWellnessScoreSleepBlend(t *testing.T) {
	sleep := &model.SleepLog{DurationHours: 8, Quality: 5}
	assert.Equal(t, 30, WellnessScore(0, sleep, 0))

	// Duration past 8h earns nothing extra.
	oversleep := &model.SleepLog{DurationHours: 11, Quality: 5}
	assert.Equal(t, 30, WellnessScore(0, oversleep, 0))

	short := &model.SleepLog{DurationHours: 4, Quality: 5}
	// 4/8*0.7*30 + 5/5*0.3*30 = 10.5 + 9 = 19.5 -> 20
	assert.Equal(t, 20, WellnessScore(0, short, 0))
}

func TestWellnessScoreUrgeCapAndClamp(t *testing.T) {
	assert.Equal(t, 30, WellnessScore(0, nil, 3))
	// More than three resisted urges cannot push past the weight.
	assert.Equal(t, 30, WellnessScore(0, nil, 12))

	full := &model.SleepLog{DurationHours: 8, Quality: 5}
	assert.Equal(t, 100, WellnessScore(5, full, 3))
}

func TestSnapshotEmptyStore(t *testing.T) {
	env := setupEnv(t)

	snapshot, err := env.dashboard.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.Today(), snapshot.Date)
	assert.Equal(t, 0, snapshot.WellnessScore)
	assert.Nil(t, snapshot.TodaySleep)
	assert.Equal(t, 0.0, snapshot.TodayAverageMood)
	assert.Equal(t, 0, snapshot.ResistedToday)
	assert.Empty(t, snapshot.RecentMoods)
}

func TestSnapshotComposesServices(t *testing.T) {
	env := setupEnv(t)

	_, err := env.mood.Log(MoodInput{Mood: 5, Energy: 4, Stress: 2})
	require.NoError(t, err)
	_, err = env.sleep.Log(SleepInput{BedTime: "22:00", WakeTime: "06:00", Quality: 5})
	require.NoError(t, err)
	_, err = env.addiction.LogUrge(UrgeInput{
		AddictionType: model.AddictionSmoking,
		WasResisted:   true,
		UrgeIntensity: intPtr(3),
	})
	require.NoError(t, err)
	_, err = env.journal.Create(JournalInput{Content: "A quiet day."})
	require.NoError(t, err)

	snapshot, err := env.dashboard.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5.0, snapshot.TodayAverageMood)
	require.NotNil(t, snapshot.TodaySleep)
	assert.Equal(t, 1, snapshot.ResistedToday)
	assert.Len(t, snapshot.RecentMoods, 1)
	assert.Len(t, snapshot.RecentEntries, 1)
	// mood 40 + sleep 30 + urges 10 = 80
	assert.Equal(t, 80, snapshot.WellnessScore)

	// mood_logging, sleep, journal, smoking
	assert.Len(t, snapshot.Streaks, 4)
}
