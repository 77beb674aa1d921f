package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewell/tidewell/internal/model"
)

func TestSleepCreateAndByDate(t *testing.T) {
	database := setupDB(t)
	repo := NewSleepRepository(database)

	log := &model.SleepLog{
		Date:          "2026-08-29",
		BedTime:       "22:30",
		WakeTime:      "06:30",
		DurationHours: 8,
		Quality:       4,
	}
	require.NoError(t, repo.Create(log))

	stored, err := repo.ByDate("2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, log.ID, stored.ID)
	assert.Equal(t, 8.0, stored.DurationHours)
	assert.False(t, stored.DreamRecall)
}

func TestSleepByDateNotFound(t *testing.T) {
	database := setupDB(t)
	repo := NewSleepRepository(database)

	_, err := repo.ByDate("2026-01-01")
	assert.ErrorIs(t, err, ErrSleepLogNotFound)
}

func TestSleepStatsEmptyWindow(t *testing.T) {
	database := setupDB(t)
	repo := NewSleepRepository(database)

	stats, err := repo.Stats(7)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Count)
	assert.Equal(t, 0.0, stats.AverageHours)
	assert.Equal(t, 0.0, stats.AverageQuality)
}

func TestSleepStats(t *testing.T) {
	database := setupDB(t)
	repo := NewSleepRepository(database)

	today := model.Today()
	require.NoError(t, repo.Create(&model.SleepLog{
		Date: today, BedTime: "22:00", WakeTime: "06:00", DurationHours: 8, Quality: 4,
	}))
	require.NoError(t, repo.Create(&model.SleepLog{
		Date: today, BedTime: "23:00", WakeTime: "05:00", DurationHours: 6, Quality: 2,
	}))

	stats, err := repo.Stats(7)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
	assert.InDelta(t, 7.0, stats.AverageHours, 0.001)
	assert.InDelta(t, 3.0, stats.AverageQuality, 0.001)
}

func TestSleepRecentOrder(t *testing.T) {
	database := setupDB(t)
	repo := NewSleepRepository(database)

	for _, date := range []string{"2026-08-27", "2026-08-29", "2026-08-28"} {
		require.NoError(t, repo.Create(&model.SleepLog{
			Date: date, BedTime: "22:00", WakeTime: "06:00", DurationHours: 8, Quality: 3,
		}))
	}

	logs, err := repo.Recent(2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2026-08-29", logs[0].Date)
	assert.Equal(t, "2026-08-28", logs[1].Date)
}
