package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/tidewell/tidewell/internal/db"
	"github.com/tidewell/tidewell/internal/repository"
)

type testEnv struct {
	db         *sqlx.DB
	streaks    *StreakService
	resistance *ResistanceService
	addiction  *AddictionService
	sleep      *SleepService
	mood       *MoodService
	habits     *HabitService
	journal    *JournalService
	insights   *InsightService
	dashboard  *DashboardService
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Init("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	t.Cleanup(func() {
		_ = database.Close()
	})

	streakRepo := repository.NewStreakRepository(database)
	resistanceRepo := repository.NewResistanceRepository(database)
	addictionRepo := repository.NewAddictionRepository(database)

	streaks := NewStreakService(streakRepo)
	resistance := NewResistanceService(resistanceRepo)
	addiction := NewAddictionService(database, addictionRepo, resistanceRepo, streakRepo)
	sleep := NewSleepService(repository.NewSleepRepository(database), streaks)
	mood := NewMoodService(repository.NewMoodRepository(database), streaks)
	habits := NewHabitService(repository.NewHabitRepository(database))
	journal := NewJournalService(repository.NewJournalRepository(database), streaks)
	insights := NewInsightService(repository.NewInsightRepository(database))
	dashboard := NewDashboardService(mood, sleep, addiction, journal, streaks, habits, insights)

	return &testEnv{
		db:         database,
		streaks:    streaks,
		resistance: resistance,
		addiction:  addiction,
		sleep:      sleep,
		mood:       mood,
		habits:     habits,
		journal:    journal,
		insights:   insights,
		dashboard:  dashboard,
	}
}

// backdateStreak rewrites a streak's updated_at so day-gap transitions
// can be exercised without waiting for real days to pass.
func (e *testEnv) backdateStreak(t *testing.T, behaviorType string, daysAgo int) {
	t.Helper()
	_, err := e.db.Exec(
		`UPDATE streaks SET updated_at = $1 WHERE behavior_type = $2`,
		time.Now().AddDate(0, 0, -daysAgo), behaviorType,
	)
	require.NoError(t, err)
}

func intPtr(v int) *int {
	return &v
}
