package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewell/tidewell/internal/model"
	"github.com/tidewell/tidewell/internal/repository"
)

func TestCompleteDerivesStatusFromTrackingType(t *testing.T) {
	env := setupEnv(t)

	duration, err := env.habits.Create(HabitInput{
		Name:         "Meditation",
		Category:     model.HabitCategoryMental,
		TrackingType: model.TrackingDuration,
		TargetValue:  10,
		Unit:         "minutes",
	})
	require.NoError(t, err)

	below, err := env.habits.Complete(CompletionInput{HabitID: duration.ID, CurrentValue: 5})
	require.NoError(t, err)
	assert.False(t, below.Completed)

	met, err := env.habits.Complete(CompletionInput{HabitID: duration.ID, CurrentValue: 10})
	require.NoError(t, err)
	assert.True(t, met.Completed)

	checkbox, err := env.habits.Create(HabitInput{
		Name:         "Call a friend",
		Category:     model.HabitCategorySocial,
		TrackingType: model.TrackingCompletion,
		TargetValue:  1,
	})
	require.NoError(t, err)

	done, err := env.habits.Complete(CompletionInput{HabitID: checkbox.ID, CurrentValue: 1})
	require.NoError(t, err)
	assert.True(t, done.Completed)
}

func TestCompleteSameDayReplaces(t *testing.T) {
	env := setupEnv(t)

	habit, err := env.habits.Create(HabitInput{
		Name:         "Drink water",
		Category:     model.HabitCategoryPhysical,
		TrackingType: model.TrackingCount,
		TargetValue:  8,
		Unit:         "glasses",
	})
	require.NoError(t, err)

	_, err = env.habits.Complete(CompletionInput{HabitID: habit.ID, CurrentValue: 3})
	require.NoError(t, err)
	_, err = env.habits.Complete(CompletionInput{HabitID: habit.ID, CurrentValue: 8})
	require.NoError(t, err)

	stored, err := env.habits.CompletionByHabitAndDate(habit.ID, model.Today())
	require.NoError(t, err)
	assert.Equal(t, 8.0, stored.CurrentValue)
	assert.True(t, stored.Completed)

	var count int
	require.NoError(t, env.db.Get(&count,
		"SELECT COUNT(*) FROM habit_completions WHERE habit_id = $1", habit.ID))
	assert.Equal(t, 1, count)
}

func TestTargetChangeLeavesHistoryAlone(t *testing.T) {
	env := setupEnv(t)

	habit, err := env.habits.Create(HabitInput{
		Name:         "Read",
		Category:     model.HabitCategoryMental,
		TrackingType: model.TrackingDuration,
		TargetValue:  15,
		Unit:         "minutes",
	})
	require.NoError(t, err)

	done, err := env.habits.Complete(CompletionInput{HabitID: habit.ID, CurrentValue: 15})
	require.NoError(t, err)
	assert.True(t, done.Completed)

	// Raising the target afterwards must not rewrite the stored flag.
	target := 30.0
	require.NoError(t, env.habits.Update(habit.ID, repository.HabitUpdate{TargetValue: &target}))

	stored, err := env.habits.CompletionByHabitAndDate(habit.ID, model.Today())
	require.NoError(t, err)
	assert.True(t, stored.Completed)
}

func TestCreateHabitValidation(t *testing.T) {
	env := setupEnv(t)

	_, err := env.habits.Create(HabitInput{
		Name:         "Bad",
		Category:     "finance",
		TrackingType: model.TrackingCompletion,
		TargetValue:  1,
	})
	assert.Error(t, err)

	_, err = env.habits.Create(HabitInput{
		Name:         "Bad",
		Category:     model.HabitCategoryMental,
		TrackingType: "streak",
		TargetValue:  1,
	})
	assert.Error(t, err)
}

func TestForDatePairsHabitsWithCompletions(t *testing.T) {
	env := setupEnv(t)

	first, err := env.habits.Create(HabitInput{
		Name: "One", Category: model.HabitCategoryMental,
		TrackingType: model.TrackingCompletion, TargetValue: 1,
	})
	require.NoError(t, err)
	_, err = env.habits.Create(HabitInput{
		Name: "Two", Category: model.HabitCategoryPhysical,
		TrackingType: model.TrackingCompletion, TargetValue: 1,
	})
	require.NoError(t, err)

	_, err = env.habits.Complete(CompletionInput{HabitID: first.ID, CurrentValue: 1})
	require.NoError(t, err)

	daily, err := env.habits.ForDate(model.Today())
	require.NoError(t, err)
	require.Len(t, daily, 2)

	completed := 0
	for _, d := range daily {
		if d.Completion != nil {
			completed++
			assert.Equal(t, first.ID, d.Habit.ID)
		}
	}
	assert.Equal(t, 1, completed)
}
