package model

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIDFormat(t *testing.T) {
	id := NewID("mood")
	assert.Regexp(t, regexp.MustCompile(`^mood-\d+-[0-9a-f]{8}$`), id)

	other := NewID("mood")
	assert.NotEqual(t, id, other)
}

func TestSleepDuration(t *testing.T) {
	tests := []struct {
		name     string
		bed      string
		wake     string
		expected float64
	}{
		{"same day", "01:00", "09:00", 8},
		{"across midnight", "22:30", "06:30", 8},
		{"wake earlier than bed", "23:00", "07:15", 8.25},
		{"bad input", "late", "07:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SleepDuration(tt.bed, tt.wake), 0.001)
		})
	}
}

func TestHabitIsCompleted(t *testing.T) {
	completion := &HealthyHabit{TrackingType: TrackingCompletion, TargetValue: 1}
	assert.True(t, completion.IsCompleted(1))
	assert.True(t, completion.IsCompleted(0.5))
	assert.False(t, completion.IsCompleted(0))

	duration := &HealthyHabit{TrackingType: TrackingDuration, TargetValue: 20}
	assert.True(t, duration.IsCompleted(20))
	assert.True(t, duration.IsCompleted(25))
	assert.False(t, duration.IsCompleted(19))
}

func TestValidateAddictionType(t *testing.T) {
	assert.NoError(t, ValidateAddictionType(AddictionSmoking))
	assert.Error(t, ValidateAddictionType("caffeine"))
	assert.Error(t, ValidateAddictionType(""))
}
