package model

import (
	"time"
)

type SleepLog struct {
	ID            string    `db:"id"`
	Date          string    `db:"date"`
	BedTime       string    `db:"bed_time"`
	WakeTime      string    `db:"wake_time"`
	DurationHours float64   `db:"sleep_duration_hours"`
	Quality       int       `db:"sleep_quality"` // 1-5
	Interruptions int       `db:"interruptions"`
	DreamRecall   bool      `db:"dream_recall"`
	Environment   string    `db:"environment"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// SleepDuration computes hours slept from clock times, assuming wake is
// on the next day when it reads earlier than bedtime.
func SleepDuration(bedTime, wakeTime string) float64 {
	bed, err := time.Parse("15:04", bedTime)
	if err != nil {
		return 0
	}
	wake, err := time.Parse("15:04", wakeTime)
	if err != nil {
		return 0
	}
	if !wake.After(bed) {
		wake = wake.Add(24 * time.Hour)
	}
	return wake.Sub(bed).Hours()
}

type SleepStats struct {
	AverageHours         float64 `db:"average_hours"`
	AverageQuality       float64 `db:"average_quality"`
	AverageInterruptions float64 `db:"average_interruptions"`
	Count                int     `db:"count"`
}
