package model

import (
	"time"
)

type MoodLog struct {
	ID        string     `db:"id"`
	Date      string     `db:"date"`
	Mood      int        `db:"mood"`   // 1-5
	Energy    int        `db:"energy"` // 1-5
	Stress    int        `db:"stress"` // 1-5
	Tags      StringList `db:"tags"`
	Context   string     `db:"context"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

type MoodStats struct {
	AverageMood   float64 `db:"average_mood"`
	AverageEnergy float64 `db:"average_energy"`
	AverageStress float64 `db:"average_stress"`
	Count         int     `db:"count"`
}

type TagCount struct {
	Tag   string
	Count int
}
