package model

import (
	"time"
)

type JournalEntry struct {
	ID        string     `db:"id"`
	Date      string     `db:"date"`
	Title     *string    `db:"title"`
	Content   string     `db:"content"` // Markdown
	Mood      *int       `db:"mood"`    // 1-5, nullable
	Tags      StringList `db:"tags"`
	WordCount int        `db:"word_count"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

type JournalStats struct {
	Entries      int     `db:"entries"`
	TotalWords   int     `db:"total_words"`
	AverageWords float64 `db:"average_words"`
}
