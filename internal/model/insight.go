package model

import (
	"time"
)

type AIInsight struct {
	ID        string     `db:"id"`
	Date      string     `db:"date"`
	Category  string     `db:"category"`
	Title     string     `db:"title"`
	Content   string     `db:"content"`
	IsRead    bool       `db:"is_read"`
	Metadata  StringList `db:"metadata"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}
