package model

import (
	"time"
)

type CrisisResource struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Phone       string    `db:"phone"`
	URL         string    `db:"url"`
	Country     string    `db:"country"`
	IsAvailable bool      `db:"is_available"` // 24/7 availability
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
