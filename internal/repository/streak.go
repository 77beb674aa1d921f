package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tidewell/tidewell/internal/model"
)

var (
	ErrStreakNotFound = errors.New("streak not found")
)

type StreakRepository interface {
	WithTx(tx *sqlx.Tx) StreakRepository

	ByBehaviorType(behaviorType string) (*model.Streak, error)
	All() ([]*model.Streak, error)
	Save(streak *model.Streak) error
	Delete(behaviorType string) error
}

type streakRepository struct {
	db sqlx.Ext
}

func NewStreakRepository(db *sqlx.DB) StreakRepository {
	return &streakRepository{db: db}
}

func (r *streakRepository) WithTx(tx *sqlx.Tx) StreakRepository {
	return &streakRepository{db: tx}
}

func (r *streakRepository) ByBehaviorType(behaviorType string) (*model.Streak, error) {
	var streak model.Streak
	err := sqlx.Get(r.db, &streak, `SELECT * FROM streaks WHERE behavior_type = $1`, behaviorType)

	if err == sql.ErrNoRows {
		return nil, ErrStreakNotFound
	}
	if err != nil {
		return nil, err
	}

	return &streak, nil
}

func (r *streakRepository) All() ([]*model.Streak, error) {
	var streaks []*model.Streak
	err := sqlx.Select(r.db, &streaks, `
		SELECT * FROM streaks ORDER BY behavior_type ASC
	`)
	if err != nil {
		return nil, err
	}

	return streaks, nil
}

// Save upserts the one row per behavior type. The row is the streak
// engine's entire persisted state.
func (r *streakRepository) Save(streak *model.Streak) error {
	now := time.Now()
	if streak.ID == "" {
		streak.ID = model.NewID("streak")
		streak.CreatedAt = now
	}
	streak.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO streaks (id, behavior_type, current_streak, longest_streak, last_reset_date, start_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (behavior_type) DO UPDATE SET
			current_streak = excluded.current_streak,
			longest_streak = excluded.longest_streak,
			last_reset_date = excluded.last_reset_date,
			start_date = excluded.start_date,
			updated_at = excluded.updated_at
	`, streak.ID, streak.BehaviorType, streak.CurrentStreak, streak.LongestStreak,
		streak.LastResetDate, streak.StartDate, streak.CreatedAt, streak.UpdatedAt)

	return err
}

func (r *streakRepository) Delete(behaviorType string) error {
	result, err := r.db.Exec(`DELETE FROM streaks WHERE behavior_type = $1`, behaviorType)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStreakNotFound
	}

	return nil
}
