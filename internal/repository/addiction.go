package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tidewell/tidewell/internal/model"
)

var (
	ErrAddictionLogNotFound = errors.New("addiction log not found")
)

type AddictionRepository interface {
	// WithTx returns a view of the repository bound to an open
	// transaction, so the urge write path can commit the log and its
	// derived metrics atomically.
	WithTx(tx *sqlx.Tx) AddictionRepository

	Create(log *model.AddictionLog) error
	ByID(id string) (*model.AddictionLog, error)
	ByDate(date string) ([]*model.AddictionLog, error)
	ByType(addictionType string, limit int) ([]*model.AddictionLog, error)
	Recent(limit int) ([]*model.AddictionLog, error)
	ByDateRange(start, end string) ([]*model.AddictionLog, error)
	Delete(id string) error
	ResistedCountOnDate(date string) (int, error)
}

type addictionRepository struct {
	db sqlx.Ext
}

func NewAddictionRepository(db *sqlx.DB) AddictionRepository {
	return &addictionRepository{db: db}
}

func (r *addictionRepository) WithTx(tx *sqlx.Tx) AddictionRepository {
	return &addictionRepository{db: tx}
}

func (r *addictionRepository) Create(log *model.AddictionLog) error {
	now := time.Now()
	log.ID = model.NewID("addiction")
	log.CreatedAt = now
	log.UpdatedAt = now
	if log.EventType == "" {
		log.EventType = model.EventTypeUrge
	}

	_, err := r.db.Exec(`
		INSERT INTO addiction_logs (id, date, addiction_type, event_type, was_resisted, urge_intensity, "trigger", location, mood_before, mood_after, coping_strategy, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, log.ID, log.Date, log.AddictionType, log.EventType, log.WasResisted, log.UrgeIntensity,
		log.Trigger, log.Location, log.MoodBefore, log.MoodAfter, log.CopingStrategy,
		log.CreatedAt, log.UpdatedAt)

	return err
}

func (r *addictionRepository) ByID(id string) (*model.AddictionLog, error) {
	var log model.AddictionLog
	err := sqlx.Get(r.db, &log, `SELECT * FROM addiction_logs WHERE id = $1`, id)

	if err == sql.ErrNoRows {
		return nil, ErrAddictionLogNotFound
	}
	if err != nil {
		return nil, err
	}

	return &log, nil
}

func (r *addictionRepository) ByDate(date string) ([]*model.AddictionLog, error) {
	var logs []*model.AddictionLog
	err := sqlx.Select(r.db, &logs, `
		SELECT * FROM addiction_logs WHERE date = $1
		ORDER BY created_at ASC
	`, date)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *addictionRepository) ByType(addictionType string, limit int) ([]*model.AddictionLog, error) {
	var logs []*model.AddictionLog
	err := sqlx.Select(r.db, &logs, `
		SELECT * FROM addiction_logs WHERE addiction_type = $1
		ORDER BY date DESC, created_at DESC LIMIT $2
	`, addictionType, limit)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *addictionRepository) Recent(limit int) ([]*model.AddictionLog, error) {
	var logs []*model.AddictionLog
	err := sqlx.Select(r.db, &logs, `
		SELECT * FROM addiction_logs
		ORDER BY date DESC, created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *addictionRepository) ByDateRange(start, end string) ([]*model.AddictionLog, error) {
	var logs []*model.AddictionLog
	err := sqlx.Select(r.db, &logs, `
		SELECT * FROM addiction_logs
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC, created_at ASC
	`, start, end)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *addictionRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM addiction_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAddictionLogNotFound
	}

	return nil
}

// ResistedCountOnDate counts resisted urges across all addiction types
// for one calendar day. Feeds the wellness score.
func (r *addictionRepository) ResistedCountOnDate(date string) (int, error) {
	var count int
	err := sqlx.Get(r.db, &count, `
		SELECT COUNT(*) FROM addiction_logs
		WHERE date = $1 AND was_resisted = 1
	`, date)
	if err != nil {
		return 0, err
	}

	return count, nil
}
