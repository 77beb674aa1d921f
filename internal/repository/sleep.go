package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tidewell/tidewell/internal/model"
)

var (
	ErrSleepLogNotFound = errors.New("sleep log not found")
)

// SleepUpdate carries the fields of a partial update. Nil fields are
// left untouched.
type SleepUpdate struct {
	BedTime       *string
	WakeTime      *string
	DurationHours *float64
	Quality       *int
	Interruptions *int
	DreamRecall   *bool
	Environment   *string
}

type SleepRepository interface {
	Create(log *model.SleepLog) error
	ByID(id string) (*model.SleepLog, error)
	ByDate(date string) (*model.SleepLog, error)
	Recent(limit int) ([]*model.SleepLog, error)
	ByDateRange(start, end string) ([]*model.SleepLog, error)
	Update(id string, update SleepUpdate) error
	Delete(id string) error
	Stats(days int) (*model.SleepStats, error)
}

type sleepRepository struct {
	db *sqlx.DB
}

func NewSleepRepository(db *sqlx.DB) SleepRepository {
	return &sleepRepository{db: db}
}

func (r *sleepRepository) Create(log *model.SleepLog) error {
	now := time.Now()
	log.ID = model.NewID("sleep")
	log.CreatedAt = now
	log.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO sleep_logs (id, date, bed_time, wake_time, sleep_duration_hours, sleep_quality, interruptions, dream_recall, environment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, log.ID, log.Date, log.BedTime, log.WakeTime, log.DurationHours, log.Quality,
		log.Interruptions, log.DreamRecall, log.Environment, log.CreatedAt, log.UpdatedAt)

	return err
}

func (r *sleepRepository) ByID(id string) (*model.SleepLog, error) {
	var log model.SleepLog
	err := r.db.Get(&log, `SELECT * FROM sleep_logs WHERE id = $1`, id)

	if err == sql.ErrNoRows {
		return nil, ErrSleepLogNotFound
	}
	if err != nil {
		return nil, err
	}

	return &log, nil
}

// ByDate returns the latest log for a calendar day. The UI treats one
// log per day as canonical but the table does not enforce it.
func (r *sleepRepository) ByDate(date string) (*model.SleepLog, error) {
	var log model.SleepLog
	err := r.db.Get(&log, `
		SELECT * FROM sleep_logs WHERE date = $1
		ORDER BY created_at DESC LIMIT 1
	`, date)

	if err == sql.ErrNoRows {
		return nil, ErrSleepLogNotFound
	}
	if err != nil {
		return nil, err
	}

	return &log, nil
}

func (r *sleepRepository) Recent(limit int) ([]*model.SleepLog, error) {
	var logs []*model.SleepLog
	err := r.db.Select(&logs, `
		SELECT * FROM sleep_logs
		ORDER BY date DESC, created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *sleepRepository) ByDateRange(start, end string) ([]*model.SleepLog, error) {
	var logs []*model.SleepLog
	err := r.db.Select(&logs, `
		SELECT * FROM sleep_logs
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`, start, end)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *sleepRepository) Update(id string, update SleepUpdate) error {
	sets := []string{}
	args := []any{}

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if update.BedTime != nil {
		add("bed_time", *update.BedTime)
	}
	if update.WakeTime != nil {
		add("wake_time", *update.WakeTime)
	}
	if update.DurationHours != nil {
		add("sleep_duration_hours", *update.DurationHours)
	}
	if update.Quality != nil {
		add("sleep_quality", *update.Quality)
	}
	if update.Interruptions != nil {
		add("interruptions", *update.Interruptions)
	}
	if update.DreamRecall != nil {
		add("dream_recall", *update.DreamRecall)
	}
	if update.Environment != nil {
		add("environment", *update.Environment)
	}

	if len(sets) == 0 {
		return nil
	}

	add("updated_at", time.Now())
	args = append(args, id)
	query := fmt.Sprintf("UPDATE sleep_logs SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSleepLogNotFound
	}

	return nil
}

func (r *sleepRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM sleep_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSleepLogNotFound
	}

	return nil
}

// Stats averages the last N days. An empty window yields zeroes, not an
// error.
func (r *sleepRepository) Stats(days int) (*model.SleepStats, error) {
	cutoff := model.DateOf(time.Now().AddDate(0, 0, -days))

	var stats model.SleepStats
	err := r.db.Get(&stats, `
		SELECT
			COALESCE(AVG(sleep_duration_hours), 0) AS average_hours,
			COALESCE(AVG(sleep_quality), 0) AS average_quality,
			COALESCE(AVG(interruptions), 0) AS average_interruptions,
			COUNT(*) AS count
		FROM sleep_logs
		WHERE date > $1
	`, cutoff)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
