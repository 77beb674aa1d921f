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
	ErrHabitNotFound      = errors.New("habit not found")
	ErrCompletionNotFound = errors.New("habit completion not found")
)

type HabitUpdate struct {
	Name        *string
	Category    *string
	TargetValue *float64
	Unit        *string
	IsActive    *bool
}

type HabitRepository interface {
	Create(habit *model.HealthyHabit) error
	ByID(id string) (*model.HealthyHabit, error)
	Active() ([]*model.HealthyHabit, error)
	All() ([]*model.HealthyHabit, error)
	Update(id string, update HabitUpdate) error
	Delete(id string) error

	UpsertCompletion(completion *model.HabitCompletion) error
	CompletionByHabitAndDate(habitID, date string) (*model.HabitCompletion, error)
	CompletionsByDate(date string) ([]*model.HabitCompletion, error)
	CompletionsByDateRange(habitID, start, end string) ([]*model.HabitCompletion, error)
	CompletionRate(habitID string, days int) (float64, error)
}

type habitRepository struct {
	db *sqlx.DB
}

func NewHabitRepository(db *sqlx.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(habit *model.HealthyHabit) error {
	now := time.Now()
	habit.ID = model.NewID("habit")
	habit.CreatedAt = now
	habit.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO healthy_habits (id, name, category, tracking_type, target_value, unit, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, habit.ID, habit.Name, habit.Category, habit.TrackingType, habit.TargetValue,
		habit.Unit, habit.IsActive, habit.CreatedAt, habit.UpdatedAt)

	return err
}

func (r *habitRepository) ByID(id string) (*model.HealthyHabit, error) {
	var habit model.HealthyHabit
	err := r.db.Get(&habit, `SELECT * FROM healthy_habits WHERE id = $1`, id)

	if err == sql.ErrNoRows {
		return nil, ErrHabitNotFound
	}
	if err != nil {
		return nil, err
	}

	return &habit, nil
}

func (r *habitRepository) Active() ([]*model.HealthyHabit, error) {
	var habits []*model.HealthyHabit
	err := r.db.Select(&habits, `
		SELECT * FROM healthy_habits WHERE is_active = 1
		ORDER BY category ASC, name ASC
	`)
	if err != nil {
		return nil, err
	}

	return habits, nil
}

func (r *habitRepository) All() ([]*model.HealthyHabit, error) {
	var habits []*model.HealthyHabit
	err := r.db.Select(&habits, `
		SELECT * FROM healthy_habits
		ORDER BY category ASC, name ASC
	`)
	if err != nil {
		return nil, err
	}

	return habits, nil
}

// Update never touches tracking_type: changing how an existing habit is
// measured would make its historical completions unreadable.
func (r *habitRepository) Update(id string, update HabitUpdate) error {
	sets := []string{}
	args := []any{}

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Category != nil {
		add("category", *update.Category)
	}
	if update.TargetValue != nil {
		add("target_value", *update.TargetValue)
	}
	if update.Unit != nil {
		add("unit", *update.Unit)
	}
	if update.IsActive != nil {
		add("is_active", *update.IsActive)
	}

	if len(sets) == 0 {
		return nil
	}

	add("updated_at", time.Now())
	args = append(args, id)
	query := fmt.Sprintf("UPDATE healthy_habits SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrHabitNotFound
	}

	return nil
}

func (r *habitRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM healthy_habits WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrHabitNotFound
	}

	return nil
}

// UpsertCompletion writes the completion for (habit_id, date). Logging
// the same habit again on the same day replaces the earlier row in
// place; duplicates per day never accumulate.
func (r *habitRepository) UpsertCompletion(completion *model.HabitCompletion) error {
	now := time.Now()
	completion.ID = model.NewID("completion")
	completion.CreatedAt = now
	completion.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO habit_completions (id, habit_id, date, completed, current_value, difficulty, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (habit_id, date) DO UPDATE SET
			completed = excluded.completed,
			current_value = excluded.current_value,
			difficulty = excluded.difficulty,
			notes = excluded.notes,
			updated_at = excluded.updated_at
	`, completion.ID, completion.HabitID, completion.Date, completion.Completed,
		completion.CurrentValue, completion.Difficulty, completion.Notes,
		completion.CreatedAt, completion.UpdatedAt)

	return err
}

func (r *habitRepository) CompletionByHabitAndDate(habitID, date string) (*model.HabitCompletion, error) {
	var completion model.HabitCompletion
	err := r.db.Get(&completion, `
		SELECT * FROM habit_completions WHERE habit_id = $1 AND date = $2
	`, habitID, date)

	if err == sql.ErrNoRows {
		return nil, ErrCompletionNotFound
	}
	if err != nil {
		return nil, err
	}

	return &completion, nil
}

func (r *habitRepository) CompletionsByDate(date string) ([]*model.HabitCompletion, error) {
	var completions []*model.HabitCompletion
	err := r.db.Select(&completions, `
		SELECT * FROM habit_completions WHERE date = $1
	`, date)
	if err != nil {
		return nil, err
	}

	return completions, nil
}

func (r *habitRepository) CompletionsByDateRange(habitID, start, end string) ([]*model.HabitCompletion, error) {
	var completions []*model.HabitCompletion
	err := r.db.Select(&completions, `
		SELECT * FROM habit_completions
		WHERE habit_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`, habitID, start, end)
	if err != nil {
		return nil, err
	}

	return completions, nil
}

// CompletionRate is the percent of the last N days with a completed
// row for the habit.
func (r *habitRepository) CompletionRate(habitID string, days int) (float64, error) {
	if days <= 0 {
		return 0, nil
	}
	cutoff := model.DateOf(time.Now().AddDate(0, 0, -days))

	var completed int
	err := r.db.Get(&completed, `
		SELECT COUNT(*) FROM habit_completions
		WHERE habit_id = $1 AND date > $2 AND completed = 1
	`, habitID, cutoff)
	if err != nil {
		return 0, err
	}

	return float64(completed) / float64(days) * 100, nil
}
