package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tidewell/tidewell/internal/model"
)

var (
	ErrMoodLogNotFound = errors.New("mood log not found")
)

type MoodUpdate struct {
	Mood    *int
	Energy  *int
	Stress  *int
	Tags    *model.StringList
	Context *string
}

type MoodRepository interface {
	Create(log *model.MoodLog) error
	ByID(id string) (*model.MoodLog, error)
	ByDate(date string) ([]*model.MoodLog, error)
	Recent(limit int) ([]*model.MoodLog, error)
	ByDateRange(start, end string) ([]*model.MoodLog, error)
	Update(id string, update MoodUpdate) error
	Delete(id string) error
	Stats(days int) (*model.MoodStats, error)
	TagCounts(days int) ([]model.TagCount, error)
}

type moodRepository struct {
	db *sqlx.DB
}

func NewMoodRepository(db *sqlx.DB) MoodRepository {
	return &moodRepository{db: db}
}

func (r *moodRepository) Create(log *model.MoodLog) error {
	now := time.Now()
	log.ID = model.NewID("mood")
	log.CreatedAt = now
	log.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO mood_logs (id, date, mood, energy, stress, tags, context, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, log.ID, log.Date, log.Mood, log.Energy, log.Stress, log.Tags, log.Context,
		log.CreatedAt, log.UpdatedAt)

	return err
}

func (r *moodRepository) ByID(id string) (*model.MoodLog, error) {
	var log model.MoodLog
	err := r.db.Get(&log, `SELECT * FROM mood_logs WHERE id = $1`, id)

	if err == sql.ErrNoRows {
		return nil, ErrMoodLogNotFound
	}
	if err != nil {
		return nil, err
	}

	return &log, nil
}

// ByDate returns every log for a calendar day; multiple logs per day
// are allowed.
func (r *moodRepository) ByDate(date string) ([]*model.MoodLog, error) {
	var logs []*model.MoodLog
	err := r.db.Select(&logs, `
		SELECT * FROM mood_logs WHERE date = $1
		ORDER BY created_at ASC
	`, date)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *moodRepository) Recent(limit int) ([]*model.MoodLog, error) {
	var logs []*model.MoodLog
	err := r.db.Select(&logs, `
		SELECT * FROM mood_logs
		ORDER BY date DESC, created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *moodRepository) ByDateRange(start, end string) ([]*model.MoodLog, error) {
	var logs []*model.MoodLog
	err := r.db.Select(&logs, `
		SELECT * FROM mood_logs
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC, created_at ASC
	`, start, end)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *moodRepository) Update(id string, update MoodUpdate) error {
	sets := []string{}
	args := []any{}

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if update.Mood != nil {
		add("mood", *update.Mood)
	}
	if update.Energy != nil {
		add("energy", *update.Energy)
	}
	if update.Stress != nil {
		add("stress", *update.Stress)
	}
	if update.Tags != nil {
		add("tags", *update.Tags)
	}
	if update.Context != nil {
		add("context", *update.Context)
	}

	if len(sets) == 0 {
		return nil
	}

	add("updated_at", time.Now())
	args = append(args, id)
	query := fmt.Sprintf("UPDATE mood_logs SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMoodLogNotFound
	}

	return nil
}

func (r *moodRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM mood_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMoodLogNotFound
	}

	return nil
}

func (r *moodRepository) Stats(days int) (*model.MoodStats, error) {
	cutoff := model.DateOf(time.Now().AddDate(0, 0, -days))

	var stats model.MoodStats
	err := r.db.Get(&stats, `
		SELECT
			COALESCE(AVG(mood), 0) AS average_mood,
			COALESCE(AVG(energy), 0) AS average_energy,
			COALESCE(AVG(stress), 0) AS average_stress,
			COUNT(*) AS count
		FROM mood_logs
		WHERE date > $1
	`, cutoff)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// TagCounts tallies tag frequency over a window. Tags live in a JSON
// column, so the fold happens here rather than in SQL.
func (r *moodRepository) TagCounts(days int) ([]model.TagCount, error) {
	cutoff := model.DateOf(time.Now().AddDate(0, 0, -days))

	var tagLists []model.StringList
	err := r.db.Select(&tagLists, `SELECT tags FROM mood_logs WHERE date > $1`, cutoff)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, tags := range tagLists {
		for _, tag := range tags {
			counts[tag]++
		}
	}

	result := make([]model.TagCount, 0, len(counts))
	for tag, count := range counts {
		result = append(result, model.TagCount{Tag: tag, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Tag < result[j].Tag
	})

	return result, nil
}
