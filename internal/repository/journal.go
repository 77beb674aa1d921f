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
	ErrJournalEntryNotFound = errors.New("journal entry not found")
)

// JournalUpdate is a partial update. WordCount is set by the service
// whenever Content is present and must travel with it.
type JournalUpdate struct {
	Title     *string
	Content   *string
	WordCount *int
	Mood      *int
	Tags      *model.StringList
}

type JournalRepository interface {
	Create(entry *model.JournalEntry) error
	ByID(id string) (*model.JournalEntry, error)
	ByDate(date string) ([]*model.JournalEntry, error)
	Recent(limit int) ([]*model.JournalEntry, error)
	ByDateRange(start, end string) ([]*model.JournalEntry, error)
	Update(id string, update JournalUpdate) error
	Delete(id string) error
	Stats(days int) (*model.JournalStats, error)
}

type journalRepository struct {
	db *sqlx.DB
}

func NewJournalRepository(db *sqlx.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(entry *model.JournalEntry) error {
	now := time.Now()
	entry.ID = model.NewID("journal")
	entry.CreatedAt = now
	entry.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO journal_entries (id, date, title, content, mood, tags, word_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, entry.ID, entry.Date, entry.Title, entry.Content, entry.Mood, entry.Tags,
		entry.WordCount, entry.CreatedAt, entry.UpdatedAt)

	return err
}

func (r *journalRepository) ByID(id string) (*model.JournalEntry, error) {
	var entry model.JournalEntry
	err := r.db.Get(&entry, `SELECT * FROM journal_entries WHERE id = $1`, id)

	if err == sql.ErrNoRows {
		return nil, ErrJournalEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *journalRepository) ByDate(date string) ([]*model.JournalEntry, error) {
	var entries []*model.JournalEntry
	err := r.db.Select(&entries, `
		SELECT * FROM journal_entries WHERE date = $1
		ORDER BY created_at ASC
	`, date)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *journalRepository) Recent(limit int) ([]*model.JournalEntry, error) {
	var entries []*model.JournalEntry
	err := r.db.Select(&entries, `
		SELECT * FROM journal_entries
		ORDER BY date DESC, created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *journalRepository) ByDateRange(start, end string) ([]*model.JournalEntry, error) {
	var entries []*model.JournalEntry
	err := r.db.Select(&entries, `
		SELECT * FROM journal_entries
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC, created_at ASC
	`, start, end)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *journalRepository) Update(id string, update JournalUpdate) error {
	sets := []string{}
	args := []any{}

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if update.Title != nil {
		add("title", *update.Title)
	}
	if update.Content != nil {
		add("content", *update.Content)
	}
	if update.WordCount != nil {
		add("word_count", *update.WordCount)
	}
	if update.Mood != nil {
		add("mood", *update.Mood)
	}
	if update.Tags != nil {
		add("tags", *update.Tags)
	}

	if len(sets) == 0 {
		return nil
	}

	add("updated_at", time.Now())
	args = append(args, id)
	query := fmt.Sprintf("UPDATE journal_entries SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrJournalEntryNotFound
	}

	return nil
}

func (r *journalRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM journal_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrJournalEntryNotFound
	}

	return nil
}

func (r *journalRepository) Stats(days int) (*model.JournalStats, error) {
	cutoff := model.DateOf(time.Now().AddDate(0, 0, -days))

	var stats model.JournalStats
	err := r.db.Get(&stats, `
		SELECT
			COUNT(*) AS entries,
			COALESCE(SUM(word_count), 0) AS total_words,
			COALESCE(AVG(word_count), 0) AS average_words
		FROM journal_entries
		WHERE date > $1
	`, cutoff)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
