package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tidewell/tidewell/internal/model"
)

var (
	ErrInsightNotFound = errors.New("insight not found")
)

type InsightRepository interface {
	Create(insight *model.AIInsight) error
	ByID(id string) (*model.AIInsight, error)
	Recent(limit int) ([]*model.AIInsight, error)
	Unread() ([]*model.AIInsight, error)
	MarkRead(id string) error
	Delete(id string) error
}

type insightRepository struct {
	db *sqlx.DB
}

func NewInsightRepository(db *sqlx.DB) InsightRepository {
	return &insightRepository{db: db}
}

func (r *insightRepository) Create(insight *model.AIInsight) error {
	now := time.Now()
	insight.ID = model.NewID("insight")
	insight.CreatedAt = now
	insight.UpdatedAt = now
	if insight.Date == "" {
		insight.Date = model.Today()
	}

	_, err := r.db.Exec(`
		INSERT INTO ai_insights (id, date, category, title, content, is_read, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, insight.ID, insight.Date, insight.Category, insight.Title, insight.Content,
		insight.IsRead, insight.Metadata, insight.CreatedAt, insight.UpdatedAt)

	return err
}

func (r *insightRepository) ByID(id string) (*model.AIInsight, error) {
	var insight model.AIInsight
	err := r.db.Get(&insight, `SELECT * FROM ai_insights WHERE id = $1`, id)

	if err == sql.ErrNoRows {
		return nil, ErrInsightNotFound
	}
	if err != nil {
		return nil, err
	}

	return &insight, nil
}

func (r *insightRepository) Recent(limit int) ([]*model.AIInsight, error) {
	var insights []*model.AIInsight
	err := r.db.Select(&insights, `
		SELECT * FROM ai_insights
		ORDER BY date DESC, created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}

	return insights, nil
}

func (r *insightRepository) Unread() ([]*model.AIInsight, error) {
	var insights []*model.AIInsight
	err := r.db.Select(&insights, `
		SELECT * FROM ai_insights WHERE is_read = 0
		ORDER BY date DESC, created_at DESC
	`)
	if err != nil {
		return nil, err
	}

	return insights, nil
}

func (r *insightRepository) MarkRead(id string) error {
	result, err := r.db.Exec(`
		UPDATE ai_insights SET is_read = 1, updated_at = $1 WHERE id = $2
	`, time.Now(), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrInsightNotFound
	}

	return nil
}

func (r *insightRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM ai_insights WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrInsightNotFound
	}

	return nil
}
