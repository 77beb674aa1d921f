package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tidewell/tidewell/internal/model"
)

var (
	ErrResistanceMetricsNotFound = errors.New("resistance metrics not found")
)

type ResistanceRepository interface {
	WithTx(tx *sqlx.Tx) ResistanceRepository

	ByType(addictionType string) (*model.ResistanceMetrics, error)
	All() ([]*model.ResistanceMetrics, error)
	Save(metrics *model.ResistanceMetrics) error
}

type resistanceRepository struct {
	db sqlx.Ext
}

func NewResistanceRepository(db *sqlx.DB) ResistanceRepository {
	return &resistanceRepository{db: db}
}

func (r *resistanceRepository) WithTx(tx *sqlx.Tx) ResistanceRepository {
	return &resistanceRepository{db: tx}
}

func (r *resistanceRepository) ByType(addictionType string) (*model.ResistanceMetrics, error) {
	var metrics model.ResistanceMetrics
	err := sqlx.Get(r.db, &metrics, `
		SELECT * FROM resistance_metrics WHERE addiction_type = $1
	`, addictionType)

	if err == sql.ErrNoRows {
		return nil, ErrResistanceMetricsNotFound
	}
	if err != nil {
		return nil, err
	}

	return &metrics, nil
}

func (r *resistanceRepository) All() ([]*model.ResistanceMetrics, error) {
	var metrics []*model.ResistanceMetrics
	err := sqlx.Select(r.db, &metrics, `
		SELECT * FROM resistance_metrics ORDER BY addiction_type ASC
	`)
	if err != nil {
		return nil, err
	}

	return metrics, nil
}

// Save upserts the one row per addiction type, written on every urge
// event.
func (r *resistanceRepository) Save(metrics *model.ResistanceMetrics) error {
	now := time.Now()
	if metrics.ID == "" {
		metrics.ID = model.NewID("resistance")
		metrics.CreatedAt = now
	}
	metrics.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO resistance_metrics (id, addiction_type, total_urges, total_resisted, resistance_rate, consecutive_resistances, best_resistance_streak, total_resistance_score, difficult_urges_resisted, trigger_mastery, last_resistance_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (addiction_type) DO UPDATE SET
			total_urges = excluded.total_urges,
			total_resisted = excluded.total_resisted,
			resistance_rate = excluded.resistance_rate,
			consecutive_resistances = excluded.consecutive_resistances,
			best_resistance_streak = excluded.best_resistance_streak,
			total_resistance_score = excluded.total_resistance_score,
			difficult_urges_resisted = excluded.difficult_urges_resisted,
			trigger_mastery = excluded.trigger_mastery,
			last_resistance_date = excluded.last_resistance_date,
			updated_at = excluded.updated_at
	`, metrics.ID, metrics.AddictionType, metrics.TotalUrges, metrics.TotalResisted,
		metrics.ResistanceRate, metrics.ConsecutiveResistances, metrics.BestResistanceStreak,
		metrics.TotalResistanceScore, metrics.DifficultUrgesResisted, metrics.TriggerMastery,
		metrics.LastResistanceDate, metrics.CreatedAt, metrics.UpdatedAt)

	return err
}
