package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tidewell/tidewell/internal/model"
)

var (
	ErrCrisisResourceNotFound = errors.New("crisis resource not found")
)

type CrisisRepository interface {
	Create(resource *model.CrisisResource) error
	ByID(id string) (*model.CrisisResource, error)
	All() ([]*model.CrisisResource, error)
	Delete(id string) error
}

type crisisRepository struct {
	db *sqlx.DB
}

func NewCrisisRepository(db *sqlx.DB) CrisisRepository {
	return &crisisRepository{db: db}
}

func (r *crisisRepository) Create(resource *model.CrisisResource) error {
	now := time.Now()
	resource.ID = model.NewID("crisis")
	resource.CreatedAt = now
	resource.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO crisis_resources (id, name, description, phone, url, country, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, resource.ID, resource.Name, resource.Description, resource.Phone, resource.URL,
		resource.Country, resource.IsAvailable, resource.CreatedAt, resource.UpdatedAt)

	return err
}

func (r *crisisRepository) ByID(id string) (*model.CrisisResource, error) {
	var resource model.CrisisResource
	err := r.db.Get(&resource, `SELECT * FROM crisis_resources WHERE id = $1`, id)

	if err == sql.ErrNoRows {
		return nil, ErrCrisisResourceNotFound
	}
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

func (r *crisisRepository) All() ([]*model.CrisisResource, error) {
	var resources []*model.CrisisResource
	err := r.db.Select(&resources, `SELECT * FROM crisis_resources ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}

	return resources, nil
}

func (r *crisisRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM crisis_resources WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCrisisResourceNotFound
	}

	return nil
}
