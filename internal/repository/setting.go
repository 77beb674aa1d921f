package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tidewell/tidewell/internal/model"
)

var (
	ErrSettingNotFound = errors.New("setting not found")
)

type SettingRepository interface {
	ByKey(key string) (*model.AppSetting, error)
	All() ([]*model.AppSetting, error)
	Set(key, value, settingType string) error
	Delete(key string) error
}

type settingRepository struct {
	db *sqlx.DB
}

func NewSettingRepository(db *sqlx.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) ByKey(key string) (*model.AppSetting, error) {
	var setting model.AppSetting
	err := r.db.Get(&setting, `SELECT * FROM app_settings WHERE key = $1`, key)

	if err == sql.ErrNoRows {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &setting, nil
}

func (r *settingRepository) All() ([]*model.AppSetting, error) {
	var settings []*model.AppSetting
	err := r.db.Select(&settings, `SELECT * FROM app_settings ORDER BY key ASC`)
	if err != nil {
		return nil, err
	}

	return settings, nil
}

// Set upserts a key. Last write wins.
func (r *settingRepository) Set(key, value, settingType string) error {
	now := time.Now()
	_, err := r.db.Exec(`
		INSERT INTO app_settings (id, key, value, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			type = excluded.type,
			updated_at = excluded.updated_at
	`, model.NewID("setting"), key, value, settingType, now, now)

	return err
}

func (r *settingRepository) Delete(key string) error {
	result, err := r.db.Exec(`DELETE FROM app_settings WHERE key = $1`, key)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSettingNotFound
	}

	return nil
}
