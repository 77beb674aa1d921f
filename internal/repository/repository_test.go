package repository

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/tidewell/tidewell/internal/db"
)

func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Init("sqlite", path)
	require.NoError(t, err)

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}
