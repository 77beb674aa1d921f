package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	m := NewManager("sqlite", path)
	t.Cleanup(func() {
		_ = m.Close()
	})
	return m
}

func TestManagerNotInitialized(t *testing.T) {
	m := newTestManager(t)

	_, err := m.DB()
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestManagerInitialize(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Initialize())

	database, err := m.DB()
	require.NoError(t, err)
	require.NotNil(t, database)

	// Idempotent
	require.NoError(t, m.Initialize())
}

func TestManagerCloseAndReinitialize(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Initialize())

	require.NoError(t, m.Close())
	_, err := m.DB()
	assert.ErrorIs(t, err, ErrNotInitialized)

	require.NoError(t, m.Initialize())
	database, err := m.DB()
	require.NoError(t, err)

	var count int
	require.NoError(t, database.Get(&count, "SELECT COUNT(*) FROM healthy_habits"))
	assert.Equal(t, len(defaultHabits), count)
}

func TestSeedSkippedWhenRowsExist(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Initialize())

	database, err := m.DB()
	require.NoError(t, err)

	var before int
	require.NoError(t, database.Get(&before, "SELECT COUNT(*) FROM crisis_resources"))
	assert.Equal(t, len(defaultResources), before)

	// Running the seed again must not duplicate rows; the guard is the
	// row count itself.
	require.NoError(t, Seed(database))

	var after int
	require.NoError(t, database.Get(&after, "SELECT COUNT(*) FROM crisis_resources"))
	assert.Equal(t, before, after)
}

func TestSeedDefaults(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Initialize())

	database, err := m.DB()
	require.NoError(t, err)

	var settings int
	require.NoError(t, database.Get(&settings, "SELECT COUNT(*) FROM app_settings"))
	assert.Equal(t, len(defaultSettings), settings)

	var theme string
	require.NoError(t, database.Get(&theme, "SELECT value FROM app_settings WHERE key = 'theme'"))
	assert.Equal(t, "dark", theme)
}
