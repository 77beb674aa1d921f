package db

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"
)

// ErrNotInitialized is returned when the store is used before
// Initialize has completed.
var ErrNotInitialized = errors.New("database not initialized")

// Manager owns the shared store handle: it opens the connection once,
// applies migrations, seeds default rows, and hands the handle to the
// rest of the application. Construct one at the composition root and
// inject it; services never reach for a global.
type Manager struct {
	driver     string
	connection string

	mu           sync.Mutex
	db           *sqlx.DB
	initializing bool
}

func NewManager(driver, connection string) *Manager {
	return &Manager{
		driver:     driver,
		connection: connection,
	}
}

// Initialize opens the store, runs migrations, and seeds defaults.
// Calling it again while a prior call is still running, or after it has
// succeeded, is a no-op. Failures are not retried here; the caller owns
// the retry action.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	if m.db != nil || m.initializing {
		m.mu.Unlock()
		return nil
	}
	m.initializing = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.initializing = false
		m.mu.Unlock()
	}()

	database, err := Init(m.driver, m.connection)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	err = RunMigrations(database.DB, m.driver)
	if err != nil {
		closeErr := database.Close()
		if closeErr != nil {
			slog.Error("failed to close database after migration failure", "error", closeErr)
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	err = Seed(database)
	if err != nil {
		closeErr := database.Close()
		if closeErr != nil {
			slog.Error("failed to close database after seed failure", "error", closeErr)
		}
		return fmt.Errorf("failed to seed defaults: %w", err)
	}

	m.mu.Lock()
	m.db = database
	m.mu.Unlock()

	slog.Info("store initialized", "connection", m.connection)
	return nil
}

// DB returns the shared handle, or ErrNotInitialized before Initialize
// has completed.
func (m *Manager) DB() (*sqlx.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil, ErrNotInitialized
	}
	return m.db, nil
}

// Close releases the handle and clears state so a later Initialize
// re-opens cleanly. Used by tests and the data-reset flow.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}
