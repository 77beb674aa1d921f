package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// MemoryConnection selects a private in-memory store (tests, the
// browser runtime target). Everything else gets a file-backed store.
const MemoryConnection = ":memory:"

func Init(driver, connection string) (*sqlx.DB, error) {
	memory := connection == MemoryConnection

	if driver == "sqlite" && !memory {
		dir := filepath.Dir(strings.SplitN(connection, "?", 2)[0])
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// Foreign keys are per-connection state; the DSN pragma applies to
	// every conn the pool opens.
	if driver == "sqlite" && !strings.Contains(connection, "_pragma=foreign_keys") {
		sep := "?"
		if strings.Contains(connection, "?") {
			sep = "&"
		}
		connection += sep + "_pragma=foreign_keys(1)"
	}

	db, err := sqlx.Connect(driver, connection)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	if memory {
		// An in-memory SQLite database exists per connection; more than
		// one open conn would silently split the store.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("database connected", "driver", driver)
	return db, nil
}

func Close(db *sqlx.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}
