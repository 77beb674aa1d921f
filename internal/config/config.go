package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	DataDir string

	// Database. Driver is always sqlite; DBMemory switches to a private
	// in-memory store for runtime targets without a filesystem. This is
	// the single platform conditional.
	DBDriver     string
	DBConnection string
	DBMemory     bool

	// Logging
	LogFile string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	dataDir := envString("DATA_DIR", "./data")

	cfg := &Config{
		AppName: envString("APP_NAME", "Tidewell"),
		AppEnv:  envString("APP_ENV", "development"),
		DataDir: dataDir,

		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", dataDir+"/tidewell.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),
		DBMemory:     envBool("DB_MEMORY", false),

		LogFile: envString("LOG_FILE", ""),
	}

	if cfg.DBMemory {
		cfg.DBConnection = ":memory:"
	}

	return cfg
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}
