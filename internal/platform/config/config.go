// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Storage backends selectable via STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// StorageBackend selects the persistence adapter: "memory" (default) or
	// "postgres".
	StorageBackend string

	// DatabaseURL is the Postgres connection string. Required when
	// StorageBackend is "postgres"; the value is passed explicitly to the
	// adapters, never read from global state.
	DatabaseURL string

	// Migrate controls whether pending schema migrations run at startup.
	// Set MIGRATE=true to enable. Only meaningful with the postgres backend.
	Migrate bool

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendMemory),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Migrate:        strings.EqualFold(os.Getenv("MIGRATE"), "true"),
	}

	switch cfg.StorageBackend {
	case BackendMemory, BackendPostgres:
	default:
		return Config{}, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", BackendMemory, BackendPostgres, cfg.StorageBackend)
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.StorageBackend == BackendPostgres && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("required environment variable not set: DATABASE_URL")
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
