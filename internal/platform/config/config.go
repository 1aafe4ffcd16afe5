// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (device store, server) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// # Store Backends

// Supported values for STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// # Configuration Schema

// Config holds all runtime configuration for the Gamecodex API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// DataDir holds Quests.json, Guides.json and Items.json (or their .yaml twins).
	DataDir string `env:"DATA_DIR" envDefault:"./data/gamedata"`

	// StoreBackend selects where per-device state (pins, overlay, preferences) lives.
	StoreBackend string `env:"STORE_BACKEND" envDefault:"memory"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL"`

	// Embedded device store (SQLite)
	SQLitePath string `env:"SQLITE_PATH" envDefault:"./data/devices.db"`

	// PublicOrigin is the origin of the page shell, used to build share links.
	PublicOrigin string `env:"PUBLIC_ORIGIN" envDefault:"http://localhost:3000"`

	// PageSize is the default number of entries per list page.
	PageSize int `env:"PAGE_SIZE" envDefault:"50"`

	// Cross-Origin Resource Sharing
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces backend-specific requirements that struct tags cannot express.
func (c *Config) validate() error {
	switch c.StoreBackend {
	case BackendMemory:
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("config: SQLITE_PATH is required for the sqlite backend")
		}
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("config: REDIS_URL is required for the redis backend")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("config: unknown STORE_BACKEND %q", c.StoreBackend)
	}

	if c.PageSize < 1 {
		return fmt.Errorf("config: PAGE_SIZE must be positive")
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowsOrigin reports whether a browser origin may call the API outside development.
func (c *Config) AllowsOrigin(origin string) bool {
	if origin == c.PublicOrigin {
		return true
	}
	for _, extra := range c.ExtraOrigins {
		if origin == extra {
			return true
		}
	}
	return false
}

// ListenAddr is the TCP address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return ":" + c.ServerPort
}
