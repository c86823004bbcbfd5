// Package config loads server configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the flit-server runtime configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"FLIT_ADDR" envDefault:":8080"`
	// DBPath is the sqlite database file. ":memory:" is valid for
	// throwaway instances.
	DBPath string `env:"FLIT_DB_PATH" envDefault:"flit.db"`
	// DailySeedKey derives the shared daily-challenge seed. Every
	// replica must use the same key or players get different dailies.
	DailySeedKey string `env:"FLIT_DAILY_SEED_KEY,required"`
	// AdminToken guards the admin and scan endpoints. Empty disables
	// them entirely.
	AdminToken string `env:"FLIT_ADMIN_TOKEN"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
