// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Development bool   `env:"SWEEPER_DEVELOPMENT"`
	LogLevel    string `env:"SWEEPER_LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"SWEEPER_LOG_FILE"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
