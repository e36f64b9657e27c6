package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/mcdev12/hockeyfed/go/internal/dbconfig"
)

type Config struct {
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	KeyPrefix       string `env:"HOCKEYFED_KEY_PREFIX"`
	SerializeWrites bool   `env:"HOCKEYFED_SERIALIZE_WRITES" envDefault:"true"`

	DB dbconfig.Config
}

func loadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.DB.Validate(); err != nil {
		return nil, fmt.Errorf("invalid storage config: %w", err)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return &cfg, nil
}

func (c *Config) level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
