package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Logging LogConfig
	Vector  VectorConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port      string   `envconfig:"PORT" default:"8000"`
	Host      string   `envconfig:"HOST" default:"0.0.0.0"`
	Origins   []string `envconfig:"CORS_ORIGINS" default:"*"`
	RateRPS   int      `envconfig:"RATE_RPS" default:"100"`
	RateBurst int      `envconfig:"RATE_BURST" default:"200"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// VectorConfig holds the default operator system configuration. System
// names are resolved through the vec2 registry; an unrecognized name keeps
// the library default (precise).
type VectorConfig struct {
	System string `envconfig:"VECTOR_SYSTEM" default:"precise"`
	Digits int    `envconfig:"VECTOR_DIGITS" default:"20"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      "8000",
			Host:      "0.0.0.0",
			Origins:   []string{"*"},
			RateRPS:   100,
			RateBurst: 200,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Vector: VectorConfig{
			System: "precise",
			Digits: 20,
		},
	}
}
