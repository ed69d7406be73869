package config

import (
	"errors"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the scan module.
type Config struct {
	// MongoDB Configuration
	MongoDBURI   string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"appdb"`

	// Collection holding persisted scan documents.
	Collection string `env:"SCAN_COLLECTION" envDefault:"product"`

	// HistoryLimit is the default page size for history requests.
	HistoryLimit int `env:"HISTORY_DEFAULT_LIMIT" envDefault:"25"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load scan configuration from environment: " + err.Error())
	}
	if cfg.HistoryLimit <= 0 {
		return nil, errors.New("history_default_limit must be positive")
	}
	return cfg, nil
}
