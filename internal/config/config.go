package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Port     string
		LogLevel string
	}
	Storage struct {
		DataDir string
	}
}

// Load reads configuration from the environment, optionally seeded from a
// .env file at path. Every setting has a default; a missing .env is fine.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}
	cfg.App.Port = os.Getenv("APP_PORT")
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	cfg.App.LogLevel = os.Getenv("LOG_LEVEL")
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "info"
	}
	cfg.Storage.DataDir = os.Getenv("DATA_DIR")
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "data"
	}

	return cfg, nil
}
