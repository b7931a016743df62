package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	DBPath      string
	ListenAddr  string
	SecretKey   string
	TokenTTL    time.Duration
	LogLevel    string
	Environment string
}

// Load reads configuration from environment variables and a .env file
// if one is present. Existing env variables are never overridden.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.SecretKey = os.Getenv("LUNARA_SECRET")
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("LUNARA_SECRET is not set")
	}

	cfg.DBPath = os.Getenv("LUNARA_DB_PATH")
	if cfg.DBPath == "" {
		cfg.DBPath = "data/lunara.db"
	}

	port := os.Getenv("LUNARA_PORT")
	if port == "" {
		port = "8080"
	}
	cfg.ListenAddr = ":" + port

	cfg.TokenTTL = 24 * time.Hour
	if rawTTL := os.Getenv("LUNARA_TOKEN_TTL"); rawTTL != "" {
		ttl, err := time.ParseDuration(rawTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid LUNARA_TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = ttl
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}
