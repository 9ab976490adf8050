package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first if present; real environment variables
// take precedence over .env entries (godotenv never overwrites).
//
// Recognized variables:
//
//	SKINSYNC_DATABASE_PATH  sqlite file path
//	SKINSYNC_LOG_BACKEND    "slog" or "zap"
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SKINSYNC_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("SKINSYNC_LOG_BACKEND"); v != "" {
		cfg.LogBackend = v
	}
}
