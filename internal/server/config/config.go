// Package config loads server configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults
const (
	DefaultAddr           = ":8080"
	DefaultDBPath         = "habitsync.db"
	DefaultAccessTokenTTL = 24 * time.Hour
	DefaultAuthRateLimit  = 30
)

// Config holds the server configuration
type Config struct {
	// Addr is the listen address, HABITSYNC_ADDR
	Addr string

	// DBPath is the SQLite database path, HABITSYNC_DB_PATH
	DBPath string

	// JWTSecret signs access tokens, HABITSYNC_JWT_SECRET (required)
	JWTSecret string

	// AccessTokenTTL is the token lifetime, HABITSYNC_TOKEN_TTL
	// (Go duration, e.g. "24h")
	AccessTokenTTL time.Duration

	// AuthRateLimit caps auth requests per minute per IP,
	// HABITSYNC_AUTH_RATE_LIMIT; zero disables
	AuthRateLimit int

	// LogLevel is debug, info, warn or error, HABITSYNC_LOG_LEVEL
	LogLevel slog.Level
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in when present; real environment
// variables win.
func Load() (*Config, error) {
	// Missing .env is fine, it is a development convenience
	_ = godotenv.Load()

	cfg := &Config{
		Addr:           envOr("HABITSYNC_ADDR", DefaultAddr),
		DBPath:         envOr("HABITSYNC_DB_PATH", DefaultDBPath),
		JWTSecret:      os.Getenv("HABITSYNC_JWT_SECRET"),
		AccessTokenTTL: DefaultAccessTokenTTL,
		AuthRateLimit:  DefaultAuthRateLimit,
		LogLevel:       slog.LevelInfo,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("HABITSYNC_JWT_SECRET is required")
	}

	if v := os.Getenv("HABITSYNC_TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid HABITSYNC_TOKEN_TTL: %w", err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("HABITSYNC_TOKEN_TTL must be positive")
		}
		cfg.AccessTokenTTL = ttl
	}

	if v := os.Getenv("HABITSYNC_AUTH_RATE_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return nil, fmt.Errorf("invalid HABITSYNC_AUTH_RATE_LIMIT: %q", v)
		}
		cfg.AuthRateLimit = limit
	}

	if v := os.Getenv("HABITSYNC_LOG_LEVEL"); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid HABITSYNC_LOG_LEVEL: %q", v)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
