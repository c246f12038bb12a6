package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment at
// startup.
type Config struct {
	DatabaseURL string

	Port    string
	GinMode string

	// Seed pair: ensures an admin account exists at startup. Both must be
	// set for seeding to happen.
	AdminEmail    string
	AdminPassword string

	// CookieSecure marks session cookies Secure. Defaults on in release
	// mode, off otherwise; COOKIE_SECURE overrides either way.
	CookieSecure bool
}

// Load reads configuration from the environment. A .env file is honored
// when present but never required. A missing DATABASE_URL is an error the
// caller should treat as fatal.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          getEnv("PORT", "8080"),
		GinMode:       os.Getenv("GIN_MODE"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL must be set")
	}

	cfg.CookieSecure = cfg.GinMode == "release"
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.New("COOKIE_SECURE must be a boolean")
		}
		cfg.CookieSecure = secure
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
