package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	ServerPort    int
	DatabasePath  string
	JWTSecret     string
	TokenTTL      time.Duration
	AllowedOrigin string
}

// Load loads configuration from environment variables or sets defaults.
// The JWT secret has no default and must be set.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "5000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	ttlStr := getEnv("TOKEN_TTL_MINUTES", "60")
	ttlMinutes, err := strconv.Atoi(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL_MINUTES: %w", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	return &Config{
		ServerPort:    port,
		DatabasePath:  getEnv("DATABASE_PATH", "./storefront.db"),
		JWTSecret:     secret,
		TokenTTL:      time.Duration(ttlMinutes) * time.Minute,
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
