package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int

	// Features
	SeedDemoData  bool
	AlertsEnabled bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv builds a Config from the current environment without reading .env
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		Env:         getEnv("ENV", "development"),
	}

	var err error
	if cfg.RateLimitPerMinute, err = getEnvInt("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 10); err != nil {
		return nil, err
	}
	if cfg.SeedDemoData, err = getEnvBool("SEED_DEMO_DATA", false); err != nil {
		return nil, err
	}
	if cfg.AlertsEnabled, err = getEnvBool("ALERTS_ENABLED", true); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a valid port number, got %q", c.Port)
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive")
	}
	if len(c.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return value, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
