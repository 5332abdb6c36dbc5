package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "CORS_ORIGINS", "ENV", "RATE_LIMIT_PER_MINUTE", "RATE_LIMIT_BURST", "SEED_DEMO_DATA", "ALERTS_ENABLED"} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 100, cfg.RateLimitPerMinute)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.False(t, cfg.SeedDemoData)
	assert.True(t, cfg.AlertsEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "18080")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://budgetly.app ,")
	t.Setenv("ENV", "production")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "60")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("ALERTS_ENABLED", "false")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "18080", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://budgetly.app"}, cfg.CORSOrigins)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.True(t, cfg.SeedDemoData)
	assert.False(t, cfg.AlertsEnabled)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non numeric port", "PORT", "http"},
		{"port out of range", "PORT", "70000"},
		{"non numeric rate", "RATE_LIMIT_PER_MINUTE", "fast"},
		{"zero rate", "RATE_LIMIT_PER_MINUTE", "0"},
		{"negative burst", "RATE_LIMIT_BURST", "-1"},
		{"bad bool", "SEED_DEMO_DATA", "sometimes"},
		{"only separators", "CORS_ORIGINS", " , "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
