package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.FreshnessWindow)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 0, cfg.CircuitFailLimit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/v2")
	t.Setenv("FRESHNESS_WINDOW", "30")
	t.Setenv("CIRCUIT_FAIL_LIMIT", "3")
	t.Setenv("REQUEST_TIMEOUT", "not-a-number")

	cfg := Load()
	assert.Equal(t, "https://api.example.com/v2", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.FreshnessWindow)
	assert.Equal(t, 3, cfg.CircuitFailLimit)
	// malformed values fall back to the default
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
