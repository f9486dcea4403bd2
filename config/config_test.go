package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.CandidatesPerPage)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
	assert.Equal(t, 100, cfg.RateLimitGlobalThreshold)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CANDIDATES_PER_PAGE", "25")
	t.Setenv("LEGACY_API_URL", "https://legacy.example.com/")
	t.Setenv("LEGACY_API_KEY", "secret")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 25, cfg.CandidatesPerPage)
	// Trailing slash is stripped to avoid a double slash in request URLs
	assert.Equal(t, "https://legacy.example.com", cfg.LegacyAPIURL)
	assert.Equal(t, "secret", cfg.LegacyAPIKey)
}

func TestLoadConfigRejectsInvalidPageSize(t *testing.T) {
	t.Setenv("CANDIDATES_PER_PAGE", "0")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 10, cfg.CandidatesPerPage)

	t.Setenv("CANDIDATES_PER_PAGE", "not-a-number")
	cfg, err = LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 10, cfg.CandidatesPerPage)
}
