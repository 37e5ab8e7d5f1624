package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Remote.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.False(t, cfg.App.StrictReferences)
	assert.Equal(t, "clinic-session.db", cfg.Session.DBPath)
	assert.Equal(t, 8, cfg.Schedule.StartHour)
	assert.Equal(t, 20, cfg.Schedule.EndHour)
	assert.Equal(t, 30, cfg.Schedule.SlotMinutes)
	assert.False(t, cfg.Schedule.AllowOverlap)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.clinic.test")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("VALIDATE_REFERENCES", "true")
	t.Setenv("SCHEDULE_SLOT_MINUTES", "15")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.clinic.test", cfg.Remote.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Remote.Timeout)
	assert.True(t, cfg.App.StrictReferences)
	assert.Equal(t, 15, cfg.Schedule.SlotMinutes)
}

func TestLoadConfig_RequiresBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}
