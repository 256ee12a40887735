package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "team.json", cfg.Team.File)
	assert.Equal(t, 4, cfg.Events.Workers)
	assert.Equal(t, "+00:00", cfg.DisplayOffset().String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("TEAM_FILE", "/etc/remotework/team.yaml")
	t.Setenv("TEAM_WATCH", "true")
	t.Setenv("DISPLAY_OFFSET", "+05:30")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")

	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "/etc/remotework/team.yaml", cfg.Team.File)
	assert.True(t, cfg.Team.Watch)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "+05:30", cfg.DisplayOffset().String())
}

func TestLoad_DotEnvDoesNotOverrideEnv(t *testing.T) {
	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("LOGGING_LEVEL=debug\nEVENTS_WORKERS=7\n"), 0o600))
	t.Setenv("LOGGING_LEVEL", "error")
	// registered with t.Setenv so the value injected from .env is removed afterwards
	t.Setenv("EVENTS_WORKERS", "")
	require.NoError(t, os.Unsetenv("EVENTS_WORKERS"))

	cfg, err := load(dotenv)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 7, cfg.Events.Workers)
}

func TestLoad_InvalidOffset(t *testing.T) {
	t.Setenv("DISPLAY_OFFSET", "five thirty")

	_, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.offset")
}
