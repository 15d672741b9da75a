package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Version.Padding)
	assert.Equal(t, 0, cfg.Proc.TimeoutSeconds)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("VERSION_PADDING", "4")
	t.Setenv("PROC_TIMEOUT_SECONDS", "30")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Version.Padding)
	assert.Equal(t, 30, cfg.Proc.TimeoutSeconds)
}
