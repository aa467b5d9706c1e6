package config_test

import (
	"testing"

	"list-control/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "LBL", cfg.Server.CodePrefix)
	assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "list-control", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Session.Enabled)
	assert.Equal(t, 10, cfg.Session.BatchSize)
	assert.Equal(t, 24, cfg.Session.TTLHours)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_CODE_PREFIX", "INV")
	t.Setenv("SESSION_BATCH_SIZE", "5")
	t.Setenv("STORAGE_BUCKET", "my-sessions")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "INV", cfg.Server.CodePrefix)
	assert.Equal(t, 5, cfg.Session.BatchSize)
	assert.Equal(t, "my-sessions", cfg.Storage.Bucket)
}
