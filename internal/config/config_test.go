package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// No t.Parallel here: viper keeps global state and the env overrides below
// must not interleave.

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "socialapp_", cfg.StorePrefix)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.SeedSampleData)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/ripple-test")
	t.Setenv("STORE_PREFIX", "test_")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_SAMPLE_DATA", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/ripple-test", cfg.DataDir)
	assert.Equal(t, "test_", cfg.StorePrefix)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.SeedSampleData)
}

func TestLoadConfig_EmptyDataDir(t *testing.T) {
	t.Setenv("DATA_DIR", "")

	// AutomaticEnv treats an empty variable as unset, so the default applies.
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.DataDir)
}
