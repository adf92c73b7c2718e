package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresProviderURL(t *testing.T) {
	t.Setenv("GRIDMETRICS_CONFIG", "")
	t.Setenv("GRIDMETRICS_PROVIDER_BASE_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("GRIDMETRICS_CONFIG", "")
	t.Setenv("GRIDMETRICS_PROVIDER_BASE_URL", "https://timing.example.com")
	t.Setenv("GRIDMETRICS_OUTPUT_DIR", "/tmp/results")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://timing.example.com", cfg.ProviderBaseURL)
	assert.Equal(t, "/tmp/results", cfg.OutputDir)
	assert.Equal(t, "gridmetrics", cfg.MongoDatabase, "defaults survive when not overridden")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"provider_base_url: https://timing.example.com\nmongo_database: gridmetrics_test\n"), 0o644))

	t.Setenv("GRIDMETRICS_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gridmetrics_test", cfg.MongoDatabase)
	assert.Equal(t, "https://timing.example.com", cfg.ProviderBaseURL)
}
