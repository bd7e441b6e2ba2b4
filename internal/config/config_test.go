package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DECKHAND_API_URL", "")
	t.Setenv("DECKHAND_DATA_DIR", "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3100/api", cfg.APIURL)
	assert.Equal(t, ".deckhand", filepath.Base(cfg.DataDir))
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DECKHAND_API_URL", "https://dashboard.example.com/api")
	t.Setenv("DECKHAND_DATA_DIR", "/tmp/deckhand-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://dashboard.example.com/api", cfg.APIURL)
	assert.Equal(t, "/tmp/deckhand-test", cfg.DataDir)
}

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("DECKHAND_TEST_KEY", "")
	assert.Equal(t, "fallback", getEnv("DECKHAND_TEST_KEY", "fallback"))

	t.Setenv("DECKHAND_TEST_KEY", "set")
	assert.Equal(t, "set", getEnv("DECKHAND_TEST_KEY", "fallback"))
}
