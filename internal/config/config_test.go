package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "coachflow.db", cfg.DB.Path)
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db:\n  path: file.db\nlog:\n  level: debug\n"), 0644))

	t.Setenv("COACHFLOW_CONFIG_PATH", path)
	t.Setenv("COACHFLOW_DB_PATH", "env.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.DB.Path, "environment overrides the file")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
}

func TestLoad_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db: [not a mapping"), 0644))
	t.Setenv("COACHFLOW_CONFIG_PATH", path)

	_, err := Load()
	assert.Error(t, err)
}
