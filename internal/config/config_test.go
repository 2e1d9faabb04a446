package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "", cfg.Storage.DataDir)
	assert.Equal(t, "", cfg.Locale.DefaultLanguage)
	assert.False(t, cfg.Logging.Debug)
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  backend: sqlite
  data_dir: /tmp/nexus-test
locale:
  default_language: en
logging:
  debug: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/nexus-test", cfg.Storage.DataDir)
	assert.Equal(t, "en", cfg.Locale.DefaultLanguage)
	assert.True(t, cfg.Logging.Debug)
}

func TestLoad_PartialConfigKeepsBackendDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale:\n  default_language: fr\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "fr", cfg.Locale.DefaultLanguage)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [not a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolveConfigPath_ExplicitMustExist(t *testing.T) {
	_, err := ResolveConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))
	resolved, err := ResolveConfigPath(path)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
}

func TestGetDataDir(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultDataDir(), cfg.GetDataDir())

	cfg.Storage.DataDir = "/data/nexus"
	assert.Equal(t, "/data/nexus", cfg.GetDataDir())
}
