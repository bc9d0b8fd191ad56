package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contas/internal/store"
)

func TestDBPathEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvDBPath, "/tmp/override.json")

	path, err := DBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.json", path)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	f, err := Load()
	require.NoError(t, err)
	assert.Equal(t, File{}, f)
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvDBPath, "")

	cfgDir := filepath.Join(dir, "contas")
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	settings := "db_path = \"/tmp/loja.json\"\nreload_on_read = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(settings), 0600))

	f, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/loja.json", f.DBPath)
	require.NotNil(t, f.ReloadOnRead)
	assert.False(t, *f.ReloadOnRead)

	path, err := DBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/loja.json", path)
}

func TestDBPathDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvDBPath, "")

	path, err := DBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "contas", store.DefaultFile), path)
}
