// Package config resolves where the contas database and settings live.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"contas/internal/store"
)

// EnvDBPath overrides every other database location when set.
const EnvDBPath = "CONTAS_DB"

const settingsFile = "config.toml"

// File holds the optional settings read from config.toml in the config
// directory. Absent fields keep their defaults.
type File struct {
	// DBPath points at the account database file.
	DBPath string `toml:"db_path"`
	// ReloadOnRead controls whether store operations re-read the file first.
	ReloadOnRead *bool `toml:"reload_on_read"`
}

// Dir returns the configuration directory for contas.
// It follows platform-specific conventions:
// - Windows: %APPDATA%\contas
// - Unix-like: $XDG_CONFIG_HOME/contas or $HOME/.config/contas
func Dir() (string, error) {
	var configDir string

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		configDir = filepath.Join(xdgConfig, "contas")
	} else if appData := os.Getenv("APPDATA"); appData != "" {
		configDir = filepath.Join(appData, "contas")
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(homeDir, ".config", "contas")
	} else {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return configDir, nil
}

// Load reads config.toml from the config directory. A missing file yields a
// zero File and no error.
func Load() (File, error) {
	dir, err := Dir()
	if err != nil {
		return File{}, err
	}

	data, err := os.ReadFile(filepath.Join(dir, settingsFile))
	if errors.Is(err, os.ErrNotExist) {
		return File{}, nil
	}
	if err != nil {
		return File{}, err
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, err
	}
	return f, nil
}

// DBPath resolves the database file location: the CONTAS_DB environment
// variable wins, then db_path from config.toml, then the default file name
// inside the config directory.
func DBPath() (string, error) {
	if env := os.Getenv(EnvDBPath); env != "" {
		return env, nil
	}

	f, err := Load()
	if err != nil {
		return "", err
	}
	if f.DBPath != "" {
		return f.DBPath, nil
	}

	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, store.DefaultFile), nil
}
