// Package config handles dgigo configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/dgigo/config.yml.
// Environment variables take precedence over file values; flags take
// precedence over both.
type Config struct {
	APIURL         string `yaml:"api_url,omitempty"`
	OpenFDAAPIKey  string `yaml:"openfda_api_key,omitempty"`
	TrialsPageSize int    `yaml:"trials_page_size,omitempty"`
	SnapshotPath   string `yaml:"snapshot_path,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "dgigo"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// SnapshotFile is the default snapshot database file name.
	SnapshotFile = "snapshots.db"

	// EnvAPIURL overrides the DGIdb endpoint.
	EnvAPIURL = "DGIDB_API_URL"
	// EnvOpenFDAAPIKey overrides the openFDA API key.
	EnvOpenFDAAPIKey = "OPENFDA_API_KEY"
)

// configCache caches the loaded config.
var configCache *Config

// Path returns the path to the config file. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/dgigo/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// DefaultSnapshotPath returns the default snapshot database location,
// next to the config file.
func DefaultSnapshotPath() string {
	path := Path()
	if path == "" {
		return SnapshotFile
	}
	return filepath.Join(filepath.Dir(path), SnapshotFile)
}

// Load loads the configuration file and applies environment overrides.
// Returns defaults (not an error) if the file doesn't exist.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	cfg := &Config{}
	path := Path()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// No config file is fine.
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	if url := os.Getenv(EnvAPIURL); url != "" {
		cfg.APIURL = url
	}
	if key := os.Getenv(EnvOpenFDAAPIKey); key != "" {
		cfg.OpenFDAAPIKey = key
	}
	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = DefaultSnapshotPath()
	}

	configCache = cfg
	return cfg, nil
}

// Save writes the configuration file, creating its directory if needed.
func (c *Config) Save() error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	configCache = nil
	return nil
}

// Set updates a single key in the configuration.
func (c *Config) Set(key, value string) error {
	switch key {
	case "api_url":
		c.APIURL = value
	case "openfda_api_key":
		c.OpenFDAAPIKey = value
	case "snapshot_path":
		c.SnapshotPath = value
	default:
		return fmt.Errorf("unknown config key: %s (valid: api_url, openfda_api_key, snapshot_path)", key)
	}
	return nil
}

// ResetCache clears the config cache (for testing).
func ResetCache() {
	configCache = nil
}
