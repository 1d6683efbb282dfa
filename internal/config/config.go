// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/morganforge/proton-tui/internal/proton"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete proton configuration.
type Config struct {
	// API settings for the completion endpoint
	API APIConfig `toml:"api"`

	// Storage settings
	Storage StorageConfig `toml:"storage"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// APIConfig contains completion endpoint configuration.
type APIConfig struct {
	// BaseURL is the completion endpoint base URL
	BaseURL string `toml:"base_url"`
	// Key is the bearer token sent with each request (may be empty)
	Key string `toml:"key"`
	// Model is the model requested for completions
	Model string `toml:"model"`
}

// StorageConfig contains local persistence configuration.
type StorageConfig struct {
	// DataDir is the directory holding the local database
	// Default: ~/.proton
	DataDir string `toml:"data_dir"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark" or "light"
	Theme string `toml:"theme"`
	// CompactMode uses a more compact layout
	CompactMode bool `toml:"compact_mode"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: proton.DefaultBaseURL,
			Key:     "",
			Model:   proton.DefaultModel,
		},
		Storage: StorageConfig{
			DataDir: "",
		},
		UI: UIConfig{
			Theme:       "dark",
			CompactMode: false,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the proton configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".proton"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DataDir resolves the storage directory: the configured path, or the
// config directory itself when unset.
func (c *Config) DataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir, nil
	}
	return ConfigDir()
}

// DatabasePath returns the path of the local database file.
func (c *Config) DatabasePath() (string, error) {
	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "proton.db"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default config file. A missing file is
// not an error; defaults apply. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path. A missing
// file yields defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - PROTON_API_URL: overrides api.base_url
//   - PROTON_API_KEY: overrides api.key
//   - PROTON_MODEL: overrides api.model
//   - PROTON_DATA_DIR: overrides storage.data_dir
func (c *Config) ApplyEnvOverrides() {
	if u := os.Getenv("PROTON_API_URL"); u != "" {
		c.API.BaseURL = u
	}
	if key := os.Getenv("PROTON_API_KEY"); key != "" {
		c.API.Key = key
	}
	if model := os.Getenv("PROTON_MODEL"); model != "" {
		c.API.Model = model
	}
	if dir := os.Getenv("PROTON_DATA_DIR"); dir != "" {
		c.Storage.DataDir = dir
	}
}

// fillDefaults fills in any missing values with defaults.
func (c *Config) fillDefaults() {
	defaults := Default()

	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	if c.API.Model == "" {
		c.API.Model = defaults.API.Model
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes the configuration to the default TOML file with owner-only
// permissions; the file carries the API key.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration to a specific file path.
func SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# proton configuration file")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.API.BaseURL != "" {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ValidationError{Field: "api.base_url", Message: "must be an absolute URL"}
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return ValidationError{Field: "api.base_url", Message: "scheme must be http or https"}
		}
	}

	switch c.UI.Theme {
	case "dark", "light":
	default:
		return ValidationError{Field: "ui.theme", Message: "must be \"dark\" or \"light\""}
	}

	return nil
}
