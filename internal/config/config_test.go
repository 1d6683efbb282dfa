// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/morganforge/proton-tui/internal/proton"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.BaseURL != proton.DefaultBaseURL {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, proton.DefaultBaseURL)
	}
	if cfg.API.Model != proton.DefaultModel {
		t.Errorf("API.Model = %q, want %q", cfg.API.Model, proton.DefaultModel)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("UI.Theme = %q, want dark", cfg.UI.Theme)
	}
}

func TestLoadFromPathMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.API.BaseURL != proton.DefaultBaseURL {
		t.Errorf("API.BaseURL = %q, want default", cfg.API.BaseURL)
	}
}

func TestLoadFromPathParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[api]
base_url = "https://example.com/v1"
key = "sk-test"
model = "proton-mini"

[ui]
theme = "light"
compact_mode = true
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.API.BaseURL != "https://example.com/v1" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Key != "sk-test" {
		t.Errorf("API.Key = %q", cfg.API.Key)
	}
	if cfg.API.Model != "proton-mini" {
		t.Errorf("API.Model = %q", cfg.API.Model)
	}
	if cfg.UI.Theme != "light" || !cfg.UI.CompactMode {
		t.Errorf("UI = %+v", cfg.UI)
	}
}

func TestLoadFromPathPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[api]\nkey = \"sk-only\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.API.Key != "sk-only" {
		t.Errorf("API.Key = %q", cfg.API.Key)
	}
	if cfg.API.BaseURL != proton.DefaultBaseURL {
		t.Errorf("API.BaseURL = %q, want default", cfg.API.BaseURL)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("UI.Theme = %q, want dark", cfg.UI.Theme)
	}
}

func TestLoadFromPathInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("LoadFromPath() error = nil for invalid TOML")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PROTON_API_URL", "https://override.example.com")
	t.Setenv("PROTON_API_KEY", "sk-env")
	t.Setenv("PROTON_MODEL", "proton-env")
	t.Setenv("PROTON_DATA_DIR", "/tmp/proton-data")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.API.BaseURL != "https://override.example.com" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Key != "sk-env" {
		t.Errorf("API.Key = %q", cfg.API.Key)
	}
	if cfg.API.Model != "proton-env" {
		t.Errorf("API.Model = %q", cfg.API.Model)
	}
	if cfg.Storage.DataDir != "/tmp/proton-data" {
		t.Errorf("Storage.DataDir = %q", cfg.Storage.DataDir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"relative url", func(c *Config) { c.API.BaseURL = "not-a-url" }, true},
		{"ftp scheme", func(c *Config) { c.API.BaseURL = "ftp://example.com" }, true},
		{"http allowed", func(c *Config) { c.API.BaseURL = "http://localhost:8080" }, false},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"light theme", func(c *Config) { c.UI.Theme = "light" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.API.Key = "sk-roundtrip"
	cfg.UI.CompactMode = true
	if err := SaveToPath(cfg, path); err != nil {
		t.Fatalf("SaveToPath() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file permissions = %o, want 0600", perm)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if loaded.API.Key != "sk-roundtrip" || !loaded.UI.CompactMode {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestDataDirFallsBackToConfigDir(t *testing.T) {
	cfg := Default()

	dir, err := cfg.DataDir()
	if err != nil {
		t.Fatalf("DataDir() error = %v", err)
	}
	want, _ := ConfigDir()
	if dir != want {
		t.Errorf("DataDir() = %q, want %q", dir, want)
	}

	cfg.Storage.DataDir = "/custom/dir"
	dir, _ = cfg.DataDir()
	if dir != "/custom/dir" {
		t.Errorf("DataDir() = %q, want /custom/dir", dir)
	}
}
