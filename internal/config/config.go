// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for askai.
//
// Configuration is read from ~/.askai/config.toml with sensible defaults
// and environment variable overrides:
//   - ASKAI_SERVER_URL overrides server.url
//   - ASKAI_TIMEOUT_SECS overrides server.timeout_secs
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete askai configuration.
type Config struct {
	// Server is the answering service configuration.
	Server ServerConfig `toml:"server"`

	// Prefs is the preference store configuration.
	Prefs PrefsConfig `toml:"prefs"`

	// UI holds presentation defaults.
	UI UIConfig `toml:"ui"`
}

// ServerConfig contains answering service connection settings.
type ServerConfig struct {
	// URL is the base URL of the answering service.
	URL string `toml:"url"`
	// TimeoutSecs is the per-request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs"`
}

// PrefsConfig contains preference store settings.
type PrefsConfig struct {
	// Path is the SQLite database path (empty = ~/.askai/prefs.db).
	Path string `toml:"path"`
}

// UIConfig contains presentation defaults.
type UIConfig struct {
	// PanelWidth is the initial widget width in terminal cells.
	PanelWidth int `toml:"panel_width"`
	// PanelMinWidth is the smallest width the widget may be resized to.
	PanelMinWidth int `toml:"panel_min_width"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// DefaultConfig returns the built-in default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:         "http://127.0.0.1:8000",
			TimeoutSecs: 60,
		},
		Prefs: PrefsConfig{
			Path: "", // resolved against the config directory
		},
		UI: UIConfig{
			PanelWidth:    60,
			PanelMinWidth: 30,
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// ConfigDir returns the askai configuration directory (~/.askai).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".askai"), nil
}

// Load reads the configuration file, applies environment overrides and
// fills defaults for anything unset. A missing file is not an error.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	dir, err := ConfigDir()
	if err != nil {
		return cfg, err
	}

	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.fillDefaults(dir)
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("ASKAI_SERVER_URL"); url != "" {
		c.Server.URL = url
	}
	if secs := os.Getenv("ASKAI_TIMEOUT_SECS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			c.Server.TimeoutSecs = n
		}
	}
}

// fillDefaults replaces zero values with built-in defaults and resolves
// relative paths against the config directory.
func (c *Config) fillDefaults(dir string) {
	def := DefaultConfig()
	if c.Server.URL == "" {
		c.Server.URL = def.Server.URL
	}
	if c.Server.TimeoutSecs <= 0 {
		c.Server.TimeoutSecs = def.Server.TimeoutSecs
	}
	if c.UI.PanelMinWidth <= 0 {
		c.UI.PanelMinWidth = def.UI.PanelMinWidth
	}
	if c.UI.PanelWidth < c.UI.PanelMinWidth {
		c.UI.PanelWidth = def.UI.PanelWidth
	}
	if c.Prefs.Path == "" {
		c.Prefs.Path = filepath.Join(dir, "prefs.db")
	}
}

// Save writes the configuration back to ~/.askai/config.toml.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(dir, "config.toml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalConfig *Config
	globalOnce   sync.Once
)

// Global returns the process-wide configuration, loading it on first use.
// Load errors fall back to defaults; the TUI has no better place to report
// them than its own status line, which the caller owns.
func Global() *Config {
	globalOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			cfg = DefaultConfig()
		}
		globalConfig = cfg
	})
	return globalConfig
}
