// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// setTestHome points the loader at a throwaway home directory.
func setTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home) // Windows
	return home
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	setTestHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	def := DefaultConfig()
	if cfg.Server.URL != def.Server.URL {
		t.Errorf("Server.URL = %q, want %q", cfg.Server.URL, def.Server.URL)
	}
	if cfg.Server.TimeoutSecs != def.Server.TimeoutSecs {
		t.Errorf("Server.TimeoutSecs = %d, want %d", cfg.Server.TimeoutSecs, def.Server.TimeoutSecs)
	}
	if cfg.UI.PanelWidth != def.UI.PanelWidth {
		t.Errorf("UI.PanelWidth = %d, want %d", cfg.UI.PanelWidth, def.UI.PanelWidth)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	home := setTestHome(t)

	dir := filepath.Join(home, ".askai")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `
[server]
url = "http://example.com:9000"
timeout_secs = 15

[ui]
panel_width = 80
panel_min_width = 40
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.URL != "http://example.com:9000" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSecs != 15 {
		t.Errorf("Server.TimeoutSecs = %d, want 15", cfg.Server.TimeoutSecs)
	}
	if cfg.UI.PanelWidth != 80 || cfg.UI.PanelMinWidth != 40 {
		t.Errorf("UI = %+v", cfg.UI)
	}
}

func TestLoad_MalformedFileFallsBackToDefaults(t *testing.T) {
	home := setTestHome(t)

	dir := filepath.Join(home, ".askai")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[[[not toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Fatal("Load() with malformed file should return an error")
	}
	if cfg == nil || cfg.Server.URL != DefaultConfig().Server.URL {
		t.Error("Load() should still return usable defaults alongside the error")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	setTestHome(t)
	t.Setenv("ASKAI_SERVER_URL", "http://override:8080")
	t.Setenv("ASKAI_TIMEOUT_SECS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.URL != "http://override:8080" {
		t.Errorf("Server.URL = %q, want env override", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSecs != 5 {
		t.Errorf("Server.TimeoutSecs = %d, want 5", cfg.Server.TimeoutSecs)
	}
}

func TestLoad_InvalidTimeoutEnvIgnored(t *testing.T) {
	setTestHome(t)
	t.Setenv("ASKAI_TIMEOUT_SECS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.TimeoutSecs != DefaultConfig().Server.TimeoutSecs {
		t.Errorf("Server.TimeoutSecs = %d, want default", cfg.Server.TimeoutSecs)
	}
}

func TestFillDefaults_PanelWidthBelowMinimum(t *testing.T) {
	cfg := &Config{}
	cfg.UI.PanelWidth = 10
	cfg.UI.PanelMinWidth = 30
	cfg.fillDefaults(t.TempDir())

	if cfg.UI.PanelWidth < cfg.UI.PanelMinWidth {
		t.Errorf("PanelWidth = %d below PanelMinWidth = %d", cfg.UI.PanelWidth, cfg.UI.PanelMinWidth)
	}
}

func TestFillDefaults_PrefsPathResolved(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{}
	cfg.fillDefaults(dir)

	want := filepath.Join(dir, "prefs.db")
	if cfg.Prefs.Path != want {
		t.Errorf("Prefs.Path = %q, want %q", cfg.Prefs.Path, want)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	setTestHome(t)

	cfg := DefaultConfig()
	cfg.Server.URL = "http://saved:7000"
	cfg.UI.PanelWidth = 72
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Server.URL != "http://saved:7000" {
		t.Errorf("Server.URL = %q, want saved value", loaded.Server.URL)
	}
	if loaded.UI.PanelWidth != 72 {
		t.Errorf("UI.PanelWidth = %d, want 72", loaded.UI.PanelWidth)
	}
}
