// askai - An embeddable AI chat widget for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/askai-tui/internal/api"
	"github.com/jeranaias/askai-tui/internal/config"
	"github.com/jeranaias/askai-tui/internal/prefs"
	"github.com/jeranaias/askai-tui/internal/theme"
	"github.com/jeranaias/askai-tui/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version and exit")
		serverURL   = flag.String("server", "", "answering service URL (overrides config)")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("askai %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if err := run(*serverURL); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(serverURL string) error {
	cfg := config.Global()
	if serverURL != "" {
		cfg.Server.URL = serverURL
	}

	store, err := prefs.Open(cfg.Prefs.Path)
	if err != nil {
		return fmt.Errorf("failed to open preference store: %w", err)
	}
	defer store.Close()

	themeCtl := theme.NewController(store)
	themeCtl.Initialize()

	client := api.NewClient(cfg.Server.URL).
		WithTimeout(time.Duration(cfg.Server.TimeoutSecs) * time.Second)
	if !client.IsConfigured() {
		return fmt.Errorf("no answering service configured; set server.url in ~/.askai/config.toml")
	}

	m := chat.New(client, themeCtl, cfg)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		// All-motion tracking so a resize drag keeps following the
		// pointer after it leaves the handle column.
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
