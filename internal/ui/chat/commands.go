// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the askai widget as a Bubble Tea model.
//
// This file implements the slash command registry. Commands are typed into
// the regular input with a leading slash and never reach the answering
// service.
package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// COMMAND HANDLER REGISTRY
// =============================================================================

// commandHandler handles one slash command with its arguments.
type commandHandler func(m Model, args []string) (tea.Model, tea.Cmd)

var commandHandlers = map[string]commandHandler{
	"help": handleHelpCommand,
	"h":    handleHelpCommand,
	"?":    handleHelpCommand,

	"reset": handleResetCommand,
	"clear": handleResetCommand,

	"mode": handleModeCommand,

	"upload": handleUploadCommand,
	"u":      handleUploadCommand,

	"theme": handleThemeCommand,

	"quit": handleQuitCommand,
	"q":    handleQuitCommand,
	"exit": handleQuitCommand,
}

// handleCommand parses and dispatches a slash command.
func (m Model) handleCommand(content string) (tea.Model, tea.Cmd) {
	m.input.Reset()

	fields := strings.Fields(strings.TrimPrefix(content, "/"))
	if len(fields) == 0 {
		return m, nil
	}

	name := strings.ToLower(fields[0])
	handler, ok := commandHandlers[name]
	if !ok {
		m.statusMsg = "unknown command: /" + name
		return m, nil
	}
	return handler(m, fields[1:])
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

func handleHelpCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	m.showHelp = !m.showHelp
	return m, nil
}

func handleResetCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	return m.resetConversation(), nil
}

func handleModeCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	return m.toggleMode(), nil
}

func handleUploadCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		m.statusMsg = "usage: /upload <path>"
		return m, nil
	}
	// Paths may contain spaces; everything after the command is the path.
	return m.startUpload(strings.Join(args, " "))
}

func handleThemeCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	return m.toggleTheme(), nil
}

func handleQuitCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	m.cancelMgr.cancel()
	return m, tea.Quit
}
