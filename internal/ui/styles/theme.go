// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the widget.
type Theme struct {
	// Terminal capabilities
	Dark         bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderMode  lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	UserLabel        lipgloss.Style
	AssistantLabel   lipgloss.Style
	UserMessage      lipgloss.Style
	AssistantMessage lipgloss.Style
	PendingMessage   lipgloss.Style
	ErrorMessage     lipgloss.Style
	Greeting         lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style

	// ==========================================================================
	// SUGGESTION CHIP STYLES
	// ==========================================================================

	Chip    lipgloss.Style
	ChipKey lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ModeGeneral  lipgloss.Style
	ModeDocument lipgloss.Style
	DocumentChip lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// PANEL STYLES
	// ==========================================================================

	Panel      lipgloss.Style
	DragHandle lipgloss.Style

	// Spinner
	Spinner lipgloss.Style
}

// New creates a theme for the given dark-mode flag.
func New(dark bool) *Theme {
	t := &Theme{
		Dark:         dark,
		ColorProfile: termenv.ColorProfile(),
	}

	p := LightPalette()
	if dark {
		p = DarkPalette()
	}
	t.initStyles(p)
	return t
}

// initStyles initializes all the lip gloss styles from the palette.
func (t *Theme) initStyles(p Palette) {
	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Background(p.SurfaceDim).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	t.HeaderMode = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Italic(true)

	// Messages
	t.UserLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	t.AssistantLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	t.UserMessage = lipgloss.NewStyle().
		Foreground(p.TextPrimary)

	t.AssistantMessage = lipgloss.NewStyle().
		Foreground(p.TextPrimary)

	t.PendingMessage = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	t.ErrorMessage = lipgloss.NewStyle().
		Foreground(p.Danger)

	t.Greeting = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Italic(true).
		Padding(1, 2)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	// Suggestion chips
	t.Chip = lipgloss.NewStyle().
		Foreground(p.Accent).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	t.ChipKey = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(p.SurfaceDim).
		Foreground(p.TextSecondary).
		Padding(0, 1)

	t.ModeGeneral = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)

	t.ModeDocument = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	t.DocumentChip = lipgloss.NewStyle().
		Foreground(p.TextInverse).
		Background(p.AccentDim).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Panel
	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(p.Overlay)

	t.DragHandle = lipgloss.NewStyle().
		Foreground(p.Overlay)

	t.Spinner = lipgloss.NewStyle().
		Foreground(p.Secondary)
}
