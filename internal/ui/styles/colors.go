// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the askai widget.
// Unlike terminal auto-detection, the palette is selected by the persisted
// dark-mode flag so the widget looks the same wherever it runs.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette holds the concrete colors for one theme variant.
type Palette struct {
	// Accent colors
	Accent     lipgloss.Color // brand color, user highlights
	AccentDim  lipgloss.Color // darker accent for backgrounds
	Secondary  lipgloss.Color // assistant accents
	Success    lipgloss.Color
	Danger     lipgloss.Color

	// Surfaces
	Surface    lipgloss.Color // main background
	SurfaceDim lipgloss.Color // header/footer background
	Overlay    lipgloss.Color // borders, separators

	// Text
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	TextInverse   lipgloss.Color
}

// =============================================================================
// THEME VARIANTS
// =============================================================================

// LightPalette returns the light theme colors.
func LightPalette() Palette {
	return Palette{
		Accent:     lipgloss.Color("#0891B2"),
		AccentDim:  lipgloss.Color("#0E7490"),
		Secondary:  lipgloss.Color("#7C3AED"),
		Success:    lipgloss.Color("#059669"),
		Danger:     lipgloss.Color("#E11D48"),

		Surface:    lipgloss.Color("#FFFFFF"),
		SurfaceDim: lipgloss.Color("#F5F5F5"),
		Overlay:    lipgloss.Color("#E5E5E5"),

		TextPrimary:   lipgloss.Color("#1F2937"),
		TextSecondary: lipgloss.Color("#6B7280"),
		TextMuted:     lipgloss.Color("#9CA3AF"),
		TextInverse:   lipgloss.Color("#FFFFFF"),
	}
}

// DarkPalette returns the dark theme colors.
func DarkPalette() Palette {
	return Palette{
		Accent:     lipgloss.Color("#22D3EE"),
		AccentDim:  lipgloss.Color("#164E63"),
		Secondary:  lipgloss.Color("#A78BFA"),
		Success:    lipgloss.Color("#34D399"),
		Danger:     lipgloss.Color("#FB7185"),

		Surface:    lipgloss.Color("#1E1E2E"),
		SurfaceDim: lipgloss.Color("#181825"),
		Overlay:    lipgloss.Color("#313244"),

		TextPrimary:   lipgloss.Color("#CDD6F4"),
		TextSecondary: lipgloss.Color("#A6ADC8"),
		TextMuted:     lipgloss.Color("#6C7086"),
		TextInverse:   lipgloss.Color("#1E1E2E"),
	}
}
