// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import "github.com/jeranaias/askai-tui/internal/util"

// Panel tracks the geometry of the widget within the terminal.
//
// The widget is anchored to the right edge and grows leftward: dragging its
// left border further left widens it, dragging right narrows it down to the
// minimum width. The left edge never leaves the viewport.
type Panel struct {
	viewportWidth int
	minWidth      int

	width int
	left  int

	// Drag state, captured at pointer press
	dragging   bool
	startX     int
	startWidth int
	startLeft  int
}

// NewPanel creates a panel with the given initial and minimum widths.
// Geometry is finalized by the first SetViewport call.
func NewPanel(width, minWidth int) Panel {
	if minWidth < 1 {
		minWidth = 1
	}
	return Panel{
		width:    util.Max(width, minWidth),
		minWidth: minWidth,
	}
}

// SetViewport records the terminal width and re-anchors the panel to the
// right edge, clamping the width to what fits.
func (p *Panel) SetViewport(w int) {
	p.viewportWidth = w
	p.width = util.Clamp(p.width, p.minWidth, util.Max(w, p.minWidth))
	p.left = util.Max(w-p.width, 0)
}

// Width returns the current panel width in columns.
func (p *Panel) Width() int { return p.width }

// Left returns the column of the panel's left edge.
func (p *Panel) Left() int { return p.left }

// MinWidth returns the smallest width the panel may be resized to.
func (p *Panel) MinWidth() int { return p.minWidth }

// OnHandle reports whether the given column is the drag handle,
// the panel's left border.
func (p *Panel) OnHandle(x int) bool {
	return x == p.left
}

// Dragging reports whether a resize drag is in progress.
func (p *Panel) Dragging() bool { return p.dragging }

// StartDrag begins a resize drag at pointer column x, capturing the
// geometry the drag is relative to.
func (p *Panel) StartDrag(x int) {
	p.dragging = true
	p.startX = x
	p.startWidth = p.width
	p.startLeft = p.left
}

// Drag updates the geometry for pointer column x. Width and position both
// derive from the captured start state, not the previous drag step, so the
// handle tracks the pointer exactly.
func (p *Panel) Drag(x int) {
	if !p.dragging {
		return
	}
	delta := x - p.startX
	p.width = util.Max(p.minWidth, p.startWidth-delta)
	p.left = util.Clamp(p.startLeft+delta, 0, util.Max(p.viewportWidth-p.minWidth, 0))
}

// EndDrag finishes the drag.
func (p *Panel) EndDrag() {
	p.dragging = false
}
