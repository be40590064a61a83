// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import "testing"

func newTestPanel() Panel {
	p := NewPanel(60, 30)
	p.SetViewport(100)
	return p
}

func TestPanel_AnchorsToRightEdge(t *testing.T) {
	p := newTestPanel()

	if p.Width() != 60 {
		t.Errorf("Width() = %d, want 60", p.Width())
	}
	if p.Left() != 40 {
		t.Errorf("Left() = %d, want 40", p.Left())
	}
}

func TestPanel_SetViewport_ClampsWidth(t *testing.T) {
	p := NewPanel(60, 30)
	p.SetViewport(50)

	if p.Width() != 50 {
		t.Errorf("Width() = %d, want 50", p.Width())
	}
	if p.Left() != 0 {
		t.Errorf("Left() = %d, want 0", p.Left())
	}
}

func TestPanel_OnHandle(t *testing.T) {
	p := newTestPanel()

	if !p.OnHandle(40) {
		t.Error("left border column should be the handle")
	}
	if p.OnHandle(39) || p.OnHandle(41) {
		t.Error("columns off the border should not be the handle")
	}
}

func TestPanel_DragLeftWidens(t *testing.T) {
	p := newTestPanel()
	p.StartDrag(40)
	p.Drag(30) // delta -10

	if p.Width() != 70 {
		t.Errorf("Width() = %d, want 70", p.Width())
	}
	if p.Left() != 30 {
		t.Errorf("Left() = %d, want 30", p.Left())
	}
}

func TestPanel_DragRightNarrowsToMinimum(t *testing.T) {
	p := newTestPanel()
	p.StartDrag(40)
	p.Drag(95) // delta +55, far past the minimum

	if p.Width() != 30 {
		t.Errorf("Width() = %d, want the minimum 30", p.Width())
	}
	if p.Left() != 70 {
		t.Errorf("Left() = %d, want viewport-min = 70", p.Left())
	}
}

func TestPanel_DragClampsLeftAtZero(t *testing.T) {
	p := newTestPanel()
	p.StartDrag(40)
	p.Drag(-50) // pointer reported left of the viewport

	if p.Left() != 0 {
		t.Errorf("Left() = %d, want 0", p.Left())
	}
	if p.Width() != 130 {
		t.Errorf("Width() = %d, want startWidth-delta = 130", p.Width())
	}
}

func TestPanel_DragDerivesFromStartState(t *testing.T) {
	// Many motion events in one drag must not compound.
	p := newTestPanel()
	p.StartDrag(40)
	p.Drag(35)
	p.Drag(32)
	p.Drag(30)

	q := newTestPanel()
	q.StartDrag(40)
	q.Drag(30)

	if p.Width() != q.Width() || p.Left() != q.Left() {
		t.Errorf("incremental drag (%d,%d) differs from direct drag (%d,%d)",
			p.Width(), p.Left(), q.Width(), q.Left())
	}
}

func TestPanel_DragWithoutStartIsNoop(t *testing.T) {
	p := newTestPanel()
	p.Drag(10)

	if p.Width() != 60 || p.Left() != 40 {
		t.Error("motion without a press must not resize")
	}
}

func TestPanel_EndDragStopsTracking(t *testing.T) {
	p := newTestPanel()
	p.StartDrag(40)
	p.Drag(35)
	p.EndDrag()
	p.Drag(10)

	if p.Width() != 65 {
		t.Errorf("Width() = %d, want 65 (frozen at release)", p.Width())
	}
	if p.Dragging() {
		t.Error("Dragging() should be false after EndDrag")
	}
}

func TestPanel_SecondDragStartsFresh(t *testing.T) {
	p := newTestPanel()
	p.StartDrag(40)
	p.Drag(30)
	p.EndDrag()

	// New drag from the new handle position.
	p.StartDrag(30)
	p.Drag(35) // delta +5

	if p.Width() != 65 {
		t.Errorf("Width() = %d, want 65", p.Width())
	}
	if p.Left() != 35 {
		t.Errorf("Left() = %d, want 35", p.Left())
	}
}
