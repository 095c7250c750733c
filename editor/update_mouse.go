package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/compatedit/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isManualScrollMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.focused {
		return m, cmd
	}
	eng := m.eng

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}
		m.closePopup()
		p := m.pointerAt(msg.X, msg.Y)
		if p.Line < 0 {
			return m, cmd
		}

		if p.InMargin {
			if !p.Annotation {
				eng.MarginClick(p.MarginX, p.Line)
			}
			return m, cmd
		}
		if msg.Ctrl && msg.Alt && eng.Carets().Options().MultipleSelection {
			eng.ToggleCaretAt(p.Offset)
			return m, cmd
		}
		if eng.BeginColumnDrag(p.Line, p.Col) {
			return m, cmd
		}
		if len(eng.Carets().Carets()) > 0 || len(eng.Carets().Ranges()) > 0 {
			eng.ClearCarets()
		}

		b := eng.Buffer()
		pos := b.PosFromOffset(p.Offset)
		if msg.Shift {
			anchor := b.Cursor()
			if raw, ok := b.SelectionRaw(); ok {
				anchor = raw.Start
			}
			m.mouseAnchor = anchor
			b.SetCursor(pos)
			b.SetSelection(buffer.Range{Start: anchor, End: pos})
		} else {
			m.mouseAnchor = pos
			b.SetCursor(pos)
			b.ClearSelection()
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		p := m.pointerAt(x, y)
		switch {
		case eng.ColumnDragging():
			eng.UpdateColumnDrag(p.Line, p.Col)
		case m.mouseDragging:
			b := eng.Buffer()
			pos := b.PosFromOffset(p.Offset)
			b.SetCursor(pos)
			b.SetSelection(buffer.Range{Start: m.mouseAnchor, End: pos})
		case p.OnText && m.mouseInBounds(msg.X, msg.Y):
			eng.HoverAt(p.Offset)
		default:
			eng.LeaveHover()
		}

	case tea.MouseActionRelease:
		if eng.EndColumnDrag() {
			return m, cmd
		}
		m.mouseDragging = false
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
			return m, cmd
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}
		if p := m.pointerAt(msg.X, msg.Y); p.OnText {
			eng.ClickAt(p.Offset)
		}
	}

	return m, cmd
}

// pointerAt resolves viewport-local coordinates.
func (m Model) pointerAt(x, y int) Pointer {
	return m.eng.HitTest(x, m.viewport.YOffset+y)
}

func isManualScrollMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}
