package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/compatedit/buffer"
	"github.com/iw2rmb/compatedit/caret"
	"github.com/iw2rmb/compatedit/completion"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	eng := m.eng
	km := m.cfg.KeyMap

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			eng.Paste(string(msg.Runes))
		}
		return m, nil
	}

	if m.popup.Visible {
		if handled := m.updatePopupKey(msg); handled {
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, km.Escape):
		if m.popup.Visible {
			m.closePopup()
			return m, nil
		}
		eng.Escape()

	case key.Matches(msg, km.ForceCompletion):
		m.invokeCompletion(true)

	case key.Matches(msg, km.Left):
		m.move(caret.Left, false, buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.move(caret.Right, false, buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirRight})
	case key.Matches(msg, km.Home):
		m.move(caret.Home, false, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.move(caret.End, false, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.ShiftLeft):
		m.move(caret.Left, true, buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.move(caret.Right, true, buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftHome):
		m.move(caret.Home, true, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome, Extend: true})
	case key.Matches(msg, km.ShiftEnd):
		m.move(caret.End, true, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd, Extend: true})

	case key.Matches(msg, km.Up):
		eng.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		eng.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirDown})
	case key.Matches(msg, km.ShiftUp):
		eng.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		eng.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirDown, Extend: true})
	case key.Matches(msg, km.WordLeft):
		eng.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		eng.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			eng.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			eng.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			eng.Newline()
		}
	case key.Matches(msg, km.Tab):
		if !m.cfg.ReadOnly {
			eng.Tab()
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = eng.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = eng.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	case key.Matches(msg, km.ToggleFold):
		eng.ToggleFold(eng.Buffer().Cursor().Row)

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				eng.InsertText(string(msg.Runes))
				m.invokeCompletion(false)
			}
		}
	}

	return m, nil
}

// move moves every caret when additional carets take typing, else the host
// caret alone.
func (m *Model) move(dir caret.Direction, extend bool, host buffer.Move) {
	if m.eng.MoveCarets(dir, extend) {
		return
	}
	m.eng.Move(host)
}

// updatePopupKey handles navigation inside a visible popup. Other keys fall
// through and close or refresh the popup as they edit.
func (m *Model) updatePopupKey(msg tea.KeyMsg) bool {
	km := m.cfg.KeyMap
	n := len(m.popup.Candidates)
	switch {
	case key.Matches(msg, km.Up):
		m.popupSelected = (m.popupSelected - 1 + n) % n
		return true
	case key.Matches(msg, km.Down):
		m.popupSelected = (m.popupSelected + 1) % n
		return true
	case key.Matches(msg, km.Enter), key.Matches(msg, km.Tab):
		if !m.cfg.ReadOnly {
			m.eng.AcceptCompletion(m.popup.Candidates[m.popupSelected])
		}
		m.closePopup()
		return true
	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.eng.DeleteBackward()
			m.invokeCompletion(false)
		}
		return true
	case msg.Type == tea.KeyRunes:
		return false
	default:
		m.closePopup()
		return false
	}
}

// invokeCompletion opens or refreshes the popup. A forced request with a
// single candidate is accepted at once when use-single is on.
func (m *Model) invokeCompletion(force bool) {
	eng := m.eng
	if !force && eng.Completion().Options().Source == completion.SourceNone {
		m.closePopup()
		return
	}
	p := eng.InvokeCompletion(force)
	if p.AutoAccept && !m.cfg.ReadOnly {
		eng.AcceptCompletion(p.Candidates[0])
		m.closePopup()
		return
	}
	if !p.Visible || len(p.Candidates) == 0 {
		m.closePopup()
		return
	}
	m.popup = p
	if m.popupSelected >= len(p.Candidates) {
		m.popupSelected = 0
	}
}

func (m *Model) closePopup() {
	m.popup = completion.Popup{}
	m.popupSelected = 0
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.eng.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.eng.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
	m.eng.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.eng.Paste(s)
}
