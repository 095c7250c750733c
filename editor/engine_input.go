package editor

import (
	"strings"

	"github.com/iw2rmb/compatedit/buffer"
	"github.com/iw2rmb/compatedit/caret"
	"github.com/iw2rmb/compatedit/completion"
)

// target is where an edit goes.
type target uint8

const (
	targetHost target = iota
	targetRanges
	targetCarets
)

// route picks the edit target: column ranges first, then additional carets
// while the host has no selection, else the host buffer.
func (e *Engine) route() target {
	if e.carets.RangesActive() {
		return targetRanges
	}
	if e.caretsTakeInput() {
		return targetCarets
	}
	return targetHost
}

func (e *Engine) caretsTakeInput() bool {
	if !e.carets.Active() {
		return false
	}
	_, sel := e.buf.Selection()
	return !sel
}

// InsertText types s at every active target.
func (e *Engine) InsertText(s string) {
	if s == "" {
		return
	}
	switch e.route() {
	case targetRanges:
		e.carets.ReplaceRanges(s)
	case targetCarets:
		e.carets.InsertAll(s)
	default:
		e.buf.InsertText(s)
	}
	e.Sync()
}

func (e *Engine) DeleteBackward() { e.delete(true) }

func (e *Engine) DeleteForward() { e.delete(false) }

func (e *Engine) delete(backward bool) {
	switch e.route() {
	case targetRanges:
		e.carets.DeleteRanges(backward)
	case targetCarets:
		e.carets.DeleteAll(backward)
	case targetHost:
		if backward {
			e.buf.DeleteBackward()
		} else {
			e.buf.DeleteForward()
		}
	}
	e.Sync()
}

// Newline inserts a line break. Multi-position edits carry the primary
// line's indentation.
func (e *Engine) Newline() {
	switch e.route() {
	case targetRanges:
		e.carets.ReplaceRanges(e.carets.NewlineText())
	case targetCarets:
		e.carets.InsertAll(e.carets.NewlineText())
	default:
		e.buf.InsertNewline()
	}
	e.Sync()
}

// Tab inserts a tab or the indentation width in spaces.
func (e *Engine) Tab() {
	text := e.carets.TabText()
	switch e.route() {
	case targetRanges:
		e.carets.ReplaceRanges(text)
	case targetCarets:
		e.carets.InsertAll(text)
	default:
		e.buf.InsertText(text)
	}
	e.Sync()
}

// Paste inserts clipboard text at the active targets.
func (e *Engine) Paste(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if e.route() == targetHost || !e.carets.Paste(text) {
		if text == "" {
			return
		}
		e.buf.InsertText(text)
	}
	e.Sync()
}

// MoveCarets moves every caret one step. It reports false, doing nothing,
// unless additional carets take typing.
func (e *Engine) MoveCarets(dir caret.Direction, extend bool) bool {
	if !e.caretsTakeInput() {
		return false
	}
	e.carets.MoveAll(dir, extend)
	e.Sync()
	return true
}

// Move moves the host caret only.
func (e *Engine) Move(m buffer.Move) {
	e.buf.Move(m)
	e.Sync()
}

// ToggleCaretAt adds or removes an additional caret at offset.
func (e *Engine) ToggleCaretAt(offset int) bool {
	ok := e.carets.ToggleCaretAt(offset)
	if ok {
		e.repaint()
	}
	return ok
}

// ClearCarets drops every additional caret and column range.
func (e *Engine) ClearCarets() {
	e.carets.ClearAll()
	e.repaint()
}

// Escape drops column ranges and additional carets. It reports whether
// there was anything to drop.
func (e *Engine) Escape() bool {
	had := len(e.carets.Ranges()) > 0 || len(e.carets.Carets()) > 0 || e.carets.Dragging()
	if had {
		e.ClearCarets()
	}
	return had
}

func (e *Engine) Undo() bool {
	e.carets.ClearAll()
	ok := e.buf.Undo()
	e.Sync()
	return ok
}

func (e *Engine) Redo() bool {
	e.carets.ClearAll()
	ok := e.buf.Redo()
	e.Sync()
	return ok
}

// SelectedText returns the host selection, or the column ranges joined by
// newlines.
func (e *Engine) SelectedText() string {
	if r, ok := e.buf.Selection(); ok {
		return textInRange(e.buf, r)
	}
	ranges := e.carets.Ranges()
	if len(ranges) == 0 {
		return ""
	}
	text := []rune(e.buf.Text())
	rows := make([]string, 0, len(ranges))
	for _, r := range ranges {
		lo, hi := clampInt(r.Start, 0, len(text)), clampInt(r.End, 0, len(text))
		rows = append(rows, string(text[lo:hi]))
	}
	return strings.Join(rows, "\n")
}

// DeleteSelection removes the host selection or the column ranges.
func (e *Engine) DeleteSelection() {
	if _, ok := e.buf.Selection(); ok {
		e.buf.DeleteSelection()
	} else if len(e.carets.Ranges()) > 0 {
		e.carets.DeleteRanges(false)
	}
	e.Sync()
}

func textInRange(b *buffer.Buffer, r buffer.Range) string {
	r = buffer.NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	start, end := b.OffsetFromPos(r.Start), b.OffsetFromPos(r.End)
	return string([]rune(b.Text())[start:end])
}

// Completion.

// InvokeCompletion computes the popup for the primary caret. force ignores
// the threshold, as for an explicit request.
func (e *Engine) InvokeCompletion(force bool) completion.Popup {
	return e.completion.Invoke(e.buf.Text(), e.CaretOffset(), force)
}

// AcceptCompletion replaces the word at the primary caret with candidate.
func (e *Engine) AcceptCompletion(candidate string) bool {
	start, end, repl, ok := e.completion.Accept(e.buf.Text(), e.CaretOffset(), candidate)
	if !ok {
		return false
	}
	e.carets.ClearAll()
	e.buf.ReplaceRange(start, end, repl)
	e.buf.SetCursor(e.buf.PosFromOffset(start + len([]rune(repl))))
	e.Sync()
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
