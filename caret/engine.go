package caret

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/iw2rmb/compatedit/buffer"
	"github.com/iw2rmb/compatedit/internal/logging"
)

// Document is the host buffer surface the engine edits through.
// *buffer.Buffer implements it.
type Document interface {
	Len() int
	LineCount() int
	Line(row int) string
	LineLen(row int) int
	OffsetFromPos(p buffer.Pos) int
	PosFromOffset(off int) buffer.Pos
	Cursor() buffer.Pos
	SetCursor(p buffer.Pos)
	SelectionRaw() (buffer.Range, bool)
	SetSelection(r buffer.Range)
	ClearSelection()
	ApplyOffsets(edits ...buffer.OffsetEdit)
}

// Range is one row of a column selection over rune offsets [Start, End).
// Pad is the number of spaces a write must insert first because the row is
// shorter than the block's left column.
type Range struct {
	Start int
	End   int
	Pad   int
}

func (r Range) Empty() bool { return r.Start == r.End }

// Block is the rectangle behind a column selection: rows LineLo..LineHi
// inclusive, rune columns [ColLo, ColHi).
type Block struct {
	LineLo int
	LineHi int
	ColLo  int
	ColHi  int
}

type Direction uint8

const (
	Left Direction = iota
	Right
	Home
	End
)

type Options struct {
	MultipleSelection bool
	AdditionalTyping  bool
	MultiPaste        bool
	ColumnMode        bool
	IndentWidth       int
	UseTabs           bool
}

func DefaultOptions() Options {
	return Options{IndentWidth: 4}
}

// Engine tracks the carets and column ranges of one view. The primary caret
// is the host document's cursor; the engine stores only the additional ones.
type Engine struct {
	doc Document
	opt Options
	log *log.Logger

	carets []int

	ranges   []Range
	block    Block
	hasBlock bool

	anchor   buffer.Pos
	dragging bool

	// owned is set when the engine edited the document itself.
	owned bool
}

func New(doc Document, opt Options) *Engine {
	if opt.IndentWidth < 1 {
		opt.IndentWidth = 1
	}
	return &Engine{doc: doc, opt: opt, log: logging.Discard()}
}

func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	e.log = l
}

func (e *Engine) Options() Options { return e.opt }

// SetMultipleSelection enables Ctrl+Alt caret toggling. Disabling it drops
// the additional carets.
func (e *Engine) SetMultipleSelection(v bool) {
	e.opt.MultipleSelection = v
	if !v {
		e.carets = nil
	}
}

func (e *Engine) SetAdditionalSelectionTyping(v bool) { e.opt.AdditionalTyping = v }

func (e *Engine) SetMultiPaste(v bool) { e.opt.MultiPaste = v }

// SetColumnMode switches rectangular selection on mouse drag. Disabling it
// drops the current column ranges.
func (e *Engine) SetColumnMode(v bool) {
	e.opt.ColumnMode = v
	if !v {
		e.ClearRanges()
		e.dragging = false
	}
}

func (e *Engine) SetIndentation(width int, useTabs bool) {
	if width < 1 {
		width = 1
	}
	e.opt.IndentWidth = width
	e.opt.UseTabs = useTabs
}

// Carets returns the additional carets, sorted.
func (e *Engine) Carets() []int { return append([]int(nil), e.carets...) }

// Ranges returns the current column sub-ranges in row order.
func (e *Engine) Ranges() []Range { return append([]Range(nil), e.ranges...) }

func (e *Engine) Block() (Block, bool) { return e.block, e.hasBlock }

// Active reports whether typing goes to every caret.
func (e *Engine) Active() bool {
	return e.opt.MultipleSelection && e.opt.AdditionalTyping && len(e.carets) > 0
}

// RangesActive reports whether typing replaces the column ranges.
func (e *Engine) RangesActive() bool {
	return len(e.ranges) > 0 && (e.opt.ColumnMode || e.opt.AdditionalTyping)
}

// Positions returns the primary caret and the additional carets as one
// sorted set.
func (e *Engine) Positions() []int {
	return sortedDistinct(append([]int{e.primary()}, e.carets...))
}

func (e *Engine) primary() int { return e.doc.OffsetFromPos(e.doc.Cursor()) }

// ToggleCaretAt adds an additional caret at offset, or removes the one that
// is already there. It reports false when multiple selection is off or
// offset is the primary caret.
func (e *Engine) ToggleCaretAt(offset int) bool {
	if !e.opt.MultipleSelection {
		return false
	}
	e.ClearRanges()
	offset = clamp(offset, 0, e.doc.Len())
	if offset == e.primary() {
		return false
	}
	for i, c := range e.carets {
		if c == offset {
			e.carets = append(e.carets[:i:i], e.carets[i+1:]...)
			return true
		}
	}
	e.carets = sortedDistinct(append(e.carets, offset))
	return true
}

func (e *Engine) ClearCarets() { e.carets = nil }

// ClaimEdit reports whether the latest text change was made by the engine,
// and forgets it.
func (e *Engine) ClaimEdit() bool {
	owned := e.owned
	e.owned = false
	return owned
}

// Rebase carries the additional carets across a change made outside the
// engine. Carets that land on the primary caret or on each other merge, and
// column ranges are dropped.
func (e *Engine) Rebase(c buffer.Change) {
	e.ClearRanges()
	e.dragging = false
	if len(e.carets) == 0 {
		return
	}
	n := e.doc.Len()
	primary := e.primary()
	moved := make([]int, 0, len(e.carets))
	for _, p := range e.carets {
		if q := clamp(c.MapOffset(p), 0, n); q != primary {
			moved = append(moved, q)
		}
	}
	e.carets = sortedDistinct(moved)
	e.log.Debug("carets rebased", logging.FieldCarets, len(e.carets), logging.FieldEdits, len(c.AppliedEdits))
}

func (e *Engine) ClearRanges() {
	e.ranges = nil
	e.block = Block{}
	e.hasBlock = false
}

// ClearAll drops additional carets, column ranges and any drag in progress.
func (e *Engine) ClearAll() {
	e.carets = nil
	e.ClearRanges()
	e.dragging = false
}

// MoveAll moves every caret one step. With extend, the primary caret keeps
// its selection anchor; additional carets never carry a selection.
func (e *Engine) MoveAll(dir Direction, extend bool) {
	positions := e.Positions()
	primary := e.primary()

	anchor := e.doc.Cursor()
	if r, ok := e.doc.SelectionRaw(); ok {
		anchor = r.Start
	}

	docLen := e.doc.Len()
	next := make([]int, len(positions))
	for i, pos := range positions {
		switch dir {
		case Left:
			next[i] = max(0, pos-1)
		case Right:
			next[i] = min(docLen, pos+1)
		case Home:
			p := e.doc.PosFromOffset(pos)
			next[i] = e.doc.OffsetFromPos(buffer.Pos{Row: p.Row})
		case End:
			p := e.doc.PosFromOffset(pos)
			next[i] = e.doc.OffsetFromPos(buffer.Pos{Row: p.Row, Col: e.doc.LineLen(p.Row)})
		default:
			next[i] = pos
		}
	}

	e.ClearRanges()
	newPrimary := pickPrimary(positions, primary, next)
	e.setCarets(newPrimary, next)
	if extend {
		e.doc.SetSelection(buffer.Range{Start: anchor, End: e.doc.PosFromOffset(newPrimary)})
	}
}

// setCarets makes primary the host cursor and the remaining points the
// additional carets.
func (e *Engine) setCarets(primary int, points []int) {
	e.doc.ClearSelection()
	e.doc.SetCursor(e.doc.PosFromOffset(primary))
	primary = e.primary()

	var rest []int
	for _, p := range sortedDistinct(points) {
		if p != primary {
			rest = append(rest, p)
		}
	}
	e.carets = rest
}

// pickPrimary maps the old primary caret onto its post-edit point by index,
// falling back to the last point.
func pickPrimary(old []int, primary int, next []int) int {
	for i, p := range old {
		if p == primary && i < len(next) {
			return next[i]
		}
	}
	return next[len(next)-1]
}

func sortedDistinct(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	out := append([]int(nil), in...)
	sort.Ints(out)
	n := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[n-1] {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
