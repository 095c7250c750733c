package editor

import (
	"unicode"

	"github.com/iw2rmb/compatedit/buffer"
	"github.com/iw2rmb/compatedit/internal/grapheme"
)

// Pointer is a view cell resolved against the document.
type Pointer struct {
	Row  int
	Line int

	// InMargin is set for x inside the margin strip; MarginX is then the
	// margin-local x.
	InMargin bool
	MarginX  int

	// Col is the rune column under x. It runs past the end of the line in
	// virtual space, one column per cell.
	Col int
	// Offset is the document offset of Col clamped to the line.
	Offset int
	// OnText is set when x is over a character of the line.
	OnText bool

	Annotation bool
}

// HitTest resolves the view cell (x, row), where row counts visual rows
// from the top of the document. Rows below the document map to the last
// visible line.
func (e *Engine) HitTest(x, row int) Pointer {
	rows := e.visualRows()
	p := Pointer{Row: row, Line: -1}
	if len(rows) == 0 || e.buf.LineCount() == 0 {
		return p
	}
	if row < 0 {
		row = 0
	}
	below := row >= len(rows)
	if below {
		row = len(rows) - 1
	}
	vr := rows[row]
	p.Line = vr.line
	p.Annotation = vr.annotation && !below

	mw := e.margins.TotalWidth(e.buf.LineCount())
	if x < mw {
		p.InMargin = true
		p.MarginX = max(0, x)
		x = 0
	} else {
		x -= mw
	}

	col, onText := e.colAt(vr.line, x)
	p.Col = col
	p.OnText = onText && !p.InMargin && !p.Annotation
	p.Offset = e.buf.OffsetFromPos(buffer.Pos{Row: vr.line, Col: col})
	return p
}

// colAt maps a text-area x on line to a rune column. A cell inside a wide
// character or a tab maps to that character.
func (e *Engine) colAt(line, x int) (col int, onText bool) {
	runes := []rune(e.buf.Line(line))
	cx := 0
	n := 0
	for i, r := range runes {
		w := grapheme.CellWidth(r, cx, e.tabWidth)
		if w == 0 {
			if !unicode.IsControl(r) && i > 0 {
				n = i + 1
				continue
			}
			w = 1
		}
		if x < cx+w {
			return i, true
		}
		cx += w
		n = i + 1
	}
	return n + max(0, x-cx), false
}

// ScreenOfOffset returns the visual row and text-area x of offset. ok is
// false when the line is hidden.
func (e *Engine) ScreenOfOffset(off int) (x, row int, ok bool) {
	p := e.buf.PosFromOffset(off)
	if !e.folds.IsLineVisible(p.Row) {
		return 0, 0, false
	}
	runes := []rune(e.buf.Line(p.Row))
	for i := 0; i < p.Col && i < len(runes); i++ {
		w := grapheme.CellWidth(runes[i], x, e.tabWidth)
		if w == 0 && (i == 0 || unicode.IsControl(runes[i])) {
			w = 1
		}
		x += w
	}
	return x, e.RowOfLine(p.Row), true
}
