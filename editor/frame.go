package editor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/compatedit/buffer"
	"github.com/iw2rmb/compatedit/internal/grapheme"
	"github.com/iw2rmb/compatedit/margin"
	"github.com/iw2rmb/compatedit/overlay"
	"github.com/iw2rmb/compatedit/paint"
)

var (
	Background      = paint.MustHex("#1b1d22")
	TextColor       = paint.MustHex("#d4d7dd")
	SelectionColor  = paint.MustHex("#3a5f8f")
	BraceColor      = paint.MustHex("#5da9ff")
	BadBraceColor   = paint.MustHex("#ff6b6b")
	AnnotationColor = paint.MustHex("#6f7684")
	SymbolColor     = Background.Blend(paint.MustHex("#8d939f"), 120)
)

const (
	rangeAlpha = 90
	braceAlpha = 150
)

// Symbols drawn by the view flags.
const (
	SymbolSpace   = "·"
	SymbolTab     = "→"
	SymbolControl = "."
	SymbolEOL     = "$"
	SymbolGuide   = "│"
	SymbolWrap    = "\\"
)

type CellFlag uint16

const (
	CellPrimaryCaret CellFlag = 1 << iota
	CellCaret
	CellSelection
	CellColumnRange
	CellBrace
	CellBadBrace
	CellSymbol
	CellGuide
	// CellEOL is the cell after the last character of a line.
	CellEOL
)

func (f CellFlag) Has(flag CellFlag) bool { return f&flag != 0 }

// Cell is one drawable unit of a text row. Text fills exactly Width cells.
type Cell struct {
	Text   string
	X      int
	Width  int
	Col    int
	Offset int
	Format paint.Format
	Flags  CellFlag
}

type RowKind uint8

const (
	RowText RowKind = iota
	RowAnnotation
	// RowFiller pads the frame below the last document row.
	RowFiller
)

// Row is one screen row of a frame. Text rows carry margin glyphs and
// cells; annotation rows carry Text.
type Row struct {
	Kind      RowKind
	Line      int
	Glyphs    []margin.Glyph
	Cells     []Cell
	Text      string
	Collapsed bool
	// Clipped is set when the line runs past the frame width.
	Clipped bool
	// Tail is the format of the row past its last cell.
	Tail paint.Format
}

// Frame is a surface-independent snapshot of the view.
type Frame struct {
	Top         int
	Width       int
	Height      int
	MarginWidth int
	// TotalRows is the number of visual rows of the whole document.
	TotalRows  int
	CaretWidth int
	Base       paint.Format
	Rows       []Row
}

// TextWidth is the number of cells right of the margin.
func (f Frame) TextWidth() int { return max(0, f.Width-f.MarginWidth) }

// visualRow is one row of the document layout: a visible line or one line
// of its annotation.
type visualRow struct {
	line       int
	annotation bool
	text       string
}

// visualRows lays out every visible line, each followed by its annotation
// lines.
func (e *Engine) visualRows() []visualRow {
	n := e.buf.LineCount()
	rows := make([]visualRow, 0, n)
	for line := 0; line < n; line++ {
		if !e.folds.IsLineVisible(line) {
			continue
		}
		rows = append(rows, visualRow{line: line})
		if note, ok := e.overlays.Annotation(line); ok && note != "" {
			for _, part := range strings.Split(note, "\n") {
				rows = append(rows, visualRow{line: line, annotation: true, text: part})
			}
		}
	}
	return rows
}

// VisualRowCount is the number of rows the whole document occupies.
func (e *Engine) VisualRowCount() int { return len(e.visualRows()) }

// RowOfLine returns the visual row of line. A hidden line maps to the
// closest visible line above it.
func (e *Engine) RowOfLine(line int) int {
	best := 0
	for i, r := range e.visualRows() {
		if r.annotation {
			continue
		}
		if r.line > line {
			break
		}
		best = i
	}
	return best
}

// Frame builds the rows [top, top+height) of the view at width cells,
// margin included. Pending buffer changes are synced first.
func (e *Engine) Frame(top, height, width int) Frame {
	e.Sync()

	rows := e.visualRows()
	lineCount := e.buf.LineCount()
	f := Frame{
		Top:         max(0, top),
		Width:       max(0, width),
		Height:      max(0, height),
		MarginWidth: min(max(0, width), e.margins.TotalWidth(lineCount)),
		TotalRows:   len(rows),
		CaretWidth:  e.caretWidth,
		Base:        paint.Format{Fg: TextColor, Bg: Background},
	}

	end := min(len(rows), f.Top+f.Height)
	var lines []int
	for i := f.Top; i < end; i++ {
		if !rows[i].annotation {
			lines = append(lines, rows[i].line)
		}
	}

	cursor := e.buf.Cursor()
	glyphs := make(map[int][]margin.Glyph, len(lines))
	for _, g := range e.margins.Layout(lines, lineCount, cursor.Row, e.folds) {
		glyphs[g.Line] = append(glyphs[g.Line], g)
	}

	st := e.paintState(cursor)
	for i := f.Top; i < end; i++ {
		r := rows[i]
		if r.annotation {
			f.Rows = append(f.Rows, Row{
				Kind: RowAnnotation,
				Line: r.line,
				Text: grapheme.Truncate(r.text, f.TextWidth()),
				Tail: paint.Format{Fg: AnnotationColor}.Over(f.Base),
			})
			continue
		}
		row := e.textRow(r.line, f.TextWidth(), f.Base, st)
		row.Glyphs = glyphs[r.line]
		f.Rows = append(f.Rows, row)
	}
	for len(f.Rows) < f.Height {
		f.Rows = append(f.Rows, Row{Kind: RowFiller, Line: -1, Tail: f.Base})
	}
	return f
}

// paintState is everything a text row needs that does not depend on the
// row.
type paintState struct {
	spans    []paint.Span
	primary  int
	carets   map[int]struct{}
	ranges   [][2]int
	sel      [2]int
	hasSel   bool
	brace    overlay.BracePair
	hasBrace bool
}

func (e *Engine) paintState(cursor buffer.Pos) paintState {
	lineStart := e.buf.OffsetFromPos(buffer.Pos{Row: cursor.Row})
	lineEnd := lineStart + e.buf.LineLen(cursor.Row)
	st := paintState{
		spans:   e.overlays.PaintSpans(e.buf.Len(), overlay.LineSpan{Start: lineStart, End: lineEnd}),
		primary: e.CaretOffset(),
		carets:  make(map[int]struct{}),
	}
	for _, c := range e.carets.Carets() {
		st.carets[c] = struct{}{}
	}
	for _, r := range e.carets.Ranges() {
		if !r.Empty() {
			st.ranges = append(st.ranges, [2]int{r.Start, r.End})
		}
	}
	if r, ok := e.buf.Selection(); ok {
		st.sel = [2]int{e.buf.OffsetFromPos(r.Start), e.buf.OffsetFromPos(r.End)}
		st.hasSel = true
	}
	st.brace, st.hasBrace = e.overlays.BraceMatch()
	return st
}

func (e *Engine) textRow(line, width int, base paint.Format, st paintState) Row {
	row := Row{Kind: RowText, Line: line, Collapsed: e.folds.IsCollapsed(line)}
	start := e.buf.OffsetFromPos(buffer.Pos{Row: line})
	runes := []rune(e.buf.Line(line))
	lineEnd := start + len(runes)
	indent := e.indentCells(runes)

	x := 0
	for i, r := range runes {
		off := start + i
		w := grapheme.CellWidth(r, x, e.tabWidth)
		control := r != '\t' && unicode.IsControl(r)
		if w == 0 && !control {
			if n := len(row.Cells); n > 0 {
				row.Cells[n-1].Text += string(r)
				continue
			}
		}
		if control || w == 0 {
			w = 1
		}
		if x+w > width {
			row.Clipped = true
			break
		}

		c := Cell{Text: string(r), X: x, Width: w, Col: i, Offset: off}
		switch {
		case r == '\t':
			c.Text = strings.Repeat(" ", w)
			if e.view.Whitespace {
				c.Text = SymbolTab + strings.Repeat(" ", w-1)
				c.Flags |= CellSymbol
			}
		case r == ' ':
			if e.view.Whitespace {
				c.Text = SymbolSpace
				c.Flags |= CellSymbol
			}
		case control:
			c.Text = " "
			if e.view.ControlChars {
				c.Text = SymbolControl
				c.Flags |= CellSymbol
			}
		}
		if e.view.IndentGuides && x > 0 && x < indent && x%e.tabWidth == 0 && (r == ' ' || r == '\t') {
			c.Text = withLead(SymbolGuide, c.Text)
			c.Flags |= CellGuide
		}

		c.Format = paint.Resolve(st.spans, off, base)
		e.decorate(&c, st)
		row.Cells = append(row.Cells, c)
		x += w
	}

	if row.Clipped {
		if e.view.WrapSymbol && len(row.Cells) > 0 {
			last := &row.Cells[len(row.Cells)-1]
			last.Text = withLead(SymbolWrap, strings.Repeat(" ", last.Width))
			last.Flags |= CellSymbol
			last.Format = paint.Format{Fg: SymbolColor}.Over(last.Format)
		}
	} else if x < width {
		c := Cell{Text: " ", X: x, Width: 1, Col: len(runes), Offset: lineEnd, Flags: CellEOL}
		if e.view.EOL {
			c.Text = SymbolEOL
			c.Flags |= CellSymbol
		}
		c.Format = paint.ResolveTail(st.spans, lineEnd, base)
		e.decorate(&c, st)
		row.Cells = append(row.Cells, c)
	}

	row.Tail = paint.ResolveTail(st.spans, lineEnd, base)
	return row
}

// decorate applies selection, column ranges, braces, symbols and carets.
func (e *Engine) decorate(c *Cell, st paintState) {
	off := c.Offset
	eol := c.Flags.Has(CellEOL)
	if st.hasSel && off >= st.sel[0] && off < st.sel[1] {
		c.Format = paint.Format{Bg: SelectionColor}.Over(c.Format)
		c.Flags |= CellSelection
	}
	if !eol {
		for _, r := range st.ranges {
			if off >= r[0] && off < r[1] {
				c.Format = paint.Format{Bg: SelectionColor, BgAlpha: rangeAlpha}.Over(c.Format)
				c.Flags |= CellColumnRange
				break
			}
		}
	}
	if st.hasBrace && !eol && (off == st.brace.A || off == st.brace.B) {
		if st.brace.Bad() || st.brace.A < 0 || st.brace.B < 0 {
			c.Format = paint.Format{Fg: BadBraceColor, Bold: true}.Over(c.Format)
			c.Flags |= CellBadBrace
		} else {
			c.Format = paint.Format{Bg: BraceColor, BgAlpha: braceAlpha, Bold: true}.Over(c.Format)
			c.Flags |= CellBrace
		}
	}
	if c.Flags.Has(CellSymbol) || c.Flags.Has(CellGuide) {
		c.Format = paint.Format{Fg: SymbolColor}.Over(c.Format)
	}
	if off == st.primary {
		c.Flags |= CellPrimaryCaret
	}
	if _, ok := st.carets[off]; ok {
		c.Flags |= CellCaret
	}
}

// indentCells is the cell width of the leading whitespace of a line.
func (e *Engine) indentCells(runes []rune) int {
	x := 0
	for _, r := range runes {
		if r != ' ' && r != '\t' {
			break
		}
		x += grapheme.CellWidth(r, x, e.tabWidth)
	}
	return x
}

// withLead replaces the first rune of text with sym.
func withLead(sym, text string) string {
	_, size := utf8.DecodeRuneInString(text)
	return sym + text[size:]
}
