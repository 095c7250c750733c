package editor

import (
	"reflect"
	"testing"

	"github.com/iw2rmb/compatedit/buffer"
	"github.com/iw2rmb/compatedit/internal/logging"
	"github.com/iw2rmb/compatedit/margin"
)

func cellTexts(row Row) []string {
	out := make([]string, 0, len(row.Cells))
	for _, c := range row.Cells {
		out = append(out, c.Text)
	}
	return out
}

func rowLines(f Frame) []int {
	var out []int
	for _, r := range f.Rows {
		if r.Kind == RowText {
			out = append(out, r.Line)
		}
	}
	return out
}

func TestFrame_PlainRowsAndFiller(t *testing.T) {
	e := newTestEngine(t, "ab")
	f := e.Frame(0, 3, 10)

	if got := len(f.Rows); got != 3 {
		t.Fatalf("rows: got %d, want 3", got)
	}
	if f.TotalRows != 1 {
		t.Fatalf("total rows: got %d, want 1", f.TotalRows)
	}
	row := f.Rows[0]
	if got, want := cellTexts(row), []string{"a", "b", " "}; !reflect.DeepEqual(got, want) {
		t.Fatalf("cells: got %q, want %q", got, want)
	}
	if !row.Cells[2].Flags.Has(CellEOL) {
		t.Fatalf("last cell should be the eol cell")
	}
	if !row.Cells[0].Flags.Has(CellPrimaryCaret) {
		t.Fatalf("primary caret flag missing at offset 0")
	}
	for _, r := range f.Rows[1:] {
		if r.Kind != RowFiller || r.Line != -1 {
			t.Fatalf("filler row: got %+v", r)
		}
	}
}

func TestFrame_WhitespaceAndEOLSymbols(t *testing.T) {
	e := newTestEngine(t, "a b\tc")
	e.SetViewWhitespace(true)
	e.SetViewEOL(true)

	row := e.Frame(0, 1, 20).Rows[0]
	want := []string{"a", SymbolSpace, "b", SymbolTab, "c", SymbolEOL}
	if got := cellTexts(row); !reflect.DeepEqual(got, want) {
		t.Fatalf("cells: got %q, want %q", got, want)
	}
	if !row.Cells[1].Flags.Has(CellSymbol) || !row.Cells[5].Flags.Has(CellSymbol) {
		t.Fatalf("symbol flags missing")
	}
	if row.Cells[1].Format.Fg != SymbolColor {
		t.Fatalf("symbol color: got %v, want %v", row.Cells[1].Format.Fg, SymbolColor)
	}
}

func TestFrame_TabExpandsToStop(t *testing.T) {
	e := newTestEngine(t, "\tx")
	row := e.Frame(0, 1, 20).Rows[0]
	if got := row.Cells[0]; got.Width != 4 || got.Text != "    " {
		t.Fatalf("tab cell: got %+v", got)
	}
	if got := row.Cells[1].X; got != 4 {
		t.Fatalf("x after tab: got %d, want 4", got)
	}
}

func TestFrame_ControlChars(t *testing.T) {
	e := newTestEngine(t, "a\x01b")
	row := e.Frame(0, 1, 20).Rows[0]
	if got := row.Cells[1]; got.Text != " " || got.Width != 1 {
		t.Fatalf("hidden control cell: got %+v", got)
	}

	e.SetControlCharSymbols(true)
	row = e.Frame(0, 1, 20).Rows[0]
	if got := row.Cells[1].Text; got != SymbolControl {
		t.Fatalf("control symbol: got %q, want %q", got, SymbolControl)
	}
	if got := row.Cells[2].X; got != 2 {
		t.Fatalf("x after control: got %d, want 2", got)
	}
}

func TestFrame_WideRunes(t *testing.T) {
	e := newTestEngine(t, "中a")
	row := e.Frame(0, 1, 20).Rows[0]
	if got := row.Cells[0]; got.Width != 2 || got.Col != 0 {
		t.Fatalf("wide cell: got %+v", got)
	}
	if got := row.Cells[1]; got.X != 2 || got.Col != 1 || got.Offset != 1 {
		t.Fatalf("cell after wide rune: got %+v", got)
	}
}

func TestFrame_IndentGuides(t *testing.T) {
	e := newTestEngine(t, "        x")
	e.SetIndentationGuides(true)

	row := e.Frame(0, 1, 20).Rows[0]
	for _, c := range row.Cells {
		guide := c.Flags.Has(CellGuide)
		if want := c.X == 4; guide != want {
			t.Fatalf("guide at x=%d: got %v, want %v", c.X, guide, want)
		}
	}
	if got := row.Cells[4].Text; got != SymbolGuide {
		t.Fatalf("guide text: got %q, want %q", got, SymbolGuide)
	}
}

func TestFrame_SkipsHiddenLines(t *testing.T) {
	e := newTestEngine(t, "a\nb\nc")
	e.HideLines(1, 1)

	f := e.Frame(0, 3, 10)
	if got, want := rowLines(f), []int{0, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines: got %v, want %v", got, want)
	}
	if f.Rows[2].Kind != RowFiller {
		t.Fatalf("third row should be filler, got %+v", f.Rows[2])
	}
}

func TestFrame_CollapsedHeader(t *testing.T) {
	e := newTestEngine(t, "a\n  b\nc")
	e.FoldLine(0, false)

	f := e.Frame(0, 2, 10)
	if got, want := rowLines(f), []int{0, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines: got %v, want %v", got, want)
	}
	if !f.Rows[0].Collapsed {
		t.Fatalf("header row should be marked collapsed")
	}
}

func TestFrame_AnnotationRows(t *testing.T) {
	e := newTestEngine(t, "a\nb")
	e.AnnotationSetText(0, "note\nmore")

	f := e.Frame(0, 4, 10)
	kinds := []RowKind{RowText, RowAnnotation, RowAnnotation, RowText}
	for i, want := range kinds {
		if got := f.Rows[i].Kind; got != want {
			t.Fatalf("row %d kind: got %v, want %v", i, got, want)
		}
	}
	if got := f.Rows[1].Text; got != "note" {
		t.Fatalf("annotation text: got %q, want %q", got, "note")
	}
	if got := f.Rows[2].Line; got != 0 {
		t.Fatalf("annotation line: got %d, want 0", got)
	}
	if f.TotalRows != 4 {
		t.Fatalf("total rows: got %d, want 4", f.TotalRows)
	}
}

func TestFrame_TopSkipsRows(t *testing.T) {
	e := newTestEngine(t, "a\nb\nc\nd")
	f := e.Frame(2, 2, 10)
	if got, want := rowLines(f), []int{2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines: got %v, want %v", got, want)
	}
}

func TestFrame_ClippedRowShowsWrapSymbol(t *testing.T) {
	e := newTestEngine(t, "abcdef")
	row := e.Frame(0, 1, 4).Rows[0]
	if !row.Clipped {
		t.Fatalf("row should be clipped")
	}
	if got, want := cellTexts(row), []string{"a", "b", "c", "d"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("cells: got %q, want %q", got, want)
	}

	e.SetWrapSymbol(true)
	row = e.Frame(0, 1, 4).Rows[0]
	if got := row.Cells[3].Text; got != SymbolWrap {
		t.Fatalf("wrap symbol: got %q, want %q", got, SymbolWrap)
	}
}

func TestFrame_CaretsAndSelection(t *testing.T) {
	e := newTestEngine(t, "abcd")
	enableMulti(e)
	e.ToggleCaretAt(2)

	row := e.Frame(0, 1, 10).Rows[0]
	if !row.Cells[2].Flags.Has(CellCaret) {
		t.Fatalf("additional caret flag missing")
	}
	if row.Cells[1].Flags.Has(CellCaret) {
		t.Fatalf("unexpected caret flag at offset 1")
	}

	e.ClearCarets()
	e.Buffer().SetSelection(buffer.Range{Start: buffer.Pos{Col: 1}, End: buffer.Pos{Col: 3}})
	row = e.Frame(0, 1, 10).Rows[0]
	for i, c := range row.Cells {
		want := i == 1 || i == 2
		if got := c.Flags.Has(CellSelection); got != want {
			t.Fatalf("selection at %d: got %v, want %v", i, got, want)
		}
	}
	if row.Cells[1].Format.Bg != SelectionColor {
		t.Fatalf("selection bg: got %v, want %v", row.Cells[1].Format.Bg, SelectionColor)
	}
}

func TestFrame_ColumnRanges(t *testing.T) {
	e := newTestEngine(t, "abc\ndef")
	e.SetColumnMode(true)
	e.BeginColumnDrag(0, 0)
	e.UpdateColumnDrag(1, 2)

	f := e.Frame(0, 2, 10)
	for _, row := range f.Rows {
		for i, c := range row.Cells {
			want := i < 2
			if got := c.Flags.Has(CellColumnRange); got != want {
				t.Fatalf("line %d cell %d range flag: got %v, want %v", row.Line, i, got, want)
			}
		}
	}
}

func TestFrame_BraceFlags(t *testing.T) {
	e := newTestEngine(t, "(a)")
	row := e.Frame(0, 1, 10).Rows[0]
	if !row.Cells[0].Flags.Has(CellBrace) || !row.Cells[2].Flags.Has(CellBrace) {
		t.Fatalf("matched brace flags missing")
	}

	e.SetText("(a")
	row = e.Frame(0, 1, 10).Rows[0]
	if !row.Cells[0].Flags.Has(CellBadBrace) {
		t.Fatalf("unmatched brace flag missing")
	}
	if row.Cells[0].Format.Fg != BadBraceColor {
		t.Fatalf("bad brace fg: got %v, want %v", row.Cells[0].Format.Fg, BadBraceColor)
	}

	e.BraceBadLight(1)
	row = e.Frame(0, 1, 10).Rows[0]
	if !row.Cells[1].Flags.Has(CellBadBrace) {
		t.Fatalf("explicit bad light missing")
	}
}

func TestFrame_MarginGlyphs(t *testing.T) {
	e := NewEngine(Config{Text: "if x:\n    y", Logger: logging.Discard()})
	mk := e.MarkerDefine(margin.SymbolCircle)
	e.MarkerAdd(1, mk)

	f := e.Frame(0, 2, 20)
	if f.MarginWidth != 8 {
		t.Fatalf("margin width: got %d, want 8", f.MarginWidth)
	}
	if got := f.TextWidth(); got != 12 {
		t.Fatalf("text width: got %d, want 12", got)
	}

	kinds := func(r Row) []margin.Kind {
		var out []margin.Kind
		for _, g := range r.Glyphs {
			out = append(out, g.Kind)
		}
		return out
	}
	if got, want := kinds(f.Rows[0]), []margin.Kind{margin.KindFold, margin.KindNumber}; !reflect.DeepEqual(got, want) {
		t.Fatalf("line 0 glyphs: got %v, want %v", got, want)
	}
	if got, want := kinds(f.Rows[1]), []margin.Kind{margin.KindSymbol, margin.KindNumber}; !reflect.DeepEqual(got, want) {
		t.Fatalf("line 1 glyphs: got %v, want %v", got, want)
	}
	num := f.Rows[1].Glyphs[1]
	if num.Text != "2" || num.X != 4 || num.Width != 3 {
		t.Fatalf("number glyph: got %+v", num)
	}
}

func TestEngine_RowOfLine(t *testing.T) {
	e := newTestEngine(t, "a\nb\nc\nd")
	e.AnnotationSetText(0, "x\ny")
	e.HideLines(2, 2)

	cases := map[int]int{0: 0, 1: 3, 2: 3, 3: 4}
	for line, want := range cases {
		if got := e.RowOfLine(line); got != want {
			t.Fatalf("row of line %d: got %d, want %d", line, got, want)
		}
	}
}
