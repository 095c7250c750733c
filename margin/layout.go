package margin

import (
	"strconv"

	"github.com/iw2rmb/compatedit/internal/logging"
	"github.com/iw2rmb/compatedit/paint"
)

var (
	Background      = paint.MustHex("#202228")
	NumberColor     = paint.MustHex("#8f95a1")
	CurrentColor    = paint.MustHex("#c8ced9")
	FoldPen         = paint.MustHex("#8f95a1")
	FoldBrush       = paint.MustHex("#2c2f36")
	FoldGlyphOpen   = '⊟'
	FoldGlyphClosed = '⊞'
)

// Folder is the fold state the margin reads and toggles.
type Folder interface {
	IsHeader(line int) bool
	IsCollapsed(line int) bool
	Toggle(line int) bool
}

// Glyph is one drawable item of the margin strip.
type Glyph struct {
	Line   int
	Margin int
	Kind   Kind
	X      int
	Width  int

	// Text is the line number for number glyphs and the glyph rune
	// otherwise. Numbers are right-aligned inside Width.
	Text       string
	AlignRight bool
	Color      paint.Color
	Fill       paint.Color

	Marker    int
	Symbol    Symbol
	Collapsed bool
}

// Layout returns the glyphs for the given visible document lines. Each line
// yields its number glyph, fold glyph and the first accepted marker glyph of
// every symbol or text margin, in segment order.
func (r *Renderer) Layout(lines []int, lineCount, currentLine int, folder Folder) []Glyph {
	segs := r.Segments(lineCount)
	var out []Glyph
	for _, line := range lines {
		for _, s := range segs {
			g := Glyph{Line: line, Margin: s.Margin, Kind: s.Kind, X: s.X, Width: s.Width}
			switch s.Kind {
			case KindNumber:
				g.Text = strconv.Itoa(line + 1)
				g.AlignRight = true
				g.Color = NumberColor
				if line == currentLine {
					g.Color = CurrentColor
				}
			case KindFold:
				if folder == nil || !folder.IsHeader(line) {
					continue
				}
				g.Collapsed = folder.IsCollapsed(line)
				g.Text = string(FoldGlyphOpen)
				if g.Collapsed {
					g.Text = string(FoldGlyphClosed)
				}
				g.Color = FoldPen
				g.Fill = FoldBrush
			default:
				id, ok := r.FirstMarker(line, s.Margin)
				if !ok {
					continue
				}
				g.Marker = id
				g.Symbol, g.Color = r.MarkerStyle(id)
				g.Text = string(g.Symbol.Rune())
			}
			out = append(out, g)
		}
	}
	return out
}

// ClickResult says what a margin click did.
type ClickResult struct {
	Margin int
	Kind   Kind
	// Toggled is set when the click collapsed or expanded a fold.
	Toggled bool
	// Notify asks the caller to emit a margin-click notification.
	Notify bool
	// MoveCaret asks the caller to put the caret at the start of the line.
	MoveCaret bool
}

// Click routes a press at x on line. A fold segment on a header toggles the
// fold and stops there. Otherwise a sensitive margin notifies, and the caret
// moves to the line either way. Margin is -1 when x hits padding.
func (r *Renderer) Click(x, line, lineCount int, folder Folder) ClickResult {
	if line < 0 {
		return ClickResult{Margin: -1}
	}
	res := ClickResult{Margin: -1, MoveCaret: true}
	s, ok := r.SegmentAt(x, lineCount)
	if !ok {
		return res
	}
	res.Margin, res.Kind = s.Margin, s.Kind
	if s.Kind == KindFold && folder != nil && folder.IsHeader(line) {
		res.Toggled = folder.Toggle(line)
		res.MoveCaret = false
		r.logger.Debug("margin fold toggle", logging.FieldLine, line, "toggled", res.Toggled)
		return res
	}
	res.Notify = r.sensitive[s.Margin]
	return res
}
