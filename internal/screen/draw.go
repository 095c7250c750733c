// Package screen draws editor frames on a tcell screen and feeds tcell
// events back into an editor engine.
package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/compatedit/editor"
	"github.com/iw2rmb/compatedit/internal/grapheme"
	"github.com/iw2rmb/compatedit/margin"
	"github.com/iw2rmb/compatedit/paint"
)

// Color converts a paint color. Invalid colors map to the terminal default.
func Color(c paint.Color) tcell.Color {
	if !c.Valid() {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Style converts a resolved paint format.
func Style(f paint.Format) tcell.Style {
	st := tcell.StyleDefault.Foreground(Color(f.Fg)).Background(Color(f.Bg))
	if f.Bold {
		st = st.Bold(true)
	}
	if f.Italic {
		st = st.Italic(true)
	}
	if f.Strike {
		st = st.StrikeThrough(true)
	}
	switch f.Underline {
	case paint.UnderlineSingle:
		st = st.Underline(true)
	case paint.UnderlineWave:
		st = st.Underline(tcell.UnderlineStyleCurly)
	case paint.UnderlineDotted:
		st = st.Underline(tcell.UnderlineStyleDotted)
	case paint.UnderlineDashed:
		st = st.Underline(tcell.UnderlineStyleDashed)
	}
	if f.Underline != paint.UnderlineNone && f.UnderlineColor.Valid() {
		st = st.Underline(Color(f.UnderlineColor))
	}
	return st
}

// DrawFrame paints f at (x0, y0). It returns the screen position of the
// primary caret when the frame contains it.
func DrawFrame(s tcell.Screen, x0, y0 int, f editor.Frame) (cx, cy int, caret bool) {
	for i, row := range f.Rows {
		y := y0 + i
		drawMargin(s, x0, y, f.MarginWidth, row)

		tx := x0 + f.MarginWidth
		used := 0
		switch row.Kind {
		case editor.RowText:
			for _, c := range row.Cells {
				st := Style(c.Format)
				if c.Flags.Has(editor.CellCaret) && !c.Flags.Has(editor.CellPrimaryCaret) {
					st = st.Reverse(true)
				}
				drawCell(s, tx+c.X, y, c, st)
				if c.Flags.Has(editor.CellPrimaryCaret) {
					cx, cy, caret = tx+c.X, y, true
				}
				used = c.X + c.Width
			}
		case editor.RowAnnotation:
			st := Style(row.Tail)
			for _, r := range row.Text {
				w := max(1, grapheme.RuneWidth(r))
				if used+w > f.TextWidth() {
					break
				}
				s.SetContent(tx+used, y, r, nil, st)
				used += w
			}
		}

		tail := Style(row.Tail)
		for x := used; x < f.TextWidth(); x++ {
			s.SetContent(tx+x, y, ' ', nil, tail)
		}
	}
	return cx, cy, caret
}

// drawCell writes the runes of c. Tabs and symbol runs fill one screen cell
// per rune; other cells carry one base rune plus combining marks.
func drawCell(s tcell.Screen, x, y int, c editor.Cell, st tcell.Style) {
	runes := []rune(c.Text)
	if len(runes) == 0 {
		return
	}
	if c.Width > 1 && len(runes) == c.Width {
		for i, r := range runes {
			s.SetContent(x+i, y, r, nil, st)
		}
		return
	}
	s.SetContent(x, y, runes[0], runes[1:], st)
}

func drawMargin(s tcell.Screen, x0, y, width int, row editor.Row) {
	if width <= 0 {
		return
	}
	bg := tcell.StyleDefault.Background(Color(margin.Background))
	for x := 0; x < width; x++ {
		s.SetContent(x0+x, y, ' ', nil, bg)
	}
	for _, g := range row.Glyphs {
		st := bg
		if g.Color.Valid() {
			st = st.Foreground(Color(g.Color))
		}
		if g.Fill.Valid() {
			st = st.Background(Color(g.Fill))
		}
		text := grapheme.Truncate(g.Text, g.Width)
		x := g.X
		if g.AlignRight {
			x += g.Width - grapheme.Width(text)
		}
		for _, r := range text {
			w := max(1, grapheme.RuneWidth(r))
			if x+w > width {
				break
			}
			s.SetContent(x0+x, y, r, nil, st)
			x += w
		}
	}
}
