package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/compatedit/internal/grapheme"
	"github.com/iw2rmb/compatedit/margin"
)

// renderFrame draws every row of f as one terminal line.
func renderFrame(f Frame, st Style, focused bool) string {
	lines := make([]string, 0, len(f.Rows))
	for _, row := range f.Rows {
		lines = append(lines, renderRow(f, row, st, focused))
	}
	return strings.Join(lines, "\n")
}

func renderRow(f Frame, row Row, st Style, focused bool) string {
	var sb strings.Builder
	sb.WriteString(renderMargin(row, f.MarginWidth))

	textWidth := f.TextWidth()
	used := 0
	switch row.Kind {
	case RowText:
		var run strings.Builder
		var runStyle lipgloss.Style
		runOpen := false
		flush := func() {
			if runOpen {
				sb.WriteString(runStyle.Render(run.String()))
				run.Reset()
				runOpen = false
			}
		}
		for _, c := range row.Cells {
			cs := formatStyle(c.Format)
			switch {
			case focused && c.Flags.Has(CellPrimaryCaret):
				cs = st.Cursor.Inherit(cs)
			case c.Flags.Has(CellCaret):
				cs = st.Caret.Inherit(cs)
			}
			if !runOpen || !sameStyle(cs, runStyle) {
				flush()
				runStyle = cs
				runOpen = true
			}
			run.WriteString(c.Text)
			used += c.Width
		}
		flush()
	case RowAnnotation:
		sb.WriteString(formatStyle(row.Tail).Render(row.Text))
		used = grapheme.Width(row.Text)
	}
	if pad := textWidth - used; pad > 0 {
		sb.WriteString(formatStyle(row.Tail).Render(strings.Repeat(" ", pad)))
	}
	return ansi.Truncate(sb.String(), f.Width, "")
}

// renderMargin draws the glyphs of a row over the margin background.
func renderMargin(row Row, width int) string {
	if width <= 0 {
		return ""
	}
	bg := lipgloss.NewStyle().Background(lipgloss.Color(margin.Background.Hex()))
	cells := make([]string, width)
	styles := make([]lipgloss.Style, width)
	for i := range cells {
		cells[i] = " "
		styles[i] = bg
	}

	for _, g := range row.Glyphs {
		if g.X >= width || g.Width <= 0 {
			continue
		}
		gs := bg
		if g.Color.Valid() {
			gs = gs.Foreground(lipgloss.Color(g.Color.Hex()))
		}
		if g.Fill.Valid() {
			gs = gs.Background(lipgloss.Color(g.Fill.Hex()))
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
			cells[x] = string(r)
			styles[x] = gs
			for k := 1; k < w; k++ {
				cells[x+k] = ""
			}
			x += w
		}
	}

	var sb strings.Builder
	for i := 0; i < width; i++ {
		if cells[i] == "" {
			continue
		}
		sb.WriteString(styles[i].Render(cells[i]))
	}
	return sb.String()
}

func sameStyle(a, b lipgloss.Style) bool {
	return a.GetForeground() == b.GetForeground() &&
		a.GetBackground() == b.GetBackground() &&
		a.GetBold() == b.GetBold() &&
		a.GetItalic() == b.GetItalic() &&
		a.GetUnderline() == b.GetUnderline() &&
		a.GetStrikethrough() == b.GetStrikethrough() &&
		a.GetReverse() == b.GetReverse() &&
		a.GetFaint() == b.GetFaint()
}
