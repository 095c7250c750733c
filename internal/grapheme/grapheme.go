// Package grapheme holds terminal cell-width and character-class helpers
// shared by the margin renderer and the editor surfaces.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	if text == "" {
		return 0
	}
	w := runewidth.StringWidth(text)
	if alt := uniseg.StringWidth(text); alt > w {
		w = alt
	}
	return w
}

// RuneWidth returns the cell width of r. Control runes are zero-width.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}

// TabAdvance returns the cells a tab occupies at visualCol.
func TabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - visualCol%tabWidth
}

// CellWidth is RuneWidth with tab stops applied.
func CellWidth(r rune, visualCol, tabWidth int) int {
	if r == '\t' {
		return TabAdvance(visualCol, tabWidth)
	}
	return RuneWidth(r)
}

// Truncate clips text to at most width cells, grapheme-safe.
func Truncate(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	g := uniseg.NewGraphemes(text)
	used := 0
	var sb strings.Builder
	for g.Next() {
		w := Width(g.Str())
		if used+w > width {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	return sb.String()
}

// Pad right-pads text with spaces to width cells, truncating when longer.
func Pad(text string, width int) string {
	text = Truncate(text, width)
	if w := Width(text); w < width {
		text += strings.Repeat(" ", width-w)
	}
	return text
}

// IsWord reports whether r belongs to an identifier-like word: a letter,
// digit or underscore.
func IsWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsSpace reports whether r is Unicode whitespace.
func IsSpace(r rune) bool { return unicode.IsSpace(r) }

// Bounds returns the rune columns at which grapheme clusters of line start,
// followed by len(line). An empty line yields [0].
func Bounds(line []rune) []int {
	out := make([]int, 1, len(line)+1)
	if len(line) == 0 {
		return out
	}
	g := uniseg.NewGraphemes(string(line))
	col := 0
	for g.Next() {
		col += len(g.Runes())
		out = append(out, col)
	}
	return out
}

// Next returns the first cluster boundary after col, or len(line).
func Next(line []rune, col int) int {
	for _, b := range Bounds(line) {
		if b > col {
			return b
		}
	}
	return len(line)
}

// Prev returns the last cluster boundary before col, or 0.
func Prev(line []rune, col int) int {
	bounds := Bounds(line)
	for i := len(bounds) - 1; i >= 0; i-- {
		if bounds[i] < col {
			return bounds[i]
		}
	}
	return 0
}

// Snap moves col back to the start of the cluster containing it.
func Snap(line []rune, col int) int {
	if col <= 0 {
		return 0
	}
	if col >= len(line) {
		return len(line)
	}
	start := 0
	for _, b := range Bounds(line) {
		if b > col {
			break
		}
		start = b
	}
	return start
}
