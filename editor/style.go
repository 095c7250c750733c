package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/compatedit/paint"
)

// Style controls the editor's rendering. Colors of text, margins and
// overlays come from the frame; these styles add the terminal-only parts.
type Style struct {
	// Cursor draws the primary caret of a focused editor.
	Cursor lipgloss.Style
	// Caret draws additional carets.
	Caret lipgloss.Style

	CompletionItem     lipgloss.Style
	CompletionSelected lipgloss.Style
	CompletionPrefix   lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Cursor: lipgloss.NewStyle().Reverse(true),
		Caret:  lipgloss.NewStyle().Reverse(true).Faint(true),

		CompletionItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		CompletionSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("75")),
		CompletionPrefix:   lipgloss.NewStyle().Bold(true),
	}
}

// formatStyle turns a paint format into a lipgloss style.
func formatStyle(f paint.Format) lipgloss.Style {
	st := lipgloss.NewStyle()
	if f.Fg.Valid() {
		st = st.Foreground(lipgloss.Color(f.Fg.Hex()))
	}
	if f.Bg.Valid() {
		st = st.Background(lipgloss.Color(f.Bg.Hex()))
	}
	if f.Bold {
		st = st.Bold(true)
	}
	if f.Italic {
		st = st.Italic(true)
	}
	if f.Underline != paint.UnderlineNone {
		st = st.Underline(true)
	}
	if f.Strike {
		st = st.Strikethrough(true)
	}
	return st
}
