package config

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/compatedit/completion"
	"github.com/iw2rmb/compatedit/editor"
	"github.com/iw2rmb/compatedit/internal/logging"
	"github.com/iw2rmb/compatedit/paint"
)

// Apply validates c and pushes it onto e. Margins, indicators and styles
// not named in c keep their current settings.
func (c *Config) Apply(e *editor.Engine) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}

	if c.LogLevel != "" {
		e.Logger().SetLevel(logging.ParseLevel(c.LogLevel))
	}
	if c.Lexer != "" {
		e.SetLexer(c.Lexer)
	}

	e.SetIndentation(c.Indent.Width, c.Indent.UseTabs)
	e.SetFolding(c.Folding)
	e.SetBraceMatching(c.BraceMatching)

	e.SetViewWhitespace(c.View.Whitespace)
	e.SetViewEOL(c.View.EOL)
	e.SetControlCharSymbols(c.View.ControlChars)
	e.SetIndentationGuides(c.View.IndentGuides)
	e.SetWrapSymbol(c.View.WrapSymbol)
	e.SetCaretWidth(c.View.CaretWidth)
	e.SetCaretLineVisible(c.View.CaretLine)
	if col, ok := parseColor(c.View.CaretLineColor); ok {
		e.SetCaretLineColor(col)
	}

	e.SetMultipleSelection(c.Selection.Multiple)
	e.SetAdditionalSelectionTyping(c.Selection.AdditionalTyping)
	e.SetMultiPaste(c.Selection.MultiPaste)
	e.SetColumnMode(c.Selection.ColumnMode)

	src, _ := completion.ParseSource(c.Completion.Source)
	e.SetAutoCompletionSource(src)
	e.SetAutoCompletionThreshold(c.Completion.Threshold)
	e.SetAutoCompletionCaseSensitivity(c.Completion.CaseSensitive)
	e.SetAutoCompletionUseSingle(c.Completion.UseSingle)
	if c.Completion.Words != nil {
		e.SetAutoCompletionWords(c.Completion.Words)
	}

	if col, ok := parseColor(c.Hotspot.Color); ok {
		e.SetHotspotColor(col)
	}
	if col, ok := parseColor(c.Hotspot.ActiveColor); ok {
		e.SetHotspotActiveColor(col)
	}
	e.SetHotspotUnderline(c.Hotspot.Underline)

	for _, m := range c.Margins {
		if m.Type != "" {
			e.SetMarginType(m.Index, marginTypes[strings.ToLower(m.Type)])
		}
		if m.Width != nil {
			e.SetMarginWidth(m.Index, *m.Width)
		}
		if m.Mask != nil {
			e.SetMarginMask(m.Index, *m.Mask)
		}
		if m.Sensitive != nil {
			e.SetMarginSensitive(m.Index, *m.Sensitive)
		}
	}
	for _, ind := range c.Indicators {
		e.IndicatorDefine(ind.ID, indicatorStyles[strings.ToLower(ind.Style)])
		if col, ok := parseColor(ind.Color); ok {
			e.SetIndicatorColor(ind.ID, col)
		}
	}
	for _, st := range c.Styles {
		if col, ok := parseColor(st.Fore); ok {
			e.StyleSetFore(st.ID, col)
		}
		e.StyleSetBold(st.ID, st.Bold)
		e.StyleSetItalic(st.ID, st.Italic)
		e.StyleSetUnderline(st.ID, st.Underline)
	}
	return nil
}

func parseColor(s string) (paint.Color, bool) {
	if s == "" {
		return paint.Color{}, false
	}
	c, err := paint.Hex(s)
	return c, err == nil
}
