package editor

import (
	"github.com/iw2rmb/compatedit/command"
	"github.com/iw2rmb/compatedit/completion"
	"github.com/iw2rmb/compatedit/internal/logging"
	"github.com/iw2rmb/compatedit/margin"
	"github.com/iw2rmb/compatedit/overlay"
	"github.com/iw2rmb/compatedit/paint"
)

var _ command.Target = (*Engine)(nil)

// Send decodes and executes a legacy message. It reports false for unknown
// names and ill-formed arguments, which are logged at debug level.
func (e *Engine) Send(name string, args ...any) bool {
	c, err := command.Decode(name, args...)
	if err != nil {
		e.logger.Debug("send rejected", logging.FieldCommand, name, logging.FieldArgs, len(args), logging.FieldError, err)
		return false
	}
	return e.Execute(c)
}

// Execute applies a decoded command.
func (e *Engine) Execute(c command.Command) bool {
	ok := command.Execute(e, c)
	if c != nil {
		e.logger.Debug("command", logging.FieldCommand, c.Name(), "ok", ok)
	}
	return ok
}

// Folding and hidden lines.

func (e *Engine) HideLines(start, end int) bool {
	ok := e.folds.HideLines(start, end)
	e.repaint()
	return ok
}

// ShowAllLines reveals every hidden line and reports whether any was hidden.
func (e *Engine) ShowAllLines() bool {
	had := e.folds.ShowAll()
	e.repaint()
	return had
}

func (e *Engine) FoldAll(expand bool) {
	e.folds.FoldAll(expand)
	e.repaint()
}

func (e *Engine) FoldLine(line int, expand bool) {
	if e.folds.Fold(line, expand) {
		e.repaint()
	}
}

func (e *Engine) FoldLevel(level int, expand bool) {
	e.folds.FoldLevel(level, expand)
	e.repaint()
}

// ToggleFold flips the fold headed by line.
func (e *Engine) ToggleFold(line int) bool {
	ok := e.folds.Toggle(line)
	if ok {
		e.repaint()
	}
	return ok
}

// Selection modes.

func (e *Engine) SetColumnMode(v bool) {
	e.carets.SetColumnMode(v)
	e.repaint()
}

func (e *Engine) SetMultipleSelection(v bool) {
	e.carets.SetMultipleSelection(v)
	e.repaint()
}

func (e *Engine) SetAdditionalSelectionTyping(v bool) { e.carets.SetAdditionalSelectionTyping(v) }

func (e *Engine) SetMultiPaste(v bool) { e.carets.SetMultiPaste(v) }

// View flags.

func (e *Engine) SetViewWhitespace(v bool) {
	e.view.Whitespace = v
	e.repaint()
}

func (e *Engine) SetViewEOL(v bool) {
	e.view.EOL = v
	e.repaint()
}

func (e *Engine) SetControlCharSymbols(v bool) {
	e.view.ControlChars = v
	e.repaint()
}

func (e *Engine) SetIndentationGuides(v bool) {
	e.view.IndentGuides = v
	e.repaint()
}

func (e *Engine) SetWrapSymbol(v bool) {
	e.view.WrapSymbol = v
	e.repaint()
}

func (e *Engine) SetCaretWidth(w int) {
	e.caretWidth = max(1, w)
	e.repaint()
}

func (e *Engine) SetCaretLineVisible(v bool) {
	e.overlays.SetCaretLineVisible(v)
	e.repaint()
}

func (e *Engine) SetCaretLineColor(c paint.Color) {
	e.overlays.SetCaretLineColor(c)
	e.repaint()
}

// Margins.

func (e *Engine) SetMarginSensitive(m int, v bool) { e.margins.SetSensitive(m, v) }

func (e *Engine) SetMarginType(m int, t margin.Type) {
	e.margins.SetType(m, t)
	e.repaint()
}

func (e *Engine) SetMarginWidth(m, width int) {
	e.margins.SetWidth(m, width)
	e.repaint()
}

func (e *Engine) SetMarginMask(m, mask int) {
	e.margins.SetMask(m, mask)
	e.repaint()
}

func (e *Engine) SetMarginLeft(width int) {
	e.margins.SetLeft(width)
	e.repaint()
}

func (e *Engine) SetMarginRight(width int) {
	e.margins.SetRight(width)
	e.repaint()
}

// MarginWidth is the total margin strip width for the current document.
func (e *Engine) MarginWidth() int { return e.margins.TotalWidth(e.buf.LineCount()) }

// Indicators.

func (e *Engine) SetIndicatorCurrent(id int) { e.overlays.SetIndicatorCurrent(id) }

func (e *Engine) SetIndicatorValue(v int) { e.overlays.SetIndicatorValue(v) }

func (e *Engine) IndicatorDefine(id int, style overlay.IndicatorStyle) {
	e.overlays.DefineIndicator(id, style)
	e.repaint()
}

func (e *Engine) SetIndicatorColor(id int, c paint.Color) {
	e.overlays.SetIndicatorColor(id, c)
	e.repaint()
}

func (e *Engine) IndicatorFillRange(pos, length int) {
	e.overlays.FillIndicatorRange(pos, length)
	e.repaint()
}

func (e *Engine) IndicatorClearRange(pos, length int) {
	e.overlays.ClearIndicatorRange(pos, length)
	e.repaint()
}

// AddIndicatorRange adds a range with a payload for click and hover
// notifications.
func (e *Engine) AddIndicatorRange(start, end, id int, payload string) {
	e.overlays.AddIndicatorRange(start, end, id, payload, e.overlays.IndicatorValue())
	e.repaint()
}

func (e *Engine) ClearIndicator(id int) {
	e.overlays.ClearIndicator(id)
	e.repaint()
}

func (e *Engine) ClearAllIndicators() {
	for _, id := range e.overlays.IndicatorIDs() {
		e.overlays.ClearIndicator(id)
	}
	e.repaint()
}

// Hotspots.

func (e *Engine) AddHotspotRange(start, end int, payload string) {
	e.overlays.AddHotspotRange(start, end, payload)
	e.repaint()
}

func (e *Engine) ClearHotspots() {
	e.overlays.ClearHotspots()
	e.repaint()
}

func (e *Engine) SetHotspotColor(c paint.Color) {
	e.overlays.SetHotspotColor(c)
	e.repaint()
}

func (e *Engine) SetHotspotActiveColor(c paint.Color) {
	e.overlays.SetHotspotActiveColor(c)
	e.repaint()
}

func (e *Engine) SetHotspotUnderline(v bool) {
	e.overlays.SetHotspotUnderline(v)
	e.repaint()
}

// Styles.

func (e *Engine) StyleSetFore(style int, c paint.Color) {
	e.overlays.StyleSetFore(style, c)
	e.repaint()
}

func (e *Engine) StyleSetBold(style int, v bool) {
	e.overlays.StyleSetBold(style, v)
	e.repaint()
}

func (e *Engine) StyleSetItalic(style int, v bool) {
	e.overlays.StyleSetItalic(style, v)
	e.repaint()
}

func (e *Engine) StyleSetUnderline(style int, v bool) {
	e.overlays.StyleSetUnderline(style, v)
	e.repaint()
}

func (e *Engine) StartStyling(pos int) { e.overlays.StartStyling(pos) }

func (e *Engine) SetStyling(length, style int) {
	e.overlays.SetStyling(length, style)
	e.repaint()
}

func (e *Engine) ClearStyling() {
	e.overlays.ClearStyling()
	e.repaint()
}

// Braces.

func (e *Engine) BraceHighlight(a, b int) {
	e.overlays.HighlightBraceMatch(a, b)
	e.repaint()
}

func (e *Engine) BraceBadLight(pos int) {
	e.overlays.BadBrace(pos)
	e.repaint()
}

// Markers.

// MarkerDefine allocates a marker id drawn with sym.
func (e *Engine) MarkerDefine(sym margin.Symbol) int { return e.margins.DefineMarker(sym) }

func (e *Engine) MarkerSetSymbol(id int, sym margin.Symbol) {
	e.margins.SetMarkerSymbol(id, sym)
	e.repaint()
}

func (e *Engine) MarkerSetColor(id int, c paint.Color) {
	e.margins.SetMarkerColor(id, c)
	e.repaint()
}

func (e *Engine) MarkerAdd(line, id int) {
	e.margins.AddMarker(line, id)
	e.repaint()
}

func (e *Engine) MarkerDelete(line, id int) {
	e.margins.DeleteMarker(line, id)
	e.repaint()
}

func (e *Engine) MarkerDeleteAll(id int) {
	e.margins.DeleteAllMarkers(id)
	e.repaint()
}

// Annotations.

func (e *Engine) AnnotationSetText(line int, text string) {
	e.overlays.SetAnnotation(line, text)
	e.repaint()
}

func (e *Engine) AnnotationClearAll() {
	e.overlays.ClearAnnotations()
	e.repaint()
}

// ClearOverlays drops every indicator range, hotspot, style span,
// annotation and the brace pair.
func (e *Engine) ClearOverlays() {
	e.overlays.ClearAll()
	e.repaint()
}

// Autocompletion.

func (e *Engine) SetAutoCompletionSource(s completion.Source) { e.completion.SetSource(s) }

func (e *Engine) SetAutoCompletionThreshold(n int) { e.completion.SetThreshold(n) }

func (e *Engine) SetAutoCompletionCaseSensitivity(v bool) { e.completion.SetCaseSensitive(v) }

func (e *Engine) SetAutoCompletionUseSingle(v bool) { e.completion.SetUseSingle(v) }

// SetAutoCompletionWords sets the explicit API word list.
func (e *Engine) SetAutoCompletionWords(words []string) { e.completion.SetWords(words) }
