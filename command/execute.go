package command

import (
	"github.com/iw2rmb/compatedit/margin"
	"github.com/iw2rmb/compatedit/overlay"
	"github.com/iw2rmb/compatedit/paint"
)

// hotspotActiveLighten is the lightening applied to derive the active
// hotspot color.
const hotspotActiveLighten = 130

// Target is the editor surface commands act on.
type Target interface {
	HideLines(start, end int) bool
	ShowAllLines() bool
	FoldAll(expand bool)
	FoldLine(line int, expand bool)
	FoldLevel(level int, expand bool)

	SetColumnMode(bool)
	SetMultipleSelection(bool)
	SetAdditionalSelectionTyping(bool)
	SetMultiPaste(bool)

	SetViewWhitespace(bool)
	SetViewEOL(bool)
	SetControlCharSymbols(bool)
	SetIndentationGuides(bool)
	SetWrapSymbol(bool)
	SetCaretWidth(int)
	SetCaretLineVisible(bool)

	SetMarginSensitive(m int, v bool)
	SetMarginType(m int, t margin.Type)
	SetMarginWidth(m, width int)
	SetMarginMask(m, mask int)
	SetMarginLeft(width int)
	SetMarginRight(width int)

	SetIndicatorCurrent(id int)
	SetIndicatorValue(v int)
	IndicatorDefine(id int, style overlay.IndicatorStyle)
	SetIndicatorColor(id int, c paint.Color)
	IndicatorFillRange(pos, length int)
	IndicatorClearRange(pos, length int)
	ClearAllIndicators()

	SetHotspotColor(c paint.Color)
	SetHotspotActiveColor(c paint.Color)
	SetHotspotUnderline(bool)

	StyleSetFore(style int, c paint.Color)
	StyleSetBold(style int, v bool)
	StyleSetItalic(style int, v bool)
	StyleSetUnderline(style int, v bool)
	StartStyling(pos int)
	SetStyling(length, style int)

	BraceHighlight(a, b int)
	BraceBadLight(pos int)

	MarkerSetSymbol(id int, sym margin.Symbol)
	MarkerAdd(line, id int)
	MarkerDelete(line, id int)
	MarkerDeleteAll(id int)

	AnnotationSetText(line int, text string)
	AnnotationClearAll()
}

// Execute applies c to t. The result is the command's own report: false
// only for show-lines when nothing was hidden and for nil commands.
func Execute(t Target, c Command) bool {
	switch c := c.(type) {
	case HideLines:
		return t.HideLines(c.Start, c.End)
	case ShowLines:
		return t.ShowAllLines()
	case FoldAll:
		t.FoldAll(c.Expand)
	case FoldLine:
		t.FoldLine(c.Line, c.Expand)
	case FoldLevel:
		t.FoldLevel(c.Level, c.Expand)

	case SetSelectionMode:
		t.SetColumnMode(c.Rectangular())
	case SetMultipleSelection:
		t.SetMultipleSelection(c.Enabled)
	case SetAdditionalSelectionTyping:
		t.SetAdditionalSelectionTyping(c.Enabled)
	case SetMultiPaste:
		t.SetMultiPaste(c.Enabled)

	case SetViewWS:
		t.SetViewWhitespace(c.Visible)
	case SetViewEOL:
		t.SetViewEOL(c.Visible)
	case SetControlCharSymbol:
		t.SetControlCharSymbols(c.Visible)
	case SetIndentationGuides:
		t.SetIndentationGuides(c.Visible)
	case SetWrapVisualFlags:
		t.SetWrapSymbol(c.Visible)
	case SetCaretWidth:
		t.SetCaretWidth(c.Width)
	case SetCaretLineVisible:
		t.SetCaretLineVisible(c.Visible)

	case SetMarginSensitive:
		t.SetMarginSensitive(c.Margin, c.Sensitive)
	case SetMarginType:
		t.SetMarginType(c.Margin, c.Type)
	case SetMarginWidth:
		t.SetMarginWidth(c.Margin, c.Width)
	case SetMarginMask:
		t.SetMarginMask(c.Margin, c.Mask)
	case SetMarginLeft:
		t.SetMarginLeft(c.Width)
	case SetMarginRight:
		t.SetMarginRight(c.Width)

	case SetIndicatorCurrent:
		t.SetIndicatorCurrent(c.Indicator)
	case SetIndicatorValue:
		t.SetIndicatorValue(c.Value)
	case IndicSetStyle:
		t.IndicatorDefine(c.Indicator, c.Style)
	case IndicSetFore:
		t.SetIndicatorColor(c.Indicator, c.Color)
	case IndicatorFillRange:
		t.IndicatorFillRange(c.Pos, c.Length)
	case IndicatorClearRange:
		t.IndicatorClearRange(c.Pos, c.Length)
	case ClearAllIndicators:
		t.ClearAllIndicators()

	case SetHotspotActiveFore:
		t.SetHotspotColor(c.Color)
		t.SetHotspotActiveColor(c.Color.Lighter(hotspotActiveLighten))
	case SetHotspotActiveUnderline:
		t.SetHotspotUnderline(c.Underline)

	case StyleSetFore:
		t.StyleSetFore(c.Style, c.Color)
	case StyleSetBold:
		t.StyleSetBold(c.Style, c.Bold)
	case StyleSetItalic:
		t.StyleSetItalic(c.Style, c.Italic)
	case StyleSetUnderline:
		t.StyleSetUnderline(c.Style, c.Underline)
	case StartStyling:
		t.StartStyling(c.Pos)
	case SetStyling:
		t.SetStyling(c.Length, c.Style)

	case BraceHighlight:
		t.BraceHighlight(c.A, c.B)
	case BraceBadLight:
		t.BraceBadLight(c.Pos)

	case MarkerDefine:
		t.MarkerSetSymbol(c.Marker, c.Symbol)
	case MarkerAdd:
		t.MarkerAdd(c.Line, c.Marker)
	case MarkerDelete:
		t.MarkerDelete(c.Line, c.Marker)
	case MarkerDeleteAll:
		t.MarkerDeleteAll(c.Marker)

	case AnnotationSetText:
		t.AnnotationSetText(c.Line, c.Text)
	case AnnotationClearAll:
		t.AnnotationClearAll()

	default:
		return false
	}
	return true
}

// Send decodes and executes a protocol call. Unknown names, short argument
// lists and uncoercible arguments report false.
func Send(t Target, name string, argv ...any) bool {
	c, err := Decode(name, argv...)
	if err != nil {
		return false
	}
	return Execute(t, c)
}
