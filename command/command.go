package command

import (
	"github.com/iw2rmb/compatedit/margin"
	"github.com/iw2rmb/compatedit/overlay"
	"github.com/iw2rmb/compatedit/paint"
)

// Command is a decoded command. The set is closed.
type Command interface {
	// Name is the canonical kebab-case name.
	Name() string
	command()
}

// SelRectangle is the selection mode that turns on column editing.
const SelRectangle = 1

type (
	HideLines struct{ Start, End int }
	// ShowLines shows every hidden line regardless of its range.
	ShowLines struct{ Start, End int }
	FoldAll   struct{ Expand bool }
	FoldLine  struct {
		Line   int
		Expand bool
	}
	// FoldLevel takes a 1-based level.
	FoldLevel struct {
		Level  int
		Expand bool
	}

	SetSelectionMode             struct{ Mode int }
	SetMultipleSelection         struct{ Enabled bool }
	SetAdditionalSelectionTyping struct{ Enabled bool }
	SetMultiPaste                struct{ Enabled bool }

	SetViewWS            struct{ Visible bool }
	SetViewEOL           struct{ Visible bool }
	SetControlCharSymbol struct{ Visible bool }
	SetIndentationGuides struct{ Visible bool }
	SetWrapVisualFlags   struct{ Visible bool }
	SetCaretWidth        struct{ Width int }
	SetCaretLineVisible  struct{ Visible bool }
	SetMarginLeft        struct{ Width int }
	SetMarginRight       struct{ Width int }
	SetMarginSensitive   struct {
		Margin    int
		Sensitive bool
	}
	SetMarginType struct {
		Margin int
		Type   margin.Type
	}
	SetMarginWidth struct{ Margin, Width int }
	SetMarginMask  struct{ Margin, Mask int }

	SetIndicatorCurrent struct{ Indicator int }
	SetIndicatorValue   struct{ Value int }
	IndicSetStyle       struct {
		Indicator int
		Style     overlay.IndicatorStyle
	}
	IndicSetFore struct {
		Indicator int
		Color     paint.Color
	}
	IndicatorFillRange  struct{ Pos, Length int }
	IndicatorClearRange struct{ Pos, Length int }
	ClearAllIndicators  struct{}

	// SetHotspotActiveFore sets the hotspot color; the active color is
	// derived by lightening it.
	SetHotspotActiveFore      struct{ Color paint.Color }
	SetHotspotActiveUnderline struct{ Underline bool }

	StyleSetFore struct {
		Style int
		Color paint.Color
	}
	StyleSetBold struct {
		Style int
		Bold  bool
	}
	StyleSetItalic struct {
		Style  int
		Italic bool
	}
	StyleSetUnderline struct {
		Style     int
		Underline bool
	}
	StartStyling struct{ Pos int }
	SetStyling   struct{ Length, Style int }

	BraceHighlight struct{ A, B int }
	BraceBadLight  struct{ Pos int }

	MarkerDefine struct {
		Marker int
		Symbol margin.Symbol
	}
	MarkerAdd       struct{ Line, Marker int }
	MarkerDelete    struct{ Line, Marker int }
	MarkerDeleteAll struct{ Marker int }

	AnnotationSetText struct {
		Line int
		Text string
	}
	AnnotationClearAll struct{}
)

// Rectangular reports whether the mode selects column editing.
func (c SetSelectionMode) Rectangular() bool { return c.Mode == SelRectangle }

func (HideLines) Name() string                    { return "hide-lines" }
func (ShowLines) Name() string                    { return "show-lines" }
func (FoldAll) Name() string                      { return "fold-all" }
func (FoldLine) Name() string                     { return "fold-line" }
func (FoldLevel) Name() string                    { return "fold-level" }
func (SetSelectionMode) Name() string             { return "set-selection-mode" }
func (SetMultipleSelection) Name() string         { return "set-multiple-selection" }
func (SetAdditionalSelectionTyping) Name() string { return "set-additional-selection-typing" }
func (SetMultiPaste) Name() string                { return "set-multi-paste" }
func (SetViewWS) Name() string                    { return "set-view-ws" }
func (SetViewEOL) Name() string                   { return "set-view-eol" }
func (SetControlCharSymbol) Name() string         { return "set-control-char-symbol" }
func (SetIndentationGuides) Name() string         { return "set-indentation-guides" }
func (SetWrapVisualFlags) Name() string           { return "set-wrap-visual-flags" }
func (SetCaretWidth) Name() string                { return "set-caret-width" }
func (SetCaretLineVisible) Name() string          { return "set-caret-line-visible" }
func (SetMarginLeft) Name() string                { return "set-margin-left" }
func (SetMarginRight) Name() string               { return "set-margin-right" }
func (SetMarginSensitive) Name() string           { return "set-margin-sensitive-n" }
func (SetMarginType) Name() string                { return "set-margin-type-n" }
func (SetMarginWidth) Name() string               { return "set-margin-width-n" }
func (SetMarginMask) Name() string                { return "set-margin-mask-n" }
func (SetIndicatorCurrent) Name() string          { return "set-indicator-current" }
func (SetIndicatorValue) Name() string            { return "set-indicator-value" }
func (IndicSetStyle) Name() string                { return "indic-set-style" }
func (IndicSetFore) Name() string                 { return "indic-set-fore" }
func (IndicatorFillRange) Name() string           { return "indicator-fill-range" }
func (IndicatorClearRange) Name() string          { return "indicator-clear-range" }
func (ClearAllIndicators) Name() string           { return "clear-all-indicators" }
func (SetHotspotActiveFore) Name() string         { return "set-hotspot-active-fore" }
func (SetHotspotActiveUnderline) Name() string    { return "set-hotspot-active-underline" }
func (StyleSetFore) Name() string                 { return "style-set-fore" }
func (StyleSetBold) Name() string                 { return "style-set-bold" }
func (StyleSetItalic) Name() string               { return "style-set-italic" }
func (StyleSetUnderline) Name() string            { return "style-set-underline" }
func (StartStyling) Name() string                 { return "start-styling" }
func (SetStyling) Name() string                   { return "set-styling" }
func (BraceHighlight) Name() string               { return "brace-highlight" }
func (BraceBadLight) Name() string                { return "brace-bad-light" }
func (MarkerDefine) Name() string                 { return "marker-define" }
func (MarkerAdd) Name() string                    { return "marker-add" }
func (MarkerDelete) Name() string                 { return "marker-delete" }
func (MarkerDeleteAll) Name() string              { return "marker-delete-all" }
func (AnnotationSetText) Name() string            { return "annotation-set-text" }
func (AnnotationClearAll) Name() string           { return "annotation-clear-all" }

func (HideLines) command()                    {}
func (ShowLines) command()                    {}
func (FoldAll) command()                      {}
func (FoldLine) command()                     {}
func (FoldLevel) command()                    {}
func (SetSelectionMode) command()             {}
func (SetMultipleSelection) command()         {}
func (SetAdditionalSelectionTyping) command() {}
func (SetMultiPaste) command()                {}
func (SetViewWS) command()                    {}
func (SetViewEOL) command()                   {}
func (SetControlCharSymbol) command()         {}
func (SetIndentationGuides) command()         {}
func (SetWrapVisualFlags) command()           {}
func (SetCaretWidth) command()                {}
func (SetCaretLineVisible) command()          {}
func (SetMarginLeft) command()                {}
func (SetMarginRight) command()               {}
func (SetMarginSensitive) command()           {}
func (SetMarginType) command()                {}
func (SetMarginWidth) command()               {}
func (SetMarginMask) command()                {}
func (SetIndicatorCurrent) command()          {}
func (SetIndicatorValue) command()            {}
func (IndicSetStyle) command()                {}
func (IndicSetFore) command()                 {}
func (IndicatorFillRange) command()           {}
func (IndicatorClearRange) command()          {}
func (ClearAllIndicators) command()           {}
func (SetHotspotActiveFore) command()         {}
func (SetHotspotActiveUnderline) command()    {}
func (StyleSetFore) command()                 {}
func (StyleSetBold) command()                 {}
func (StyleSetItalic) command()               {}
func (StyleSetUnderline) command()            {}
func (StartStyling) command()                 {}
func (SetStyling) command()                   {}
func (BraceHighlight) command()               {}
func (BraceBadLight) command()                {}
func (MarkerDefine) command()                 {}
func (MarkerAdd) command()                    {}
func (MarkerDelete) command()                 {}
func (MarkerDeleteAll) command()              {}
func (AnnotationSetText) command()            {}
func (AnnotationClearAll) command()           {}
