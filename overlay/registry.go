package overlay

import "github.com/iw2rmb/compatedit/paint"

var (
	DefaultIndicatorColor     = paint.MustHex("#f4d03f")
	DefaultHotspotColor       = paint.MustHex("#4fa3ff")
	DefaultHotspotActiveColor = paint.MustHex("#8fd0ff")
	DefaultCaretLineColor     = paint.MustHex("#2f3640")
)

// Registry owns the overlays of one editor view. The zero value is not
// usable; call New.
type Registry struct {
	indicatorOrder  []int
	indicatorRanges map[int][]IndicatorRange
	indicatorStyles map[int]IndicatorStyle
	indicatorColors map[int]paint.Color
	indicatorCur    int
	indicatorValue  int

	hotspots         []HotspotRange
	hotspotColor     paint.Color
	hotspotActive    paint.Color
	hotspotUnderline bool

	styleFormats map[int]paint.Format
	styleSpans   []paint.StyleSpan
	lexerSpans   []paint.StyleSpan
	stylingPos   int

	annotations map[int]string

	brace    BracePair
	hasBrace bool

	caretLineVisible bool
	caretLineColor   paint.Color

	activeHotspot   int
	activeIndicator *indicatorRef
}

type indicatorRef struct {
	id    int
	index int
}

func New() *Registry {
	return &Registry{
		indicatorRanges:  make(map[int][]IndicatorRange),
		indicatorStyles:  make(map[int]IndicatorStyle),
		indicatorColors:  make(map[int]paint.Color),
		hotspotColor:     DefaultHotspotColor,
		hotspotActive:    DefaultHotspotActiveColor,
		hotspotUnderline: true,
		styleFormats:     make(map[int]paint.Format),
		annotations:      make(map[int]string),
		caretLineVisible: true,
		caretLineColor:   DefaultCaretLineColor,
		activeHotspot:    -1,
	}
}

// ClearAll drops every range, annotation and the brace pair. Style formats,
// indicator definitions and colors survive.
func (r *Registry) ClearAll() {
	r.indicatorOrder = nil
	r.indicatorRanges = make(map[int][]IndicatorRange)
	r.hotspots = nil
	r.styleSpans = nil
	r.lexerSpans = nil
	r.stylingPos = 0
	r.annotations = make(map[int]string)
	r.hasBrace = false
	r.ClearHover()
}

func (r *Registry) SetCaretLineVisible(v bool) { r.caretLineVisible = v }

func (r *Registry) CaretLineVisible() bool { return r.caretLineVisible }

// SetCaretLineColor sets the caret-line background; the zero color restores
// the default.
func (r *Registry) SetCaretLineColor(c paint.Color) {
	if !c.Valid() {
		c = DefaultCaretLineColor
	}
	r.caretLineColor = c
}

func (r *Registry) CaretLineColor() paint.Color { return r.caretLineColor }

func clampNonNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// orderedRange returns [min(a,b), max(a,b)] with both ends clamped to >= 0.
func orderedRange(a, b int) (int, int) {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return clampNonNeg(lo), clampNonNeg(hi)
}
