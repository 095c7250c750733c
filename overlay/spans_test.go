package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/compatedit/overlay"
	"github.com/iw2rmb/compatedit/paint"
)

func layers(spans []paint.Span) []paint.Layer {
	out := make([]paint.Layer, 0, len(spans))
	for _, s := range spans {
		out = append(out, s.Layer)
	}
	return out
}

func TestPaintSpans_Order(t *testing.T) {
	r := overlay.New()
	r.EnsureDefaultStyles()
	r.AddHotspotRange(0, 2, "h")
	r.AddIndicatorRange(1, 3, 0, "", 0)
	r.StartStyling(4)
	r.SetStyling(2, overlay.StyleString)
	r.SetLexerSpans([]paint.StyleSpan{{Start: 0, End: 3, Style: overlay.StyleKeyword}})

	spans := r.PaintSpans(20, overlay.LineSpan{Start: 0, End: 10})

	assert.Equal(t, []paint.Layer{
		paint.LayerCaretLine,
		paint.LayerStyle, // lexer
		paint.LayerStyle, // explicit
		paint.LayerIndicator,
		paint.LayerHotspot,
	}, layers(spans))
	assert.True(t, spans[0].FullWidth)
	assert.Equal(t, 4, spans[2].Start)
	assert.Equal(t, 6, spans[2].End)
}

func TestPaintSpans_ClampsAndSkipsUnknownStyles(t *testing.T) {
	r := overlay.New()
	r.SetCaretLineVisible(false)
	r.StartStyling(2)
	r.SetStyling(100, 77) // no format for 77
	r.StyleSetFore(6, paint.MustHex("#00ff00"))
	r.StartStyling(3)
	r.SetStyling(100, 6)

	spans := r.PaintSpans(10, overlay.LineSpan{})

	require.Len(t, spans, 1)
	assert.Equal(t, 3, spans[0].Start)
	assert.Equal(t, 10, spans[0].End)
}

func TestPaintSpans_IndicatorRules(t *testing.T) {
	cases := []struct {
		style overlay.IndicatorStyle
		check func(t *testing.T, f paint.Format)
	}{
		{overlay.IndicatorPlain, func(t *testing.T, f paint.Format) { assert.Equal(t, paint.UnderlineSingle, f.Underline) }},
		{overlay.IndicatorSquiggle, func(t *testing.T, f paint.Format) { assert.Equal(t, paint.UnderlineWave, f.Underline) }},
		{overlay.IndicatorTT, func(t *testing.T, f paint.Format) { assert.Equal(t, paint.UnderlineDotted, f.Underline) }},
		{overlay.IndicatorDiagonal, func(t *testing.T, f paint.Format) { assert.Equal(t, paint.UnderlineDashed, f.Underline) }},
		{overlay.IndicatorStrike, func(t *testing.T, f paint.Format) {
			assert.True(t, f.Strike)
			assert.True(t, f.Fg.Valid())
		}},
		{overlay.IndicatorBox, func(t *testing.T, f paint.Format) { assert.Equal(t, uint8(90), f.BgAlpha) }},
		{overlay.IndicatorRoundBox, func(t *testing.T, f paint.Format) {
			assert.Equal(t, uint8(70), f.BgAlpha)
			assert.Equal(t, paint.UnderlineSingle, f.Underline)
		}},
	}
	for _, tc := range cases {
		r := overlay.New()
		r.SetCaretLineVisible(false)
		r.DefineIndicator(1, tc.style)
		r.AddIndicatorRange(0, 4, 1, "", 0)

		spans := r.PaintSpans(10, overlay.LineSpan{})
		require.Len(t, spans, 1)
		tc.check(t, spans[0].Format)
	}
}

func TestPaintSpans_HiddenIndicatorNotPainted(t *testing.T) {
	r := overlay.New()
	r.SetCaretLineVisible(false)
	r.DefineIndicator(1, overlay.IndicatorHidden)
	r.AddIndicatorRange(0, 4, 1, "", 0)

	assert.Empty(t, r.PaintSpans(10, overlay.LineSpan{}))
	assert.Equal(t, overlay.HitIndicator, r.HitTest(1).Kind, "hidden indicators still hit-test")
}

func TestPaintSpans_ActiveStatesLighten(t *testing.T) {
	r := overlay.New()
	r.SetCaretLineVisible(false)
	r.AddHotspotRange(0, 2, "h")
	r.AddIndicatorRange(4, 6, 1, "", 0)

	before := r.PaintSpans(10, overlay.LineSpan{})
	r.Hover(1)
	after := r.PaintSpans(10, overlay.LineSpan{})
	assert.Equal(t, overlay.DefaultHotspotColor, before[1].Format.Fg)
	assert.Equal(t, overlay.DefaultHotspotActiveColor, after[1].Format.Fg)

	r.Hover(5)
	lit := r.PaintSpans(10, overlay.LineSpan{})
	assert.NotEqual(t, before[0].Format.UnderlineColor, lit[0].Format.UnderlineColor)
}
