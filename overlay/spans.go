package overlay

import "github.com/iw2rmb/compatedit/paint"

// LineSpan is the rune range of the caret's line, excluding its newline.
type LineSpan struct {
	Start int
	End   int
}

// PaintSpans builds the ordered paint list: caret line, lexer spans,
// explicit style spans, indicators, then hotspots. Spans are clamped to
// [0, docLen] and never merged; later entries win where they overlap.
func (r *Registry) PaintSpans(docLen int, caretLine LineSpan) []paint.Span {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > docLen {
			return docLen
		}
		return v
	}

	var out []paint.Span
	if r.caretLineVisible {
		out = append(out, paint.Span{
			Start:     clamp(caretLine.Start),
			End:       clamp(caretLine.End),
			Layer:     paint.LayerCaretLine,
			Format:    paint.Format{Bg: r.caretLineColor},
			FullWidth: true,
		})
	}

	for _, group := range [][]paint.StyleSpan{r.lexerSpans, r.styleSpans} {
		for _, s := range group {
			f, ok := r.styleFormats[s.Style]
			if !ok {
				continue
			}
			out = append(out, paint.Span{Start: clamp(s.Start), End: clamp(s.End), Layer: paint.LayerStyle, Format: f})
		}
	}

	for _, id := range r.indicatorOrder {
		color := r.IndicatorColor(id)
		style := r.indicatorStyles[id]
		for i, seg := range r.indicatorRanges[id] {
			c := color
			if a := r.activeIndicator; a != nil && a.id == id && a.index == i {
				c = color.Lighter(130)
			}
			f, ok := indicatorFormat(style, c)
			if !ok {
				continue
			}
			out = append(out, paint.Span{Start: clamp(seg.Start), End: clamp(seg.End), Layer: paint.LayerIndicator, Format: f})
		}
	}

	for i, h := range r.hotspots {
		f := paint.Format{Fg: r.hotspotColor}
		if i == r.activeHotspot {
			f.Fg = r.hotspotActive
		}
		if r.hotspotUnderline {
			f.Underline = paint.UnderlineSingle
			f.UnderlineColor = f.Fg
		}
		out = append(out, paint.Span{Start: clamp(h.Start), End: clamp(h.End), Layer: paint.LayerHotspot, Format: f})
	}
	return out
}
