package overlay

import (
	"strconv"

	"github.com/iw2rmb/compatedit/paint"
)

// IndicatorStyle selects the paint rule of an indicator id. The numbering
// matches the legacy protocol.
type IndicatorStyle int

const (
	IndicatorPlain IndicatorStyle = iota
	IndicatorSquiggle
	IndicatorTT
	IndicatorDiagonal
	IndicatorStrike
	IndicatorHidden
	IndicatorBox
	IndicatorRoundBox
)

// IndicatorRange is a half-open rune range tagged by an indicator id.
type IndicatorRange struct {
	Start   int
	End     int
	Payload string
	Value   int
}

func (ir IndicatorRange) Contains(off int) bool {
	return off >= ir.Start && off < ir.End
}

// DefineIndicator sets the style of an indicator id. The first definition
// also assigns the default color. Negative ids clamp to 0.
func (r *Registry) DefineIndicator(id int, style IndicatorStyle) int {
	id = clampNonNeg(id)
	r.indicatorStyles[id] = style
	if _, ok := r.indicatorColors[id]; !ok {
		r.indicatorColors[id] = DefaultIndicatorColor
	}
	return id
}

func (r *Registry) SetIndicatorColor(id int, c paint.Color) {
	r.indicatorColors[clampNonNeg(id)] = c
}

// IndicatorStyleOf returns the style of id; undefined ids paint as plain.
func (r *Registry) IndicatorStyleOf(id int) IndicatorStyle {
	return r.indicatorStyles[id]
}

func (r *Registry) IndicatorColor(id int) paint.Color {
	if c, ok := r.indicatorColors[id]; ok && c.Valid() {
		return c
	}
	return DefaultIndicatorColor
}

func (r *Registry) SetIndicatorCurrent(id int) { r.indicatorCur = clampNonNeg(id) }

func (r *Registry) IndicatorCurrent() int { return r.indicatorCur }

func (r *Registry) SetIndicatorValue(v int) { r.indicatorValue = v }

func (r *Registry) IndicatorValue() int { return r.indicatorValue }

// FillIndicatorRange tags [pos, pos+length) with the current indicator and
// value; the payload is the decimal value.
func (r *Registry) FillIndicatorRange(pos, length int) {
	pos = clampNonNeg(pos)
	end := pos + clampNonNeg(length)
	r.appendIndicator(r.indicatorCur, IndicatorRange{
		Start:   pos,
		End:     end,
		Payload: strconv.Itoa(r.indicatorValue),
		Value:   r.indicatorValue,
	})
}

// AddIndicatorRange tags [start, end) with indicator id. Reversed bounds are
// swapped; empty ranges are ignored.
func (r *Registry) AddIndicatorRange(start, end, id int, payload string, value int) {
	lo, hi := orderedRange(start, end)
	if hi <= lo {
		return
	}
	r.appendIndicator(clampNonNeg(id), IndicatorRange{Start: lo, End: hi, Payload: payload, Value: value})
}

func (r *Registry) appendIndicator(id int, ir IndicatorRange) {
	if _, ok := r.indicatorRanges[id]; !ok {
		r.indicatorOrder = append(r.indicatorOrder, id)
	}
	r.indicatorRanges[id] = append(r.indicatorRanges[id], ir)
}

// ClearIndicatorRange removes [pos, pos+length) from every indicator id.
// Ranges straddling the window keep their parts outside it.
func (r *Registry) ClearIndicatorRange(pos, length int) {
	pos = clampNonNeg(pos)
	end := pos + clampNonNeg(length)
	for _, id := range r.indicatorOrder {
		src := r.indicatorRanges[id]
		kept := make([]IndicatorRange, 0, len(src))
		for _, seg := range src {
			if seg.End <= pos || seg.Start >= end {
				kept = append(kept, seg)
				continue
			}
			if seg.Start < pos {
				left := seg
				left.End = pos
				kept = append(kept, left)
			}
			if seg.End > end {
				right := seg
				right.Start = end
				kept = append(kept, right)
			}
		}
		r.indicatorRanges[id] = kept
	}
	if a := r.activeIndicator; a != nil && a.index >= len(r.indicatorRanges[a.id]) {
		r.activeIndicator = nil
	}
}

// ClearIndicator drops every range of id.
func (r *Registry) ClearIndicator(id int) {
	if _, ok := r.indicatorRanges[id]; !ok {
		return
	}
	r.indicatorRanges[id] = nil
	if a := r.activeIndicator; a != nil && a.id == id {
		r.activeIndicator = nil
	}
}

// IndicatorIDs lists indicator ids in the order their first range was added.
func (r *Registry) IndicatorIDs() []int {
	return append([]int(nil), r.indicatorOrder...)
}

func (r *Registry) IndicatorRanges(id int) []IndicatorRange {
	return append([]IndicatorRange(nil), r.indicatorRanges[id]...)
}

// indicatorFormat is the paint rule of style in color c.
func indicatorFormat(style IndicatorStyle, c paint.Color) (paint.Format, bool) {
	switch style {
	case IndicatorHidden:
		return paint.Format{}, false
	case IndicatorPlain:
		return paint.Format{Underline: paint.UnderlineSingle, UnderlineColor: c}, true
	case IndicatorSquiggle:
		return paint.Format{Underline: paint.UnderlineWave, UnderlineColor: c}, true
	case IndicatorTT:
		return paint.Format{Underline: paint.UnderlineDotted, UnderlineColor: c}, true
	case IndicatorDiagonal:
		return paint.Format{Underline: paint.UnderlineDashed, UnderlineColor: c}, true
	case IndicatorStrike:
		return paint.Format{Strike: true, Fg: c}, true
	}
	f := paint.Format{Bg: c, BgAlpha: 70}
	if style == IndicatorBox {
		f.BgAlpha = 90
	}
	if style == IndicatorRoundBox {
		f.Underline = paint.UnderlineSingle
		f.UnderlineColor = c.Darker(120)
	}
	return f, true
}
