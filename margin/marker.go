package margin

import (
	"sort"

	"github.com/iw2rmb/compatedit/paint"
)

// Symbol is a marker glyph shape.
type Symbol int

const (
	SymbolCircle Symbol = iota
	SymbolRoundRect
	SymbolRightArrow
	SymbolSmallRect
	SymbolShortArrow
	SymbolEmpty
	SymbolArrow
	SymbolPlus
	SymbolMinus
)

// Rune is the cell glyph for s.
func (s Symbol) Rune() rune {
	switch s {
	case SymbolRoundRect:
		return '■'
	case SymbolRightArrow:
		return '▶'
	case SymbolSmallRect:
		return '▪'
	case SymbolShortArrow:
		return '▸'
	case SymbolEmpty:
		return ' '
	case SymbolArrow:
		return '→'
	case SymbolPlus:
		return '+'
	case SymbolMinus:
		return '-'
	default:
		return '●'
	}
}

// DefaultMarkerColor is used for markers without an explicit color.
var DefaultMarkerColor = paint.MustHex("#ffcc00")

// maxMaskBit bounds marker ids a mask can select.
const maxMaskBit = 63

type marker struct {
	symbol Symbol
	color  paint.Color
	lines  map[int]struct{}
}

// markerTable keeps markers in first-touch order, which is also priority
// order when several markers share a line.
type markerTable struct {
	next  int
	order []int
	byID  map[int]*marker
}

func newMarkerTable() markerTable {
	return markerTable{next: 1, byID: make(map[int]*marker)}
}

func (t *markerTable) ensure(id int) *marker {
	if m, ok := t.byID[id]; ok {
		return m
	}
	m := &marker{lines: make(map[int]struct{})}
	t.byID[id] = m
	t.order = append(t.order, id)
	if id >= t.next {
		t.next = id + 1
	}
	return m
}

// DefineMarker allocates a marker id with the given symbol. Ids start at 1.
func (r *Renderer) DefineMarker(sym Symbol) int {
	id := r.markers.next
	m := r.markers.ensure(id)
	m.symbol = sym
	return id
}

// SetMarkerSymbol changes the symbol of id, defining it when unknown.
func (r *Renderer) SetMarkerSymbol(id int, sym Symbol) {
	r.markers.ensure(id).symbol = sym
}

func (r *Renderer) SetMarkerColor(id int, c paint.Color) {
	r.markers.ensure(id).color = c
}

// MarkerStyle returns the symbol and color drawn for id.
func (r *Renderer) MarkerStyle(id int) (Symbol, paint.Color) {
	m, ok := r.markers.byID[id]
	if !ok {
		return SymbolCircle, DefaultMarkerColor
	}
	c := m.color
	if !c.Valid() {
		c = DefaultMarkerColor
	}
	return m.symbol, c
}

// AddMarker places id on line. Negative lines clamp to 0.
func (r *Renderer) AddMarker(line, id int) {
	r.markers.ensure(id).lines[max(0, line)] = struct{}{}
}

func (r *Renderer) DeleteMarker(line, id int) {
	delete(r.markers.ensure(id).lines, max(0, line))
}

// DeleteAllMarkers removes id from every line.
func (r *Renderer) DeleteAllMarkers(id int) {
	r.markers.ensure(id).lines = make(map[int]struct{})
}

// MarkersOn returns the ids present on line in priority order.
func (r *Renderer) MarkersOn(line int) []int {
	var out []int
	for _, id := range r.markers.order {
		if _, ok := r.markers.byID[id].lines[line]; ok {
			out = append(out, id)
		}
	}
	return out
}

// MarkerLines returns the lines carrying id, ascending.
func (r *Renderer) MarkerLines(id int) []int {
	m, ok := r.markers.byID[id]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(m.lines))
	for line := range m.lines {
		out = append(out, line)
	}
	sort.Ints(out)
	return out
}

// FirstMarker returns the first marker on line that margin's mask accepts.
// A mask of MaskAll accepts any id; otherwise bit id must be set and only
// ids below 63 are selectable.
func (r *Renderer) FirstMarker(line, margin int) (int, bool) {
	mask := r.Mask(margin)
	for _, id := range r.MarkersOn(line) {
		if mask == MaskAll {
			return id, true
		}
		if id >= 0 && id < maxMaskBit && mask&(1<<id) != 0 {
			return id, true
		}
	}
	return 0, false
}
