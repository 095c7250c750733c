package overlay

import "github.com/iw2rmb/compatedit/paint"

// HotspotRange is a clickable half-open rune range.
type HotspotRange struct {
	Start   int
	End     int
	Payload string
}

func (h HotspotRange) Contains(off int) bool {
	return off >= h.Start && off < h.End
}

// AddHotspotRange registers [start, end). Reversed bounds are swapped;
// empty ranges are ignored.
func (r *Registry) AddHotspotRange(start, end int, payload string) {
	lo, hi := orderedRange(start, end)
	if hi <= lo {
		return
	}
	r.hotspots = append(r.hotspots, HotspotRange{Start: lo, End: hi, Payload: payload})
}

func (r *Registry) ClearHotspots() {
	r.hotspots = nil
	r.activeHotspot = -1
}

func (r *Registry) Hotspots() []HotspotRange {
	return append([]HotspotRange(nil), r.hotspots...)
}

// SetHotspotColor sets the inactive hotspot foreground.
func (r *Registry) SetHotspotColor(c paint.Color) {
	if c.Valid() {
		r.hotspotColor = c
	}
}

// SetHotspotActiveColor sets the foreground of the hovered hotspot.
func (r *Registry) SetHotspotActiveColor(c paint.Color) {
	if c.Valid() {
		r.hotspotActive = c
	}
}

func (r *Registry) SetHotspotUnderline(v bool) { r.hotspotUnderline = v }

func (r *Registry) HotspotStyle() (color, active paint.Color, underline bool) {
	return r.hotspotColor, r.hotspotActive, r.hotspotUnderline
}

func (r *Registry) hotspotIndexAt(off int) int {
	for i, h := range r.hotspots {
		if h.Contains(off) {
			return i
		}
	}
	return -1
}
