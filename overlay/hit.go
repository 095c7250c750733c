package overlay

// HitKind classifies an interactive hit.
type HitKind uint8

const (
	HitNone HitKind = iota
	HitHotspot
	HitIndicator
)

// Hit is the interactive overlay at an offset.
type Hit struct {
	Kind    HitKind
	Offset  int
	Payload string

	// HotspotIndex is set for HitHotspot.
	HotspotIndex int
	// Indicator and RangeIndex are set for HitIndicator.
	Indicator  int
	RangeIndex int
}

// HitTest resolves off to a hotspot first, then to the first indicator range
// (by indicator insertion order, then range order) containing it.
func (r *Registry) HitTest(off int) Hit {
	if i := r.hotspotIndexAt(off); i >= 0 {
		return Hit{Kind: HitHotspot, Offset: off, Payload: r.hotspots[i].Payload, HotspotIndex: i}
	}
	if ref, ok := r.indicatorAt(off); ok {
		return Hit{
			Kind:       HitIndicator,
			Offset:     off,
			Payload:    r.indicatorRanges[ref.id][ref.index].Payload,
			Indicator:  ref.id,
			RangeIndex: ref.index,
		}
	}
	return Hit{Kind: HitNone, Offset: off}
}

func (r *Registry) indicatorAt(off int) (indicatorRef, bool) {
	for _, id := range r.indicatorOrder {
		for i, seg := range r.indicatorRanges[id] {
			if seg.Contains(off) {
				return indicatorRef{id: id, index: i}, true
			}
		}
	}
	return indicatorRef{}, false
}

// Hover updates the single-slot hover state for off. changed reports whether
// the active hotspot or the active indicator range moved, which is when the
// paint list needs rebuilding.
func (r *Registry) Hover(off int) (hit Hit, changed bool) {
	hs := r.hotspotIndexAt(off)
	if hs != r.activeHotspot {
		r.activeHotspot = hs
		changed = true
	}

	ref, ok := r.indicatorAt(off)
	switch {
	case !ok && r.activeIndicator != nil:
		r.activeIndicator = nil
		changed = true
	case ok && (r.activeIndicator == nil || *r.activeIndicator != ref):
		r.activeIndicator = &ref
		changed = true
	}

	return r.HitTest(off), changed
}

// ClearHover drops the hover state.
func (r *Registry) ClearHover() {
	r.activeHotspot = -1
	r.activeIndicator = nil
}

// ActiveHotspot is the hovered hotspot index, or -1.
func (r *Registry) ActiveHotspot() int { return r.activeHotspot }
