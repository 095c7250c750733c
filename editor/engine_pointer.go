package editor

import (
	"github.com/iw2rmb/compatedit/buffer"
	"github.com/iw2rmb/compatedit/internal/logging"
	"github.com/iw2rmb/compatedit/margin"
	"github.com/iw2rmb/compatedit/overlay"
)

// MarginClick routes a press at margin-local x on document line. Fold
// clicks toggle the region; sensitive margins emit OnMarginClick; other
// clicks put the caret at the start of the line.
func (e *Engine) MarginClick(x, line int) margin.ClickResult {
	res := e.margins.Click(x, line, e.buf.LineCount(), e.folds)
	if res.Toggled {
		e.repaint()
	}
	if res.Notify {
		e.logger.Debug("margin click", logging.FieldMargin, res.Margin, logging.FieldLine, line)
		if e.hooks.OnMarginClick != nil {
			e.hooks.OnMarginClick(res.Margin, line)
		}
	}
	if res.MoveCaret {
		e.carets.ClearAll()
		e.buf.ClearSelection()
		e.buf.SetCursor(buffer.Pos{Row: line})
		e.Sync()
	}
	return res
}

// HoverAt updates the hover state for the pointer over offset. Hover hooks
// fire on every call that lands on a hotspot or indicator; the repaint only
// when the hovered item changed.
func (e *Engine) HoverAt(offset int) overlay.Hit {
	hit, changed := e.overlays.Hover(offset)
	if changed {
		e.repaint()
	}
	e.emitHit(hit, e.hooks.OnHotspotHover, e.hooks.OnIndicatorHover)
	return hit
}

// LeaveHover drops the hover state when the pointer leaves the text.
func (e *Engine) LeaveHover() {
	if _, changed := e.overlays.Hover(-1); changed {
		e.repaint()
	}
}

// ClickAt fires the click hook of the hotspot or indicator under offset.
func (e *Engine) ClickAt(offset int) overlay.Hit {
	hit := e.overlays.HitTest(offset)
	e.emitHit(hit, e.hooks.OnHotspotClick, e.hooks.OnIndicatorClick)
	return hit
}

func (e *Engine) emitHit(hit overlay.Hit, hotspot func(int, string), indicator func(int, int, string)) {
	switch hit.Kind {
	case overlay.HitHotspot:
		if hotspot != nil {
			hotspot(hit.Offset, hit.Payload)
		}
	case overlay.HitIndicator:
		if indicator != nil {
			indicator(hit.Indicator, hit.Offset, hit.Payload)
		}
	}
}

// BeginColumnDrag starts a rectangular selection at (line, col); col may lie
// past the end of the line. It reports false outside column mode.
func (e *Engine) BeginColumnDrag(line, col int) bool {
	if !e.carets.BeginColumnDrag(line, col) {
		return false
	}
	e.Sync()
	e.repaint()
	return true
}

func (e *Engine) UpdateColumnDrag(line, col int) bool {
	if !e.carets.UpdateColumnDrag(line, col) {
		return false
	}
	e.Sync()
	e.repaint()
	return true
}

func (e *Engine) EndColumnDrag() bool { return e.carets.EndColumnDrag() }

func (e *Engine) ColumnDragging() bool { return e.carets.Dragging() }
