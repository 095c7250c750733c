package caret

import (
	"github.com/iw2rmb/compatedit/buffer"
	"github.com/iw2rmb/compatedit/internal/logging"
)

// BeginColumnDrag anchors a rectangular selection at (line, col). It
// reports false outside column mode.
func (e *Engine) BeginColumnDrag(line, col int) bool {
	if !e.opt.ColumnMode {
		return false
	}
	e.anchor = buffer.Pos{Row: line, Col: max(0, col)}
	e.dragging = true
	e.applyDrag(line, col)
	return true
}

// UpdateColumnDrag stretches the selection from the anchor to (line, col).
func (e *Engine) UpdateColumnDrag(line, col int) bool {
	if !e.dragging {
		return false
	}
	e.applyDrag(line, col)
	return true
}

// EndColumnDrag stops tracking the pointer. The block and its ranges stay.
func (e *Engine) EndColumnDrag() bool {
	was := e.dragging
	e.dragging = false
	return was
}

func (e *Engine) Dragging() bool { return e.dragging }

func (e *Engine) applyDrag(line, col int) {
	lastRow := max(0, e.doc.LineCount()-1)
	lo := clamp(min(e.anchor.Row, line), 0, lastRow)
	hi := clamp(max(e.anchor.Row, line), 0, lastRow)
	if lo != min(e.anchor.Row, line) || hi != max(e.anchor.Row, line) {
		e.log.Debug("column drag clamped", logging.FieldLines, lastRow+1, logging.FieldClamped, true)
	}
	col = max(0, col)
	e.block = Block{
		LineLo: lo,
		LineHi: hi,
		ColLo:  min(e.anchor.Col, col),
		ColHi:  max(e.anchor.Col, col),
	}
	e.hasBlock = true
	e.reapplyBlock()
}

// reapplyBlock rebuilds the ranges from the block and puts a caret at the
// end of every row; the last row's end becomes the primary caret.
func (e *Engine) reapplyBlock() {
	if !e.hasBlock {
		return
	}
	blk := e.block
	ranges := make([]Range, 0, blk.LineHi-blk.LineLo+1)
	ends := make([]int, 0, cap(ranges))
	for row := blk.LineLo; row <= blk.LineHi; row++ {
		r := Range{
			Start: e.offsetAt(row, blk.ColLo),
			End:   e.offsetAt(row, blk.ColHi),
			Pad:   max(0, blk.ColLo-e.doc.LineLen(row)),
		}
		ranges = append(ranges, r)
		ends = append(ends, r.End)
	}
	if len(ranges) == 0 {
		e.ClearRanges()
		return
	}
	e.setCarets(ends[len(ends)-1], ends)
	e.ranges = ranges
}

// offsetAt converts (row, col) to an offset, clamping col to the row's end.
// Rows past the end map to the document end.
func (e *Engine) offsetAt(row, col int) int {
	if row >= e.doc.LineCount() {
		return e.doc.Len()
	}
	row = max(0, row)
	col = clamp(col, 0, e.doc.LineLen(row))
	return e.doc.OffsetFromPos(buffer.Pos{Row: row, Col: col})
}
