package caret

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/compatedit/buffer"
	"github.com/iw2rmb/compatedit/internal/logging"
)

// batch accumulates rebased edits against a running document length.
type batch struct {
	edits  []buffer.OffsetEdit
	points []int
	shift  int
	docLen int
}

func (e *Engine) newBatch() *batch { return &batch{docLen: e.doc.Len()} }

// replace rebases [start, end) by the running shift, records the edit and
// returns the offset just past the inserted text.
func (b *batch) replace(start, end int, text string) int {
	s := clamp(start+b.shift, 0, b.docLen)
	t := clamp(end+b.shift, s, b.docLen)
	n := utf8.RuneCountInString(text)
	if t > s || n > 0 {
		b.edits = append(b.edits, buffer.OffsetEdit{Start: s, End: t, Text: text})
	}
	delta := n - (t - s)
	b.shift += delta
	b.docLen += delta
	b.points = append(b.points, s+n)
	return s + n
}

func (e *Engine) commit(b *batch) {
	if len(b.edits) > 0 {
		e.doc.ApplyOffsets(b.edits...)
		e.owned = true
	}
	e.log.Debug("synchronized edit", logging.FieldCarets, len(b.points), logging.FieldEdits, len(b.edits))
}

// InsertAll inserts text at every caret.
func (e *Engine) InsertAll(text string) {
	e.insertEach(func(int) string { return text })
}

// InsertRows inserts rows[i] at the i-th caret in ascending order. When the
// counts differ the first row goes to every caret.
func (e *Engine) InsertRows(rows []string) {
	if len(rows) == 0 {
		return
	}
	if len(rows) != len(e.Positions()) {
		first := rows[0]
		e.insertEach(func(int) string { return first })
		return
	}
	e.insertEach(func(i int) string { return rows[i] })
}

func (e *Engine) insertEach(textAt func(i int) string) {
	positions := e.Positions()
	primary := e.primary()

	b := e.newBatch()
	for i, pos := range positions {
		b.replace(pos, pos, textAt(i))
	}
	e.commit(b)

	e.ClearRanges()
	e.setCarets(pickPrimary(positions, primary, b.points), b.points)
}

// DeleteAll deletes one rune before (backward) or after every caret. Carets
// at the document edge stay put.
func (e *Engine) DeleteAll(backward bool) {
	e.deleteAll(backward)
	e.ClearRanges()
}

func (e *Engine) deleteAll(backward bool) {
	positions := e.Positions()
	primary := e.primary()

	b := e.newBatch()
	for _, pos := range positions {
		at := clamp(pos+b.shift, 0, b.docLen)
		switch {
		case backward && at > 0:
			b.replace(pos-1, pos, "")
		case !backward && at < b.docLen:
			b.replace(pos, pos+1, "")
		default:
			b.points = append(b.points, at)
		}
	}
	e.commit(b)
	e.setCarets(pickPrimary(positions, primary, b.points), b.points)
}

type indexedRange struct {
	Range
	idx int
}

func orderedRanges(ranges []Range) []indexedRange {
	out := make([]indexedRange, len(ranges))
	for i, r := range ranges {
		if r.Start > r.End {
			r.Start, r.End = r.End, r.Start
		}
		out[i] = indexedRange{Range: r, idx: i}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}

// ReplaceRanges replaces every column range with text. Rows shorter than the
// block's left column are padded with spaces first. Replacing zero-width
// ranges with nothing is a no-op.
func (e *Engine) ReplaceRanges(text string) {
	if len(e.ranges) == 0 {
		return
	}
	if text == "" && allEmpty(e.ranges) {
		return
	}
	e.replaceRanges(func(int) string { return text }, utf8.RuneCountInString(text), !strings.ContainsAny(text, "\r\n"))
}

// ReplaceRangesRows replaces the i-th range with rows[i]. When the counts
// differ the first row replaces every range.
func (e *Engine) ReplaceRangesRows(rows []string) {
	if len(e.ranges) == 0 || len(rows) == 0 {
		return
	}
	if len(rows) != len(e.ranges) {
		e.ReplaceRanges(rows[0])
		return
	}
	width := 0
	for _, row := range rows {
		width = max(width, utf8.RuneCountInString(row))
	}
	e.replaceRanges(func(i int) string { return rows[i] }, width, true)
}

// replaceRanges applies textAt to every range. When keepBlock holds and a
// column block exists, the block is narrowed or widened to width and its
// ranges are rebuilt; otherwise the ranges are dropped.
func (e *Engine) replaceRanges(textAt func(i int) string, width int, keepBlock bool) {
	ordered := orderedRanges(e.ranges)
	primary := e.primary()

	b := e.newBatch()
	for _, r := range ordered {
		text := textAt(r.idx)
		if text != "" && r.Pad > 0 {
			text = strings.Repeat(" ", r.Pad) + text
		}
		b.replace(r.Start, r.End, text)
	}
	e.commit(b)

	// The range whose start is nearest the old primary caret keeps it.
	best := 0
	for i, r := range ordered {
		if abs(r.Start-primary) < abs(ordered[best].Start-primary) {
			best = i
		}
	}
	e.setCarets(b.points[best], b.points)

	if keepBlock && e.opt.ColumnMode && e.hasBlock {
		e.block.ColHi = e.block.ColLo + max(0, width)
		e.reapplyBlock()
		return
	}
	e.ClearRanges()
}

// DeleteRanges clears the column ranges. A block dragged to zero width has
// nothing to delete and the call is a no-op.
func (e *Engine) DeleteRanges(backward bool) {
	if len(e.ranges) == 0 || allEmpty(e.ranges) {
		return
	}
	e.ReplaceRanges("")
}

// Paste routes clipboard text to the column ranges or the carets. It
// reports false when neither is active and the host should paste normally.
//
// With multi-paste on and one clipboard line per range or caret, each gets
// its own line; with a count mismatch every target gets the first line.
// With multi-paste off every target gets the whole text.
func (e *Engine) Paste(text string) bool {
	text = normalizeNewlines(text)
	if text == "" {
		return e.RangesActive() || e.Active()
	}

	switch {
	case e.RangesActive():
		if e.opt.MultiPaste {
			e.ReplaceRangesRows(SplitLines(text))
			return true
		}
		e.ReplaceRanges(text)
		return true
	case e.Active():
		if e.opt.MultiPaste {
			e.InsertRows(SplitLines(text))
			return true
		}
		e.InsertAll(text)
		return true
	default:
		return false
	}
}

// NewlineText is what Enter inserts: a newline plus the leading whitespace of
// the primary caret's line.
func (e *Engine) NewlineText() string {
	line := e.doc.Line(e.doc.Cursor().Row)
	end := 0
	for end < len(line) && (line[end] == ' ' || line[end] == '\t') {
		end++
	}
	return "\n" + line[:end]
}

// TabText is what Tab inserts: a tab, or IndentWidth spaces.
func (e *Engine) TabText() string {
	if e.opt.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", e.opt.IndentWidth)
}

// SplitLines splits text into lines; a trailing newline does not start an
// extra line.
func SplitLines(text string) []string {
	text = normalizeNewlines(text)
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func allEmpty(ranges []Range) bool {
	for _, r := range ranges {
		if !r.Empty() {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
