package buffer

// Apply applies a sequence of text edits in order. Each edit's range is
// interpreted against the buffer state at the time that edit is applied.
//
// Semantics:
// - Edit ranges are clamped into current document bounds.
// - Empty range + non-empty text inserts.
// - Cursor moves to the end of the last applied (effective) edit.
// - Selection is cleared if any edit applies.
// - The whole batch is one undo step.
func (b *Buffer) Apply(edits ...TextEdit) {
	if len(edits) == 0 {
		return
	}
	b.applyBatch(ChangeSourceLocal, len(edits), func(i int) (Range, string) {
		return edits[i].Range, edits[i].Text
	})
}

// ApplyOffsets is Apply over rune offsets. Offsets are clamped to
// [0, Len()] at the time each edit is applied; a reversed edit is normalized.
func (b *Buffer) ApplyOffsets(edits ...OffsetEdit) {
	if len(edits) == 0 {
		return
	}
	b.applyBatch(ChangeSourceBatch, len(edits), func(i int) (Range, string) {
		e := edits[i]
		return Range{Start: b.PosFromOffset(e.Start), End: b.PosFromOffset(e.End)}, e.Text
	})
}

// InsertAt inserts text at a rune offset.
func (b *Buffer) InsertAt(offset int, text string) {
	b.ApplyOffsets(OffsetEdit{Start: offset, End: offset, Text: text})
}

// DeleteRange deletes the rune offsets [start, end).
func (b *Buffer) DeleteRange(start, end int) {
	b.ApplyOffsets(OffsetEdit{Start: start, End: end})
}

// ReplaceRange replaces the rune offsets [start, end) with text.
func (b *Buffer) ReplaceRange(start, end int, text string) {
	b.ApplyOffsets(OffsetEdit{Start: start, End: end, Text: text})
}

func (b *Buffer) applyBatch(source ChangeSource, n int, at func(i int) (Range, string)) {
	prev := b.snapshot()
	change := b.beginChange(source)

	anyChanged := false
	lastCursor := b.cursor

	for i := 0; i < n; i++ {
		r, text := at(i)
		nextCursor, applied, changed := b.replaceRange(r, text)
		if !changed {
			continue
		}
		anyChanged = true
		lastCursor = nextCursor
		change.addAppliedEdit(applied)
	}

	if !anyChanged {
		return
	}

	b.cursor = b.clampPos(lastCursor)
	b.sel = selectionState{}
	b.bumpText()
	b.recordUndo(prev)
	b.commitChange(change)
}
