package buffer

import "unicode/utf8"

// ChangeSource tells local edits apart from offset batches.
type ChangeSource uint8

const (
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourceBatch marks ApplyOffsets; multi-caret typing lands here.
	ChangeSourceBatch
)

// SelectionState is a normalized selection snapshot.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit is one effective edit. Ranges are positions; Offset, Removed
// and Inserted are the same edit in rune offsets of the document the edit
// was applied to.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string

	Offset   int
	Removed  int
	Inserted int
}

// MapOffset moves off across the edit. Offsets inside the removed span
// collapse to the end of the inserted text.
func (e AppliedEdit) MapOffset(off int) int {
	switch {
	case off < e.Offset:
		return off
	case off < e.Offset+e.Removed:
		return e.Offset + e.Inserted
	default:
		return off - e.Removed + e.Inserted
	}
}

// Change is one versioned mutation. Edits apply in order, each against the
// document left by the previous one.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

// MapOffset moves an offset from the pre-change document into the
// post-change one.
func (c Change) MapOffset(off int) int {
	for _, e := range c.AppliedEdits {
		off = e.MapOffset(off)
	}
	return off
}

// Delta is the net change in document length, in runes.
func (c Change) Delta() int {
	n := 0
	for _, e := range c.AppliedEdits {
		n += e.Inserted - e.Removed
	}
	return n
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	c := b.lastChange
	c.AppliedEdits = append([]AppliedEdit(nil), c.AppliedEdits...)
	return c, true
}

type pendingChange struct {
	Change
}

func (b *Buffer) selectionState() SelectionState {
	if !b.sel.active {
		return SelectionState{}
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

func (b *Buffer) beginChange(source ChangeSource) *pendingChange {
	return &pendingChange{Change{
		Source:          source,
		VersionBefore:   b.version,
		CursorBefore:    b.cursor,
		SelectionBefore: b.selectionState(),
	}}
}

func (p *pendingChange) addAppliedEdit(e AppliedEdit) {
	e.RangeBefore = NormalizeRange(e.RangeBefore)
	e.RangeAfter = NormalizeRange(e.RangeAfter)
	p.AppliedEdits = append(p.AppliedEdits, e)
}

// commitChange records p unless the version did not move.
func (b *Buffer) commitChange(p *pendingChange) {
	if b.version == p.VersionBefore {
		return
	}
	c := p.Change
	c.VersionAfter = b.version
	c.CursorAfter = b.cursor
	c.SelectionAfter = b.selectionState()
	b.lastChange = c
	b.hasLastChange = true
}

// replacementAppliedEdit describes a whole-text swap as the smallest edit
// covering the difference: common leading and trailing runes are dropped.
func replacementAppliedEdit(beforeText, afterText string) (AppliedEdit, bool) {
	if beforeText == afterText {
		return AppliedEdit{}, false
	}
	before, after := []rune(beforeText), []rune(afterText)

	head := 0
	for head < len(before) && head < len(after) && before[head] == after[head] {
		head++
	}
	tail := 0
	for tail < len(before)-head && tail < len(after)-head &&
		before[len(before)-1-tail] == after[len(after)-1-tail] {
		tail++
	}

	deleted := string(before[head : len(before)-tail])
	inserted := string(after[head : len(after)-tail])
	start := posAtRune(before, head)
	return AppliedEdit{
		RangeBefore: Range{Start: start, End: posAtRune(before, len(before)-tail)},
		RangeAfter:  Range{Start: start, End: posAtRune(after, len(after)-tail)},
		InsertText:  inserted,
		DeletedText: deleted,
		Offset:      head,
		Removed:     utf8.RuneCountInString(deleted),
		Inserted:    utf8.RuneCountInString(inserted),
	}, true
}

func posAtRune(text []rune, off int) Pos {
	p := Pos{}
	for _, r := range text[:off] {
		if r == '\n' {
			p.Row++
			p.Col = 0
			continue
		}
		p.Col++
	}
	return p
}
