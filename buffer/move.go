package buffer

import "github.com/iw2rmb/compatedit/internal/grapheme"

// MoveUnit is the granularity of a cursor move.
type MoveUnit int

const (
	// MoveChar steps over one grapheme cluster. Columns stay rune offsets,
	// so a combining sequence advances the column by more than one.
	MoveChar MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome
	DirEnd
)

// Move describes one cursor motion. Extend grows the selection from its
// anchor; a plain move drops it.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

func (b *Buffer) Move(m Move) {
	from := b.cursor
	to := b.clampPos(b.target(from, m))

	var sel selectionState
	if m.Extend {
		anchor := from
		if b.sel.active && b.sel.anchor != b.sel.end {
			anchor = b.sel.anchor
		}
		if anchor != to {
			sel = selectionState{active: true, anchor: anchor, end: to}
		}
	}

	if from == to && selectionStateEqual(b.sel, sel) {
		return
	}
	b.cursor = to
	b.sel = sel
	b.version++
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

// target resolves m against p. Vertical and Home/End motions share one
// meaning across units; only MoveDoc widens them to the whole document.
func (b *Buffer) target(p Pos, m Move) Pos {
	line := b.lines[p.Row]
	last := len(b.lines) - 1

	if m.Unit == MoveDoc {
		switch m.Dir {
		case DirHome, DirUp:
			return Pos{}
		case DirEnd, DirDown:
			return Pos{Row: last, Col: len(b.lines[last])}
		}
		return p
	}

	switch m.Dir {
	case DirHome:
		return Pos{Row: p.Row, Col: 0}
	case DirEnd:
		return Pos{Row: p.Row, Col: len(line)}
	case DirUp:
		if p.Row == 0 {
			return p
		}
		return b.columnOn(p.Row-1, p.Col)
	case DirDown:
		if p.Row == last {
			return p
		}
		return b.columnOn(p.Row+1, p.Col)
	}

	if m.Unit == MoveLine {
		return p
	}
	forward := m.Dir == DirRight

	// Horizontal steps at a line edge cross the newline.
	if !forward && p.Col == 0 {
		if p.Row == 0 {
			return p
		}
		return Pos{Row: p.Row - 1, Col: len(b.lines[p.Row-1])}
	}
	if forward && p.Col >= len(line) {
		if p.Row == last {
			return p
		}
		return Pos{Row: p.Row + 1}
	}

	if m.Unit == MoveWord {
		return Pos{Row: p.Row, Col: wordStep(line, p.Col, forward)}
	}
	if forward {
		return Pos{Row: p.Row, Col: grapheme.Next(line, p.Col)}
	}
	return Pos{Row: p.Row, Col: grapheme.Prev(line, p.Col)}
}

// columnOn keeps col on row, clamped to the line and snapped to a cluster
// start.
func (b *Buffer) columnOn(row, col int) Pos {
	line := b.lines[row]
	if col > len(line) {
		col = len(line)
	}
	return Pos{Row: row, Col: grapheme.Snap(line, col)}
}

type charClass int

const (
	classSpace charClass = iota
	classWord
	classPunct
)

func classAt(line []rune, col int) charClass {
	switch r := line[col]; {
	case grapheme.IsSpace(r):
		return classSpace
	case grapheme.IsWord(r):
		return classWord
	default:
		return classPunct
	}
}

// wordStep skips whitespace, then one run of same-class clusters. Words and
// punctuation are separate runs, so "foo.bar" takes three steps.
func wordStep(line []rune, col int, forward bool) int {
	bounds := grapheme.Bounds(line)
	i := 0
	for i < len(bounds)-1 && bounds[i] < col {
		i++
	}

	if forward {
		for i < len(bounds)-1 && classAt(line, bounds[i]) == classSpace {
			i++
		}
		if i == len(bounds)-1 {
			return len(line)
		}
		run := classAt(line, bounds[i])
		for i < len(bounds)-1 && classAt(line, bounds[i]) == run {
			i++
		}
		return bounds[i]
	}

	// i is the cluster at or after col; step back over clusters before it.
	for i > 0 && classAt(line, bounds[i-1]) == classSpace {
		i--
	}
	if i == 0 {
		return 0
	}
	run := classAt(line, bounds[i-1])
	for i > 0 && classAt(line, bounds[i-1]) == run {
		i--
	}
	return bounds[i]
}
