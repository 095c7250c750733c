package buffer

import "unicode/utf8"

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

type ConvertPolicy struct {
	ClampMode OffsetClampMode
}

// OffsetFromPos converts p to a rune offset, clamping p into the document.
func (b *Buffer) OffsetFromPos(p Pos) int {
	return b.posToRuneOffset(b.clampPos(p))
}

// PosFromOffset converts a rune offset to a position, clamping off to
// [0, Len()].
func (b *Buffer) PosFromOffset(off int) Pos {
	off, _ = clampOffset(off, b.docRuneLen(), OffsetClamp)
	p, _ := b.runeOffsetToPos(off)
	return p
}

func (b *Buffer) PosFromByteOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, b.docByteLen(), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	pos, ok := b.byteOffsetToPos(off)
	if !ok && p.ClampMode == OffsetClamp {
		// Inside a multi-byte rune: snap to the rune start.
		for off > 0 && !ok {
			off--
			pos, ok = b.byteOffsetToPos(off)
		}
	}
	return pos, ok
}

func (b *Buffer) ByteOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	pos, ok := b.normalizePosForMode(pos, p.ClampMode)
	if !ok {
		return 0, false
	}
	return b.posToByteOffset(pos), true
}

func (b *Buffer) PosFromRuneOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, b.docRuneLen(), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	return b.runeOffsetToPos(off)
}

func (b *Buffer) RuneOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	pos, ok := b.normalizePosForMode(pos, p.ClampMode)
	if !ok {
		return 0, false
	}
	return b.posToRuneOffset(pos), true
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, max), true
	default:
		return 0, false
	}
}

func (b *Buffer) normalizePosForMode(pos Pos, mode OffsetClampMode) (Pos, bool) {
	switch mode {
	case OffsetError:
		clamped := b.clampPos(pos)
		if clamped != pos {
			return Pos{}, false
		}
		return pos, true
	case OffsetClamp:
		return b.clampPos(pos), true
	default:
		return Pos{}, false
	}
}

func (b *Buffer) docByteLen() int {
	total := 0
	for row, line := range b.lines {
		for _, r := range line {
			total += utf8.RuneLen(r)
		}
		if row < len(b.lines)-1 {
			total++
		}
	}
	return total
}

func (b *Buffer) docRuneLen() int {
	total := len(b.lines) - 1
	for _, line := range b.lines {
		total += len(line)
	}
	return total
}

func (b *Buffer) byteOffsetToPos(off int) (Pos, bool) {
	cur := 0
	for row, line := range b.lines {
		if off == cur {
			return Pos{Row: row, Col: 0}, true
		}
		for col, r := range line {
			next := cur + utf8.RuneLen(r)
			if off > cur && off < next {
				return Pos{}, false
			}
			cur = next
			if off == cur {
				return Pos{Row: row, Col: col + 1}, true
			}
		}
		cur++ // newline
	}
	return Pos{}, false
}

func (b *Buffer) runeOffsetToPos(off int) (Pos, bool) {
	cur := 0
	for row, line := range b.lines {
		if off <= cur+len(line) {
			if off < cur {
				return Pos{}, false
			}
			return Pos{Row: row, Col: off - cur}, true
		}
		cur += len(line) + 1
	}
	return Pos{}, false
}

func (b *Buffer) posToByteOffset(pos Pos) int {
	off := 0
	for row := 0; row < pos.Row; row++ {
		for _, r := range b.lines[row] {
			off += utf8.RuneLen(r)
		}
		off++
	}
	for _, r := range b.lines[pos.Row][:pos.Col] {
		off += utf8.RuneLen(r)
	}
	return off
}

func (b *Buffer) posToRuneOffset(pos Pos) int {
	off := 0
	for row := 0; row < pos.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off + pos.Col
}
