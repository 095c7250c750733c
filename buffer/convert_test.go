package buffer

import "testing"

func TestBuffer_OffsetFromPosAndBack(t *testing.T) {
	b := New("ab\ncé\n", Options{})

	cases := []struct {
		pos  Pos
		want int
	}{
		{pos: Pos{Row: 0, Col: 0}, want: 0},
		{pos: Pos{Row: 0, Col: 2}, want: 2},
		{pos: Pos{Row: 1, Col: 0}, want: 3},
		{pos: Pos{Row: 1, Col: 2}, want: 5},
		{pos: Pos{Row: 2, Col: 0}, want: 6},
	}
	for _, tc := range cases {
		if got := b.OffsetFromPos(tc.pos); got != tc.want {
			t.Fatalf("OffsetFromPos(%v)=%d, want %d", tc.pos, got, tc.want)
		}
		if got := b.PosFromOffset(tc.want); got != tc.pos {
			t.Fatalf("PosFromOffset(%d)=%v, want %v", tc.want, got, tc.pos)
		}
	}
}

func TestBuffer_OffsetConversions_Clamp(t *testing.T) {
	b := New("ab\ncd", Options{})

	if got, want := b.PosFromOffset(-3), (Pos{}); got != want {
		t.Fatalf("PosFromOffset(-3)=%v, want %v", got, want)
	}
	if got, want := b.PosFromOffset(99), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("PosFromOffset(99)=%v, want %v", got, want)
	}
	if got, want := b.OffsetFromPos(Pos{Row: -1, Col: 9}), 2; got != want {
		t.Fatalf("OffsetFromPos clamp=%d, want %d", got, want)
	}
}

func TestBuffer_ByteOffsets(t *testing.T) {
	b := New("é\nx", Options{})
	errMode := ConvertPolicy{ClampMode: OffsetError}
	clamp := ConvertPolicy{ClampMode: OffsetClamp}

	if got, ok := b.ByteOffsetFromPos(Pos{Row: 1, Col: 0}, errMode); !ok || got != 3 {
		t.Fatalf("ByteOffsetFromPos=(%d,%v), want (3,true)", got, ok)
	}
	if _, ok := b.PosFromByteOffset(1, errMode); ok {
		t.Fatalf("offset inside a rune must fail in error mode")
	}
	if got, ok := b.PosFromByteOffset(1, clamp); !ok || got != (Pos{}) {
		t.Fatalf("clamped PosFromByteOffset=(%v,%v), want ((0,0),true)", got, ok)
	}
	if _, ok := b.PosFromRuneOffset(9, errMode); ok {
		t.Fatalf("out-of-range rune offset must fail in error mode")
	}
	if got, ok := b.RuneOffsetFromPos(Pos{Row: 1, Col: 1}, errMode); !ok || got != 3 {
		t.Fatalf("RuneOffsetFromPos=(%d,%v), want (3,true)", got, ok)
	}
	if _, ok := b.RuneOffsetFromPos(Pos{Row: 0, Col: 5}, errMode); ok {
		t.Fatalf("out-of-range pos must fail in error mode")
	}
}
