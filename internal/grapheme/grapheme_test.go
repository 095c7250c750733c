package grapheme

import "testing"

func TestCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + "b"
	if c := Count(text); c != 3 {
		t.Fatalf("count=%d, want %d", c, 3)
	}
}

func TestWidthAndTruncate(t *testing.T) {
	if got, want := Width("aテ"), 3; got != want {
		t.Fatalf("width=%d, want %d", got, want)
	}
	if got, want := Truncate("aテb", 2), "a"; got != want {
		t.Fatalf("truncate=%q, want %q", got, want)
	}
	if got, want := Pad("ab", 4), "ab  "; got != want {
		t.Fatalf("pad=%q, want %q", got, want)
	}
}

func TestCellWidth_TabStops(t *testing.T) {
	if got := CellWidth('\t', 0, 4); got != 4 {
		t.Fatalf("tab at 0=%d, want 4", got)
	}
	if got := CellWidth('\t', 3, 4); got != 1 {
		t.Fatalf("tab at 3=%d, want 1", got)
	}
	if got := CellWidth('x', 3, 4); got != 1 {
		t.Fatalf("x=%d, want 1", got)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace('\t') {
		t.Fatalf("tab should be space")
	}
	if !IsWord('_') || !IsWord('é') || !IsWord('7') {
		t.Fatalf("underscore, letters and digits are word runes")
	}
	if IsWord('-') {
		t.Fatalf("dash is not a word rune")
	}
}

func TestClusterBoundaries(t *testing.T) {
	// e + combining acute, regional-indicator flag, x
	line := []rune("e\u0301\U0001F1EE\U0001F1F9x")

	bounds := Bounds(line)
	want := []int{0, 2, 4, 5}
	if len(bounds) != len(want) {
		t.Fatalf("bounds=%v, want %v", bounds, want)
	}
	for i := range want {
		if bounds[i] != want[i] {
			t.Fatalf("bounds=%v, want %v", bounds, want)
		}
	}

	if got := Next(line, 0); got != 2 {
		t.Fatalf("next(0)=%d, want 2", got)
	}
	if got := Next(line, 2); got != 4 {
		t.Fatalf("next(2)=%d, want 4", got)
	}
	if got := Prev(line, 4); got != 2 {
		t.Fatalf("prev(4)=%d, want 2", got)
	}
	if got := Snap(line, 3); got != 2 {
		t.Fatalf("snap(3)=%d, want 2", got)
	}
	if got := Next(nil, 0); got != 0 {
		t.Fatalf("next on empty=%d, want 0", got)
	}
}
