package buffer

import "testing"

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})
	if b.Version() != 0 || b.TextVersion() != 0 {
		t.Fatalf("expected versions 0/0, got %d/%d", b.Version(), b.TextVersion())
	}

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}
	if b.TextVersion() != 0 {
		t.Fatalf("expected text version unchanged, got %d", b.TextVersion())
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_SetSelection_ClampsAndMovesCursor(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetSelection(Range{Start: Pos{Row: 1, Col: 99}, End: Pos{Row: 0, Col: -1}})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	want := Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 1, Col: 2}}
	if r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if raw, _ := b.SelectionRaw(); raw.Start != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("raw anchor=%v, want (1,2)", raw.Start)
	}
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 0}) {
		t.Fatalf("cursor=%v, want selection end (0,0)", got)
	}

	v := b.Version()
	b.SetSelection(Range{Start: Pos{Row: 1, Col: 2}, End: Pos{Row: 0, Col: 0}})
	if b.Version() != v {
		t.Fatalf("expected version unchanged, got %d want %d", b.Version(), v)
	}

	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	if b.Version() != v+1 {
		t.Fatalf("expected version %d, got %d", v+1, b.Version())
	}
	b.ClearSelection()
	if b.Version() != v+1 {
		t.Fatalf("expected clear to be a no-op")
	}
}

func TestBuffer_LineAccessors(t *testing.T) {
	b := New("héllo\n\nxyz", Options{})

	if got, want := b.LineCount(), 3; got != want {
		t.Fatalf("line count=%d, want %d", got, want)
	}
	if got, want := b.Line(0), "héllo"; got != want {
		t.Fatalf("line 0=%q, want %q", got, want)
	}
	if got, want := b.LineLen(0), 5; got != want {
		t.Fatalf("line len=%d, want %d", got, want)
	}
	if got := b.Line(-1); got != "" {
		t.Fatalf("line -1=%q, want empty", got)
	}
	if got := b.LineLen(42); got != 0 {
		t.Fatalf("line len 42=%d, want 0", got)
	}
	if got, want := b.Len(), 10; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
}

func TestBuffer_EmptyDocumentHasOneLine(t *testing.T) {
	b := New("", Options{})
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count=%d, want 1", got)
	}
	if got := b.Len(); got != 0 {
		t.Fatalf("len=%d, want 0", got)
	}
}

func TestBuffer_SetText_ModifiedAndUndo(t *testing.T) {
	b := New("abc", Options{})
	b.SetCursor(Pos{Row: 0, Col: 3})
	if b.Modified() {
		t.Fatalf("new buffer should not be modified")
	}

	b.SetText("x\ny")
	if got, want := b.Text(), "x\ny"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if !b.Modified() {
		t.Fatalf("expected modified after SetText")
	}
	if b.TextVersion() != 1 {
		t.Fatalf("text version=%d, want 1", b.TextVersion())
	}

	b.SetText("x\ny")
	if b.TextVersion() != 1 {
		t.Fatalf("same text must not bump text version")
	}

	if !b.Undo() {
		t.Fatalf("expected undo")
	}
	if got := b.Text(); got != "abc" {
		t.Fatalf("text after undo=%q, want abc", got)
	}
	if b.Modified() {
		t.Fatalf("undo back to clean state should clear modified")
	}
}

func TestBuffer_SetModified(t *testing.T) {
	b := New("a", Options{})
	b.InsertText("b")
	b.SetModified(false)
	if b.Modified() {
		t.Fatalf("expected modified=false")
	}
	b.InsertText("c")
	if !b.Modified() {
		t.Fatalf("expected modified=true after edit")
	}
}
