package caret_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/compatedit/buffer"
	"github.com/iw2rmb/compatedit/caret"
)

func newEngine(t *testing.T, text string, opt caret.Options) (*buffer.Buffer, *caret.Engine) {
	t.Helper()
	b := buffer.New(text, buffer.Options{})
	return b, caret.New(b, opt)
}

func multi() caret.Options {
	opt := caret.DefaultOptions()
	opt.MultipleSelection = true
	opt.AdditionalTyping = true
	return opt
}

func placeCarets(t *testing.T, b *buffer.Buffer, e *caret.Engine, offsets ...int) {
	t.Helper()
	b.SetCursor(b.PosFromOffset(offsets[0]))
	for _, off := range offsets[1:] {
		require.True(t, e.ToggleCaretAt(off))
	}
}

func TestInsertAll_RebasesLaterCarets(t *testing.T) {
	text := "0123456789abcdefghijklmnop"
	b, e := newEngine(t, text, multi())
	placeCarets(t, b, e, 5, 12, 20)

	e.InsertAll("X")

	assert.Equal(t, []int{6, 14, 23}, e.Positions())
	assert.Equal(t, "01234X56789abXcdefghijXklmnop", b.Text())
	assert.Equal(t, 6, b.OffsetFromPos(b.Cursor()))
	assert.Equal(t, []int{14, 23}, e.Carets())
}

func TestRebase_HostEdit(t *testing.T) {
	opt := multi()
	opt.AdditionalTyping = false
	b, e := newEngine(t, "0123456789", opt)
	placeCarets(t, b, e, 4, 5, 9)

	b.InsertText("x")
	assert.False(t, e.ClaimEdit())
	c, ok := b.LastChange()
	require.True(t, ok)
	e.Rebase(c)

	assert.Equal(t, 5, b.OffsetFromPos(b.Cursor()))
	assert.Equal(t, []int{6, 10}, e.Carets())
	assert.Equal(t, []int{5, 6, 10}, e.Positions())
}

func TestRebase_MergesWithPrimaryAndClamps(t *testing.T) {
	opt := multi()
	opt.AdditionalTyping = false
	b, e := newEngine(t, "abcdef", opt)
	placeCarets(t, b, e, 3, 2, 6)

	b.ApplyOffsets(buffer.OffsetEdit{Start: 2, End: 6, Text: ""})
	b.SetCursor(b.PosFromOffset(2))
	c, _ := b.LastChange()
	e.Rebase(c)

	assert.Empty(t, e.Carets())
	assert.Equal(t, []int{2}, e.Positions())
}

func TestClaimEdit_SetByOwnEdits(t *testing.T) {
	b, e := newEngine(t, "ab", multi())
	placeCarets(t, b, e, 0, 2)

	e.InsertAll("-")
	assert.True(t, e.ClaimEdit())
	assert.False(t, e.ClaimEdit())
}

func TestInsertAll_IsOneUndoStep(t *testing.T) {
	b, e := newEngine(t, "abc", multi())
	placeCarets(t, b, e, 0, 3)

	e.InsertAll("--")
	require.Equal(t, "--abc--", b.Text())

	require.True(t, b.Undo())
	assert.Equal(t, "abc", b.Text())
	assert.False(t, b.CanUndo())
}

func TestInsertAll_PrimaryKeepsItsIndex(t *testing.T) {
	b, e := newEngine(t, "aaaa", multi())
	placeCarets(t, b, e, 2, 0, 4)

	e.InsertAll("b")

	assert.Equal(t, "baabaab", b.Text())
	assert.Equal(t, 4, b.OffsetFromPos(b.Cursor()))
	assert.Equal(t, []int{1, 7}, e.Carets())
}

func TestToggleCaretAt(t *testing.T) {
	b, e := newEngine(t, "hello", caret.DefaultOptions())
	assert.False(t, e.ToggleCaretAt(2), "multiple selection off")

	e.SetMultipleSelection(true)
	b.SetCursor(buffer.Pos{Col: 1})
	assert.False(t, e.ToggleCaretAt(1), "primary caret")
	assert.True(t, e.ToggleCaretAt(4))
	assert.True(t, e.ToggleCaretAt(99))
	assert.Equal(t, []int{4, 5}, e.Carets())
	assert.True(t, e.ToggleCaretAt(4))
	assert.Equal(t, []int{5}, e.Carets())

	e.SetMultipleSelection(false)
	assert.Empty(t, e.Carets())
}

func TestActive(t *testing.T) {
	b, e := newEngine(t, "hello", caret.DefaultOptions())
	e.SetMultipleSelection(true)
	placeCarets(t, b, e, 0, 3)
	assert.False(t, e.Active())

	e.SetAdditionalSelectionTyping(true)
	assert.True(t, e.Active())
}

func TestDeleteAll(t *testing.T) {
	tests := []struct {
		name     string
		backward bool
		carets   []int
		want     string
		wantPos  []int
	}{
		{"backward", true, []int{1, 4}, "bcef", []int{0, 2}},
		{"backward at start", true, []int{0, 3}, "abdef", []int{0, 2}},
		{"forward", false, []int{0, 3}, "bcef", []int{0, 2}},
		{"forward at end", false, []int{6, 2}, "abdef", []int{2, 5}},
		{"adjacent carets merge", true, []int{3, 2}, "adef", []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, e := newEngine(t, "abcdef", multi())
			placeCarets(t, b, e, tt.carets...)

			e.DeleteAll(tt.backward)

			assert.Equal(t, tt.want, b.Text())
			assert.Equal(t, tt.wantPos, e.Positions())
		})
	}
}

func TestInsertRows(t *testing.T) {
	b, e := newEngine(t, "a\nb\nc", multi())
	placeCarets(t, b, e, 1, 3, 5)

	e.InsertRows([]string{"1", "2", "3"})
	assert.Equal(t, "a1\nb2\nc3", b.Text())
	assert.Equal(t, []int{2, 5, 8}, e.Positions())
}

func TestInsertRows_MismatchBroadcastsFirstRow(t *testing.T) {
	b, e := newEngine(t, "a\nb\nc", multi())
	placeCarets(t, b, e, 1, 3, 5)

	e.InsertRows([]string{"x", "y"})
	assert.Equal(t, "ax\nbx\ncx", b.Text())
}

func TestMoveAll(t *testing.T) {
	b, e := newEngine(t, "abc\ndef", multi())
	placeCarets(t, b, e, 1, 5)

	e.MoveAll(caret.Left, false)
	assert.Equal(t, []int{0, 4}, e.Positions())

	e.MoveAll(caret.Left, false)
	assert.Equal(t, []int{0, 3}, e.Positions())

	e.MoveAll(caret.End, false)
	assert.Equal(t, []int{3}, e.Positions(), "both carets end on line 0")
}

func TestMoveAll_HomeEndAndExtend(t *testing.T) {
	b, e := newEngine(t, "abc\ndef", multi())
	placeCarets(t, b, e, 1, 5)

	e.MoveAll(caret.Home, false)
	assert.Equal(t, []int{0, 4}, e.Positions())

	e.MoveAll(caret.End, true)
	assert.Equal(t, []int{3, 7}, e.Positions())
	sel, ok := b.Selection()
	require.True(t, ok)
	assert.Equal(t, buffer.Range{Start: buffer.Pos{}, End: buffer.Pos{Col: 3}}, sel)
}

func columnEngine(t *testing.T, text string) (*buffer.Buffer, *caret.Engine) {
	t.Helper()
	opt := caret.DefaultOptions()
	opt.ColumnMode = true
	return newEngine(t, text, opt)
}

func TestColumnDrag_Ranges(t *testing.T) {
	b, e := columnEngine(t, "a\n0123456789\n0123456789")

	require.True(t, e.BeginColumnDrag(2, 5))
	require.True(t, e.UpdateColumnDrag(0, 2))
	require.True(t, e.EndColumnDrag())
	assert.False(t, e.Dragging())

	blk, ok := e.Block()
	require.True(t, ok)
	assert.Equal(t, caret.Block{LineLo: 0, LineHi: 2, ColLo: 2, ColHi: 5}, blk)
	assert.Equal(t, []caret.Range{
		{Start: 1, End: 1, Pad: 1},
		{Start: 4, End: 7},
		{Start: 15, End: 18},
	}, e.Ranges())
	assert.Equal(t, 18, b.OffsetFromPos(b.Cursor()))
	assert.Equal(t, []int{1, 7}, e.Carets())
	assert.True(t, e.RangesActive())
}

func TestReplaceRanges_PadsShortRows(t *testing.T) {
	b, e := columnEngine(t, "a\n0123456789\n0123456789")
	e.BeginColumnDrag(0, 2)
	e.UpdateColumnDrag(2, 5)
	e.EndColumnDrag()

	e.ReplaceRanges("Y")

	assert.Equal(t, "a Y\n01Y56789\n01Y56789", b.Text())
	blk, ok := e.Block()
	require.True(t, ok)
	assert.Equal(t, 3, blk.ColHi, "block narrows to the replacement width")
	assert.Equal(t, []caret.Range{
		{Start: 2, End: 3},
		{Start: 6, End: 7},
		{Start: 15, End: 16},
	}, e.Ranges())
}

func TestReplaceRanges_NewlineDropsBlock(t *testing.T) {
	b, e := columnEngine(t, "abc\ndef")
	e.BeginColumnDrag(0, 1)
	e.UpdateColumnDrag(1, 2)

	e.ReplaceRanges("\n")

	assert.Equal(t, "a\nc\nd\nf", b.Text())
	assert.Empty(t, e.Ranges())
	_, ok := e.Block()
	assert.False(t, ok)
}

func TestReplaceRanges_EmptyOverZeroWidthIsNoop(t *testing.T) {
	b, e := columnEngine(t, "abc\ndef")
	e.BeginColumnDrag(0, 1)
	e.UpdateColumnDrag(1, 1)
	version := b.TextVersion()

	e.ReplaceRanges("")

	assert.Equal(t, version, b.TextVersion())
	assert.Len(t, e.Ranges(), 2)
}

func TestReplaceRanges_TypingIntoZeroWidthBlock(t *testing.T) {
	b, e := columnEngine(t, "abc\ndef")
	e.BeginColumnDrag(0, 1)
	e.UpdateColumnDrag(1, 1)

	e.ReplaceRanges("x")
	assert.Equal(t, "axbc\ndxef", b.Text())
}

func TestReplaceRangesRows(t *testing.T) {
	b, e := columnEngine(t, "abc\ndef")
	e.BeginColumnDrag(0, 0)
	e.UpdateColumnDrag(1, 1)

	e.ReplaceRangesRows([]string{"12", "3"})
	assert.Equal(t, "12bc\n3ef", b.Text())
	blk, _ := e.Block()
	assert.Equal(t, 2, blk.ColHi)

	e.ReplaceRangesRows([]string{"z"})
	assert.Equal(t, "zbc\nzf", b.Text(), "count mismatch broadcasts the first row")
}

func TestDeleteRanges(t *testing.T) {
	b, e := columnEngine(t, "abcd\nefgh")
	e.BeginColumnDrag(0, 1)
	e.UpdateColumnDrag(1, 3)

	e.DeleteRanges(true)
	assert.Equal(t, "ad\neh", b.Text())
	blk, _ := e.Block()
	assert.Equal(t, caret.Block{LineLo: 0, LineHi: 1, ColLo: 1, ColHi: 1}, blk)

	// The block is now zero-width: further deletes change nothing.
	e.DeleteRanges(true)
	e.DeleteRanges(false)
	assert.Equal(t, "ad\neh", b.Text())
}

func TestDeleteRanges_ZeroWidthDragIsNoop(t *testing.T) {
	b, e := columnEngine(t, "abcd\nefgh\nijkl")
	require.True(t, e.BeginColumnDrag(0, 2))
	require.True(t, e.UpdateColumnDrag(2, 2))
	require.NotEmpty(t, e.Ranges())

	e.DeleteRanges(true)
	assert.Equal(t, "abcd\nefgh\nijkl", b.Text())
	e.DeleteRanges(false)
	assert.Equal(t, "abcd\nefgh\nijkl", b.Text())
	assert.NotEmpty(t, e.Ranges())
}

func TestSetColumnModeOffClearsRanges(t *testing.T) {
	_, e := columnEngine(t, "abc\ndef")
	e.BeginColumnDrag(0, 0)
	e.UpdateColumnDrag(1, 2)
	require.NotEmpty(t, e.Ranges())

	e.SetColumnMode(false)
	assert.Empty(t, e.Ranges())
	assert.False(t, e.BeginColumnDrag(0, 0))
	assert.False(t, e.UpdateColumnDrag(1, 1))
}

func TestPaste(t *testing.T) {
	t.Run("carets get whole text", func(t *testing.T) {
		b, e := newEngine(t, "a\nb", multi())
		placeCarets(t, b, e, 1, 3)
		require.True(t, e.Paste("x\r\ny"))
		assert.Equal(t, "ax\ny\nbx\ny", b.Text())
	})
	t.Run("multi paste one row per caret", func(t *testing.T) {
		opt := multi()
		opt.MultiPaste = true
		b, e := newEngine(t, "a\nb", opt)
		placeCarets(t, b, e, 1, 3)
		require.True(t, e.Paste("x\ny\n"))
		assert.Equal(t, "ax\nby", b.Text())
	})
	t.Run("multi paste mismatch", func(t *testing.T) {
		opt := multi()
		opt.MultiPaste = true
		b, e := newEngine(t, "a\nb", opt)
		placeCarets(t, b, e, 1, 3)
		require.True(t, e.Paste("x\ny\nz"))
		assert.Equal(t, "ax\nbx", b.Text())
	})
	t.Run("inactive", func(t *testing.T) {
		_, e := newEngine(t, "a", caret.DefaultOptions())
		assert.False(t, e.Paste("x"))
	})
	t.Run("column rows", func(t *testing.T) {
		opt := caret.DefaultOptions()
		opt.ColumnMode = true
		opt.MultiPaste = true
		b, e := newEngine(t, "ab\ncd", opt)
		e.BeginColumnDrag(0, 1)
		e.UpdateColumnDrag(1, 1)
		require.True(t, e.Paste("1\n2"))
		assert.Equal(t, "a1b\nc2d", b.Text())
	})
}

func TestNewlineAndTabText(t *testing.T) {
	b, e := newEngine(t, "\t  x", caret.DefaultOptions())
	b.SetCursor(buffer.Pos{Col: 4})
	assert.Equal(t, "\n\t  ", e.NewlineText())
	assert.Equal(t, "    ", e.TabText())

	e.SetIndentation(2, true)
	assert.Equal(t, "\t", e.TabText())
	e.SetIndentation(2, false)
	assert.Equal(t, "  ", e.TabText())
}

func TestClearAll(t *testing.T) {
	b, e := newEngine(t, "abc\ndef", multi())
	e.SetColumnMode(true)
	placeCarets(t, b, e, 0, 2)
	e.BeginColumnDrag(0, 0)

	e.ClearAll()
	assert.Empty(t, e.Carets())
	assert.Empty(t, e.Ranges())
	assert.False(t, e.Dragging())
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, caret.SplitLines(""))
	assert.Equal(t, []string{"a", "b"}, caret.SplitLines("a\r\nb\r\n"))
	assert.Equal(t, []string{"a", "", "b"}, caret.SplitLines("a\n\rb"))
}
