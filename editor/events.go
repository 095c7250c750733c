package editor

import "github.com/iw2rmb/compatedit/buffer"

// Hooks are the notifications an Engine emits. Nil hooks are skipped.
type Hooks struct {
	// OnMarginClick fires for clicks on a sensitive margin.
	OnMarginClick func(margin, line int)

	OnHotspotClick func(offset int, payload string)
	OnHotspotHover func(offset int, payload string)

	OnIndicatorClick func(id, offset int, payload string)
	OnIndicatorHover func(id, offset int, payload string)

	// OnRepaint fires whenever the paint list may have changed.
	OnRepaint func()

	// OnChange fires when the buffer version moves (text, cursor or
	// selection), after the rebuild pipeline ran.
	OnChange func(ChangeEvent)
}

type ChangeEvent struct {
	DocID       string
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Pos
	Selection   struct {
		Range  buffer.Range
		Active bool
	}
	// Carets are the additional caret offsets after the change.
	Carets []int

	Change    buffer.Change
	HasChange bool

	Text string
}

func buildChangeEvent(docID string, b *buffer.Buffer, carets []int) ChangeEvent {
	ev := ChangeEvent{
		DocID:       docID,
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		Cursor:      b.Cursor(),
		Carets:      carets,
		Text:        b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	ev.Change, ev.HasChange = b.LastChange()
	return ev
}
