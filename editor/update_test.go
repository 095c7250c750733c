package editor

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/compatedit/buffer"
	"github.com/iw2rmb/compatedit/completion"
	"github.com/iw2rmb/compatedit/internal/logging"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func newTestModel(t *testing.T, cfg Config) Model {
	t.Helper()
	if cfg.Margins.Widths == nil && cfg.Margins.Types == nil {
		cfg.Margins = noMargins()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	return New(cfg).SetSize(20, 5)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := newTestModel(t, Config{Text: "ab"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(runes("X"))
	if got := m.Buffer().Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.Buffer().Cursor(); got != (buffer.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor after insert: got %v, want %v", got, buffer.Pos{Row: 0, Col: 2})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
}

func TestUpdate_ReadOnlyIgnoresMutations(t *testing.T) {
	m := newTestModel(t, Config{Text: "ab", ReadOnly: true})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(runes("X"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pasted"), Paste: true})
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text in read-only: got %q, want %q", got, "ab")
	}
	if got := m.Buffer().Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor in read-only: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := newTestModel(t, Config{})
	m, _ = m.Update(runes("a"))
	m, _ = m.Update(runes("b"))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.Buffer().Text(); got != "a" {
		t.Fatalf("text after undo: got %q, want %q", got, "a")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text after redo: got %q, want %q", got, "ab")
	}
}

func TestUpdate_PasteEventInsertsLiteralText(t *testing.T) {
	m := newTestModel(t, Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x\r\ny"), Paste: true})
	if got := m.Buffer().Text(); got != "x\ny" {
		t.Fatalf("text: got %q, want %q", got, "x\ny")
	}
}

func TestUpdate_ClipboardCopyCutPaste(t *testing.T) {
	clip := &memClipboard{}
	m := newTestModel(t, Config{Text: "hello", Clipboard: clip})
	m.Buffer().SetSelection(buffer.Range{Start: buffer.Pos{Col: 0}, End: buffer.Pos{Col: 2}})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if clip.s != "he" {
		t.Fatalf("clipboard after copy: got %q, want %q", clip.s, "he")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := m.Buffer().Text(); got != "llo" {
		t.Fatalf("text after cut: got %q, want %q", got, "llo")
	}

	m.Buffer().SetCursor(buffer.Pos{Col: 3})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.Buffer().Text(); got != "llohe" {
		t.Fatalf("text after paste: got %q, want %q", got, "llohe")
	}
}

func TestUpdate_CaretsMoveTogether(t *testing.T) {
	m := newTestModel(t, Config{Text: "abcd"})
	eng := m.Engine()
	enableMulti(eng)
	eng.ToggleCaretAt(2)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := eng.CaretOffset(); got != 1 {
		t.Fatalf("primary: got %d, want 1", got)
	}
	if got, want := eng.Carets().Carets(), []int{3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("carets: got %v, want %v", got, want)
	}

	m, _ = m.Update(runes("-"))
	if got := m.Buffer().Text(); got != "a-bc-d" {
		t.Fatalf("text: got %q, want %q", got, "a-bc-d")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := eng.Carets().Carets(); len(got) != 0 {
		t.Fatalf("carets after escape: got %v", got)
	}
}

func TestUpdate_CtrlAltClickTogglesCaret(t *testing.T) {
	m := newTestModel(t, Config{Text: "abcd"})
	eng := m.Engine()

	msg := press(3, 0)
	msg.Ctrl, msg.Alt = true, true
	m, _ = m.Update(msg)
	if got := eng.Carets().Carets(); len(got) != 0 {
		t.Fatalf("caret added without multiple selection: %v", got)
	}

	m, _ = m.Update(press(1, 0))
	eng.SetMultipleSelection(true)
	m, _ = m.Update(msg)
	if got, want := eng.Carets().Carets(), []int{3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("carets: got %v, want %v", got, want)
	}
	m, _ = m.Update(msg)
	if got := eng.Carets().Carets(); len(got) != 0 {
		t.Fatalf("second toggle should remove the caret: %v", got)
	}
}

func TestUpdate_ClickMovesCursorAndShiftExtends(t *testing.T) {
	m := newTestModel(t, Config{Text: "abc\ndef"})

	m, _ = m.Update(press(2, 1))
	m, _ = m.Update(release(2, 1))
	if got := m.Buffer().Cursor(); got != (buffer.Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor: got %v, want %v", got, buffer.Pos{Row: 1, Col: 2})
	}

	shift := press(1, 0)
	shift.Shift = true
	m, _ = m.Update(shift)
	m, _ = m.Update(release(1, 0))
	if got, want := m.Engine().SelectedText(), "bc\nde"; got != want {
		t.Fatalf("selection: got %q, want %q", got, want)
	}
}

func TestUpdate_DragSelects(t *testing.T) {
	m := newTestModel(t, Config{Text: "abcdef"})

	m, _ = m.Update(press(1, 0))
	m, _ = m.Update(motion(4, 0))
	m, _ = m.Update(release(4, 0))
	if got, want := m.Engine().SelectedText(), "bcd"; got != want {
		t.Fatalf("selection: got %q, want %q", got, want)
	}
}

func TestUpdate_ColumnDrag(t *testing.T) {
	m := newTestModel(t, Config{Text: "abc\ndef\nghi"})
	eng := m.Engine()
	eng.SetColumnMode(true)

	m, _ = m.Update(press(1, 0))
	m, _ = m.Update(motion(2, 2))
	m, _ = m.Update(release(2, 2))
	if eng.ColumnDragging() {
		t.Fatalf("drag should end on release")
	}
	if got, want := eng.SelectedText(), "b\ne\nh"; got != want {
		t.Fatalf("column selection: got %q, want %q", got, want)
	}

	m, _ = m.Update(runes("X"))
	if got, want := m.Buffer().Text(), "aXc\ndXf\ngXi"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestUpdate_MarginClickFolds(t *testing.T) {
	m := New(Config{Text: "if x:\n    y\nz", Logger: logging.Discard()}).SetSize(20, 5)

	m, _ = m.Update(press(0, 0))
	if !m.Engine().Folds().IsCollapsed(0) {
		t.Fatalf("fold margin click should collapse line 0")
	}
	m, _ = m.Update(release(0, 0))

	m, _ = m.Update(press(5, 1))
	if got := m.Buffer().Cursor(); got != (buffer.Pos{Row: 2}) {
		t.Fatalf("cursor after number click: got %v, want row 2", got)
	}
}

func TestUpdate_ToggleFoldKey(t *testing.T) {
	m := newTestModel(t, Config{Text: "a\n  b\nc"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlCloseBracket})
	if !m.Engine().Folds().IsCollapsed(0) {
		t.Fatalf("ctrl+] should collapse the fold at the cursor")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlCloseBracket})
	if m.Engine().Folds().IsCollapsed(0) {
		t.Fatalf("second ctrl+] should expand it")
	}
}

func TestUpdate_HotspotClickAndHover(t *testing.T) {
	var clicks, hovers []string
	m := newTestModel(t, Config{
		Text: "see docs",
		Hooks: Hooks{
			OnHotspotClick: func(_ int, p string) { clicks = append(clicks, p) },
			OnHotspotHover: func(_ int, p string) { hovers = append(hovers, p) },
		},
	})
	m.Engine().AddHotspotRange(4, 8, "docs")

	m, _ = m.Update(tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if got, want := hovers, []string{"docs"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("hovers: got %v, want %v", got, want)
	}

	m, _ = m.Update(press(5, 0))
	m, _ = m.Update(release(5, 0))
	if got, want := clicks, []string{"docs"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("clicks: got %v, want %v", got, want)
	}
}

func TestUpdate_CompletionPopupOnTyping(t *testing.T) {
	m := newTestModel(t, Config{Text: "alpha\n"})
	m.Buffer().SetCursor(buffer.Pos{Row: 1})

	m, _ = m.Update(runes("a"))
	p, _ := m.Popup()
	if !p.Visible {
		t.Fatalf("popup should open after typing")
	}
	if got, want := p.Candidates, []string{"alpha"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("candidates: got %v, want %v", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p, _ := m.Popup(); p.Visible {
		t.Fatalf("escape should close the popup")
	}
	if got := m.Buffer().Text(); got != "alpha\na" {
		t.Fatalf("text: got %q, want %q", got, "alpha\na")
	}
}

func TestUpdate_CompletionNavigateAndAccept(t *testing.T) {
	m := newTestModel(t, Config{Text: "alpha alps\nal"})
	m.Buffer().SetCursor(buffer.Pos{Row: 1, Col: 2})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlAt})
	p, sel := m.Popup()
	if got, want := p.Candidates, []string{"al", "alpha", "alps"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("candidates: got %v, want %v", got, want)
	}
	if sel != 0 {
		t.Fatalf("selected: got %d, want 0", sel)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if _, sel := m.Popup(); sel != 2 {
		t.Fatalf("selected after two downs: got %d, want 2", sel)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.Buffer().Text(), "alpha alps\nalps"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if p, _ := m.Popup(); p.Visible {
		t.Fatalf("popup should close after accept")
	}
}

func TestUpdate_ForcedCompletionAcceptsSingle(t *testing.T) {
	m := newTestModel(t, Config{Text: "alpha\na"})
	m.Buffer().SetCursor(buffer.Pos{Row: 1, Col: 1})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlAt})
	if got, want := m.Buffer().Text(), "alpha\nalpha"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if p, _ := m.Popup(); p.Visible {
		t.Fatalf("auto-accepted popup should stay closed")
	}
}

func TestUpdate_CompletionSourceNoneStaysQuiet(t *testing.T) {
	m := newTestModel(t, Config{Text: "alpha\n"})
	m.Engine().SetAutoCompletionSource(completion.SourceNone)
	m.Buffer().SetCursor(buffer.Pos{Row: 1})

	m, _ = m.Update(runes("a"))
	if p, _ := m.Popup(); p.Visible {
		t.Fatalf("popup opened with completion off")
	}
}

func TestUpdate_BlurIgnoresInput(t *testing.T) {
	m := newTestModel(t, Config{Text: "ab"}).Blur()
	m, _ = m.Update(runes("X"))
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text: got %q, want %q", got, "ab")
	}
}
