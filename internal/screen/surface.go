package screen

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/compatedit/buffer"
	"github.com/iw2rmb/compatedit/caret"
	"github.com/iw2rmb/compatedit/completion"
	"github.com/iw2rmb/compatedit/editor"
	"github.com/iw2rmb/compatedit/internal/grapheme"
	"github.com/iw2rmb/compatedit/internal/logging"
)

const scrollStep = 3

type Options struct {
	ReadOnly  bool
	Clipboard editor.Clipboard
	// PopupRows caps the completion popup height. Zero means 8.
	PopupRows int
	Logger    *log.Logger
}

// Surface runs an engine on a tcell screen. It owns scrolling, the
// completion popup and mouse tracking; everything else goes through the
// engine.
type Surface struct {
	scr  tcell.Screen
	eng  *editor.Engine
	opts Options
	log  *log.Logger

	top int

	popup    completion.Popup
	selected int

	buttons  tcell.ButtonMask
	anchor   buffer.Pos
	dragging bool

	pasting bool
	paste   strings.Builder
}

// New wraps an initialized screen.
func New(scr tcell.Screen, eng *editor.Engine, opts Options) *Surface {
	if opts.PopupRows <= 0 {
		opts.PopupRows = 8
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Surface{scr: scr, eng: eng, opts: opts, log: logger}
}

func (s *Surface) Engine() *editor.Engine { return s.eng }

// Top is the first visual row on screen.
func (s *Surface) Top() int { return s.top }

func (s *Surface) Popup() completion.Popup { return s.popup }

// Run draws and handles events until Ctrl+Q or ctx is done.
func (s *Surface) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.scr.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	s.Draw()
	for {
		ev := s.scr.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok && ctx.Err() != nil {
			return ctx.Err()
		}
		if s.HandleEvent(ev) {
			return nil
		}
		s.Draw()
	}
}

// Draw renders the whole screen.
func (s *Surface) Draw() {
	w, h := s.scr.Size()
	f := s.eng.Frame(s.top, h, w)
	cx, cy, ok := DrawFrame(s.scr, 0, 0, f)
	s.drawPopup(w, h)
	if ok {
		s.scr.ShowCursor(cx, cy)
	} else {
		s.scr.HideCursor()
	}
	s.scr.Show()
}

// HandleEvent applies one event and reports whether the surface should
// quit.
func (s *Surface) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.scr.Sync()
		s.follow()
	case *tcell.EventPaste:
		s.handlePaste(ev)
	case *tcell.EventKey:
		if s.pasting {
			s.collectPaste(ev)
			return false
		}
		if ev.Key() == tcell.KeyCtrlQ {
			return true
		}
		s.handleKey(ev)
		s.follow()
	case *tcell.EventMouse:
		s.handleMouse(ev)
	}
	return false
}

func (s *Surface) handlePaste(ev *tcell.EventPaste) {
	if ev.Start() {
		s.pasting = true
		s.paste.Reset()
		return
	}
	s.pasting = false
	if text := s.paste.String(); text != "" && !s.opts.ReadOnly {
		s.eng.Paste(text)
		s.follow()
	}
	s.paste.Reset()
}

func (s *Surface) collectPaste(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		s.paste.WriteRune(ev.Rune())
	case tcell.KeyEnter:
		s.paste.WriteByte('\n')
	case tcell.KeyTab:
		s.paste.WriteByte('\t')
	}
}

func (s *Surface) handleKey(ev *tcell.EventKey) {
	eng := s.eng
	mods := ev.Modifiers()
	shift := mods&tcell.ModShift != 0
	ctrl := mods&tcell.ModCtrl != 0

	if s.popup.Visible && s.popupKey(ev) {
		return
	}

	switch ev.Key() {
	case tcell.KeyEsc:
		if s.popup.Visible {
			s.closePopup()
			return
		}
		eng.Escape()

	case tcell.KeyCtrlSpace:
		s.invokeCompletion(true)

	case tcell.KeyLeft:
		if ctrl {
			eng.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft, Extend: shift})
			return
		}
		s.move(caret.Left, shift, buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirLeft, Extend: shift})
	case tcell.KeyRight:
		if ctrl {
			eng.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight, Extend: shift})
			return
		}
		s.move(caret.Right, shift, buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirRight, Extend: shift})
	case tcell.KeyHome:
		s.move(caret.Home, shift, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome, Extend: shift})
	case tcell.KeyEnd:
		s.move(caret.End, shift, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd, Extend: shift})
	case tcell.KeyUp:
		eng.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirUp, Extend: shift})
	case tcell.KeyDown:
		eng.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirDown, Extend: shift})
	case tcell.KeyPgUp:
		s.scroll(-s.height())
	case tcell.KeyPgDn:
		s.scroll(s.height())

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if !s.opts.ReadOnly {
			eng.DeleteBackward()
		}
	case tcell.KeyDelete:
		if !s.opts.ReadOnly {
			eng.DeleteForward()
		}
	case tcell.KeyEnter:
		if !s.opts.ReadOnly {
			eng.Newline()
		}
	case tcell.KeyTab:
		if !s.opts.ReadOnly {
			eng.Tab()
		}

	case tcell.KeyCtrlZ:
		if !s.opts.ReadOnly {
			eng.Undo()
		}
	case tcell.KeyCtrlY:
		if !s.opts.ReadOnly {
			eng.Redo()
		}
	case tcell.KeyCtrlC:
		s.copySelection()
	case tcell.KeyCtrlX:
		s.copySelection()
		if !s.opts.ReadOnly && s.opts.Clipboard != nil {
			eng.DeleteSelection()
		}
	case tcell.KeyCtrlV:
		s.pasteClipboard()

	case tcell.KeyCtrlRightSq:
		eng.ToggleFold(eng.Buffer().Cursor().Row)

	case tcell.KeyRune:
		if mods&tcell.ModAlt != 0 || s.opts.ReadOnly {
			return
		}
		eng.InsertText(string(ev.Rune()))
		s.invokeCompletion(false)
	}
}

// move moves every caret when additional carets take typing, else the host
// caret alone.
func (s *Surface) move(dir caret.Direction, extend bool, host buffer.Move) {
	if s.eng.MoveCarets(dir, extend) {
		return
	}
	s.eng.Move(host)
}

// popupKey handles navigation inside a visible popup and reports whether
// the key was consumed.
func (s *Surface) popupKey(ev *tcell.EventKey) bool {
	n := len(s.popup.Candidates)
	switch ev.Key() {
	case tcell.KeyUp:
		s.selected = (s.selected - 1 + n) % n
	case tcell.KeyDown:
		s.selected = (s.selected + 1) % n
	case tcell.KeyEnter, tcell.KeyTab:
		if !s.opts.ReadOnly {
			s.eng.AcceptCompletion(s.popup.Candidates[s.selected])
		}
		s.closePopup()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if s.opts.ReadOnly {
			return true
		}
		s.eng.DeleteBackward()
		s.invokeCompletion(false)
	case tcell.KeyRune:
		return false
	default:
		s.closePopup()
		return false
	}
	return true
}

// invokeCompletion opens or refreshes the popup. A forced request with a
// single candidate is accepted at once when use-single is on.
func (s *Surface) invokeCompletion(force bool) {
	eng := s.eng
	if !force && eng.Completion().Options().Source == completion.SourceNone {
		s.closePopup()
		return
	}
	p := eng.InvokeCompletion(force)
	if p.AutoAccept && !s.opts.ReadOnly {
		eng.AcceptCompletion(p.Candidates[0])
		s.closePopup()
		return
	}
	if !p.Visible || len(p.Candidates) == 0 {
		s.closePopup()
		return
	}
	s.popup = p
	if s.selected >= len(p.Candidates) {
		s.selected = 0
	}
}

func (s *Surface) closePopup() {
	s.popup = completion.Popup{}
	s.selected = 0
}

func (s *Surface) copySelection() {
	if s.opts.Clipboard == nil {
		return
	}
	text := s.eng.SelectedText()
	if text == "" {
		return
	}
	if err := s.opts.Clipboard.WriteText(text); err != nil {
		s.log.Debug("clipboard write failed", logging.FieldError, err)
	}
}

func (s *Surface) pasteClipboard() {
	if s.opts.Clipboard == nil || s.opts.ReadOnly {
		return
	}
	text, err := s.opts.Clipboard.ReadText()
	if err != nil {
		s.log.Debug("clipboard read failed", logging.FieldError, err)
		return
	}
	if text != "" {
		s.eng.Paste(text)
	}
}

func (s *Surface) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	prev := s.buttons
	s.buttons = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	switch {
	case buttons&tcell.WheelUp != 0:
		s.scroll(-scrollStep)
		return
	case buttons&tcell.WheelDown != 0:
		s.scroll(scrollStep)
		return
	}

	pressed := buttons&tcell.Button1 != 0
	wasPressed := prev&tcell.Button1 != 0
	switch {
	case pressed && !wasPressed:
		s.press(x, y, ev.Modifiers())
	case !pressed && wasPressed:
		s.release(x, y)
	default:
		s.motion(x, y)
	}
}

func (s *Surface) pointerAt(x, y int) editor.Pointer {
	w, h := s.scr.Size()
	x = max(0, min(x, w-1))
	y = max(0, min(y, h-1))
	return s.eng.HitTest(x, s.top+y)
}

func (s *Surface) press(x, y int, mods tcell.ModMask) {
	eng := s.eng
	s.closePopup()
	p := s.pointerAt(x, y)
	if p.Line < 0 {
		return
	}
	if p.InMargin {
		if !p.Annotation {
			eng.MarginClick(p.MarginX, p.Line)
		}
		return
	}
	if mods&tcell.ModCtrl != 0 && mods&tcell.ModAlt != 0 && eng.Carets().Options().MultipleSelection {
		eng.ToggleCaretAt(p.Offset)
		return
	}
	if eng.BeginColumnDrag(p.Line, p.Col) {
		return
	}
	if len(eng.Carets().Carets()) > 0 || len(eng.Carets().Ranges()) > 0 {
		eng.ClearCarets()
	}

	b := eng.Buffer()
	pos := b.PosFromOffset(p.Offset)
	if mods&tcell.ModShift != 0 {
		anchor := b.Cursor()
		if raw, ok := b.SelectionRaw(); ok {
			anchor = raw.Start
		}
		s.anchor = anchor
		b.SetCursor(pos)
		b.SetSelection(buffer.Range{Start: anchor, End: pos})
	} else {
		s.anchor = pos
		b.SetCursor(pos)
		b.ClearSelection()
	}
	s.dragging = true
}

func (s *Surface) motion(x, y int) {
	eng := s.eng
	p := s.pointerAt(x, y)
	switch {
	case eng.ColumnDragging():
		eng.UpdateColumnDrag(p.Line, p.Col)
	case s.dragging:
		b := eng.Buffer()
		pos := b.PosFromOffset(p.Offset)
		b.SetCursor(pos)
		b.SetSelection(buffer.Range{Start: s.anchor, End: pos})
	case p.OnText:
		eng.HoverAt(p.Offset)
	default:
		eng.LeaveHover()
	}
}

func (s *Surface) release(x, y int) {
	if s.eng.EndColumnDrag() {
		return
	}
	s.dragging = false
	if p := s.pointerAt(x, y); p.OnText {
		s.eng.ClickAt(p.Offset)
	}
}

func (s *Surface) height() int {
	_, h := s.scr.Size()
	return max(1, h)
}

func (s *Surface) scroll(delta int) {
	maxTop := max(0, s.eng.VisualRowCount()-s.height())
	s.top = max(0, min(s.top+delta, maxTop))
}

// follow scrolls the primary caret's line into view.
func (s *Surface) follow() {
	row := s.eng.RowOfLine(s.eng.Buffer().Cursor().Row)
	h := s.height()
	switch {
	case row < s.top:
		s.top = row
	case row >= s.top+h:
		s.top = row - h + 1
	}
}

var (
	popupStyle    = tcell.StyleDefault.Foreground(Color(editor.TextColor)).Background(tcell.NewRGBColor(0x2b, 0x2f, 0x38))
	popupSelStyle = tcell.StyleDefault.Foreground(Color(editor.TextColor)).Background(Color(editor.SelectionColor))
)

// drawPopup places the popup below the completed word when it fits and
// above it otherwise.
func (s *Surface) drawPopup(w, h int) {
	p := s.popup
	if !p.Visible || len(p.Candidates) == 0 {
		return
	}
	textX, row, ok := s.eng.ScreenOfOffset(p.Start)
	if !ok {
		return
	}
	ax := s.eng.MarginWidth() + textX
	ay := row - s.top
	if ay < 0 || ay >= h {
		return
	}

	rows := min(s.opts.PopupRows, len(p.Candidates))
	below, above := h-ay-1, ay
	y0 := ay + 1
	if rows > below {
		if above > below {
			rows = min(rows, above)
			y0 = ay - rows
		} else {
			rows = below
		}
	}
	if rows <= 0 {
		return
	}

	first := 0
	if s.selected >= rows {
		first = s.selected - rows + 1
	}
	items := p.Candidates[first:min(len(p.Candidates), first+rows)]
	width := 0
	for _, item := range items {
		width = max(width, grapheme.Width(item))
	}
	width = min(width, w)
	x0 := max(0, min(ax, w-width))

	prefix := len([]rune(p.Prefix))
	for i, item := range items {
		st := popupStyle
		if first+i == s.selected {
			st = popupSelStyle
		}
		text := grapheme.Pad(grapheme.Truncate(item, width), width)
		x := x0
		for j, r := range []rune(text) {
			cs := st
			if j < prefix {
				cs = cs.Bold(true)
			}
			s.scr.SetContent(x, y0+i, r, nil, cs)
			x += max(1, grapheme.RuneWidth(r))
		}
	}
}
