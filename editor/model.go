package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/compatedit/buffer"
	"github.com/iw2rmb/compatedit/completion"
)

// Model is a Bubble Tea component that renders and interacts with an
// Engine.
type Model struct {
	cfg Config
	eng *Engine

	focused bool

	viewport viewport.Model

	popup         completion.Popup
	popupSelected int

	mouseDragging bool
	mouseAnchor   buffer.Pos

	lastCursor buffer.Pos
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	return NewWithEngine(cfg, NewEngine(cfg))
}

// NewWithEngine wraps an existing engine, for hosts that configure it
// before the UI starts.
func NewWithEngine(cfg Config, eng *Engine) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		eng:      eng,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastCursor = eng.Buffer().Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Engine() *Engine { return m.eng }

func (m Model) Buffer() *buffer.Buffer { return m.eng.Buffer() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.popup = completion.Popup{}
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Popup returns the completion popup state.
func (m Model) Popup() (completion.Popup, int) { return m.popup, m.popupSelected }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd := m.updateKey(msg)
		m.refresh()
		return m, cmd
	case tea.MouseMsg:
		m, cmd := m.updateMouse(msg)
		m.refresh()
		return m, cmd
	default:
		// Hosts may drive edits by mutating the buffer or calling the engine.
		m.refresh()
		return m, nil
	}
}

func (m Model) View() string {
	base := m.viewport.View()
	if out, ok := m.completionPopupRender(base); ok {
		return out.View
	}
	return base
}

// refresh syncs the engine, rebuilds the content and keeps the cursor in
// view when it moved.
func (m *Model) refresh() {
	m.eng.Sync()
	b := m.eng.Buffer()
	cursorMoved := b.Cursor() != m.lastCursor
	m.lastCursor = b.Cursor()
	m.rebuildContent()
	if cursorMoved {
		m.followCursor()
	}
}

func (m *Model) rebuildContent() {
	width := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	f := m.eng.Frame(0, m.eng.VisualRowCount(), max(0, width))
	m.viewport.SetContent(renderFrame(f, *m.cfg.Style, m.focused))
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := m.eng.RowOfLine(m.eng.Buffer().Cursor().Row)

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
