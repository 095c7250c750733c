package editor

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/iw2rmb/compatedit/buffer"
	"github.com/iw2rmb/compatedit/caret"
	"github.com/iw2rmb/compatedit/completion"
	"github.com/iw2rmb/compatedit/fold"
	"github.com/iw2rmb/compatedit/internal/logging"
	"github.com/iw2rmb/compatedit/lexer"
	"github.com/iw2rmb/compatedit/margin"
	"github.com/iw2rmb/compatedit/overlay"
)

// ViewFlags are the display toggles of one view.
type ViewFlags struct {
	Whitespace   bool
	EOL          bool
	ControlChars bool
	IndentGuides bool
	WrapSymbol   bool
}

// Engine owns one document and every engine that decorates it. Nothing is
// shared between engines.
type Engine struct {
	id  string
	buf *buffer.Buffer

	folds      *fold.Engine
	lexers     *lexer.Registry
	tokenizer  lexer.Tokenizer
	overlays   *overlay.Registry
	carets     *caret.Engine
	margins    *margin.Renderer
	completion *completion.Engine

	view       ViewFlags
	caretWidth int
	tabWidth   int
	useTabs    bool
	braceMatch bool

	hooks  Hooks
	logger *log.Logger

	lastVersion     uint64
	lastTextVersion uint64
	lastCursor      buffer.Pos
	notify          bool
}

// NewEngine builds an engine over cfg.Text and runs the rebuild pipeline
// once.
func NewEngine(cfg Config) *Engine {
	cfg = normalizeConfig(cfg)

	e := &Engine{
		id:         cfg.DocID,
		buf:        buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		lexers:     lexer.Builtin(),
		overlays:   overlay.New(),
		margins:    margin.New(cfg.Margins),
		completion: completion.New(cfg.Completion),
		caretWidth: 1,
		tabWidth:   cfg.TabWidth,
		useTabs:    cfg.UseTabs,
		braceMatch: !cfg.DisableBraceMatch,
		hooks:      cfg.Hooks,
	}
	if e.id == "" {
		e.id = uuid.NewString()
	}

	foldOpt := fold.DefaultOptions()
	foldOpt.IndentWidth = cfg.TabWidth
	foldOpt.Enabled = !cfg.DisableFolding
	e.folds = fold.New(foldOpt)

	caretOpt := caret.DefaultOptions()
	caretOpt.IndentWidth = cfg.TabWidth
	caretOpt.UseTabs = cfg.UseTabs
	e.carets = caret.New(e.buf, caretOpt)

	e.overlays.EnsureDefaultStyles()

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	e.SetLogger(logger)

	switch {
	case cfg.Lexer != "":
		e.tokenizer = e.resolveLexer(cfg.Lexer)
	case cfg.Filename != "":
		e.tokenizer = e.lexers.Resolve(lexer.DetectFile(cfg.Filename, []byte(cfg.Text)))
	default:
		e.tokenizer = e.lexers.Resolve(lexer.Plain)
	}

	e.rebuild()
	e.lastVersion = e.buf.Version()
	e.lastCursor = e.buf.Cursor()
	e.notify = true
	return e
}

func (e *Engine) ID() string { return e.id }

func (e *Engine) Buffer() *buffer.Buffer { return e.buf }

func (e *Engine) Folds() *fold.Engine { return e.folds }

func (e *Engine) Overlays() *overlay.Registry { return e.overlays }

func (e *Engine) Carets() *caret.Engine { return e.carets }

func (e *Engine) Margins() *margin.Renderer { return e.margins }

func (e *Engine) Completion() *completion.Engine { return e.completion }

func (e *Engine) Lexers() *lexer.Registry { return e.lexers }

func (e *Engine) Logger() *log.Logger { return e.logger }

// SetLogger installs l on the engine and every sub-engine that logs. The
// document id is attached to every record.
func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	e.logger = l.With(logging.FieldDoc, e.id)
	e.carets.SetLogger(e.logger)
	e.margins.SetLogger(e.logger)
	e.completion.SetLogger(e.logger)
}

func (e *Engine) SetHooks(h Hooks) { e.hooks = h }

func (e *Engine) Hooks() Hooks { return e.hooks }

func (e *Engine) Text() string { return e.buf.Text() }

// SetText replaces the document and runs the pipeline.
func (e *Engine) SetText(text string) {
	e.carets.ClearAll()
	e.buf.SetText(text)
	e.Sync()
}

// Sync runs the rebuild pipeline when the buffer text moved since the last
// run, matches braces when the caret moved, and emits OnChange for any
// version change. Edits made on Buffer() directly are picked up here. It
// reports whether anything changed.
func (e *Engine) Sync() bool {
	ver := e.buf.Version()
	cur := e.buf.Cursor()
	textChanged := e.buf.TextVersion() != e.lastTextVersion
	cursorChanged := cur != e.lastCursor
	if ver == e.lastVersion && !textChanged && !cursorChanged {
		return false
	}
	e.lastVersion = ver
	e.lastCursor = cur

	if textChanged {
		e.rebaseCarets()
		e.rebuild()
	} else if cursorChanged {
		e.matchBraces()
		e.repaint()
	}
	if e.notify && e.hooks.OnChange != nil {
		e.hooks.OnChange(buildChangeEvent(e.id, e.buf, e.carets.Carets()))
	}
	return true
}

// rebaseCarets keeps the additional carets valid after a text change the
// caret engine did not make. One change since the last run is mapped
// through its edits; more than one cannot be, and the carets are dropped.
func (e *Engine) rebaseCarets() {
	if e.carets.ClaimEdit() {
		return
	}
	c, ok := e.buf.LastChange()
	if !ok || e.buf.TextVersion() != e.lastTextVersion+1 {
		e.carets.ClearAll()
		return
	}
	e.carets.Rebase(c)
}

// rebuild is the text-change pipeline: fold regions, lexer spans, then the
// overlays that depend on text, then a repaint.
func (e *Engine) rebuild() {
	text := e.buf.Text()
	e.lastTextVersion = e.buf.TextVersion()

	e.folds.Rebuild(text)
	e.relex(text)
	e.completion.Refresh(text)
	e.matchBraces()

	e.logger.Debug("rebuild",
		logging.FieldVersion, e.lastTextVersion,
		logging.FieldLines, e.buf.LineCount(),
		logging.FieldRegions, len(e.folds.Regions()),
		logging.FieldSpans, len(e.overlays.LexerSpans()),
	)
	e.repaint()
}

func (e *Engine) relex(text string) {
	if e.tokenizer == nil {
		e.overlays.SetLexerSpans(nil)
		return
	}
	e.overlays.SetLexerSpans(e.tokenizer.Tokenize(text))
}

func (e *Engine) matchBraces() {
	if !e.braceMatch {
		return
	}
	pair, ok := overlay.FindBracePair([]rune(e.buf.Text()), e.CaretOffset())
	if !ok {
		e.overlays.ClearBraceMatch()
		return
	}
	e.overlays.HighlightBraceMatch(pair.A, pair.B)
}

func (e *Engine) repaint() {
	if e.hooks.OnRepaint != nil {
		e.hooks.OnRepaint()
	}
}

// CaretOffset is the rune offset of the primary caret.
func (e *Engine) CaretOffset() int { return e.buf.OffsetFromPos(e.buf.Cursor()) }

// SetCaretOffset moves the primary caret and clears the selection.
func (e *Engine) SetCaretOffset(off int) {
	e.buf.ClearSelection()
	e.buf.SetCursor(e.buf.PosFromOffset(off))
	e.Sync()
}

func (e *Engine) View() ViewFlags { return e.view }

func (e *Engine) CaretWidth() int { return e.caretWidth }

func (e *Engine) TabWidth() int { return e.tabWidth }

func (e *Engine) UseTabs() bool { return e.useTabs }

// SetIndentation sets the tab width used for layout, folding and Tab
// insertion.
func (e *Engine) SetIndentation(width int, useTabs bool) {
	if width < 1 {
		width = 1
	}
	e.tabWidth = width
	e.useTabs = useTabs
	e.carets.SetIndentation(width, useTabs)
	e.folds.SetIndentWidth(width)
	e.folds.Rebuild(e.buf.Text())
	e.repaint()
}

func (e *Engine) SetFolding(enabled bool) {
	e.folds.SetEnabled(enabled)
	e.folds.Rebuild(e.buf.Text())
	e.repaint()
}

func (e *Engine) SetBraceMatching(enabled bool) {
	e.braceMatch = enabled
	if !enabled {
		e.overlays.ClearBraceMatch()
	} else {
		e.matchBraces()
	}
	e.repaint()
}

// LexerName is the name of the active tokenizer.
func (e *Engine) LexerName() string {
	if e.tokenizer == nil {
		return ""
	}
	return e.tokenizer.Name()
}

// SetLexer selects a profile by name or free-form label and relexes.
func (e *Engine) SetLexer(name string) {
	e.tokenizer = e.resolveLexer(name)
	e.logger.Debug("lexer", logging.FieldLexer, e.tokenizer.Name())
	e.relex(e.buf.Text())
	e.repaint()
}

// SetLexerForFile picks the profile from a file name and the current text.
func (e *Engine) SetLexerForFile(filename string) {
	e.SetLexer(lexer.DetectFile(filename, []byte(e.buf.Text())))
}

// RegisterLexer adds t to this engine's profiles.
func (e *Engine) RegisterLexer(t lexer.Tokenizer) { e.lexers.Register(t) }

func (e *Engine) resolveLexer(name string) lexer.Tokenizer {
	if t, ok := e.lexers.Lookup(name); ok {
		return t
	}
	if detected := lexer.Detect(name); detected != lexer.Plain {
		return e.lexers.Resolve(detected)
	}
	return e.lexers.Resolve(name)
}
