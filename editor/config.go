package editor

import (
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/compatedit/completion"
	"github.com/iw2rmb/compatedit/margin"
)

// Config configures an Engine and the Model around it.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// DocID identifies the document in logs and change events. Empty means a
	// fresh UUID.
	DocID string

	// Lexer is a profile name or a language label. When empty, Filename is
	// used for detection.
	Lexer    string
	Filename string

	TabWidth int
	UseTabs  bool

	DisableFolding bool
	// DisableBraceMatch turns off brace matching at the caret.
	DisableBraceMatch bool

	// Zero values select completion.DefaultOptions and margin.CellOptions.
	Completion completion.Options
	Margins    margin.Options

	// Forwarded to buffer.Options.
	HistoryLimit int

	// Logger receives debug logs. Nil means logging.Default.
	Logger *log.Logger

	Hooks Hooks

	// Model-only options.
	ReadOnly bool
	// Style nil means DefaultStyle.
	Style                    *Style
	KeyMap                   KeyMap
	Clipboard                Clipboard
	CompletionMaxVisibleRows int
	CompletionMaxWidth       int
}

const (
	defaultTabWidth                 = 4
	defaultCompletionMaxVisibleRows = 8
	defaultCompletionMaxWidth       = 40
)

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if cfg.Completion == (completion.Options{}) {
		cfg.Completion = completion.DefaultOptions()
	}
	if cfg.Margins.Widths == nil && cfg.Margins.Types == nil {
		cfg.Margins = margin.CellOptions()
	}
	if cfg.CompletionMaxVisibleRows <= 0 {
		cfg.CompletionMaxVisibleRows = defaultCompletionMaxVisibleRows
	}
	if cfg.CompletionMaxWidth <= 0 {
		cfg.CompletionMaxWidth = defaultCompletionMaxWidth
	}
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Style == nil {
		st := DefaultStyle()
		cfg.Style = &st
	}
	return cfg
}
