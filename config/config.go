// Package config loads editor profiles from YAML and applies them to an
// editor engine.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/compatedit/completion"
	"github.com/iw2rmb/compatedit/margin"
	"github.com/iw2rmb/compatedit/overlay"
	"github.com/iw2rmb/compatedit/paint"
)

// Config is an editor profile. Missing keys keep their Default values.
type Config struct {
	// Lexer is a profile name or language label. Empty leaves detection to
	// the file name.
	Lexer    string `yaml:"lexer,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`

	Indent        IndentConfig     `yaml:"indent"`
	Folding       bool             `yaml:"folding"`
	BraceMatching bool             `yaml:"brace_matching"`
	View          ViewConfig       `yaml:"view"`
	Selection     SelectionConfig  `yaml:"selection"`
	Completion    CompletionConfig `yaml:"completion"`
	Hotspot       HotspotConfig    `yaml:"hotspot"`

	Margins    []MarginConfig    `yaml:"margins,omitempty"`
	Indicators []IndicatorConfig `yaml:"indicators,omitempty"`
	Styles     []StyleConfig     `yaml:"styles,omitempty"`
}

type IndentConfig struct {
	Width   int  `yaml:"width"`
	UseTabs bool `yaml:"use_tabs"`
}

type ViewConfig struct {
	Whitespace   bool `yaml:"whitespace"`
	EOL          bool `yaml:"eol"`
	ControlChars bool `yaml:"control_chars"`
	IndentGuides bool `yaml:"indent_guides"`
	WrapSymbol   bool `yaml:"wrap_symbol"`
	CaretWidth   int  `yaml:"caret_width"`

	CaretLine      bool   `yaml:"caret_line"`
	CaretLineColor string `yaml:"caret_line_color,omitempty"`
}

type SelectionConfig struct {
	Multiple         bool `yaml:"multiple"`
	AdditionalTyping bool `yaml:"additional_typing"`
	MultiPaste       bool `yaml:"multi_paste"`
	ColumnMode       bool `yaml:"column_mode"`
}

type CompletionConfig struct {
	Source        string   `yaml:"source"`
	Threshold     int      `yaml:"threshold"`
	CaseSensitive bool     `yaml:"case_sensitive"`
	UseSingle     bool     `yaml:"use_single"`
	Words         []string `yaml:"words,omitempty"`
}

type HotspotConfig struct {
	Color       string `yaml:"color,omitempty"`
	ActiveColor string `yaml:"active_color,omitempty"`
	Underline   bool   `yaml:"underline"`
}

// MarginConfig overrides one margin. Width -1 sizes a number margin to the
// line-number digits.
type MarginConfig struct {
	Index     int    `yaml:"index"`
	Type      string `yaml:"type,omitempty"`
	Width     *int   `yaml:"width,omitempty"`
	Mask      *int   `yaml:"mask,omitempty"`
	Sensitive *bool  `yaml:"sensitive,omitempty"`
}

type IndicatorConfig struct {
	ID    int    `yaml:"id"`
	Style string `yaml:"style"`
	Color string `yaml:"color,omitempty"`
}

type StyleConfig struct {
	ID        int    `yaml:"id"`
	Fore      string `yaml:"fore,omitempty"`
	Bold      bool   `yaml:"bold"`
	Italic    bool   `yaml:"italic"`
	Underline bool   `yaml:"underline"`
}

var (
	ErrInvalidValue = errors.New("invalid value")
	ErrUnknownName  = errors.New("unknown name")
)

var marginTypes = map[string]margin.Type{
	"symbol": margin.TypeSymbol,
	"number": margin.TypeNumber,
	"back":   margin.TypeBack,
	"fore":   margin.TypeFore,
	"text":   margin.TypeText,
	"rtext":  margin.TypeRText,
	"colour": margin.TypeColour,
	"color":  margin.TypeColour,
}

var indicatorStyles = map[string]overlay.IndicatorStyle{
	"plain":     overlay.IndicatorPlain,
	"squiggle":  overlay.IndicatorSquiggle,
	"tt":        overlay.IndicatorTT,
	"diagonal":  overlay.IndicatorDiagonal,
	"strike":    overlay.IndicatorStrike,
	"hidden":    overlay.IndicatorHidden,
	"box":       overlay.IndicatorBox,
	"roundbox":  overlay.IndicatorRoundBox,
	"round_box": overlay.IndicatorRoundBox,
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Default is the profile an engine starts with.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		Indent:        IndentConfig{Width: 4},
		Folding:       true,
		BraceMatching: true,
		View:          ViewConfig{CaretWidth: 1, CaretLine: true},
		Completion: CompletionConfig{
			Source:    completion.SourceAll.String(),
			Threshold: 1,
			UseSingle: true,
		},
		Hotspot: HotspotConfig{Underline: true},
	}
}

// Load reads and validates the profile at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// FromYAML parses and validates a profile. Keys absent from data keep their
// Default values.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ToYAML serializes the profile.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(field string, v any) {
		errs = append(errs, fmt.Errorf("%s: %w %v", field, ErrInvalidValue, v))
	}
	unknown := func(field, name string) {
		errs = append(errs, fmt.Errorf("%s: %w %q", field, ErrUnknownName, name))
	}
	color := func(field, s string) {
		if s == "" {
			return
		}
		if _, err := paint.Hex(s); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	if c.LogLevel != "" && !logLevels[strings.ToLower(c.LogLevel)] {
		unknown("log_level", c.LogLevel)
	}
	if c.Indent.Width < 1 || c.Indent.Width > 16 {
		invalid("indent.width", c.Indent.Width)
	}
	if c.View.CaretWidth < 0 {
		invalid("view.caret_width", c.View.CaretWidth)
	}
	color("view.caret_line_color", c.View.CaretLineColor)

	if _, ok := completion.ParseSource(c.Completion.Source); !ok {
		unknown("completion.source", c.Completion.Source)
	}
	if c.Completion.Threshold < 0 {
		invalid("completion.threshold", c.Completion.Threshold)
	}

	color("hotspot.color", c.Hotspot.Color)
	color("hotspot.active_color", c.Hotspot.ActiveColor)

	for i, m := range c.Margins {
		field := fmt.Sprintf("margins[%d]", i)
		if m.Index < 0 || m.Index > 2 {
			invalid(field+".index", m.Index)
		}
		if _, ok := marginTypes[strings.ToLower(m.Type)]; m.Type != "" && !ok {
			unknown(field+".type", m.Type)
		}
		if m.Width != nil && *m.Width < margin.Dynamic {
			invalid(field+".width", *m.Width)
		}
	}
	for i, ind := range c.Indicators {
		field := fmt.Sprintf("indicators[%d]", i)
		if ind.ID < 0 {
			invalid(field+".id", ind.ID)
		}
		if _, ok := indicatorStyles[strings.ToLower(ind.Style)]; !ok {
			unknown(field+".style", ind.Style)
		}
		color(field+".color", ind.Color)
	}
	for i, st := range c.Styles {
		field := fmt.Sprintf("styles[%d]", i)
		if st.ID < 0 {
			invalid(field+".id", st.ID)
		}
		color(field+".fore", st.Fore)
	}
	return errors.Join(errs...)
}
