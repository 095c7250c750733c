package command

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/iw2rmb/compatedit/margin"
	"github.com/iw2rmb/compatedit/overlay"
	"github.com/iw2rmb/compatedit/paint"
)

type entry struct {
	arity  int
	decode func(a *args) Command
}

// table is keyed by normalized name.
var table = map[string]entry{
	"HIDELINES": {2, func(a *args) Command {
		return HideLines{Start: a.int(0), End: a.int(1)}
	}},
	"SHOWLINES": {2, func(a *args) Command {
		return ShowLines{Start: a.int(0), End: a.int(1)}
	}},
	"FOLDALL": {1, func(a *args) Command {
		return FoldAll{Expand: a.bool(0)}
	}},
	"FOLDLINE": {2, func(a *args) Command {
		return FoldLine{Line: a.int(0), Expand: a.bool(1)}
	}},
	"FOLDLEVEL": {2, func(a *args) Command {
		return FoldLevel{Level: a.int(0), Expand: a.bool(1)}
	}},
	"SETSELECTIONMODE": {1, func(a *args) Command {
		return SetSelectionMode{Mode: a.int(0)}
	}},
	"SETMULTIPLESELECTION": {1, func(a *args) Command {
		return SetMultipleSelection{Enabled: a.bool(0)}
	}},
	"SETADDITIONALSELECTIONTYPING": {1, func(a *args) Command {
		return SetAdditionalSelectionTyping{Enabled: a.bool(0)}
	}},
	"SETMULTIPASTE": {1, func(a *args) Command {
		return SetMultiPaste{Enabled: a.bool(0)}
	}},
	"SETVIEWWS": {1, func(a *args) Command {
		return SetViewWS{Visible: a.bool(0)}
	}},
	"SETVIEWEOL": {1, func(a *args) Command {
		return SetViewEOL{Visible: a.bool(0)}
	}},
	"SETCONTROLCHARSYMBOL": {1, func(a *args) Command {
		return SetControlCharSymbol{Visible: a.bool(0)}
	}},
	"SETINDENTATIONGUIDES": {1, func(a *args) Command {
		return SetIndentationGuides{Visible: a.bool(0)}
	}},
	"SETWRAPVISUALFLAGS": {1, func(a *args) Command {
		return SetWrapVisualFlags{Visible: a.bool(0)}
	}},
	"SETCARETWIDTH": {1, func(a *args) Command {
		return SetCaretWidth{Width: a.int(0)}
	}},
	"SETCARETLINEVISIBLE": {1, func(a *args) Command {
		return SetCaretLineVisible{Visible: a.bool(0)}
	}},
	"SETMARGINLEFT": {1, func(a *args) Command {
		return SetMarginLeft{Width: a.int(0)}
	}},
	"SETMARGINRIGHT": {1, func(a *args) Command {
		return SetMarginRight{Width: a.int(0)}
	}},
	"SETMARGINSENSITIVEN": {2, func(a *args) Command {
		return SetMarginSensitive{Margin: a.int(0), Sensitive: a.bool(1)}
	}},
	"SETMARGINTYPEN": {2, func(a *args) Command {
		return SetMarginType{Margin: a.int(0), Type: margin.Type(a.int(1))}
	}},
	"SETMARGINWIDTHN": {2, func(a *args) Command {
		return SetMarginWidth{Margin: a.int(0), Width: a.int(1)}
	}},
	"SETMARGINMASKN": {2, func(a *args) Command {
		return SetMarginMask{Margin: a.int(0), Mask: a.int(1)}
	}},
	"SETINDICATORCURRENT": {1, func(a *args) Command {
		return SetIndicatorCurrent{Indicator: a.int(0)}
	}},
	"SETINDICATORVALUE": {1, func(a *args) Command {
		return SetIndicatorValue{Value: a.int(0)}
	}},
	"INDICSETSTYLE": {2, func(a *args) Command {
		return IndicSetStyle{Indicator: a.int(0), Style: overlay.IndicatorStyle(a.int(1))}
	}},
	"INDICSETFORE": {2, func(a *args) Command {
		return IndicSetFore{Indicator: a.int(0), Color: a.color(1)}
	}},
	"INDICATORFILLRANGE": {2, func(a *args) Command {
		return IndicatorFillRange{Pos: a.int(0), Length: a.int(1)}
	}},
	"INDICATORCLEARRANGE": {2, func(a *args) Command {
		return IndicatorClearRange{Pos: a.int(0), Length: a.int(1)}
	}},
	"CLEARALLINDICATORS": {0, func(a *args) Command {
		return ClearAllIndicators{}
	}},
	"SETHOTSPOTACTIVEFORE": {2, func(a *args) Command {
		return SetHotspotActiveFore{Color: a.color(1)}
	}},
	"SETHOTSPOTACTIVEUNDERLINE": {1, func(a *args) Command {
		return SetHotspotActiveUnderline{Underline: a.bool(0)}
	}},
	"STYLESETFORE": {2, func(a *args) Command {
		return StyleSetFore{Style: a.int(0), Color: a.color(1)}
	}},
	"STYLESETBOLD": {2, func(a *args) Command {
		return StyleSetBold{Style: a.int(0), Bold: a.bool(1)}
	}},
	"STYLESETITALIC": {2, func(a *args) Command {
		return StyleSetItalic{Style: a.int(0), Italic: a.bool(1)}
	}},
	"STYLESETUNDERLINE": {2, func(a *args) Command {
		return StyleSetUnderline{Style: a.int(0), Underline: a.bool(1)}
	}},
	"STARTSTYLING": {1, func(a *args) Command {
		return StartStyling{Pos: a.int(0)}
	}},
	"SETSTYLING": {2, func(a *args) Command {
		return SetStyling{Length: a.int(0), Style: a.int(1)}
	}},
	"BRACEHIGHLIGHT": {2, func(a *args) Command {
		return BraceHighlight{A: a.int(0), B: a.int(1)}
	}},
	"BRACEBADLIGHT": {1, func(a *args) Command {
		return BraceBadLight{Pos: a.int(0)}
	}},
	"MARKERDEFINE": {2, func(a *args) Command {
		return MarkerDefine{Marker: a.int(0), Symbol: margin.Symbol(a.int(1))}
	}},
	"MARKERADD": {2, func(a *args) Command {
		return MarkerAdd{Line: a.int(0), Marker: a.int(1)}
	}},
	"MARKERDELETE": {2, func(a *args) Command {
		return MarkerDelete{Line: a.int(0), Marker: a.int(1)}
	}},
	"MARKERDELETEALL": {1, func(a *args) Command {
		return MarkerDeleteAll{Marker: a.int(0)}
	}},
	"ANNOTATIONSETTEXT": {2, func(a *args) Command {
		return AnnotationSetText{Line: a.int(0), Text: a.text(1)}
	}},
	"ANNOTATIONCLEARALL": {0, func(a *args) Command {
		return AnnotationClearAll{}
	}},
}

// aliases maps the short protocol spellings onto table keys.
var aliases = map[string]string{
	"SETMARGINWIDTH":        "SETMARGINWIDTHN",
	"SETMARGINTYPE":         "SETMARGINTYPEN",
	"SETMARGINSENSITIVE":    "SETMARGINSENSITIVEN",
	"SETMARGINMASK":         "SETMARGINMASKN",
	"SETINDICATORSTYLE":     "INDICSETSTYLE",
	"SETINDICATORCOLOR":     "INDICSETFORE",
	"FILLINDICATORRANGE":    "INDICATORFILLRANGE",
	"CLEARINDICATORRANGE":   "INDICATORCLEARRANGE",
	"SETVIEWWHITESPACE":     "SETVIEWWS",
	"SETHOTSPOTCOLOR":       "SETHOTSPOTACTIVEFORE",
	"SETHOTSPOTUNDERLINE":   "SETHOTSPOTACTIVEUNDERLINE",
	"SETCONTROLCHARSYMBOLS": "SETCONTROLCHARSYMBOL",
}

// Normalize folds a command name to its table key.
func Normalize(name string) string {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "", "_", "").Replace(n)
	n = strings.TrimPrefix(n, "SCI")
	if target, ok := aliases[n]; ok {
		return target
	}
	return n
}

// Known reports whether name decodes to a command.
func Known(name string) bool {
	_, ok := table[Normalize(name)]
	return ok
}

// Names returns the table keys, sorted.
func Names() []string {
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Decode turns a protocol call into a typed command.
func Decode(name string, argv ...any) (Command, error) {
	e, ok := table[Normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(argv) < e.arity {
		return nil, fmt.Errorf("%w: %s wants %d, got %d", ErrArity, Normalize(name), e.arity, len(argv))
	}
	a := &args{v: argv}
	c := e.decode(a)
	if a.err != nil {
		return nil, fmt.Errorf("%s: %w", Normalize(name), a.err)
	}
	return c, nil
}

// args coerces positional values; the first failure sticks in err.
type args struct {
	v   []any
	err error
}

func (a *args) fail(i int, want string) {
	if a.err == nil {
		a.err = fmt.Errorf("%w: arg %d: want %s, got %T", ErrArgType, i, want, a.v[i])
	}
}

func (a *args) int(i int) int {
	n, ok := toInt(a.v[i])
	if !ok {
		a.fail(i, "int")
	}
	return n
}

func (a *args) bool(i int) bool {
	if b, ok := a.v[i].(bool); ok {
		return b
	}
	if s, ok := a.v[i].(string); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b
		}
	}
	n, ok := toInt(a.v[i])
	if !ok {
		a.fail(i, "bool")
	}
	return n != 0
}

// color reads a 0xBBGGRR integer or a "#rrggbb" string.
func (a *args) color(i int) paint.Color {
	if s, ok := a.v[i].(string); ok && strings.HasPrefix(strings.TrimSpace(s), "#") {
		c, err := paint.Hex(strings.TrimSpace(s))
		if err != nil {
			a.fail(i, "color")
		}
		return c
	}
	if c, ok := a.v[i].(paint.Color); ok {
		return c
	}
	return paint.FromBGR(a.int(i))
}

func (a *args) text(i int) string {
	switch v := a.v[i].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		a.fail(i, "string")
		return ""
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return floatInt(float64(n))
	case float64:
		return floatInt(n)
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return int(i), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func floatInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
