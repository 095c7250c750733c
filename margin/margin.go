package margin

import (
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/iw2rmb/compatedit/internal/logging"
)

// Type is the legacy margin type.
type Type int

const (
	TypeSymbol Type = iota
	TypeNumber
	TypeBack
	TypeFore
	TypeText
	TypeRText
	TypeColour
)

// Kind is what a segment draws.
type Kind uint8

const (
	KindSymbol Kind = iota
	KindNumber
	KindFold
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindFold:
		return "fold"
	case KindText:
		return "text"
	default:
		return "symbol"
	}
}

// MaskAll accepts every marker.
const MaskAll = -1

// Dynamic as a margin width sizes the margin to the line-number digits.
const Dynamic = -1

// margins is the number of addressable margins.
const margins = 3

type Options struct {
	Types  map[int]Type
	Widths map[int]int
	Masks  map[int]int

	LeftPadding  int
	RightPadding int

	// NumberPadding is added to the digit run of a dynamic margin.
	NumberPadding int
	// DigitWidth is the advance of one digit.
	DigitWidth int
	// MinDigits is the smallest digit count a dynamic margin reserves.
	MinDigits int
}

// LegacyOptions returns the pixel defaults of the legacy widget.
func LegacyOptions() Options {
	return Options{
		Types:         map[int]Type{0: TypeSymbol, 1: TypeSymbol, 2: TypeNumber},
		Widths:        map[int]int{0: 14, 1: 14, 2: Dynamic},
		Masks:         map[int]int{0: MaskAll},
		LeftPadding:   8,
		RightPadding:  4,
		NumberPadding: 8,
		DigitWidth:    8,
		MinDigits:     2,
	}
}

// CellOptions returns terminal cell defaults.
func CellOptions() Options {
	return Options{
		Types:         map[int]Type{0: TypeSymbol, 1: TypeSymbol, 2: TypeNumber},
		Widths:        map[int]int{0: 2, 1: 2, 2: Dynamic},
		Masks:         map[int]int{0: MaskAll},
		LeftPadding:   0,
		RightPadding:  1,
		NumberPadding: 1,
		DigitWidth:    1,
		MinDigits:     2,
	}
}

// Renderer holds margin configuration and markers for one view.
type Renderer struct {
	types     map[int]Type
	widths    map[int]int
	masks     map[int]int
	sensitive map[int]bool

	left, right   int
	numberPadding int
	digitWidth    int
	minDigits     int

	markers markerTable
	logger  *log.Logger
}

func New(opt Options) *Renderer {
	r := &Renderer{
		types:         copyMap(opt.Types),
		widths:        copyMap(opt.Widths),
		masks:         copyMap(opt.Masks),
		sensitive:     make(map[int]bool),
		left:          max(0, opt.LeftPadding),
		right:         max(0, opt.RightPadding),
		numberPadding: max(0, opt.NumberPadding),
		digitWidth:    max(1, opt.DigitWidth),
		minDigits:     max(1, opt.MinDigits),
		markers:       newMarkerTable(),
		logger:        logging.Discard(),
	}
	return r
}

func (r *Renderer) SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	r.logger = l
}

func (r *Renderer) SetType(margin int, t Type) { r.types[margin] = t }

func (r *Renderer) SetWidth(margin, width int) { r.widths[margin] = width }

func (r *Renderer) SetSensitive(margin int, v bool) { r.sensitive[margin] = v }

func (r *Renderer) SetMask(margin, mask int) { r.masks[margin] = mask }

func (r *Renderer) SetLeft(w int) { r.left = max(0, w) }

func (r *Renderer) SetRight(w int) { r.right = max(0, w) }

func (r *Renderer) Type(margin int) Type { return r.types[margin] }

func (r *Renderer) Width(margin int) int { return r.widths[margin] }

func (r *Renderer) Sensitive(margin int) bool { return r.sensitive[margin] }

// Mask returns the marker mask of margin; unset masks accept every marker.
func (r *Renderer) Mask(margin int) int {
	if m, ok := r.masks[margin]; ok {
		return m
	}
	return MaskAll
}

func (r *Renderer) Padding() (left, right int) { return r.left, r.right }

// Segment is one margin's horizontal slot.
type Segment struct {
	Margin int
	Kind   Kind
	X      int
	Width  int
}

// Contains reports whether x falls inside the segment.
func (s Segment) Contains(x int) bool { return x >= s.X && x < s.X+s.Width }

// Digits returns the digit count a dynamic number margin reserves.
func (r *Renderer) Digits(lineCount int) int {
	return max(r.minDigits, len(strconv.Itoa(max(1, lineCount))))
}

// DynamicWidth is the width a Dynamic margin resolves to for lineCount.
func (r *Renderer) DynamicWidth(lineCount int) int {
	return r.numberPadding + r.Digits(lineCount)*r.digitWidth
}

// Segments lays out margins 0..2 left to right after the left padding.
// Zero-width margins are skipped.
func (r *Renderer) Segments(lineCount int) []Segment {
	out := make([]Segment, 0, margins)
	x := r.left
	for idx := 0; idx < margins; idx++ {
		w := r.resolvedWidth(idx, lineCount)
		if w <= 0 {
			continue
		}
		out = append(out, Segment{Margin: idx, Kind: r.kind(idx), X: x, Width: w})
		x += w
	}
	return out
}

// TotalWidth is the full margin strip width including paddings.
func (r *Renderer) TotalWidth(lineCount int) int {
	w := r.left + r.right
	for _, s := range r.Segments(lineCount) {
		w += s.Width
	}
	return w
}

// SegmentAt returns the segment under x.
func (r *Renderer) SegmentAt(x, lineCount int) (Segment, bool) {
	for _, s := range r.Segments(lineCount) {
		if s.Contains(x) {
			return s, true
		}
	}
	return Segment{}, false
}

func (r *Renderer) resolvedWidth(idx, lineCount int) int {
	raw := r.widths[idx]
	if raw < 0 {
		return r.DynamicWidth(lineCount)
	}
	return raw
}

func (r *Renderer) kind(idx int) Kind {
	if idx == 0 {
		return KindFold
	}
	switch r.types[idx] {
	case TypeNumber:
		return KindNumber
	case TypeText, TypeRText:
		return KindText
	default:
		return KindSymbol
	}
}

func copyMap[V any](in map[int]V) map[int]V {
	out := make(map[int]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
