package paint

// Layer orders paint spans; later layers paint over earlier ones.
type Layer uint8

const (
	LayerCaretLine Layer = iota
	LayerStyle
	LayerIndicator
	LayerHotspot
)

func (l Layer) String() string {
	switch l {
	case LayerCaretLine:
		return "caret-line"
	case LayerStyle:
		return "style"
	case LayerIndicator:
		return "indicator"
	case LayerHotspot:
		return "hotspot"
	default:
		return "unknown"
	}
}

// StyleSpan tags the rune offsets [Start, End) with a style id.
type StyleSpan struct {
	Start int
	End   int
	Style int
}

// Span is one entry of a paint list over rune offsets [Start, End).
// FullWidth spans also paint the row past the end of the text.
type Span struct {
	Start     int
	End       int
	Layer     Layer
	Format    Format
	FullWidth bool
}

func (s Span) Contains(off int) bool {
	return off >= s.Start && off < s.End
}

// Resolve layers every span covering off over base, in list order.
func Resolve(spans []Span, off int, base Format) Format {
	out := base
	for _, s := range spans {
		if s.Contains(off) {
			out = s.Format.Over(out)
		}
	}
	return out
}

// ResolveTail layers the full-width spans that reach the end of a row.
// rowEnd is the offset of the row's line break (or document end).
func ResolveTail(spans []Span, rowEnd int, base Format) Format {
	out := base
	for _, s := range spans {
		if s.FullWidth && rowEnd >= s.Start && rowEnd <= s.End {
			out = s.Format.Over(out)
		}
	}
	return out
}
