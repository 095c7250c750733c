package paint

// UnderlineStyle selects how an underline is drawn.
type UnderlineStyle uint8

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineWave
	UnderlineDotted
	UnderlineDashed
)

// Format is a character format. Zero fields mean "inherit".
type Format struct {
	Fg Color
	Bg Color
	// BgAlpha is the opacity of Bg over the format below it; 0 means opaque.
	BgAlpha        uint8
	Bold           bool
	Italic         bool
	Underline      UnderlineStyle
	UnderlineColor Color
	Strike         bool
}

func (f Format) IsZero() bool { return f == Format{} }

// Over layers f on top of base. Set attributes of f win; a translucent
// background is blended into base's background.
func (f Format) Over(base Format) Format {
	out := base
	if f.Fg.Valid() {
		out.Fg = f.Fg
	}
	if f.Bg.Valid() {
		if f.BgAlpha != 0 && base.Bg.Valid() {
			out.Bg = base.Bg.Blend(f.Bg, f.BgAlpha)
		} else {
			out.Bg = f.Bg
		}
		out.BgAlpha = 0
	}
	out.Bold = out.Bold || f.Bold
	out.Italic = out.Italic || f.Italic
	if f.Underline != UnderlineNone {
		out.Underline = f.Underline
		out.UnderlineColor = f.UnderlineColor
	}
	out.Strike = out.Strike || f.Strike
	return out
}
