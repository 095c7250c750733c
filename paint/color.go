// Package paint holds the visual vocabulary shared by overlays, margins and
// rendering surfaces: colors, character formats and layered paint spans.
package paint

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color. The zero value is "no color".
type Color struct {
	c  colorful.Color
	ok bool
}

// RGB builds a color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{c: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, ok: true}
}

// Hex parses "#rrggbb" (or "#rgb").
func Hex(s string) (Color, error) {
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{c: c, ok: true}, nil
}

// MustHex is Hex for constants; it panics on malformed input.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromBGR decodes the legacy protocol packing 0xBBGGRR.
func FromBGR(v int) Color {
	return RGB(uint8(v&0xff), uint8((v>>8)&0xff), uint8((v>>16)&0xff))
}

func (c Color) Valid() bool { return c.ok }

// Hex returns "#rrggbb", or "" for the zero color.
func (c Color) Hex() string {
	if !c.ok {
		return ""
	}
	return c.c.Clamped().Hex()
}

func (c Color) RGB255() (r, g, b uint8) {
	return c.c.Clamped().RGB255()
}

// BGR packs the color as 0xBBGGRR.
func (c Color) BGR() int {
	r, g, b := c.RGB255()
	return int(r) | int(g)<<8 | int(b)<<16
}

// Lighter scales the HSV value by pct/100. Values that overflow spill into
// lower saturation, so lighter(130) of a saturated color moves toward white.
func (c Color) Lighter(pct int) Color {
	if !c.ok || pct <= 0 {
		return c
	}
	if pct < 100 {
		return c.Darker(10000 / pct)
	}
	h, s, v := c.c.Clamped().Hsv()
	v = v * float64(pct) / 100
	if v > 1 {
		s -= v - 1
		if s < 0 {
			s = 0
		}
		v = 1
	}
	return Color{c: colorful.Hsv(h, s, v), ok: true}
}

// Darker divides the HSV value by pct/100.
func (c Color) Darker(pct int) Color {
	if !c.ok || pct <= 0 {
		return c
	}
	if pct < 100 {
		return c.Lighter(10000 / pct)
	}
	h, s, v := c.c.Clamped().Hsv()
	return Color{c: colorful.Hsv(h, s, v*100/float64(pct)), ok: true}
}

// Blend paints over on top of c with alpha/255 opacity.
func (c Color) Blend(over Color, alpha uint8) Color {
	switch {
	case !over.ok:
		return c
	case !c.ok || alpha == 255:
		return over
	}
	return Color{c: c.c.BlendRgb(over.c, float64(alpha)/255).Clamped(), ok: true}
}

func (c Color) String() string {
	if !c.ok {
		return "none"
	}
	return c.Hex()
}
