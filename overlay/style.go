package overlay

import "github.com/iw2rmb/compatedit/paint"

// Style ids produced by the built-in lexer profiles.
const (
	StyleKeyword = 1
	StyleComment = 2
	StyleString  = 3
	StyleNumber  = 4
	StyleHeading = 5
)

// DefaultStyles are installed by EnsureDefaultStyles for ids that have no
// format yet.
var DefaultStyles = map[int]paint.Format{
	StyleKeyword: {Fg: paint.MustHex("#b96ad9"), Bold: true},
	StyleComment: {Fg: paint.MustHex("#7a828f"), Italic: true},
	StyleString:  {Fg: paint.MustHex("#6fb1ff")},
	StyleNumber:  {Fg: paint.MustHex("#f2c879")},
	StyleHeading: {Fg: paint.MustHex("#cfd8e3"), Bold: true},
}

func (r *Registry) updateStyle(id int, fn func(*paint.Format)) {
	f := r.styleFormats[id]
	fn(&f)
	r.styleFormats[id] = f
}

func (r *Registry) StyleSetFore(id int, c paint.Color) {
	r.updateStyle(id, func(f *paint.Format) { f.Fg = c })
}

func (r *Registry) StyleSetBold(id int, v bool) {
	r.updateStyle(id, func(f *paint.Format) { f.Bold = v })
}

func (r *Registry) StyleSetItalic(id int, v bool) {
	r.updateStyle(id, func(f *paint.Format) { f.Italic = v })
}

func (r *Registry) StyleSetUnderline(id int, v bool) {
	r.updateStyle(id, func(f *paint.Format) {
		f.Underline = paint.UnderlineNone
		if v {
			f.Underline = paint.UnderlineSingle
		}
	})
}

// StyleFormat returns the format of a style id, if one was set.
func (r *Registry) StyleFormat(id int) (paint.Format, bool) {
	f, ok := r.styleFormats[id]
	return f, ok
}

// EnsureDefaultStyles installs DefaultStyles for ids without a format.
func (r *Registry) EnsureDefaultStyles() {
	for id, f := range DefaultStyles {
		if _, ok := r.styleFormats[id]; !ok {
			r.styleFormats[id] = f
		}
	}
}

// StartStyling moves the styling cursor used by SetStyling.
func (r *Registry) StartStyling(pos int) { r.stylingPos = clampNonNeg(pos) }

// SetStyling tags [cursor, cursor+length) with style id and advances the
// styling cursor. Non-positive lengths are ignored.
func (r *Registry) SetStyling(length, id int) {
	if length <= 0 {
		return
	}
	lo := r.stylingPos
	hi := lo + length
	r.styleSpans = append(r.styleSpans, paint.StyleSpan{Start: lo, End: hi, Style: id})
	r.stylingPos = hi
}

func (r *Registry) StylingPos() int { return r.stylingPos }

func (r *Registry) StyleSpans() []paint.StyleSpan {
	return append([]paint.StyleSpan(nil), r.styleSpans...)
}

// ClearStyling drops explicit style spans and resets the styling cursor.
func (r *Registry) ClearStyling() {
	r.styleSpans = nil
	r.stylingPos = 0
}

// SetLexerSpans replaces the lexer-produced spans.
func (r *Registry) SetLexerSpans(spans []paint.StyleSpan) {
	r.lexerSpans = append(r.lexerSpans[:0], spans...)
}

func (r *Registry) LexerSpans() []paint.StyleSpan {
	return append([]paint.StyleSpan(nil), r.lexerSpans...)
}
