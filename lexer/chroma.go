package lexer

import (
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/iw2rmb/compatedit/overlay"
	"github.com/iw2rmb/compatedit/paint"
)

// ChromaProfile tokenizes with a chroma lexer and maps chroma token types
// onto the built-in style ids.
type ChromaProfile struct {
	name  string
	lexer chroma.Lexer
}

// NewChromaProfile looks name up among chroma's lexers (by name, alias or
// file name).
func NewChromaProfile(name string) (*ChromaProfile, bool) {
	l := lexers.Get(name)
	if l == nil {
		return nil, false
	}
	return &ChromaProfile{name: name, lexer: chroma.Coalesce(l)}, true
}

func (p *ChromaProfile) Name() string { return p.name }

func (p *ChromaProfile) Tokenize(src string) []paint.StyleSpan {
	if src == "" {
		return nil
	}
	it, err := p.lexer.Tokenise(nil, src)
	if err != nil {
		return nil
	}

	n := utf8.RuneCountInString(src)
	var out []paint.StyleSpan
	off := 0
	for _, tok := range it.Tokens() {
		start := off
		off += utf8.RuneCountInString(tok.Value)
		style := chromaStyle(tok.Type)
		if style == 0 || start >= n {
			continue
		}
		end := min(off, n)
		if last := len(out) - 1; last >= 0 && out[last].End == start && out[last].Style == style {
			out[last].End = end
			continue
		}
		out = append(out, paint.StyleSpan{Start: start, End: end, Style: style})
	}
	return out
}

func chromaStyle(t chroma.TokenType) int {
	switch {
	case t == chroma.GenericHeading || t == chroma.GenericSubheading:
		return overlay.StyleHeading
	case t.InCategory(chroma.Keyword):
		return overlay.StyleKeyword
	case t.InCategory(chroma.Comment):
		return overlay.StyleComment
	case t.InSubCategory(chroma.LiteralString):
		return overlay.StyleString
	case t.InSubCategory(chroma.LiteralNumber):
		return overlay.StyleNumber
	default:
		return 0
	}
}
