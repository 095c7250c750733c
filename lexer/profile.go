package lexer

import (
	"regexp"
	"unicode/utf8"

	"github.com/iw2rmb/compatedit/paint"
)

// Tokenizer produces style spans over rune offsets for a whole document.
type Tokenizer interface {
	Name() string
	Tokenize(src string) []paint.StyleSpan
}

type Rule struct {
	Pattern *regexp.Regexp
	Style   int
}

// Profile is a regex rule table. Rules run in order; each contributes every
// non-empty match.
type Profile struct {
	name  string
	rules []Rule
}

func NewProfile(name string, rules ...Rule) *Profile {
	return &Profile{name: name, rules: rules}
}

func (p *Profile) Name() string { return p.name }

func (p *Profile) Rules() []Rule { return append([]Rule(nil), p.rules...) }

func (p *Profile) Tokenize(src string) []paint.StyleSpan {
	if src == "" || len(p.rules) == 0 {
		return nil
	}
	idx := newRuneIndex(src)

	var out []paint.StyleSpan
	for _, rule := range p.rules {
		for _, m := range rule.Pattern.FindAllStringIndex(src, -1) {
			if m[1] <= m[0] {
				continue
			}
			out = append(out, paint.StyleSpan{
				Start: idx.runeOffset(m[0]),
				End:   idx.runeOffset(m[1]),
				Style: rule.Style,
			})
		}
	}
	return out
}

// runeIndex maps byte offsets of one string to rune offsets.
type runeIndex struct {
	ascii bool
	runes []int // runes[b] is the rune offset of byte b
}

func newRuneIndex(src string) runeIndex {
	if len(src) == utf8.RuneCountInString(src) {
		return runeIndex{ascii: true}
	}
	runes := make([]int, len(src)+1)
	n := 0
	for b := 0; b < len(src); n++ {
		_, size := utf8.DecodeRuneInString(src[b:])
		for i := 0; i < size; i++ {
			runes[b+i] = n
		}
		b += size
	}
	runes[len(src)] = n
	return runeIndex{runes: runes}
}

func (ri runeIndex) runeOffset(b int) int {
	if ri.ascii {
		return b
	}
	return ri.runes[b]
}
