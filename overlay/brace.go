package overlay

// BracePair is the highlighted brace pair. A side is -1 when unmatched;
// A == B marks a single bad brace.
type BracePair struct {
	A int
	B int
}

func (p BracePair) Bad() bool { return p.A == p.B }

func (r *Registry) HighlightBraceMatch(a, b int) {
	r.brace = BracePair{A: a, B: b}
	r.hasBrace = true
}

// BadBrace marks pos as an unmatched brace.
func (r *Registry) BadBrace(pos int) {
	r.brace = BracePair{A: pos, B: pos}
	r.hasBrace = true
}

func (r *Registry) ClearBraceMatch() { r.hasBrace = false }

func (r *Registry) BraceMatch() (BracePair, bool) { return r.brace, r.hasBrace }

var (
	braceOpens  = map[rune]rune{'(': ')', '[': ']', '{': '}'}
	braceCloses = map[rune]rune{')': '(', ']': '[', '}': '{'}
)

// FindBracePair looks for a brace just before caret, then at caret, and
// returns it with its partner. Nesting is counted; strings and comments are
// not. The partner is -1 when the brace is unmatched.
func FindBracePair(text []rune, caret int) (BracePair, bool) {
	if caret > 0 && caret-1 < len(text) {
		if p, ok := bracePairAt(text, caret-1); ok {
			return p, true
		}
	}
	if caret >= 0 && caret < len(text) {
		return bracePairAt(text, caret)
	}
	return BracePair{}, false
}

func bracePairAt(text []rune, i int) (BracePair, bool) {
	ch := text[i]
	if target, ok := braceOpens[ch]; ok {
		depth := 0
		for j := i + 1; j < len(text); j++ {
			switch text[j] {
			case ch:
				depth++
			case target:
				if depth == 0 {
					return BracePair{A: i, B: j}, true
				}
				depth--
			}
		}
		return BracePair{A: i, B: -1}, true
	}
	if target, ok := braceCloses[ch]; ok {
		depth := 0
		for j := i - 1; j >= 0; j-- {
			switch text[j] {
			case ch:
				depth++
			case target:
				if depth == 0 {
					return BracePair{A: j, B: i}, true
				}
				depth--
			}
		}
		return BracePair{A: -1, B: i}, true
	}
	return BracePair{}, false
}
