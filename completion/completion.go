package completion

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"

	"github.com/iw2rmb/compatedit/internal/logging"
)

// Source selects where candidates come from. Values follow the legacy
// numbering.
type Source int

const (
	SourceNone Source = iota
	SourceAll
	SourceDocument
	SourceAPIs
)

func (s Source) String() string {
	switch s {
	case SourceNone:
		return "none"
	case SourceAll:
		return "all"
	case SourceDocument:
		return "document"
	case SourceAPIs:
		return "apis"
	default:
		return "unknown"
	}
}

// ParseSource maps a source name onto a Source.
func ParseSource(name string) (Source, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "off":
		return SourceNone, true
	case "all":
		return SourceAll, true
	case "document", "doc":
		return SourceDocument, true
	case "apis", "api", "words":
		return SourceAPIs, true
	default:
		return SourceNone, false
	}
}

var wordPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]+`)

type Options struct {
	Source        Source
	Threshold     int
	CaseSensitive bool
	UseSingle     bool
}

func DefaultOptions() Options {
	return Options{Source: SourceAll, Threshold: 1, UseSingle: true}
}

// Engine owns the candidate pool of one document.
type Engine struct {
	opt      Options
	words    []string
	docWords map[string]struct{}
	pool     []string
	fold     cases.Caser
	logger   *log.Logger
}

func New(opt Options) *Engine {
	e := &Engine{
		opt:    opt,
		fold:   cases.Fold(),
		logger: logging.Discard(),
	}
	e.rebuildPool()
	return e
}

func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	e.logger = l
}

func (e *Engine) Options() Options { return e.opt }

func (e *Engine) SetSource(s Source) {
	e.opt.Source = s
	e.rebuildPool()
}

func (e *Engine) SetThreshold(n int) { e.opt.Threshold = n }

// Threshold is the effective minimum prefix length; values below 1 act as 1.
func (e *Engine) Threshold() int { return max(1, e.opt.Threshold) }

func (e *Engine) SetCaseSensitive(v bool) { e.opt.CaseSensitive = v }

func (e *Engine) SetUseSingle(v bool) { e.opt.UseSingle = v }

// SetWords replaces the explicit candidate list. Words are trimmed, blanks
// dropped and duplicates merged.
func (e *Engine) SetWords(words []string) {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			set[w] = struct{}{}
		}
	}
	e.words = sortedSet(set)
	e.rebuildPool()
}

func (e *Engine) Words() []string { return append([]string(nil), e.words...) }

// Refresh rescans text for document words.
func (e *Engine) Refresh(text string) {
	set := make(map[string]struct{})
	for _, w := range wordPattern.FindAllString(text, -1) {
		set[w] = struct{}{}
	}
	e.docWords = set
	e.rebuildPool()
	e.logger.Debug("completion pool", logging.FieldWords, len(e.pool))
}

// Pool returns the sorted candidate pool for the current source.
func (e *Engine) Pool() []string { return append([]string(nil), e.pool...) }

func (e *Engine) rebuildPool() {
	if e.opt.Source == SourceNone {
		e.pool = nil
		return
	}
	set := make(map[string]struct{}, len(e.words)+len(e.docWords))
	for _, w := range e.words {
		set[w] = struct{}{}
	}
	if e.opt.Source == SourceDocument || e.opt.Source == SourceAll {
		for w := range e.docWords {
			set[w] = struct{}{}
		}
	}
	e.pool = sortedSet(set)
}

// Popup is the outcome of an invocation.
type Popup struct {
	Visible    bool
	Start, End int
	Prefix     string
	Candidates []string
	// AutoAccept is set when a forced invocation leaves one candidate and
	// use-single is on.
	AutoAccept bool
}

// Invoke refreshes the pool from text and filters it by the word around
// caret (a rune offset). Without force the word must reach the threshold.
func (e *Engine) Invoke(text string, caret int, force bool) Popup {
	e.Refresh(text)
	runes := []rune(text)
	start, end := WordSpan(runes, caret)
	prefix := string(runes[start:end])
	p := Popup{Start: start, End: end, Prefix: prefix}
	if !force && end-start < e.Threshold() {
		return p
	}
	p.Candidates = e.Filter(prefix)
	p.Visible = len(p.Candidates) > 0
	p.AutoAccept = force && e.opt.UseSingle && len(p.Candidates) == 1
	return p
}

// Filter returns the pool entries starting with prefix.
func (e *Engine) Filter(prefix string) []string {
	if prefix == "" {
		return e.Pool()
	}
	want := e.key(prefix)
	var out []string
	for _, w := range e.pool {
		if strings.HasPrefix(e.key(w), want) {
			out = append(out, w)
		}
	}
	return out
}

func (e *Engine) key(s string) string {
	if e.opt.CaseSensitive {
		return s
	}
	return e.fold.String(s)
}

// Accept returns the edit that replaces the word around caret with
// candidate. An empty candidate is rejected.
func (e *Engine) Accept(text string, caret int, candidate string) (start, end int, replacement string, ok bool) {
	if candidate == "" {
		return 0, 0, "", false
	}
	start, end = WordSpan([]rune(text), caret)
	return start, end, candidate, true
}

// WordSpan scans left and right of caret over letters, digits and
// underscores. caret is clamped into text.
func WordSpan(text []rune, caret int) (start, end int) {
	caret = min(max(0, caret), len(text))
	start = caret
	for start > 0 && isWordRune(text[start-1]) {
		start--
	}
	end = caret
	for end < len(text) && isWordRune(text[end]) {
		end++
	}
	return start, end
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func sortedSet(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
