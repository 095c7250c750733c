package fold

import "sort"

// Region is a collapsible span of lines. Start is the header line and stays
// visible when the region is collapsed; lines (Start, End] are hidden.
type Region struct {
	Start int
	End   int
	Level int
}

type Options struct {
	// IndentWidth is the column width of a tab and the divisor that turns an
	// indentation width into a level. Values below 1 behave as 1.
	IndentWidth int
	Enabled     bool
}

func DefaultOptions() Options {
	return Options{IndentWidth: 4, Enabled: true}
}

// Engine holds the fold regions of one document and the hidden-line state
// derived from them.
type Engine struct {
	opt Options

	regions    map[int]Region
	collapsed  map[int]struct{}
	foldHidden map[int]struct{}
	manual     map[int]struct{}
}

func New(opt Options) *Engine {
	if opt.IndentWidth < 1 {
		opt.IndentWidth = 1
	}
	return &Engine{
		opt:        opt,
		regions:    make(map[int]Region),
		collapsed:  make(map[int]struct{}),
		foldHidden: make(map[int]struct{}),
		manual:     make(map[int]struct{}),
	}
}

func (e *Engine) Options() Options { return e.opt }

// Rebuild recomputes every region from text. Collapsed headers that no
// longer head a region are dropped. Manually hidden lines are kept.
func (e *Engine) Rebuild(text string) {
	lines := splitLines(text)
	indent := indentRegions(lines, e.opt.IndentWidth)
	if indent == nil {
		// Fewer than two non-blank lines.
		e.regions = make(map[int]Region)
		e.collapsed = make(map[int]struct{})
		e.foldHidden = make(map[int]struct{})
		return
	}

	e.regions = merge(indent, braceRegions(lines))
	for line := range e.collapsed {
		if _, ok := e.regions[line]; !ok {
			delete(e.collapsed, line)
		}
	}
	e.rebuildHidden()
}

func (e *Engine) rebuildHidden() {
	hidden := make(map[int]struct{})
	for header := range e.collapsed {
		r, ok := e.regions[header]
		if !ok {
			continue
		}
		for line := r.Start + 1; line <= r.End; line++ {
			hidden[line] = struct{}{}
		}
	}
	e.foldHidden = hidden
}

// Regions returns all regions sorted by header line.
func (e *Engine) Regions() []Region {
	out := make([]Region, 0, len(e.regions))
	for _, r := range e.regions {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

func (e *Engine) Region(line int) (Region, bool) {
	r, ok := e.regions[line]
	return r, ok
}

// IsHeader reports whether line heads a region. It is always false while
// folding is disabled.
func (e *Engine) IsHeader(line int) bool {
	if !e.opt.Enabled {
		return false
	}
	_, ok := e.regions[line]
	return ok
}

func (e *Engine) IsCollapsed(line int) bool {
	_, ok := e.collapsed[line]
	return ok
}

func (e *Engine) Enabled() bool { return e.opt.Enabled }

// SetEnabled switches folding on or off. Turning it off expands everything.
func (e *Engine) SetEnabled(v bool) {
	e.opt.Enabled = v
	if !v {
		e.collapsed = make(map[int]struct{})
		e.foldHidden = make(map[int]struct{})
	}
}

// SetIndentWidth takes effect on the next Rebuild.
func (e *Engine) SetIndentWidth(w int) {
	if w < 1 {
		w = 1
	}
	e.opt.IndentWidth = w
}

// Fold collapses (expand=false) or expands the region headed by line. It
// reports whether line heads a region.
func (e *Engine) Fold(line int, expand bool) bool {
	if !e.opt.Enabled {
		return false
	}
	r, ok := e.regions[line]
	if !ok {
		return false
	}
	if expand {
		delete(e.collapsed, r.Start)
	} else {
		e.collapsed[r.Start] = struct{}{}
	}
	e.rebuildHidden()
	return true
}

// Toggle flips the collapsed state of the region headed by line.
func (e *Engine) Toggle(line int) bool {
	return e.Fold(line, e.IsCollapsed(line))
}

func (e *Engine) FoldAll(expand bool) {
	if !e.opt.Enabled {
		return
	}
	e.collapsed = make(map[int]struct{})
	if !expand {
		for start := range e.regions {
			e.collapsed[start] = struct{}{}
		}
	}
	e.rebuildHidden()
}

// FoldLevel collapses or expands every region at a 1-based level: level n
// targets regions with Level n-1. Levels below 1 target level 0.
func (e *Engine) FoldLevel(level int, expand bool) {
	if !e.opt.Enabled {
		return
	}
	target := max(0, level-1)
	for start, r := range e.regions {
		if r.Level != target {
			continue
		}
		if expand {
			delete(e.collapsed, start)
		} else {
			e.collapsed[start] = struct{}{}
		}
	}
	e.rebuildHidden()
}

func (e *Engine) IsLineVisible(line int) bool {
	if _, ok := e.manual[line]; ok {
		return false
	}
	_, ok := e.foldHidden[line]
	return !ok
}

// HideLines hides lines a through b inclusive, in either order. Negative
// lines clamp to 0.
func (e *Engine) HideLines(a, b int) bool {
	lo, hi := max(0, min(a, b)), max(0, max(a, b))
	for line := lo; line <= hi; line++ {
		e.manual[line] = struct{}{}
	}
	return true
}

// ShowAll clears manually hidden lines and collapsed headers. It reports
// whether any line was hidden or any header collapsed.
func (e *Engine) ShowAll() bool {
	had := len(e.manual) > 0 || len(e.foldHidden) > 0 || len(e.collapsed) > 0
	e.manual = make(map[int]struct{})
	e.foldHidden = make(map[int]struct{})
	e.collapsed = make(map[int]struct{})
	return had
}

// HiddenLines returns the union of manually hidden and fold-hidden lines,
// sorted.
func (e *Engine) HiddenLines() []int {
	seen := make(map[int]struct{}, len(e.manual)+len(e.foldHidden))
	for line := range e.manual {
		seen[line] = struct{}{}
	}
	for line := range e.foldHidden {
		seen[line] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for line := range seen {
		out = append(out, line)
	}
	sort.Ints(out)
	return out
}

// CollapsedHeaders returns collapsed header lines, sorted.
func (e *Engine) CollapsedHeaders() []int {
	out := make([]int, 0, len(e.collapsed))
	for line := range e.collapsed {
		out = append(out, line)
	}
	sort.Ints(out)
	return out
}
