package fold

import "strings"

// indentRegions closes a region for every line whose successors are indented
// deeper than it, ending at the last deeper non-blank line.
func indentRegions(lines []string, indentWidth int) map[int]Region {
	type entry struct{ line, indent int }

	var nonBlank []entry
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		nonBlank = append(nonBlank, entry{line: i, indent: indentOf(line, indentWidth)})
	}
	if len(nonBlank) < 2 {
		return nil
	}

	regions := make(map[int]Region)
	closeTop := func(stack []entry, end int) []entry {
		top := stack[len(stack)-1]
		regions[top.line] = Region{Start: top.line, End: end, Level: top.indent / indentWidth}
		return stack[:len(stack)-1]
	}

	var stack []entry
	prev := nonBlank[0]
	for _, cur := range nonBlank[1:] {
		for len(stack) > 0 && cur.indent <= stack[len(stack)-1].indent {
			stack = closeTop(stack, prev.line)
		}
		if cur.indent > prev.indent {
			stack = append(stack, prev)
		}
		prev = cur
	}
	for len(stack) > 0 {
		stack = closeTop(stack, prev.line)
	}

	for start, r := range regions {
		if r.End <= start {
			delete(regions, start)
		}
	}
	return regions
}

type scanState uint8

const (
	scanCode scanState = iota
	scanString
	scanBlockComment
)

// braceRegions pairs '{' with '}' across lines. Braces inside quoted strings
// and comments are ignored; string and block-comment state carry over line
// ends, a line comment does not. Same-line pairs produce nothing.
func braceRegions(lines []string) map[int]Region {
	type open struct{ line, depth int }

	regions := make(map[int]Region)
	var (
		stack  []open
		state  = scanCode
		quote  rune
		escape bool
	)

	for lineNo, line := range lines {
		rs := []rune(line)
	scan:
		for i := 0; i < len(rs); i++ {
			ch := rs[i]
			var next rune
			if i+1 < len(rs) {
				next = rs[i+1]
			}

			switch state {
			case scanString:
				switch {
				case escape:
					escape = false
				case ch == '\\':
					escape = true
				case ch == quote:
					state = scanCode
				}
				continue
			case scanBlockComment:
				if ch == '*' && next == '/' {
					state = scanCode
					i++
				}
				continue
			}

			switch {
			case ch == '/' && next == '/':
				break scan
			case ch == '/' && next == '*':
				state = scanBlockComment
				i++
			case ch == '\'' || ch == '"' || ch == '`':
				state, quote = scanString, ch
			case ch == '{':
				stack = append(stack, open{line: lineNo, depth: len(stack)})
			case ch == '}':
				if len(stack) == 0 {
					continue
				}
				o := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if lineNo <= o.line {
					continue
				}
				if cur, ok := regions[o.line]; !ok || lineNo > cur.End {
					regions[o.line] = Region{Start: o.line, End: lineNo, Level: o.depth}
				}
			}
		}
	}
	return regions
}

// merge lays brace regions over indentation regions. A brace region only
// adds a missing header or widens an existing one; a widened region keeps
// the smaller level.
func merge(indent, brace map[int]Region) map[int]Region {
	out := make(map[int]Region, len(indent)+len(brace))
	for start, r := range indent {
		out[start] = r
	}
	for start, r := range brace {
		cur, ok := out[start]
		if !ok {
			out[start] = r
			continue
		}
		if r.End > cur.End {
			out[start] = Region{Start: start, End: r.End, Level: min(cur.Level, r.Level)}
		}
	}
	return out
}

// indentOf measures leading indentation: a space is one column, a tab is
// indentWidth columns.
func indentOf(line string, indentWidth int) int {
	total := 0
	for _, ch := range line {
		switch ch {
		case ' ':
			total++
		case '\t':
			total += indentWidth
		default:
			return total
		}
	}
	return total
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
