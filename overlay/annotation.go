package overlay

import "sort"

// SetAnnotation sets the text shown beneath line. Negative lines clamp to 0;
// empty text removes the annotation.
func (r *Registry) SetAnnotation(line int, text string) {
	line = clampNonNeg(line)
	if text == "" {
		delete(r.annotations, line)
		return
	}
	r.annotations[line] = text
}

func (r *Registry) Annotation(line int) (string, bool) {
	s, ok := r.annotations[line]
	return s, ok
}

// AnnotatedLines lists lines carrying an annotation, ascending.
func (r *Registry) AnnotatedLines() []int {
	out := make([]int, 0, len(r.annotations))
	for line := range r.annotations {
		out = append(out, line)
	}
	sort.Ints(out)
	return out
}

func (r *Registry) ClearAnnotations() {
	r.annotations = make(map[int]string)
}
