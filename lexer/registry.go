package lexer

import (
	"sort"
	"strings"
)

// Registry maps profile names to tokenizers. Each editor owns its own.
type Registry struct {
	profiles map[string]Tokenizer
}

func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]Tokenizer)}
}

// Builtin returns a fresh registry holding the built-in profiles.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(pythonProfile())
	r.Register(cLikeProfile(JavaScript))
	r.Register(cLikeProfile(TypeScript))
	r.Register(cLikeProfile(JSON))
	r.Register(markdownProfile())
	r.Register(plainProfile())
	return r
}

// Register adds or replaces the profile stored under t.Name().
func (r *Registry) Register(t Tokenizer) {
	r.profiles[strings.ToLower(t.Name())] = t
}

func (r *Registry) Lookup(name string) (Tokenizer, bool) {
	t, ok := r.profiles[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Resolve returns the registered profile for name, else a chroma-backed
// profile when chroma knows the language, else the plain profile.
func (r *Registry) Resolve(name string) Tokenizer {
	if t, ok := r.Lookup(name); ok {
		return t
	}
	if name = strings.TrimSpace(name); name != "" {
		if p, ok := NewChromaProfile(name); ok {
			return p
		}
	}
	if t, ok := r.Lookup(Plain); ok {
		return t
	}
	return plainProfile()
}

func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
