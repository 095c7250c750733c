package lexer

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Detect maps a free-form lexer label ("PythonLexer", "js", "Markdown") to a
// built-in profile name. Unknown labels map to Plain.
func Detect(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.Contains(label, "python"):
		return Python
	case strings.Contains(label, "json"):
		return JSON
	case strings.Contains(label, "typescript"):
		return TypeScript
	case strings.Contains(label, "javascript"), strings.Contains(label, "js"):
		return JavaScript
	case strings.Contains(label, "markdown"), strings.Contains(label, "md"):
		return Markdown
	default:
		return Plain
	}
}

// DetectFile classifies a file by name and content. Languages with a
// built-in profile map to its name; others map to the lower-cased enry
// language name, which Registry.Resolve can hand to chroma. An unknown file
// maps to Plain.
func DetectFile(filename string, content []byte) string {
	lang := enry.GetLanguage(filename, content)
	switch lang {
	case "":
		return Plain
	case "Python":
		return Python
	case "JavaScript":
		return JavaScript
	case "TypeScript", "TSX":
		return TypeScript
	case "JSON", "JSON with Comments":
		return JSON
	case "Markdown":
		return Markdown
	case "Text":
		return Plain
	default:
		return strings.ToLower(lang)
	}
}
