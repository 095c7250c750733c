package lexer

import (
	"regexp"

	"github.com/iw2rmb/compatedit/overlay"
)

// Built-in profile names.
const (
	Python     = "python"
	JavaScript = "javascript"
	TypeScript = "typescript"
	JSON       = "json"
	Markdown   = "markdown"
	Plain      = "plain"
)

const (
	pythonKeywords = `\b(?:and|as|assert|break|class|continue|def|del|elif|else|except|False|finally|for|from|global|if|import|in|is|lambda|None|nonlocal|not|or|pass|raise|return|True|try|while|with|yield)\b`
	cLikeKeywords  = `\b(?:break|case|catch|class|const|continue|debugger|default|delete|do|else|export|extends|false|finally|for|function|if|import|in|instanceof|let|new|null|return|super|switch|this|throw|true|try|typeof|var|void|while|with|yield)\b`

	numberPattern = `\b\d+(\.\d+)?\b`
)

func pythonProfile() *Profile {
	return NewProfile(Python,
		Rule{regexp.MustCompile(pythonKeywords), overlay.StyleKeyword},
		Rule{regexp.MustCompile(`#.*`), overlay.StyleComment},
		Rule{regexp.MustCompile(`('([^'\\]|\\.)*'|"([^"\\]|\\.)*")`), overlay.StyleString},
		Rule{regexp.MustCompile(numberPattern), overlay.StyleNumber},
	)
}

// cLikeProfile covers the JavaScript family. JSON and TypeScript share it.
func cLikeProfile(name string) *Profile {
	return NewProfile(name,
		Rule{regexp.MustCompile(cLikeKeywords), overlay.StyleKeyword},
		Rule{regexp.MustCompile(`//.*`), overlay.StyleComment},
		Rule{regexp.MustCompile(`/\*[\s\S]*?\*/`), overlay.StyleComment},
		Rule{regexp.MustCompile("('([^'\\\\]|\\\\.)*'|\"([^\"\\\\]|\\\\.)*\"|`([^`\\\\]|\\\\.)*`)"), overlay.StyleString},
		Rule{regexp.MustCompile(numberPattern), overlay.StyleNumber},
	)
}

func markdownProfile() *Profile {
	return NewProfile(Markdown,
		Rule{regexp.MustCompile(`(?m)^#{1,6} .*$`), overlay.StyleHeading},
		Rule{regexp.MustCompile("`{1,3}[^`]+`{1,3}"), overlay.StyleString},
		Rule{regexp.MustCompile(`\*\*[^*]+\*\*`), overlay.StyleKeyword},
	)
}

func plainProfile() *Profile { return NewProfile(Plain) }
