package lexer_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/compatedit/lexer"
	"github.com/iw2rmb/compatedit/overlay"
	"github.com/iw2rmb/compatedit/paint"
)

func tokenize(t *testing.T, name, src string) []paint.StyleSpan {
	t.Helper()
	p, ok := lexer.Builtin().Lookup(name)
	require.True(t, ok, "profile %q", name)
	return p.Tokenize(src)
}

func TestPython(t *testing.T) {
	got := tokenize(t, lexer.Python, "def f():\n    return 1  # one\n")
	assert.Equal(t, []paint.StyleSpan{
		{Start: 0, End: 3, Style: overlay.StyleKeyword},
		{Start: 13, End: 19, Style: overlay.StyleKeyword},
		{Start: 23, End: 28, Style: overlay.StyleComment},
		{Start: 20, End: 21, Style: overlay.StyleNumber},
	}, got)
}

func TestPython_RuneOffsets(t *testing.T) {
	got := tokenize(t, lexer.Python, `s = "é"  # x`)
	assert.Equal(t, []paint.StyleSpan{
		{Start: 9, End: 12, Style: overlay.StyleComment},
		{Start: 4, End: 7, Style: overlay.StyleString},
	}, got)
}

func TestJavaScript_BlockCommentSpansLines(t *testing.T) {
	got := tokenize(t, lexer.JavaScript, "/* a\nb */ let x = 1;")
	assert.Contains(t, got, paint.StyleSpan{Start: 0, End: 9, Style: overlay.StyleComment})
	assert.Contains(t, got, paint.StyleSpan{Start: 10, End: 13, Style: overlay.StyleKeyword})
	assert.Contains(t, got, paint.StyleSpan{Start: 18, End: 19, Style: overlay.StyleNumber})
}

func TestJavaScript_TemplateString(t *testing.T) {
	got := tokenize(t, lexer.TypeScript, "x = `a\\`b`")
	assert.Equal(t, []paint.StyleSpan{{Start: 4, End: 10, Style: overlay.StyleString}}, got)
}

func TestJSON(t *testing.T) {
	got := tokenize(t, lexer.JSON, `{"a": 1.5, "b": true}`)
	assert.Equal(t, []paint.StyleSpan{
		{Start: 16, End: 20, Style: overlay.StyleKeyword},
		{Start: 1, End: 4, Style: overlay.StyleString},
		{Start: 11, End: 14, Style: overlay.StyleString},
		{Start: 6, End: 9, Style: overlay.StyleNumber},
	}, got)
}

func TestMarkdown(t *testing.T) {
	got := tokenize(t, lexer.Markdown, "# Title\nsome **bold** and `code`\n## Next")
	assert.Equal(t, []paint.StyleSpan{
		{Start: 0, End: 7, Style: overlay.StyleHeading},
		{Start: 33, End: 40, Style: overlay.StyleHeading},
		{Start: 26, End: 32, Style: overlay.StyleString},
		{Start: 13, End: 21, Style: overlay.StyleKeyword},
	}, got)
}

func TestPlainAndEmpty(t *testing.T) {
	assert.Nil(t, tokenize(t, lexer.Plain, "def x"))
	assert.Nil(t, tokenize(t, lexer.Python, ""))
}

func TestRegistry(t *testing.T) {
	r := lexer.Builtin()
	assert.Equal(t, []string{"javascript", "json", "markdown", "plain", "python", "typescript"}, r.Names())

	custom := lexer.NewProfile("Python", lexer.Rule{Pattern: regexp.MustCompile(`x`), Style: 9})
	r.Register(custom)
	p, ok := r.Lookup("python")
	require.True(t, ok)
	assert.Equal(t, []paint.StyleSpan{{Start: 1, End: 2, Style: 9}}, p.Tokenize("axb"))

	assert.Empty(t, lexer.NewRegistry().Names())
}

func TestRegistry_ResolveFallsBackToChroma(t *testing.T) {
	r := lexer.Builtin()

	p := r.Resolve("go")
	_, isChroma := p.(*lexer.ChromaProfile)
	require.True(t, isChroma)
	assert.Contains(t, p.Tokenize("package main\n"), paint.StyleSpan{Start: 0, End: 7, Style: overlay.StyleKeyword})

	assert.Equal(t, lexer.Plain, r.Resolve("no-such-language").Name())
	assert.Equal(t, lexer.Python, r.Resolve(" Python ").Name())
}

func TestDetect(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"PythonLexer", lexer.Python},
		{"QsciLexerJSON", lexer.JSON},
		{"TypeScript", lexer.TypeScript},
		{"js", lexer.JavaScript},
		{"JavaScript", lexer.JavaScript},
		{"Markdown", lexer.Markdown},
		{"md", lexer.Markdown},
		{"", lexer.Plain},
		{"Rust", lexer.Plain},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lexer.Detect(tt.label), "label %q", tt.label)
	}
}

func TestDetectFile(t *testing.T) {
	assert.Equal(t, lexer.Python, lexer.DetectFile("main.py", []byte("print(1)\n")))
	assert.Equal(t, lexer.Markdown, lexer.DetectFile("README.md", []byte("# hi\n")))
	assert.Equal(t, lexer.JSON, lexer.DetectFile("package.json", []byte(`{"a": 1}`)))
	assert.Equal(t, "go", lexer.DetectFile("main.go", []byte("package main\n")))
}
