package logging

// Field names for structured log entries.
const (
	FieldError = "error"
	FieldPath  = "path"
	FieldDoc   = "doc"

	// Rebuild statistics.
	FieldRegions = "regions"
	FieldSpans   = "spans"
	FieldLines   = "lines"
	FieldLexer   = "lexer"
	FieldWords   = "words"

	// Commands.
	FieldCommand = "command"
	FieldArgs    = "args"

	// Synchronized edits.
	FieldCarets  = "carets"
	FieldEdits   = "edits"
	FieldOffset  = "offset"
	FieldClamped = "clamped"

	// Margins.
	FieldLine   = "line"
	FieldMargin = "margin"

	FieldVersion = "version"
)
