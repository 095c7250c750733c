// Package overlay is the range-tagged decoration registry of an editor view:
// indicators, hotspots, style spans (explicit and lexer-produced),
// annotations, the brace-match pair and the caret-line highlight.
//
// All ranges are half-open rune offsets. Ranges are never shifted by edits;
// callers that edit text outside the synchronized multi-caret path must
// clear and re-register their indicator and hotspot ranges.
package overlay
