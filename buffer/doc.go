// Package buffer implements the host document for compatedit: plain text,
// a single cursor and selection, undo/redo and offset conversion.
//
// Coordinates are 0-based (Row, Col) in runes.
// Offsets are rune offsets into the whole document; a newline counts as one
// rune. Ranges are half-open selections in document coordinates: [Start, End).
package buffer
