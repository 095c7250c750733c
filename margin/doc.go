// Package margin computes the margin strip left of the text area: per-margin
// segments (line numbers, fold glyphs, marker symbols), marker bookkeeping,
// click routing and a surface-independent glyph layout.
//
// Widths are in surface units. LegacyOptions uses pixel-like units and
// CellOptions terminal cells; the package never measures text itself.
package margin
