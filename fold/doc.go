// Package fold derives collapsible line regions from document text and
// tracks which lines are hidden, either because their header is collapsed or
// because they were hidden by hand.
//
// Regions come from two passes over the text: an indentation pass and a
// brace-depth pass that skips strings and comments. Both run over the whole
// document on every Rebuild.
package fold
