// Package completion builds the autocompletion candidate pool from explicit
// words and document words, finds the word under the caret and decides when
// a popup opens.
package completion
