// Package caret implements additional carets and rectangular (column)
// selection on top of a host document.
//
// Every synchronized edit collects its target offsets, sorts them and applies
// them in ascending order while carrying a running shift, so each target is
// rebased past the edits already made. The whole batch reaches the host as
// one ApplyOffsets call, which the host records as a single undo step. The
// resulting caret set is taken from the edit's own output points.
package caret
