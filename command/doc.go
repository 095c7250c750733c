// Package command decodes the legacy named-command protocol into typed
// commands and applies them to an editor.
//
// Names are case-insensitive. An optional "SCI_" prefix and any '-' or '_'
// are ignored, so "fold-all", "FOLDALL" and "SCI_FOLDALL" are one command.
// Extra arguments are ignored; missing ones fail with ErrArity.
package command
