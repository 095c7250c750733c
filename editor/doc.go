// Package editor ties the document engines together and renders them.
//
// Engine owns one buffer and the fold, lexer, overlay, caret, margin and
// completion engines that decorate it. Every edit runs the rebuild pipeline
// and produces a surface-independent Frame. Model is a Bubble Tea component
// that draws frames and turns keys and mouse events into engine calls.
//
// Legacy widget messages reach the engine through Send, which decodes them
// with the command package.
package editor
