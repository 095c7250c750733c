// Package lexer turns document text into style spans.
//
// A profile is an ordered table of (pattern, style id) rules. Every rule runs
// over the entire document on each call; spans from different rules may
// overlap and are painted in the order they are returned. Languages without
// a rule table can fall back to a chroma lexer.
package lexer
