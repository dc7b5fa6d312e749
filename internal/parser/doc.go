// Package parser builds a value tree from the token stream produced by the
// lexer.
//
// The first token decides the document shape:
//
//	{ ... }       explicit table
//	[ ... ]       explicit list
//	key value ... implicit table (first token is a bareword)
//	v1 v2 ...     implicit list (anything else); a single value is returned as is
//
// Parsing stops at the first error. Errors are *diag.Error values; failures
// inside nested containers are wrapped with the container's location.
package parser
