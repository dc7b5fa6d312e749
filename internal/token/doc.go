// Package token defines lexical token kinds for MCL documents.
// Invariants:
//   - Token.Raw is a slice of the original buffer (no copies).
//   - For StringLit/TemplateLit Raw excludes the delimiters while Span covers
//     the whole lexeme, so non-delimiter spans are never empty.
//   - Delimiters and the true/false/null keywords carry no payload.
//   - Newlines and comments are never tokens.
//   - A token stream always ends with exactly one EOF.
package token
