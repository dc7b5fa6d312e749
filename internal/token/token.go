package token

import (
	"fmt"

	"mcl/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind  Kind
	Span  source.Span
	Start source.LineCol
	End   source.LineCol
	Raw   []byte // срез исходного буфера, без кавычек для строк
}

// Text returns a copy of the payload as a string.
func (t Token) Text() string { return string(t.Raw) }

// StartPos returns the (line, column, offset) triple of the first byte.
func (t Token) StartPos() source.Position {
	return source.Position{LineCol: t.Start, Off: t.Span.Start}
}

// EndPos returns the position one past the last byte.
func (t Token) EndPos() source.Position {
	return source.Position{LineCol: t.End, Off: t.Span.End}
}

// IsString reports whether the token is a quoted or template string.
func (t Token) IsString() bool {
	return t.Kind == StringLit || t.Kind == TemplateLit
}

// String renders the token for diagnostics, e.g. `number "12"` or `'{'`.
func (t Token) String() string {
	if len(t.Raw) > 0 || t.IsString() {
		return fmt.Sprintf("%s %q", t.Kind.Describe(), t.Raw)
	}
	return t.Kind.Describe()
}
