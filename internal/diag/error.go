package diag

import (
	"errors"
	"fmt"

	"mcl/internal/source"
)

// Error is the failure value returned by the scanner and the tree builder.
// It carries the diagnostic that was (or would be) reported plus the resolved
// start position. Container failures wrap the inner error in Cause.
type Error struct {
	Diagnostic
	Pos   source.LineCol
	Cause error
}

// Errorf builds an *Error for code located at primary/pos.
func Errorf(code Code, primary source.Span, pos source.LineCol, format string, args ...any) *Error {
	return &Error{
		Diagnostic: NewError(code, primary, fmt.Sprintf(format, args...)),
		Pos:        pos,
	}
}

// Wrap annotates cause with a container-level diagnostic.
func Wrap(code Code, primary source.Span, pos source.LineCol, msg string, cause error) *Error {
	return &Error{
		Diagnostic: NewError(code, primary, msg),
		Pos:        pos,
		Cause:      cause,
	}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s at %d:%d: %v", e.Message, e.Pos.Line, e.Pos.Col, e.Cause)
	}
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Root returns the innermost *Error of the chain (e itself when unwrapped).
func (e *Error) Root() *Error {
	cur := e
	for {
		var inner *Error
		if cur.Cause == nil || !errors.As(cur.Cause, &inner) {
			return cur
		}
		cur = inner
	}
}

// Flatten converts the chain into a single diagnostic: the innermost failure
// is primary, every enclosing container becomes a note.
func (e *Error) Flatten() Diagnostic {
	root := e.Root()
	d := root.Diagnostic
	d.Notes = append([]Note(nil), root.Notes...)
	for cur := e; cur != root; {
		d.Notes = append(d.Notes, Note{Span: cur.Primary, Msg: cur.Message})
		var inner *Error
		if !errors.As(cur.Cause, &inner) {
			break
		}
		cur = inner
	}
	return d
}

// Report emits the flattened diagnostic to r.
func (e *Error) Report(r Reporter) {
	if e == nil || r == nil {
		return
	}
	d := e.Flatten()
	r.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
}

// HasCode reports whether any *Error in err's chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Cause
	}
	return false
}

// CodeOf returns the code of the outermost *Error in err, or UnknownCode.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return UnknownCode
}

// RootCode returns the code of the innermost *Error in err, or UnknownCode.
func RootCode(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Root().Code
	}
	return UnknownCode
}
