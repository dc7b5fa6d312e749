// Package mcl reads MCL documents: a small JSON-like notation with tables
// `{ key value }`, lists `[ ... ]`, "quoted" and `template` strings,
// barewords, integers, decimals, true/false/null and // or /* */ comments.
//
//	v, err := mcl.ParseString(`server { host "localhost" ports [80 443] }`)
//	if err != nil {
//	    return err
//	}
//	host, _ := v.Lookup("server", "host")
//
// Parsing is all-or-nothing: the first lexical or syntax error aborts and is
// returned as an *mcl.Error carrying a code and a line:column position.
package mcl

import (
	"mcl/internal/diag"
	"mcl/internal/lexer"
	"mcl/internal/parser"
	"mcl/internal/source"
	"mcl/internal/token"
	"mcl/internal/value"
)

type (
	Value    = value.Value
	Kind     = value.Kind
	Token    = token.Token
	Error    = diag.Error
	Code     = diag.Code
	Reporter = diag.Reporter
)

const (
	KindNull   = value.KindNull
	KindBool   = value.KindBool
	KindInt    = value.KindInt
	KindFloat  = value.KindFloat
	KindString = value.KindString
	KindList   = value.KindList
	KindTable  = value.KindTable
)

// Error codes reported by Parse.
const (
	ErrInvalidEncoding     = diag.LexInvalidEncoding
	ErrUnrecognizedChar    = diag.LexUnknownChar
	ErrUnterminatedString  = diag.LexUnterminatedString
	ErrNewlineInString     = diag.LexNewlineInString
	ErrUnterminatedTmpl    = diag.LexUnterminatedTemplate
	ErrUnterminatedComment = diag.LexUnterminatedComment
	ErrBadCommentStart     = diag.LexBadCommentStart
	ErrInvalidDecimalPoint = diag.LexInvalidDecimalPoint
	ErrUnexpectedEOF       = diag.SynUnexpectedEOF
	ErrExpectedKey         = diag.SynExpectKey
	ErrInvalidKey          = diag.SynInvalidKey
	ErrInvalidValue        = diag.SynInvalidValue
	ErrNumberFormat        = diag.SynNumberFormat
	ErrNestedTable         = diag.SynNestedTable
	ErrNestedList          = diag.SynNestedList
	ErrUnclosedTable       = diag.SynUnclosedTable
	ErrUnclosedList        = diag.SynUnclosedList
	ErrTrailingTokens      = diag.SynTrailingTokens
	ErrTooDeep             = diag.SynTooDeep
)

// Options tune ParseWithOptions. The zero value is the strict default.
type Options struct {
	// AllowUnclosed accepts containers whose closing '}' or ']' is missing
	// at end of input.
	AllowUnclosed bool
	// NormalizeNFC converts keys and strings to Unicode NFC.
	NormalizeNFC bool
	// MaxDepth limits container nesting (0 means 512).
	MaxDepth int
	// Reporter, when set, also receives the aborting diagnostic.
	Reporter Reporter
}

// ParseString parses an MCL document held in a string.
func ParseString(text string) (Value, error) {
	return ParseWithOptions([]byte(text), Options{})
}

// Parse parses an MCL document. The input must be valid UTF-8.
func Parse(data []byte) (Value, error) {
	return ParseWithOptions(data, Options{})
}

// ParseWithOptions parses an MCL document with the given parser options.
func ParseWithOptions(data []byte, opts Options) (Value, error) {
	file := virtualFile(data)
	tokens, err := lexer.Tokenize(file, lexer.Options{Reporter: opts.Reporter})
	if err != nil {
		return Value{}, err
	}
	return parser.Parse(tokens, parser.Options{
		AllowUnclosed: opts.AllowUnclosed,
		NormalizeNFC:  opts.NormalizeNFC,
		MaxDepth:      opts.MaxDepth,
		Reporter:      opts.Reporter,
	})
}

// Tokenize runs only the scanner. Token payloads point into data.
func Tokenize(data []byte) ([]Token, error) {
	return lexer.Tokenize(virtualFile(data), lexer.Options{})
}

// HasCode reports whether err, or any error it wraps, carries code.
func HasCode(err error, code Code) bool {
	return diag.HasCode(err, code)
}

// CodeOf returns the code of the outermost error in err's chain.
func CodeOf(err error) Code {
	return diag.CodeOf(err)
}

// RootCode returns the code of the innermost failure, e.g. the invalid
// value under a "failed creating a table" wrapper.
func RootCode(err error) Code {
	return diag.RootCode(err)
}

func virtualFile(data []byte) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("<input>", data))
}
