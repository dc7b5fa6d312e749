package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo                 Code = 1000
	LexUnknownChar          Code = 1001
	LexUnterminatedString   Code = 1002
	LexNewlineInString      Code = 1003
	LexUnterminatedTemplate Code = 1004
	LexUnterminatedComment  Code = 1005
	LexBadCommentStart      Code = 1006
	LexInvalidDecimalPoint  Code = 1007
	LexInvalidEncoding      Code = 1008

	// Парсерные
	SynInfo           Code = 2000
	SynUnexpectedEOF  Code = 2001
	SynExpectKey      Code = 2002
	SynInvalidKey     Code = 2003
	SynInvalidValue   Code = 2004
	SynNumberFormat   Code = 2005
	SynNestedTable    Code = 2006
	SynNestedList     Code = 2007
	SynUnclosedTable  Code = 2008
	SynUnclosedList   Code = 2009
	SynTrailingTokens Code = 2010
	SynTooDeep        Code = 2011

	// ввод/вывод
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:             "Unknown error",
	LexInfo:                 "Lexical information",
	LexUnknownChar:          "Unrecognized character",
	LexUnterminatedString:   "Unterminated string literal",
	LexNewlineInString:      "Newline in string literal",
	LexUnterminatedTemplate: "Unterminated template string",
	LexUnterminatedComment:  "Unterminated comment",
	LexBadCommentStart:      "Malformed comment start",
	LexInvalidDecimalPoint:  "Decimal point without digits",
	LexInvalidEncoding:      "Invalid UTF-8 encoding",
	SynInfo:                 "Syntax information",
	SynUnexpectedEOF:        "Unexpected end of tokens",
	SynExpectKey:            "Expected key",
	SynInvalidKey:           "Invalid key",
	SynInvalidValue:         "Invalid value",
	SynNumberFormat:         "Malformed number",
	SynNestedTable:          "Failed creating a table",
	SynNestedList:           "Failed creating a list",
	SynUnclosedTable:        "Unclosed table",
	SynUnclosedList:         "Unclosed list",
	SynTrailingTokens:       "Unexpected tokens after document",
	SynTooDeep:              "Nesting too deep",
	IOLoadFileError:         "I/O error while loading file",
	IOCacheError:            "Cache error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case c.IsLexical():
		return fmt.Sprintf("LEX%04d", ic)
	case c.IsSyntax():
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// IsLexical reports whether the code belongs to the scanner range.
func (c Code) IsLexical() bool { return c >= 1000 && c < 2000 }

// IsSyntax reports whether the code belongs to the tree builder range.
func (c Code) IsSyntax() bool { return c >= 2000 && c < 3000 }
