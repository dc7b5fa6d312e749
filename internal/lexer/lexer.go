package lexer

import (
	"mcl/internal/diag"
	"mcl/internal/source"
	"mcl/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Tokenize scans the whole file. The returned slice always ends with a
// single EOF token; the first lexical error aborts the scan.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	return New(file, opts).Tokenize()
}

// Tokenize прогоняет лексер до EOF.
func (lx *Lexer) Tokenize() ([]token.Token, error) {
	if err := lx.checkEncoding(); err != nil {
		return nil, err
	}
	tokens := make([]token.Token, 0, len(lx.file.Content)/4+1)
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// Next возвращает следующий значимый токен.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() (token.Token, error) {
	// пробелы, переводы строк и комментарии
	if err := lx.skipTrivia(); err != nil {
		return token.Token{}, err
	}

	if lx.cursor.EOF() {
		pos := lx.cursor.Pos()
		return token.Token{
			Kind:  token.EOF,
			Span:  lx.emptySpan(),
			Start: pos,
			End:   pos,
		}, nil
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '{':
		return lx.scanDelimiter(token.LBrace), nil
	case ch == '}':
		return lx.scanDelimiter(token.RBrace), nil
	case ch == '[':
		return lx.scanDelimiter(token.LBracket), nil
	case ch == ']':
		return lx.scanDelimiter(token.RBracket), nil
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword(), nil
	case ch == '"':
		return lx.scanString()
	case ch == '`':
		return lx.scanTemplate()
	case isNumberStartByte(ch):
		return lx.scanNumber()
	default:
		return token.Token{}, lx.unrecognized()
	}
}

func (lx *Lexer) scanDelimiter(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.emit(kind, start, nil)
}

func (lx *Lexer) unrecognized() error {
	start := lx.cursor.Mark()
	r, _ := lx.peekRune()
	lx.bumpRune()
	return lx.errorf(diag.LexUnknownChar, lx.cursor.SpanFrom(start), start.Pos, "unrecognized character %q", r)
}

// emit собирает токен от метки до текущей позиции курсора.
func (lx *Lexer) emit(kind token.Kind, start Mark, raw []byte) token.Token {
	return token.Token{
		Kind:  kind,
		Span:  lx.cursor.SpanFrom(start),
		Start: start.Pos,
		End:   lx.cursor.Pos(),
		Raw:   raw,
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
