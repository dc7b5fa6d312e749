package lexer

import (
	"mcl/internal/diag"
	"mcl/internal/token"
)

// scanString: "..." в одну строку. Обратный слэш пропускает следующий байт,
// поэтому \" строку не закрывает. Raw — тело без кавычек, escape не разбираем.
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	body := lx.cursor.Off

	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			raw := lx.file.Content[body:lx.cursor.Off]
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start, raw), nil
		case '\n':
			at := lx.cursor.Mark()
			lx.cursor.Bump()
			return token.Token{}, lx.errorf(diag.LexNewlineInString, lx.cursor.SpanFrom(at), at.Pos,
				"cannot use newline character in strings")
		case '\\':
			lx.cursor.Bump()
			// перевод строки после '\' всё равно запрещён
			if lx.cursor.Peek() != '\n' {
				lx.bumpRune()
			}
		default:
			lx.bumpRune()
		}
	}

	return token.Token{}, lx.errorf(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), start.Pos,
		"unterminated string")
}

// scanTemplate: `...` может занимать несколько строк. '\' забирает следующий
// байт как есть, так что \` не закрывает строку.
func (lx *Lexer) scanTemplate() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '`'
	body := lx.cursor.Off

	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '`':
			raw := lx.file.Content[body:lx.cursor.Off]
			lx.cursor.Bump()
			return lx.emit(token.TemplateLit, start, raw), nil
		case '\\':
			lx.cursor.Bump()
			lx.bumpRune()
		default:
			lx.bumpRune()
		}
	}

	return token.Token{}, lx.errorf(diag.LexUnterminatedTemplate, lx.cursor.SpanFrom(start), start.Pos,
		"unterminated template string")
}
