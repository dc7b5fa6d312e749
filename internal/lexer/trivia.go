package lexer

import (
	"mcl/internal/diag"
)

// skipTrivia пропускает ' ', '\t', '\r', '\n' и комментарии перед значимым токеном.
// Комментарии не сохраняются.
func (lx *Lexer) skipTrivia() error {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\n':
			lx.cursor.Bump()
		case '/':
			if err := lx.skipComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

// //... до '\n' включительно, /* ... */ без вложенности.
func (lx *Lexer) skipComment() error {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	if lx.cursor.EOF() {
		return lx.errorf(diag.LexBadCommentStart, lx.cursor.SpanFrom(start), start.Pos,
			"expected '/' or '*' but no bytes left")
	}

	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			if lx.cursor.Bump() == '\n' {
				return nil
			}
		}
		// строчный комментарий обязан заканчиваться переводом строки
		return lx.errorf(diag.LexUnterminatedComment, lx.cursor.SpanFrom(start), start.Pos,
			"unterminated comment")

	case '*':
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			if lx.cursor.Bump() == '*' && lx.cursor.Eat('/') {
				return nil
			}
		}
		return lx.errorf(diag.LexUnterminatedComment, lx.cursor.SpanFrom(start), start.Pos,
			"unterminated comment")

	default:
		at := lx.cursor.Mark()
		r, _ := lx.peekRune()
		lx.bumpRune()
		return lx.errorf(diag.LexBadCommentStart, lx.cursor.SpanFrom(at), at.Pos,
			"expected '/' or '*' not %q", r)
	}
}
