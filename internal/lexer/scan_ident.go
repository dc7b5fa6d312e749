package lexer

import (
	"mcl/internal/token"
)

// scanIdentOrKeyword сканирует [A-Za-z][A-Za-z0-9_]* и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые (только lowercase) и не несут Raw.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	lex := lx.file.Content[start.Off:lx.cursor.Off]
	if k, ok := token.LookupKeyword(string(lex)); ok {
		return lx.emit(k, start, nil)
	}
	return lx.emit(token.Ident, start, lex)
}
