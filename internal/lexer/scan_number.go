package lexer

import (
	"mcl/internal/diag"
	"mcl/internal/token"
)

// scanNumber: [0-9+-] затем цифры, максимум одна '.' за которой обязана идти цифра.
// Ведущий '0' поднимает флаг zero: пока он стоит, цифры в токен не берутся,
// поэтому "01" — это два токена "0" и "1". Точка флаг снимает ("0.5").
// Проверка формы ("+", "-") остаётся парсеру.
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.cursor.Mark()
	zero := lx.cursor.Peek() == '0'
	point := false
	lx.cursor.Bump()

scan:
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isDec(b) && !zero:
			lx.cursor.Bump()
		case b == '.' && !point:
			point = true
			zero = false
			lx.cursor.Bump()
			if err := lx.expectFractionDigit(); err != nil {
				return token.Token{}, err
			}
		default:
			break scan
		}
	}

	return lx.emit(token.NumberLit, start, lx.file.Content[start.Off:lx.cursor.Off]), nil
}

func (lx *Lexer) expectFractionDigit() error {
	at := lx.cursor.Mark()
	if lx.cursor.EOF() {
		return lx.errorf(diag.LexInvalidDecimalPoint, lx.emptySpan(), at.Pos,
			"decimal point must be followed with a digit, but no bytes left")
	}
	if isDec(lx.cursor.Peek()) {
		return nil
	}
	r, sz := lx.peekRune()
	sp := lx.cursor.SpanFrom(at)
	sp.End += runeLen(sz)
	return lx.errorf(diag.LexInvalidDecimalPoint, sp, at.Pos,
		"decimal point must be followed with a digit, not %q", r)
}
