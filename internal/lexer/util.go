package lexer

import (
	"fmt"
	"unicode/utf8"

	"mcl/internal/diag"
	"mcl/internal/source"

	"fortio.org/safecast"
)

// ===== Работа с рунами поверх Cursor =====

// peekRune читает текущий байт как руну
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
}

// bumpRune сдвигает курсор на всю руну (строка/колонка ведутся по байтам)
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	for range sz {
		lx.cursor.Bump()
	}
}

func runeLen(sz int) uint32 {
	n, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	return n
}

// checkEncoding ищет первый байт, не образующий корректный UTF-8.
func (lx *Lexer) checkEncoding() error {
	content := lx.file.Content
	if utf8.Valid(content) {
		return nil
	}
	off := 0
	for off < len(content) {
		r, sz := utf8.DecodeRune(content[off:])
		if r == utf8.RuneError && sz <= 1 {
			break
		}
		off += sz
	}
	start, err := safecast.Conv[uint32](off)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	pos := lx.file.Position(start)
	sp := source.Span{File: lx.file.ID, Start: start, End: start + 1}
	return lx.errorf(diag.LexInvalidEncoding, sp, pos.LineCol, "invalid UTF-8 byte 0x%02x", content[off])
}

// ===== Классификаторы =====

// Идентификаторы только ASCII.
func isIdentStartByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b) || b == '_'
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isNumberStartByte(b byte) bool {
	return isDec(b) || b == '+' || b == '-'
}
