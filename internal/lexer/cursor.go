package lexer

import (
	"fmt"

	"mcl/internal/source"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в файле: смещение плюс строка/колонка.
// Колонка считается в байтах, как и в FileSet.Resolve.
type Cursor struct {
	File *source.File
	Off  uint32
	Line uint32
	Col  uint32
	end  uint32 // len(File.Content)
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File: f,
		Off:  0,
		Line: 1,
		Col:  1,
		end:  end,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.end
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт.
// '\n' переводит курсор на следующую строку.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	if b == '\n' {
		c.Line++
		c.Col = 1
	} else {
		c.Col++
	}
	return b
}

// Pos возвращает текущую строку и колонку.
func (c *Cursor) Pos() source.LineCol {
	return source.LineCol{Line: c.Line, Col: c.Col}
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark struct {
	Off uint32
	Pos source.LineCol
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Pos: c.Pos()}
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: m.Off,
		End:   c.Off,
	}
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Bump()
		return true
	}
	return false
}
