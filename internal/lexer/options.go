package lexer

import (
	"mcl/internal/diag"
	"mcl/internal/source"
)

type Options struct {
	// Reporter получает первую ошибку лексера; nil — ошибка только возвращается.
	Reporter diag.Reporter
}

// errorf строит ошибку, отдаёт её репортеру и возвращает вызывающему.
func (lx *Lexer) errorf(code diag.Code, sp source.Span, pos source.LineCol, format string, args ...any) *diag.Error {
	err := diag.Errorf(code, sp, pos, format, args...)
	if lx.opts.Reporter != nil {
		err.Report(lx.opts.Reporter)
	}
	return err
}
