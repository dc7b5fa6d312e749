package parser

import (
	"mcl/internal/diag"
	"mcl/internal/token"
	"mcl/internal/value"
)

// parseContainer разбирает '{...}' или '[...]', начиная с открывающего токена.
func (p *Parser) parseContainer(open token.Token) (value.Value, *diag.Error) {
	if p.depth >= p.opts.maxDepth() {
		return value.Value{}, p.errorAt(diag.SynTooDeep, open, "nesting deeper than %d levels", p.opts.maxDepth())
	}
	p.depth++
	defer func() { p.depth-- }()

	p.advance()
	if open.Kind == token.LBrace {
		entries, err := p.parseTableBody(&open)
		if err != nil {
			return value.Value{}, err
		}
		return value.FromMap(entries), nil
	}
	items, err := p.parseListBody(&open)
	if err != nil {
		return value.Value{}, err
	}
	return value.FromSlice(items), nil
}

// parseNested оборачивает ошибку вложенного контейнера его позицией.
func (p *Parser) parseNested(open token.Token) (value.Value, *diag.Error) {
	v, err := p.parseContainer(open)
	if err == nil {
		return v, nil
	}
	// иначе одна ошибка глубины превратится в сотни обёрток
	if err.Code == diag.SynTooDeep {
		return value.Value{}, err
	}
	code, msg := diag.SynNestedTable, "failed creating a table"
	if open.Kind == token.LBracket {
		code, msg = diag.SynNestedList, "failed creating a list"
	}
	return value.Value{}, diag.Wrap(code, open.Span, open.Start, msg, err)
}

// parseTableBody читает пары "ключ значение" до '}' или EOF.
// open == nil — неявная таблица верхнего уровня, закрывается только EOF.
func (p *Parser) parseTableBody(open *token.Token) (map[string]value.Value, *diag.Error) {
	entries := make(map[string]value.Value)
	for {
		tok := p.peek()
		if open != nil && tok.Kind == token.RBrace {
			p.advance()
			return entries, nil
		}
		if tok.Kind == token.EOF {
			return entries, p.checkClosed(open, tok)
		}

		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		// повторный ключ перезаписывает предыдущий
		entries[key] = val
	}
}

// parseListBody читает значения до ']' или EOF.
func (p *Parser) parseListBody(open *token.Token) ([]value.Value, *diag.Error) {
	items := make([]value.Value, 0, 4)
	for {
		tok := p.peek()
		if open != nil && tok.Kind == token.RBracket {
			p.advance()
			return items, nil
		}
		if tok.Kind == token.EOF {
			return items, p.checkClosed(open, tok)
		}

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, val)
	}
}

// checkClosed решает, что делать с контейнером, до конца которого не дошли.
func (p *Parser) checkClosed(open *token.Token, eof token.Token) *diag.Error {
	if open == nil || p.opts.AllowUnclosed {
		return nil
	}
	code, msg := diag.SynUnclosedTable, "unclosed table, expected '}'"
	if open.Kind == token.LBracket {
		code, msg = diag.SynUnclosedList, "unclosed list, expected ']'"
	}
	err := p.errorAt(code, *open, "%s", msg)
	err.Diagnostic = err.Diagnostic.WithNote(eof.Span, "input ends here")
	return err
}

func (p *Parser) errorAt(code diag.Code, tok token.Token, format string, args ...any) *diag.Error {
	return diag.Errorf(code, tok.Span, tok.Start, format, args...)
}
