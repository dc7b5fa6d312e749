package parser

import (
	"bytes"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"mcl/internal/diag"
	"mcl/internal/token"
	"mcl/internal/value"
)

// parseKey: строка, шаблонная строка или bareword.
func (p *Parser) parseKey() (string, *diag.Error) {
	tok := p.peek()
	switch tok.Kind {
	case token.StringLit, token.TemplateLit, token.Ident:
		p.advance()
		return p.decodeString(tok), nil
	case token.EOF:
		return "", p.errorAt(diag.SynExpectKey, tok, "expected a key")
	default:
		return "", p.errorAt(diag.SynInvalidKey, tok, "invalid key %s", tok)
	}
}

func (p *Parser) parseValue() (value.Value, *diag.Error) {
	tok := p.peek()
	switch tok.Kind {
	case token.KwTrue:
		p.advance()
		return value.FromBool(true), nil
	case token.KwFalse:
		p.advance()
		return value.FromBool(false), nil
	case token.KwNull:
		p.advance()
		return value.Null(), nil
	case token.StringLit, token.TemplateLit:
		p.advance()
		return value.FromString(p.decodeString(tok)), nil
	case token.NumberLit:
		p.advance()
		return p.parseNumber(tok)
	case token.LBrace, token.LBracket:
		return p.parseNested(tok)
	case token.EOF:
		return value.Value{}, p.errorAt(diag.SynUnexpectedEOF, tok, "unexpected end of tokens, expected a value")
	default:
		return value.Value{}, p.errorAt(diag.SynInvalidValue, tok, "invalid value %s", tok)
	}
}

// parseNumber: без '.' — int64, с '.' — float64.
func (p *Parser) parseNumber(tok token.Token) (value.Value, *diag.Error) {
	text := tok.Text()
	if bytes.IndexByte(tok.Raw, '.') < 0 {
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return value.Value{}, p.errorAt(diag.SynNumberFormat, tok, "malformed integer %q: %v", text, numErr(err))
		}
		return value.FromInt(i), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return value.Value{}, p.errorAt(diag.SynNumberFormat, tok, "malformed float %q: %v", text, numErr(err))
	}
	return value.FromFloat(f), nil
}

// numErr отрезает от *strconv.NumError повтор функции и входа.
func numErr(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}

// decodeString копирует тело строки из буфера, разбирая escape только при наличии '\'.
func (p *Parser) decodeString(tok token.Token) string {
	var s string
	if bytes.IndexByte(tok.Raw, '\\') >= 0 {
		s = Unescape(tok.Raw)
	} else {
		s = string(tok.Raw)
	}
	if p.opts.NormalizeNFC {
		s = norm.NFC.String(s)
	}
	return s
}
