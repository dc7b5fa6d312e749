package parser

import (
	"mcl/internal/diag"
	"mcl/internal/source"
	"mcl/internal/token"
	"mcl/internal/value"
)

// DefaultMaxDepth ограничивает вложенность контейнеров, когда Options.MaxDepth не задан.
const DefaultMaxDepth = 512

type Options struct {
	// AllowUnclosed принимает контейнеры, у которых вход закончился до '}' / ']'.
	AllowUnclosed bool
	// NormalizeNFC приводит ключи и строки к Unicode NFC.
	NormalizeNFC bool
	// MaxDepth — максимальная вложенность; <= 0 означает DefaultMaxDepth.
	MaxDepth int
	Reporter diag.Reporter
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Parser — состояние разбора одного потока токенов
type Parser struct {
	tokens []token.Token
	pos    int
	eof    token.Token // отдаётся peek() после конца потока
	depth  int
	opts   Options
}

func New(tokens []token.Token, opts Options) *Parser {
	p := &Parser{tokens: tokens, opts: opts}
	p.eof = syntheticEOF(tokens)
	return p
}

// Parse builds the value tree for tokens. The stream normally ends with an
// EOF token; a stream without one is treated as if it had it.
func Parse(tokens []token.Token, opts Options) (value.Value, error) {
	return New(tokens, opts).Parse()
}

// Parse разбирает весь поток. Ошибка (если есть) уходит и в Reporter.
func (p *Parser) Parse() (value.Value, error) {
	v, err := p.parseDocument()
	if err != nil {
		if p.opts.Reporter != nil {
			err.Report(p.opts.Reporter)
		}
		return value.Value{}, err
	}
	return v, nil
}

// parseDocument выбирает форму документа по первому токену.
func (p *Parser) parseDocument() (value.Value, *diag.Error) {
	first := p.peek()
	switch first.Kind {
	case token.EOF:
		return value.Value{}, p.errorAt(diag.SynUnexpectedEOF, first, "unexpected end of tokens")

	case token.LBrace:
		v, err := p.parseContainer(first)
		if err != nil {
			return value.Value{}, err
		}
		return v, p.expectEnd()

	case token.LBracket:
		v, err := p.parseContainer(first)
		if err != nil {
			return value.Value{}, err
		}
		return v, p.expectEnd()

	case token.Ident:
		entries, err := p.parseTableBody(nil)
		if err != nil {
			return value.Value{}, err
		}
		return value.FromMap(entries), nil

	default:
		items, err := p.parseListBody(nil)
		if err != nil {
			return value.Value{}, err
		}
		// одиночное значение (например, "5") — это сам документ
		if len(items) == 1 {
			return items[0], nil
		}
		return value.FromSlice(items), nil
	}
}

// expectEnd проверяет, что после корневого контейнера ничего не осталось.
func (p *Parser) expectEnd() *diag.Error {
	tok := p.peek()
	if tok.Kind == token.EOF {
		return nil
	}
	return p.errorAt(diag.SynTrailingTokens, tok, "unexpected %s after the end of the document", tok)
}

func (p *Parser) peek() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.eof
}

// advance съедает текущий токен; на EOF стоит на месте.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func syntheticEOF(tokens []token.Token) token.Token {
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		if last.Kind == token.EOF {
			return last
		}
		sp := last.Span
		sp.Start = sp.End
		return token.Token{Kind: token.EOF, Span: sp, Start: last.End, End: last.End}
	}
	// пустой поток: позиция начала входа
	start := source.LineCol{Line: 1, Col: 1}
	return token.Token{Kind: token.EOF, Start: start, End: start}
}
