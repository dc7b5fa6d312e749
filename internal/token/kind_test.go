package token_test

import (
	"testing"

	"mcl/internal/source"
	"mcl/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsString(t *testing.T) {
	if !tok(token.StringLit).IsString() || !tok(token.TemplateLit).IsString() {
		t.Fatal("quoted and template strings are strings")
	}
	if tok(token.Ident).IsString() {
		t.Fatal("Ident must not be string")
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.EOF:       "EOF",
		token.LBrace:    "LBrace",
		token.NumberLit: "NumberLit",
		token.KwNull:    "KwNull",
		token.Kind(200): "Kind(?)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.NumberLit, Raw: []byte("12")}, `number "12"`},
		{token.Token{Kind: token.StringLit, Raw: []byte{}}, `string ""`},
		{token.Token{Kind: token.RBrace}, `'}'`},
		{token.Token{Kind: token.EOF}, "end of input"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	tk := token.Token{
		Kind:  token.Ident,
		Span:  source.Span{Start: 4, End: 7},
		Start: source.LineCol{Line: 2, Col: 1},
		End:   source.LineCol{Line: 2, Col: 4},
		Raw:   []byte("foo"),
	}
	if p := tk.StartPos(); p.Off != 4 || p.Line != 2 || p.Col != 1 {
		t.Errorf("StartPos = %+v", p)
	}
	if p := tk.EndPos(); p.Off != 7 || p.Col != 4 {
		t.Errorf("EndPos = %+v", p)
	}
	if tk.Text() != "foo" {
		t.Errorf("Text = %q", tk.Text())
	}
}
