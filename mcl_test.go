package mcl_test

import (
	"errors"
	"testing"

	"mcl"
)

func TestParseString(t *testing.T) {
	v, err := mcl.ParseString(`server { host "localhost" ports [80 443] }`)
	if err != nil {
		t.Fatal(err)
	}
	host, ok := v.Lookup("server", "host")
	if !ok {
		t.Fatal("server.host missing")
	}
	if s, _ := host.AsString(); s != "localhost" {
		t.Errorf("host = %q", s)
	}
	port, _ := v.Lookup("server", "ports", "1")
	if port.Kind() != mcl.KindInt {
		t.Errorf("port kind = %v", port.Kind())
	}
}

func TestParseBytesMatchesParseString(t *testing.T) {
	const doc = `"marky" 32 23.23 null`
	a, errA := mcl.ParseString(doc)
	b, errB := mcl.Parse([]byte(doc))
	if errA != nil || errB != nil {
		t.Fatal(errA, errB)
	}
	if !a.Equal(b) || a.Kind() != mcl.KindList {
		t.Errorf("got %s and %s", a.Repr(), b.Repr())
	}
}

func TestBareScalarDocument(t *testing.T) {
	v, err := mcl.ParseString("// note\n5")
	if err != nil {
		t.Fatal(err)
	}
	if i, ok := v.AsInt(); !ok || i != 5 {
		t.Errorf("expected Integer(5), got %s", v.Repr())
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		input string
		code  mcl.Code
	}{
		{`"abc`, mcl.ErrUnterminatedString},
		{"a\xffb", mcl.ErrInvalidEncoding},
		{"a b c", mcl.ErrInvalidValue},
		{"{ a 1", mcl.ErrUnclosedTable},
		{"a [1 }", mcl.ErrInvalidValue},
	}
	for _, tt := range tests {
		_, err := mcl.ParseString(tt.input)
		if !mcl.HasCode(err, tt.code) {
			t.Errorf("%q: expected %s, got %v", tt.input, tt.code.ID(), err)
		}
		var me *mcl.Error
		if !errors.As(err, &me) {
			t.Errorf("%q: error is %T, want *mcl.Error", tt.input, err)
		}
	}

	_, err := mcl.ParseString(`"abc`)
	var me *mcl.Error
	errors.As(err, &me)
	if me.Pos.Line != 1 || me.Pos.Col != 1 {
		t.Errorf("unterminated string must be located at 1:1, got %v", me.Pos)
	}
}

func TestErrorCodes(t *testing.T) {
	_, err := mcl.ParseString(`a { b }`)
	if got := mcl.CodeOf(err); got != mcl.ErrNestedTable {
		t.Errorf("CodeOf = %s, want %s", got.ID(), mcl.ErrNestedTable.ID())
	}
	if got := mcl.RootCode(err); got != mcl.ErrInvalidValue {
		t.Errorf("RootCode = %s, want %s", got.ID(), mcl.ErrInvalidValue.ID())
	}
	if mcl.CodeOf(nil) != mcl.RootCode(nil) {
		t.Error("nil error must map to the same unknown code")
	}
}

func TestParseWithOptions(t *testing.T) {
	v, err := mcl.ParseWithOptions([]byte("a [1 2"), mcl.Options{AllowUnclosed: true})
	if err != nil {
		t.Fatal(err)
	}
	if v.Repr() != `{a: [1, 2]}` {
		t.Errorf("got %s", v.Repr())
	}

	_, err = mcl.ParseWithOptions([]byte("[[[]]]"), mcl.Options{MaxDepth: 2})
	if !mcl.HasCode(err, mcl.ErrTooDeep) {
		t.Errorf("expected ErrTooDeep, got %v", err)
	}
}

func TestTokenize(t *testing.T) {
	toks, err := mcl.Tokenize([]byte("01"))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 3 || toks[0].Text() != "0" || toks[1].Text() != "1" {
		t.Errorf("expected 0, 1, EOF; got %v", toks)
	}
}
