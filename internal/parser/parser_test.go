package parser_test

import (
	"errors"
	"strings"
	"testing"

	"mcl/internal/diag"
	"mcl/internal/lexer"
	"mcl/internal/parser"
	"mcl/internal/source"
	"mcl/internal/token"
	"mcl/internal/value"
)

func lexString(t *testing.T, input string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.mcl", []byte(input)))
	tokens, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		t.Fatalf("lex %q: %v", input, err)
	}
	return tokens
}

func parseString(t *testing.T, input string, opts parser.Options) (value.Value, error) {
	t.Helper()
	return parser.Parse(lexString(t, input), opts)
}

func TestParseDocuments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"nested table", `foo { bar "baz" }`, `{foo: {bar: "baz"}}`},
		{"implicit list", `"marky" 32 23.23 null`, `["marky", 32, 23.23, null]`},
		{"implicit table", `a 1 b 2`, `{a: 1, b: 2}`},
		{"comment then scalar", "// note\n5", `5`},
		{"duplicate key", `a 1 a 2`, `{a: 2}`},
		{"empty table", `{}`, `{}`},
		{"empty list", `[]`, `[]`},
		{"explicit table", `{ name "x" list [1 2 [3]] }`, `{list: [1, 2, [3]], name: "x"}`},
		{"list of tables", `[ {a 1} {a 2} ]`, `[{a: 1}, {a: 2}]`},
		{"bare true", `true`, `true`},
		{"bare string", `"x"`, `"x"`},
		{"two scalars", `1 2`, `[1, 2]`},
		{"string first means list", `"k" 1`, `["k", 1]`},
		{"numbers", `[0.5 -3 +7 0]`, `[0.5, -3, 7, 0]`},
		{"zero flag splits", `[01]`, `[0, 1]`},
		{"float keeps kind", `x 2.0`, `{x: 2.0}`},
		{"string keys", "{ \"with space\" 1 `tmpl` 2 }", `{"with space": 1, tmpl: 2}`},
		{"escapes", `s "a\"b\\c\nd\q"`, `{s: "a\"b\\c\nd` + `q"}`},
		{"template", "t `line1\nline2`", `{t: "line1\nline2"}`},
		{"keywords", `{ t true f false n null }`, `{f: false, n: null, t: true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseString(t, tt.input, parser.Options{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := v.Repr(); got != tt.want {
				t.Errorf("got %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestParseKinds(t *testing.T) {
	v, err := parseString(t, `i 32 f 23.23 s "x" b true n null`, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]value.Kind{
		"i": value.KindInt, "f": value.KindFloat, "s": value.KindString,
		"b": value.KindBool, "n": value.KindNull,
	}
	for key, kind := range want {
		item, ok := v.Get(key)
		if !ok || item.Kind() != kind {
			t.Errorf("%s: got %v, want %v", key, item.Kind(), kind)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code // outermost
		root  diag.Code // innermost
		line  uint32
		col   uint32
	}{
		{"empty", "", diag.SynUnexpectedEOF, diag.SynUnexpectedEOF, 1, 1},
		{"only comment", "// c\n", diag.SynUnexpectedEOF, diag.SynUnexpectedEOF, 2, 1},
		{"ambiguous barewords", "a b c", diag.SynInvalidValue, diag.SynInvalidValue, 1, 3},
		{"missing value", "a", diag.SynUnexpectedEOF, diag.SynUnexpectedEOF, 1, 2},
		{"number key", "{ 1 2 }", diag.SynInvalidKey, diag.SynInvalidKey, 1, 3},
		{"delimiter as value", "{ a }", diag.SynInvalidValue, diag.SynInvalidValue, 1, 5},
		{"stray closer in list", "1 ]", diag.SynInvalidValue, diag.SynInvalidValue, 1, 3},
		{"unclosed table", "{ a 1", diag.SynUnclosedTable, diag.SynUnclosedTable, 1, 1},
		{"unclosed list", "[1 2", diag.SynUnclosedList, diag.SynUnclosedList, 1, 1},
		{"nested unclosed", "a {", diag.SynNestedTable, diag.SynUnclosedTable, 1, 3},
		{"nested failure", "a { b [1 }", diag.SynNestedTable, diag.SynInvalidValue, 1, 3},
		{"trailing tokens", "{a 1} b", diag.SynTrailingTokens, diag.SynTrailingTokens, 1, 7},
		{"trailing after list", "[] []", diag.SynTrailingTokens, diag.SynTrailingTokens, 1, 4},
		{"sign only", "-", diag.SynNumberFormat, diag.SynNumberFormat, 1, 1},
		{"integer overflow", "99999999999999999999", diag.SynNumberFormat, diag.SynNumberFormat, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseString(t, tt.input, parser.Options{})
			if err == nil {
				t.Fatalf("expected error, got %s", v.Repr())
			}
			var de *diag.Error
			if !errors.As(err, &de) {
				t.Fatalf("expected *diag.Error, got %T", err)
			}
			if got := diag.CodeOf(err); got != tt.code {
				t.Errorf("code = %s, want %s", got.ID(), tt.code.ID())
			}
			if got := diag.RootCode(err); got != tt.root {
				t.Errorf("root code = %s, want %s", got.ID(), tt.root.ID())
			}
			if de.Pos.Line != tt.line || de.Pos.Col != tt.col {
				t.Errorf("position = %d:%d, want %d:%d", de.Pos.Line, de.Pos.Col, tt.line, tt.col)
			}
		})
	}
}

func TestNestedErrorMessage(t *testing.T) {
	_, err := parseString(t, "a { b [1 }", parser.Options{})
	want := "failed creating a table at 1:3: failed creating a list at 1:7: 1:10: invalid value '}'"
	if err == nil || err.Error() != want {
		t.Fatalf("got %v\nwant %s", err, want)
	}
}

func TestUnclosedNote(t *testing.T) {
	_, err := parseString(t, "[1 2", parser.Options{})
	var de *diag.Error
	if !errors.As(err, &de) {
		t.Fatalf("unexpected error %v", err)
	}
	if len(de.Notes) != 1 || de.Notes[0].Span.Start != 4 {
		t.Errorf("expected a note at end of input, got %+v", de.Notes)
	}
}

func TestAllowUnclosed(t *testing.T) {
	opts := parser.Options{AllowUnclosed: true}
	tests := map[string]string{
		"{ a 1":       `{a: 1}`,
		"a [1 {b 2":   `{a: [1, {b: 2}]}`,
		"[":           `[]`,
		"x { y [1 2]": `{x: {y: [1, 2]}}`,
	}
	for input, want := range tests {
		v, err := parseString(t, input, opts)
		if err != nil {
			t.Errorf("%q: unexpected error %v", input, err)
			continue
		}
		if got := v.Repr(); got != want {
			t.Errorf("%q: got %s, want %s", input, got, want)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	nested := func(n int) string {
		return strings.Repeat("[", n) + strings.Repeat("]", n)
	}

	if _, err := parseString(t, nested(5), parser.Options{MaxDepth: 5}); err != nil {
		t.Fatalf("depth 5 must pass with MaxDepth 5: %v", err)
	}
	_, err := parseString(t, nested(6), parser.Options{MaxDepth: 5})
	if diag.CodeOf(err) != diag.SynTooDeep {
		t.Fatalf("expected SynTooDeep, got %v", err)
	}

	// ошибка глубины не оборачивается на каждом уровне
	_, err = parseString(t, nested(parser.DefaultMaxDepth+1), parser.Options{})
	if diag.CodeOf(err) != diag.SynTooDeep || diag.HasCode(err, diag.SynNestedList) {
		t.Fatalf("expected bare SynTooDeep, got %v", err)
	}
	var de *diag.Error
	errors.As(err, &de)
	if de.Pos.Col != uint32(parser.DefaultMaxDepth+1) {
		t.Errorf("TooDeep must point at the offending opener, got %v", de.Pos)
	}
}

func TestNormalizeNFC(t *testing.T) {
	decomposed := "e\u0301"
	input := `"` + decomposed + `" 1`
	v, err := parseString(t, input, parser.Options{NormalizeNFC: true})
	if err != nil {
		t.Fatal(err)
	}
	first, _ := v.Index(0)
	if s, _ := first.AsString(); s != "\u00e9" {
		t.Errorf("expected NFC form, got %q", s)
	}

	keyed, err := parseString(t, "{ `"+decomposed+"` 1 }", parser.Options{NormalizeNFC: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := keyed.Get("\u00e9"); !ok {
		t.Errorf("keys must be normalized too, got %s", keyed.Repr())
	}

	raw, err := parseString(t, input, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	first, _ = raw.Index(0)
	if s, _ := first.AsString(); s != decomposed {
		t.Errorf("without NormalizeNFC the bytes must be kept, got %q", s)
	}
}

func TestReporterGetsFlattenedError(t *testing.T) {
	bag := diag.NewBag(10)
	_, err := parseString(t, "a { b [1 }", parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err == nil {
		t.Fatal("expected error")
	}
	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.SynInvalidValue || len(d.Notes) != 2 {
		t.Errorf("unexpected diagnostic %+v", d)
	}
}

func TestTokensWithoutEOF(t *testing.T) {
	tokens := lexString(t, "a [1 2]")
	v, err := parser.Parse(tokens[:len(tokens)-1], parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if v.Repr() != `{a: [1, 2]}` {
		t.Errorf("got %s", v.Repr())
	}
	_, err = parser.Parse(nil, parser.Options{})
	if diag.CodeOf(err) != diag.SynUnexpectedEOF {
		t.Fatalf("empty stream must fail with SynUnexpectedEOF, got %v", err)
	}
	var de *diag.Error
	if !errors.As(err, &de) || de.Pos != (source.LineCol{Line: 1, Col: 1}) {
		t.Errorf("empty stream error must point at 1:1, got %+v", de)
	}
}

func TestWhitespaceAndCommentsDoNotChangeTree(t *testing.T) {
	compact := `{a 1 b [true "x"] c {d null}}`
	spaced := "/* head */\n{\n  a 1 // one\n  b [ true\t\"x\" ]\r\n  c { d null } /* tail */\n}\n"

	v1, err := parseString(t, compact, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	v2, err := parseString(t, spaced, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !v1.Equal(v2) {
		t.Errorf("trees differ:\n%s\n%s", v1.Repr(), v2.Repr())
	}
}

func TestStringsWithoutBackslashRoundTrip(t *testing.T) {
	for _, s := range []string{"", "plain", "ünïcødé ✓", "tabs\tinside", "'single'"} {
		v, err := parseString(t, `k "`+s+`"`, parser.Options{})
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		got, _ := v.Get("k")
		if str, _ := got.AsString(); str != s {
			t.Errorf("round trip %q -> %q", s, str)
		}
	}
}

func TestDeterminism(t *testing.T) {
	input := `root { list [1 2.5 "s" {k "v"}] flag true }`
	first, err := parseString(t, input, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := parseString(t, input, parser.Options{})
		if err != nil || !again.Equal(first) || again.Repr() != first.Repr() {
			t.Fatalf("run %d differs: %v %s", i, err, again.Repr())
		}
	}
}
