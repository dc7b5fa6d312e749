package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"mcl/internal/value"
)

func sampleTree() value.Value {
	return value.FromMap(map[string]value.Value{
		"name":  value.FromString("say \"hi\"\n"),
		"ports": value.FromSlice([]value.Value{value.FromInt(80), value.FromFloat(2)}),
		"empty": value.FromSlice(nil),
		"opts":  value.FromMap(map[string]value.Value{"on": value.FromBool(true), "x": value.Null()}),
	})
}

func TestFormatValuePretty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatValuePretty(&buf, sampleTree(), ValueOpts{}); err != nil {
		t.Fatal(err)
	}
	want := `{
  empty []
  name "say \"hi\"\n"
  opts {
    on true
    x null
  }
  ports [
    80
    2.0
  ]
}
`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatValuePrettyScalarsAndIndent(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatValuePretty(&buf, value.FromInt(-3), ValueOpts{}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "-3\n" {
		t.Errorf("got %q", buf.String())
	}

	buf.Reset()
	list := value.FromSlice([]value.Value{value.FromString("a")})
	if err := FormatValuePretty(&buf, list, ValueOpts{Indent: "\t"}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[\n\t\"a\"\n]\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestQuoteString(t *testing.T) {
	cases := map[string]string{
		"plain":      `"plain"`,
		"tab\there":  `"tab\there"`,
		`back\slash`: `"back\\slash"`,
		"héllo":      `"héllo"`,
	}
	for in, want := range cases {
		if got := QuoteString(in); got != want {
			t.Errorf("QuoteString(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestFormatValueJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatValueJSON(&buf, sampleTree()); err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if decoded["name"] != "say \"hi\"\n" {
		t.Errorf("unexpected name %v", decoded["name"])
	}
	if !bytes.Contains(buf.Bytes(), []byte("2.0")) {
		t.Errorf("float must keep fraction:\n%s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("\n  \"empty\": []")) {
		t.Errorf("output must be indented:\n%s", buf.String())
	}
}

func TestFormatValueMsgpack(t *testing.T) {
	var buf bytes.Buffer
	tree := sampleTree()
	if err := FormatValueMsgpack(&buf, tree); err != nil {
		t.Fatal(err)
	}
	var back value.Value
	if err := msgpack.NewDecoder(&buf).Decode(&back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(tree) {
		t.Errorf("msgpack changed the tree: %s", back.Repr())
	}
}

func TestFormatValuePrettyKeysAndFloats(t *testing.T) {
	tree := value.FromMap(map[string]value.Value{
		"with space": value.FromFloat(1e21),
		"true":       value.FromFloat(-0.5),
		"tiny":       value.FromFloat(1e-7),
	})
	var buf bytes.Buffer
	if err := FormatValuePretty(&buf, tree, ValueOpts{}); err != nil {
		t.Fatal(err)
	}
	want := "{\n  tiny 0.0000001\n  \"true\" -0.5\n  \"with space\" 1000000000000000000000.0\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
