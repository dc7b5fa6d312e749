package diagfmt

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"mcl/internal/value"
)

type valuePalette struct {
	key, str, num, lit, punct *color.Color
}

func newValuePalette(enabled bool) valuePalette {
	p := valuePalette{
		key:   color.New(color.FgCyan),
		str:   color.New(color.FgGreen),
		num:   color.New(color.FgYellow),
		lit:   color.New(color.FgMagenta),
		punct: color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.key, p.str, p.num, p.lit, p.punct} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// FormatValuePretty печатает дерево в синтаксисе MCL: ключи таблиц
// отсортированы, каждый элемент на своей строке. Без цвета вывод
// разбирается обратно в то же дерево.
//
//	{
//	  name "demo"
//	  ports [
//	    80
//	  ]
//	}
func FormatValuePretty(w io.Writer, v value.Value, opts ValueOpts) error {
	var sb strings.Builder
	pr := valuePrinter{b: &sb, p: newValuePalette(opts.Color), indent: opts.indent()}
	pr.value(v, 0)
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

type valuePrinter struct {
	b      *strings.Builder
	p      valuePalette
	indent string
}

func (pr *valuePrinter) pad(depth int) {
	pr.b.WriteString(strings.Repeat(pr.indent, depth))
}

func (pr *valuePrinter) value(v value.Value, depth int) {
	switch v.Kind() {
	case value.KindNull:
		pr.b.WriteString(pr.p.lit.Sprint("null"))
	case value.KindBool:
		b, _ := v.AsBool()
		pr.b.WriteString(pr.p.lit.Sprint(strconv.FormatBool(b)))
	case value.KindInt:
		n, _ := v.AsInt()
		pr.b.WriteString(pr.p.num.Sprint(strconv.FormatInt(n, 10)))
	case value.KindFloat:
		f, _ := v.AsFloat()
		pr.b.WriteString(pr.p.num.Sprint(formatFloat(f)))
	case value.KindString:
		s, _ := v.AsString()
		pr.b.WriteString(pr.p.str.Sprint(QuoteString(s)))
	case value.KindList:
		items, _ := v.AsSlice()
		if len(items) == 0 {
			pr.b.WriteString(pr.p.punct.Sprint("[]"))
			return
		}
		pr.b.WriteString(pr.p.punct.Sprint("["))
		pr.b.WriteByte('\n')
		for _, item := range items {
			pr.pad(depth + 1)
			pr.value(item, depth+1)
			pr.b.WriteByte('\n')
		}
		pr.pad(depth)
		pr.b.WriteString(pr.p.punct.Sprint("]"))
	case value.KindTable:
		keys := v.Keys()
		if len(keys) == 0 {
			pr.b.WriteString(pr.p.punct.Sprint("{}"))
			return
		}
		pr.b.WriteString(pr.p.punct.Sprint("{"))
		pr.b.WriteByte('\n')
		for _, k := range keys {
			child, _ := v.Get(k)
			pr.pad(depth + 1)
			pr.b.WriteString(pr.p.key.Sprint(formatKey(k)))
			pr.b.WriteByte(' ')
			pr.value(child, depth+1)
			pr.b.WriteByte('\n')
		}
		pr.pad(depth)
		pr.b.WriteString(pr.p.punct.Sprint("}"))
	}
}

// formatFloat без экспоненты: сканер понимает только цифры и одну точку.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatKey(k string) string {
	if value.FormatKey(k) == k {
		return k
	}
	return QuoteString(k)
}

// QuoteString пишет строку так, чтобы сканер прочитал её обратно:
// экранируются только кавычка, обратный слеш и \n \r \t.
func QuoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// FormatValueJSON пишет дерево как JSON с отступами и отсортированными ключами.
func FormatValueJSON(w io.Writer, v value.Value) error {
	return writeIndentedJSON(w, v)
}

// FormatValueMsgpack пишет дерево в msgpack.
func FormatValueMsgpack(w io.Writer, v value.Value) error {
	return msgpack.NewEncoder(w).Encode(v)
}
