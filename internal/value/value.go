package value

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind describes what a Value holds.
type Kind uint8

const (
	// KindNull is the zero Value and the result of `null`.
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindTable
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "integer",
	KindFloat:  "float",
	KindString: "string",
	KindList:   "list",
	KindTable:  "table",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a node of a parsed MCL document. The zero Value is null.
type Value struct {
	data any
}

// Null returns the null value.
func Null() Value { return Value{} }

func FromBool(v bool) Value { return Value{data: v} }

func FromInt(v int64) Value { return Value{data: v} }

func FromFloat(v float64) Value { return Value{data: v} }

func FromString(v string) Value { return Value{data: v} }

// FromSlice wraps items as a list. A nil slice becomes an empty list.
func FromSlice(items []Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{data: items}
}

// FromMap wraps entries as a table. A nil map becomes an empty table.
func FromMap(entries map[string]Value) Value {
	if entries == nil {
		entries = map[string]Value{}
	}
	return Value{data: entries}
}

func (v Value) Kind() Kind {
	switch v.data.(type) {
	case bool:
		return KindBool
	case int64:
		return KindInt
	case float64:
		return KindFloat
	case string:
		return KindString
	case []Value:
		return KindList
	case map[string]Value:
		return KindTable
	default:
		return KindNull
	}
}

func (v Value) IsNull() bool { return v.data == nil }

func (v Value) AsBool() (bool, bool) {
	b, ok := v.data.(bool)
	return b, ok
}

func (v Value) AsInt() (int64, bool) {
	i, ok := v.data.(int64)
	return i, ok
}

// AsFloat returns floats as is and widens integers.
func (v Value) AsFloat() (float64, bool) {
	switch d := v.data.(type) {
	case float64:
		return d, true
	case int64:
		return float64(d), true
	}
	return 0, false
}

func (v Value) AsString() (string, bool) {
	s, ok := v.data.(string)
	return s, ok
}

// AsSlice returns the list items. The slice is shared with the Value.
func (v Value) AsSlice() ([]Value, bool) {
	items, ok := v.data.([]Value)
	return items, ok
}

// AsMap returns the table entries. The map is shared with the Value.
func (v Value) AsMap() (map[string]Value, bool) {
	m, ok := v.data.(map[string]Value)
	return m, ok
}

// Len returns the number of items of a list, entries of a table or bytes of
// a string.
func (v Value) Len() (int, bool) {
	switch d := v.data.(type) {
	case []Value:
		return len(d), true
	case map[string]Value:
		return len(d), true
	case string:
		return len(d), true
	}
	return 0, false
}

// Get looks up key in a table.
func (v Value) Get(key string) (Value, bool) {
	m, ok := v.data.(map[string]Value)
	if !ok {
		return Value{}, false
	}
	item, ok := m[key]
	return item, ok
}

// Index returns the i-th item of a list; negative indices count from the end.
func (v Value) Index(i int) (Value, bool) {
	items, ok := v.data.([]Value)
	if !ok {
		return Value{}, false
	}
	if i < 0 {
		i += len(items)
	}
	if i < 0 || i >= len(items) {
		return Value{}, false
	}
	return items[i], true
}

// Lookup walks a path of table keys and list indices ("servers", "0", "host").
func (v Value) Lookup(path ...string) (Value, bool) {
	cur := v
	for _, seg := range path {
		switch cur.Kind() {
		case KindTable:
			next, ok := cur.Get(seg)
			if !ok {
				return Value{}, false
			}
			cur = next
		case KindList:
			i, err := strconv.Atoi(seg)
			if err != nil {
				return Value{}, false
			}
			next, ok := cur.Index(i)
			if !ok {
				return Value{}, false
			}
			cur = next
		default:
			return Value{}, false
		}
	}
	return cur, true
}

// Keys returns the table keys in sorted order (nil for non-tables).
func (v Value) Keys() []string {
	m, ok := v.data.(map[string]Value)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal compares two trees structurally. Integers and floats never compare
// equal to each other: 1 and 1.0 are different values.
func (v Value) Equal(other Value) bool {
	switch a := v.data.(type) {
	case nil:
		return other.data == nil
	case bool:
		b, ok := other.data.(bool)
		return ok && a == b
	case int64:
		b, ok := other.data.(int64)
		return ok && a == b
	case float64:
		b, ok := other.data.(float64)
		return ok && (a == b || (math.IsNaN(a) && math.IsNaN(b)))
	case string:
		b, ok := other.data.(string)
		return ok && a == b
	case []Value:
		b, ok := other.data.([]Value)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case map[string]Value:
		b, ok := other.data.(map[string]Value)
		if !ok || len(a) != len(b) {
			return false
		}
		for k, av := range a {
			bv, ok := b[k]
			if !ok || !av.Equal(bv) {
				return false
			}
		}
		return true
	}
	return false
}

// Raw converts the tree into plain Go data:
// nil, bool, int64, float64, string, []any, map[string]any.
func (v Value) Raw() any {
	switch d := v.data.(type) {
	case []Value:
		out := make([]any, len(d))
		for i, item := range d {
			out[i] = item.Raw()
		}
		return out
	case map[string]Value:
		out := make(map[string]any, len(d))
		for k, item := range d {
			out[k] = item.Raw()
		}
		return out
	default:
		return d
	}
}

// Repr returns a single-line debug form with sorted table keys,
// e.g. {foo: {bar: "baz"}}.
func (v Value) Repr() string {
	var b strings.Builder
	v.writeRepr(&b)
	return b.String()
}

func (v Value) String() string { return v.Repr() }

func (v Value) writeRepr(b *strings.Builder) {
	switch d := v.data.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		b.WriteString(strconv.FormatBool(d))
	case int64:
		b.WriteString(strconv.FormatInt(d, 10))
	case float64:
		b.WriteString(FormatFloat(d))
	case string:
		b.WriteString(strconv.Quote(d))
	case []Value:
		b.WriteByte('[')
		for i, item := range d {
			if i > 0 {
				b.WriteString(", ")
			}
			item.writeRepr(b)
		}
		b.WriteByte(']')
	case map[string]Value:
		b.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(FormatKey(k))
			b.WriteString(": ")
			d[k].writeRepr(b)
		}
		b.WriteByte('}')
	default:
		fmt.Fprintf(b, "%v", d)
	}
}

// FormatFloat renders f so that it always reads back as a float: integral
// values keep a ".0" suffix.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// FormatKey prints a table key bare when it is a valid MCL identifier and
// quoted otherwise.
func FormatKey(key string) string {
	if isBareKey(key) {
		return key
	}
	return strconv.Quote(key)
}

func isBareKey(key string) bool {
	if key == "" || key == "true" || key == "false" || key == "null" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		letter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if i == 0 && !letter {
			return false
		}
		if !letter && !(c >= '0' && c <= '9') && c != '_' {
			return false
		}
	}
	return true
}
