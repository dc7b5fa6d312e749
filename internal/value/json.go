package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// MarshalJSON encodes the tree with sorted table keys. Floats keep a
// fractional part so 2.0 does not turn into the integer 2.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) appendJSON(buf *bytes.Buffer) error {
	switch d := v.data.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		buf.WriteString(strconv.FormatBool(d))
	case int64:
		buf.WriteString(strconv.FormatInt(d, 10))
	case float64:
		if math.IsInf(d, 0) || math.IsNaN(d) {
			return fmt.Errorf("value: unsupported float %v in JSON", d)
		}
		buf.WriteString(FormatFloat(d))
	case string:
		return appendJSONString(buf, d)
	case []Value:
		buf.WriteByte('[')
		for i, item := range d {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]Value:
		buf.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSONString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := d[k].appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func appendJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encoder дописывает '\n'
	buf.Truncate(buf.Len() - 1)
	return nil
}
