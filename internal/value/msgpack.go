package value

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

var (
	_ msgpack.CustomEncoder = Value{}
	_ msgpack.CustomDecoder = (*Value)(nil)
)

// EncodeMsgpack writes the tree using native msgpack types; tables are
// written with sorted keys so equal trees encode to equal bytes.
func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	switch d := v.data.(type) {
	case nil:
		return enc.EncodeNil()
	case bool:
		return enc.EncodeBool(d)
	case int64:
		return enc.EncodeInt(d)
	case float64:
		return enc.EncodeFloat64(d)
	case string:
		return enc.EncodeString(d)
	case []Value:
		if err := enc.EncodeArrayLen(len(d)); err != nil {
			return err
		}
		for _, item := range d {
			if err := item.EncodeMsgpack(enc); err != nil {
				return err
			}
		}
		return nil
	case map[string]Value:
		if err := enc.EncodeMapLen(len(d)); err != nil {
			return err
		}
		for _, k := range v.Keys() {
			if err := enc.EncodeString(k); err != nil {
				return err
			}
			if err := d[k].EncodeMsgpack(enc); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("value: cannot encode %T", v.data)
}

// DecodeMsgpack reads a tree written by EncodeMsgpack. Any msgpack integer
// becomes KindInt, float32/float64 become KindFloat.
func (v *Value) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := dec.PeekCode()
	if err != nil {
		return err
	}

	switch {
	case c == msgpcode.Nil:
		*v = Null()
		return dec.DecodeNil()

	case c == msgpcode.False || c == msgpcode.True:
		b, err := dec.DecodeBool()
		if err != nil {
			return err
		}
		*v = FromBool(b)

	case c == msgpcode.Float || c == msgpcode.Double:
		f, err := dec.DecodeFloat64()
		if err != nil {
			return err
		}
		*v = FromFloat(f)

	case msgpcode.IsFixedNum(c) || isIntCode(c):
		i, err := dec.DecodeInt64()
		if err != nil {
			return err
		}
		*v = FromInt(i)

	case msgpcode.IsString(c):
		s, err := dec.DecodeString()
		if err != nil {
			return err
		}
		*v = FromString(s)

	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return err
		}
		items := make([]Value, max(n, 0))
		for i := range items {
			if err := items[i].DecodeMsgpack(dec); err != nil {
				return err
			}
		}
		*v = FromSlice(items)

	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return err
		}
		entries := make(map[string]Value, max(n, 0))
		for range max(n, 0) {
			key, err := dec.DecodeString()
			if err != nil {
				return err
			}
			var item Value
			if err := item.DecodeMsgpack(dec); err != nil {
				return err
			}
			entries[key] = item
		}
		*v = FromMap(entries)

	default:
		return fmt.Errorf("value: unexpected msgpack code 0x%02x", c)
	}
	return nil
}

func isIntCode(c byte) bool {
	switch c {
	case msgpcode.Uint8, msgpcode.Uint16, msgpcode.Uint32, msgpcode.Uint64,
		msgpcode.Int8, msgpcode.Int16, msgpcode.Int32, msgpcode.Int64:
		return true
	}
	return false
}
