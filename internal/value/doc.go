// Package value holds the dynamically typed tree produced by the MCL parser.
//
// A Value is one of: null, bool, integer (int64), float (float64), string,
// list ([]Value) or table (map[string]Value). Values are immutable from the
// outside; constructors take ownership of the slices and maps passed in.
//
//	doc := value.FromMap(map[string]value.Value{
//	    "name":  value.FromString("mcl"),
//	    "ports": value.FromSlice([]value.Value{value.FromInt(80), value.FromInt(443)}),
//	})
//	if port, ok := doc.Get("ports"); ok {
//	    first, _ := port.Index(0)
//	    n, _ := first.AsInt() // 80
//	}
//
// Values encode to JSON (MarshalJSON) and to msgpack (EncodeMsgpack /
// DecodeMsgpack); the msgpack form keeps the integer/float distinction and is
// what the driver's disk cache stores.
package value
