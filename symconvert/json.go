// Package symconvert translates between SYM [sym.Value] trees and the
// common serialization formats a config pipeline is likely to sit next
// to: JSON, YAML, and TOML, plus a canonical SYM text emitter used by
// `symctl fmt` and `symctl convert --to sym`.
package symconvert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/Konfuzian/symbolic-language"
)

// FromJSON parses a JSON document and converts it to a [sym.Value].
// Numbers that fit in an int64 become [sym.KindInt]; all others become
// [sym.KindFloat]. JSON has no symbol type, so every object and array
// produced this way is free of [sym.KindSymbol] nodes.
func FromJSON(data []byte) (sym.Value, error) {
	var decoded any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&decoded); err != nil {
		return sym.Value{}, fmt.Errorf("JSON parse error: %w", err)
	}

	return fromJSONAny(decoded), nil
}

func fromJSONAny(v any) sym.Value {
	switch t := v.(type) {
	case nil:
		return sym.NullValue()
	case bool:
		return sym.BoolValue(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return sym.IntValue(i)
		}

		f, _ := t.Float64()

		return sym.FloatValue(f)
	case string:
		return sym.StringValue(t)
	case []any:
		out := make([]sym.Value, len(t))
		for i, e := range t {
			out[i] = fromJSONAny(e)
		}

		return sym.ArrayValue(out)
	case map[string]any:
		out := make(map[string]sym.Value, len(t))
		for k, e := range t {
			out[k] = fromJSONAny(e)
		}

		return sym.ObjectValue(out)
	default:
		return sym.StringValue(fmt.Sprint(t))
	}
}

// ToJSON converts v to a JSON document. A symbol becomes the string
// ":name", matching the textual form SYM itself uses for symbols in
// string-escaped contexts. NaN and ±Inf, which JSON cannot represent,
// become JSON null.
func ToJSON(v sym.Value) ([]byte, error) {
	return json.Marshal(toJSONAny(v))
}

func toJSONAny(v sym.Value) any {
	switch v.Kind() {
	case sym.KindNull:
		return nil
	case sym.KindBool:
		b, _ := v.AsBool()

		return b
	case sym.KindInt:
		i, _ := v.AsInt()

		return i
	case sym.KindFloat:
		f, _ := v.AsFloat()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}

		return f
	case sym.KindString:
		s, _ := v.AsString()

		return s
	case sym.KindSymbol:
		name, _ := v.AsSymbol()

		return ":" + name
	case sym.KindArray:
		arr, _ := v.AsArray()
		out := make([]any, len(arr))

		for i, e := range arr {
			out[i] = toJSONAny(e)
		}

		return out
	case sym.KindObject:
		obj, _ := v.AsObject()
		out := make(map[string]any, len(obj))

		for k, e := range obj {
			out[k] = toJSONAny(e)
		}

		return out
	default:
		return nil
	}
}
