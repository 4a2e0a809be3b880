package symconvert

import (
	"bytes"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Konfuzian/symbolic-language"
)

// FromTOML parses a TOML document and converts it to a [sym.Value].
// TOML has no null, so every field TOML can represent maps to a
// non-null SYM value. Datetimes are rendered to their RFC 3339 textual
// form, matching convert.rs's from_toml treatment of toml::Value::Datetime.
func FromTOML(data []byte) (sym.Value, error) {
	var decoded any
	if err := toml.Unmarshal(data, &decoded); err != nil {
		return sym.Value{}, fmt.Errorf("TOML parse error: %w", err)
	}

	return fromTOMLAny(decoded), nil
}

func fromTOMLAny(v any) sym.Value {
	switch t := v.(type) {
	case nil:
		return sym.NullValue()
	case bool:
		return sym.BoolValue(t)
	case int64:
		return sym.IntValue(t)
	case float64:
		return sym.FloatValue(t)
	case string:
		return sym.StringValue(t)
	case time.Time:
		return sym.StringValue(t.Format(time.RFC3339))
	case []any:
		out := make([]sym.Value, len(t))
		for i, e := range t {
			out[i] = fromTOMLAny(e)
		}

		return sym.ArrayValue(out)
	case map[string]any:
		out := make(map[string]sym.Value, len(t))
		for k, e := range t {
			out[k] = fromTOMLAny(e)
		}

		return sym.ObjectValue(out)
	default:
		return sym.StringValue(fmt.Sprint(t))
	}
}

// ToTOML converts v to a TOML document. v must be an object at the top
// level, since TOML has no concept of a bare scalar or array document.
// Symbols render as the string ":name"; null fields are omitted, since
// TOML cannot represent null.
func ToTOML(v sym.Value) ([]byte, error) {
	obj, ok := v.AsObject()
	if !ok {
		return nil, fmt.Errorf("TOML output requires an object at the top level, got %s", v.Kind())
	}

	var buf bytes.Buffer

	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(toTOMLObject(obj)); err != nil {
		return nil, fmt.Errorf("TOML encode error: %w", err)
	}

	return buf.Bytes(), nil
}

func toTOMLObject(obj map[string]sym.Value) map[string]any {
	out := make(map[string]any, len(obj))

	for k, v := range obj {
		if v.IsNull() {
			continue
		}

		out[k] = toTOMLAny(v)
	}

	return out
}

func toTOMLAny(v sym.Value) any {
	switch v.Kind() {
	case sym.KindBool:
		b, _ := v.AsBool()

		return b
	case sym.KindInt:
		i, _ := v.AsInt()

		return i
	case sym.KindFloat:
		f, _ := v.AsFloat()

		return f
	case sym.KindString:
		s, _ := v.AsString()

		return s
	case sym.KindSymbol:
		name, _ := v.AsSymbol()

		return ":" + name
	case sym.KindArray:
		arr, _ := v.AsArray()
		out := make([]any, 0, len(arr))

		for _, e := range arr {
			if e.IsNull() {
				continue
			}

			out = append(out, toTOMLAny(e))
		}

		return out
	case sym.KindObject:
		obj, _ := v.AsObject()

		return toTOMLObject(obj)
	default:
		return nil
	}
}
