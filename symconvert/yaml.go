package symconvert

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/Konfuzian/symbolic-language"
)

// FromYAML parses a YAML document and converts it to a [sym.Value].
// Mapping keys are stringified the way [github.com/goccy/go-yaml] itself
// resolves scalar keys (string, bool, and numeric keys all become
// object fields); any other key kind is dropped from the resulting
// object, mirroring convert.rs's from_yaml filter_map over non-scalar
// keys.
func FromYAML(data []byte) (sym.Value, error) {
	var decoded any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return sym.Value{}, fmt.Errorf("YAML parse error: %w", err)
	}

	return fromYAMLAny(decoded), nil
}

func fromYAMLAny(v any) sym.Value {
	switch t := v.(type) {
	case nil:
		return sym.NullValue()
	case bool:
		return sym.BoolValue(t)
	case int:
		return sym.IntValue(int64(t))
	case int64:
		return sym.IntValue(t)
	case uint64:
		return sym.IntValue(int64(t))
	case float64:
		return sym.FloatValue(t)
	case string:
		return sym.StringValue(t)
	case []any:
		out := make([]sym.Value, len(t))
		for i, e := range t {
			out[i] = fromYAMLAny(e)
		}

		return sym.ArrayValue(out)
	case map[string]any:
		out := make(map[string]sym.Value, len(t))
		for k, e := range t {
			out[k] = fromYAMLAny(e)
		}

		return sym.ObjectValue(out)
	case map[any]any:
		out := make(map[string]sym.Value, len(t))

		for k, e := range t {
			key, ok := yamlMapKeyString(k)
			if !ok {
				continue
			}

			out[key] = fromYAMLAny(e)
		}

		return sym.ObjectValue(out)
	default:
		return sym.StringValue(fmt.Sprint(t))
	}
}

// yamlMapKeyString stringifies a decoded YAML mapping key the way
// convert.rs's from_yaml does: strings pass through, bools and numbers
// are rendered to their textual form, everything else is rejected.
func yamlMapKeyString(k any) (string, bool) {
	switch t := k.(type) {
	case string:
		return t, true
	case bool:
		return fmt.Sprint(t), true
	case int, int64, uint64, float64:
		return fmt.Sprint(t), true
	default:
		return "", false
	}
}

// ToYAML converts v to a YAML document. Symbols are rendered as the
// string ":name"; NaN and ±Inf round-trip through YAML's native
// .nan/.inf scalars.
func ToYAML(v sym.Value) ([]byte, error) {
	return yaml.Marshal(toYAMLAny(v))
}

func toYAMLAny(v sym.Value) any {
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
			out[i] = toYAMLAny(e)
		}

		return out
	case sym.KindObject:
		obj, _ := v.AsObject()
		out := make(map[string]any, len(obj))

		for k, e := range obj {
			out[k] = toYAMLAny(e)
		}

		return out
	default:
		return nil
	}
}
