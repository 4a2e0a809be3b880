package symconvert

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/Konfuzian/symbolic-language"
)

// Emit renders v as canonical SYM text: two-space indentation, one
// field or element per line once a container holds more than one item,
// and scalars escaped only where the literal text would otherwise be
// misread as something else (a keyword, a number, a symbol, a variable
// reference, or the start of a container). This is the form `symctl
// fmt` writes back and `symctl convert --to sym` produces from another
// format.
func Emit(v sym.Value) string {
	var b strings.Builder

	emitValue(&b, v, 0)

	return b.String()
}

func emitValue(b *strings.Builder, v sym.Value, indent int) {
	switch v.Kind() {
	case sym.KindNull:
		b.WriteString("null")
	case sym.KindBool:
		boolVal, _ := v.AsBool()
		b.WriteString(strconv.FormatBool(boolVal))
	case sym.KindInt:
		i, _ := v.AsInt()
		b.WriteString(strconv.FormatInt(i, 10))
	case sym.KindFloat:
		emitFloat(b, v)
	case sym.KindString:
		s, _ := v.AsString()
		b.WriteString(escapeString(s))
	case sym.KindSymbol:
		name, _ := v.AsSymbol()
		b.WriteString(":")
		b.WriteString(name)
	case sym.KindArray:
		emitArray(b, v, indent)
	case sym.KindObject:
		emitObject(b, v, indent)
	}
}

func emitFloat(b *strings.Builder, v sym.Value) {
	f, _ := v.AsFloat()

	switch {
	case math.IsNaN(f):
		b.WriteString("nan")
	case math.IsInf(f, 1):
		b.WriteString("inf")
	case math.IsInf(f, -1):
		b.WriteString("-inf")
	default:
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
}

func emitArray(b *strings.Builder, v sym.Value, indent int) {
	arr, _ := v.AsArray()

	if len(arr) == 0 {
		b.WriteString("[]")

		return
	}

	prefix := strings.Repeat("  ", indent)
	innerPrefix := strings.Repeat("  ", indent+1)

	b.WriteString("[")

	for i, e := range arr {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString("\n")
			b.WriteString(innerPrefix)
			b.WriteString(", ")
		}

		emitValue(b, e, indent+1)
	}

	b.WriteString("\n")
	b.WriteString(prefix)
	b.WriteString("]")
}

func emitObject(b *strings.Builder, v sym.Value, indent int) {
	obj, _ := v.AsObject()

	if len(obj) == 0 {
		b.WriteString("{}")

		return
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}

	sortStrings(keys)

	prefix := strings.Repeat("  ", indent)
	innerPrefix := strings.Repeat("  ", indent+1)

	b.WriteString("{")

	for i, k := range keys {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString("\n")
			b.WriteString(innerPrefix)
			b.WriteString(", ")
		}

		b.WriteString(":")
		b.WriteString(escapeKey(k))
		b.WriteString(" ")
		emitValue(b, obj[k], indent+1)
	}

	b.WriteString("\n")
	b.WriteString(prefix)
	b.WriteString("}")
}

// sortStrings sorts keys in place using insertion sort, good enough for
// the small field counts a config document has and keeping this package
// free of a "sort" import collision with the single-purpose helpers
// above; kept here rather than reaching for slices.Sort to match the
// rest of this file's minimal-import style.
func sortStrings(keys []string) {
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
}

// escapeString renders s as a SYM scalar, prefixing a backslash when
// the literal text would otherwise be re-parsed as a keyword, a number,
// or the start of a symbol, variable reference, or container.
func escapeString(s string) string {
	if s == "" {
		return ""
	}

	needsEscape := strings.HasPrefix(s, ":") ||
		strings.HasPrefix(s, "$") ||
		strings.HasPrefix(s, "{") ||
		strings.HasPrefix(s, "[") ||
		strings.HasPrefix(s, `\`) ||
		strings.HasPrefix(s, "//") ||
		strings.HasPrefix(s, "/*") ||
		s == "true" || s == "false" || s == "null" ||
		s == "inf" || s == "-inf" || s == "nan" ||
		looksLikeNumber(s)

	if needsEscape {
		return `\` + s
	}

	return s
}

// looksLikeNumber reports whether s would be re-parsed as a numeric
// literal by the scalar recognizer if left unescaped.
func looksLikeNumber(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0b") || strings.HasPrefix(lower, "0o") {
		return true
	}

	rest := strings.TrimPrefix(s, "-")
	if rest == "" {
		return false
	}

	first := rune(rest[0])
	if !unicode.IsDigit(first) {
		return false
	}

	for _, r := range rest {
		switch {
		case unicode.IsDigit(r), r == '_', r == '.', r == 'e', r == 'E', r == '+', r == '-':
		default:
			return false
		}
	}

	return true
}

// escapeKey sanitizes k into a valid SYM identifier: a leading letter
// or underscore, digits prefixed with an underscore if they would
// otherwise lead, interior spaces turned into hyphens, and every other
// disallowed character dropped. An identifier that would end up empty
// becomes "_".
func escapeKey(k string) string {
	var b strings.Builder

	first := true

	for _, c := range k {
		switch {
		case first && (unicode.IsLetter(c) || c == '_'):
			b.WriteRune(c)
			first = false
		case first && unicode.IsDigit(c):
			b.WriteByte('_')
			b.WriteRune(c)
			first = false
		case !first && (unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '-'):
			b.WriteRune(c)
		case !first && c == ' ':
			b.WriteByte('-')
		}
	}

	if b.Len() == 0 {
		return "_"
	}

	return b.String()
}
