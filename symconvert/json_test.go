package symconvert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konfuzian/symbolic-language"
	"github.com/Konfuzian/symbolic-language/symconvert"
)

func TestFromJSONConvertsEveryKind(t *testing.T) {
	t.Parallel()

	input := `{"name": "Alice", "age": 30, "score": 9.5, "active": true, "nickname": null, "tags": ["a", "b"]}`

	got, err := symconvert.FromJSON([]byte(input))
	require.NoError(t, err)

	require.True(t, got.IsObject())

	obj, _ := got.AsObject()

	name, _ := obj["name"].AsString()
	assert.Equal(t, "Alice", name)

	age, _ := obj["age"].AsInt()
	assert.Equal(t, int64(30), age)
	assert.True(t, obj["age"].IsInt())

	score, _ := obj["score"].AsFloat()
	assert.InDelta(t, 9.5, score, 0.0001)

	active, _ := obj["active"].AsBool()
	assert.True(t, active)

	assert.True(t, obj["nickname"].IsNull())

	tags, _ := obj["tags"].AsArray()
	require.Len(t, tags, 2)
}

func TestFromJSONRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	_, err := symconvert.FromJSON([]byte("{not json"))
	require.Error(t, err)
}

func TestToJSONRendersSymbolAsColonString(t *testing.T) {
	t.Parallel()

	v := sym.ObjectValue(map[string]sym.Value{
		"kind": sym.SymbolValue("production"),
	})

	got, err := symconvert.ToJSON(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind": ":production"}`, string(got))
}

func TestToJSONRendersNonFiniteFloatsAsNull(t *testing.T) {
	t.Parallel()

	arr := sym.ArrayValue([]sym.Value{
		sym.FloatValue(mustNaN()),
		sym.FloatValue(mustInf(1)),
		sym.FloatValue(mustInf(-1)),
	})

	got, err := symconvert.ToJSON(arr)
	require.NoError(t, err)
	assert.JSONEq(t, `[null, null, null]`, string(got))
}

func TestFromJSONDistinguishesIntegersAndFloats(t *testing.T) {
	t.Parallel()

	v, err := symconvert.FromJSON([]byte(`42`))
	require.NoError(t, err)
	assert.True(t, v.IsInt())

	v, err = symconvert.FromJSON([]byte(`42.5`))
	require.NoError(t, err)
	assert.True(t, v.IsFloat())
}
