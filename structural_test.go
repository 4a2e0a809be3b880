package sym_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konfuzian/symbolic-language"
)

func TestParseEmptyObjectAndArray(t *testing.T) {
	t.Parallel()

	v, err := sym.Parse("{:a {}, :b []}")
	require.NoError(t, err)

	obj, _ := v.AsObject()

	inner, ok := obj["a"].AsObject()
	require.True(t, ok)
	assert.Empty(t, inner)

	arr, ok := obj["b"].AsArray()
	require.True(t, ok)
	assert.Empty(t, arr)
}

func TestParseSymbolValue(t *testing.T) {
	t.Parallel()

	v, err := sym.Parse("{:status :active}")
	require.NoError(t, err)

	obj, _ := v.AsObject()

	s, ok := obj["status"].AsSymbol()
	require.True(t, ok)
	assert.Equal(t, "active", s)
}

func TestParseOneLineAndMultiLineAreEquivalent(t *testing.T) {
	t.Parallel()

	oneLine, err := sym.Parse("{ :a 1 , :b 2 }")
	require.NoError(t, err)

	multiLine, err := sym.Parse("{\n:a 1\n, :b 2\n}")
	require.NoError(t, err)

	assert.True(t, oneLine.Equal(multiLine))
}

func TestParseObjectFieldsWithoutCommaSeparatorErrors(t *testing.T) {
	t.Parallel()

	_, err := sym.Parse("{ :a 1\n:b 2\n}")
	require.Error(t, err)
	assert.ErrorContains(t, err, "Expected ',' separator")
}

func TestParseArrayElementsWithoutCommaSeparatorErrors(t *testing.T) {
	t.Parallel()

	_, err := sym.Parse("[ 1\n2\n]")
	require.Error(t, err)
	assert.ErrorContains(t, err, "Expected ',' separator")
}

func TestParseReplaceModifierOverwrites(t *testing.T) {
	t.Parallel()

	v, err := sym.Parse("{:a {:x 1}, :a! {:y 2}}")
	require.NoError(t, err)

	obj, _ := v.AsObject()

	a, ok := obj["a"].AsObject()
	require.True(t, ok)
	assert.Len(t, a, 1)

	y, ok := a["y"].AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(2), y)
}

func TestParseAppendModifierExtendsArray(t *testing.T) {
	t.Parallel()

	v, err := sym.Parse("{ :tags [ a, b ]\n, :tags+ [ c ]\n}")
	require.NoError(t, err)

	obj, _ := v.AsObject()

	tags, ok := obj["tags"].AsArray()
	require.True(t, ok)
	require.Len(t, tags, 3)

	for i, want := range []string{"a", "b", "c"} {
		got, _ := tags[i].AsString()
		assert.Equal(t, want, got)
	}
}

func TestParseAppendToNonArrayErrors(t *testing.T) {
	t.Parallel()

	_, err := sym.Parse("{:a 1, :a+ [2]}")
	require.Error(t, err)
	assert.ErrorIs(t, err, sym.ErrAppendToNonArray)
}

func TestParseDefaultMergeDeepMergesObjects(t *testing.T) {
	t.Parallel()

	v, err := sym.Parse("{:a {:x 1}, :a {:y 2}}")
	require.NoError(t, err)

	obj, _ := v.AsObject()

	a, ok := obj["a"].AsObject()
	require.True(t, ok)
	assert.Len(t, a, 2)
}

func TestParseStrictKeysRejectsNonObjectCollision(t *testing.T) {
	t.Parallel()

	_, err := sym.ParseDetailed("{:a 1, :a 2}", nil, sym.WithStrictKeys())
	require.Error(t, err)
	assert.ErrorIs(t, err, sym.ErrDuplicateKey)
}

func TestParseDefaultMergeAllowsNonObjectCollisionSilently(t *testing.T) {
	t.Parallel()

	v, err := sym.Parse("{:a 1, :a 2}")
	require.NoError(t, err)

	obj, _ := v.AsObject()

	a, ok := obj["a"].AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(2), a)
}

func TestDeepMergeRecursesOnlyThroughObjects(t *testing.T) {
	t.Parallel()

	base := sym.ObjectValue(map[string]sym.Value{
		"a": sym.ObjectValue(map[string]sym.Value{"x": sym.IntValue(1)}),
		"b": sym.IntValue(1),
	})
	overlay := sym.ObjectValue(map[string]sym.Value{
		"a": sym.ObjectValue(map[string]sym.Value{"y": sym.IntValue(2)}),
		"b": sym.IntValue(2),
	})

	merged := sym.DeepMerge(base, overlay)
	obj, _ := merged.AsObject()

	a, _ := obj["a"].AsObject()
	assert.Len(t, a, 2)

	b, _ := obj["b"].AsInt()
	assert.Equal(t, int64(2), b)
}
