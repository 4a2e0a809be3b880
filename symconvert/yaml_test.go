package symconvert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konfuzian/symbolic-language"
	"github.com/Konfuzian/symbolic-language/symconvert"
)

func TestFromYAMLConvertsMappingAndSequence(t *testing.T) {
	t.Parallel()

	input := "name: Alice\nage: 30\ntags:\n  - a\n  - b\n"

	got, err := symconvert.FromYAML([]byte(input))
	require.NoError(t, err)
	require.True(t, got.IsObject())

	obj, _ := got.AsObject()

	name, _ := obj["name"].AsString()
	assert.Equal(t, "Alice", name)

	age, _ := obj["age"].AsInt()
	assert.Equal(t, int64(30), age)

	tags, _ := obj["tags"].AsArray()
	require.Len(t, tags, 2)
}

func TestFromYAMLRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	_, err := symconvert.FromYAML([]byte("key: [unterminated"))
	require.Error(t, err)
}

func TestToYAMLRendersSymbolAsColonString(t *testing.T) {
	t.Parallel()

	v := sym.ObjectValue(map[string]sym.Value{
		"kind": sym.SymbolValue("production"),
	})

	got, err := symconvert.ToYAML(v)
	require.NoError(t, err)
	assert.Contains(t, string(got), `kind: ":production"`)
}

func TestYAMLRoundTripsNestedObjects(t *testing.T) {
	t.Parallel()

	v := sym.ObjectValue(map[string]sym.Value{
		"server": sym.ObjectValue(map[string]sym.Value{
			"port": sym.IntValue(8080),
		}),
	})

	encoded, err := symconvert.ToYAML(v)
	require.NoError(t, err)

	decoded, err := symconvert.FromYAML(encoded)
	require.NoError(t, err)

	obj, _ := decoded.AsObject()
	server, _ := obj["server"].AsObject()
	port, _ := server["port"].AsInt()
	assert.Equal(t, int64(8080), port)
}
