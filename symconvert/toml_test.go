package symconvert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konfuzian/symbolic-language"
	"github.com/Konfuzian/symbolic-language/symconvert"
)

func TestFromTOMLConvertsTableAndArray(t *testing.T) {
	t.Parallel()

	input := "name = \"Alice\"\nage = 30\ntags = [\"a\", \"b\"]\n\n[server]\nport = 8080\n"

	got, err := symconvert.FromTOML([]byte(input))
	require.NoError(t, err)
	require.True(t, got.IsObject())

	obj, _ := got.AsObject()

	name, _ := obj["name"].AsString()
	assert.Equal(t, "Alice", name)

	tags, _ := obj["tags"].AsArray()
	require.Len(t, tags, 2)

	server, _ := obj["server"].AsObject()
	port, _ := server["port"].AsInt()
	assert.Equal(t, int64(8080), port)
}

func TestFromTOMLRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	_, err := symconvert.FromTOML([]byte("this is not = = toml"))
	require.Error(t, err)
}

func TestToTOMLRequiresObjectAtTopLevel(t *testing.T) {
	t.Parallel()

	_, err := symconvert.ToTOML(sym.IntValue(42))
	require.Error(t, err)
}

func TestToTOMLOmitsNullFields(t *testing.T) {
	t.Parallel()

	v := sym.ObjectValue(map[string]sym.Value{
		"name":     sym.StringValue("Alice"),
		"nickname": sym.NullValue(),
	})

	got, err := symconvert.ToTOML(v)
	require.NoError(t, err)
	assert.Contains(t, string(got), "name")
	assert.NotContains(t, string(got), "nickname")
}
