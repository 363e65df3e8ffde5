package toml_test

import (
	"testing"

	"github.com/0xalexb/credence/format/toml"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Parse(t *testing.T) {
	t.Parallel()

	document := `
debug = true

[server]
host = "localhost"
port = 8000
`

	mapping, err := toml.New().Parse([]byte(document))
	require.NoError(t, err)

	server, ok := mapping["server"].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "localhost", server["host"])
	assert.EqualValues(t, 8000, server["port"])
	assert.Equal(t, true, mapping["debug"])
}

func TestFormat_ParseEmpty(t *testing.T) {
	t.Parallel()

	mapping, err := toml.New().Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, mapping)
}

func TestFormat_ParseInvalid(t *testing.T) {
	t.Parallel()

	_, err := toml.New().Parse([]byte("= broken"))
	require.Error(t, err)
}

func TestFormat_ParseValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		data     string
		expected any
	}{
		{name: "integer", data: "42", expected: 42},
		{name: "boolean", data: "true", expected: true},
		{name: "quoted string", data: `"text"`, expected: "text"},
		{name: "unquoted text falls back to a string", data: "localhost", expected: "localhost"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, err := toml.New().ParseValue([]byte(testCase.data))
			require.NoError(t, err)
			assert.EqualValues(t, testCase.expected, value)
		})
	}
}

func TestFormat_Dump(t *testing.T) {
	t.Parallel()

	source := map[string]any{
		"server": map[string]any{"host": "localhost"},
	}

	data, err := toml.New().Dump(source)
	require.NoError(t, err)

	parsed, err := toml.New().Parse(data)
	require.NoError(t, err)
	assert.Equal(t, source, parsed)
}

func TestFormat_DumpScalar(t *testing.T) {
	t.Parallel()

	data, err := toml.New().Dump("text")
	require.NoError(t, err)
	assert.Equal(t, `"text"`, string(data))
}

func TestFormat_Suffix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".toml", toml.New().Suffix())
}
