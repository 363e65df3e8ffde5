package credence_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xalexb/credence"
	jsonformat "github.com/0xalexb/credence/format/json"
	tomlformat "github.com/0xalexb/credence/format/toml"
	"github.com/0xalexb/credence/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	fpath := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fpath, []byte(content), 0o600))

	return fpath
}

func TestLoadString(t *testing.T) {
	t.Parallel()

	config, err := credence.LoadString(`
server:
  host: localhost
  port: 8000
debug: true
`)
	require.NoError(t, err)

	host, err := config.Get("server.host")
	require.NoError(t, err)
	assert.Equal(t, "localhost", host)

	port, err := config.Get("server.port")
	require.NoError(t, err)
	assert.EqualValues(t, 8000, port)

	debug, err := config.Get("debug")
	require.NoError(t, err)
	assert.Equal(t, true, debug)
}

func TestLoadString_Precedence(t *testing.T) {
	t.Parallel()

	config, err := credence.LoadString(
		"server:\n  host: localhost\n  port: 8000\n",
		"server:\n  host: api.example.com\n",
	)
	require.NoError(t, err)

	host, err := config.Get("server.host")
	require.NoError(t, err)
	assert.Equal(t, "api.example.com", host)

	port, err := config.Get("server.port")
	require.NoError(t, err)
	assert.EqualValues(t, 8000, port)
}

func TestLoadString_DottedKeys(t *testing.T) {
	t.Parallel()

	config, err := credence.LoadString("server.host: localhost\n")
	require.NoError(t, err)

	host, err := config.Get("server.host")
	require.NoError(t, err)
	assert.Equal(t, "localhost", host)

	value, err := config.Get("server")
	require.NoError(t, err)
	assert.IsType(t, &credence.Configuration{}, value)
}

func TestLoad_Readers(t *testing.T) {
	t.Parallel()

	config, err := credence.Load(
		strings.NewReader("key: first\n"),
		strings.NewReader("key: second\n"),
	)
	require.NoError(t, err)

	value, err := config.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestLoadConfig_AlternateFormats(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		load     credence.LoadConfig
		document string
	}{
		{
			name:     "json",
			load:     credence.LoadConfig{Format: jsonformat.New()},
			document: `{"server": {"host": "localhost"}}`,
		},
		{
			name:     "toml",
			load:     credence.LoadConfig{Format: tomlformat.New()},
			document: "[server]\nhost = \"localhost\"\n",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			config, err := testCase.load.LoadString(testCase.document)
			require.NoError(t, err)

			host, err := config.Get("server.host")
			require.NoError(t, err)
			assert.Equal(t, "localhost", host)
		})
	}
}

func TestLoadConfig_MissingPolicy(t *testing.T) {
	t.Parallel()

	load := credence.LoadConfig{Missing: credence.MissingError}

	config, err := load.LoadString("key: value\n")
	require.NoError(t, err)

	_, err = config.Get("absent")
	require.ErrorIs(t, err, credence.ErrNotConfigured)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "server:\n  host: localhost\n  port: 8000\n")
	writeFile(t, dir, "override.yaml", "server:\n  host: api.example.com\n")

	config, err := credence.LoadFile(
		filepath.Join(dir, "base.yaml"),
		filepath.Join(dir, "override.yaml"),
	)
	require.NoError(t, err)

	host, err := config.Get("server.host")
	require.NoError(t, err)
	assert.Equal(t, "api.example.com", host)

	port, err := config.Get("server.port")
	require.NoError(t, err)
	assert.EqualValues(t, 8000, port)
}

func TestLoadFile_Absent(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := credence.LoadFile(missing)
	require.Error(t, err, "absent files are an error by default")

	load := credence.LoadConfig{Optional: true}

	config, err := load.LoadFile(missing)
	require.NoError(t, err, "optional absent files contribute nothing")
	assert.Equal(t, 0, config.Len())
}

func TestLoadFile_ParseError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fpath := writeFile(t, dir, "broken.yaml", "key: [unclosed\n")

	_, err := credence.LoadFile(fpath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestLoadFile_LogsActivity(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fpath := writeFile(t, dir, "app.yaml", "key: value\n")

	var buf bytes.Buffer

	load := credence.LoadConfig{
		Optional: true,
		Logger:   logging.NewLogger(logging.LoggerConfig{Level: "DEBUG"}, &buf),
	}

	_, err := load.LoadFile(fpath, filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "configuration file loaded")
	assert.Contains(t, buf.String(), "configuration file skipped")
}

func TestLoadName_TemplateOrder(t *testing.T) {
	t.Parallel()

	systemDir := t.TempDir()
	userDir := t.TempDir()

	writeFile(t, systemDir, "app.yaml", "server:\n  host: localhost\n  port: 8000\n")
	writeFile(t, userDir, "app.yaml", "server:\n  host: api.example.com\n")

	load := credence.LoadConfig{
		Order: credence.Loaders(
			credence.Template(filepath.Join(systemDir, "{name}.{extension}")),
			credence.Template(filepath.Join(userDir, "{name}.{extension}")),
		),
	}

	config, err := load.LoadName("app")
	require.NoError(t, err)

	host, err := config.Get("server.host")
	require.NoError(t, err)
	assert.Equal(t, "api.example.com", host, "later loaders take precedence")

	port, err := config.Get("server.port")
	require.NoError(t, err)
	assert.EqualValues(t, 8000, port)
}

func TestLoadName_MultipleNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "key: base\nshared: base\n")
	writeFile(t, dir, "app.yaml", "shared: app\n")

	load := credence.LoadConfig{
		Order: credence.Loaders(credence.Template(filepath.Join(dir, "{name}.{extension}"))),
	}

	config, err := load.LoadName("base", "app")
	require.NoError(t, err)

	shared, err := config.Get("shared")
	require.NoError(t, err)
	assert.Equal(t, "app", shared, "later names take precedence within a loader")

	key, err := config.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "base", key)
}

func TestLoadName_ExtensionOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "app.yml", "key: value\n")

	load := credence.LoadConfig{
		Extension: "yml",
		Order:     credence.Loaders(credence.Template(filepath.Join(dir, "{name}.{extension}"))),
	}

	config, err := load.LoadName("app")
	require.NoError(t, err)

	value, err := config.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}
