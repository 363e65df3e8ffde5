package credence

import (
	"os"
	"strings"

	yamlformat "github.com/0xalexb/credence/format/yaml"
)

// EnvVars loads configuration from environment variables starting with
// NAME_, the remainder of the variable name mapping to a dotted path:
// APP_FOO_BAR configures foo.bar. A doubled underscore escapes a literal
// underscore, so APP_SPA__CE_KEY configures spa_ce.key. Precisely, the
// variable suffix is scanned left to right: "__" emits a literal
// underscore, a single "_" between two alphanumerics separates segments,
// and any other single "_" (leading, trailing, or following an escaped
// underscore) stays literal.
//
// Values are parsed with the YAML scalar grammar, so "42" configures an
// integer and "true" a boolean; values that fail that grammar stay strings.
// NAME_CONFIG_FILE is reserved for EnvVarFile and ignored here. When no
// matching variables are set, EnvVars contributes nothing.
func EnvVars(name, _ string) (*Configuration, error) {
	prefix := strings.ToLower(name) + "_"
	fileVar := prefix + "config_file"

	values := map[string]any{}

	for _, pair := range os.Environ() {
		variable, value, _ := strings.Cut(pair, "=")

		lower := strings.ToLower(variable)
		if !strings.HasPrefix(lower, prefix) || lower == fileVar {
			continue
		}

		parsed, err := yamlformat.New().ParseValue([]byte(value))
		if err != nil {
			// not valid YAML, keep the raw string
			parsed = value
		}

		values[dottedKey(lower[len(prefix):])] = parsed
	}

	if len(values) == 0 {
		return NotConfigured, nil
	}

	return New(WithSources(values))
}

// EnvVarFile loads the file named by the NAME_CONFIG_FILE environment
// variable. An unset variable contributes nothing; a set variable naming an
// absent file is an error.
func EnvVarFile(name, _ string) (*Configuration, error) {
	fpath := os.Getenv(strings.ToUpper(name) + "_CONFIG_FILE")
	if fpath == "" {
		return NotConfigured, nil
	}

	return LoadFile(fpath)
}

// dottedKey translates an environment variable suffix into a dotted path,
// applying the escaping rule documented on EnvVars.
func dottedKey(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if ch != '_' {
			b.WriteByte(ch)

			continue
		}

		switch {
		case i+1 < len(raw) && raw[i+1] == '_':
			// escaped underscore
			b.WriteByte('_')
			i++
		case i > 0 && i+1 < len(raw) && isAlphanumeric(raw[i-1]) && isAlphanumeric(raw[i+1]):
			b.WriteByte('.')
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}

func isAlphanumeric(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'
}
