// Package format defines the capability interface implemented once per
// concrete configuration file format. Implementations live in the
// subpackages format/yaml, format/json and format/toml; the merge and
// reference core never touches serialized data itself.
package format

// Format parses serialized configuration data into a plain nested mapping
// and serializes plain data back. Implementations are stateless and safe
// for concurrent use.
type Format interface {
	// Parse decodes a whole document into a nested mapping. Empty input
	// decodes to an empty mapping; a non-mapping document is an error.
	Parse(data []byte) (map[string]any, error)

	// ParseValue decodes a single scalar value using the format's scalar
	// grammar, for sources (environment variables) that carry bare values.
	ParseValue(data []byte) (any, error)

	// Dump encodes a plain nested mapping or scalar value.
	Dump(value any) ([]byte, error)

	// Suffix returns the default file name suffix, including the dot.
	Suffix() string
}
