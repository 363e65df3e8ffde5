// Package toml implements format.Format for TOML documents using
// pelletier/go-toml.
package toml

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Format implements format.Format for TOML.
type Format struct{}

// New creates a new TOML format instance.
func New() *Format {
	return &Format{}
}

// Parse decodes a TOML document into a nested mapping. An empty document
// decodes to an empty mapping.
func (f *Format) Parse(data []byte) (map[string]any, error) {
	mapping := map[string]any{}

	err := toml.Unmarshal(data, &mapping)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return mapping, nil
}

// ParseValue decodes a single value by wrapping it as a TOML assignment.
// Input that is not valid TOML syntax falls back to a plain string, so
// unquoted text keeps working as a value.
func (f *Format) ParseValue(data []byte) (any, error) {
	document := append([]byte("v = "), data...)

	wrapper := map[string]any{}

	err := toml.Unmarshal(document, &wrapper)
	if err != nil {
		return string(data), nil
	}

	return wrapper["v"], nil
}

// Dump encodes a value as TOML. Values that are not mappings are encoded
// through a single-key document, mirroring ParseValue.
func (f *Format) Dump(value any) ([]byte, error) {
	switch value.(type) {
	case map[string]any, map[any]any:
		data, err := toml.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshal error: %w", err)
		}

		return data, nil
	default:
		data, err := toml.Marshal(map[string]any{"v": value})
		if err != nil {
			return nil, fmt.Errorf("marshal error: %w", err)
		}

		return bytes.TrimSuffix(bytes.TrimPrefix(data, []byte("v = ")), []byte("\n")), nil
	}
}

// Suffix returns ".toml".
func (f *Format) Suffix() string {
	return ".toml"
}
