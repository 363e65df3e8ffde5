// Package yaml implements format.Format for YAML documents using
// goccy/go-yaml. YAML is the primary format: named loading and environment
// variable ingestion default to its grammar.
package yaml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrNotMapping is returned when a document decodes to something other than
// a mapping.
var ErrNotMapping = errors.New("document is not a mapping")

// Format implements format.Format for YAML.
type Format struct{}

// New creates a new YAML format instance.
func New() *Format {
	return &Format{}
}

// Parse decodes a YAML document into a nested mapping. An empty document
// decodes to an empty mapping.
func (f *Format) Parse(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var document any

	err := yaml.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if document == nil {
		return map[string]any{}, nil
	}

	mapping, ok := document.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotMapping, document)
	}

	return mapping, nil
}

// ParseValue decodes a single scalar using the YAML scalar grammar, so
// "42" becomes an integer, "true" a boolean and "null" nil.
func (f *Format) ParseValue(data []byte) (any, error) {
	var value any

	err := yaml.Unmarshal(data, &value)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return value, nil
}

// Dump encodes a value as YAML.
func (f *Format) Dump(value any) ([]byte, error) {
	data, err := yaml.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// Suffix returns ".yaml".
func (f *Format) Suffix() string {
	return ".yaml"
}
