// Package json implements format.Format for JSON documents. Input is run
// through tidwall/jsonc first, so comments and trailing commas in
// hand-maintained configuration files are tolerated.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"
)

// ErrNotMapping is returned when a document decodes to something other than
// an object.
var ErrNotMapping = errors.New("document is not an object")

// Format implements format.Format for JSON.
type Format struct{}

// New creates a new JSON format instance.
func New() *Format {
	return &Format{}
}

// Parse decodes a JSON document into a nested mapping. Comments and
// trailing commas are stripped before decoding; an empty document decodes
// to an empty mapping.
func (f *Format) Parse(data []byte) (map[string]any, error) {
	cleaned := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(cleaned)) == 0 {
		return map[string]any{}, nil
	}

	var document any

	err := json.Unmarshal(cleaned, &document)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	mapping, ok := document.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotMapping, document)
	}

	return mapping, nil
}

// ParseValue decodes a single JSON value.
func (f *Format) ParseValue(data []byte) (any, error) {
	var value any

	err := json.Unmarshal(jsonc.ToJSON(data), &value)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return value, nil
}

// Dump encodes a value as indented JSON.
func (f *Format) Dump(value any) ([]byte, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// Suffix returns ".json".
func (f *Format) Suffix() string {
	return ".json"
}
