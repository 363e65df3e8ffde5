package credence

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Unmarshal decodes the value at path into target, a pointer to a struct,
// map or scalar, using YAML field tags. References are resolved on the way
// out. An empty path decodes the whole tree. A missing path is a
// NotConfiguredError regardless of the missing policy, since there is
// nothing to decode from.
func (c *Configuration) Unmarshal(path string, target any) error {
	var value any = c.source

	if path != "" {
		raw, found, missingKey := c.lookup(path)
		if !found {
			return &NotConfiguredError{Key: missingKey}
		}

		value = raw
	}

	resolved, err := c.unwrapResolved(value)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(resolved)
	if err != nil {
		return fmt.Errorf("encoding value at %q: %w", path, err)
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("decoding value at %q: %w", path, err)
	}

	return nil
}

// unwrapResolved returns a plain deep copy of a tree node with every string
// reference resolved.
func (c *Configuration) unwrapResolved(value any) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))

		for key, element := range v {
			resolved, err := c.unwrapResolved(element)
			if err != nil {
				return nil, err
			}

			out[key] = resolved
		}

		return out, nil
	case []any:
		out := make([]any, len(v))

		for i, element := range v {
			resolved, err := c.unwrapResolved(element)
			if err != nil {
				return nil, err
			}

			out[i] = resolved
		}

		return out, nil
	case string:
		resolved, err := c.root.resolve(v)
		if err != nil {
			return nil, err
		}

		// whole-string references hand out wrapped values, flatten those
		// back to plain data for encoding
		switch r := resolved.(type) {
		case *Configuration:
			return c.unwrapResolved(r.source)
		case *Sequence:
			return c.unwrapResolved(r.items)
		default:
			return r, nil
		}
	default:
		return v, nil
	}
}
