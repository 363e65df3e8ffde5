package tree

import (
	"fmt"
	"sort"
	"strings"
)

// Expand canonicalizes a decoded mapping: every key containing the
// separator is split into nested mappings, at every depth, including
// mapping values inside sequences. Expansion is idempotent, expanding an
// already-canonical tree is a no-op copy.
//
// Both map[string]any and map[any]any nodes are accepted, since different
// decoders produce either; a non-string key in the latter is a
// KeyTypeError. A dotted key whose expansion collides with a non-mapping
// value at a shared prefix is a PathConflictError, unless both values are
// equal.
func Expand(mapping any, separator string) (map[string]any, error) {
	return expand(mapping, separator, "")
}

func expand(mapping any, separator, prefix string) (map[string]any, error) {
	entries, err := sortedEntries(mapping, separator, prefix)
	if err != nil {
		return nil, err
	}

	result := make(map[string]any, len(entries))

	for _, item := range entries {
		key, value := item.key, item.value

		childPrefix := key
		if prefix != "" {
			childPrefix = prefix + separator + key
		}

		value, err = expandValue(value, separator, childPrefix)
		if err != nil {
			return nil, err
		}

		if separator != "" && strings.Contains(key, separator) {
			// the first segment becomes the key, the remainder wraps the
			// value as a nested mapping to be expanded in turn
			head, rest, _ := strings.Cut(key, separator)

			nestedPrefix := head
			if prefix != "" {
				nestedPrefix = prefix + separator + head
			}

			value, err = expand(map[string]any{rest: value}, separator, nestedPrefix)
			if err != nil {
				return nil, err
			}

			key = head
		}

		err = mergeStrict(result, map[string]any{key: value}, separator, prefix)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func expandValue(value any, separator, prefix string) (any, error) {
	switch v := value.(type) {
	case map[string]any, map[any]any:
		return expand(v, separator, prefix)
	case []any:
		expanded := make([]any, len(v))

		for i, element := range v {
			elem, err := expandValue(element, separator, prefix)
			if err != nil {
				return nil, err
			}

			expanded[i] = elem
		}

		return expanded, nil
	default:
		return v, nil
	}
}

type entry struct {
	key   string
	value any
}

// sortedEntries validates key types and returns the mapping's entries in
// sorted key order, making expansion (and its conflict errors)
// deterministic regardless of map iteration order.
func sortedEntries(mapping any, separator, prefix string) ([]entry, error) {
	var entries []entry

	switch m := mapping.(type) {
	case map[string]any:
		entries = make([]entry, 0, len(m))
		for key, value := range m {
			entries = append(entries, entry{key: key, value: value})
		}
	case map[any]any:
		entries = make([]entry, 0, len(m))
		for key, value := range m {
			str, ok := key.(string)
			if !ok {
				return nil, &KeyTypeError{Key: key, Path: prefix}
			}

			entries = append(entries, entry{key: str, value: value})
		}
	default:
		return nil, fmt.Errorf("cannot expand %T as a mapping", mapping)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})

	return entries, nil
}
