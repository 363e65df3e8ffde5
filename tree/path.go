package tree

import "strings"

// SplitPath splits a dotted path into its segments using the given
// separator. An empty separator yields the path as a single segment.
func SplitPath(path, separator string) []string {
	if separator == "" {
		return []string{path}
	}

	return strings.Split(path, separator)
}

// JoinPath joins path segments into a dotted path using the given separator.
func JoinPath(segments []string, separator string) string {
	return strings.Join(segments, separator)
}

// Get walks a canonical tree along the given segments and returns the value
// found there. The second return value reports whether every segment could
// be followed; walking into a non-mapping value is reported as not found.
func Get(root map[string]any, segments []string) (any, bool) {
	if root == nil {
		return nil, false
	}

	current := any(root)

	for _, segment := range segments {
		mapping, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		value, exists := mapping[segment]
		if !exists {
			return nil, false
		}

		current = value
	}

	return current, true
}
