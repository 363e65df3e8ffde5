package tree

// Clone creates a deep copy of a canonical tree.
func Clone(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}

	dst := make(map[string]any, len(src))
	for key, value := range src {
		dst[key] = cloneValue(value)
	}

	return dst
}

// CloneSlice creates a deep copy of a sequence node.
func CloneSlice(src []any) []any {
	if src == nil {
		return nil
	}

	dst := make([]any, len(src))
	for i, value := range src {
		dst[i] = cloneValue(value)
	}

	return dst
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return Clone(v)
	case []any:
		return CloneSlice(v)
	default:
		return v
	}
}

// Equal compares two tree nodes for deep equality. Mappings compare
// key-by-key, sequences element-by-element, scalars by ==.
func Equal(a, b any) bool {
	if a == nil && b == nil {
		return true
	}

	if a == nil || b == nil {
		return false
	}

	switch va := a.(type) {
	case map[string]any:
		vb, ok := b.(map[string]any)

		return ok && mapsEqual(va, vb)
	case []any:
		vb, ok := b.([]any)

		return ok && slicesEqual(va, vb)
	default:
		return a == b
	}
}

func mapsEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}

	for key, va := range a {
		vb, ok := b[key]
		if !ok || !Equal(va, vb) {
			return false
		}
	}

	return true
}

func slicesEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}
