package tree

// Merge folds canonical trees into one, left to right, the rightmost source
// winning for any given key. Mappings merge key-by-key recursively; a
// sequence or scalar in a later source replaces whatever an earlier source
// held at the same path, including a whole sub-tree.
//
// The result is always freshly allocated: merging zero trees yields an empty
// tree, merging one tree yields a deep copy of it.
func Merge(trees ...map[string]any) map[string]any {
	result := make(map[string]any)

	for _, t := range trees {
		overwrite(result, t)
	}

	return result
}

// overwrite merges src into dst, src winning on conflicts. dst is assumed to
// be owned by the caller; values taken from src are deep-copied.
func overwrite(dst, src map[string]any) {
	for key, value := range src {
		if existing, ok := dst[key]; ok {
			dstMap, dstIsMap := existing.(map[string]any)
			srcMap, srcIsMap := value.(map[string]any)

			if dstIsMap && srcIsMap {
				overwrite(dstMap, srcMap)

				continue
			}
		}

		dst[key] = cloneValue(value)
	}
}

// mergeStrict merges src into dst like overwrite, but conflicting values
// that are not equal are an error rather than a replacement. Used while
// expanding dotted keys, where a collision means the source contradicts
// itself.
func mergeStrict(dst, src map[string]any, separator, prefix string) error {
	for key, value := range src {
		conflictPath := key
		if prefix != "" {
			conflictPath = prefix + separator + key
		}

		existing, ok := dst[key]
		if !ok {
			dst[key] = value

			continue
		}

		dstMap, dstIsMap := existing.(map[string]any)
		srcMap, srcIsMap := value.(map[string]any)

		switch {
		case dstIsMap && srcIsMap:
			err := mergeStrict(dstMap, srcMap, separator, conflictPath)
			if err != nil {
				return err
			}
		case !Equal(existing, value):
			return &PathConflictError{Path: conflictPath}
		}
	}

	return nil
}
