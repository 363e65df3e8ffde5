package credence

import (
	"fmt"
	"regexp"
	"slices"
)

// referencePattern matches an embedded reference: ${ followed by a dotted
// path of [A-Za-z0-9_]+ segments and a closing brace. Anything else,
// including unbalanced braces, is literal text.
var referencePattern = regexp.MustCompile(`\$\{([A-Za-z0-9_]+(?:\.[A-Za-z0-9_]+)*)\}`)

// resolve expands the references embedded in value against the receiver,
// which is always the root Configuration: references name locations in the
// whole tree, not in the sub-tree their value happens to live in.
//
// A string that is exactly one reference yields the referenced value with
// its type preserved; a string mixing literal text and references yields the
// concatenation of the resolved fragments. Resolution happens on read and
// never mutates the tree.
func (c *Configuration) resolve(value string) (any, error) {
	return c.resolveString(value, nil)
}

// resolveString does the actual expansion. stack holds the chain of paths
// currently being expanded, for cycle detection.
func (c *Configuration) resolveString(value string, stack []string) (any, error) {
	for {
		match := referencePattern.FindStringSubmatchIndex(value)
		if match == nil {
			return value, nil
		}

		path := value[match[2]:match[3]]

		if slices.Contains(stack, path) {
			return nil, &ReferenceError{Key: path, Err: ErrReferenceCycle}
		}

		raw, found, _ := c.lookup(path)
		if !found {
			return nil, &ReferenceError{Key: path, Err: ErrUnresolvedReference}
		}

		// resolve the referenced value itself before inserting it
		resolved := raw
		if nested, ok := raw.(string); ok {
			var err error

			resolved, err = c.resolveString(nested, append(stack, path))
			if err != nil {
				return nil, err
			}
		}

		if match[0] == 0 && match[1] == len(value) {
			// the whole string is one reference, keep the referenced type
			return c.wrapResolved(resolved)
		}

		if _, isMapping := resolved.(map[string]any); isMapping {
			return nil, &ReferenceError{Key: path, Err: ErrMappingReference}
		}

		value = value[:match[0]] + stringify(resolved) + value[match[1]:]
	}
}

// wrapResolved wraps a whole-string reference result like any other read:
// mappings become sub-Configurations, sequences become Sequence wrappers.
func (c *Configuration) wrapResolved(resolved any) (any, error) {
	switch v := resolved.(type) {
	case map[string]any:
		return c.namespace(v), nil
	case []any:
		return &Sequence{root: c.root, items: v}, nil
	default:
		return v, nil
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
