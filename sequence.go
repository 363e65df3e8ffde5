package credence

import (
	"fmt"
	"sort"
	"strings"

	"github.com/0xalexb/credence/tree"
)

// Sequence is a read-only wrapper around a sequence value. Mapping elements
// are wrapped as sub-Configurations on access, so values nested inside
// sequences stay retrievable by dotted path, and string elements have their
// references resolved. Element order is preserved.
type Sequence struct {
	root  *Configuration
	items []any
}

// Len returns the number of elements.
func (s *Sequence) Len() int {
	return len(s.items)
}

// At returns the element at index i, wrapped and resolved like any other
// read. A negative index counts from the end.
func (s *Sequence) At(i int) (any, error) {
	index := i
	if index < 0 {
		index += len(s.items)
	}

	if index < 0 || index >= len(s.items) {
		return nil, fmt.Errorf("sequence index %d out of range [0:%d]", i, len(s.items))
	}

	return s.root.wrap(s.items[index], true)
}

// Slice returns the sub-sequence [i:j) as a new Sequence sharing the same
// resolution root.
func (s *Sequence) Slice(i, j int) (*Sequence, error) {
	if i < 0 || j < i || j > len(s.items) {
		return nil, fmt.Errorf("sequence slice [%d:%d] out of range [0:%d]", i, j, len(s.items))
	}

	return &Sequence{root: s.root, items: s.items[i:j]}, nil
}

// Items returns all elements, wrapped and resolved.
func (s *Sequence) Items() ([]any, error) {
	items := make([]any, len(s.items))

	for i, value := range s.items {
		wrapped, err := s.root.wrap(value, true)
		if err != nil {
			return nil, err
		}

		items[i] = wrapped
	}

	return items, nil
}

// Unwrap returns a deep-copied plain snapshot of the sequence, references
// left verbatim.
func (s *Sequence) Unwrap() []any {
	return tree.CloneSlice(s.items)
}

// String returns a compact representation: scalars verbatim (references
// unresolved), mappings as their keys, nested sequences elided.
func (s *Sequence) String() string {
	parts := make([]string, len(s.items))

	for i, value := range s.items {
		switch v := value.(type) {
		case map[string]any:
			parts[i] = fmt.Sprintf("mapping(keys=[%s])", strings.Join(mapKeys(v), ", "))
		case []any:
			parts[i] = "[...]"
		case string:
			parts[i] = fmt.Sprintf("%q", v)
		default:
			parts[i] = fmt.Sprintf("%v", v)
		}
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func mapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
