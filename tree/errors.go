package tree

import (
	"errors"
	"fmt"
)

// ErrKeyType is returned when a mapping key is not a string.
var ErrKeyType = errors.New("non-string key")

// ErrPathConflict is returned when expanding a dotted key collides with a
// non-mapping value already present at a shared prefix.
var ErrPathConflict = errors.New("cannot merge mapping and non-mapping values")

// KeyTypeError reports the non-string key that was encountered and where.
type KeyTypeError struct {
	// Key is the offending key as found in the source mapping.
	Key any
	// Path is the dotted path of the mapping containing the key, empty for
	// the root mapping.
	Path string
}

func (e *KeyTypeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("non-string key %v (%T) not supported", e.Key, e.Key)
	}

	return fmt.Sprintf("non-string key %v (%T) not supported at %q", e.Key, e.Key, e.Path)
}

func (e *KeyTypeError) Unwrap() error {
	return ErrKeyType
}

// PathConflictError reports the dotted path at which a dotted-key expansion
// collided with an existing non-mapping value.
type PathConflictError struct {
	Path string
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("merge conflict at %q", e.Path)
}

func (e *PathConflictError) Unwrap() error {
	return ErrPathConflict
}
