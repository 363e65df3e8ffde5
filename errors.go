package credence

import (
	"errors"
	"fmt"

	"github.com/0xalexb/credence/tree"
)

// Structural errors detected while canonicalizing sources, re-exported from
// the tree package for convenient errors.Is checks.
var (
	// ErrKeyType is returned when a source mapping contains a non-string key.
	ErrKeyType = tree.ErrKeyType
	// ErrPathConflict is returned when a dotted key expands onto a prefix
	// already holding a non-mapping value.
	ErrPathConflict = tree.ErrPathConflict
)

// ErrNotConfigured is returned for access to an absent key under the
// MissingError policy.
var ErrNotConfigured = errors.New("key not configured")

// ErrUnresolvedReference is returned when a ${path} reference names a key
// that does not exist in the tree.
var ErrUnresolvedReference = errors.New("unresolved reference")

// ErrReferenceCycle is returned when resolving a reference revisits a path
// that is already being resolved.
var ErrReferenceCycle = errors.New("reference cycle")

// ErrMappingReference is returned when a reference embedded in a longer
// string names a mapping, which cannot be inserted into a string value.
var ErrMappingReference = errors.New("cannot insert mapping into string value")

// NotConfiguredError reports which key was requested but not configured.
type NotConfiguredError struct {
	// Key is the dotted path up to and including the missing segment.
	Key string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("no configuration for key %q", e.Key)
}

func (e *NotConfiguredError) Unwrap() error {
	return ErrNotConfigured
}

// ReferenceError reports a ${path} reference that could not be resolved,
// wrapping one of ErrUnresolvedReference, ErrReferenceCycle or
// ErrMappingReference.
type ReferenceError struct {
	// Key is the referenced dotted path.
	Key string
	// Err is the reason the reference failed.
	Err error
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("reference ${%s}: %v", e.Key, e.Err)
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}
