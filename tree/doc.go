// Package tree implements the canonical nested-mapping model shared by the
// rest of the library.
//
// A canonical tree is a map[string]any whose values are scalars
// (string, number, boolean, nil), []any sequences, or nested canonical
// trees. Expand produces a canonical tree from an arbitrary decoded mapping
// by splitting dotted keys ("foo.bar") into nested mappings; Merge folds
// several canonical trees into one with last-wins precedence.
//
// All functions treat their inputs as immutable: Merge and Clone return
// freshly allocated structures and never alias mutable state from the
// arguments.
package tree
