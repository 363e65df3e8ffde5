package credence

import (
	"fmt"
	"sort"
	"strings"

	"github.com/0xalexb/credence/tree"
)

// DefaultSeparator is the key separator used unless WithSeparator overrides it.
const DefaultSeparator = "."

// Configuration is an immutable collection of configured values, retrievable
// by dotted path. It is safe for concurrent use: no operation mutates the
// backing tree, and every combination operation returns a new Configuration.
type Configuration struct {
	source    map[string]any
	root      *Configuration
	separator string
	missing   Missing
	secrets   Secrets
}

// Options holds construction settings for a Configuration.
type Options struct {
	// Sources are the mappings to combine, ordered from least to most
	// significant. Each element is a map[string]any, a map[any]any or a
	// *Configuration; nil sources and NotConfigured are skipped.
	Sources []any
	// Separator separates key segments in dotted paths, "." by default.
	Separator string
	// Missing is the absent-key policy, MissingSilent by default.
	Missing Missing
	// Secrets optionally resolves secret mapping values on access.
	Secrets Secrets
}

// Option defines a function type for applying construction options.
type Option func(*Options)

// WithSources appends source mappings, ordered from least to most
// significant. Later sources win on conflicting keys.
func WithSources(sources ...any) Option {
	return func(opts *Options) {
		opts.Sources = append(opts.Sources, sources...)
	}
}

// WithSeparator sets the key separator for dotted paths.
func WithSeparator(separator string) Option {
	return func(opts *Options) {
		opts.Separator = separator
	}
}

// WithMissing sets the absent-key policy.
func WithMissing(missing Missing) Option {
	return func(opts *Options) {
		opts.Missing = missing
	}
}

// WithSecrets attaches a secret resolver, consulted for mapping values on
// access.
func WithSecrets(secrets Secrets) Option {
	return func(opts *Options) {
		opts.Secrets = secrets
	}
}

// New creates a Configuration from the supplied options. Every source is
// canonicalized (dotted keys expanded into nested mappings) and the results
// are folded left to right, the rightmost source winning for any given key.
func New(opts ...Option) (*Configuration, error) {
	options := Options{Separator: DefaultSeparator}

	for _, apply := range opts {
		apply(&options)
	}

	if options.Separator == "" {
		options.Separator = DefaultSeparator
	}

	trees := make([]map[string]any, 0, len(options.Sources))

	for i, source := range options.Sources {
		switch src := source.(type) {
		case nil:
			continue
		case *Configuration:
			if src == nil || !src.IsConfigured() {
				continue
			}

			// already canonical, extraction is structural; Merge deep-copies
			trees = append(trees, src.source)
		case map[string]any, map[any]any:
			expanded, err := tree.Expand(src, options.Separator)
			if err != nil {
				return nil, fmt.Errorf("source %d: %w", i, err)
			}

			trees = append(trees, expanded)
		default:
			return nil, fmt.Errorf("source %d: unsupported type %T", i, source)
		}
	}

	config := &Configuration{
		source:    tree.Merge(trees...),
		separator: options.Separator,
		missing:   options.Missing,
		secrets:   options.Secrets,
	}
	config.root = config

	return config, nil
}

// Merge combines sources into a new Configuration, the rightmost winning on
// conflicting keys. Sources are maps or Configurations, as for WithSources.
func Merge(sources ...any) (*Configuration, error) {
	return New(WithSources(sources...))
}

// Merge combines the receiver with additional sources, the rightmost
// winning on conflicting keys. The receiver's separator, missing policy and
// secret resolver carry over to the result.
func (c *Configuration) Merge(others ...any) (*Configuration, error) {
	sources := make([]any, 0, len(others)+1)
	sources = append(sources, c)
	sources = append(sources, others...)

	return New(
		WithSources(sources...),
		WithSeparator(c.separator),
		WithMissing(c.missing),
		WithSecrets(c.secrets),
	)
}

// Get returns the value at the given dotted path: a resolved scalar for leaf
// values, a *Configuration for mappings, or a *Sequence for sequences.
// Absent keys yield the NotConfigured sentinel under the MissingSilent
// policy and a NotConfiguredError under MissingError. Reference resolution
// failures surface as a *ReferenceError regardless of policy.
func (c *Configuration) Get(path string) (any, error) {
	value, found, missingKey := c.lookup(path)
	if !found {
		if c.missing == MissingError {
			return nil, &NotConfiguredError{Key: missingKey}
		}

		return NotConfigured, nil
	}

	return c.wrap(value, true)
}

// GetDefault returns the value at path, or def when the path is not
// configured, under either missing policy. Reference resolution failures
// still surface as errors.
func (c *Configuration) GetDefault(path string, def any) (any, error) {
	value, found, _ := c.lookup(path)
	if !found {
		return def, nil
	}

	return c.wrap(value, true)
}

// lookup walks the separator-split path through the backing tree. It
// returns the raw value, whether it was found, and on failure the dotted
// path up to and including the first missing segment.
func (c *Configuration) lookup(path string) (value any, found bool, missingKey string) {
	segments := tree.SplitPath(path, c.separator)

	current := any(c.source)

	for i, segment := range segments {
		mapping, ok := current.(map[string]any)
		if !ok {
			return nil, false, tree.JoinPath(segments[:i+1], c.separator)
		}

		next, exists := mapping[segment]
		if !exists {
			return nil, false, tree.JoinPath(segments[:i+1], c.separator)
		}

		current = next
	}

	return current, true, ""
}

// wrap turns a raw tree value into its public form: mappings become
// sub-Configurations (or resolved secrets), sequences become Sequence
// wrappers, and strings have their references resolved when requested.
func (c *Configuration) wrap(value any, resolveReferences bool) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		if c.secrets != nil && c.secrets.Matches(v) {
			resolved, err := c.secrets.Resolve(v)
			if err != nil {
				return nil, fmt.Errorf("resolving secret: %w", err)
			}

			return resolved, nil
		}

		return c.namespace(v), nil
	case []any:
		return &Sequence{root: c.root, items: v}, nil
	case string:
		if resolveReferences {
			return c.root.resolve(v)
		}

		return v, nil
	default:
		return v, nil
	}
}

// namespace wraps a sub-tree as a Configuration sharing the receiver's
// policies and resolution root.
func (c *Configuration) namespace(source map[string]any) *Configuration {
	return &Configuration{
		source:    source,
		root:      c.root,
		separator: c.separator,
		missing:   c.missing,
		secrets:   c.secrets,
	}
}

// IsConfigured reports whether this Configuration holds an actual value,
// distinguishing real (possibly empty) configurations from the
// NotConfigured sentinel.
func (c *Configuration) IsConfigured() bool {
	return c != NotConfigured
}

// Len returns the number of top-level keys.
func (c *Configuration) Len() int {
	return len(c.source)
}

// Keys returns the top-level keys in sorted order.
func (c *Configuration) Keys() []string {
	keys := make([]string, 0, len(c.source))
	for key := range c.source {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Items returns the top-level keys with their resolved values, mappings
// wrapped as sub-Configurations and sequences as Sequence wrappers.
func (c *Configuration) Items() (map[string]any, error) {
	items := make(map[string]any, len(c.source))

	for key, value := range c.source {
		wrapped, err := c.wrap(value, true)
		if err != nil {
			return nil, err
		}

		items[key] = wrapped
	}

	return items, nil
}

// Unwrap returns a deep-copied plain tree snapshot. Reference syntax in
// string values is left verbatim, never resolved as a side effect.
func (c *Configuration) Unwrap() map[string]any {
	return tree.Clone(c.source)
}

// Equal reports whether two Configurations hold equal canonical trees.
// Separator, missing policy and unresolved-reference state are not part of
// the comparison.
func (c *Configuration) Equal(other *Configuration) bool {
	if c == nil || other == nil {
		return c == other
	}

	return tree.Equal(c.source, other.source)
}

// String returns a compact representation reflecting the canonical
// structure.
func (c *Configuration) String() string {
	if c == NotConfigured {
		return "(not configured)"
	}

	return fmt.Sprintf("configuration(keys=[%s])", strings.Join(c.Keys(), ", "))
}
