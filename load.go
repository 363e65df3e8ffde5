package credence

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xalexb/credence/format"
	yamlformat "github.com/0xalexb/credence/format/yaml"
	"github.com/0xalexb/credence/logging"
)

// LoadConfig holds the behavior knobs shared by the loading entry points.
// The zero value is the default configuration: YAML format, silent missing
// policy, the default load order, and required files.
type LoadConfig struct {
	// Format parses serialized documents; format/yaml when nil.
	Format format.Format
	// Missing is the absent-key policy for the loaded Configuration.
	Missing Missing
	// Optional makes LoadFile skip absent files instead of failing.
	Optional bool
	// Order is the loader sequence used by LoadName, lowest to highest
	// precedence; DefaultLoadOrder when nil.
	Order []LoaderFunc
	// Extension overrides the file extension used by LoadName templates;
	// derived from Format's suffix when empty.
	Extension string
	// Logger receives structured load-activity events at debug level;
	// discarded when nil.
	Logger *slog.Logger
}

// Load reads a Configuration from readers, ordered from least to most
// significant.
func (lc LoadConfig) Load(readers ...io.Reader) (*Configuration, error) {
	sources := make([]any, 0, len(readers))

	for i, reader := range readers {
		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("reading source %d: %w", i, err)
		}

		mapping, err := lc.format().Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing source %d: %w", i, err)
		}

		sources = append(sources, mapping)
	}

	return New(WithSources(sources...), WithMissing(lc.Missing))
}

// LoadString reads a Configuration from serialized documents, ordered from
// least to most significant.
func (lc LoadConfig) LoadString(documents ...string) (*Configuration, error) {
	readers := make([]io.Reader, len(documents))
	for i, document := range documents {
		readers[i] = strings.NewReader(document)
	}

	return lc.Load(readers...)
}

// LoadFile reads a Configuration from named files, ordered from least to
// most significant. A leading ~ expands to the user's home directory. An
// absent file is an error unless Optional is set, in which case it simply
// contributes nothing.
func (lc LoadConfig) LoadFile(paths ...string) (*Configuration, error) {
	sources := make([]any, 0, len(paths))

	for _, fpath := range paths {
		expanded, err := expandUser(fpath)
		if err != nil {
			return nil, err
		}

		cleanPath := filepath.Clean(expanded)

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and expanded above
		if err != nil {
			if lc.Optional && errors.Is(err, os.ErrNotExist) {
				lc.logger().Debug("configuration file skipped", slog.String("path", cleanPath))

				continue
			}

			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		mapping, err := lc.format().Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing file %q: %w", cleanPath, err)
		}

		lc.logger().Debug("configuration file loaded", slog.String("path", cleanPath))

		sources = append(sources, mapping)
	}

	return New(WithSources(sources...), WithMissing(lc.Missing))
}

// LoadName reads a Configuration for the given application names, walking
// the load order from least to most significant locality. Multiple names
// combine with the order as the outer loop: for names "foo" and "bar",
// /etc/foo.yaml and /etc/bar.yaml both precede ./foo.yaml and ./bar.yaml.
func (lc LoadConfig) LoadName(names ...string) (*Configuration, error) {
	order := lc.Order
	if order == nil {
		order = DefaultLoadOrder()
	}

	var sources []any

	for _, loader := range order {
		for _, name := range names {
			loaded, err := loader(name, lc.extension())
			if err != nil {
				return nil, fmt.Errorf("loading configuration %q: %w", name, err)
			}

			sources = append(sources, loaded)
		}
	}

	return New(WithSources(sources...), WithMissing(lc.Missing))
}

func (lc LoadConfig) format() format.Format {
	if lc.Format != nil {
		return lc.Format
	}

	return yamlformat.New()
}

func (lc LoadConfig) extension() string {
	if lc.Extension != "" {
		return lc.Extension
	}

	return strings.TrimPrefix(lc.format().Suffix(), ".")
}

func (lc LoadConfig) logger() *slog.Logger {
	if lc.Logger != nil {
		return lc.Logger
	}

	return logging.Discard()
}

// Load reads a Configuration from readers with the default LoadConfig.
func Load(readers ...io.Reader) (*Configuration, error) {
	return LoadConfig{}.Load(readers...)
}

// LoadString reads a Configuration from serialized documents with the
// default LoadConfig.
func LoadString(documents ...string) (*Configuration, error) {
	return LoadConfig{}.LoadString(documents...)
}

// LoadFile reads a Configuration from named files with the default
// LoadConfig.
func LoadFile(paths ...string) (*Configuration, error) {
	return LoadConfig{}.LoadFile(paths...)
}

// LoadName reads a Configuration for the given application names with the
// default LoadConfig, walking DefaultLoadOrder.
func LoadName(names ...string) (*Configuration, error) {
	return LoadConfig{}.LoadName(names...)
}

// expandUser expands a leading ~ to the user's home directory.
func expandUser(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
