package credence

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/fx"

	"github.com/0xalexb/credence/logging"
)

// ErrEmptyName is returned when a module is created without a name.
var ErrEmptyName = errors.New("module name cannot be empty")

// ModuleOption defines a function type for configuring an Fx module.
type ModuleOption func(*moduleOptions)

type moduleOptions struct {
	load LoadConfig
}

// WithLoadConfig sets the load behavior used when the module loads its
// configuration.
func WithLoadConfig(load LoadConfig) ModuleOption {
	return func(opts *moduleOptions) {
		opts.load = load
	}
}

// WithLogLevel makes the module report load activity to stderr at the given
// level. Loading is silent without it.
func WithLogLevel(level string) ModuleOption {
	return func(opts *moduleOptions) {
		opts.load.Logger = logging.NewLogger(logging.LoggerConfig{Level: level}, os.Stderr)
	}
}

// NewModule creates an Fx module that loads configuration for the given
// application name from the default load order and supplies the resulting
// *Configuration to DI under the name as a named tag.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...ModuleOption) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var moduleOpts moduleOptions

	for _, apply := range opts {
		apply(&moduleOpts)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (*Configuration, error) {
					return moduleOpts.load.LoadName(name)
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
