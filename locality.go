package credence

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Locality enumerates classes of configuration sources, ranging from
// system-wide locations to environment variables. External loaders use the
// ordering to decide merge input order; later localities take precedence.
type Locality int

const (
	// LocalitySystem covers system-wide locations such as /etc.
	LocalitySystem Locality = iota
	// LocalityUser covers user-local locations such as ~/.config.
	LocalityUser
	// LocalityApplication covers the current working directory.
	LocalityApplication
	// LocalityEnvironment covers application-specific environment variables.
	LocalityEnvironment
)

// String returns a human-readable name for the locality.
func (l Locality) String() string {
	switch l {
	case LocalitySystem:
		return "system"
	case LocalityUser:
		return "user"
	case LocalityApplication:
		return "application"
	case LocalityEnvironment:
		return "environment"
	default:
		return "unknown"
	}
}

// LoaderFunc produces the Configuration contributed by one source location
// for an application name and file extension. Loaders return NotConfigured
// when their location holds nothing, never an error for mere absence.
type LoaderFunc func(name, extension string) (*Configuration, error)

// Specifier is anything that can contribute loaders to a load order: a
// Locality (expanding to its predefined loader set), a Template path
// pattern, or a LoaderFunc.
type Specifier interface {
	loaderFuncs() []LoaderFunc
}

func (f LoaderFunc) loaderFuncs() []LoaderFunc {
	return []LoaderFunc{f}
}

// Template is a file path pattern carrying {name} and {extension}
// placeholders, loaded as an optional YAML file:
//
//	credence.Template("/etc/defaults/{name}.{extension}")
type Template string

func (t Template) loaderFuncs() []LoaderFunc {
	loader := func(name, extension string) (*Configuration, error) {
		return LoadConfig{Optional: true}.LoadFile(t.expand(name, extension))
	}

	return []LoaderFunc{loader}
}

func (t Template) expand(name, extension string) string {
	replacer := strings.NewReplacer("{name}", name, "{extension}", extension)

	return replacer.Replace(string(t))
}

func (l Locality) loaderFuncs() []LoaderFunc {
	switch l {
	case LocalitySystem:
		return Loaders(
			LoaderFunc(XDGConfigDirs),
			Template("/etc/{name}.{extension}"),
			Template("/Library/Preferences/{name}.{extension}"),
			EnvVarDir("PROGRAMDATA"),
		)
	case LocalityUser:
		return Loaders(
			LoaderFunc(XDGConfigHome),
			Template("~/Library/Preferences/{name}.{extension}"),
			EnvVarDir("APPDATA"),
			EnvVarDir("LOCALAPPDATA"),
			Template("~/.{name}.{extension}"),
		)
	case LocalityApplication:
		return Loaders(Template("./{name}.{extension}"))
	case LocalityEnvironment:
		return Loaders(LoaderFunc(EnvVarFile), LoaderFunc(EnvVars))
	default:
		return nil
	}
}

// Loaders flattens specifiers into the loader functions they carry,
// preserving order. Localities expand to their predefined loader sets;
// templates and plain loader functions pass through.
func Loaders(specifiers ...Specifier) []LoaderFunc {
	var loaders []LoaderFunc

	for _, specifier := range specifiers {
		loaders = append(loaders, specifier.loaderFuncs()...)
	}

	return loaders
}

// DefaultLoadOrder returns the standard load order: system, user,
// application, environment, from least to most significant.
func DefaultLoadOrder() []LoaderFunc {
	return Loaders(LocalitySystem, LocalityUser, LocalityApplication, LocalityEnvironment)
}

// XDGConfigDirs loads from the XDG-specified system-wide configuration
// directories, /etc/xdg unless XDG_CONFIG_DIRS overrides it. PATH-like
// variables list directories in decreasing precedence, so the set is
// reversed before merging.
func XDGConfigDirs(name, extension string) (*Configuration, error) {
	var configDirs []string

	if dirs := os.Getenv("XDG_CONFIG_DIRS"); dirs != "" {
		configDirs = strings.Split(dirs, string(os.PathListSeparator))
		slices.Reverse(configDirs)
	} else {
		configDirs = []string{"/etc/xdg"}
	}

	paths := make([]string, len(configDirs))
	for i, dir := range configDirs {
		paths[i] = filepath.Join(dir, name+"."+extension)
	}

	return LoadConfig{Optional: true}.LoadFile(paths...)
}

// XDGConfigHome loads from the XDG-specified configuration home,
// ~/.config unless XDG_CONFIG_HOME overrides it.
func XDGConfigHome(name, extension string) (*Configuration, error) {
	home := os.Getenv("XDG_CONFIG_HOME")
	if home == "" {
		home = "~/.config"
	}

	return LoadConfig{Optional: true}.LoadFile(filepath.Join(home, name+"."+extension))
}

// EnvVarDir loads from a directory named by an environment variable, so
// EnvVarDir("APPDATA") looks for {APPDATA}/name.extension. An unset
// variable contributes nothing.
func EnvVarDir(envvar string) LoaderFunc {
	return func(name, extension string) (*Configuration, error) {
		dir := os.Getenv(envvar)
		if dir == "" {
			return NotConfigured, nil
		}

		return LoadConfig{Optional: true}.LoadFile(filepath.Join(dir, name+"."+extension))
	}
}
