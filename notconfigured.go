package credence

// NotConfigured is the sentinel returned for absent keys under the
// MissingSilent policy. It is an empty Configuration, so chained access
// keeps returning the sentinel itself:
//
//	value, _ := config.Get("not.there")       // value == NotConfigured
//	value, _ = value.(*credence.Configuration).Get("deeper")
//	// value == NotConfigured, still
//
// Use IsConfigured (or compare against NotConfigured directly) as the falsy
// check in default-coalescing code.
var NotConfigured = newNotConfigured()

func newNotConfigured() *Configuration {
	sentinel := &Configuration{
		source:    map[string]any{},
		separator: DefaultSeparator,
		missing:   MissingSilent,
	}
	sentinel.root = sentinel

	return sentinel
}
