package credence

// Kind classifies the values handed out by access operations.
type Kind int

const (
	// KindScalar is a string, number, boolean or nil leaf value.
	KindScalar Kind = iota
	// KindMapping is a sub-tree, handed out as a *Configuration.
	KindMapping
	// KindSequence is a list value, handed out as a *Sequence.
	KindSequence
	// KindMissing is the NotConfigured sentinel.
	KindMissing
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// KindOf classifies a value returned by Get, GetDefault, Items or
// Sequence.At.
func KindOf(value any) Kind {
	switch v := value.(type) {
	case *Configuration:
		if v == NotConfigured {
			return KindMissing
		}

		return KindMapping
	case *Sequence:
		return KindSequence
	case map[string]any, map[any]any:
		return KindMapping
	case []any:
		return KindSequence
	default:
		return KindScalar
	}
}
