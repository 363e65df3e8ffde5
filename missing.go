package credence

// Missing selects how a Configuration behaves when an absent key is
// accessed. The policy is fixed at construction time and inherited by every
// sub-Configuration obtained through access operations.
type Missing int

const (
	// MissingSilent returns the NotConfigured sentinel for absent keys.
	MissingSilent Missing = iota
	// MissingError returns a NotConfiguredError for absent keys.
	MissingError
)

// String returns a human-readable name for the policy.
func (m Missing) String() string {
	switch m {
	case MissingSilent:
		return "silent"
	case MissingError:
		return "error"
	default:
		return "unknown"
	}
}
