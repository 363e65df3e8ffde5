package credence

import "fmt"

// SecretKey is the single key identifying a secret mapping for
// SingleKeySecrets.
const SecretKey = "$secret"

// Secrets resolves secret values on access. When a mapping value is read
// from a Configuration carrying a resolver (see WithSecrets) and Matches
// reports true, Resolve is called with the mapping and its result is
// returned instead of a sub-Configuration.
type Secrets interface {
	// Matches reports whether the mapping encodes a secret to resolve.
	Matches(value map[string]any) bool
	// Resolve produces the actual value for a matched mapping.
	Resolve(value map[string]any) (any, error)
}

// SecretFunc looks up a secret by the arguments found in a secret mapping,
// typically a service name and a username backed by a keyring.
type SecretFunc func(args ...string) (string, error)

// SingleKeySecrets adapts a SecretFunc to the Secrets interface. It matches
// mappings holding exactly one key, $secret, whose value is a mapping with
// "service" and "username" entries handed to the callback in that order:
//
//	database:
//	  password:
//	    $secret:
//	      service: postgres
//	      username: app
func SingleKeySecrets(fn SecretFunc) Secrets {
	return &singleKeySecrets{fn: fn, key: SecretKey, args: []string{"service", "username"}}
}

type singleKeySecrets struct {
	fn   SecretFunc
	key  string
	args []string
}

func (s *singleKeySecrets) Matches(value map[string]any) bool {
	if len(value) != 1 {
		return false
	}

	_, ok := value[s.key]

	return ok
}

func (s *singleKeySecrets) Resolve(value map[string]any) (any, error) {
	spec, ok := value[s.key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("secret %q is not a mapping", s.key)
	}

	args := make([]string, len(s.args))

	for i, name := range s.args {
		arg, exists := spec[name]
		if !exists {
			return nil, fmt.Errorf("secret is missing key %q", s.key+"."+name)
		}

		str, isString := arg.(string)
		if !isString {
			return nil, fmt.Errorf("secret key %q is not a string", s.key+"."+name)
		}

		args[i] = str
	}

	secret, err := s.fn(args...)
	if err != nil {
		return nil, err
	}

	return secret, nil
}
