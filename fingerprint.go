package credence

import (
	"fmt"
	"io"
	"sort"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a stable digest of the canonical tree contents.
// The encoding walks mappings in sorted key order, so two Configurations
// built from differently-ordered sources share a fingerprint exactly when
// they are Equal. Reference syntax is digested verbatim, unresolved.
func (c *Configuration) Fingerprint() [32]byte {
	hasher := blake3.New()
	writeCanonical(hasher, c.source)

	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))

	return digest
}

// writeCanonical emits an unambiguous, order-independent encoding of a tree
// node: every value is prefixed with a type tag, strings and collections
// with their length.
func writeCanonical(w io.Writer, value any) {
	switch v := value.(type) {
	case nil:
		fmt.Fprint(w, "z;")
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		fmt.Fprintf(w, "m%d{", len(v))

		for _, key := range keys {
			fmt.Fprintf(w, "s%d:%s=", len(key), key)
			writeCanonical(w, v[key])
		}

		fmt.Fprint(w, "}")
	case []any:
		fmt.Fprintf(w, "l%d[", len(v))

		for _, element := range v {
			writeCanonical(w, element)
		}

		fmt.Fprint(w, "]")
	case string:
		fmt.Fprintf(w, "s%d:%s;", len(v), v)
	case bool:
		fmt.Fprintf(w, "b%t;", v)
	default:
		// numbers: tag with the dynamic type so int64(1) and float64(1)
		// digest differently, matching Equal
		fmt.Fprintf(w, "n%T:%v;", v, v)
	}
}
