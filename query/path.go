package query

import "strings"

// Resolve traverses a nested document by a dot-separated path and returns
// the value at that path together with a presence flag.
//
// Each segment is looked up as a map key. If any intermediate value is not
// a map, or a segment is missing, the result is (nil, false) - the field is
// absent. A completed traversal returns (value, true) even when the stored
// value is nil; "present with value nil" and "absent" are different states.
//
// Numeric-looking segments are not treated as slice indices. Sequences are
// opaque leaf values.
func Resolve(doc map[string]any, path string) (any, bool) {
	var current any = doc
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := m[segment]
		if !ok {
			return nil, false
		}
		current = v
	}
	return current, true
}
