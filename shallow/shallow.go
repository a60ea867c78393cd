// Package shallow decides whether two attribute sets are equal enough that
// a dependent computation may be skipped.
//
// The comparison is shallow: top-level entries only, primitives by value,
// composites by identity. A true result therefore does NOT guarantee deep
// equality of nested structures — composite values with equal contents but
// distinct identity count as changed. That limitation is the whole point:
// the check stays cheap and predictable, and the caller pays for it by
// keeping value identity stable across calls.
package shallow

import "github.com/amp-labs/shallow/attr"

// Equal reports whether a and b are shallow-equal.
//
// The comparison is symmetric, order-independent, total, and pure: it never
// fails, never blocks, and mutates nothing. A nil set behaves as an empty
// set, and two empty sets are equal.
//
// Example:
//
//	prev := attr.NewSet(map[string]attr.Value{"count": attr.Int(1)})
//	next := attr.NewSet(map[string]attr.Value{"count": attr.Int(1)})
//	shallow.Equal(prev, next) // true: primitives compare by value
//
//	prev = attr.NewSet(map[string]attr.Value{"style": attr.Ref(&Style{})})
//	next = attr.NewSet(map[string]attr.Value{"style": attr.Ref(&Style{})})
//	shallow.Equal(prev, next) // false: distinct instances, identity differs
func Equal(a, b *attr.Set) bool {
	// Same instance (or both nil): nothing can differ.
	if a == b {
		return true
	}

	if a.Size() != b.Size() {
		return false
	}

	// Sizes match, so checking that every entry of a has a matching entry
	// in b also rules out keys present only in b.
	for key, av := range a.Seq() {
		bv, found := b.Get(key)
		if !found || !av.Equals(bv) {
			return false
		}
	}

	return true
}
