package attr

import "iter"

// Set is an attribute set: an unordered mapping from string keys to Values.
// Insertion order is never significant; two sets with the same entries are
// interchangeable regardless of how they were built.
//
// The zero value is an empty set ready to use. A nil *Set behaves as an
// empty set for all read operations.
//
// Thread-safety: a Set is not safe for concurrent mutation. Concurrent
// reads (including comparisons) are safe once the set is no longer being
// modified.
//
// Example:
//
//	prev := attr.NewSet(map[string]attr.Value{
//	    "label": attr.String("Save"),
//	    "count": attr.Int(1),
//	})
//	next := prev.Clone()
//	next.Set("count", attr.Int(2))
type Set struct {
	values map[string]Value
}

// NewSet creates a Set initialized with the provided entries.
// Pass nil or an empty map to create an empty set.
func NewSet(from map[string]Value) *Set {
	s := &Set{}
	for key, value := range from {
		s.Set(key, value)
	}

	return s
}

// FromGoMap builds a Set from a plain Go map, classifying each value the
// same way Ref and the primitive constructors would:
//
//   - nil becomes Null
//   - bool becomes Bool
//   - signed and unsigned integers become Int
//   - float32/float64 become Float
//   - string becomes String
//   - everything else (structs, pointers, maps, slices, funcs) becomes Ref
//
// Composite values therefore carry identity semantics: rebuilding the same
// Go map with freshly allocated nested values yields a set that is not
// shallow-equal to the original.
func FromGoMap(from map[string]any) *Set {
	s := &Set{}
	for key, value := range from {
		s.Set(key, Classify(value))
	}

	return s
}

// Classify converts an arbitrary Go value into a Value using the
// primitive-vs-reference rule described in FromGoMap.
func Classify(value any) Value {
	switch v := value.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(v)
	case int:
		return Int(int64(v))
	case int8:
		return Int(int64(v))
	case int16:
		return Int(int64(v))
	case int32:
		return Int(int64(v))
	case int64:
		return Int(v)
	case uint:
		return Int(int64(v))
	case uint8:
		return Int(int64(v))
	case uint16:
		return Int(int64(v))
	case uint32:
		return Int(int64(v))
	case uint64:
		return Int(int64(v))
	case float32:
		return Float(float64(v))
	case float64:
		return Float(v)
	case string:
		return String(v)
	default:
		return Ref(v)
	}
}

// Set inserts or replaces the value for the given key.
func (s *Set) Set(key string, value Value) {
	if s.values == nil {
		s.values = make(map[string]Value)
	}

	s.values[key] = value
}

// Get retrieves the value for the given key.
// Returns the zero (null) Value with found=false if the key is absent.
func (s *Set) Get(key string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}

	value, found := s.values[key]

	return value, found
}

// Remove deletes the key from the set. Removing an absent key is a no-op.
func (s *Set) Remove(key string) {
	if s == nil {
		return
	}

	delete(s.values, key)
}

// Contains checks if the given key exists in the set.
func (s *Set) Contains(key string) bool {
	_, found := s.Get(key)

	return found
}

// Size returns the number of entries in the set.
func (s *Set) Size() int {
	if s == nil {
		return 0
	}

	return len(s.values)
}

// IsEmpty returns true if the set contains no entries.
func (s *Set) IsEmpty() bool {
	return s.Size() == 0
}

// Clear removes all entries. The set remains usable afterwards.
func (s *Set) Clear() {
	if s == nil {
		return
	}

	s.values = make(map[string]Value)
}

// Keys returns all keys in the set. The order is non-deterministic.
func (s *Set) Keys() []string {
	if s == nil {
		return nil
	}

	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}

	return keys
}

// Seq returns an iterator for ranging over all entries in the set.
// The iteration order is non-deterministic. Compatible with Go 1.23+
// range-over-func syntax: for key, value := range s.Seq() { ... }
func (s *Set) Seq() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if s == nil {
			return
		}

		for key, value := range s.values {
			if !yield(key, value) {
				return
			}
		}
	}
}

// Clone creates a copy of the set. Entries are copied shallowly: reference
// Values in the clone still point at the same underlying handles, so the
// clone is shallow-equal to the original.
// Returns nil if the receiver is nil.
func (s *Set) Clone() *Set {
	if s == nil {
		return nil
	}

	out := &Set{values: make(map[string]Value, len(s.values))}
	for key, value := range s.values {
		out.values[key] = value
	}

	return out
}
