// Package attr models attribute sets: string-keyed bags of heterogeneous
// values, such as a component's properties or state at a point in time.
//
// Values are a tagged union over primitive kinds (null, bool, int, float,
// string), which compare by value, and an opaque reference kind, which
// compares by identity. Making the split explicit in the type system keeps
// the identity-vs-value decision a checked branch rather than a runtime
// type test.
package attr

import (
	"fmt"
	"reflect"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindNull is the absence marker. All null Values are equal.
	KindNull Kind = iota

	// KindBool holds a boolean, compared by value.
	KindBool

	// KindInt holds a signed integer, compared by value.
	KindInt

	// KindFloat holds a floating-point number, compared by value.
	KindFloat

	// KindString holds a string, compared by value.
	KindString

	// KindReference holds an opaque handle to a composite value
	// (object, collection, function). References are compared by
	// identity only, never by content.
	KindReference
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindReference:
		return "reference"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a single attribute value: either a primitive or an opaque
// reference. The zero Value is the null value.
//
// Use the constructors (Null, Bool, Int, Float, String, Ref) to create
// Values; the internal representation is not exported.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	ref  any
}

// Null returns the null Value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an integer Value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float returns a floating-point Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Ref returns a reference Value wrapping the given handle. The handle is
// held as-is and never inspected beyond identity checks: two reference
// Values are equal only when they wrap the same underlying instance.
//
// Example:
//
//	style := &Style{Color: "red"}
//	a := attr.Ref(style)
//	b := attr.Ref(style)
//	c := attr.Ref(&Style{Color: "red"})
//	a.Equals(b) // true: same instance
//	a.Equals(c) // false: equal contents, distinct identity
func Ref(handle any) Value {
	return Value{kind: KindReference, ref: handle}
}

// Kind returns the variant held by this Value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsPrimitive returns true if the Value compares by value rather than
// by identity.
func (v Value) IsPrimitive() bool {
	return v.kind != KindReference
}

// Equals compares two Values under the shallow rule: primitives by value,
// references by identity. Values of different kinds are never equal.
func (v Value) Equals(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindReference:
		return sameHandle(v.ref, other.ref)
	default:
		return false
	}
}

// AsBool returns the boolean payload. The second return is false if the
// Value is not a bool.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer payload. The second return is false if the
// Value is not an int.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the float payload. The second return is false if the
// Value is not a float.
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// AsString returns the string payload. The second return is false if the
// Value is not a string.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// Handle returns the wrapped reference handle. The second return is false
// if the Value is not a reference.
func (v Value) Handle() (any, bool) {
	return v.ref, v.kind == KindReference
}

// GoString returns a constructor-shaped representation, e.g. Int(42).
func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "Null()"
	case KindBool:
		return fmt.Sprintf("Bool(%t)", v.b)
	case KindInt:
		return fmt.Sprintf("Int(%d)", v.i)
	case KindFloat:
		return fmt.Sprintf("Float(%g)", v.f)
	case KindString:
		return fmt.Sprintf("String(%q)", v.s)
	case KindReference:
		return fmt.Sprintf("Ref(%T)", v.ref)
	default:
		return fmt.Sprintf("Value(kind=%d)", uint8(v.kind))
	}
}

// sameHandle reports whether two reference handles are the same underlying
// instance. Pointer-like handles (pointers, maps, slices, channels,
// functions) are identical when they share the same underlying pointer.
// Other comparable handles fall back to ==. Handles of different dynamic
// types are never identical, and uncomparable non-pointer handles are only
// identical to themselves as interface values (which == on the wrapped
// pointers above already covers).
func sameHandle(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)

	if ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		// Slices are identical when they share the same backing array
		// window. Content is never compared.
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	default:
		if ra.Comparable() {
			return a == b
		}

		return false
	}
}
