package attr

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns an order-independent digest of the set.
//
// Shallow-equal sets always produce equal fingerprints, so a fingerprint
// mismatch is a cheap proof of inequality. The converse does not hold: a
// fingerprint match never proves equality, both because of hash collisions
// and because reference handles that are not pointer-like fold in a
// formatted representation rather than a true identity token. Callers that
// cache a fingerprint must still run the full comparison on a match.
//
// The digest of the empty (or nil) set is 0.
func (s *Set) Fingerprint() uint64 {
	if s == nil {
		return 0
	}

	var acc uint64

	// XOR-combining per-entry digests keeps the result independent of
	// iteration order without sorting keys.
	for key, value := range s.values {
		acc ^= entryDigest(key, value)
	}

	return acc
}

func entryDigest(key string, v Value) uint64 {
	buf := make([]byte, 0, len(key)+16)
	buf = append(buf, key...)
	buf = append(buf, 0, byte(v.kind))

	switch v.kind {
	case KindNull:
	case KindBool:
		if v.b {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	case KindInt:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v.i))
	case KindFloat:
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v.f))
	case KindString:
		buf = append(buf, v.s...)
	case KindReference:
		buf = appendHandleToken(buf, v.ref)
	}

	return xxh3.Hash(buf)
}

// appendHandleToken encodes a stable token for a reference handle. The same
// handle always yields the same token; distinct handles may collide (see
// Fingerprint).
func appendHandleToken(buf []byte, handle any) []byte {
	if handle == nil {
		return append(buf, "nil"...)
	}

	rv := reflect.ValueOf(handle)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return binary.LittleEndian.AppendUint64(buf, uint64(rv.Pointer()))
	case reflect.Slice:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(rv.Pointer()))

		return binary.LittleEndian.AppendUint64(buf, uint64(rv.Len()))
	default:
		return fmt.Appendf(buf, "%T/%v", handle, handle)
	}
}
