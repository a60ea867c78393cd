package shallow

import (
	"fmt"

	"facette.io/natsort"
	"github.com/amp-labs/shallow/attr"
)

// Op describes how a key differs between two attribute sets.
type Op uint8

const (
	// OpAdded means the key is present only in the new set.
	OpAdded Op = iota

	// OpRemoved means the key is present only in the old set.
	OpRemoved

	// OpChanged means the key is present in both sets with values that
	// are not shallow-equal.
	OpChanged
)

// String returns a human-readable name for the operation.
func (o Op) String() string {
	switch o {
	case OpAdded:
		return "added"
	case OpRemoved:
		return "removed"
	case OpChanged:
		return "changed"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// Change records one differing key between an old and a new attribute set.
// From is only meaningful for OpRemoved and OpChanged; To is only
// meaningful for OpAdded and OpChanged. The other field is the null Value.
type Change struct {
	Key  string
	Op   Op
	From attr.Value
	To   attr.Value
}

// Diff reports every key that differs between old and new, in natural key
// order (facette.io/natsort, so "item2" sorts before "item10").
//
// Diff and Equal agree: Diff(a, b) is empty exactly when Equal(a, b) is
// true. Prefer Equal when only the boolean answer is needed — it short-
// circuits on the first difference, while Diff always visits every key.
func Diff(oldSet, newSet *attr.Set) []Change {
	if oldSet == newSet {
		return nil
	}

	keys := unionKeys(oldSet, newSet)
	natsort.Sort(keys)

	var changes []Change

	for _, key := range keys {
		from, inOld := oldSet.Get(key)
		to, inNew := newSet.Get(key)

		switch {
		case !inOld:
			changes = append(changes, Change{Key: key, Op: OpAdded, To: to})
		case !inNew:
			changes = append(changes, Change{Key: key, Op: OpRemoved, From: from})
		case !from.Equals(to):
			changes = append(changes, Change{Key: key, Op: OpChanged, From: from, To: to})
		}
	}

	return changes
}

func unionKeys(a, b *attr.Set) []string {
	keys := a.Keys()

	for key := range b.Seq() {
		if !a.Contains(key) {
			keys = append(keys, key)
		}
	}

	return keys
}
