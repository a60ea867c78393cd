package shallow

import (
	"context"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/shallow/attr"
)

const defaultWorkerCount = 10

// Pair is one old/new attribute-set pair to compare.
type Pair struct {
	Prev *attr.Set
	Next *attr.Set
}

// EqualAll compares many pairs concurrently and returns one boolean per
// pair, in input order. This is meant for gating a whole pass at once, e.g.
// deciding which of many components actually need recomputation.
//
// Each comparison is independent and pure, so the pairs are fanned out over
// a bounded worker pool. If the context is cancelled before all pairs are
// scheduled, the remaining results are left false and the context error is
// returned; results computed so far are still valid.
func EqualAll(ctx context.Context, pairs []Pair) ([]bool, error) {
	results := make([]bool, len(pairs))
	if len(pairs) == 0 {
		return results, nil
	}

	workers := min(defaultWorkerCount, len(pairs))

	pool := pond.NewPool(workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for i := range pairs {
		group.Submit(func() {
			results[i] = Equal(pairs[i].Prev, pairs[i].Next)
		})
	}

	if err := group.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
