package secp256k1

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Batch operations fan independent (scalar, point) work items out across
// CPUs. Every item is self-contained and all value types are immutable, so
// no cross-item synchronization exists; results land in the slot matching
// their input index.

// ScalarPointPair is one batch multiplication work item.
type ScalarPointPair struct {
	K Scalar
	P Point
}

// BatchScalarMult computes k·P for every pair in parallel, preserving input
// order. It uses the variable-time path and is therefore restricted to
// public scalars, its intended use (batch verification precomputation,
// displaying public multiples).
func BatchScalarMult(pairs []ScalarPointPair) []Point {
	results := make([]Point, len(pairs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			results[i] = ScalarMult(pair.K, pair.P)
			return nil
		})
	}
	g.Wait() // no item can fail
	return results
}

// VerifyItem is one batch verification work item.
type VerifyItem struct {
	Public    Point
	Digest    Scalar
	Signature Signature
}

// BatchVerify verifies every item in parallel, returning one verdict per
// item in input order. Items are verified individually (no Strauss-style
// aggregation), so a false verdict pinpoints the failing item.
func BatchVerify(items []VerifyItem) []bool {
	results := make([]bool, len(items))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			results[i] = Verify(item.Public, item.Digest, item.Signature)
			return nil
		})
	}
	g.Wait()
	return results
}
