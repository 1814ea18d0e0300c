package treefold

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gordian-engine/treefold/tfdigest"
)

// WidthWalk returns the Merkle root of the fully materialized leaves.
//
// Each layer collapses pairwise, left to right,
// into a fresh half-sized layer until one digest remains;
// an unmatched final element combines with itself.
// The pair combinations within one layer are mutually independent,
// so they are spread over at most workers goroutines
// (zero means runtime.GOMAXPROCS(0)).
// No combination for the next layer starts
// before every pair of the current layer is done.
//
// The leaves slice is only read, never modified.
// The context is checked once per layer;
// root computation is otherwise a finite batch operation
// with no cancellation points.
//
// Returns [ErrEmptyInput] if leaves is empty.
func WidthWalk(ctx context.Context, leaves []tfdigest.Digest, workers int) (tfdigest.Digest, error) {
	if len(leaves) == 0 {
		return tfdigest.Digest{}, ErrEmptyInput
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	layer := leaves
	for len(layer) > 1 {
		if err := ctx.Err(); err != nil {
			return tfdigest.Digest{}, err
		}

		pairs := (len(layer) + 1) / 2
		next := make([]tfdigest.Digest, pairs)

		n := min(workers, pairs)
		if n == 1 {
			combinePairs(layer, next, 0, pairs)
		} else {
			// Each goroutine gets a contiguous run of pair indices.
			// The runs read disjoint parts of layer
			// and write disjoint parts of next, so there is no locking;
			// Wait is the barrier between layers.
			var g errgroup.Group

			per := (pairs + n - 1) / n
			for start := 0; start < pairs; start += per {
				end := min(start+per, pairs)
				g.Go(func() error {
					combinePairs(layer, next, start, end)
					return nil
				})
			}

			// combinePairs cannot fail; Wait only synchronizes.
			_ = g.Wait()
		}

		layer = next
	}

	return layer[0], nil
}

// combinePairs collapses the pair indices [start, end) of layer into next.
func combinePairs(layer, next []tfdigest.Digest, start, end int) {
	for i := start; i < end; i++ {
		left := layer[2*i]
		if 2*i+1 < len(layer) {
			next[i] = tfdigest.Combine(left, layer[2*i+1])
		} else {
			next[i] = tfdigest.CombineSelf(left)
		}
	}
}
