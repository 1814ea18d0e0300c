package treefold

import (
	"fmt"
	"io"

	"github.com/gordian-engine/treefold/tfdigest"
)

// stackEntry is one pending subtree summary in the depth-walk fold.
// The level is the height of the subtree the digest covers;
// raw leaves are level 0.
type stackEntry struct {
	level uint
	d     tfdigest.Digest
}

// DepthWalk consumes src exactly once, in order,
// and returns the Merkle root of its leaves.
//
// The fold keeps an explicit stack of completed subtrees
// instead of recursing over the tree shape,
// so auxiliary memory is bounded by the tree height:
// entry levels strictly decrease from the bottom of the stack to the top,
// which caps the stack at ceil(log2(n))+1 entries.
//
// Every merge decision depends on all leaves seen so far,
// so the fold is sequential by construction;
// use [WidthWalk] when the leaves are materialized
// and parallel execution is wanted.
//
// Returns [ErrEmptyInput] if src yields no leaves.
func DepthWalk(src LeafSource) (tfdigest.Digest, error) {
	var stack []stackEntry

	for {
		d, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return tfdigest.Digest{}, fmt.Errorf("reading leaf source: %w", err)
		}

		stack = append(stack, stackEntry{level: 0, d: d})

		// Two completed subtrees of the same height are siblings.
		// Merge them immediately, earlier entry on the left,
		// and keep merging while the new top still has a same-level neighbor.
		for len(stack) >= 2 && stack[len(stack)-2].level == stack[len(stack)-1].level {
			left := stack[len(stack)-2]
			right := stack[len(stack)-1]

			stack = stack[:len(stack)-2]
			stack = append(stack, stackEntry{
				level: left.level + 1,
				d:     tfdigest.Combine(left.d, right.d),
			})
		}
	}

	if len(stack) == 0 {
		return tfdigest.Digest{}, ErrEmptyInput
	}

	// The source is exhausted but the stack may still hold
	// subtrees of distinct heights.
	// The top entry is always the shortest;
	// promote it with the duplication rule until it matches
	// the entry below it, merge, and repeat until one entry remains.
	// This reproduces per-layer duplication exactly:
	// a lone node at some layer pairs with itself at every layer
	// until a left sibling exists.
	for len(stack) > 1 {
		left := stack[len(stack)-2]
		right := stack[len(stack)-1]
		stack = stack[:len(stack)-2]

		for right.level < left.level {
			right.d = tfdigest.CombineSelf(right.d)
			right.level++
		}

		stack = append(stack, stackEntry{
			level: left.level + 1,
			d:     tfdigest.Combine(left.d, right.d),
		})
	}

	return stack[0].d, nil
}
