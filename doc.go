// Package treefold computes the root digest of a binary Merkle tree
// built over an ordered sequence of 32-byte digests.
//
// Two engines realize the same mathematical result
// under different space and parallelism trade-offs.
// [DepthWalk] folds a single-pass [LeafSource]
// with auxiliary memory bounded by the tree height.
// [WidthWalk] folds a fully materialized leaf slice layer by layer,
// combining the pairs of each layer concurrently.
//
// An unmatched node at any layer is combined with itself
// to produce its parent ([tfdigest.CombineSelf]),
// so a leaf count that is not a power of two still reduces to one root.
//
// [ComputeRoot] is the usual entry point:
// it validates the input, short-circuits the single-leaf case,
// and dispatches to the engine selected by a [Mode].
package treefold
