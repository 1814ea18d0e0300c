package tfdigest

import "crypto/sha256"

// Combine hashes the concatenation of left and right into their parent digest.
// Combine is pure: same inputs, same output, no state.
func Combine(left, right Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(left[:])
	_, _ = h.Write(right[:])

	var d Digest
	h.Sum(d[:0])
	return d
}

// CombineSelf applies the duplication rule for a node without a sibling:
// the node's own digest stands in for the missing sibling.
func CombineSelf(d Digest) Digest {
	return Combine(d, d)
}
