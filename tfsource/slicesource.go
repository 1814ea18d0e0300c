package tfsource

import (
	"io"

	"github.com/gordian-engine/treefold/tfdigest"
)

// SliceSource yields an in-memory slice of digests, in order.
// It is the source for callers that already hold decoded leaves.
type SliceSource struct {
	leaves []tfdigest.Digest
}

// NewSliceSource returns a SliceSource over leaves.
// The slice is not copied;
// the caller must not modify it while the source is in use.
func NewSliceSource(leaves []tfdigest.Digest) *SliceSource {
	return &SliceSource{leaves: leaves}
}

func (s *SliceSource) Next() (tfdigest.Digest, error) {
	if len(s.leaves) == 0 {
		return tfdigest.Digest{}, io.EOF
	}

	d := s.leaves[0]
	s.leaves = s.leaves[1:]
	return d, nil
}
