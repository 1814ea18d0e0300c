// Package treefoldtest provides helpers for tests and benchmarks
// that need leaf digests.
package treefoldtest

import (
	"crypto/sha256"
	"math/rand/v2"
	"testing"

	"github.com/gordian-engine/treefold/tfdigest"
)

// RandomDigestsForTest returns n pseudorandom digests,
// derived from a seed based on the test name.
// Each test gets a distinct but reproducible leaf set,
// and no test depends on another test's data.
func RandomDigestsForTest(t testing.TB, n int) []tfdigest.Digest {
	// Hashing the test name gives exactly the chacha8 seed size,
	// regardless of how long the name is.
	seed := sha256.Sum256([]byte(t.Name()))
	chacha := rand.NewChaCha8(seed)

	out := make([]tfdigest.Digest, n)
	for i := range out {
		if _, err := chacha.Read(out[i][:]); err != nil {
			panic(err)
		}
	}

	return out
}
