package tfdigest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Size is the length in bytes of a [Digest].
const Size = sha256.Size

// EncodedLen is the length of the canonical text encoding of a [Digest].
const EncodedLen = 2 * Size

// Digest is a fixed 32-byte hash value.
//
// Digests are plain values:
// they are compared and copied by value and never modified in place.
type Digest [Size]byte

// Parse decodes the canonical text encoding of a digest:
// exactly 64 lowercase hexadecimal characters.
//
// Parse is stricter than the encoding/hex package,
// which also accepts uppercase input;
// rejecting uppercase means every digest has exactly one valid text form,
// so Parse and [Digest.String] are inverses over their whole domains.
func Parse(s string) (Digest, error) {
	if len(s) != EncodedLen {
		return Digest{}, InvalidEncodingError{
			Text:   s,
			Reason: fmt.Sprintf("length %d, want %d", len(s), EncodedLen),
		}
	}

	var d Digest
	for i := 0; i < EncodedLen; i += 2 {
		hi, ok := nibble(s[i])
		if !ok {
			return Digest{}, InvalidEncodingError{
				Text:   s,
				Reason: fmt.Sprintf("byte %d is not a lowercase hex digit", i),
			}
		}
		lo, ok := nibble(s[i+1])
		if !ok {
			return Digest{}, InvalidEncodingError{
				Text:   s,
				Reason: fmt.Sprintf("byte %d is not a lowercase hex digit", i+1),
			}
		}
		d[i/2] = hi<<4 | lo
	}

	return d, nil
}

// MustParse is like [Parse] but panics on invalid input.
// Intended for hardcoded digests, typically in tests.
func MustParse(s string) Digest {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Errorf("BUG: MustParse given invalid input: %w", err))
	}
	return d
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// String returns the canonical text encoding of the digest:
// 64 lowercase hexadecimal characters.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}
