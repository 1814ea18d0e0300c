package tfdigest

import "fmt"

// InvalidEncodingError is returned from [Parse]
// when the given text is not the canonical encoding of a digest.
type InvalidEncodingError struct {
	// Text is the full input that failed to decode.
	Text string

	// Reason describes which part of the encoding contract was violated.
	Reason string
}

func (e InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid digest encoding %q: %s", e.Text, e.Reason)
}
