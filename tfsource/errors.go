package tfsource

import "fmt"

// LineError reports an input line that failed to decode as a digest.
type LineError struct {
	// Line is 1-based, matching what an editor shows.
	Line int

	// Content is the offending line, exactly as read.
	Content string

	// Err is the underlying decode failure,
	// normally a [tfdigest.InvalidEncodingError].
	Err error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: invalid digest %q: %v", e.Line, e.Content, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}
