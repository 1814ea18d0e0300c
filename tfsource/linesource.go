// Package tfsource provides leaf sources for the treefold engines:
// ordered, single-pass sequences of digests that end with [io.EOF].
package tfsource

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gordian-engine/treefold/tfdigest"
)

// LineSource decodes one digest per line from an io.Reader.
//
// Every line must be the canonical encoding accepted by [tfdigest.Parse]:
// exactly 64 lowercase hexadecimal characters.
// The first malformed line stops the source with a [LineError]
// carrying the 1-based line number and the offending content;
// there is no skipping or recovery.
// A failure of the underlying reader also stops the source,
// with the reader's error wrapped.
type LineSource struct {
	scanner *bufio.Scanner
	line    int

	// Once set, every subsequent Next call returns this error.
	err error
}

// NewLineSource returns a LineSource reading from r.
// Lines are separated by '\n'; a trailing "\r" is tolerated
// so input written on Windows still decodes.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(r)}
}

func (s *LineSource) Next() (tfdigest.Digest, error) {
	if s.err != nil {
		return tfdigest.Digest{}, s.err
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			s.err = fmt.Errorf("reading lines: %w", err)
		} else {
			s.err = io.EOF
		}
		return tfdigest.Digest{}, s.err
	}

	s.line++
	text := s.scanner.Text()

	d, err := tfdigest.Parse(text)
	if err != nil {
		s.err = LineError{Line: s.line, Content: text, Err: err}
		return tfdigest.Digest{}, s.err
	}

	return d, nil
}
