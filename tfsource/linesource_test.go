package tfsource_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/gordian-engine/treefold/tfdigest"
	"github.com/gordian-engine/treefold/tfsource"
	"github.com/gordian-engine/treefold/treefoldtest"
	"github.com/stretchr/testify/require"
)

func TestLineSource_inOrder(t *testing.T) {
	t.Parallel()

	leaves := treefoldtest.RandomDigestsForTest(t, 3)

	var sb strings.Builder
	for _, d := range leaves {
		sb.WriteString(d.String())
		sb.WriteByte('\n')
	}

	src := tfsource.NewLineSource(strings.NewReader(sb.String()))

	for _, want := range leaves {
		got, err := src.Next()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := src.Next()
	require.ErrorIs(t, err, io.EOF)

	// Exhaustion is sticky.
	_, err = src.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestLineSource_noTrailingNewline(t *testing.T) {
	t.Parallel()

	leaves := treefoldtest.RandomDigestsForTest(t, 1)

	src := tfsource.NewLineSource(strings.NewReader(leaves[0].String()))

	got, err := src.Next()
	require.NoError(t, err)
	require.Equal(t, leaves[0], got)

	_, err = src.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestLineSource_crlf(t *testing.T) {
	t.Parallel()

	leaves := treefoldtest.RandomDigestsForTest(t, 2)
	in := leaves[0].String() + "\r\n" + leaves[1].String() + "\r\n"

	src := tfsource.NewLineSource(strings.NewReader(in))

	for _, want := range leaves {
		got, err := src.Next()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestLineSource_invalidLine(t *testing.T) {
	t.Parallel()

	leaves := treefoldtest.RandomDigestsForTest(t, 1)
	bad := strings.ToUpper(leaves[0].String())
	in := leaves[0].String() + "\n" + bad + "\n"

	src := tfsource.NewLineSource(strings.NewReader(in))

	_, err := src.Next()
	require.NoError(t, err)

	_, err = src.Next()

	var lineErr tfsource.LineError
	require.ErrorAs(t, err, &lineErr)
	require.Equal(t, 2, lineErr.Line)
	require.Equal(t, bad, lineErr.Content)

	// The underlying digest error is reachable through Unwrap.
	var encErr tfdigest.InvalidEncodingError
	require.ErrorAs(t, err, &encErr)

	// The failure is sticky: no skipping past a bad line.
	_, err = src.Next()
	require.ErrorAs(t, err, &lineErr)
	require.Equal(t, 2, lineErr.Line)
}

func TestLineSource_blankLine(t *testing.T) {
	t.Parallel()

	leaves := treefoldtest.RandomDigestsForTest(t, 1)
	in := "\n" + leaves[0].String() + "\n"

	src := tfsource.NewLineSource(strings.NewReader(in))

	_, err := src.Next()

	var lineErr tfsource.LineError
	require.ErrorAs(t, err, &lineErr)
	require.Equal(t, 1, lineErr.Line)
	require.Equal(t, "", lineErr.Content)
}

func TestLineSource_readerFailure(t *testing.T) {
	t.Parallel()

	errRead := errors.New("disk on fire")

	leaves := treefoldtest.RandomDigestsForTest(t, 1)
	r := io.MultiReader(
		strings.NewReader(leaves[0].String()+"\n"),
		iotest.ErrReader(errRead),
	)

	src := tfsource.NewLineSource(r)

	_, err := src.Next()
	require.NoError(t, err)

	_, err = src.Next()
	require.ErrorIs(t, err, errRead)
}

func TestSliceSource(t *testing.T) {
	t.Parallel()

	leaves := treefoldtest.RandomDigestsForTest(t, 4)

	src := tfsource.NewSliceSource(leaves)
	for _, want := range leaves {
		got, err := src.Next()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := src.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestSliceSource_empty(t *testing.T) {
	t.Parallel()

	_, err := tfsource.NewSliceSource(nil).Next()
	require.ErrorIs(t, err, io.EOF)
}
