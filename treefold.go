package treefold

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gordian-engine/treefold/tfdigest"
)

// LeafSource is an ordered, single-pass sequence of leaf digests.
//
// Next returns the next leaf, or [io.EOF] once the source is exhausted.
// Any other error aborts the computation and reaches the caller
// of [ComputeRoot] through [errors.Is] and [errors.As].
type LeafSource interface {
	Next() (tfdigest.Digest, error)
}

// Mode selects the traversal strategy for [ComputeRoot].
// The zero value is not a valid mode;
// use the constants or [ParseMode].
type Mode uint8

const (
	// ModeDepthWalk streams the source through [DepthWalk]:
	// sequential, with auxiliary memory bounded by the tree height.
	ModeDepthWalk Mode = 1 + iota

	// ModeWidthWalk materializes the source and runs [WidthWalk]:
	// O(n) memory, pair combinations within a layer run concurrently.
	ModeWidthWalk
)

// ParseMode maps the two recognized mode names,
// "depth-walk" and "width-walk", to their [Mode] values.
// Anything else is a configuration error.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "depth-walk":
		return ModeDepthWalk, nil
	case "width-walk":
		return ModeWidthWalk, nil
	}
	return 0, fmt.Errorf(`unknown mode %q (want "depth-walk" or "width-walk")`, s)
}

func (m Mode) String() string {
	switch m {
	case ModeDepthWalk:
		return "depth-walk"
	case ModeWidthWalk:
		return "width-walk"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// RootConfig is the configuration for [ComputeRoot].
type RootConfig struct {
	// Log may be nil to disable logging.
	Log *slog.Logger

	// Mode selects the engine.
	// It must be [ModeDepthWalk] or [ModeWidthWalk].
	Mode Mode

	// Workers bounds per-layer parallelism in width-walk mode;
	// zero means runtime.GOMAXPROCS(0).
	// Depth-walk is sequential by construction and ignores it.
	Workers int
}

// ComputeRoot reduces the leaves from src to the Merkle root,
// using the engine selected by cfg.Mode.
//
// A source with no leaves returns [ErrEmptyInput].
// A source with exactly one leaf returns that leaf directly:
// both engines would reduce it to itself without any combination,
// so neither is invoked.
//
// ComputeRoot panics if cfg.Mode is not one of the two Mode constants;
// unknown modes are expected to be rejected at the boundary
// by [ParseMode], before a RootConfig is ever built.
func ComputeRoot(ctx context.Context, src LeafSource, cfg RootConfig) (tfdigest.Digest, error) {
	switch cfg.Mode {
	case ModeDepthWalk, ModeWidthWalk:
		// Okay.
	default:
		panic(fmt.Errorf(
			"BUG: RootConfig.Mode must be ModeDepthWalk or ModeWidthWalk (got %d)",
			cfg.Mode,
		))
	}

	log := cfg.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	first, err := src.Next()
	if err == io.EOF {
		return tfdigest.Digest{}, ErrEmptyInput
	}
	if err != nil {
		return tfdigest.Digest{}, fmt.Errorf("reading leaf source: %w", err)
	}

	second, err := src.Next()
	if err == io.EOF {
		// A single leaf already is the root.
		return first, nil
	}
	if err != nil {
		return tfdigest.Digest{}, fmt.Errorf("reading leaf source: %w", err)
	}

	// The emptiness and single-leaf checks consumed two leaves;
	// hand the engine a source that replays them first.
	replay := &replaySource{
		buf:  []tfdigest.Digest{first, second},
		rest: src,
	}

	switch cfg.Mode {
	case ModeDepthWalk:
		log.Debug("Computing root", "mode", cfg.Mode)
		return DepthWalk(replay)

	case ModeWidthWalk:
		leaves, err := ReadAll(replay)
		if err != nil {
			return tfdigest.Digest{}, err
		}
		log.Debug(
			"Computing root",
			"mode", cfg.Mode,
			"leaves", len(leaves),
			"workers", cfg.Workers,
		)
		return WidthWalk(ctx, leaves, cfg.Workers)

	default:
		// Mode was validated above.
		panic("unreachable")
	}
}

// ReadAll drains src into a slice, preserving order.
func ReadAll(src LeafSource) ([]tfdigest.Digest, error) {
	var out []tfdigest.Digest
	for {
		d, err := src.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading leaf source: %w", err)
		}
		out = append(out, d)
	}
}

// replaySource yields buffered digests before continuing with rest.
type replaySource struct {
	buf  []tfdigest.Digest
	rest LeafSource
}

func (s *replaySource) Next() (tfdigest.Digest, error) {
	if len(s.buf) > 0 {
		d := s.buf[0]
		s.buf = s.buf[1:]
		return d, nil
	}
	return s.rest.Next()
}
