package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gordian-engine/treefold"
	"github.com/gordian-engine/treefold/tfsource"
)

var (
	modeName  string // flag variable, traversal strategy
	workers   int    // flag variable, width-walk parallelism
	verbosity int    // flag variable, log level
)

// Root runs the root computation for the CLI command.
func Root(cmd *cobra.Command, args []string) error {
	mode, err := treefold.ParseMode(modeName)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(
		cmd.ErrOrStderr(),
		&slog.HandlerOptions{Level: level},
	))

	// One arg is the input file; with no args we read standard input.
	var in io.Reader = cmd.InOrStdin()
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		in = f
		log.Debug("Reading hashes", "file", args[0])
	} else {
		log.Debug("Reading hashes from standard input")
	}

	root, err := treefold.ComputeRoot(
		cmd.Context(),
		tfsource.NewLineSource(in),
		treefold.RootConfig{
			Log:     log,
			Mode:    mode,
			Workers: workers,
		},
	)
	if err != nil {
		return err
	}

	cmd.Println(root)
	return nil
}

func main() {
	c := &cobra.Command{
		Use:   "treefold [hashfile]",
		Args:  cobra.RangeArgs(0, 1),
		Short: "Compute the Merkle root of a list of hashes",
		Long: `Computes the Merkle root of a list of 32-byte hashes,
given as newline-separated lowercase hex lines in hashfile,
or on standard input when hashfile is omitted.

The root is printed to standard output as 64 lowercase hex characters.

Both modes produce the identical root.
depth-walk streams the input with memory bounded by the tree height;
width-walk loads every hash and combines each tree layer in parallel.`,
		RunE:         Root,
		SilenceUsage: true,
	}

	c.Flags().StringVarP(&modeName, "mode", "m", "depth-walk", `traversal strategy: "depth-walk" or "width-walk"`)
	c.Flags().IntVarP(&workers, "workers", "w", 0, "width-walk worker count, 0 = one per CPU")
	c.Flags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	c.SetOut(c.OutOrStdout())
	if err := c.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
