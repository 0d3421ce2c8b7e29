// Package cli implements the command-line interface for cubegroup.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubegroup"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool

	logger = slog.New(slog.DiscardHandler)
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubegroup",
	Short: "Virtual Rubik's cube on the cube group",
	Long: `cubegroup - a virtual 3x3x3 cube whose state is a pair of permutation and
orientation vectors for corners and edges.

Apply move sequences and inspect the resulting stickers, play with the cube
interactively, and run long random walks that check every group invariant
after each move.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubegroup/cubegroup.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if verbose {
		cubegroup.SetLogger(logger)
	}
	return nil
}
