package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	exportMoves  string
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the snapshot of a move sequence",
	Long: `Export the state reached by a move sequence, either as JSON (state
vectors, validation report and the 27 cubies with their stickers) or as a
54-character facelet string in U R F D L B order.

Examples:
  cubegroup export --moves "R U R' U'"
  cubegroup export --moves "R U" --format facelets
  cubegroup export --moves "F2 B2" --format json -o out/snapshot.json`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportMoves, "moves", "", "Move sequence to apply to the solved cube")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format (json, facelets)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	snap, err := buildSnapshot(exportMoves)
	if err != nil {
		return err
	}

	var output string
	switch strings.ToLower(exportFormat) {
	case "json":
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)

	case "facelets":
		output = snap.Definition

	default:
		return fmt.Errorf("unknown format: %s (use json or facelets)", exportFormat)
	}

	w := cmd.OutOrStdout()
	if exportOutput == "" {
		fmt.Fprintln(w, output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(w, "Exported %s snapshot to %s\n", exportFormat, exportOutput)
	return nil
}
