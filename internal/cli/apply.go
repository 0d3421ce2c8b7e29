package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubegroup"
)

var applyJSON bool

var applyCmd = &cobra.Command{
	Use:   "apply [moves...]",
	Short: "Apply a move sequence to the solved cube",
	Long: `Apply a move sequence to the solved cube and print the resulting sticker
net, the permutation parities and the validation report.

The whole sequence is parsed before anything is applied; one bad token
rejects it.

Examples:
  cubegroup apply "R U R' U'"
  cubegroup apply F B2 L2 D
  cubegroup apply --json R U`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyJSON, "json", false, "Print the state and snapshot as JSON")
}

// snapshotJSON is the JSON form of an applied sequence.
type snapshotJSON struct {
	Moves      string             `json:"moves"`
	Simplified string             `json:"simplified"`
	State      cubegroup.State    `json:"state"`
	Report     cubegroup.Report   `json:"report"`
	Definition string             `json:"definition"`
	Snapshot   cubegroup.Snapshot `json:"snapshot"`
}

func buildSnapshot(seq string) (snapshotJSON, error) {
	moves, err := cubegroup.ParseMoves(seq)
	if err != nil {
		return snapshotJSON{}, err
	}

	c := cubegroup.NewCube(cubegroup.WithValidation(true), cubegroup.WithLogger(logger))
	if err := c.Apply(moves...); err != nil {
		return snapshotJSON{}, err
	}

	snap := c.Snapshot()
	return snapshotJSON{
		Moves:      cubegroup.FormatMoves(moves),
		Simplified: cubegroup.FormatMoves(cubegroup.Simplify(moves)),
		State:      c.State(),
		Report:     c.Validate(),
		Definition: snap.Facelets().Definition(),
		Snapshot:   snap,
	}, nil
}

func runApply(cmd *cobra.Command, args []string) error {
	out, err := buildSnapshot(strings.Join(args, " "))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if applyJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	if out.Moves != "" {
		fmt.Fprintf(w, "Moves: %s\n", moveStyle.Render(out.Moves))
		if out.Simplified != out.Moves {
			fmt.Fprintf(w, "Simplified: %s\n", moveStyle.Render(out.Simplified))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, renderNet(out.Snapshot.Facelets()))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "State:  %s\n", out.State)
	fmt.Fprintf(w, "Report: %s\n", renderReport(out.Report))
	if out.State.IsIdentity() {
		fmt.Fprintln(w, validStyle.Render("SOLVED"))
	}

	return nil
}
