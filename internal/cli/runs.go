package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubegroup/internal/storage"
)

var (
	runsLimit int
	runsID    string
	runsLast  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded verification runs",
	Long: `List recent verification runs, or show one run in detail with its
checkpoints.

Examples:
  cubegroup runs
  cubegroup runs --limit 50
  cubegroup runs --last
  cubegroup runs --id <run_id>`,
	RunE: runRuns,
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.Flags().IntVar(&runsLimit, "limit", 10, "Number of runs to list")
	runsCmd.Flags().StringVar(&runsID, "id", "", "Show a single run")
	runsCmd.Flags().BoolVar(&runsLast, "last", false, "Show the most recent run")
}

func runRuns(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewRunRepository(db)
	w := cmd.OutOrStdout()

	if runsID != "" || runsLast {
		var run *storage.Run
		if runsLast {
			run, err = repo.GetLast()
		} else {
			run, err = repo.Get(runsID)
		}
		if err != nil {
			return err
		}
		if run == nil {
			return fmt.Errorf("no run found")
		}

		checkpoints, err := storage.NewCheckpointRepository(db).GetByRun(run.RunID)
		if err != nil {
			return err
		}
		printRun(w, run, checkpoints)
		return nil
	}

	runs, err := repo.List(runsLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Database: %s\n\n", db.Path())
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded. Start one with: cubegroup verify")
		return nil
	}

	counts, err := repo.CountByStatus()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Passed: %d  Failed: %d  Cancelled: %d  Running: %d\n\n",
		counts[storage.RunPassed], counts[storage.RunFailed], counts[storage.RunCancelled], counts[storage.RunRunning])

	fmt.Fprintf(w, "%-36s  %-20s  %-9s  %12s  %s\n", "RUN", "STARTED", "STATUS", "MOVES", "SEED")
	for _, r := range runs {
		fmt.Fprintf(w, "%-36s  %-20s  %-9s  %12s  %d\n",
			r.RunID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Status,
			fmt.Sprintf("%d/%d", r.AppliedMoves, r.RequestedMoves), r.Seed)
	}

	return nil
}

func printRun(w io.Writer, r *storage.Run, checkpoints []storage.Checkpoint) {
	fmt.Fprintln(w, titleStyle.Render("Run "+r.RunID))
	fmt.Fprintf(w, "Started:     %s\n", r.StartedAt.Local().Format(time.RFC3339))
	if r.EndedAt != nil {
		fmt.Fprintf(w, "Ended:       %s\n", r.EndedAt.Local().Format(time.RFC3339))
	}
	if r.DurationMs != nil {
		fmt.Fprintf(w, "Duration:    %s\n", time.Duration(*r.DurationMs)*time.Millisecond)
	}
	fmt.Fprintf(w, "Status:      %s\n", r.Status)
	fmt.Fprintf(w, "Seed:        %d\n", r.Seed)
	fmt.Fprintf(w, "Moves:       %d/%d\n", r.AppliedMoves, r.RequestedMoves)
	if r.AppVersion != nil {
		fmt.Fprintf(w, "Version:     %s\n", *r.AppVersion)
	}

	if r.FirstViolation != nil {
		fmt.Fprintf(w, "Violation:   %s\n", errorStyle.Render(*r.FirstViolation))
	}
	if r.FailingMoveIndex != nil && r.FailingToken != nil {
		fmt.Fprintf(w, "Failed at:   move %d (%s)\n", *r.FailingMoveIndex, *r.FailingToken)
	}
	if r.StateJSON != nil {
		fmt.Fprintf(w, "\n%s\n", *r.StateJSON)
	}

	if len(checkpoints) > 0 {
		fmt.Fprintf(w, "\nCheckpoints (%d):\n", len(checkpoints))
		for _, c := range checkpoints {
			fmt.Fprintf(w, "  move %-10d %8dms  parity %d/%d\n", c.MoveIndex, c.ElapsedMs, c.CornerParity, c.EdgeParity)
		}
	}
}
