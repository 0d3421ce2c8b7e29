package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubegroup/internal/storage"
	"github.com/SeamusWaldron/cubegroup/internal/verify"
)

var (
	verifyMoves      int
	verifySeed       int64
	verifyCheckEvery int
	verifyNoRecord   bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run a random-walk invariant check",
	Long: `Apply uniformly random face turns to the solved cube and validate every
group invariant after each move. Progress is logged every --check-every
moves and stored as a checkpoint. The run is recorded in the database unless
--no-record is given.

Exits non-zero if any move corrupts the state.

Examples:
  cubegroup verify
  cubegroup verify --moves 50000 --seed 7 --check-every 5000`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().IntVar(&verifyMoves, "moves", verify.DefaultMoves, "Number of random moves")
	verifyCmd.Flags().Int64Var(&verifySeed, "seed", 0, "Random seed (default: time based)")
	verifyCmd.Flags().IntVar(&verifyCheckEvery, "check-every", 100_000, "Report progress every N moves (0 to disable)")
	verifyCmd.Flags().BoolVar(&verifyNoRecord, "no-record", false, "Do not record the run in the database")
}

func runVerify(cmd *cobra.Command, args []string) error {
	seed := verifySeed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	var runs *storage.RunRepository
	var checkpoints *storage.CheckpointRepository
	var runID string
	if !verifyNoRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		runs = storage.NewRunRepository(db)
		checkpoints = storage.NewCheckpointRepository(db)
		runID, err = runs.Create(seed, verifyMoves, verifyCheckEvery, version)
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Verifying %d random moves (seed %d)\n", verifyMoves, seed)

	cfg := verify.Config{
		Moves:      verifyMoves,
		Seed:       seed,
		CheckEvery: verifyCheckEvery,
		Logger:     logger.With("run_id", runID),
		OnProgress: func(p verify.Progress) {
			if checkpoints == nil {
				return
			}
			state, _ := json.Marshal(p.State)
			_, err := checkpoints.Create(storage.Checkpoint{
				RunID:        runID,
				MoveIndex:    p.MoveIndex,
				ElapsedMs:    p.Elapsed.Milliseconds(),
				CornerParity: p.Report.CornerParity,
				EdgeParity:   p.Report.EdgeParity,
				StateJSON:    string(state),
			})
			if err != nil {
				logger.Warn("failed to record checkpoint", "err", err)
			}
		},
	}

	res, runErr := verify.Run(ctx, cfg)

	outcome := storage.RunOutcome{AppliedMoves: res.Applied}
	switch {
	case runErr == nil:
		outcome.Status = storage.RunPassed
	case errors.Is(runErr, context.Canceled):
		outcome.Status = storage.RunCancelled
	default:
		outcome.Status = storage.RunFailed
	}
	if f := res.Failure; f != nil {
		outcome.FirstViolation = f.Report.Violations[0].String()
		outcome.FailingMoveIndex = f.MoveIndex
		outcome.FailingToken = f.Token
		outcome.StateJSON = f.Dump()
	}

	if runs != nil {
		if err := runs.Finish(runID, outcome); err != nil {
			logger.Error("failed to record run", "run_id", runID, "err", err)
		}
	}

	switch outcome.Status {
	case storage.RunPassed:
		fmt.Fprintf(w, "%s %d moves in %s\n", validStyle.Render("PASSED"), res.Applied, res.Duration.Round(time.Millisecond))
	case storage.RunCancelled:
		fmt.Fprintf(w, "Cancelled after %d moves\n", res.Applied)
	default:
		fmt.Fprintln(w, errorStyle.Render("FAILED"))
		if res.Failure != nil {
			fmt.Fprintln(w, res.Failure.Dump())
		}
	}
	if runID != "" {
		fmt.Fprintf(w, "Run: %s\n", runID)
	}

	return runErr
}
