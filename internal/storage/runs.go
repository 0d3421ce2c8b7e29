package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunStatus is the outcome of a verification run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunPassed    RunStatus = "passed"
	RunFailed    RunStatus = "failed"
	RunCancelled RunStatus = "cancelled"
)

// Run represents a verification run in the database.
type Run struct {
	RunID            string
	StartedAt        time.Time
	EndedAt          *time.Time
	DurationMs       *int64
	Seed             int64
	RequestedMoves   int
	AppliedMoves     int
	CheckEvery       int
	Status           RunStatus
	FirstViolation   *string
	FailingMoveIndex *int
	FailingToken     *string
	StateJSON        *string
	AppVersion       *string
}

// RunOutcome is what a finished run reports back.
type RunOutcome struct {
	Status         RunStatus
	AppliedMoves   int
	FirstViolation string
	// FailingMoveIndex is 1-based; 0 means no move failed.
	FailingMoveIndex int
	FailingToken     string
	StateJSON        string
}

// RunRepository provides CRUD operations for verification runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create records the start of a run and returns its ID.
func (r *RunRepository) Create(seed int64, requestedMoves, checkEvery int, appVersion string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var appVersionPtr *string
	if appVersion != "" {
		appVersionPtr = &appVersion
	}

	_, err := r.db.Exec(`
		INSERT INTO verify_runs (run_id, started_at, seed, requested_moves, check_every, status, app_version)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), seed, requestedMoves, checkEvery, string(RunRunning), appVersionPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}

	return id, nil
}

// Finish marks a run as complete with its outcome.
func (r *RunRepository) Finish(runID string, out RunOutcome) error {
	endedAt := time.Now().UTC()

	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM verify_runs WHERE run_id = ?", runID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to get run start time: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}

	durationMs := endedAt.Sub(startedAt).Milliseconds()

	var violationPtr, tokenPtr, statePtr *string
	var indexPtr *int
	if out.FirstViolation != "" {
		violationPtr = &out.FirstViolation
	}
	if out.FailingToken != "" {
		tokenPtr = &out.FailingToken
	}
	if out.StateJSON != "" {
		statePtr = &out.StateJSON
	}
	if out.FailingMoveIndex > 0 {
		indexPtr = &out.FailingMoveIndex
	}

	_, err = r.db.Exec(`
		UPDATE verify_runs
		SET ended_at = ?, duration_ms = ?, status = ?, applied_moves = ?,
		    first_violation = ?, failing_move_index = ?, failing_token = ?, state_json = ?
		WHERE run_id = ?
	`, endedAt.Format(time.RFC3339), durationMs, string(out.Status), out.AppliedMoves,
		violationPtr, indexPtr, tokenPtr, statePtr, runID)

	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	return nil
}

const runColumns = `run_id, started_at, ended_at, duration_ms, seed, requested_moves, applied_moves,
		check_every, status, first_violation, failing_move_index, failing_token, state_json, app_version`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var startedAtStr, status string
	var endedAtStr sql.NullString

	err := row.Scan(
		&run.RunID, &startedAtStr, &endedAtStr, &run.DurationMs,
		&run.Seed, &run.RequestedMoves, &run.AppliedMoves, &run.CheckEvery,
		&status, &run.FirstViolation, &run.FailingMoveIndex, &run.FailingToken,
		&run.StateJSON, &run.AppVersion,
	)
	if err != nil {
		return nil, err
	}

	run.Status = RunStatus(status)
	run.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, endedAtStr.String)
		run.EndedAt = &t
	}

	return &run, nil
}

// Get retrieves a run by ID. It returns nil if there is no such run.
func (r *RunRepository) Get(runID string) (*Run, error) {
	run, err := scanRun(r.db.QueryRow(`SELECT `+runColumns+` FROM verify_runs WHERE run_id = ?`, runID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// GetLast retrieves the most recent run.
func (r *RunRepository) GetLast() (*Run, error) {
	runs, err := r.List(1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// List retrieves recent runs, newest first.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT `+runColumns+`
		FROM verify_runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

// CountByStatus returns how many runs ended in each status.
func (r *RunRepository) CountByStatus() (map[RunStatus]int, error) {
	rows, err := r.db.Query("SELECT status, COUNT(*) FROM verify_runs GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}
	defer rows.Close()

	counts := make(map[RunStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan run count: %w", err)
		}
		counts[RunStatus(status)] = n
	}

	return counts, rows.Err()
}

// Delete deletes a run and its checkpoints.
func (r *RunRepository) Delete(runID string) error {
	_, err := r.db.Exec("DELETE FROM verify_runs WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}
