package storage

import (
	"database/sql"
	"fmt"
)

// Checkpoint is a validated state recorded part way through a run.
type Checkpoint struct {
	CheckpointID int64
	RunID        string
	MoveIndex    int
	ElapsedMs    int64
	CornerParity int
	EdgeParity   int
	StateJSON    string
}

// CheckpointRepository provides CRUD operations for run checkpoints.
type CheckpointRepository struct {
	db *DB
}

// NewCheckpointRepository creates a new checkpoint repository.
func NewCheckpointRepository(db *DB) *CheckpointRepository {
	return &CheckpointRepository{db: db}
}

// Create stores a checkpoint and returns its ID.
func (r *CheckpointRepository) Create(c Checkpoint) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO run_checkpoints (run_id, move_index, elapsed_ms, corner_parity, edge_parity, state_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.RunID, c.MoveIndex, c.ElapsedMs, c.CornerParity, c.EdgeParity, c.StateJSON)

	if err != nil {
		return 0, fmt.Errorf("failed to create checkpoint: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get checkpoint ID: %w", err)
	}

	return id, nil
}

// CreateBatch stores several checkpoints in one transaction.
func (r *CheckpointRepository) CreateBatch(checkpoints []Checkpoint) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO run_checkpoints (run_id, move_index, elapsed_ms, corner_parity, edge_parity, state_json)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer stmt.Close()

		for _, c := range checkpoints {
			if _, err := stmt.Exec(c.RunID, c.MoveIndex, c.ElapsedMs, c.CornerParity, c.EdgeParity, c.StateJSON); err != nil {
				return fmt.Errorf("failed to insert checkpoint: %w", err)
			}
		}

		return nil
	})
}

// GetByRun retrieves all checkpoints of a run in move order.
func (r *CheckpointRepository) GetByRun(runID string) ([]Checkpoint, error) {
	rows, err := r.db.Query(`
		SELECT checkpoint_id, run_id, move_index, elapsed_ms, corner_parity, edge_parity, state_json
		FROM run_checkpoints
		WHERE run_id = ?
		ORDER BY move_index
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkpoints: %w", err)
	}
	defer rows.Close()

	var checkpoints []Checkpoint
	for rows.Next() {
		var c Checkpoint
		err := rows.Scan(&c.CheckpointID, &c.RunID, &c.MoveIndex, &c.ElapsedMs, &c.CornerParity, &c.EdgeParity, &c.StateJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checkpoint: %w", err)
		}
		checkpoints = append(checkpoints, c)
	}

	return checkpoints, rows.Err()
}

// CountByRun returns the number of checkpoints recorded for a run.
func (r *CheckpointRepository) CountByRun(runID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM run_checkpoints WHERE run_id = ?", runID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count checkpoints: %w", err)
	}
	return count, nil
}
