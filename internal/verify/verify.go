// Package verify drives long random walks through the cube group and checks
// every invariant after each move.
package verify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/SeamusWaldron/cubegroup/internal/cube"
	"github.com/SeamusWaldron/cubegroup/pkg/types"
)

// ErrInvalidConfig is returned for a config Run cannot execute.
var ErrInvalidConfig = errors.New("verify: invalid config")

// DefaultMoves is the length of the standard stress walk.
const DefaultMoves = 1_000_000

// StepFunc advances a state by one move.
type StepFunc func(cube.State, types.Move) (cube.State, error)

// Config describes a verification run.
type Config struct {
	Moves int
	Seed  int64
	// CheckEvery reports progress every CheckEvery moves. 0 disables it.
	CheckEvery int
	// Start is the state the walk begins from. The zero value means the
	// identity.
	Start *cube.State
	// Step defaults to cube.ApplyMove.
	Step       StepFunc
	OnProgress func(Progress)
	Logger     *slog.Logger
}

// Progress is reported every CheckEvery moves.
type Progress struct {
	MoveIndex int
	Elapsed   time.Duration
	State     cube.State
	Report    cube.Report
}

// Failure describes the first move that left the cube corrupted.
type Failure struct {
	// MoveIndex is 1-based.
	MoveIndex int         `json:"move_index"`
	Move      types.Move  `json:"-"`
	Token     string      `json:"move"`
	Report    cube.Report `json:"report"`
	Before    cube.State  `json:"before"`
	After     cube.State  `json:"after"`
}

// Dump renders the failure as indented JSON.
func (f *Failure) Dump() string {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Sprintf("move %d (%s): %s\nbefore: %s\nafter:  %s", f.MoveIndex, f.Token, f.Report, f.Before, f.After)
	}
	return string(data)
}

// Result is the outcome of a run.
type Result struct {
	Applied  int
	Final    cube.State
	Duration time.Duration
	Failure  *Failure
}

// Passed reports whether every move was applied without corruption.
func (r Result) Passed(requested int) bool {
	return r.Failure == nil && r.Applied == requested
}

// NewRand returns the generator a run with the given seed draws from.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Run applies cfg.Moves uniformly random moves and validates after each.
// On corruption the returned error wraps cube.ErrCorruptedState and
// Result.Failure holds the failing move. A cancelled ctx stops the walk
// early and returns ctx.Err() with the moves applied so far.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if cfg.Moves < 0 || cfg.CheckEvery < 0 {
		return Result{}, fmt.Errorf("%w: moves=%d check_every=%d", ErrInvalidConfig, cfg.Moves, cfg.CheckEvery)
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	step := cfg.Step
	if step == nil {
		step = cube.ApplyMove
	}

	s := cube.Identity()
	if cfg.Start != nil {
		s = *cfg.Start
	}
	if err := cube.Validate(s).Err(); err != nil {
		return Result{Final: s}, fmt.Errorf("start state: %w", err)
	}

	rng := NewRand(cfg.Seed)
	start := time.Now()
	log.Info("verify started", "moves", cfg.Moves, "seed", cfg.Seed, "check_every", cfg.CheckEvery)

	res := Result{Final: s}
	for i := 1; i <= cfg.Moves; i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				res.Duration = time.Since(start)
				log.Warn("verify cancelled", "applied", res.Applied)
				return res, err
			}
		}

		m := types.MoveFromToken(uint8(rng.IntN(types.NumMoves)))
		next, err := step(s, m)
		if err != nil {
			res.Duration = time.Since(start)
			return res, fmt.Errorf("move %d (%s): %w", i, m, err)
		}

		report := cube.Validate(next)
		if !report.Valid {
			res.Failure = &Failure{
				MoveIndex: i,
				Move:      m,
				Token:     m.Notation(),
				Report:    report,
				Before:    s,
				After:     next,
			}
			res.Final = next
			res.Duration = time.Since(start)
			log.Error("cube corrupted", "move_index", i, "move", m.Notation(), "report", report.String())
			return res, fmt.Errorf("move %d (%s): %w", i, m, report.Err())
		}

		s = next
		res.Applied = i
		res.Final = s

		if cfg.CheckEvery > 0 && i%cfg.CheckEvery == 0 {
			p := Progress{MoveIndex: i, Elapsed: time.Since(start), State: s, Report: report}
			log.Info("verify progress", "applied", i, "of", cfg.Moves, "corner_parity", report.CornerParity, "elapsed", p.Elapsed)
			if cfg.OnProgress != nil {
				cfg.OnProgress(p)
			}
		}
	}

	res.Duration = time.Since(start)
	log.Info("verify passed", "applied", res.Applied, "duration", res.Duration)
	return res, nil
}
