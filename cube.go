package cubegroup

import (
	"fmt"
	"log/slog"

	"github.com/SeamusWaldron/cubegroup/internal/cube"
	"github.com/SeamusWaldron/cubegroup/pkg/types"
)

// State is a cube configuration: corner and edge permutation and
// orientation vectors. It is a value; assignment copies it.
type State = cube.State

// Snapshot is the renderable form of a state.
type Snapshot = cube.Snapshot

// Facelets is the 6x9 sticker grid of a snapshot.
type Facelets = cube.Facelets

// Report is the outcome of Validate.
type Report = cube.Report

// Violation names one broken cube invariant.
type Violation = cube.Violation

const (
	DuplicateOrMissingCorner = cube.DuplicateOrMissingCorner
	DuplicateOrMissingEdge   = cube.DuplicateOrMissingEdge
	TwistSumInvalid          = cube.TwistSumInvalid
	FlipSumInvalid           = cube.FlipSumInvalid
	ParityMismatch           = cube.ParityMismatch
)

// Reset returns the solved state.
func Reset() State {
	return cube.Identity()
}

// Apply applies a single move token to s. On error s is returned unchanged
// and the error wraps ErrInvalidMoveToken.
func Apply(s State, token string) (State, error) {
	return cube.ApplyToken(s, token)
}

// ApplySequence applies a whitespace separated move sequence to s. The
// sequence is parsed completely first; on error s is returned unchanged.
func ApplySequence(s State, seq string) (State, error) {
	moves, err := ParseMoves(seq)
	if err != nil {
		return s, err
	}
	return cube.ApplyMoves(s, moves)
}

// Project converts s into 27 cubies with their stickers.
func Project(s State) Snapshot {
	return cube.Project(s)
}

// Validate checks every cube invariant of s.
func Validate(s State) Report {
	return cube.Validate(s)
}

// Cube is a stateful cube with move history.
//
// A Cube is not safe for concurrent use.
type Cube struct {
	cfg     *config
	log     *slog.Logger
	state   State
	history []Move
	onMove  func(Move)
}

// NewCube creates a solved cube.
func NewCube(opts ...Option) *Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Cube{
		cfg:   cfg,
		log:   cfg.logger,
		state: cube.Identity(),
	}
}

func (c *Cube) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return Logger()
}

// OnMove sets a callback fired for every move once it has been applied.
func (c *Cube) OnMove(fn func(Move)) {
	c.onMove = fn
}

// State returns the current state.
func (c *Cube) State() State {
	return c.state
}

// Reset returns the cube to the solved state and clears the history.
func (c *Cube) Reset() {
	c.state = cube.Identity()
	c.history = c.history[:0]
	c.logger().Debug("cube reset")
}

// Apply applies moves in order. Either every move is applied or none is:
// an invalid move, or a corrupted state when validation is enabled, leaves
// the cube as it was.
func (c *Cube) Apply(moves ...Move) error {
	for i, m := range moves {
		if !m.Valid() {
			return fmt.Errorf("move %d: %w: %q", i+1, ErrInvalidMoveToken, m.Notation())
		}
	}

	next := c.state
	for i, m := range moves {
		var err error
		next, err = cube.ApplyMove(next, m)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		if !c.cfg.validation {
			continue
		}
		if err := cube.Validate(next).Err(); err != nil {
			c.logger().Error("move rejected", "move", m.Notation(), "index", i, "state", next.String(), "err", err)
			return fmt.Errorf("move %d (%s): %w", i+1, m.Notation(), err)
		}
	}

	c.state = next
	if c.cfg.moveHistory {
		c.history = append(c.history, moves...)
	}
	for _, m := range moves {
		c.logger().Debug("move applied", "move", m.Notation())
		if c.onMove != nil {
			c.onMove(m)
		}
	}
	return nil
}

// ApplyToken parses and applies a single move token.
func (c *Cube) ApplyToken(token string) error {
	m, err := ParseMove(token)
	if err != nil {
		return err
	}
	return c.Apply(m)
}

// ApplyNotation parses and applies a move sequence such as "R U R' U'".
// Nothing is applied if any token is invalid.
func (c *Cube) ApplyNotation(seq string) error {
	moves, err := ParseMoves(seq)
	if err != nil {
		return err
	}
	return c.Apply(moves...)
}

// RotateLayer applies an outer-layer rotation given as an axis, a layer
// index of -1 or +1 and a direction of -1 or +1. See types.MoveFromLayer.
func (c *Cube) RotateLayer(axis Axis, index, dir int) error {
	m, err := types.MoveFromLayer(axis, index, dir)
	if err != nil {
		return err
	}
	return c.Apply(m)
}

// Undo reverts the last applied move and returns it.
func (c *Cube) Undo() (Move, error) {
	if !c.cfg.moveHistory {
		return Move{}, ErrNoHistory
	}
	if len(c.history) == 0 {
		return Move{}, ErrNothingToUndo
	}
	last := c.history[len(c.history)-1]
	next, err := cube.ApplyMove(c.state, last.Inverse())
	if err != nil {
		return Move{}, err
	}
	c.state = next
	c.history = c.history[:len(c.history)-1]
	c.logger().Debug("move undone", "move", last.Notation())
	return last, nil
}

// History returns a copy of the applied moves, oldest first.
func (c *Cube) History() []Move {
	out := make([]Move, len(c.history))
	copy(out, c.history)
	return out
}

// Validate checks the cube invariants of the current state.
func (c *Cube) Validate() Report {
	return cube.Validate(c.state)
}

// Snapshot projects the current state to cubies.
func (c *Cube) Snapshot() Snapshot {
	return cube.Project(c.state)
}

// Facelets returns the sticker grid of the current state.
func (c *Cube) Facelets() Facelets {
	return cube.Project(c.state).Facelets()
}

// IsSolved returns true if the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	return c.state.IsIdentity()
}

// Clone creates an independent copy of the cube. The move callback is not
// copied.
func (c *Cube) Clone() *Cube {
	cfg := *c.cfg
	return &Cube{
		cfg:     &cfg,
		log:     c.log,
		state:   c.state,
		history: c.History(),
	}
}

// String returns the sticker net of the current state.
func (c *Cube) String() string {
	return c.Facelets().String()
}
