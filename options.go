package cubegroup

import "log/slog"

// Option configures a Cube.
type Option func(*config)

type config struct {
	moveHistory bool
	validation  bool
	logger      *slog.Logger
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
		validation:  false,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), applied moves are kept for History and Undo.
// Disable this for long random walks to keep memory flat.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithValidation checks the cube invariants after every applied move.
// A move that would leave the cube corrupted is rolled back and reported
// as ErrCorruptedState.
func WithValidation(enabled bool) Option {
	return func(c *config) {
		c.validation = enabled
	}
}

// WithLogger sets the logger for this cube. Without it the cube uses the
// package logger (see SetLogger).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
