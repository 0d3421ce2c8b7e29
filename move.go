package cubegroup

import (
	"github.com/SeamusWaldron/cubegroup/internal/notation"
	"github.com/SeamusWaldron/cubegroup/pkg/types"
)

// Face represents a cube face in standard notation.
type Face = types.Face

const (
	FaceR = types.FaceR // Right
	FaceL = types.FaceL // Left
	FaceU = types.FaceU // Up
	FaceD = types.FaceD // Down
	FaceF = types.FaceF // Front
	FaceB = types.FaceB // Back
)

// Turn represents the direction and magnitude of a face turn.
type Turn = types.Turn

const (
	CW     = types.TurnCW  // Clockwise (90 degrees)
	CCW    = types.TurnCCW // Counter-clockwise (90 degrees)
	Double = types.Turn180 // Half turn (180 degrees)
)

// Axis is a layer rotation axis.
type Axis = types.Axis

const (
	AxisX = types.AxisX
	AxisY = types.AxisY
	AxisZ = types.AxisZ
)

// Move is a single face turn with an optional timestamp.
type Move = types.Move

// ParseMove parses a single move token such as R, R' or R2.
func ParseMove(s string) (Move, error) {
	return types.ParseMove(s)
}

// ParseMoves parses a whitespace separated sequence of moves.
// Example: "R U R' U'"
// Any invalid token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	return types.ParseMoves(s)
}

// FormatMoves formats moves as a space separated notation string.
func FormatMoves(moves []Move) string {
	return types.FormatMoves(moves)
}

// InvertSequence returns the sequence that undoes moves.
func InvertSequence(moves []Move) []Move {
	return types.InvertSequence(moves)
}

// Simplify merges adjacent turns of the same face, so R R' U U becomes U2.
// The simplified sequence reaches the same state.
func Simplify(moves []Move) []Move {
	return notation.Simplify(moves)
}
