// Package types contains shared type definitions for the cubegroup module.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMoveToken is returned for a face letter outside U/D/L/R/F/B or
// a modifier other than ' or 2.
var ErrInvalidMoveToken = errors.New("cubegroup: invalid move token")

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceL Face = "L" // Left
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Faces lists the six faces in token order.
var Faces = [6]Face{FaceU, FaceD, FaceL, FaceR, FaceF, FaceB}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	switch f {
	case FaceU, FaceD, FaceL, FaceR, FaceF, FaceB:
		return true
	}
	return false
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // 180 degree turn (half turn)
)

// Valid reports whether t is a quarter or half turn.
func (t Turn) Valid() bool {
	return t == TurnCW || t == TurnCCW || t == Turn180
}

// QuarterTurns returns how many clockwise quarter turns t is made of.
// Counter-clockwise is three clockwise turns. Invalid turns return 0.
func (t Turn) QuarterTurns() int {
	switch t {
	case TurnCW:
		return 1
	case Turn180:
		return 2
	case TurnCCW:
		return 3
	default:
		return 0
	}
}

// Move represents a single cube move with face and turn direction.
type Move struct {
	Face      Face  `json:"face"`
	Turn      Turn  `json:"turn"`
	Timestamp int64 `json:"ts_ms,omitempty"` // Milliseconds since session start
}

// Valid reports whether both face and turn are recognised.
func (m Move) Valid() bool {
	return m.Face.Valid() && m.Turn.Valid()
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case TurnCCW:
		suffix = "'"
	case Turn180:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// String returns the notation string.
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
	// Turn180 is its own inverse
	}
	return inv
}

// ParseMove parses a single move token. The first character is the face
// (U, D, L, R, F or B) and the optional second character is the modifier:
// ' for counter-clockwise, 2 for a half turn. Anything else is rejected.
func ParseMove(s string) (Move, error) {
	if len(s) == 0 || len(s) > 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMoveToken, s)
	}

	face := Face(s[:1])
	if !face.Valid() {
		return Move{}, fmt.Errorf("%w: %q: unknown face", ErrInvalidMoveToken, s)
	}

	turn := TurnCW
	if len(s) == 2 {
		switch s[1] {
		case '\'':
			turn = TurnCCW
		case '2':
			turn = Turn180
		default:
			return Move{}, fmt.Errorf("%w: %q: unknown modifier", ErrInvalidMoveToken, s)
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of move tokens.
// The whole sequence is rejected if any token is invalid.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertSequence returns the sequence that undoes moves.
func InvertSequence(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// NumMoves is the number of distinct face turns.
const NumMoves = 18

// AllMoves returns the 18 face turns: clockwise, then counter-clockwise,
// then half turns, each group in U D L R F B order.
func AllMoves() []Move {
	moves := make([]Move, 0, NumMoves)
	for _, turn := range []Turn{TurnCW, TurnCCW, Turn180} {
		for _, face := range Faces {
			moves = append(moves, Move{Face: face, Turn: turn})
		}
	}
	return moves
}

// Token encodes the move as a single byte.
// Encoding: face*3 + turn_code where:
//   - face: R=0, L=1, U=2, D=3, F=4, B=5
//   - turn_code: CCW=0, CW=1, 180=2
func (m Move) Token() uint8 {
	var faceCode uint8
	switch m.Face {
	case FaceR:
		faceCode = 0
	case FaceL:
		faceCode = 1
	case FaceU:
		faceCode = 2
	case FaceD:
		faceCode = 3
	case FaceF:
		faceCode = 4
	case FaceB:
		faceCode = 5
	}

	var turnCode uint8
	switch m.Turn {
	case TurnCCW:
		turnCode = 0
	case TurnCW:
		turnCode = 1
	case Turn180:
		turnCode = 2
	}

	return faceCode*3 + turnCode
}

// MoveFromToken decodes a token back into a Move. Tokens are taken
// modulo NumMoves so any byte maps to a valid move.
func MoveFromToken(token uint8) Move {
	token %= NumMoves
	faceCode := token / 3
	turnCode := token % 3

	var face Face
	switch faceCode {
	case 0:
		face = FaceR
	case 1:
		face = FaceL
	case 2:
		face = FaceU
	case 3:
		face = FaceD
	case 4:
		face = FaceF
	case 5:
		face = FaceB
	}

	var turn Turn
	switch turnCode {
	case 0:
		turn = TurnCCW
	case 1:
		turn = TurnCW
	case 2:
		turn = Turn180
	}

	return Move{Face: face, Turn: turn}
}
