package types

import "fmt"

// Axis names a rotation axis: x points right, y up, z toward the front.
type Axis byte

const (
	AxisX Axis = 'x'
	AxisY Axis = 'y'
	AxisZ Axis = 'z'
)

// MoveFromLayer converts a layer rotation into a face move.
//
// index selects the layer along axis (-1 or +1; 0 is a middle slice and is
// rejected). dir is the rotation sense about the positive axis: +1 is
// counter-clockwise when looking down the axis toward the origin, so R, U
// and F are turned clockwise by dir == -1 while L, D and B, which face the
// other way, are turned clockwise by dir == +1.
func MoveFromLayer(axis Axis, index, dir int) (Move, error) {
	if dir != 1 && dir != -1 {
		return Move{}, fmt.Errorf("%w: direction %d", ErrInvalidMoveToken, dir)
	}

	var face Face
	switch {
	case axis == AxisX && index == 1:
		face = FaceR
	case axis == AxisX && index == -1:
		face = FaceL
	case axis == AxisY && index == 1:
		face = FaceU
	case axis == AxisY && index == -1:
		face = FaceD
	case axis == AxisZ && index == 1:
		face = FaceF
	case axis == AxisZ && index == -1:
		face = FaceB
	default:
		return Move{}, fmt.Errorf("%w: layer %c/%d", ErrInvalidMoveToken, axis, index)
	}

	// Positive-side faces look down the positive axis.
	cw := dir == -1
	if index == -1 {
		cw = dir == 1
	}

	turn := TurnCW
	if !cw {
		turn = TurnCCW
	}
	return Move{Face: face, Turn: turn}, nil
}
