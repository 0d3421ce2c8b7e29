package cube

import (
	"fmt"

	"github.com/SeamusWaldron/cubegroup/pkg/types"
)

// ApplyMove applies a types.Move to s.
func ApplyMove(s State, m types.Move) (State, error) {
	face, ok := typesFaceToFace(m.Face)
	if !ok {
		return s, fmt.Errorf("%w: face %q", types.ErrInvalidMoveToken, string(m.Face))
	}
	return Apply(s, face, m.Turn)
}

// ApplyMoves applies a sequence of moves to s. Every move is checked before
// any is applied, so on error s is returned unchanged.
func ApplyMoves(s State, moves []types.Move) (State, error) {
	for i, m := range moves {
		if !m.Valid() {
			return s, fmt.Errorf("move %d: %w: %q", i+1, types.ErrInvalidMoveToken, m.Notation())
		}
	}
	for _, m := range moves {
		face, _ := typesFaceToFace(m.Face)
		s = TurnFace(s, face, m.Turn.QuarterTurns())
	}
	return s, nil
}

// ApplyToken parses a single move token and applies it to s.
func ApplyToken(s State, token string) (State, error) {
	m, err := types.ParseMove(token)
	if err != nil {
		return s, err
	}
	return ApplyMove(s, m)
}

// typesFaceToFace converts types.Face to cube.Face.
func typesFaceToFace(f types.Face) (Face, bool) {
	switch f {
	case types.FaceU:
		return U, true
	case types.FaceD:
		return D, true
	case types.FaceF:
		return F, true
	case types.FaceB:
		return B, true
	case types.FaceR:
		return R, true
	case types.FaceL:
		return L, true
	default:
		return U, false
	}
}

// FaceToTypesFace converts cube.Face to types.Face.
func FaceToTypesFace(f Face) types.Face {
	switch f {
	case U:
		return types.FaceU
	case D:
		return types.FaceD
	case F:
		return types.FaceF
	case B:
		return types.FaceB
	case R:
		return types.FaceR
	case L:
		return types.FaceL
	default:
		return ""
	}
}
