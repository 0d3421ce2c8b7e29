// Package notation rewrites move sequences into shorter equivalent ones.
package notation

import (
	"github.com/SeamusWaldron/cubegroup/pkg/types"
)

// NormalizeTurn maps a signed count of clockwise quarter turns onto a
// single move turn. ok is false when the turns cancel out.
// -3 -> CW, -2 -> 180, -1 -> CCW, 0 -> none, 1 -> CW, 2 -> 180, 3 -> CCW
func NormalizeTurn(quarters int) (turn types.Turn, ok bool) {
	switch ((quarters % 4) + 4) % 4 {
	case 1:
		return types.TurnCW, true
	case 2:
		return types.Turn180, true
	case 3:
		return types.TurnCCW, true
	default:
		return 0, false
	}
}

// Simplify merges runs of turns on the same face. R R becomes R2,
// R R' disappears, and a merge that empties out lets the moves on either
// side of it merge in turn, so R U U' R' simplifies to nothing.
// The result always reaches the same state as moves. Timestamps are not
// kept on merged moves. Invalid moves are passed through untouched.
func Simplify(moves []types.Move) []types.Move {
	out := make([]types.Move, 0, len(moves))

	for _, m := range moves {
		if !m.Valid() {
			out = append(out, m)
			continue
		}

		n := len(out)
		if n == 0 || out[n-1].Face != m.Face || !out[n-1].Valid() {
			out = append(out, m)
			continue
		}

		turn, ok := NormalizeTurn(out[n-1].Turn.QuarterTurns() + m.Turn.QuarterTurns())
		if !ok {
			out = out[:n-1]
			continue
		}
		out[n-1] = types.Move{Face: m.Face, Turn: turn}
	}

	return out
}
