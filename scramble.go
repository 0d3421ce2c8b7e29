package cubegroup

import (
	"math/rand/v2"

	"github.com/SeamusWaldron/cubegroup/pkg/types"
)

// RandomMoves returns n moves drawn uniformly from the 18 face turns.
// A nil r uses the global source.
func RandomMoves(r *rand.Rand, n int) []Move {
	moves := make([]Move, n)
	for i := range moves {
		var tok int
		if r != nil {
			tok = r.IntN(types.NumMoves)
		} else {
			tok = rand.IntN(types.NumMoves)
		}
		moves[i] = types.MoveFromToken(uint8(tok))
	}
	return moves
}
