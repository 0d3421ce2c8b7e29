package cube

import (
	"fmt"

	"github.com/SeamusWaldron/cubegroup/pkg/types"
)

// compose applies one generator to s. The result is built in a fresh value
// so no slot is read after it has been written.
func (s State) compose(g *generator) State {
	var next State

	for i := range NumCorners {
		t := g.cornerTarget[i]
		next.CornerPerm[t] = s.CornerPerm[i]
		next.CornerOrient[t] = (s.CornerOrient[i] + g.cornerTwist[i]) % 3
	}

	for i := range NumEdges {
		t := g.edgeTarget[i]
		next.EdgePerm[t] = s.EdgePerm[i]
		next.EdgeOrient[t] = (s.EdgeOrient[i] + g.edgeFlip[i]) % 2
	}

	return next
}

// TurnFace applies n clockwise quarter turns of face to s. n is taken mod 4
// and an invalid face leaves s as it is.
func TurnFace(s State, face Face, n int) State {
	if !face.Valid() {
		return s
	}
	g := &generators[face]
	for range ((n % 4) + 4) % 4 {
		s = s.compose(g)
	}
	return s
}

// Apply applies a face turn to s. Counter-clockwise is three clockwise
// quarter turns. On an unknown face or turn s is returned unchanged along
// with ErrInvalidMoveToken.
func Apply(s State, face Face, turn types.Turn) (State, error) {
	if !face.Valid() {
		return s, fmt.Errorf("%w: face %d", types.ErrInvalidMoveToken, int(face))
	}
	n := turn.QuarterTurns()
	if n == 0 {
		return s, fmt.Errorf("%w: turn %d", types.ErrInvalidMoveToken, int(turn))
	}
	return TurnFace(s, face, n), nil
}
