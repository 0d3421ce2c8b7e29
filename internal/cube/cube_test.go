package cube

import (
	"math/rand/v2"
	"testing"

	"github.com/SeamusWaldron/cubegroup/pkg/types"
)

var allFaces = []Face{U, D, F, B, R, L}

func mustApply(t *testing.T, s State, tokens ...string) State {
	t.Helper()
	for _, tok := range tokens {
		var err error
		s, err = ApplyToken(s, tok)
		if err != nil {
			t.Fatalf("ApplyToken(%q): %v", tok, err)
		}
	}
	return s
}

func TestIdentityIsValid(t *testing.T) {
	s := Identity()
	if !s.IsIdentity() {
		t.Error("Identity() should be the identity")
	}
	if r := Validate(s); !r.Valid {
		t.Errorf("identity should validate, got %s", r)
	}
}

func TestSingleMoveBreaksIdentity(t *testing.T) {
	s := mustApply(t, Identity(), "R")
	if s.IsIdentity() {
		t.Error("state should not be identity after R")
	}
}

func TestGenerators_OrderFour(t *testing.T) {
	for _, face := range allFaces {
		s := Identity()
		for i := 1; i <= 4; i++ {
			s = TurnFace(s, face, 1)
			if i < 4 && s.IsIdentity() {
				t.Errorf("%v x %d should not be identity", face, i)
			}
		}
		if !s.IsIdentity() {
			t.Errorf("%v x 4 should return to identity, got %s", face, s)
		}
	}
}

func TestGenerators_OrderFourFromScrambled(t *testing.T) {
	start := mustApply(t, Identity(), "F", "R2", "D'", "B", "L", "U2")
	for _, face := range allFaces {
		s := start
		for i := 0; i < 4; i++ {
			s = TurnFace(s, face, 1)
		}
		if s != start {
			t.Errorf("%v x 4 should return to the starting state", face)
		}
	}
}

func TestGenerators_TargetsArePermutations(t *testing.T) {
	for _, face := range allFaces {
		g := generators[face]
		if !isBijection(g.cornerTarget[:]) {
			t.Errorf("%v corner targets are not a permutation", face)
		}
		if !isBijection(g.edgeTarget[:]) {
			t.Errorf("%v edge targets are not a permutation", face)
		}
	}
}

func TestGenerators_Flips(t *testing.T) {
	for _, face := range allFaces {
		g := generators[face]
		flips := 0
		for i, f := range g.edgeFlip {
			flips += int(f)
			if f == 1 && g.edgeTarget[i] == uint8(i) {
				t.Errorf("%v flips an edge it does not move (slot %s)", face, EdgeName(i))
			}
		}
		want := 0
		if face == F || face == B {
			want = 4
		}
		if flips != want {
			t.Errorf("%v flips %d edges, want %d", face, flips, want)
		}
	}
}

func TestGenerators_UDKeepCornerTwist(t *testing.T) {
	for _, face := range []Face{U, D} {
		for i, tw := range generators[face].cornerTwist {
			if tw != 0 {
				t.Errorf("%v twists corner %s by %d", face, CornerName(i), tw)
			}
		}
	}
}

func TestInverseCancellation(t *testing.T) {
	start := mustApply(t, Identity(), "L", "F'", "U2", "B", "R'")
	for _, face := range types.Faces {
		f := string(face)
		s := mustApply(t, start, f, f+"'")
		if s != start {
			t.Errorf("%s %s' should cancel", f, f)
		}
		s = mustApply(t, start, f+"'", f)
		if s != start {
			t.Errorf("%s' %s should cancel", f, f)
		}
		s = mustApply(t, start, f+"2", f+"2")
		if s != start {
			t.Errorf("%s2 %s2 should cancel", f, f)
		}
		twice := mustApply(t, start, f, f)
		half := mustApply(t, start, f+"2")
		if twice != half {
			t.Errorf("%s %s should equal %s2", f, f, f)
		}
	}
}

func TestSexyMove_SixTimes_ReturnsToIdentity(t *testing.T) {
	// (R U R' U') has order 6.
	s := Identity()
	for i := 1; i <= 6; i++ {
		for _, tok := range []string{"R", "U", "R'", "U'"} {
			s = mustApply(t, s, tok)
			if r := Validate(s); !r.Valid {
				t.Fatalf("repetition %d after %s: %s", i, tok, r)
			}
		}
		if i == 4 && s.IsIdentity() {
			t.Error("sexy move x 4 should not be identity")
		}
		if i < 6 && s.IsIdentity() {
			t.Errorf("sexy move x %d should not be identity", i)
		}
	}
	if !s.IsIdentity() {
		t.Errorf("sexy move x 6 should return to identity, got %s", s)
	}
}

func TestSingleQuarterTurnParity(t *testing.T) {
	for _, face := range allFaces {
		s := TurnFace(Identity(), face, 1)
		r := Validate(s)
		if r.CornerParity != 1 || r.EdgeParity != 1 {
			t.Errorf("%v: parity corner=%d edge=%d, want 1/1", face, r.CornerParity, r.EdgeParity)
		}
		if !r.Valid {
			t.Errorf("%v: %s", face, r)
		}
	}
}

func TestHalfTurnParityIsEven(t *testing.T) {
	for _, face := range allFaces {
		r := Validate(TurnFace(Identity(), face, 2))
		if r.CornerParity != 0 || r.EdgeParity != 0 {
			t.Errorf("%v2: parity corner=%d edge=%d, want 0/0", face, r.CornerParity, r.EdgeParity)
		}
	}
}

func TestApply_InvalidInputLeavesStateUnchanged(t *testing.T) {
	start := mustApply(t, Identity(), "R", "U")

	got, err := Apply(start, Face(9), types.TurnCW)
	if err == nil || got != start {
		t.Error("invalid face should error and leave state unchanged")
	}

	got, err = Apply(start, R, types.Turn(3))
	if err == nil || got != start {
		t.Error("invalid turn should error and leave state unchanged")
	}

	got, err = ApplyToken(start, "X'")
	if err == nil || got != start {
		t.Error("invalid token should error and leave state unchanged")
	}

	moves := []types.Move{{Face: types.FaceR, Turn: types.TurnCW}, {Face: "Q", Turn: types.TurnCW}}
	got, err = ApplyMoves(start, moves)
	if err == nil || got != start {
		t.Error("sequence with an invalid move should not be applied at all")
	}
}

func TestScrambleAndReverse(t *testing.T) {
	moves, err := types.ParseMoves("R U R' U' F D L2 B' U2 R")
	if err != nil {
		t.Fatal(err)
	}

	s, err := ApplyMoves(Identity(), moves)
	if err != nil {
		t.Fatal(err)
	}
	if s.IsIdentity() {
		t.Error("state should be scrambled after moves")
	}

	s, err = ApplyMoves(s, types.InvertSequence(moves))
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsIdentity() {
		t.Errorf("state should be identity after reversing scramble, got %s", s)
	}
}

func TestClosure_AllMovesFromScrambledStates(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	all := types.AllMoves()
	s := Identity()
	for i := 0; i < 200; i++ {
		for _, m := range all {
			next, err := ApplyMove(s, m)
			if err != nil {
				t.Fatal(err)
			}
			if r := Validate(next); !r.Valid {
				t.Fatalf("step %d, move %s: %s (from %s)", i, m, r, s)
			}
		}
		s, _ = ApplyMove(s, all[rng.IntN(len(all))])
	}
}

func TestRandomWalk_NeverCorrupts(t *testing.T) {
	// Stress scenario: one million uniformly random moves, validated after
	// every move.
	n := 1_000_000
	if testing.Short() {
		n = 20_000
	}

	rng := rand.New(rand.NewPCG(2024, 6))
	all := types.AllMoves()
	s := Identity()
	for i := 0; i < n; i++ {
		m := all[rng.IntN(len(all))]
		face, _ := typesFaceToFace(m.Face)
		s = TurnFace(s, face, m.Turn.QuarterTurns())
		if r := Validate(s); !r.Valid {
			t.Fatalf("move %d (%s): %s\nstate: %s", i, m, r, s)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := mustApply(t, Identity(), "R", "U")
	c := s.Clone()
	if !c.Equal(s) {
		t.Fatal("clone should equal original")
	}
	c.CornerOrient[0] = 2
	if c.Equal(s) {
		t.Error("modifying the clone should not affect the original")
	}
}
