package types

import (
	"errors"
	"testing"
)

func TestParseMove_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"U", Move{Face: FaceU, Turn: TurnCW}},
		{"D'", Move{Face: FaceD, Turn: TurnCCW}},
		{"L2", Move{Face: FaceL, Turn: Turn180}},
		{"R", Move{Face: FaceR, Turn: TurnCW}},
		{"F'", Move{Face: FaceF, Turn: TurnCCW}},
		{"B2", Move{Face: FaceB, Turn: Turn180}},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		if err != nil {
			t.Errorf("ParseMove(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMove(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.Notation() != tt.in {
			t.Errorf("Notation() = %q, want %q", got.Notation(), tt.in)
		}
	}
}

func TestParseMove_Invalid(t *testing.T) {
	for _, in := range []string{"", "X", "r", "u'", "R3", "R'2", "R2'", "Rw", " R", "R`", "M"} {
		_, err := ParseMove(in)
		if !errors.Is(err, ErrInvalidMoveToken) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidMoveToken", in, err)
		}
	}
}

func TestParseMoves_AllOrNothing(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatMoves(moves) != "R U R' U'" {
		t.Errorf("round trip = %q", FormatMoves(moves))
	}

	moves, err = ParseMoves("R U Q U'")
	if !errors.Is(err, ErrInvalidMoveToken) {
		t.Errorf("expected ErrInvalidMoveToken, got %v", err)
	}
	if moves != nil {
		t.Errorf("expected no moves on error, got %v", moves)
	}
}

func TestInverse(t *testing.T) {
	if (Move{Face: FaceR, Turn: TurnCW}).Inverse().Turn != TurnCCW {
		t.Error("R inverse should be R'")
	}
	if (Move{Face: FaceR, Turn: TurnCCW}).Inverse().Turn != TurnCW {
		t.Error("R' inverse should be R")
	}
	if (Move{Face: FaceR, Turn: Turn180}).Inverse().Turn != Turn180 {
		t.Error("R2 inverse should be R2")
	}
}

func TestInvertSequence(t *testing.T) {
	moves, _ := ParseMoves("R U2 F'")
	if got := FormatMoves(InvertSequence(moves)); got != "F U2 R'" {
		t.Errorf("InvertSequence = %q, want %q", got, "F U2 R'")
	}
}

func TestAllMoves_TokenRoundTrip(t *testing.T) {
	all := AllMoves()
	if len(all) != NumMoves {
		t.Fatalf("AllMoves() returned %d moves, want %d", len(all), NumMoves)
	}
	seen := make(map[uint8]bool)
	for _, m := range all {
		tok := m.Token()
		if seen[tok] {
			t.Errorf("duplicate token %d for %s", tok, m)
		}
		seen[tok] = true
		if back := MoveFromToken(tok); back != m {
			t.Errorf("MoveFromToken(%d) = %s, want %s", tok, back, m)
		}
	}
}

func TestQuarterTurns(t *testing.T) {
	if TurnCW.QuarterTurns() != 1 || Turn180.QuarterTurns() != 2 || TurnCCW.QuarterTurns() != 3 {
		t.Error("unexpected quarter turn counts")
	}
	if Turn(5).QuarterTurns() != 0 {
		t.Error("invalid turn should have zero quarter turns")
	}
}

func TestMoveFromLayer(t *testing.T) {
	tests := []struct {
		axis  Axis
		index int
		dir   int
		want  string
	}{
		{AxisY, 1, -1, "U"},
		{AxisY, 1, 1, "U'"},
		{AxisY, -1, 1, "D"},
		{AxisY, -1, -1, "D'"},
		{AxisX, 1, -1, "R"},
		{AxisX, -1, 1, "L"},
		{AxisZ, 1, -1, "F"},
		{AxisZ, -1, 1, "B"},
		{AxisZ, -1, -1, "B'"},
	}
	for _, tt := range tests {
		got, err := MoveFromLayer(tt.axis, tt.index, tt.dir)
		if err != nil {
			t.Errorf("MoveFromLayer(%c, %d, %d) error: %v", tt.axis, tt.index, tt.dir, err)
			continue
		}
		if got.Notation() != tt.want {
			t.Errorf("MoveFromLayer(%c, %d, %d) = %s, want %s", tt.axis, tt.index, tt.dir, got, tt.want)
		}
	}

	if _, err := MoveFromLayer(AxisX, 0, 1); !errors.Is(err, ErrInvalidMoveToken) {
		t.Errorf("middle slice should be rejected, got %v", err)
	}
	if _, err := MoveFromLayer(AxisX, 1, 0); !errors.Is(err, ErrInvalidMoveToken) {
		t.Errorf("zero direction should be rejected, got %v", err)
	}
}
