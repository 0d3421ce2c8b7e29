package cube

import "fmt"

const (
	NumCorners = 8
	NumEdges   = 12
)

// Corner slots. Each corner lists its faces clockwise, starting with the
// U or D face.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge slots. Each edge lists its U/D face first, or F/B for the middle
// layer.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

var cornerNames = [NumCorners]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}

var edgeNames = [NumEdges]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}

// CornerName returns the name of corner slot i.
func CornerName(i int) string {
	if i < 0 || i >= NumCorners {
		return "?"
	}
	return cornerNames[i]
}

// EdgeName returns the name of edge slot i.
func EdgeName(i int) string {
	if i < 0 || i >= NumEdges {
		return "?"
	}
	return edgeNames[i]
}

// State is a cube configuration. Index i of each array is a slot:
// CornerPerm[i] is the corner piece sitting in slot i and CornerOrient[i]
// its twist (0..2); EdgePerm and EdgeOrient do the same for edges with a
// flip of 0 or 1.
//
// State is a value. Assignment copies it and == compares it.
type State struct {
	CornerPerm   [NumCorners]uint8 `json:"cp"`
	CornerOrient [NumCorners]uint8 `json:"co"`
	EdgePerm     [NumEdges]uint8   `json:"ep"`
	EdgeOrient   [NumEdges]uint8   `json:"eo"`
}

// Identity returns the solved state.
func Identity() State {
	var s State
	for i := range NumCorners {
		s.CornerPerm[i] = uint8(i)
	}
	for i := range NumEdges {
		s.EdgePerm[i] = uint8(i)
	}
	return s
}

// Clone returns a copy of s.
func (s State) Clone() State {
	return s
}

// Equal reports whether s and other are the same configuration.
func (s State) Equal(other State) bool {
	return s == other
}

// IsIdentity reports whether s is the solved state.
func (s State) IsIdentity() bool {
	return s == Identity()
}

// String dumps the four vectors.
func (s State) String() string {
	return fmt.Sprintf("cp=%v co=%v ep=%v eo=%v", s.CornerPerm, s.CornerOrient, s.EdgePerm, s.EdgeOrient)
}
