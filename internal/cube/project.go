package cube

import "fmt"

// Kind classifies a cubie.
type Kind int

const (
	KindCorner Kind = iota
	KindEdge
	KindCenter
	KindCore
)

func (k Kind) String() string {
	switch k {
	case KindCorner:
		return "corner"
	case KindEdge:
		return "edge"
	case KindCenter:
		return "center"
	case KindCore:
		return "core"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Position is a cubie's location: X runs left to right, Y down to up and
// Z back to front, each in -1..1.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Sticker is one visible facelet. Index is its place in the face's 3x3 grid
// (row-major, 0..8).
type Sticker struct {
	Face  Face  `json:"face"`
	Index int   `json:"index"`
	Color Color `json:"color"`
}

// Cubie is one of the 27 sub-cubes as it should be drawn.
type Cubie struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Slot        int       `json:"slot"`
	Piece       int       `json:"piece"`
	Orientation int       `json:"orientation"`
	Position    Position  `json:"position"`
	Stickers    []Sticker `json:"stickers"`
}

// Snapshot is the renderable form of a state: 8 corners, 12 edges,
// 6 centers and the core, in that order.
type Snapshot struct {
	Cubies []Cubie `json:"cubies"`
}

// cornerFaces lists each corner slot's faces clockwise, U/D face first.
// The same order gives a corner piece's colors in the solved state.
var cornerFaces = [NumCorners][3]Face{
	URF: {U, R, F},
	UFL: {U, F, L},
	ULB: {U, L, B},
	UBR: {U, B, R},
	DFR: {D, F, R},
	DLF: {D, L, F},
	DBL: {D, B, L},
	DRB: {D, R, B},
}

// cornerFacelets gives the grid index of each corner sticker, matching
// cornerFaces.
var cornerFacelets = [NumCorners][3]int{
	URF: {8, 0, 2},
	UFL: {6, 0, 2},
	ULB: {0, 0, 2},
	UBR: {2, 0, 2},
	DFR: {2, 8, 6},
	DLF: {0, 8, 6},
	DBL: {6, 8, 6},
	DRB: {8, 8, 6},
}

var edgeFaces = [NumEdges][2]Face{
	UR: {U, R},
	UF: {U, F},
	UL: {U, L},
	UB: {U, B},
	DR: {D, R},
	DF: {D, F},
	DL: {D, L},
	DB: {D, B},
	FR: {F, R},
	FL: {F, L},
	BL: {B, L},
	BR: {B, R},
}

var edgeFacelets = [NumEdges][2]int{
	UR: {5, 1},
	UF: {7, 1},
	UL: {3, 1},
	UB: {1, 1},
	DR: {5, 7},
	DF: {1, 7},
	DL: {3, 7},
	DB: {7, 7},
	FR: {5, 3},
	FL: {3, 5},
	BL: {5, 3},
	BR: {3, 5},
}

// faceNormal is the unit vector pointing out of a face.
func faceNormal(f Face) Position {
	switch f {
	case U:
		return Position{Y: 1}
	case D:
		return Position{Y: -1}
	case F:
		return Position{Z: 1}
	case B:
		return Position{Z: -1}
	case R:
		return Position{X: 1}
	case L:
		return Position{X: -1}
	default:
		return Position{}
	}
}

func positionOf(faces ...Face) Position {
	var p Position
	for _, f := range faces {
		n := faceNormal(f)
		p.X += n.X
		p.Y += n.Y
		p.Z += n.Z
	}
	return p
}

// Project converts s into stickers. A corner piece with twist o shows its
// k-th color (in cornerFaces order) on the slot's face (k+o) mod 3; an
// edge with flip 1 swaps its two colors. Pieces whose identity is out of
// range are drawn without stickers.
func Project(s State) Snapshot {
	cubies := make([]Cubie, 0, NumCorners+NumEdges+NumFaces+1)

	for slot := range NumCorners {
		piece := int(s.CornerPerm[slot])
		o := int(s.CornerOrient[slot] % 3)
		faces := cornerFaces[slot]
		c := Cubie{
			ID:          fmt.Sprintf("corner%d", piece),
			Kind:        KindCorner,
			Slot:        slot,
			Piece:       piece,
			Orientation: o,
			Position:    positionOf(faces[:]...),
		}
		if piece < NumCorners {
			c.Stickers = make([]Sticker, 3)
			for k := range 3 {
				c.Stickers[k] = Sticker{
					Face:  faces[k],
					Index: cornerFacelets[slot][k],
					Color: cornerFaces[piece][(k-o+3)%3].SolvedColor(),
				}
			}
		}
		cubies = append(cubies, c)
	}

	for slot := range NumEdges {
		piece := int(s.EdgePerm[slot])
		o := int(s.EdgeOrient[slot] % 2)
		faces := edgeFaces[slot]
		c := Cubie{
			ID:          fmt.Sprintf("edge%d", piece),
			Kind:        KindEdge,
			Slot:        slot,
			Piece:       piece,
			Orientation: o,
			Position:    positionOf(faces[:]...),
		}
		if piece < NumEdges {
			c.Stickers = make([]Sticker, 2)
			for k := range 2 {
				c.Stickers[k] = Sticker{
					Face:  faces[k],
					Index: edgeFacelets[slot][k],
					Color: edgeFaces[piece][(k+o)%2].SolvedColor(),
				}
			}
		}
		cubies = append(cubies, c)
	}

	for f := range Face(NumFaces) {
		cubies = append(cubies, Cubie{
			ID:       fmt.Sprintf("center%s", f),
			Kind:     KindCenter,
			Slot:     int(f),
			Piece:    int(f),
			Position: faceNormal(f),
			Stickers: []Sticker{{Face: f, Index: 4, Color: f.SolvedColor()}},
		})
	}

	cubies = append(cubies, Cubie{ID: "core", Kind: KindCore})

	return Snapshot{Cubies: cubies}
}
