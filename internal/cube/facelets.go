package cube

import "strings"

// Facelets is the sticker grid of a projected cube.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// U is seen from above with B at the top, D from below with F at the top,
// and the side faces from outside with U at the top.
type Facelets [NumFaces][9]Color

// Facelets collects the snapshot's stickers into a grid.
func (s Snapshot) Facelets() Facelets {
	var g Facelets
	for _, c := range s.Cubies {
		for _, st := range c.Stickers {
			if st.Face.Valid() && st.Index >= 0 && st.Index < 9 {
				g[st.Face][st.Index] = st.Color
			}
		}
	}
	return g
}

// ColorCounts returns how many stickers show each color.
func (s Snapshot) ColorCounts() [NumColors]int {
	var counts [NumColors]int
	for _, c := range s.Cubies {
		for _, st := range c.Stickers {
			if int(st.Color) < NumColors {
				counts[st.Color]++
			}
		}
	}
	return counts
}

// IsSolved returns true if every face shows a single color.
func (g Facelets) IsSolved() bool {
	for face := range Face(NumFaces) {
		for i := 0; i < 9; i++ {
			if g[face][i] != g[face][4] {
				return false
			}
		}
	}
	return true
}

// definitionOrder is the face order of a facelet definition string.
var definitionOrder = [NumFaces]Face{U, R, F, D, L, B}

// Definition returns the 54-character facelet string in U R F D L B face
// order, naming each sticker by the face whose center has its color.
func (g Facelets) Definition() string {
	var colorFace [NumColors]string
	for f := range Face(NumFaces) {
		colorFace[g[f][4]] = f.String()
	}

	var b strings.Builder
	b.Grow(NumFaces * 9)
	for _, f := range definitionOrder {
		for i := 0; i < 9; i++ {
			b.WriteString(colorFace[g[f][i]])
		}
	}
	return b.String()
}

// String returns a text representation of the cube as an unfolded net.
func (g Facelets) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(g[U][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			for col := 0; col < 3; col++ {
				b.WriteString(g[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(g[D][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
