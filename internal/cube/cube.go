// Package cube implements the 3x3 cube group: permutation and orientation
// state vectors, the six face generators, move composition, invariant
// validation and projection to stickers.
package cube

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

// NumColors is the number of sticker colors.
const NumColors = 6

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Name returns the lowercase color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// Face represents a cube face. It doubles as the index of the face's
// generator and of its 3x3 grid in Facelets.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

// NumFaces is the number of faces.
const NumFaces = 6

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Valid reports whether f names one of the six faces.
func (f Face) Valid() bool {
	return f >= 0 && f < NumFaces
}

// SolvedColor returns the color of a face when solved.
func (f Face) SolvedColor() Color {
	switch f {
	case U:
		return White
	case D:
		return Yellow
	case F:
		return Green
	case B:
		return Blue
	case R:
		return Red
	case L:
		return Orange
	default:
		return White
	}
}

// MarshalText renders the color by name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Name()), nil
}

// MarshalText renders the face by letter.
func (f Face) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
