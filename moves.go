package cubegroup

// Predefined moves for convenience.
//
// Example:
//
//	c.Apply(cubegroup.R, cubegroup.U, cubegroup.RPrime, cubegroup.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}
	RPrime = Move{Face: FaceR, Turn: CCW}
	R2     = Move{Face: FaceR, Turn: Double}

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}
	LPrime = Move{Face: FaceL, Turn: CCW}
	L2     = Move{Face: FaceL, Turn: Double}

	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}
	UPrime = Move{Face: FaceU, Turn: CCW}
	U2     = Move{Face: FaceU, Turn: Double}

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}
	DPrime = Move{Face: FaceD, Turn: CCW}
	D2     = Move{Face: FaceD, Turn: Double}

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}
	FPrime = Move{Face: FaceF, Turn: CCW}
	F2     = Move{Face: FaceF, Turn: Double}

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}
	BPrime = Move{Face: FaceB, Turn: CCW}
	B2     = Move{Face: FaceB, Turn: Double}
)

// SexyMove is R U R' U'. It has order 6.
var SexyMove = []Move{R, U, RPrime, UPrime}

// InverseSexyMove is U R U' R'.
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// TPerm swaps two corners and two edges, so it is a single odd permutation
// on each piece type.
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
