package cube

// generator is one clockwise quarter turn of a face. The piece in slot i
// moves to slot cornerTarget[i] (edgeTarget[i]) and its orientation grows by
// cornerTwist[i] mod 3 (edgeFlip[i] mod 2) on the way.
type generator struct {
	cornerTarget [NumCorners]uint8
	cornerTwist  [NumCorners]uint8
	edgeTarget   [NumEdges]uint8
	edgeFlip     [NumEdges]uint8
}

// generators is indexed by Face. Quarter turns are clockwise as seen from
// outside the face.
//
// Corner twist counts how far the piece's U/D sticker travels clockwise
// around the corner; a corner leaving the U layer twists the opposite way
// to one entering it, so every four-cycle sums to 0 mod 3. Edges are only
// flipped by F and B.
var generators = [NumFaces]generator{
	U: {
		cornerTarget: [NumCorners]uint8{UFL, ULB, UBR, URF, DFR, DLF, DBL, DRB},
		edgeTarget:   [NumEdges]uint8{UF, UL, UB, UR, DR, DF, DL, DB, FR, FL, BL, BR},
	},
	D: {
		cornerTarget: [NumCorners]uint8{URF, UFL, ULB, UBR, DRB, DFR, DLF, DBL},
		edgeTarget:   [NumEdges]uint8{UR, UF, UL, UB, DB, DR, DF, DL, FR, FL, BL, BR},
	},
	F: {
		cornerTarget: [NumCorners]uint8{DFR, URF, ULB, UBR, DLF, UFL, DBL, DRB},
		cornerTwist:  [NumCorners]uint8{2, 1, 0, 0, 1, 2, 0, 0},
		edgeTarget:   [NumEdges]uint8{UR, FR, UL, UB, DR, FL, DL, DB, DF, UF, BL, BR},
		edgeFlip:     [NumEdges]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	B: {
		cornerTarget: [NumCorners]uint8{URF, UFL, DBL, ULB, DFR, DLF, DRB, UBR},
		cornerTwist:  [NumCorners]uint8{0, 0, 2, 1, 0, 0, 1, 2},
		edgeTarget:   [NumEdges]uint8{UR, UF, UL, BL, DR, DF, DL, BR, FR, FL, DB, UB},
		edgeFlip:     [NumEdges]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
	R: {
		cornerTarget: [NumCorners]uint8{UBR, UFL, ULB, DRB, URF, DLF, DBL, DFR},
		cornerTwist:  [NumCorners]uint8{1, 0, 0, 2, 2, 0, 0, 1},
		edgeTarget:   [NumEdges]uint8{BR, UF, UL, UB, FR, DF, DL, DB, UR, FL, BL, DR},
	},
	L: {
		cornerTarget: [NumCorners]uint8{URF, DLF, UFL, UBR, DFR, DBL, ULB, DRB},
		cornerTwist:  [NumCorners]uint8{0, 2, 1, 0, 0, 1, 2, 0},
		edgeTarget:   [NumEdges]uint8{UR, UF, FL, UB, DR, DF, BL, DB, FR, DL, UL, BR},
	},
}
