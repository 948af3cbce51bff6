package cubeconv

// face identifies one of the six facelet-string faces, in the order the
// reference color-to-state converter (original_source/cube_converter.py)
// enumerates them: U, L, F, R, B, D.
type face int

const (
	faceU face = iota
	faceL
	faceF
	faceR
	faceB
	faceD
)

// facePos names a single facelet: a face plus its row/col within that
// face's 3x3 grid (row 0 is the top row as drawn unfolded).
type facePos struct {
	face face
	row  int
	col  int
}

// cornerDefs lists, for each of the 8 corner slots (in this module's
// fixed slot order: DFR, DRB, URF, UBR, UFL, ULB, DLF, DBL), the three
// facelets that belong to it. Ported from CORNER_DEFINITIONS.
var cornerDefs = [8][3]facePos{
	{{faceD, 0, 2}, {faceF, 2, 2}, {faceR, 2, 0}}, // DFR
	{{faceD, 2, 2}, {faceR, 2, 2}, {faceB, 2, 0}}, // DRB
	{{faceU, 2, 2}, {faceR, 0, 0}, {faceF, 0, 2}}, // URF
	{{faceU, 0, 2}, {faceB, 0, 0}, {faceR, 0, 2}}, // UBR
	{{faceU, 2, 0}, {faceF, 0, 0}, {faceL, 0, 2}}, // UFL
	{{faceU, 0, 0}, {faceL, 0, 0}, {faceB, 0, 2}}, // ULB
	{{faceD, 0, 0}, {faceL, 2, 2}, {faceF, 2, 0}}, // DLF
	{{faceD, 2, 0}, {faceB, 2, 2}, {faceL, 2, 0}}, // DBL
}

// edgeDefs lists, for each of the 12 edge slots (UF, UR, UB, UL, FL, FR,
// BR, BL, DF, DR, DB, DL), its two facelets. Ported from EDGE_DEFINITIONS.
var edgeDefs = [12][2]facePos{
	{{faceU, 2, 1}, {faceF, 0, 1}}, // UF
	{{faceU, 1, 2}, {faceR, 0, 1}}, // UR
	{{faceU, 0, 1}, {faceB, 0, 1}}, // UB
	{{faceU, 1, 0}, {faceL, 0, 1}}, // UL
	{{faceF, 1, 0}, {faceL, 1, 2}}, // FL
	{{faceF, 1, 2}, {faceR, 1, 0}}, // FR
	{{faceB, 1, 0}, {faceR, 1, 2}}, // BR
	{{faceB, 1, 2}, {faceL, 1, 0}}, // BL
	{{faceD, 0, 1}, {faceF, 2, 1}}, // DF
	{{faceD, 1, 2}, {faceR, 2, 1}}, // DR
	{{faceD, 2, 1}, {faceB, 2, 1}}, // DB
	{{faceD, 1, 0}, {faceL, 2, 1}}, // DL
}

// solvedCornerColors gives each corner cubie's three facelet colors in
// the same face order as cornerDefs, in the solved state.
var solvedCornerColors = [8][3]byte{
	{'Y', 'G', 'R'}, // DFR
	{'Y', 'R', 'B'}, // DRB
	{'W', 'R', 'G'}, // URF
	{'W', 'B', 'R'}, // UBR
	{'W', 'G', 'O'}, // UFL
	{'W', 'O', 'B'}, // ULB
	{'Y', 'O', 'G'}, // DLF
	{'Y', 'B', 'O'}, // DBL
}

// cornerReferenceColor is the color on each corner cubie's U/D-facing
// facelet in the solved state; cornerReferenceFace is which of that
// corner's three cornerDefs positions (U or D, always index 0) carries
// it for the corner *slot* (not cubie) being decoded.
var cornerReferenceColor = [8]byte{'Y', 'Y', 'W', 'W', 'W', 'W', 'Y', 'Y'}
var cornerReferenceFace = [8]face{faceD, faceD, faceU, faceU, faceU, faceU, faceD, faceD}

// solvedEdgeColors gives each edge cubie's two facelet colors, in
// edgeDefs' face order, in the solved state.
var solvedEdgeColors = [12][2]byte{
	{'W', 'G'}, // UF
	{'W', 'R'}, // UR
	{'W', 'B'}, // UB
	{'W', 'O'}, // UL
	{'G', 'O'}, // FL
	{'G', 'R'}, // FR
	{'B', 'R'}, // BR
	{'B', 'O'}, // BL
	{'Y', 'G'}, // DF
	{'Y', 'R'}, // DR
	{'Y', 'B'}, // DB
	{'Y', 'O'}, // DL
}

var edgeReferenceColor = [12]byte{'W', 'W', 'B', 'O', 'O', 'G', 'R', 'B', 'G', 'R', 'Y', 'Y'}
var edgePositionReferenceFace = [12]face{faceU, faceU, faceB, faceL, faceL, faceF, faceR, faceB, faceF, faceR, faceD, faceD}
