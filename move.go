package cube

// Face identifies one of the six faces a move turns.
type Face int8

const (
	FaceU Face = iota
	FaceD
	FaceL
	FaceR
	FaceF
	FaceB
)

// String returns the standard single-letter notation for the face.
func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceL:
		return "L"
	case FaceR:
		return "R"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	default:
		return "?"
	}
}

// Turn is the direction and magnitude of a face turn.
type Turn int8

const (
	CW     Turn = 1  // quarter turn clockwise
	CCW    Turn = -1 // quarter turn counter-clockwise, equivalent to three CW turns
	Double Turn = 2  // half turn
)

// MoveID is the integer id (0..17) of one of the 18 face turns, in the
// canonical order U, U2, U', D, D2, D', L, L2, L', R, R2, R', F, F2, F', B,
// B2, B' — grouped by face, each face in CW, Double, CCW order. This is
// also the fixed move order used for tie-breaking in search (spec.md §4.5).
type MoveID int8

const (
	MoveU MoveID = iota
	MoveU2
	MoveUPrime
	MoveD
	MoveD2
	MoveDPrime
	MoveL
	MoveL2
	MoveLPrime
	MoveR
	MoveR2
	MoveRPrime
	MoveF
	MoveF2
	MoveFPrime
	MoveB
	MoveB2
	MoveBPrime
)

// NumMoves is the number of distinct face turns (18).
const NumMoves = 18

// AllMoves is every move id in canonical order, for iteration by search and
// pattern-database construction.
var AllMoves = [NumMoves]MoveID{
	MoveU, MoveU2, MoveUPrime,
	MoveD, MoveD2, MoveDPrime,
	MoveL, MoveL2, MoveLPrime,
	MoveR, MoveR2, MoveRPrime,
	MoveF, MoveF2, MoveFPrime,
	MoveB, MoveB2, MoveBPrime,
}

// Face returns the face this move turns.
func (m MoveID) Face() Face {
	return Face(int(m) / 3)
}

// Turn returns the direction and magnitude of this move.
func (m MoveID) Turn() Turn {
	switch int(m) % 3 {
	case 0:
		return CW
	case 1:
		return Double
	default:
		return CCW
	}
}

// Inverse returns the move that undoes m.
func (m MoveID) Inverse() MoveID {
	switch int(m) % 3 {
	case 0:
		return m + 2 // CW -> CCW
	case 2:
		return m - 2 // CCW -> CW
	default:
		return m // Double is self-inverse
	}
}

// String returns the standard notation for the move: "U", "U2", "U'", etc.
func (m MoveID) String() string {
	suffix := ""
	switch m.Turn() {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.Face().String() + suffix
}

// MoveByName looks up a move id by its standard notation ("U", "R'", "F2").
// It reports ok=false for any string that is not exactly one of the 18
// canonical move names. Package notation passes tokens through unchanged,
// so its parser is case-sensitive as well.
func MoveByName(name string) (id MoveID, ok bool) {
	for _, m := range AllMoves {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}
