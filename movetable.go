package cube

// moveDelta holds one move's raw (σ, δ) pair for corners and edges, in the
// notation of spec.md §4.2: CornerPerm is σ_c, CornerTwist is δ_c,
// EdgePerm is σ_e, EdgeFlip is δ_e. The permutation inverses are
// precomputed once at init time so Apply is a fixed number of array reads.
type moveDelta struct {
	cornerPerm    [8]int8
	cornerPermInv [8]int8
	cornerTwist   [8]int8
	edgePerm      [12]int8
	edgePermInv   [12]int8
	edgeFlip      [12]int8
}

// rawMoveDelta is the table-building form: permutations without
// precomputed inverses. Values are ported directly from the reference
// implementation's create_move_tables(), against the slot ordering
// documented on State.
type rawMoveDelta struct {
	cornerPerm  [8]int8
	cornerTwist [8]int8
	edgePerm    [12]int8
	edgeFlip    [12]int8
}

var rawMoves = [NumMoves]rawMoveDelta{
	MoveU: {
		cornerPerm: [8]int8{0, 1, 4, 2, 5, 3, 6, 7},
		edgePerm:   [12]int8{3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11},
	},
	MoveU2: {
		cornerPerm: [8]int8{0, 1, 5, 4, 3, 2, 6, 7},
		edgePerm:   [12]int8{2, 3, 0, 1, 4, 5, 6, 7, 8, 9, 10, 11},
	},
	MoveUPrime: {
		cornerPerm: [8]int8{0, 1, 3, 5, 2, 4, 6, 7},
		edgePerm:   [12]int8{1, 2, 3, 0, 4, 5, 6, 7, 8, 9, 10, 11},
	},
	MoveD: {
		cornerPerm: [8]int8{1, 7, 2, 3, 4, 5, 0, 6},
		edgePerm:   [12]int8{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 8},
	},
	MoveD2: {
		cornerPerm: [8]int8{7, 6, 2, 3, 4, 5, 1, 0},
		edgePerm:   [12]int8{0, 1, 2, 3, 4, 5, 6, 7, 10, 11, 8, 9},
	},
	MoveDPrime: {
		cornerPerm: [8]int8{6, 0, 2, 3, 4, 5, 7, 1},
		edgePerm:   [12]int8{0, 1, 2, 3, 4, 5, 6, 7, 11, 8, 9, 10},
	},
	MoveL: {
		cornerPerm:  [8]int8{0, 1, 2, 3, 6, 4, 7, 5},
		cornerTwist: [8]int8{0, 0, 0, 0, 2, 1, 1, 2},
		edgePerm:    [12]int8{0, 1, 2, 4, 11, 5, 6, 3, 8, 9, 10, 7},
	},
	MoveL2: {
		cornerPerm: [8]int8{0, 1, 2, 3, 7, 6, 5, 4},
		edgePerm:   [12]int8{0, 1, 2, 11, 7, 5, 6, 4, 8, 9, 10, 3},
	},
	MoveLPrime: {
		cornerPerm:  [8]int8{0, 1, 2, 3, 5, 7, 4, 6},
		cornerTwist: [8]int8{0, 0, 0, 0, 2, 1, 1, 2},
		edgePerm:    [12]int8{0, 1, 2, 7, 3, 5, 6, 11, 8, 9, 10, 4},
	},
	MoveR: {
		cornerPerm:  [8]int8{2, 0, 3, 1, 4, 5, 6, 7},
		cornerTwist: [8]int8{2, 1, 1, 2, 0, 0, 0, 0},
		edgePerm:    [12]int8{0, 6, 2, 3, 4, 1, 9, 7, 8, 5, 10, 11},
	},
	MoveR2: {
		cornerPerm: [8]int8{3, 2, 1, 0, 4, 5, 6, 7},
		edgePerm:   [12]int8{0, 9, 2, 3, 4, 6, 5, 7, 8, 1, 10, 11},
	},
	MoveRPrime: {
		cornerPerm:  [8]int8{1, 3, 0, 2, 4, 5, 6, 7},
		cornerTwist: [8]int8{2, 1, 1, 2, 0, 0, 0, 0},
		edgePerm:    [12]int8{0, 5, 2, 3, 4, 9, 1, 7, 8, 6, 10, 11},
	},
	MoveF: {
		cornerPerm:  [8]int8{6, 1, 0, 3, 2, 5, 4, 7},
		cornerTwist: [8]int8{1, 0, 2, 0, 1, 0, 2, 0},
		edgePerm:    [12]int8{5, 1, 2, 3, 0, 8, 6, 7, 4, 9, 10, 11},
		edgeFlip:    [12]int8{1, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0, 0},
	},
	MoveF2: {
		cornerPerm: [8]int8{4, 1, 6, 3, 0, 5, 2, 7},
		edgePerm:   [12]int8{8, 1, 2, 3, 5, 4, 6, 7, 0, 9, 10, 11},
	},
	MoveFPrime: {
		cornerPerm:  [8]int8{2, 1, 4, 3, 6, 5, 0, 7},
		cornerTwist: [8]int8{1, 0, 2, 0, 1, 0, 2, 0},
		edgePerm:    [12]int8{4, 1, 2, 3, 8, 0, 6, 7, 5, 9, 10, 11},
		edgeFlip:    [12]int8{1, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0, 0},
	},
	MoveB: {
		cornerPerm:  [8]int8{0, 3, 2, 5, 4, 7, 6, 1},
		cornerTwist: [8]int8{0, 2, 0, 1, 0, 2, 0, 1},
		edgePerm:    [12]int8{0, 1, 7, 3, 4, 5, 2, 10, 8, 9, 6, 11},
		edgeFlip:    [12]int8{0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 0},
	},
	MoveB2: {
		cornerPerm: [8]int8{0, 5, 2, 7, 4, 1, 6, 3},
		edgePerm:   [12]int8{0, 1, 10, 3, 4, 5, 7, 6, 8, 9, 2, 11},
	},
	MoveBPrime: {
		cornerPerm:  [8]int8{0, 7, 2, 1, 4, 3, 6, 5},
		cornerTwist: [8]int8{0, 2, 0, 1, 0, 2, 0, 1},
		edgePerm:    [12]int8{0, 1, 6, 3, 4, 5, 10, 2, 8, 9, 7, 11},
		edgeFlip:    [12]int8{0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 0},
	},
}

var moveTable [NumMoves]moveDelta

func init() {
	for id, raw := range rawMoves {
		var d moveDelta
		d.cornerPerm = raw.cornerPerm
		d.cornerTwist = raw.cornerTwist
		d.edgePerm = raw.edgePerm
		d.edgeFlip = raw.edgeFlip
		for i, j := range d.cornerPerm {
			d.cornerPermInv[j] = int8(i)
		}
		for i, j := range d.edgePerm {
			d.edgePermInv[j] = int8(i)
		}
		moveTable[id] = d
	}
}

// Apply returns the state that results from turning s by move m. It is a
// pure function: s is never mutated. Per spec.md §4.2, letting Pinv be the
// permutation inverse of the move's corner delta (precomputed above):
//
//	s'.CornerPerm[i]   = s.CornerPerm[Pinv[i]]
//	s'.CornerOrient[i] = (s.CornerOrient[Pinv[i]] + T[i]) mod 3
//
// and analogously for edges. Apply cannot fail: every legal State turned by
// any of the 18 moves yields another legal State (tested by
// TestApplyPreservesInvariants).
func Apply(s State, m MoveID) State {
	d := &moveTable[m]
	var out State

	for i := 0; i < 8; i++ {
		j := d.cornerPermInv[i]
		out.CornerPerm[i] = s.CornerPerm[j]
		out.CornerOrient[i] = (s.CornerOrient[j] + d.cornerTwist[i]) % 3
	}
	for i := 0; i < 12; i++ {
		j := d.edgePermInv[i]
		out.EdgePerm[i] = s.EdgePerm[j]
		out.EdgeOrient[i] = (s.EdgeOrient[j] + d.edgeFlip[i]) % 2
	}

	return out
}

// ApplySequence applies a sequence of moves in order, returning the final
// state.
func ApplySequence(s State, moves []MoveID) State {
	for _, m := range moves {
		s = Apply(s, m)
	}
	return s
}
