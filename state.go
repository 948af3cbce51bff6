package cube

import "hash/fnv"

// State is the cubie-level representation of a 3x3x3 Rubik's Cube: the
// permutation and orientation of the 8 corner cubies and 12 edge cubies.
// CornerPerm[i] = j means the corner cubie that started at slot j (in the
// solved state) now occupies slot i. CornerOrient[i] is that cubie's twist
// relative to its solved orientation, in {0,1,2}. EdgePerm and EdgeOrient
// are the analogous edge fields, with EdgeOrient in {0,1}.
//
// Corner slots, in index order: DFR, DRB, URF, UBR, UFL, ULB, DLF, DBL.
// Edge slots, in index order: UF, UR, UB, UL, FL, FR, BR, BL, DF, DR, DB, DL.
// This ordering is an arbitrary but fixed convention (spec.md's open
// question on slot numbering); every move table in movetable.go is written
// consistent with it.
//
// State values are immutable: every operation that "changes" a cube
// returns a new State rather than mutating the receiver.
type State struct {
	CornerPerm   [8]int8
	CornerOrient [8]int8
	EdgePerm     [12]int8
	EdgeOrient   [12]int8
}

// Solved returns the identity cube state: every cubie in its home slot with
// zero twist/flip.
func Solved() State {
	s := State{}
	for i := range s.CornerPerm {
		s.CornerPerm[i] = int8(i)
	}
	for i := range s.EdgePerm {
		s.EdgePerm[i] = int8(i)
	}
	return s
}

// Equals reports whether a and b describe the same cube state.
func (a State) Equals(b State) bool {
	return a == b
}

// IsSolved reports whether s is the solved state.
func (s State) IsSolved() bool {
	return s.Equals(Solved())
}

// Hash returns a deterministic hash of s, for callers that key a visited
// set by state. Neither IDA* nor IDDFS in package search keeps a visited
// set, so the search does not call it.
func (s State) Hash() uint64 {
	var buf [40]byte
	for i, v := range s.CornerPerm {
		buf[i] = byte(v)
	}
	for i, v := range s.CornerOrient {
		buf[8+i] = byte(v)
	}
	for i, v := range s.EdgePerm {
		buf[16+i] = byte(v)
	}
	for i, v := range s.EdgeOrient {
		buf[28+i] = byte(v)
	}
	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}

// IsValid reports whether s satisfies the physical constraints of a legal
// cube: CornerPerm and EdgePerm are permutations of their domains, the
// corner-orientation sum is 0 mod 3, the edge-orientation sum is 0 mod 2,
// and the permutation parities of corners and edges agree. The core assumes
// every State it is handed already satisfies this; IsValid exists for
// boundary collaborators (facelet decoders, user-supplied states) to check
// before calling into the core.
func (s State) IsValid() bool {
	if !isPermutation(s.CornerPerm[:], 8) || !isPermutation(s.EdgePerm[:], 12) {
		return false
	}

	var orientSum int
	for _, o := range s.CornerOrient {
		if o < 0 || o > 2 {
			return false
		}
		orientSum += int(o)
	}
	if orientSum%3 != 0 {
		return false
	}

	var flipSum int
	for _, o := range s.EdgeOrient {
		if o < 0 || o > 1 {
			return false
		}
		flipSum += int(o)
	}
	if flipSum%2 != 0 {
		return false
	}

	return permutationParity(s.CornerPerm[:]) == permutationParity(s.EdgePerm[:])
}

func isPermutation(perm []int8, n int) bool {
	if len(perm) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || int(v) >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// permutationParity returns 0 for an even permutation, 1 for odd.
func permutationParity(perm []int8) int {
	n := len(perm)
	visited := make([]bool, n)
	parity := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		cycleLen := 0
		for j := i; !visited[j]; j = int(perm[j]) {
			visited[j] = true
			cycleLen++
		}
		if cycleLen > 1 {
			parity = (parity + cycleLen - 1) % 2
		}
	}
	return parity
}
