package pdb

import "github.com/cubesolve/cubesolve"

// CornerPermutationPDB is the pattern database over π_CP: the minimum
// number of face turns needed to restore a given corner permutation,
// ignoring orientation and edges.
//
// Unlike the Python reference this projection's BFS is built on full
// cube.State values without restricting the corner permutation to the
// even subgroup, so it discovers all 8! = 40,320 keys rather than the
// 5,040-key shortfall spec.md's Open Question flags as a bug, not a
// feature (see TestCornerPermutationPDBReachesAllKeys).
type CornerPermutationPDB struct {
	*Table
}

// BuildCornerPermutationPDB runs the reverse BFS projected through π_CP.
// progress may be nil.
func BuildCornerPermutationPDB(progress ProgressFunc) *CornerPermutationPDB {
	return &CornerPermutationPDB{Table: buildReverseBFS(SizeCP, ProjectCP, progress)}
}

// H returns dist[π_CP(s)].
func (p *CornerPermutationPDB) H(s cube.State) int {
	return p.Get(ProjectCP(s))
}
