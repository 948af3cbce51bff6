package pdb

import "github.com/cubesolve/cubesolve"

// CornerOrientationPDB is the pattern database over π_CO: the minimum
// number of face turns needed to zero out a given corner-orientation
// pattern, ignoring permutation and edges entirely.
type CornerOrientationPDB struct {
	*Table
}

// BuildCornerOrientationPDB runs the reverse BFS described in spec.md
// §4.3, projected through π_CO. progress may be nil.
func BuildCornerOrientationPDB(progress ProgressFunc) *CornerOrientationPDB {
	return &CornerOrientationPDB{Table: buildReverseBFS(SizeCO, ProjectCO, progress)}
}

// H returns dist[π_CO(s)].
func (p *CornerOrientationPDB) H(s cube.State) int {
	return p.Get(ProjectCO(s))
}
