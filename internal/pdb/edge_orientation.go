package pdb

import "github.com/cubesolve/cubesolve"

// EdgeOrientationPDB is the pattern database over π_EO: the minimum
// number of face turns needed to zero out a given edge-flip pattern.
type EdgeOrientationPDB struct {
	*Table
}

// BuildEdgeOrientationPDB runs the reverse BFS projected through π_EO.
// progress may be nil.
func BuildEdgeOrientationPDB(progress ProgressFunc) *EdgeOrientationPDB {
	return &EdgeOrientationPDB{Table: buildReverseBFS(SizeEO, ProjectEO, progress)}
}

// H returns dist[π_EO(s)].
func (p *EdgeOrientationPDB) H(s cube.State) int {
	return p.Get(ProjectEO(s))
}
