// Package heuristic composes the three pattern databases built by
// internal/pdb into the single admissible, consistent heuristic
// spec.md §4.4 specifies: the maximum of the three PDB lookups.
package heuristic

import (
	"github.com/cubesolve/cubesolve"
	"github.com/cubesolve/cubesolve/internal/pdb"
)

// Composite is the max-of-PDBs heuristic. It holds no mutable state and
// is safe to share across concurrent solves, though THE CORE itself is
// single-threaded by design.
type Composite struct {
	pdbs *pdb.Set
}

// New wraps a built pattern-database Set in a Composite heuristic.
func New(pdbs *pdb.Set) *Composite {
	return &Composite{pdbs: pdbs}
}

// H returns max(h_CO(s), h_EO(s), h_CP(s)). It is never negative and is 0
// for the solved state, satisfying spec.md's admissibility requirement.
func (c *Composite) H(s cube.State) int {
	h := c.pdbs.CO.H(s)
	if v := c.pdbs.EO.H(s); v > h {
		h = v
	}
	if v := c.pdbs.CP.H(s); v > h {
		h = v
	}
	return h
}
