// Package pdb builds the three pattern databases the search package
// consults for its heuristic: corner orientation, edge orientation, and
// corner permutation. Each is a dense byte-distance table indexed by a
// projection of a cube.State, built once at startup by reverse breadth-
// first search from the solved state and read-only afterward.
package pdb

import "github.com/cubesolve/cubesolve"

// Unset marks a table entry that reverse BFS has not yet reached. It is
// never returned by Get on a fully built table for the three databases
// here, since all three projected spaces are fully reachable, but it is
// the sentinel used during construction and by any future partial/
// truncated database.
const Unset = 255

// Table is a read-only, built pattern database: a distance array indexed
// by a projection, plus the size of its key space.
type Table struct {
	dist []uint8
	size int
}

// Get returns the minimum number of moves from any state whose projection
// is key to a state whose projection is the solved projection, where each
// of the 18 face turns (a double turn included) counts as one move.
// An out-of-range or unset key returns 0, which keeps the heuristic
// admissible (just weaker) as spec.md's truncation note allows.
func (t *Table) Get(key int) int {
	if key < 0 || key >= t.size || t.dist[key] == Unset {
		return 0
	}
	return int(t.dist[key])
}

// Size returns the number of keys in the table's projection space.
func (t *Table) Size() int { return t.size }

// Reached reports how many of the table's keys were discovered during
// construction, for coverage reporting.
func (t *Table) Reached() int {
	n := 0
	for _, v := range t.dist {
		if v != Unset {
			n++
		}
	}
	return n
}

// MaxDepth returns the largest distance value present in the table, i.e.
// the diameter of the projected state graph as actually explored.
func (t *Table) MaxDepth() int {
	max := 0
	for _, v := range t.dist {
		if v != Unset && int(v) > max {
			max = int(v)
		}
	}
	return max
}

// ProgressFunc is invoked synchronously after each BFS depth completes
// during build, for the optional progress reporting spec.md §4.3 permits
// as an external concern. depth is the BFS depth just finished; reached
// is the cumulative number of keys discovered so far; size is the total
// key space. A nil ProgressFunc disables reporting.
type ProgressFunc func(depth, reached, size int)

// buildReverseBFS runs the reverse breadth-first search spec.md §4.3
// describes: starting from the solved state, apply all 18 moves to each
// frontier state and record the first time each projection is seen. This
// operates on full cube.State values keyed by projection rather than
// reconstructing a representative via unrank — the "equivalent, simpler"
// alternative the spec's component design calls out, chosen because the
// three projected spaces here (2,187 / 2,048 / 40,320 keys) are small
// enough that the extra neighbor-expansion cost is immaterial.
func buildReverseBFS(size int, project func(cube.State) int, progress ProgressFunc) *Table {
	dist := make([]uint8, size)
	for i := range dist {
		dist[i] = Unset
	}

	solved := cube.Solved()
	root := project(solved)
	dist[root] = 0

	frontier := []cube.State{solved}
	reached := 1
	depth := 0

	for len(frontier) > 0 {
		var next []cube.State
		for _, s := range frontier {
			for _, m := range cube.AllMoves {
				s2 := cube.Apply(s, m)
				k := project(s2)
				if dist[k] != Unset {
					continue
				}
				dist[k] = uint8(depth + 1)
				reached++
				next = append(next, s2)
			}
		}
		frontier = next
		depth++
		if progress != nil && len(frontier) > 0 {
			progress(depth, reached, size)
		}
	}

	return &Table{dist: dist, size: size}
}
