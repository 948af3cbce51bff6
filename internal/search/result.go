package search

import "github.com/cubesolve/cubesolve"

// Algorithm selects the outer search strategy.
type Algorithm int

const (
	// IDAStar is iterative-deepening A*, driven by the PDB-composite
	// heuristic.
	IDAStar Algorithm = iota
	// IDDFS is iterative-deepening depth-first search with h ≡ 0,
	// provided as a heuristic-free correctness baseline.
	IDDFS
)

func (a Algorithm) String() string {
	switch a {
	case IDAStar:
		return "IDAStar"
	case IDDFS:
		return "IDDFS"
	default:
		return "Unknown"
	}
}

// Status is the terminal state of a Solve call, per spec.md §4.5's state
// machine (INIT -> EXPANDING -> {FOUND, EXHAUSTED, ABORTED}).
type Status int

const (
	// StatusFound means a solution was located within budget.
	StatusFound Status = iota
	// StatusAborted means the iteration (IDA*) or depth (IDDFS) budget
	// was exceeded with no solution found. This is reported as data, not
	// raised as an error: the caller may simply retry with a larger
	// budget.
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "Found"
	case StatusAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// Stats carries the bookkeeping spec.md §4.5 requires be emitted on
// return: expanded node count, iteration count, and wall time.
type Stats struct {
	ExpandedNodes int
	Iterations    int
	ElapsedMs     int64
}

// Result is the outcome of a Solve call.
type Result struct {
	Status Status
	Moves  []cube.MoveID
	Stats  Stats
}
