// Package search implements IDA* and IDDFS over cube.State, driven by an
// admissible heuristic, with move-axis pruning and a fixed canonical
// child expansion order, per spec.md §4.5.
package search

import (
	"math"
	"time"

	"github.com/cubesolve/cubesolve"
	"github.com/cubesolve/cubesolve/internal/heuristic"
)

const infThreshold = math.MaxInt32

// heuristicFunc is the shape both the PDB composite heuristic and IDDFS's
// always-zero heuristic satisfy, so the recursive search below needs only
// one implementation.
type heuristicFunc func(cube.State) int

// Solve runs algorithm against state and returns the move sequence that
// reaches the solved state, or an Aborted/error result per spec.md §6/§7.
// h is consulted only by IDAStar; it may be nil when algorithm is IDDFS.
func Solve(state cube.State, algorithm Algorithm, h *heuristic.Composite, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	switch algorithm {
	case IDAStar:
		return solveIDAStar(state, h.H, o)
	case IDDFS:
		return solveIDDFS(state, o)
	default:
		return solveIDAStar(state, h.H, o)
	}
}

func solveIDAStar(state cube.State, h heuristicFunc, o *options) (Result, error) {
	start := time.Now()
	stats := &Stats{}

	threshold := h(state)

	for iter := 0; iter < o.maxIterations; iter++ {
		stats.Iterations++
		path := make([]cube.MoveID, 0, o.maxDepth)
		found, nextThreshold := idaSearch(state, 0, threshold, h, stats, o.moveOrder, false, 0, &path)
		if found {
			stats.ElapsedMs = elapsedMs(start)
			return Result{Status: StatusFound, Moves: path, Stats: *stats}, nil
		}
		if nextThreshold >= infThreshold {
			stats.ElapsedMs = elapsedMs(start)
			return Result{Status: StatusAborted, Stats: *stats}, ErrSearchExhausted
		}
		threshold = nextThreshold
	}

	stats.ElapsedMs = elapsedMs(start)
	return Result{Status: StatusAborted, Stats: *stats}, nil
}

// idaSearch is the bounded depth-first search run at each IDA* threshold.
// hasLast is false at the root, where spec.md §4.5 forbids no move.
//
// On a found solution, the caller's path slice holds the winning move
// sequence on return. Each recursive level appends its own candidate move
// before descending and truncates it back off afterward, so the slice is
// always popped in depth-first order and is safe to reuse across sibling
// calls at the same level.
func idaSearch(state cube.State, g, threshold int, h heuristicFunc, stats *Stats, moveOrder [cube.NumMoves]cube.MoveID, hasLast bool, lastFace cube.Face, path *[]cube.MoveID) (found bool, nextThreshold int) {
	stats.ExpandedNodes++

	f := g + h(state)
	if f > threshold {
		return false, f
	}
	if state.IsSolved() {
		return true, threshold
	}

	minOverflow := infThreshold
	for _, m := range moveOrder {
		if hasLast && m.Face() == lastFace {
			continue
		}

		next := cube.Apply(state, m)
		*path = append(*path, m)

		found, nt := idaSearch(next, g+1, threshold, h, stats, moveOrder, true, m.Face(), path)
		if found {
			return true, threshold
		}

		*path = (*path)[:len(*path)-1]
		if nt < minOverflow {
			minOverflow = nt
		}
	}

	return false, minOverflow
}

func solveIDDFS(state cube.State, o *options) (Result, error) {
	start := time.Now()
	stats := &Stats{}
	zero := func(cube.State) int { return 0 }

	if state.IsSolved() {
		stats.ElapsedMs = elapsedMs(start)
		return Result{Status: StatusFound, Moves: nil, Stats: *stats}, nil
	}

	for depth := 0; depth <= o.maxDepth; depth++ {
		stats.Iterations++
		path := make([]cube.MoveID, 0, o.maxDepth)
		found, _ := idaSearch(state, 0, depth, zero, stats, o.moveOrder, false, 0, &path)
		if found {
			stats.ElapsedMs = elapsedMs(start)
			return Result{Status: StatusFound, Moves: path, Stats: *stats}, nil
		}
	}

	stats.ElapsedMs = elapsedMs(start)
	return Result{Status: StatusAborted, Stats: *stats}, nil
}

func elapsedMs(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
