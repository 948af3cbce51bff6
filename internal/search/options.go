package search

import "github.com/cubesolve/cubesolve"

// Option configures a Solve call.
type Option func(*options)

type options struct {
	maxDepth      int
	maxIterations int
	moveOrder     [cube.NumMoves]cube.MoveID
}

func defaultOptions() *options {
	return &options{
		maxDepth:      20,
		maxIterations: 50,
		moveOrder:     cube.AllMoves,
	}
}

// WithMaxDepth sets IDDFS's depth bound. It has no effect on IDA*, whose
// depth is governed by the growing f-value threshold instead.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithMaxIterations caps the number of outer threshold-bump rounds before
// Solve reports StatusAborted.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithMoveOrder overrides the canonical child-expansion order. Move order
// affects which equal-cost solution is returned, never correctness or
// admissibility, per spec.md §4.5.
func WithMoveOrder(order [cube.NumMoves]cube.MoveID) Option {
	return func(o *options) {
		o.moveOrder = order
	}
}
