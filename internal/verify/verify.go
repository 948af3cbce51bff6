// Package verify re-applies a proposed solution to a scrambled state and
// checks that it reaches solved. It is an external collaborator — spec.md
// lists solution verification by replay out of THE CORE's scope — used by
// the CLI after a solve and by tests covering property 7 (search
// soundness). Grounded on original_source/utils.py's verify_solution().
package verify

import "github.com/cubesolve/cubesolve"

// Solution reports whether applying moves to initial reaches the solved
// state.
func Solution(initial cube.State, moves []cube.MoveID) bool {
	return cube.ApplySequence(initial, moves).IsSolved()
}
