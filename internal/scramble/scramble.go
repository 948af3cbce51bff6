// Package scramble generates pseudo-random move sequences. It is an
// external collaborator to THE CORE, used only as a test fixture and by
// the CLI's scramble helper — spec.md explicitly keeps random scramble
// generation out of THE CORE's packages (cube, internal/pdb,
// internal/heuristic, internal/search never import it).
package scramble

import (
	"math/rand"

	"github.com/cubesolve/cubesolve"
)

// Generate applies n random quarter turns to the solved state, excluding
// any move on the same face as the immediately preceding one (so a
// generated scramble never contains a trivially cancelling pair), and
// returns the resulting state along with the move sequence that produced
// it. Grounded on original_source/utils.py's scramble(); unlike the
// reference, which excludes only the literal immediate inverse, this
// excludes the whole face, matching this module's move-pruning rule in
// internal/search so a scramble can never be trivially shortened by
// undoing its own tail.
func Generate(n int, seed int64) (cube.State, []cube.MoveID) {
	rng := rand.New(rand.NewSource(seed))

	state := cube.Solved()
	moves := make([]cube.MoveID, 0, n)

	hasLast := false
	var lastFace cube.Face

	for i := 0; i < n; i++ {
		var m cube.MoveID
		for {
			m = cube.AllMoves[rng.Intn(cube.NumMoves)]
			if !hasLast || m.Face() != lastFace {
				break
			}
		}
		state = cube.Apply(state, m)
		moves = append(moves, m)
		hasLast = true
		lastFace = m.Face()
	}

	return state, moves
}
