package verify

import (
	"testing"

	"github.com/cubesolve/cubesolve"
)

func TestSolutionAcceptsCorrectSolve(t *testing.T) {
	initial := cube.ApplySequence(cube.Solved(), []cube.MoveID{cube.MoveR, cube.MoveU})
	solution := []cube.MoveID{cube.MoveUPrime, cube.MoveRPrime}
	if !Solution(initial, solution) {
		t.Error("Solution should accept a correct solve")
	}
}

func TestSolutionRejectsIncorrectSolve(t *testing.T) {
	initial := cube.ApplySequence(cube.Solved(), []cube.MoveID{cube.MoveR, cube.MoveU})
	solution := []cube.MoveID{cube.MoveRPrime, cube.MoveUPrime}
	if Solution(initial, solution) {
		t.Error("Solution should reject an incorrect solve (R,U don't commute)")
	}
}

func TestSolutionAcceptsEmptyOnAlreadySolved(t *testing.T) {
	if !Solution(cube.Solved(), nil) {
		t.Error("Solution should accept an empty move list on an already-solved state")
	}
}
