// Package notation parses and prints cube move strings ("U", "R'", "F2",
// ...) and provides the quarter-turn-metric expansion and compression
// spec.md §6 requires: a double or inverse move token can be expanded into
// 1-3 elementary clockwise quarter turns, and a run of same-face quarter
// turns in a solution can be collapsed back into a single token.
package notation

import (
	"fmt"
	"strings"

	"github.com/cubesolve/cubesolve"
)

// Parse parses a single move token ("U", "R'", "F2") into a MoveID. It is
// case-sensitive, as spec.md §6 requires.
func Parse(token string) (cube.MoveID, error) {
	id, ok := cube.MoveByName(token)
	if !ok {
		return 0, fmt.Errorf("%w: %q", cube.ErrInvalidMove, token)
	}
	return id, nil
}

// ParseSequence parses a whitespace-separated sequence of move tokens. It
// fails on the first invalid token, naming it in the returned error.
func ParseSequence(s string) ([]cube.MoveID, error) {
	fields := strings.Fields(s)
	moves := make([]cube.MoveID, 0, len(fields))
	for _, f := range fields {
		m, err := Parse(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Format prints a single move in standard notation.
func Format(m cube.MoveID) string {
	return m.String()
}

// FormatSequence prints a move list as a whitespace-separated string.
func FormatSequence(moves []cube.MoveID) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// quarterTurnOf returns the clockwise quarter-turn primitive for m's face.
func quarterTurnOf(m cube.MoveID) cube.MoveID {
	return cube.MoveID(int(m.Face()) * 3)
}

// ExpandQTM expands a move list into elementary clockwise quarter turns: a
// quarter turn stays as itself, a double expands to two quarter turns on
// that face, and an inverse expands to three. This is the quarter-turn
// cost of a move list, and the mechanism spec.md §3 describes for deriving
// M' and M2 as compositions of the clockwise primitive M.
func ExpandQTM(moves []cube.MoveID) []cube.MoveID {
	out := make([]cube.MoveID, 0, len(moves)*2)
	for _, m := range moves {
		q := quarterTurnOf(m)
		switch m.Turn() {
		case cube.CW:
			out = append(out, q)
		case cube.Double:
			out = append(out, q, q)
		case cube.CCW:
			out = append(out, q, q, q)
		}
	}
	return out
}

// CompressQTM collapses runs of same-face moves into a single token: two
// consecutive quarter turns on a face become a double, three become the
// inverse, four cancel entirely. This is the compression spec.md §6
// requires of printed solutions ("collapsing any three identical
// consecutive quarter turns into X' and two into X2").
func CompressQTM(moves []cube.MoveID) []cube.MoveID {
	out := make([]cube.MoveID, 0, len(moves))
	i := 0
	for i < len(moves) {
		face := moves[i].Face()
		total := 0 // net quarter turns, CW positive, mod 4
		j := i
		for j < len(moves) && moves[j].Face() == face {
			total += quarterCount(moves[j])
			j++
		}
		switch ((total % 4) + 4) % 4 {
		case 1:
			out = append(out, cube.MoveID(int(face)*3))
		case 2:
			out = append(out, cube.MoveID(int(face)*3+1))
		case 3:
			out = append(out, cube.MoveID(int(face)*3+2))
		case 0:
			// a full rotation on this face cancels out
		}
		i = j
	}
	return out
}

func quarterCount(m cube.MoveID) int {
	switch m.Turn() {
	case cube.CW:
		return 1
	case cube.Double:
		return 2
	default: // CCW
		return 3
	}
}
