// Package cubeconv converts between a 54-character facelet color string
// and a cube.State. It is the external "color-to-state" collaborator
// spec.md §3 describes: a boundary converter that validates its output
// with cube.State.IsValid before handing a state to THE CORE, and is
// never imported by cube, internal/pdb, internal/heuristic, or
// internal/search. Ported from original_source/cube_converter.py's
// facelet-color matching and reference-facet orientation rules.
package cubeconv

import (
	"fmt"

	"github.com/cubesolve/cubesolve"
)

// faceOrder is the order the 54-character facelet string lays out its
// six 9-character faces: U, L, F, R, B, D.
var faceOrder = [6]face{faceU, faceL, faceF, faceR, faceB, faceD}

// FromFacelets parses a 54-character facelet string (nine characters per
// face, row-major, faces ordered U L F R B D) into a cube.State. It
// returns cube.ErrInvalidState if the string is the wrong length, uses
// colors that don't form a legal cubie set, or decodes to a state that
// violates cube.State.IsValid.
func FromFacelets(facelets string) (cube.State, error) {
	if len(facelets) != 54 {
		return cube.State{}, fmt.Errorf("%w: facelet string has length %d, want 54", cube.ErrInvalidState, len(facelets))
	}

	var grid [6][3][3]byte
	for i, f := range faceOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				grid[f][row][col] = facelets[i*9+row*3+col]
			}
		}
	}

	var s cube.State

	for pos := 0; pos < 8; pos++ {
		var colors [3]byte
		var faces [3]face
		for i, fp := range cornerDefs[pos] {
			colors[i] = grid[fp.face][fp.row][fp.col]
			faces[i] = fp.face
		}
		cubie, orient, ok := findCorner(colors, faces, pos)
		if !ok {
			return cube.State{}, fmt.Errorf("%w: corner slot %d has no matching cubie for colors %q", cube.ErrInvalidState, pos, colors)
		}
		s.CornerPerm[pos] = int8(cubie)
		s.CornerOrient[pos] = int8(orient)
	}

	for pos := 0; pos < 12; pos++ {
		var colors [2]byte
		var faces [2]face
		for i, fp := range edgeDefs[pos] {
			colors[i] = grid[fp.face][fp.row][fp.col]
			faces[i] = fp.face
		}
		cubie, orient, ok := findEdge(colors, faces, pos)
		if !ok {
			return cube.State{}, fmt.Errorf("%w: edge slot %d has no matching cubie for colors %q", cube.ErrInvalidState, pos, colors)
		}
		s.EdgePerm[pos] = int8(cubie)
		s.EdgeOrient[pos] = int8(orient)
	}

	if !s.IsValid() {
		return cube.State{}, fmt.Errorf("%w: facelet string decodes to an illegal cube state", cube.ErrInvalidState)
	}
	return s, nil
}

// findCorner matches a corner slot's three observed colors against the
// eight corner cubies' solved colors (as an unordered set) and, on a
// match, derives the orientation from where the cubie's U/D reference
// facet now sits relative to where it sits in the solved state.
func findCorner(colors [3]byte, faces [3]face, slot int) (cubie, orient int, ok bool) {
	expectedRefIdx := indexOfFace(faces[:], cornerReferenceFace[slot])
	for c := 0; c < 8; c++ {
		solved := solvedCornerColors[c]
		if !sameColorSet(colors[:], solved[:]) {
			continue
		}
		refIdx := indexOfColor(colors[:], cornerReferenceColor[c])
		if refIdx < 0 || expectedRefIdx < 0 {
			continue
		}
		orientation := ((refIdx - expectedRefIdx) % 3 + 3) % 3
		if rotatedCornerMatches(colors, orientation, solved) {
			return c, orientation, true
		}
		for o := 0; o < 3; o++ {
			if rotatedCornerMatches(colors, o, solved) {
				return c, o, true
			}
		}
	}
	return 0, 0, false
}

// rotatedCornerMatches reports whether colors is solved rotated by
// orient — i.e. colors[i] == solved[(i+orient)%3] for every facelet i —
// matching the rotation ToFacelets applies in the other direction when
// generating facelets from a CornerOrient value.
func rotatedCornerMatches(colors [3]byte, orient int, solved [3]byte) bool {
	for i := 0; i < 3; i++ {
		if colors[i] != solved[(i+orient)%3] {
			return false
		}
	}
	return true
}

func findEdge(colors [2]byte, faces [2]face, slot int) (cubie, orient int, ok bool) {
	for c := 0; c < 12; c++ {
		solved := solvedEdgeColors[c]
		if !sameColorSet(colors[:], solved[:]) {
			continue
		}
		if colors == solved {
			return c, 0, true
		}
		if colors == [2]byte{solved[1], solved[0]} {
			return c, 1, true
		}
	}
	return 0, 0, false
}

func indexOfFace(faces []face, want face) int {
	for i, f := range faces {
		if f == want {
			return i
		}
	}
	return -1
}

func indexOfColor(colors []byte, want byte) int {
	for i, c := range colors {
		if c == want {
			return i
		}
	}
	return -1
}

func sameColorSet(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, ca := range a {
		found := false
		for i, cb := range b {
			if !used[i] && ca == cb {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ToFacelets renders a cube.State back into the 54-character facelet
// string FromFacelets parses, the inverse conversion needed to round-trip
// test the boundary and to let the CLI print a state as a colored net.
func ToFacelets(s cube.State) string {
	var grid [6][3][3]byte

	centerColors := [6]byte{faceU: 'W', faceL: 'O', faceF: 'G', faceR: 'R', faceB: 'B', faceD: 'Y'}
	for f := range grid {
		grid[f][1][1] = centerColors[f]
	}

	for pos := 0; pos < 8; pos++ {
		cubie := int(s.CornerPerm[pos])
		orient := int(s.CornerOrient[pos])
		solved := solvedCornerColors[cubie]
		for i, fp := range cornerDefs[pos] {
			grid[fp.face][fp.row][fp.col] = solved[(i+orient)%3]
		}
	}
	for pos := 0; pos < 12; pos++ {
		cubie := int(s.EdgePerm[pos])
		orient := int(s.EdgeOrient[pos])
		solved := solvedEdgeColors[cubie]
		for i, fp := range edgeDefs[pos] {
			if orient == 0 {
				grid[fp.face][fp.row][fp.col] = solved[i]
			} else {
				grid[fp.face][fp.row][fp.col] = solved[1-i]
			}
		}
	}

	buf := make([]byte, 0, 54)
	for _, f := range faceOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				buf = append(buf, grid[f][row][col])
			}
		}
	}
	return string(buf)
}
