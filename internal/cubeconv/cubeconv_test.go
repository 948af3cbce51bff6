package cubeconv

import (
	"errors"
	"testing"

	"github.com/cubesolve/cubesolve"
)

func TestToFaceletsSolvedState(t *testing.T) {
	got := ToFacelets(cube.Solved())
	if len(got) != 54 {
		t.Fatalf("len(got) = %d, want 54", len(got))
	}
	for face := 0; face < 6; face++ {
		center := got[face*9+4]
		for i := 0; i < 9; i++ {
			if c := got[face*9+i]; c != center {
				t.Errorf("face %d facelet %d = %q, want uniform %q on a solved cube", face, i, c, center)
			}
		}
	}
}

func TestRoundTripSolvedState(t *testing.T) {
	s := cube.Solved()
	got, err := FromFacelets(ToFacelets(s))
	if err != nil {
		t.Fatalf("FromFacelets returned error on a solved round-trip: %v", err)
	}
	if got != s {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, s)
	}
}

func TestRoundTripScrambledStates(t *testing.T) {
	scrambles := [][]cube.MoveID{
		{cube.MoveR, cube.MoveU, cube.MoveRPrime, cube.MoveUPrime},
		{cube.MoveF, cube.MoveR2, cube.MoveBPrime, cube.MoveL, cube.MoveD2},
		{cube.MoveU, cube.MoveU2, cube.MoveD, cube.MoveL, cube.MoveF, cube.MoveB, cube.MoveR2},
		{cube.MoveFPrime, cube.MoveBPrime},
	}
	for _, moves := range scrambles {
		want := cube.ApplySequence(cube.Solved(), moves)
		facelets := ToFacelets(want)
		got, err := FromFacelets(facelets)
		if err != nil {
			t.Fatalf("FromFacelets(%q) returned error: %v", facelets, err)
		}
		if got != want {
			t.Errorf("round trip for moves %v: got %+v, want %+v", moves, got, want)
		}
	}
}

func TestFromFaceletsRejectsWrongLength(t *testing.T) {
	_, err := FromFacelets("WWW")
	if !errors.Is(err, cube.ErrInvalidState) {
		t.Errorf("err = %v, want wrapped ErrInvalidState", err)
	}
}

func TestFromFaceletsRejectsUnmatchedColors(t *testing.T) {
	facelets := ToFacelets(cube.Solved())
	bad := []byte(facelets)
	bad[0] = 'Z'
	_, err := FromFacelets(string(bad))
	if !errors.Is(err, cube.ErrInvalidState) {
		t.Errorf("err = %v, want wrapped ErrInvalidState", err)
	}
}

func TestRotatedCornerMatchesAgreesWithToFacelets(t *testing.T) {
	solved := solvedCornerColors[2]
	for orient := 0; orient < 3; orient++ {
		var colors [3]byte
		for i := 0; i < 3; i++ {
			colors[i] = solved[(i+orient)%3]
		}
		if !rotatedCornerMatches(colors, orient, solved) {
			t.Errorf("rotatedCornerMatches disagreed with the encode-side rotation at orient %d", orient)
		}
		for wrong := 0; wrong < 3; wrong++ {
			if wrong == orient {
				continue
			}
			if rotatedCornerMatches(colors, wrong, solved) {
				t.Errorf("rotatedCornerMatches matched the wrong orientation %d (actual %d)", wrong, orient)
			}
		}
	}
}
