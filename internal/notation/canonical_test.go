package notation

import (
	"testing"

	"github.com/cubesolve/cubesolve"
)

func TestParseFormatRoundTrip(t *testing.T) {
	for _, m := range cube.AllMoves {
		token := Format(m)
		got, err := Parse(token)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", token, err)
		}
		if got != m {
			t.Errorf("Parse(Format(%v)) = %v, want %v", m, got, m)
		}
	}
}

func TestParseInvalidToken(t *testing.T) {
	for _, bad := range []string{"", "X", "u", "R3", "F''", "2U"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) should have failed", bad)
		}
	}
}

func TestParseSequence(t *testing.T) {
	moves, err := ParseSequence("R U R' U'")
	if err != nil {
		t.Fatalf("ParseSequence returned error: %v", err)
	}
	want := []cube.MoveID{cube.MoveR, cube.MoveU, cube.MoveRPrime, cube.MoveUPrime}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i, m := range moves {
		if m != want[i] {
			t.Errorf("move %d = %v, want %v", i, m, want[i])
		}
	}
}

func TestParseSequenceRejectsFirstBadToken(t *testing.T) {
	if _, err := ParseSequence("R U Q F"); err == nil {
		t.Error("ParseSequence should fail on invalid token Q")
	}
}

func TestFormatSequence(t *testing.T) {
	moves := []cube.MoveID{cube.MoveR, cube.MoveU2, cube.MoveFPrime}
	got := FormatSequence(moves)
	want := "R U2 F'"
	if got != want {
		t.Errorf("FormatSequence = %q, want %q", got, want)
	}
}

func TestExpandQTM(t *testing.T) {
	cases := []struct {
		in   cube.MoveID
		want []cube.MoveID
	}{
		{cube.MoveU, []cube.MoveID{cube.MoveU}},
		{cube.MoveU2, []cube.MoveID{cube.MoveU, cube.MoveU}},
		{cube.MoveUPrime, []cube.MoveID{cube.MoveU, cube.MoveU, cube.MoveU}},
	}
	for _, c := range cases {
		got := ExpandQTM([]cube.MoveID{c.in})
		if len(got) != len(c.want) {
			t.Fatalf("ExpandQTM(%v) = %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("ExpandQTM(%v)[%d] = %v, want %v", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestExpandThenCompressRoundTrip(t *testing.T) {
	original := []cube.MoveID{cube.MoveR, cube.MoveU2, cube.MoveFPrime, cube.MoveD}
	expanded := ExpandQTM(original)
	compressed := CompressQTM(expanded)
	if len(compressed) != len(original) {
		t.Fatalf("compressed = %v, want length %d", compressed, len(original))
	}
	for i := range original {
		if compressed[i] != original[i] {
			t.Errorf("compressed[%d] = %v, want %v", i, compressed[i], original[i])
		}
	}
}

func TestCompressQTMCancelsFullRotation(t *testing.T) {
	quarters := []cube.MoveID{cube.MoveU, cube.MoveU, cube.MoveU, cube.MoveU}
	got := CompressQTM(quarters)
	if len(got) != 0 {
		t.Errorf("CompressQTM(four quarter turns) = %v, want empty", got)
	}
}

func TestCompressQTMDoesNotMergeAcrossOtherFaces(t *testing.T) {
	seq := []cube.MoveID{cube.MoveU, cube.MoveR, cube.MoveU}
	got := CompressQTM(seq)
	want := []cube.MoveID{cube.MoveU, cube.MoveR, cube.MoveU}
	if len(got) != len(want) {
		t.Fatalf("CompressQTM(%v) = %v, want %v", seq, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
