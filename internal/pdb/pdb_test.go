package pdb

import (
	"testing"

	"github.com/cubesolve/cubesolve"
)

func TestSolvedStateIsZeroDistance(t *testing.T) {
	co := BuildCornerOrientationPDB(nil)
	eo := BuildEdgeOrientationPDB(nil)
	cp := BuildCornerPermutationPDB(nil)

	solved := cube.Solved()
	if got := co.H(solved); got != 0 {
		t.Errorf("CO.H(solved) = %d, want 0", got)
	}
	if got := eo.H(solved); got != 0 {
		t.Errorf("EO.H(solved) = %d, want 0", got)
	}
	if got := cp.H(solved); got != 0 {
		t.Errorf("CP.H(solved) = %d, want 0", got)
	}
}

func TestCornerOrientationPDBReachesAllKeys(t *testing.T) {
	co := BuildCornerOrientationPDB(nil)
	if co.Reached() != SizeCO {
		t.Errorf("CO PDB reached %d/%d keys, want all", co.Reached(), SizeCO)
	}
}

func TestEdgeOrientationPDBReachesAllKeys(t *testing.T) {
	eo := BuildEdgeOrientationPDB(nil)
	if eo.Reached() != SizeEO {
		t.Errorf("EO PDB reached %d/%d keys, want all", eo.Reached(), SizeEO)
	}
}

func TestCornerPermutationPDBReachesAllKeys(t *testing.T) {
	cp := BuildCornerPermutationPDB(nil)
	if cp.Reached() != SizeCP {
		t.Errorf("CP PDB reached %d/%d keys, want all 8! (spec flags any shortfall as a bug)", cp.Reached(), SizeCP)
	}
}

func TestProjectionUnrankRoundTrip(t *testing.T) {
	for key := 0; key < SizeCO; key += 37 {
		s := UnrankCO(key)
		if got := ProjectCO(s); got != key {
			t.Errorf("ProjectCO(UnrankCO(%d)) = %d", key, got)
		}
	}
	for key := 0; key < SizeEO; key += 23 {
		s := UnrankEO(key)
		if got := ProjectEO(s); got != key {
			t.Errorf("ProjectEO(UnrankEO(%d)) = %d", key, got)
		}
	}
	for key := 0; key < SizeCP; key += 257 {
		s := UnrankCP(key)
		if got := ProjectCP(s); got != key {
			t.Errorf("ProjectCP(UnrankCP(%d)) = %d", key, got)
		}
	}
}

func TestPDBConsistency(t *testing.T) {
	co := BuildCornerOrientationPDB(nil)
	eo := BuildEdgeOrientationPDB(nil)
	cp := BuildCornerPermutationPDB(nil)

	// property 5: for every reachable key and every move, the distance
	// changes by at most 1 under one quarter turn.
	for key := 0; key < SizeCO; key += 41 {
		s := UnrankCO(key)
		d0 := co.H(s)
		for _, m := range cube.AllMoves {
			s2 := cube.Apply(s, m)
			d1 := co.H(s2)
			if diff := d0 - d1; diff > 1 || diff < -1 {
				t.Fatalf("CO PDB inconsistent at key %d via %s: %d -> %d", key, m, d0, d1)
			}
		}
	}
	for key := 0; key < SizeEO; key += 29 {
		s := UnrankEO(key)
		d0 := eo.H(s)
		for _, m := range cube.AllMoves {
			s2 := cube.Apply(s, m)
			d1 := eo.H(s2)
			if diff := d0 - d1; diff > 1 || diff < -1 {
				t.Fatalf("EO PDB inconsistent at key %d via %s: %d -> %d", key, m, d0, d1)
			}
		}
	}
	for key := 0; key < SizeCP; key += 311 {
		s := UnrankCP(key)
		d0 := cp.H(s)
		for _, m := range cube.AllMoves {
			s2 := cube.Apply(s, m)
			d1 := cp.H(s2)
			if diff := d0 - d1; diff > 1 || diff < -1 {
				t.Fatalf("CP PDB inconsistent at key %d via %s: %d -> %d", key, m, d0, d1)
			}
		}
	}
}

func TestBuildReportsProgress(t *testing.T) {
	var depths []int
	BuildCornerOrientationPDB(func(depth, reached, size int) {
		depths = append(depths, depth)
		if size != SizeCO {
			t.Errorf("progress size = %d, want %d", size, SizeCO)
		}
	})
	if len(depths) == 0 {
		t.Error("expected at least one progress callback")
	}
}
