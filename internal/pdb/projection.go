package pdb

import "github.com/cubesolve/cubesolve"

// SizeCO is the key space of the corner-orientation projection, 3^7.
const SizeCO = 2187

// SizeEO is the key space of the edge-orientation projection, 2^11.
const SizeEO = 2048

// SizeCP is the key space of the corner-permutation projection, 8!.
const SizeCP = 40320

// ProjectCO computes π_CO(s): the base-3 encoding of the first seven
// corner orientations. The eighth is redundant, fixed by the
// sum-zero-mod-3 invariant, as spec.md §3 documents.
func ProjectCO(s cube.State) int {
	index := 0
	power := 1
	for i := 0; i < 7; i++ {
		index += int(s.CornerOrient[i]) * power
		power *= 3
	}
	return index
}

// UnrankCO reconstructs a representative state carrying exactly the
// corner-orientation pattern key decodes to, with corner/edge
// permutations and edge orientations at their solved values. It is the
// round-trip inverse of ProjectCO and exists so the projection is a
// verifiable bijection on legal inputs, per spec.md §4.3, even though
// this package's BFS does not call it (see buildReverseBFS's doc comment).
func UnrankCO(key int) cube.State {
	s := cube.Solved()
	sum := 0
	for i := 0; i < 7; i++ {
		o := int8(key % 3)
		key /= 3
		s.CornerOrient[i] = o
		sum += int(o)
	}
	s.CornerOrient[7] = int8(((3 - sum%3) % 3))
	return s
}

// ProjectEO computes π_EO(s): the base-2 encoding of the first eleven
// edge orientations. The twelfth is redundant, fixed by the
// sum-zero-mod-2 invariant.
func ProjectEO(s cube.State) int {
	index := 0
	for i := 0; i < 11; i++ {
		if s.EdgeOrient[i] != 0 {
			index |= 1 << i
		}
	}
	return index
}

// UnrankEO is the round-trip inverse of ProjectEO.
func UnrankEO(key int) cube.State {
	s := cube.Solved()
	sum := 0
	for i := 0; i < 11; i++ {
		o := int8((key >> i) & 1)
		s.EdgeOrient[i] = o
		sum += int(o)
	}
	s.EdgeOrient[11] = int8(sum % 2)
	return s
}

// ProjectCP computes π_CP(s): the Lehmer / factorial-base rank of the
// corner permutation.
func ProjectCP(s cube.State) int {
	return lehmerEncode(s.CornerPerm[:])
}

// UnrankCP is the round-trip inverse of ProjectCP: a representative state
// with the given corner permutation and solved edges/orientations.
func UnrankCP(key int) cube.State {
	s := cube.Solved()
	perm := lehmerDecode(8, key)
	for i, v := range perm {
		s.CornerPerm[i] = int8(v)
	}
	return s
}

// lehmerEncode ranks a permutation of 0..n-1 in the factorial number
// system: for each position (right to left), count how many elements to
// its right are smaller, and accumulate against the rising factorial.
func lehmerEncode(perm []int8) int {
	n := len(perm)
	index := 0
	factorial := 1
	for i := n - 1; i >= 0; i-- {
		count := 0
		for j := i + 1; j < n; j++ {
			if perm[j] < perm[i] {
				count++
			}
		}
		index += count * factorial
		factorial *= n - i
	}
	return index
}

// lehmerDecode inverts lehmerEncode for a permutation of n elements.
func lehmerDecode(n, index int) []int {
	factorial := 1
	for i := 1; i < n; i++ {
		factorial *= i
	}

	available := make([]int, n)
	for i := range available {
		available[i] = i
	}

	result := make([]int, n)
	for i := 0; i < n-1; i++ {
		f := factorial
		if n-1-i > 0 {
			factorial /= n - 1 - i
		}
		digit := index / f
		index %= f
		result[i] = available[digit]
		available = append(available[:digit], available[digit+1:]...)
	}
	if len(available) > 0 {
		result[n-1] = available[0]
	}
	return result
}
