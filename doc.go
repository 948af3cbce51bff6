// Package cube implements the cubie-level state model and move algebra for
// a 3x3x3 Rubik's Cube in the quarter-turn metric: an immutable state type,
// the 18 precomputed face-turn tables, and a pure Apply function. It has no
// knowledge of facelet colors, search, or pattern databases; those live in
// sibling packages built on top of it.
package cube
