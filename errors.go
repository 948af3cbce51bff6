package cube

import "errors"

// Sentinel errors for the cube package.
var (
	// ErrInvalidState is returned by boundary converters (facelet decoding,
	// user-supplied states) when a state violates one of the invariants in
	// State.IsValid. The core never constructs or receives an invalid state.
	ErrInvalidState = errors.New("cube: invalid cube state")

	// ErrInvalidMove is returned by the notation parser for an unrecognized
	// move token.
	ErrInvalidMove = errors.New("cube: invalid move notation")
)
