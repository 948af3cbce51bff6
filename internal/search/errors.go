package search

import "errors"

// ErrSearchExhausted is returned when the outer IDA*/IDDFS threshold grows
// beyond a finite bound with no solution found. Per spec.md §7 this should
// never happen for a legal cube state — it signals an internal invariant
// violation (a malformed heuristic or move table), not a normal failure
// mode, which is why it is an error rather than a Result.Status value.
var ErrSearchExhausted = errors.New("search: threshold exhausted with no solution")
