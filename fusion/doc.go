// Package fusion assembles a finalized ledger into a fusion tree and answers
// queries over it.
//
// What:
//
//   - New snapshots a *state.State. Operations are sorted stably by time and
//     grouped into Levels, one per distinct time. The snapshot is immutable and
//     safe for concurrent readers.
//   - String renders the tree: labels, a row of pipes, one row per level with
//     "─" joining each fused range, and a final row of surviving slots.
//   - Evolve walks the tree level by level, tracking the charge-count vector of
//     every active slot; TotalCharge returns the single surviving vector.
//   - VerifyFusionResult folds every initial charge regardless of tree shape
//     and reports whether the target charge is still reachable.
//   - QubitEncoding extracts the measurement-definite fusions that define the
//     encoded qubit (Ising only).
//   - MinimumPossibleAnyons lists the anyon counts realising exactly k qubits.
//
// Rendering of six Sigma anyons fused as (0,1),(2,3),(4,5) then (2,4) then (0,2):
//
//	0 1 2 3 4 5
//	| | | | | |
//	|─| |─| |─|
//	|   |───|
//	|───|
//	|
//
// Every row after the labels is exactly 2n−1 runes wide and is never trimmed:
// retired slots render as spaces, so a row such as "|───|" above actually
// reads "|───|      " (trailing blanks are not visible in this comment).
//
// Errors:
//
//   - ErrNilState            New received a nil ledger.
//   - ErrNoAnyons            the query needs at least one anyon.
//   - ErrIncompleteTree      more than one slot survives the tree.
//   - ErrUnsupportedCategory the category has no implementation for the query.
//   - ErrNegativeQubits, ErrQubitLimit  MinimumPossibleAnyons input bounds.
package fusion
