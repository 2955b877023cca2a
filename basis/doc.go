// Package basis validates and enumerates complete fusion bases.
//
// A basis is one complete, time-stamped fusion tree over n anyons: exactly
// n−1 operations that reduce the system to a single surviving slot. Unlike
// the ledger in package state, a Basis is checked in one stateless pass, so
// externally generated candidates can be tested without replaying them.
//
// Validation rules, applied to the operations in order:
//
//  1. len(ops) == n−1 and n ≥ 1                         (ErrWrongLength)
//  2. time never decreases; no silent reordering       (ErrUnsorted)
//  3. each pair is well formed and inside [0, n)       (ErrMalformed)
//  4. neither endpoint was consumed as anyon2 earlier  (ErrConsumed)
//  5. neither endpoint was touched at the current time (ErrReused)
//  6. every index strictly between them is consumed    (ErrNotAdjacent)
//
// The "touched at the current time" set resets whenever the time changes.
// Validate reports the first violated rule; Verify is its total boolean form.
//
// Enumerate walks every canonical basis of n anyons: level t ∈ 1..T holds a
// non-empty set of disjoint pairs of neighbouring active slots, ordered by
// anyon1. Count returns how many there are without materialising them.
//
// Complexity:
//
//   - Validate: O(n²) worst case (adjacency scans), O(n) memory.
//   - Enumerate: O(Count(n)·n).
//   - Count: O(n²) time and memory.
package basis
