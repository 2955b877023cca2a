package basis

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/anyonfuse/state"
)

// Enumerate calls visit for every canonical basis of the given number of anyons.
// Level t (from 1) fuses a non-empty set of disjoint pairs of neighbouring
// active slots, listed by anyon1. Returning false from visit stops the walk.
//
// Each Basis passed to visit owns its operations and satisfies Verify(anyons).
// Returns ErrWrongLength if anyons < 1.
func Enumerate(anyons int, visit func(Basis) bool) error {
	if anyons < 1 {
		return fmt.Errorf("%w: %d anyons", ErrWrongLength, anyons)
	}
	if visit == nil {
		panic("basis: Enumerate with nil visit")
	}

	active := make([]int, anyons)
	for i := range active {
		active[i] = i
	}
	w := walker{visit: visit, ops: make([]state.Operation, 0, anyons-1)}
	w.level(active, 1)

	return nil
}

type walker struct {
	visit   func(Basis) bool
	ops     []state.Operation
	stopped bool
}

// level enumerates every non-empty matching for the given time step.
func (w *walker) level(active []int, time uint32) {
	if w.stopped {
		return
	}
	if len(active) == 1 {
		if !w.visit(New(w.ops)) {
			w.stopped = true
		}
		return
	}
	w.match(active, time, 0, nil)
}

// match picks pairs among active[from:]; chosen holds positions of anyon1 slots.
func (w *walker) match(active []int, time uint32, from int, chosen []int) {
	if w.stopped {
		return
	}
	if from >= len(active)-1 {
		if len(chosen) == 0 {
			return
		}
		mark := len(w.ops)
		survivors := make([]int, 0, len(active)-len(chosen))
		next := 0
		for pos, idx := range active {
			if next < len(chosen) && pos == chosen[next]+1 {
				next++
				continue
			}
			survivors = append(survivors, idx)
		}
		for _, pos := range chosen {
			w.ops = append(w.ops, state.Operation{Time: time, Pair: state.MustFusionPair(active[pos], active[pos+1])})
		}
		w.level(survivors, time+1)
		w.ops = w.ops[:mark]
		return
	}

	// Pair active[from] with its right neighbour, then leave it alone.
	w.match(active, time, from+2, append(chosen, from))
	w.match(active, time, from+1, chosen)
}

// Count returns the number of bases Enumerate would visit.
//
// With C(1) = 1 and M(m, k) = binom(m−k, k) the number of k-pair matchings
// among m neighbouring slots, C(m) = Σ_{k≥1} M(m, k)·C(m−k).
func Count(anyons int) (uint64, error) {
	if anyons < 1 {
		return 0, fmt.Errorf("%w: %d anyons", ErrWrongLength, anyons)
	}

	// matchings[m][k] = M(m, k) via M(m, k) = M(m−1, k) + M(m−2, k−1).
	matchings := make([][]uint64, anyons+1)
	for m := range matchings {
		matchings[m] = make([]uint64, m/2+1)
		matchings[m][0] = 1
		for k := 1; k <= m/2; k++ {
			var sum uint64
			if k <= (m-1)/2 {
				sum = matchings[m-1][k]
			}
			var carry uint64
			sum, carry = bits.Add64(sum, matchings[m-2][k-1], 0)
			if carry != 0 {
				return 0, ErrCountOverflow
			}
			matchings[m][k] = sum
		}
	}

	counts := make([]uint64, anyons+1)
	counts[1] = 1
	for m := 2; m <= anyons; m++ {
		var total uint64
		for k := 1; k <= m/2; k++ {
			hi, lo := bits.Mul64(matchings[m][k], counts[m-k])
			if hi != 0 {
				return 0, ErrCountOverflow
			}
			var carry uint64
			if total, carry = bits.Add64(total, lo, 0); carry != 0 {
				return 0, ErrCountOverflow
			}
		}
		counts[m] = total
	}

	return counts[anyons], nil
}
