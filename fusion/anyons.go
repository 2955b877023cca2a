package fusion

import (
	"fmt"

	"github.com/katalvlaran/anyonfuse/model"
)

// MaxFibonacciQubits bounds the Fibonacci recurrence to fixed-width integers.
const MaxFibonacciQubits = 30

// MinimumPossibleAnyons returns, in ascending order, the anyon counts of the
// category's non-abelian charge that realise exactly qubits logical qubits.
//
//   - Ising: 2q+1 and 2q+2.
//   - Fibonacci: iterate (F_k, F_k+1) from (0, 1); every k whose second term
//     lies in [2^q, 2^(q+1)) admits 2k and 2k+1. Requires q ≤ MaxFibonacciQubits.
//
// Complexity: O(q) for Fibonacci, O(1) for Ising.
func MinimumPossibleAnyons(cat model.Category, qubits int) ([]int, error) {
	if qubits < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeQubits, qubits)
	}

	switch cat {
	case model.Ising:
		return []int{2*qubits + 1, 2*qubits + 2}, nil

	case model.Fibonacci:
		if qubits > MaxFibonacciQubits {
			return nil, fmt.Errorf("%w: %d > %d", ErrQubitLimit, qubits, MaxFibonacciQubits)
		}
		lo, hi := uint64(1)<<qubits, uint64(1)<<(qubits+1)
		var out []int
		prev, cur := uint64(0), uint64(1)
		for k := 0; cur < hi; k++ {
			if cur >= lo {
				out = append(out, 2*k, 2*k+1)
			}
			prev, cur = cur, prev+cur
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedCategory, cat)
}
