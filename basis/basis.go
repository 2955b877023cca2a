// SPDX-License-Identifier: MIT

package basis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/anyonfuse/state"
)

var (
	// ErrWrongLength indicates the basis does not hold exactly anyons−1 operations.
	ErrWrongLength = errors.New("basis: wrong number of operations")

	// ErrUnsorted indicates an operation's time is earlier than its predecessor's.
	ErrUnsorted = errors.New("basis: operations not sorted by time")

	// ErrMalformed indicates a malformed or out-of-range fusion pair.
	ErrMalformed = errors.New("basis: malformed fusion pair")

	// ErrConsumed indicates an endpoint was already fused away as anyon2.
	ErrConsumed = errors.New("basis: anyon already consumed")

	// ErrReused indicates an endpoint was already touched at the same time step.
	ErrReused = errors.New("basis: anyon reused within a time step")

	// ErrNotAdjacent indicates an unconsumed anyon sits between the endpoints.
	ErrNotAdjacent = errors.New("basis: anyons are not adjacent")

	// ErrCountOverflow indicates the number of bases does not fit in uint64.
	ErrCountOverflow = errors.New("basis: count overflows uint64")
)

// Basis is an immutable, time-stamped operation sequence.
type Basis struct {
	ops []state.Operation
}

// New returns a Basis over a copy of ops. The order of ops is kept as given.
func New(ops []state.Operation) Basis {
	cp := make([]state.Operation, len(ops))
	copy(cp, ops)

	return Basis{ops: cp}
}

// Operations returns a copy of the operation sequence.
func (b Basis) Operations() []state.Operation {
	out := make([]state.Operation, len(b.ops))
	copy(out, b.ops)

	return out
}

// Len returns the number of operations.
func (b Basis) Len() int { return len(b.ops) }

// Validate returns nil if b is a valid basis for the given number of anyons,
// otherwise the first violated rule wrapped with the offending operation.
func (b Basis) Validate(anyons int) error {
	if anyons < 1 || len(b.ops) != anyons-1 {
		return fmt.Errorf("%w: %d operations for %d anyons", ErrWrongLength, len(b.ops), anyons)
	}

	consumed := make([]bool, anyons)
	touched := make([]bool, anyons)
	var current uint32
	for i, op := range b.ops {
		if i > 0 && op.Time < current {
			return fmt.Errorf("%w: op %d (%s) after t=%d", ErrUnsorted, i, op, current)
		}
		if i == 0 || op.Time != current {
			clear(touched)
			current = op.Time
		}

		a1, a2 := op.Pair.Anyon1(), op.Pair.Anyon2()
		if !op.Pair.Valid() || a2 >= anyons {
			return fmt.Errorf("%w: op %d (%s)", ErrMalformed, i, op)
		}
		for _, idx := range [2]int{a1, a2} {
			if consumed[idx] {
				return fmt.Errorf("%w: op %d (%s) index %d", ErrConsumed, i, op, idx)
			}
			if touched[idx] {
				return fmt.Errorf("%w: op %d (%s) index %d", ErrReused, i, op, idx)
			}
		}
		for idx := a1 + 1; idx < a2; idx++ {
			if !consumed[idx] {
				return fmt.Errorf("%w: op %d (%s) index %d", ErrNotAdjacent, i, op, idx)
			}
		}

		consumed[a2] = true
		touched[a1] = true
		touched[a2] = true
	}

	return nil
}

// Verify reports whether b is a valid basis for the given number of anyons.
// It never panics.
func (b Basis) Verify(anyons int) bool { return b.Validate(anyons) == nil }

// String renders the operations as "t=1 (0,1); t=2 (0,2)".
func (b Basis) String() string {
	parts := make([]string, len(b.ops))
	for i, op := range b.ops {
		parts[i] = op.String()
	}

	return strings.Join(parts, "; ")
}
