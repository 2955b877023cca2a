package state

import (
	"fmt"

	"github.com/katalvlaran/anyonfuse/model"
)

// Option configures a State at construction.
type Option func(*State)

// WithOnReject installs a hook called for every operation AddOperation
// rejects, together with the reason (malformed or illegal).
// Panics on nil to surface programmer error early.
func WithOnReject(fn func(op Operation, reason error)) Option {
	if fn == nil {
		panic("state: WithOnReject(nil)")
	}
	return func(s *State) { s.onReject = fn }
}

// State is the operation ledger: an append-only anyon sequence and an
// append-only log of time-stamped fusions.
//
// Invariant: the log always describes a forest of planar partial fusion
// trees when replayed in time order. No index is consumed twice and every
// fusion joins anyons that are adjacent among the unconsumed ones at that
// moment.
//
// Consumption status is never cached; every check re-scans the log.
// State is not safe for concurrent mutation.
type State struct {
	anyons     []model.Anyon
	operations []Operation

	onReject func(op Operation, reason error)
}

// New returns an empty ledger.
func New(opts ...Option) *State {
	s := &State{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AddAnyon appends a at the next index.
//
// Errors:
//   - model.ErrInvalidCharge    if a is the zero Anyon.
//   - model.ErrCategoryMismatch if a's category differs from the first anyon's.
func (s *State) AddAnyon(a model.Anyon) error {
	if !a.Valid() {
		return model.ErrInvalidCharge
	}
	if len(s.anyons) > 0 {
		if err := a.Charge().In(s.anyons[0].Charge().Category()); err != nil {
			return fmt.Errorf("state: AddAnyon(%s): %w", a.Name(), err)
		}
	}
	s.anyons = append(s.anyons, a)

	return nil
}

// Len returns the number of anyons.
func (s *State) Len() int { return len(s.anyons) }

// Category returns the ledger's category, or false while no anyon was added.
func (s *State) Category() (model.Category, bool) {
	if len(s.anyons) == 0 {
		return 0, false
	}

	return s.anyons[0].Charge().Category(), true
}

// Anyons returns a copy of the anyon sequence.
func (s *State) Anyons() []model.Anyon {
	out := make([]model.Anyon, len(s.anyons))
	copy(out, s.anyons)

	return out
}

// Operations returns a copy of the operation log in submission order.
func (s *State) Operations() []Operation {
	out := make([]Operation, len(s.operations))
	copy(out, s.operations)

	return out
}

// Consumed reports, per anyon index, whether it has been fused away as anyon2
// by any logged operation. Derived from the log on every call.
func (s *State) Consumed() []bool {
	consumed := make([]bool, len(s.anyons))
	for _, op := range s.operations {
		consumed[op.Pair.anyon2] = true
	}

	return consumed
}

// Check returns nil if fusing pair at time would be accepted, otherwise the reason.
//
// Consumption is judged in time order, as the assembler replays the log
// sorted by time; submission order across time steps does not matter.
//
// Steps:
//  1. pair must be well formed and anyon2 must be in range (caller bugs).
//  2. Re-scan the log: anyon2 of every op is consumed at the op's time;
//     anyon1 of an op at the same time is busy for that time step.
//  3. Neither endpoint may be consumed or busy.
//  4. anyon2 may not appear in any op at a later time.
//  5. Every index strictly between the endpoints must be consumed no later
//     than time.
//
// Complexity: O(len(log) + anyon2−anyon1).
func (s *State) Check(time uint32, pair FusionPair) error {
	if !pair.Valid() {
		return fmt.Errorf("%w: %s", ErrMalformedPair, pair)
	}
	if pair.anyon2 >= len(s.anyons) {
		return fmt.Errorf("%w: %s with %d anyons", ErrIndexOutOfRange, pair, len(s.anyons))
	}

	n := len(s.anyons)
	consumed := make([]bool, n)
	consumedAt := make([]uint32, n)
	busy := make([]bool, n)
	var usedLater bool
	var laterTime uint32
	for _, op := range s.operations {
		consumed[op.Pair.anyon2] = true
		consumedAt[op.Pair.anyon2] = op.Time
		if op.Time == time {
			busy[op.Pair.anyon1] = true
		}
		if op.Time > time && (op.Pair.anyon1 == pair.anyon2 || op.Pair.anyon2 == pair.anyon2) {
			usedLater, laterTime = true, op.Time
		}
	}

	for _, i := range [2]int{pair.anyon1, pair.anyon2} {
		if consumed[i] {
			return fmt.Errorf("%w: index %d", ErrAlreadyConsumed, i)
		}
		if busy[i] {
			return fmt.Errorf("%w: index %d at t=%d", ErrBusyAtTime, i, time)
		}
	}
	if usedLater {
		return fmt.Errorf("%w: index %d fuses at t=%d after t=%d", ErrOutOfOrder, pair.anyon2, laterTime, time)
	}

	for i := pair.anyon1 + 1; i < pair.anyon2; i++ {
		if !consumed[i] {
			return fmt.Errorf("%w: index %d is still active between %s", ErrNotAdjacent, i, pair)
		}
		if consumedAt[i] > time {
			return fmt.Errorf("%w: index %d between %s is only consumed at t=%d", ErrNotAdjacent, i, pair, consumedAt[i])
		}
	}

	return nil
}

// VerifyOperation reports whether pair can be fused at time without mutating
// the ledger. Malformed or out-of-range pairs return false and an error.
func (s *State) VerifyOperation(time uint32, pair FusionPair) (bool, error) {
	err := s.Check(time, pair)
	switch {
	case err == nil:
		return true, nil
	case isIllegal(err):
		return false, nil
	default:
		return false, err
	}
}

// AddOperation appends the fusion if it is legal.
//
// Returns:
//   - true, nil  – accepted and logged.
//   - false, nil – illegal fusion (consumed, busy, out of order or non-adjacent); ledger untouched.
//   - false, err – malformed pair or index out of range; ledger untouched.
//
// The OnReject hook, if any, sees every rejection with its reason.
func (s *State) AddOperation(time uint32, pair FusionPair) (bool, error) {
	op := Operation{Time: time, Pair: pair}
	if err := s.Check(time, pair); err != nil {
		if s.onReject != nil {
			s.onReject(op, err)
		}
		if isIllegal(err) {
			return false, nil
		}
		return false, err
	}
	s.operations = append(s.operations, op)

	return true, nil
}
