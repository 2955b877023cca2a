// SPDX-License-Identifier: MIT

package fusion

import (
	"cmp"
	"errors"
	"slices"

	"github.com/katalvlaran/anyonfuse/basis"
	"github.com/katalvlaran/anyonfuse/model"
	"github.com/katalvlaran/anyonfuse/rules"
	"github.com/katalvlaran/anyonfuse/state"
)

var (
	// ErrNilState is returned by New for a nil ledger.
	ErrNilState = errors.New("fusion: state is nil")

	// ErrNoAnyons indicates a query that needs at least one anyon.
	ErrNoAnyons = errors.New("fusion: no anyons")

	// ErrIncompleteTree indicates more than one slot survives the tree.
	ErrIncompleteTree = errors.New("fusion: tree does not reduce to one charge")

	// ErrUnsupportedCategory is rules.ErrUnsupportedCategory, re-exported.
	ErrUnsupportedCategory = rules.ErrUnsupportedCategory

	// ErrNegativeQubits indicates a negative qubit count.
	ErrNegativeQubits = errors.New("fusion: negative qubit count")

	// ErrQubitLimit indicates a Fibonacci qubit count above MaxFibonacciQubits.
	ErrQubitLimit = errors.New("fusion: qubit count above limit")
)

// Option configures a Fusion snapshot.
type Option func(*options)

type options struct {
	strictTotalCharge bool
}

// WithStrictTotalCharge makes QubitEncoding require a definite total charge:
// exactly one Vacuum or exactly one Psi outcome, with no Sigma.
// By default any non-zero Vacuum/Psi total with no Sigma is trivial.
func WithStrictTotalCharge() Option {
	return func(o *options) { o.strictTotalCharge = true }
}

// Level is the set of fusions performed at one time step, in ledger order.
type Level struct {
	Time  uint32
	Pairs []state.FusionPair
}

// Fusion is a read-only fusion tree built from a ledger snapshot.
type Fusion struct {
	anyons []model.Anyon
	levels []Level
	table  *rules.Table // nil without anyons
	opts   options
}

// New snapshots s and groups its operations into levels.
//
// Operations are sorted stably by time first, so submission order across
// time steps does not matter; order within a time step is kept.
//
// Complexity: O(m log m) for m operations.
func New(s *state.State, opts ...Option) (*Fusion, error) {
	if s == nil {
		return nil, ErrNilState
	}
	f := &Fusion{anyons: s.Anyons()}
	for _, opt := range opts {
		opt(&f.opts)
	}
	if cat, ok := s.Category(); ok {
		table, err := rules.For(cat)
		if err != nil {
			return nil, err
		}
		f.table = table
	}

	ops := s.Operations()
	slices.SortStableFunc(ops, func(a, b state.Operation) int { return cmp.Compare(a.Time, b.Time) })
	for i, op := range ops {
		if i == 0 || op.Time != ops[i-1].Time {
			f.levels = append(f.levels, Level{Time: op.Time})
		}
		last := &f.levels[len(f.levels)-1]
		last.Pairs = append(last.Pairs, op.Pair)
	}

	return f, nil
}

// Len returns the number of anyons.
func (f *Fusion) Len() int { return len(f.anyons) }

// Anyons returns a copy of the anyon sequence.
func (f *Fusion) Anyons() []model.Anyon {
	out := make([]model.Anyon, len(f.anyons))
	copy(out, f.anyons)

	return out
}

// Category returns the snapshot's category, or false without anyons.
func (f *Fusion) Category() (model.Category, bool) {
	if f.table == nil {
		return 0, false
	}

	return f.table.Category(), true
}

// Levels returns a deep copy of the level view.
func (f *Fusion) Levels() []Level {
	out := make([]Level, len(f.levels))
	for i, lv := range f.levels {
		out[i] = Level{Time: lv.Time, Pairs: slices.Clone(lv.Pairs)}
	}

	return out
}

// Operations flattens the levels back into a time-ordered operation list.
func (f *Fusion) Operations() []state.Operation {
	var out []state.Operation
	for _, lv := range f.levels {
		for _, p := range lv.Pairs {
			out = append(out, state.Operation{Time: lv.Time, Pair: p})
		}
	}

	return out
}

// Basis returns the flattened operations as a basis candidate.
func (f *Fusion) Basis() basis.Basis { return basis.New(f.Operations()) }

// VerifyBasis reports whether b is a valid basis for this snapshot's anyons.
func (f *Fusion) VerifyBasis(b basis.Basis) bool { return b.Verify(len(f.anyons)) }
