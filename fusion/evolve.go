package fusion

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/anyonfuse/model"
	"github.com/katalvlaran/anyonfuse/state"
)

// Step is one applied fusion and the charge-count vector it produced.
type Step struct {
	Time    uint32
	Pair    state.FusionPair
	Outcome model.Vector
}

// Evolution is the result of walking the tree level by level.
type Evolution struct {
	// Steps lists every fusion in application order.
	Steps []Step

	// Slots holds the final charge-count vector of every index.
	// Consumed slots hold the zero Vector.
	Slots []model.Vector

	// Survivors lists the indices still active after the last level, ascending.
	Survivors []int
}

// Evolve seeds each slot with its anyon's one-hot charge and applies every
// level in order; each fusion replaces slot anyon1 with the fused vector and
// retires slot anyon2.
//
// Errors: ErrNoAnyons, rules.ErrOverflow.
//
// Complexity: O(n + m·d³) for n anyons, m operations and d charges.
func (f *Fusion) Evolve() (*Evolution, error) {
	if len(f.anyons) == 0 {
		return nil, ErrNoAnyons
	}

	slots := make([]model.Vector, len(f.anyons))
	for i, a := range f.anyons {
		slots[i] = a.Charge().Vector()
	}

	ev := &Evolution{}
	for _, lv := range f.levels {
		for _, p := range lv.Pairs {
			out, err := f.table.Apply(slots[p.Anyon1()], slots[p.Anyon2()])
			if err != nil {
				return nil, fmt.Errorf("fusion: t=%d %s: %w", lv.Time, p, err)
			}
			slots[p.Anyon1()] = out
			slots[p.Anyon2()] = model.Vector{}
			ev.Steps = append(ev.Steps, Step{Time: lv.Time, Pair: p, Outcome: out})
		}
	}

	for i, v := range slots {
		if v.Category().Valid() {
			ev.Survivors = append(ev.Survivors, i)
		}
	}
	ev.Slots = slots

	return ev, nil
}

// TotalCharge returns the charge-count vector of the single surviving slot.
//
// Errors: ErrNoAnyons, ErrIncompleteTree when more than one slot survives.
func (f *Fusion) TotalCharge() (model.Vector, error) {
	ev, err := f.Evolve()
	if err != nil {
		return model.Vector{}, err
	}
	if len(ev.Survivors) != 1 {
		return model.Vector{}, fmt.Errorf("%w: %d slots survive", ErrIncompleteTree, len(ev.Survivors))
	}

	return ev.Slots[ev.Survivors[0]], nil
}

// VerifyFusionResult folds every anyon's initial charge, ignoring the tree,
// and reports whether target is still a non-zero outcome of the total fusion.
// Only the support of the fold is tracked, so long anyon chains never overflow.
//
// Errors: ErrNoAnyons, model.ErrCategoryMismatch.
func (f *Fusion) VerifyFusionResult(target model.Charge) (bool, error) {
	if len(f.anyons) == 0 {
		return false, ErrNoAnyons
	}
	if err := target.In(f.table.Category()); err != nil {
		return false, err
	}

	charges := make([]model.Vector, len(f.anyons))
	for i, a := range f.anyons {
		charges[i] = a.Charge().Vector()
	}
	reachable, err := f.table.FoldSupport(charges...)
	if err != nil {
		return false, err
	}

	return slices.Contains(reachable, target), nil
}
