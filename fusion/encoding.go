package fusion

import (
	"fmt"

	"github.com/katalvlaran/anyonfuse/model"
	"github.com/katalvlaran/anyonfuse/state"
)

// QubitEncoding returns the fusions whose outcomes define the encoded qubit.
//
// Steps:
//  1. Walk the tree as Evolve does; every fusion except the globally last one
//     is recorded with its outcome.
//  2. The tree must reduce to one slot; the last fusion's outcome is then the
//     total charge. If it is not trivial the encoding is empty.
//  3. Keep recorded pairs with no non-abelian (Sigma) multiplicity, sort them
//     by (anyon1, anyon2) and drop the highest.
//
// A total is trivial when it has no Sigma and some Vacuum or Psi; with
// WithStrictTotalCharge it must be exactly one Vacuum or exactly one Psi.
//
// Errors: ErrNoAnyons; ErrIncompleteTree when more than one slot survives;
// ErrUnsupportedCategory for categories without a fermionic channel
// (Fibonacci); rules.ErrOverflow.
func (f *Fusion) QubitEncoding() ([]state.FusionPair, error) {
	if len(f.anyons) == 0 {
		return nil, ErrNoAnyons
	}
	cat := f.table.Category()
	fermion, ok := cat.Fermion()
	if !ok {
		return nil, fmt.Errorf("%w: qubit encoding for %s", ErrUnsupportedCategory, cat)
	}

	ev, err := f.Evolve()
	if err != nil {
		return nil, err
	}
	if len(ev.Survivors) != 1 {
		return nil, fmt.Errorf("%w: %d slots survive", ErrIncompleteTree, len(ev.Survivors))
	}
	if len(ev.Steps) == 0 {
		return nil, nil
	}

	last := ev.Steps[len(ev.Steps)-1]
	if !f.trivial(last.Outcome, fermion) {
		return nil, nil
	}

	var pairs []state.FusionPair
	for _, st := range ev.Steps[:len(ev.Steps)-1] {
		if !st.Outcome.Has(cat.NonAbelian()) {
			pairs = append(pairs, st.Pair)
		}
	}
	if len(pairs) == 0 {
		return nil, nil
	}
	state.SortPairs(pairs)

	return pairs[:len(pairs)-1], nil
}

// trivial reports whether total is a definite vacuum or fermion outcome.
func (f *Fusion) trivial(total model.Vector, fermion model.Charge) bool {
	cat := total.Category()
	if total.Has(cat.NonAbelian()) {
		return false
	}
	vac, psi := total.Count(cat.Vacuum()), total.Count(fermion)
	if f.opts.strictTotalCharge {
		return (vac == 1 && psi == 0) || (psi == 1 && vac == 0)
	}

	return vac > 0 || psi > 0
}
