// SPDX-License-Identifier: MIT

package rules

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/anyonfuse/model"
)

var (
	// ErrUnsupportedCategory indicates no fusion table is implemented for the category.
	ErrUnsupportedCategory = errors.New("rules: unsupported category")

	// ErrEmptyFold indicates Fold received no vectors.
	ErrEmptyFold = errors.New("rules: nothing to fold")

	// ErrOverflow indicates a multiplicity no longer fits in uint64.
	ErrOverflow = errors.New("rules: multiplicity overflow")
)

// Table holds the structure constants of one category. Tables are read-only.
type Table struct {
	cat model.Category
	n   [][][]uint64 // n[i][j][k]
}

// Structure constants in model index order.
var (
	// Psi=0, Vacuum=1, Sigma=2.
	isingN = [][][]uint64{
		{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}},
		{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		{{0, 0, 1}, {0, 0, 1}, {1, 1, 0}},
	}

	// Tau=0, Vacuum=1.
	fibonacciN = [][][]uint64{
		{{1, 1}, {1, 0}},
		{{1, 0}, {0, 1}},
	}

	tables = map[model.Category]*Table{
		model.Ising:     {cat: model.Ising, n: isingN},
		model.Fibonacci: {cat: model.Fibonacci, n: fibonacciN},
	}
)

// For returns the built-in table for cat.
func For(cat model.Category) (*Table, error) {
	t, ok := tables[cat]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCategory, cat)
	}

	return t, nil
}

// MustFor is For that panics on an unsupported category.
func MustFor(cat model.Category) *Table {
	t, err := For(cat)
	if err != nil {
		panic(err)
	}

	return t
}

// Category returns the table's category.
func (t *Table) Category() model.Category { return t.cat }

// Multiplicity returns N[a][b][c]; zero if any charge is outside the category.
func (t *Table) Multiplicity(a, b, c model.Charge) uint64 {
	for _, x := range [3]model.Charge{a, b, c} {
		if x.In(t.cat) != nil {
			return 0
		}
	}

	return t.n[a.Index()][b.Index()][c.Index()]
}

// Outcomes returns the charge-count vector of a ⊗ b.
func (t *Table) Outcomes(a, b model.Charge) (model.Vector, error) {
	if err := a.In(t.cat); err != nil {
		return model.Vector{}, err
	}
	if err := b.In(t.cat); err != nil {
		return model.Vector{}, err
	}

	return model.NewVector(t.cat, t.n[a.Index()][b.Index()]...)
}

// Apply fuses two charge-count vectors: out[k] = Σ_i Σ_j N[i][j][k]·a[i]·b[j].
//
// Errors:
//   - model.ErrCategoryMismatch if a or b is not over t's category.
//   - ErrOverflow if any accumulated multiplicity exceeds uint64.
func (t *Table) Apply(a, b model.Vector) (model.Vector, error) {
	if a.Category() != t.cat || b.Category() != t.cat {
		return model.Vector{}, fmt.Errorf("%w: %s ⊗ %s in %s",
			model.ErrCategoryMismatch, a.Category(), b.Category(), t.cat)
	}

	d := t.cat.Size()
	out := make([]uint64, d)
	for i := 0; i < d; i++ {
		ai := a.At(i)
		if ai == 0 {
			continue
		}
		for j := 0; j < d; j++ {
			bj := b.At(j)
			if bj == 0 {
				continue
			}
			w, err := mul(ai, bj)
			if err != nil {
				return model.Vector{}, err
			}
			for k, nijk := range t.n[i][j] {
				if nijk == 0 {
					continue
				}
				term, err := mul(nijk, w)
				if err != nil {
					return model.Vector{}, err
				}
				if out[k], err = add(out[k], term); err != nil {
					return model.Vector{}, err
				}
			}
		}
	}

	return model.NewVector(t.cat, out...)
}

// Fuse is Apply over the one-hot vectors of two charges.
func (t *Table) Fuse(a, b model.Charge) (model.Vector, error) {
	return t.Apply(a.Vector(), b.Vector())
}

// Fold left-folds vs through Apply: ((v0 ⊗ v1) ⊗ v2) ⊗ ...
// A single vector is returned unchanged (after a category check).
func (t *Table) Fold(vs ...model.Vector) (model.Vector, error) {
	if len(vs) == 0 {
		return model.Vector{}, ErrEmptyFold
	}
	acc := vs[0]
	if acc.Category() != t.cat {
		return model.Vector{}, fmt.Errorf("%w: %s vector in %s", model.ErrCategoryMismatch, acc.Category(), t.cat)
	}
	var err error
	for _, v := range vs[1:] {
		if acc, err = t.Apply(acc, v); err != nil {
			return model.Vector{}, err
		}
	}

	return acc, nil
}

// FoldSupport returns the charges with non-zero multiplicity in Fold(vs...),
// in category order, tracking only which entries are positive. It never
// overflows, so it stays usable for arbitrarily long charge lists.
//
// Complexity: O(len(vs)·d³).
func (t *Table) FoldSupport(vs ...model.Vector) ([]model.Charge, error) {
	if len(vs) == 0 {
		return nil, ErrEmptyFold
	}
	d := t.cat.Size()
	acc := make([]bool, d)
	for i, v := range vs {
		if v.Category() != t.cat {
			return nil, fmt.Errorf("%w: %s vector in %s", model.ErrCategoryMismatch, v.Category(), t.cat)
		}
		if i == 0 {
			for k := range acc {
				acc[k] = v.At(k) > 0
			}
			continue
		}
		next := make([]bool, d)
		for a := 0; a < d; a++ {
			if !acc[a] {
				continue
			}
			for b := 0; b < d; b++ {
				if v.At(b) == 0 {
					continue
				}
				for k, nabk := range t.n[a][b] {
					if nabk > 0 {
						next[k] = true
					}
				}
			}
		}
		acc = next
	}

	var out []model.Charge
	for k, on := range acc {
		if on {
			out = append(out, t.cat.Charges()[k])
		}
	}

	return out, nil
}

// Apply fuses a and b using the table of a's category.
func Apply(a, b model.Vector) (model.Vector, error) {
	t, err := For(a.Category())
	if err != nil {
		return model.Vector{}, err
	}

	return t.Apply(a, b)
}

// mul returns x*y or ErrOverflow.
func mul(x, y uint64) (uint64, error) {
	hi, lo := bits.Mul64(x, y)
	if hi != 0 {
		return 0, ErrOverflow
	}

	return lo, nil
}

// add returns x+y or ErrOverflow.
func add(x, y uint64) (uint64, error) {
	sum, carry := bits.Add64(x, y, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}

	return sum, nil
}
