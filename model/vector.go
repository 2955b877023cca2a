package model

import (
	"fmt"
	"strings"
)

// Vector is a charge-count vector: how many fusion outcomes of each charge
// are simultaneously consistent at a point in tree evaluation.
//
// Vectors are immutable; accessors never expose the backing slice.
// The zero Vector has no category and Len()==0.
type Vector struct {
	cat    Category
	counts []uint64
}

// NewVector builds a Vector over cat from counts given in index order.
// len(counts) must equal cat.Size().
func NewVector(cat Category, counts ...uint64) (Vector, error) {
	if !cat.Valid() {
		return Vector{}, ErrUnknownCategory
	}
	if len(counts) != cat.Size() {
		return Vector{}, fmt.Errorf("%w: %d counts for %s (want %d)",
			ErrVectorLength, len(counts), cat, cat.Size())
	}
	cp := make([]uint64, len(counts))
	copy(cp, counts)

	return Vector{cat: cat, counts: cp}, nil
}

// MustVector is NewVector that panics on error. Intended for literals.
func MustVector(cat Category, counts ...uint64) Vector {
	v, err := NewVector(cat, counts...)
	if err != nil {
		panic(err)
	}

	return v
}

// Zero returns the all-zero Vector over cat.
func Zero(cat Category) Vector {
	return Vector{cat: cat, counts: make([]uint64, cat.Size())}
}

// Category returns the vector's category.
func (v Vector) Category() Category { return v.cat }

// Len returns the size of the index space (0 for the zero Vector).
func (v Vector) Len() int { return len(v.counts) }

// At returns the multiplicity at index i. Out-of-range indices return 0.
func (v Vector) At(i int) uint64 {
	if i < 0 || i >= len(v.counts) {
		return 0
	}

	return v.counts[i]
}

// Count returns the multiplicity of charge c (0 if c is from another category).
func (v Vector) Count(c Charge) uint64 {
	if c.cat != v.cat {
		return 0
	}

	return v.At(c.Index())
}

// Has reports whether charge c has a non-zero multiplicity.
func (v Vector) Has(c Charge) bool { return v.Count(c) > 0 }

// Counts returns a copy of the multiplicities in index order.
func (v Vector) Counts() []uint64 {
	cp := make([]uint64, len(v.counts))
	copy(cp, v.counts)

	return cp
}

// IsZero reports whether every multiplicity is zero.
func (v Vector) IsZero() bool {
	for _, n := range v.counts {
		if n != 0 {
			return false
		}
	}

	return true
}

// Support lists the charges with non-zero multiplicity, in index order.
func (v Vector) Support() []Charge {
	var out []Charge
	for i, n := range v.counts {
		if n > 0 {
			out = append(out, Charge{cat: v.cat, idx: uint8(i)})
		}
	}

	return out
}

// Equal reports whether v and w have the same category and multiplicities.
func (v Vector) Equal(w Vector) bool {
	if v.cat != w.cat || len(v.counts) != len(w.counts) {
		return false
	}
	for i := range v.counts {
		if v.counts[i] != w.counts[i] {
			return false
		}
	}

	return true
}

// String renders v as "[Psi:1 Vacuum:1 Sigma:0]".
func (v Vector) String() string {
	if !v.cat.Valid() {
		return "[]"
	}
	names := chargeNames[v.cat]
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range v.counts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s:%d", names[i], n)
	}
	sb.WriteByte(']')

	return sb.String()
}
