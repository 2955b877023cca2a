// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the model package.
var (
	// ErrUnknownCategory indicates a Category value or name that is not built in.
	ErrUnknownCategory = errors.New("model: unknown category")

	// ErrUnknownCharge indicates a charge index or name outside the category.
	ErrUnknownCharge = errors.New("model: unknown charge")

	// ErrCategoryMismatch indicates values from two different categories were combined.
	ErrCategoryMismatch = errors.New("model: category mismatch")

	// ErrInvalidCharge indicates the zero Charge was used where a real charge is required.
	ErrInvalidCharge = errors.New("model: invalid charge")

	// ErrEmptyName indicates an anyon was created with an empty name.
	ErrEmptyName = errors.New("model: anyon name is empty")

	// ErrVectorLength indicates a count slice that does not match the category's index space.
	ErrVectorLength = errors.New("model: vector length does not match category")
)

// Category selects one of the built-in fusion categories.
// The zero value is not a category.
type Category uint8

const (
	// Ising is the 3-charge non-abelian category {Psi, Vacuum, Sigma}.
	Ising Category = iota + 1
	// Fibonacci is the 2-charge category {Tau, Vacuum}.
	Fibonacci
)

// chargeNames holds display names in index order, per category.
var chargeNames = map[Category][]string{
	Ising:     {"Psi", "Vacuum", "Sigma"},
	Fibonacci: {"Tau", "Vacuum"},
}

// Categories returns every built-in category in declaration order.
func Categories() []Category {
	return []Category{Ising, Fibonacci}
}

// ParseCategory resolves a case-insensitive category name ("ising", "fibonacci").
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ising":
		return Ising, nil
	case "fibonacci", "fib":
		return Fibonacci, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Valid reports whether c is a built-in category.
func (c Category) Valid() bool {
	_, ok := chargeNames[c]
	return ok
}

// Size returns the length of the category's charge index space (0 if invalid).
func (c Category) Size() int {
	return len(chargeNames[c])
}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Ising:
		return "Ising"
	case Fibonacci:
		return "Fibonacci"
	}

	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Charges lists the category's charges in index order.
func (c Category) Charges() []Charge {
	out := make([]Charge, c.Size())
	for i := range out {
		out[i] = Charge{cat: c, idx: uint8(i)}
	}

	return out
}

// Vacuum returns the category's trivial charge.
func (c Category) Vacuum() Charge {
	switch c {
	case Ising:
		return IsingVacuum
	case Fibonacci:
		return FibonacciVacuum
	}

	return Charge{}
}

// NonAbelian returns the category's non-abelian channel (Sigma or Tau).
func (c Category) NonAbelian() Charge {
	switch c {
	case Ising:
		return Sigma
	case Fibonacci:
		return Tau
	}

	return Charge{}
}

// Fermion returns the category's fermionic channel. Only Ising has one (Psi).
func (c Category) Fermion() (Charge, bool) {
	if c == Ising {
		return Psi, true
	}

	return Charge{}, false
}

// Charge is a topological charge tagged with its category.
// Charge values are comparable and safe to use as map keys.
type Charge struct {
	cat Category
	idx uint8
}

// Built-in charges.
var (
	Psi         = Charge{cat: Ising, idx: 0}
	IsingVacuum = Charge{cat: Ising, idx: 1}
	Sigma       = Charge{cat: Ising, idx: 2}

	Tau             = Charge{cat: Fibonacci, idx: 0}
	FibonacciVacuum = Charge{cat: Fibonacci, idx: 1}
)

// NewCharge builds the charge at index within cat.
func NewCharge(cat Category, index int) (Charge, error) {
	if !cat.Valid() {
		return Charge{}, ErrUnknownCategory
	}
	if index < 0 || index >= cat.Size() {
		return Charge{}, fmt.Errorf("%w: index %d in %s", ErrUnknownCharge, index, cat)
	}

	return Charge{cat: cat, idx: uint8(index)}, nil
}

// ParseCharge resolves a case-insensitive charge name within cat.
// A name that belongs to another category (e.g. "sigma" for Fibonacci) fails.
func ParseCharge(cat Category, name string) (Charge, error) {
	if !cat.Valid() {
		return Charge{}, ErrUnknownCategory
	}
	want := strings.TrimSpace(name)
	for i, n := range chargeNames[cat] {
		if strings.EqualFold(n, want) {
			return Charge{cat: cat, idx: uint8(i)}, nil
		}
	}

	return Charge{}, fmt.Errorf("%w: %q in %s", ErrUnknownCharge, name, cat)
}

// Category returns the charge's category discriminant.
func (c Charge) Category() Category { return c.cat }

// Index returns the charge's position in its category's index space.
func (c Charge) Index() int { return int(c.idx) }

// Valid reports whether c is a real charge (not the zero value).
func (c Charge) Valid() bool {
	return c.cat.Valid() && int(c.idx) < c.cat.Size()
}

// In returns ErrCategoryMismatch unless c belongs to cat.
func (c Charge) In(cat Category) error {
	if !c.Valid() {
		return ErrInvalidCharge
	}
	if c.cat != cat {
		return fmt.Errorf("%w: %s charge used in %s", ErrCategoryMismatch, c.cat, cat)
	}

	return nil
}

// Vector returns the one-hot canonical embedding of c.
// The zero Charge yields the zero (invalid) Vector.
func (c Charge) Vector() Vector {
	if !c.Valid() {
		return Vector{}
	}
	counts := make([]uint64, c.cat.Size())
	counts[c.idx] = 1

	return Vector{cat: c.cat, counts: counts}
}

// String returns the charge name, e.g. "Sigma".
func (c Charge) String() string {
	if !c.Valid() {
		return "None"
	}

	return chargeNames[c.cat][c.idx]
}
