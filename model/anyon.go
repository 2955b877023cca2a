package model

import "fmt"

// Position is a decorative 2D coordinate. No invariant depends on it.
type Position struct {
	X, Y float64
}

// Anyon is an immutable quasiparticle: a display name, a charge and a position.
// Fusion never mutates an Anyon; derived charges live in Vectors.
type Anyon struct {
	name     string
	charge   Charge
	position Position
}

// NewAnyon validates and builds an Anyon.
//
// Errors:
//   - ErrEmptyName     if name == "".
//   - ErrInvalidCharge if charge is the zero Charge.
func NewAnyon(name string, charge Charge, position Position) (Anyon, error) {
	if name == "" {
		return Anyon{}, ErrEmptyName
	}
	if !charge.Valid() {
		return Anyon{}, ErrInvalidCharge
	}

	return Anyon{name: name, charge: charge, position: position}, nil
}

// MustAnyon is NewAnyon that panics on error.
func MustAnyon(name string, charge Charge, position Position) Anyon {
	a, err := NewAnyon(name, charge, position)
	if err != nil {
		panic(err)
	}

	return a
}

// Name returns the anyon's label.
func (a Anyon) Name() string { return a.name }

// Charge returns the anyon's initial charge.
func (a Anyon) Charge() Charge { return a.charge }

// Position returns the anyon's coordinates.
func (a Anyon) Position() Position { return a.position }

// Valid reports whether a was built by NewAnyon (non-zero).
func (a Anyon) Valid() bool { return a.name != "" && a.charge.Valid() }

// String renders "Anyon: name=A, charge=Sigma, position=(0, 0)".
func (a Anyon) String() string {
	return fmt.Sprintf("Anyon: name=%s, charge=%s, position=(%g, %g)",
		a.name, a.charge, a.position.X, a.position.Y)
}
