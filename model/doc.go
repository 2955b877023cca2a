// Package model defines the topological charges, fusion categories and
// anyons that every other anyonfuse package is built on.
//
// What:
//
//   - Category: a closed set of built-in fusion categories.
//     – Ising:     {Psi, Vacuum, Sigma}   (non-abelian, self-dual)
//     – Fibonacci: {Tau, Vacuum}
//   - Charge: a category-tagged charge value. The category discriminant is
//     part of the value, so a Sigma can never be mistaken for a Fibonacci
//     charge; cross-category construction fails at the boundary.
//   - Vector: a charge-count vector, i.e. non-negative multiplicities over a
//     category's charge index space. A single charge embeds as a one-hot
//     Vector; during tree evaluation vectors carry several channels at once.
//   - Anyon: an immutable (name, charge, position) triple.
//
// Index order (stable, used by every fusion table):
//
//	Ising:     Psi=0  Vacuum=1  Sigma=2
//	Fibonacci: Tau=0  Vacuum=1
//
// Errors:
//
//   - ErrUnknownCategory   category value or name is not built in
//   - ErrUnknownCharge     charge index or name is not part of the category
//   - ErrCategoryMismatch  two values from different categories were combined
//   - ErrInvalidCharge     the zero Charge (or zero Anyon) was used
//   - ErrEmptyName         an anyon was created without a name
//   - ErrVectorLength      a count slice does not fit the category
//
// Example:
//
//	a, _ := model.NewAnyon("A", model.Sigma, model.Position{})
//	v := a.Charge().Vector() // [Psi:0 Vacuum:0 Sigma:1]
package model
