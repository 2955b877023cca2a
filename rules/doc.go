// Package rules implements the fusion-rule algebra of the built-in categories.
//
// What:
//
//	A fusion category is captured by its structure constants N[i][j][k]:
//	"charge i fused with charge j yields charge k with multiplicity N[i][j][k]".
//	N is symmetric in (i, j). Fusing two charge-count vectors is the bilinear map
//
//	  out[k] = Σ_i Σ_j N[i][j][k] · a[i] · b[j]
//
//	(outer product of a and b contracted with N). Multiplicities accumulate;
//	nothing is renormalised.
//
// Built-in tables:
//
//	Ising      ⊗ │ Psi     Vacuum  Sigma
//	─────────────┼───────────────────────────────
//	Psi          │ Vacuum  Psi     Sigma
//	Vacuum       │ Psi     Vacuum  Sigma
//	Sigma        │ Sigma   Sigma   Vacuum+Psi
//
//	Fibonacci  ⊗ │ Tau         Vacuum
//	─────────────┼───────────────────
//	Tau          │ Vacuum+Tau  Tau
//	Vacuum       │ Tau         Vacuum
//
// Both tables are commutative and associative, so folding a list of charges
// gives the same total regardless of tree shape. FoldSupport answers the
// weaker "which charges are reachable" question without counting, so it
// never overflows.
//
// Errors:
//
//   - ErrUnsupportedCategory  no table exists for the category
//   - ErrEmptyFold            Fold called with no vectors
//   - ErrOverflow             a multiplicity exceeded uint64
//   - model.ErrCategoryMismatch vectors of different categories were combined
//
// Complexity: Apply is O(d³) for a category of d charges (d ≤ 3).
package rules
