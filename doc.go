// Package anyonfuse is an engine for anyon fusion trees: it checks that pairwise
// fusions form a legal planar tree, evaluates a category's fusion rules along
// that tree, and extracts the fusions that encode a logical qubit.
//
// What is inside?
//
//	Two built-in categories:
//		• Ising      {Psi, Vacuum, Sigma}   σ⊗σ = 1 + ψ
//		• Fibonacci  {Tau, Vacuum}          τ⊗τ = 1 + τ
//
// Everything is organised in small subpackages, leaves first:
//
//	model/         categories, charges, charge-count vectors, anyons
//	state/         FusionPair, Operation and the append-only operation ledger
//	rules/         structure constants N[i][j][k] and the bilinear fusion map
//	basis/         stateless basis validator, basis enumeration and counting
//	fusion/        level view, rendering, evolution, reachability, qubit encoding
//	statevec/      normalised 2^q amplitude container
//	scenario/      TOML/YAML scenario files, file watching
//	config/        viper-backed CLI settings
//	cmd/anyonfuse  the command-line front end
//
// Quick example: four Sigma anyons fused as (0,1),(2,3) then (0,2):
//
//	A B C D
//	| | | |
//	|─| |─|
//	|───|
//	|
//
// totals [Psi:2 Vacuum:2 Sigma:0] and encodes one qubit in the (0,1) outcome.
//
//	go install github.com/katalvlaran/anyonfuse/cmd/anyonfuse@latest
package anyonfuse
