// Package scenario reads and writes fusion-tree scenario files.
//
// A scenario declares a category, an ordered list of anyons and a list of
// time-stamped fusion operations. TOML and YAML carry the same fields:
//
//	model = "ising"
//
//	[[anyons]]
//	name = "A"
//	charge = "sigma"
//	position = [0.0, 0.0]
//
//	[[operations]]
//	time = 1
//	pair = [0, 1]
//
// Build replays a scenario through a fresh *state.State. Illegal fusions are
// collected as Rejections; malformed input (unknown charge, anyon1 ≥ anyon2,
// index out of range) aborts with an error. Basis returns the operations as
// a basis.Basis without replaying them.
//
// Watch re-reads a scenario file every time it is written.
package scenario
