package fusion_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/anyonfuse/fusion"
	"github.com/katalvlaran/anyonfuse/model"
	"github.com/katalvlaran/anyonfuse/state"
)

// ExampleFusion_QubitEncoding builds the four-Sigma tree: pairs (0,1) and (2,3)
// fuse first, then the two merged anyons fuse at slot 0.
func ExampleFusion_QubitEncoding() {
	s := state.New()
	for _, name := range []string{"A", "B", "C", "D"} {
		_ = s.AddAnyon(model.MustAnyon(name, model.Sigma, model.Position{}))
	}
	_, _ = s.AddOperation(0, state.MustFusionPair(0, 1))
	_, _ = s.AddOperation(0, state.MustFusionPair(2, 3))
	_, _ = s.AddOperation(1, state.MustFusionPair(0, 2))

	f, _ := fusion.New(s)
	total, _ := f.TotalCharge()
	enc, _ := f.QubitEncoding()
	for _, row := range strings.Split(f.String(), "\n") {
		fmt.Println(strings.TrimRight(row, " "))
	}
	fmt.Println(total)
	fmt.Println(enc)

	// Output:
	// A B C D
	// | | | |
	// |─| |─|
	// |───|
	// |
	// [Psi:2 Vacuum:2 Sigma:0]
	// [(0,1)]
}

// ExampleMinimumPossibleAnyons lists the admissible counts for one qubit.
func ExampleMinimumPossibleAnyons() {
	ising, _ := fusion.MinimumPossibleAnyons(model.Ising, 1)
	fib, _ := fusion.MinimumPossibleAnyons(model.Fibonacci, 1)
	fmt.Println(ising, fib)

	// Output:
	// [3 4] [4 5 6 7]
}
