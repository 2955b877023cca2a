package basis_test

import (
	"fmt"

	"github.com/katalvlaran/anyonfuse/basis"
	"github.com/katalvlaran/anyonfuse/state"
)

// ExampleBasis_Validate shows that a basis is never reordered.
func ExampleBasis_Validate() {
	p := state.MustFusionPair
	tree := basis.New([]state.Operation{
		{Time: 1, Pair: p(0, 1)},
		{Time: 1, Pair: p(2, 3)},
		{Time: 2, Pair: p(0, 2)},
	})
	fmt.Println(tree.Verify(4))

	shuffled := basis.New([]state.Operation{
		{Time: 2, Pair: p(0, 2)},
		{Time: 1, Pair: p(0, 1)},
		{Time: 1, Pair: p(2, 3)},
	})
	fmt.Println(shuffled.Validate(4))

	// Output:
	// true
	// basis: operations not sorted by time: op 1 (t=1 (0,1)) after t=2
}

// ExampleCount counts the fusion bases of four anyons.
func ExampleCount() {
	n, _ := basis.Count(4)
	fmt.Println(n)

	// Output:
	// 7
}
