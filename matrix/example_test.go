package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvltsp/matrix"
)

// ExampleDense_Reduce shows how reduction turns an asymmetric cost matrix
// into a lower bound plus a matrix whose every live row and column holds a 0.
func ExampleDense_Reduce() {
	m, err := matrix.NewDenseFrom([][]matrix.Cost{
		{matrix.Inf, 7, 3, 12},
		{3, matrix.Inf, 6, 14},
		{5, 8, matrix.Inf, 6},
		{9, 3, 5, matrix.Inf},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	lb := m.Reduce()
	fmt.Println("lower bound:", lb)
	fmt.Print(m)
	// Output:
	// lower bound: 15
	// [inf, 4, 0, 8]
	// [0, inf, 3, 10]
	// [0, 3, inf, 0]
	// [6, 0, 2, inf]
}
