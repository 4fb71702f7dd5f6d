// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/sedmaker/matrix"
)

// ExampleMatVec weights two age columns of a three-sample table.
func ExampleMatVec() {
	tbl, err := matrix.NewDenseFromRows([][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	y, err := matrix.MatVec(tbl, []float64{0.5, 0.25})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(y)
	// Output:
	// [3 6 9]
}
