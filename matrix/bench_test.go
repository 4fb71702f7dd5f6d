// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/sedmaker/matrix"
)

// BenchmarkMatVec_Dense measures the flat path on a library-sized table.
func BenchmarkMatVec_Dense(b *testing.B) {
	m := seq(b, 6000, 52)
	x := make([]float64, 52)
	for j := range x {
		x[j] = 1
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.MatVec(m, x); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMatVec_Fallback measures the interface path on the same table.
func BenchmarkMatVec_Fallback(b *testing.B) {
	m := hide{seq(b, 6000, 52)}
	x := make([]float64, 52)
	for j := range x {
		x[j] = 1
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.MatVec(m, x); err != nil {
			b.Fatal(err)
		}
	}
}
