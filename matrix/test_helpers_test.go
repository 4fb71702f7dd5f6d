// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the Dense storage and kernels.
//   • Keep all data finite unless a test targets the numeric policy.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/sedmaker/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto the At-based fallback path.
type hide struct{ matrix.Matrix }

// MustDense returns an r×c zero Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// seq fills an r×c Dense with 1, 2, 3, … in row-major order.
func seq(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, float64(i*c+j+1))
		}
	}

	return m
}
