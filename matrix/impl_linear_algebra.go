// SPDX-License-Identifier: MIT
// Package matrix provides the reduction kernels used by the convolution
// engine: matrix–vector product and element-wise vector product. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Notes:
//   - All kernels use the central validators and wrap errors via matrixErrorf.
//   - *Dense operands take a flat fast path; other Matrix values fall back to At.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec = "MatVec"
	opVecMul = "VecMul"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order, so repeated calls are bit-identical.
// Complexity: Time O(r*c), Space O(r) for y.
//
// For a spectral table (rows = wavelengths, cols = age bins) and x = mass
// weight per age bin, y is the integrated spectrum.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Validate x is not nil and matches the number of columns.
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip empty age bins; most SFHs are zero past their onset
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv, xv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			xv = x[j]
			if xv == 0 {
				continue
			}
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * xv
		}
	}

	return y, nil
}

// VecMul returns the element-wise product z[i] = a[i]*b[i].
// Both vectors must be non-nil and of equal length. Inputs are not mutated.
// Complexity: Time O(n), Space O(n).
func VecMul(a, b []float64) ([]float64, error) {
	if err := ValidateVecLen(a, len(b)); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	if b == nil {
		return nil, matrixErrorf(opVecMul, ErrNilMatrix)
	}
	z := make([]float64, len(a))
	for i := range a {
		z[i] = a[i] * b[i]
	}

	return z, nil
}
