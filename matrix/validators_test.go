// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sedmaker/matrix"
	"github.com/stretchr/testify/assert"
)

func TestValidateNotNil(t *testing.T) {
	var typedNil *matrix.Dense
	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	assert.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateCols(t *testing.T) {
	m := MustDense(t, 2, 52)
	assert.NoError(t, matrix.ValidateCols(m, 52))
	assert.ErrorIs(t, matrix.ValidateCols(m, 51), matrix.ErrDimensionMismatch)
}

func TestValidateVecLen(t *testing.T) {
	assert.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	assert.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateFiniteVec(t *testing.T) {
	assert.NoError(t, matrix.ValidateFiniteVec([]float64{0, -1, 1e300}))
	assert.ErrorIs(t, matrix.ValidateFiniteVec([]float64{0, math.NaN()}), matrix.ErrNaNInf)
	assert.ErrorIs(t, matrix.ValidateFiniteVec([]float64{math.Inf(1)}), matrix.ErrNaNInf)
}
