// SPDX-License-Identifier: MIT

package spectra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sedmaker/matrix"
	"github.com/katalvlaran/sedmaker/sfh"
)

var (
	// ErrDimensionMismatch indicates a rate vector or table not sized to the
	// 52 age bins, or a wavelength axis that does not match the row count.
	// It aliases the matrix sentinel so kernel errors match too.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrInvalidParameter indicates a negative or non-finite rate, or a
	// normalisation against a zero flux. Same sentinel as the sfh package.
	ErrInvalidParameter = sfh.ErrInvalidParameter

	// ErrNilTable indicates a nil or zero-value Table.
	ErrNilTable = errors.New("spectra: nil table")
)

// spectraErrorf wraps err with an operation tag.
func spectraErrorf(op string, err error) error {
	return fmt.Errorf("spectra.%s: %w", op, err)
}
