// SPDX-License-Identifier: MIT
// Package sfh: sentinel errors.
// Callers branch with errors.Is; implementations attach parameter context
// with sfhErrorf.

package sfh

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates a non-positive age or rate, a zero or
	// non-finite e-folding time, any NaN/±Inf parameter, an age beyond the
	// grid horizon, or a rate that overflows float64.
	ErrInvalidParameter = errors.New("sfh: invalid parameter")

	// ErrDimensionMismatch indicates the bin-center vector is not sized to
	// the 52-bin age grid.
	ErrDimensionMismatch = errors.New("sfh: dimension mismatch")

	// ErrUnknownFamily indicates an SFH family name outside
	// constant|linear|exponential.
	ErrUnknownFamily = errors.New("sfh: unknown family")
)

// sfhErrorf wraps err as "<op>: <detail>: <err>".
func sfhErrorf(op, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", op, detail, err)
}
