// SPDX-License-Identifier: MIT

package bpass

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLabel indicates a metallicity or IMF label outside the BPASS vocabulary.
	ErrUnknownLabel = errors.New("bpass: unknown label")

	// ErrInvalidLibrary indicates a Library with missing fields.
	ErrInvalidLibrary = errors.New("bpass: invalid library")

	// ErrInvalidWindow indicates a negative start, a non-positive stride or stop <= start.
	ErrInvalidWindow = errors.New("bpass: invalid window")

	// ErrMalformedTable indicates unparsable numbers, a wrong column count or
	// a window that selects no rows.
	ErrMalformedTable = errors.New("bpass: malformed table")
)

// bpassErrorf wraps err with an operation tag and detail.
func bpassErrorf(op, detail string, err error) error {
	return fmt.Errorf("bpass.%s(%s): %w", op, detail, err)
}
