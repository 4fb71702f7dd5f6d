// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig indicates an unreadable, undecodable or inconsistent grid file.
	ErrConfig = errors.New("grid: invalid config")

	// ErrEmptyGrid indicates a grid axis with no values.
	ErrEmptyGrid = errors.New("grid: empty grid")

	// ErrDuplicateOutput indicates two planned SEDs sharing one output file.
	ErrDuplicateOutput = errors.New("grid: duplicate output file")
)

// configErrorf tags err as a configuration problem while keeping its own chain.
func configErrorf(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrConfig, field, err)
}
