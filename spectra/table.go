// SPDX-License-Identifier: MIT

package spectra

import (
	"fmt"

	"github.com/katalvlaran/sedmaker/agegrid"
	"github.com/katalvlaran/sedmaker/matrix"
)

const (
	opNewTable = "NewTable"
	opColumn   = "Column"
)

// Table is a W×52 spectral library slice with its wavelength axis (Å).
type Table struct {
	data       *matrix.Dense
	wavelength []float64
}

// NewTable wraps data, which must have exactly agegrid.NumBins columns.
// wavelength must have one entry per row; nil means 1, 2, …, W Å.
// The Dense is retained (not copied); the wavelength slice is copied.
func NewTable(data *matrix.Dense, wavelength []float64) (*Table, error) {
	if data == nil {
		return nil, spectraErrorf(opNewTable, ErrNilTable)
	}
	if err := matrix.ValidateCols(data, agegrid.NumBins); err != nil {
		return nil, spectraErrorf(opNewTable, err)
	}

	rows := data.Rows()
	wl := make([]float64, rows)
	if wavelength == nil {
		for i := range wl {
			wl[i] = float64(i + 1)
		}
	} else {
		if err := matrix.ValidateVecLen(wavelength, rows); err != nil {
			return nil, spectraErrorf(opNewTable, fmt.Errorf("wavelength axis: %w", err))
		}
		copy(wl, wavelength)
	}

	return &Table{data: data, wavelength: wl}, nil
}

// NewTableFromRows copies rows (each of 52 fluxes) into a new Table.
func NewTableFromRows(rows [][]float64, wavelength []float64) (*Table, error) {
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, spectraErrorf(opNewTable, err)
	}

	return NewTable(d, wavelength)
}

// Rows returns the number of wavelength samples W.
func (t *Table) Rows() int { return t.data.Rows() }

// Cols returns the number of age bins (always agegrid.NumBins).
func (t *Table) Cols() int { return t.data.Cols() }

// Wavelength returns a copy of the wavelength axis.
func (t *Table) Wavelength() []float64 {
	out := make([]float64, len(t.wavelength))
	copy(out, t.wavelength)

	return out
}

// Column returns a copy of the single-population spectrum of age bin i.
func (t *Table) Column(i int) ([]float64, error) {
	col, err := t.data.Col(i)
	if err != nil {
		return nil, spectraErrorf(opColumn, err)
	}

	return col, nil
}

func (t *Table) valid() bool { return t != nil && t.data != nil }
