// SPDX-License-Identifier: MIT

package spectra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sedmaker/agegrid"
	"github.com/katalvlaran/sedmaker/matrix"
	"github.com/katalvlaran/sedmaker/sfh"
)

const (
	opConvolve   = "Convolve"
	opSynthesize = "Synthesize"
	opNormalize  = "Normalize"
)

// Spectrum is one integrated SED: Flux[w] at Wavelength[w].
type Spectrum struct {
	Wavelength []float64
	Flux       []float64
}

// Len returns the number of wavelength samples.
func (s Spectrum) Len() int { return len(s.Flux) }

// Normalize returns a copy of s with every flux divided by Flux[index].
// Errors: matrix.ErrOutOfRange for a bad index, ErrInvalidParameter when
// the reference flux is zero or non-finite.
func (s Spectrum) Normalize(index int) (Spectrum, error) {
	if index < 0 || index >= len(s.Flux) {
		return Spectrum{}, spectraErrorf(opNormalize, fmt.Errorf("index %d: %w", index, matrix.ErrOutOfRange))
	}
	ref := s.Flux[index]
	if ref == 0 || math.IsNaN(ref) || math.IsInf(ref, 0) {
		return Spectrum{}, spectraErrorf(opNormalize, fmt.Errorf("reference flux %g: %w", ref, ErrInvalidParameter))
	}

	out := Spectrum{
		Wavelength: append([]float64(nil), s.Wavelength...),
		Flux:       make([]float64, len(s.Flux)),
	}
	for i, f := range s.Flux {
		out.Flux[i] = f / ref
	}

	return out, nil
}

// Convolve integrates table against the SFR vector rates (M☉/yr per bin):
//
//	Spectrum[w] = Σ_i table[w][i] · AgeBinWidths()[i] · rates[i]
//
// Errors:
//   - ErrNilTable for a nil table.
//   - ErrDimensionMismatch when len(rates) != 52.
//   - ErrInvalidParameter for a negative or non-finite rate.
//
// Complexity: O(W·52) time, O(W) space.
func Convolve(rates []float64, table *Table) (Spectrum, error) {
	if !table.valid() {
		return Spectrum{}, spectraErrorf(opConvolve, ErrNilTable)
	}
	flux, err := ConvolveMatrix(rates, table.data)
	if err != nil {
		return Spectrum{}, err
	}

	return Spectrum{Wavelength: table.Wavelength(), Flux: flux}, nil
}

// ConvolveMatrix is Convolve over any W×52 Matrix, returning flux only.
// A table with a column count other than 52 yields ErrDimensionMismatch.
func ConvolveMatrix(rates []float64, m matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, spectraErrorf(opConvolve, ErrNilTable)
	}
	if err := matrix.ValidateVecLen(rates, agegrid.NumBins); err != nil {
		return nil, spectraErrorf(opConvolve, fmt.Errorf("rates: %w", err))
	}
	if err := matrix.ValidateCols(m, agegrid.NumBins); err != nil {
		return nil, spectraErrorf(opConvolve, fmt.Errorf("table: %w", err))
	}
	if err := matrix.ValidateFiniteVec(rates); err != nil {
		return nil, spectraErrorf(opConvolve, fmt.Errorf("rates: %w: %w", err, ErrInvalidParameter))
	}
	for i, r := range rates {
		if r < 0 {
			return nil, spectraErrorf(opConvolve, fmt.Errorf("rates[%d]=%g: %w", i, r, ErrInvalidParameter))
		}
	}

	// Mass formed per bin, then one reduction over the age axis.
	weights, err := matrix.VecMul(agegrid.AgeBinWidths(), rates)
	if err != nil {
		return nil, spectraErrorf(opConvolve, err)
	}
	flux, err := matrix.MatVec(m, weights)
	if err != nil {
		return nil, spectraErrorf(opConvolve, err)
	}

	return flux, nil
}

// Synthesize evaluates spec on the library age grid and convolves the
// result with table. It returns the spectrum and the SFR vector used.
func Synthesize(spec sfh.Spec, table *Table) (Spectrum, []float64, error) {
	rates, err := sfh.Evaluate(spec, agegrid.AgeBinCenters())
	if err != nil {
		return Spectrum{}, nil, spectraErrorf(opSynthesize, err)
	}
	s, err := Convolve(rates, table)
	if err != nil {
		return Spectrum{}, nil, err
	}

	return s, rates, nil
}
