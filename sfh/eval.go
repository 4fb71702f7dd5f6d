// SPDX-License-Identifier: MIT

package sfh

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sedmaker/agegrid"
)

const (
	opConstant    = "Constant"
	opLinear      = "Linear"
	opExponential = "Exponential"
	opEvaluate    = "Evaluate"
)

// Evaluate returns the SFR vector of spec on the given bin centers (Myr).
// It validates spec first, so a nil error guarantees a 52-element,
// non-negative, finite vector.
func Evaluate(spec Spec, centers []float64) ([]float64, error) {
	if spec == nil {
		return nil, sfhErrorf(opEvaluate, "nil spec", ErrInvalidParameter)
	}

	return spec.Rates(centers)
}

// EvalConstant applies rate to every bin younger than age, zero elsewhere.
//
// The cutoff is agegrid.CutoffIndex(age): bins 0..imax-1 are populated.
// Errors: ErrInvalidParameter (age<=0, rate<=0, non-finite, age beyond
// the ~126 Gyr horizon), ErrDimensionMismatch (len(centers) != 52).
// Complexity: O(52).
func EvalConstant(age, rate float64, centers []float64) ([]float64, error) {
	if err := validateOnset(opConstant, age, rate); err != nil {
		return nil, err
	}
	if err := validateCenters(opConstant, centers); err != nil {
		return nil, err
	}

	imax := agegrid.CutoffIndex(age)
	out := make([]float64, agegrid.NumBins)
	for i := 0; i < imax; i++ {
		out[i] = rate
	}

	return out, nil
}

// EvalLinear evaluates rate0 + slope·t with t = age − c for every center c.
// Bins with t <= 0 or a non-positive rate are zero.
//
// Errors: as EvalConstant, plus ErrInvalidParameter for a non-finite slope.
// Complexity: O(52).
func EvalLinear(age, rate0, slope float64, centers []float64) ([]float64, error) {
	if err := (Linear{Age: age, Rate0: rate0, Slope: slope}).Validate(); err != nil {
		return nil, err
	}
	if err := validateCenters(opLinear, centers); err != nil {
		return nil, err
	}

	out := make([]float64, agegrid.NumBins)
	var t, r float64
	for i, c := range centers {
		t = age - c
		if t <= 0 {
			continue
		}
		r = rate0 + slope*t
		if r > 0 {
			out[i] = r
		}
	}

	return out, nil
}

// EvalExponential evaluates rate0·exp(t/tau) with t = age − c for every center c.
// Bins with t <= 0 or a non-positive rate are zero.
//
// Errors: as EvalConstant, plus ErrInvalidParameter for tau == 0, a
// non-finite tau, or a rate that overflows to +Inf (|t/tau| too large).
// Complexity: O(52).
func EvalExponential(age, rate0, tau float64, centers []float64) ([]float64, error) {
	if err := (Exponential{Age: age, Rate0: rate0, Tau: tau}).Validate(); err != nil {
		return nil, err
	}
	if err := validateCenters(opExponential, centers); err != nil {
		return nil, err
	}

	out := make([]float64, agegrid.NumBins)
	var t, r float64
	for i, c := range centers {
		t = age - c
		if t <= 0 {
			continue
		}
		r = rate0 * math.Exp(t/tau)
		if math.IsInf(r, 1) {
			return nil, sfhErrorf(opExponential,
				fmt.Sprintf("rate overflows at bin %d (t=%g Myr, tau=%g Myr)", i, t, tau), ErrInvalidParameter)
		}
		if r > 0 {
			out[i] = r
		}
	}

	return out, nil
}

// validateOnset checks the parameters shared by every family.
func validateOnset(op string, age, rate float64) error {
	if !finite(age) || age <= 0 {
		return sfhErrorf(op, fmt.Sprintf("age=%g must be a positive number of Myr", age), ErrInvalidParameter)
	}
	if !finite(rate) || rate <= 0 {
		return sfhErrorf(op, fmt.Sprintf("rate=%g must be positive", rate), ErrInvalidParameter)
	}
	if agegrid.CutoffIndex(age) >= agegrid.NumBins {
		return sfhErrorf(op,
			fmt.Sprintf("age=%g Myr exceeds the grid horizon of %.4g Myr", age, agegrid.HorizonMyr()), ErrInvalidParameter)
	}

	return nil
}

func validateCenters(op string, centers []float64) error {
	if len(centers) != agegrid.NumBins {
		return sfhErrorf(op, fmt.Sprintf("got %d bin centers, want %d", len(centers), agegrid.NumBins), ErrDimensionMismatch)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
