// SPDX-License-Identifier: MIT

package sfh

import (
	"fmt"
	"strings"
)

// Family enumerates the supported star-formation-history shapes.
type Family int

const (
	// FamilyConstant is a top-hat SFR.
	FamilyConstant Family = iota
	// FamilyLinear is a linearly rising or falling SFR.
	FamilyLinear
	// FamilyExponential is an exponentially rising or falling SFR.
	FamilyExponential
)

var familyNames = [...]string{
	FamilyConstant:    "constant",
	FamilyLinear:      "linear",
	FamilyExponential: "exponential",
}

// familyShort is the tag used in output file names (SFH_exp_a20_...).
var familyShort = [...]string{
	FamilyConstant:    "const",
	FamilyLinear:      "lin",
	FamilyExponential: "exp",
}

// String returns the canonical lower-case family name.
func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}

	return familyNames[f]
}

// Short returns the abbreviated tag used in file names.
func (f Family) Short() string {
	if f < 0 || int(f) >= len(familyShort) {
		return "unknown"
	}

	return familyShort[f]
}

// ParseFamily maps a name (canonical or short tag, case-insensitive) to a Family.
func ParseFamily(name string) (Family, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i := range familyNames {
		if n == familyNames[i] || n == familyShort[i] {
			return Family(i), nil
		}
	}

	return 0, fmt.Errorf("ParseFamily(%q): %w", name, ErrUnknownFamily)
}

// Families returns all families in declaration order.
func Families() []Family {
	return []Family{FamilyConstant, FamilyLinear, FamilyExponential}
}

// Spec is one fully parameterised star-formation history. The set of
// implementations is closed: Constant, Linear and Exponential.
type Spec interface {
	// Family reports which shape this spec describes.
	Family() Family
	// Validate checks the parameters without evaluating anything.
	Validate() error
	// Rates evaluates the SFR at each of the 52 bin centers (Myr).
	Rates(centers []float64) ([]float64, error)
	// Params returns the numeric parameters keyed by name, for reports.
	Params() map[string]float64
	// String describes the history with its units.
	String() string

	sealed()
}

// Constant forms stars at Rate (M☉/yr) for Age Myr.
type Constant struct {
	Age  float64 // duration of star formation, Myr (>0)
	Rate float64 // M☉/yr (>0)
}

// Linear forms stars at Rate0 + Slope·t, t Myr after the onset, for Age Myr.
type Linear struct {
	Age   float64 // Myr (>0)
	Rate0 float64 // M☉/yr at onset (>0)
	Slope float64 // M☉/yr per Myr, any sign
}

// Exponential forms stars at Rate0·exp(t/Tau), t Myr after the onset, for Age Myr.
type Exponential struct {
	Age   float64 // Myr (>0)
	Rate0 float64 // M☉/yr at onset (>0)
	Tau   float64 // e-folding time, Myr (non-zero; sign selects rising/declining)
}

var (
	_ Spec = Constant{}
	_ Spec = Linear{}
	_ Spec = Exponential{}
)

func (Constant) sealed()    {}
func (Linear) sealed()      {}
func (Exponential) sealed() {}

// Family implements Spec.
func (Constant) Family() Family { return FamilyConstant }

// Family implements Spec.
func (Linear) Family() Family { return FamilyLinear }

// Family implements Spec.
func (Exponential) Family() Family { return FamilyExponential }

// Validate implements Spec.
func (s Constant) Validate() error { return validateOnset(opConstant, s.Age, s.Rate) }

// Validate implements Spec.
func (s Linear) Validate() error {
	if err := validateOnset(opLinear, s.Age, s.Rate0); err != nil {
		return err
	}
	if !finite(s.Slope) {
		return sfhErrorf(opLinear, fmt.Sprintf("slope=%g must be finite", s.Slope), ErrInvalidParameter)
	}

	return nil
}

// Validate implements Spec.
func (s Exponential) Validate() error {
	if err := validateOnset(opExponential, s.Age, s.Rate0); err != nil {
		return err
	}
	if s.Tau == 0 || !finite(s.Tau) {
		return sfhErrorf(opExponential, fmt.Sprintf("tau=%g must be finite and non-zero", s.Tau), ErrInvalidParameter)
	}

	return nil
}

// Rates implements Spec.
func (s Constant) Rates(centers []float64) ([]float64, error) {
	return EvalConstant(s.Age, s.Rate, centers)
}

// Rates implements Spec.
func (s Linear) Rates(centers []float64) ([]float64, error) {
	return EvalLinear(s.Age, s.Rate0, s.Slope, centers)
}

// Rates implements Spec.
func (s Exponential) Rates(centers []float64) ([]float64, error) {
	return EvalExponential(s.Age, s.Rate0, s.Tau, centers)
}

// Params implements Spec.
func (s Constant) Params() map[string]float64 {
	return map[string]float64{"age": s.Age, "rate": s.Rate}
}

// Params implements Spec.
func (s Linear) Params() map[string]float64 {
	return map[string]float64{"age": s.Age, "rate0": s.Rate0, "slope": s.Slope}
}

// Params implements Spec.
func (s Exponential) Params() map[string]float64 {
	return map[string]float64{"age": s.Age, "rate0": s.Rate0, "tau": s.Tau}
}

func (s Constant) String() string {
	return fmt.Sprintf("constant(age=%g Myr, rate=%g)", s.Age, s.Rate)
}

func (s Linear) String() string {
	return fmt.Sprintf("linear(age=%g Myr, rate0=%g, slope=%g)", s.Age, s.Rate0, s.Slope)
}

func (s Exponential) String() string {
	return fmt.Sprintf("exponential(age=%g Myr, rate0=%g, tau=%g Myr)", s.Age, s.Rate0, s.Tau)
}

// New builds the Spec of family f. param is the slope for FamilyLinear,
// tau for FamilyExponential and ignored for FamilyConstant. The result is
// not validated.
func New(f Family, age, rate, param float64) (Spec, error) {
	switch f {
	case FamilyConstant:
		return Constant{Age: age, Rate: rate}, nil
	case FamilyLinear:
		return Linear{Age: age, Rate0: rate, Slope: param}, nil
	case FamilyExponential:
		return Exponential{Age: age, Rate0: rate, Tau: param}, nil
	}

	return nil, fmt.Errorf("New(%s): %w", f, ErrUnknownFamily)
}
