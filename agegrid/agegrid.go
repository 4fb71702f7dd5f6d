// SPDX-License-Identifier: MIT

package agegrid

import "math"

const (
	// NumBins is the number of age bins in the library.
	NumBins = 52

	// LogStep is the bin spacing in dex.
	LogStep = 0.1

	// LogFirstCenter is log10 of the first bin age in years.
	LogFirstCenter = 6.0

	// LogLastCenter is log10 of the last bin age in years.
	LogLastCenter = 11.1

	// LogFirstEdge is log10 of the upper edge of the first bin in years.
	LogFirstEdge = 6.05

	// YearsPerMyr converts Myr to years.
	YearsPerMyr = 1e6

	// cutoffTol absorbs floating-point noise in log10(age)/LogStep so exact
	// decades (10, 100, 1000 Myr) land on an integer index.
	cutoffTol = 1e-9
)

// widths and centers are filled once by init and only ever copied out.
var (
	widths  [NumBins]float64
	centers [NumBins]float64
)

func init() {
	widths = computeWidths()
	centers = computeCenters()
}

// computeWidths builds the bin widths in years.
//
//	dt[0] = 10^6.05
//	dt[i] = 10^(6.15+0.1i) − 10^(6.05+0.1i),  i = 1..51
func computeWidths() [NumBins]float64 {
	var dt [NumBins]float64
	dt[0] = math.Pow(10, LogFirstEdge)
	for i := 1; i < NumBins; i++ {
		lo := LogFirstEdge + LogStep*float64(i)
		hi := lo + LogStep
		dt[i] = math.Pow(10, hi) - math.Pow(10, lo)
	}

	return dt
}

// computeCenters builds 52 log-spaced ages from 10^6 to 10^11.1 yr, in Myr.
// The step is derived from the end points (linspace semantics) so the last
// center is exactly 10^11.1 yr.
func computeCenters() [NumBins]float64 {
	var c [NumBins]float64
	step := (LogLastCenter - LogFirstCenter) / float64(NumBins-1)
	for i := 0; i < NumBins; i++ {
		c[i] = math.Pow(10, LogFirstCenter+step*float64(i)) / YearsPerMyr
	}

	return c
}

// AgeBinWidths returns the 52 bin widths in years. The slice is a copy.
func AgeBinWidths() []float64 {
	out := make([]float64, NumBins)
	copy(out, widths[:])

	return out
}

// AgeBinCenters returns the 52 bin-center ages in Myr. The slice is a copy.
func AgeBinCenters() []float64 {
	out := make([]float64, NumBins)
	copy(out, centers[:])

	return out
}

// CutoffIndex returns ceil(log10(ageMyr)/LogStep): the number of leading
// bins that are younger than ageMyr. A result >= NumBins means the age lies
// beyond the grid horizon. Ages below 1 Myr yield values <= 0.
// ageMyr must be positive; callers validate.
func CutoffIndex(ageMyr float64) int {
	return int(math.Ceil(math.Log10(ageMyr)/LogStep - cutoffTol))
}

// Span returns the total time covered by the widths, in years.
// The width formula telescopes, so this equals
// 10^6.05 + 10^(6.15+0.1·51) − 10^6.15.
func Span() float64 {
	var s float64
	for _, w := range widths {
		s += w
	}

	return s
}

// HorizonMyr is the largest star-formation duration the grid can represent,
// 10^5.1 Myr (~126 Gyr): CutoffIndex stays below NumBins up to this age.
func HorizonMyr() float64 {
	return math.Pow(10, LogStep*float64(NumBins-1))
}
