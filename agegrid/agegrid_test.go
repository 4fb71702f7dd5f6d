package agegrid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sedmaker/agegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAgeBinCenters_Shape verifies the 52-point log grid from 1 Myr to 10^5.1 Myr.
func TestAgeBinCenters_Shape(t *testing.T) {
	c := agegrid.AgeBinCenters()
	require.Len(t, c, agegrid.NumBins, "grid must have 52 centers")

	for i := 1; i < len(c); i++ {
		assert.Greater(t, c[i], c[i-1], "centers must be strictly increasing at %d", i)
	}
	assert.InDelta(t, 1.0, c[0], 1e-12, "first center is 10^6 yr = 1 Myr")
	assert.InEpsilon(t, math.Pow(10, 5.1), c[len(c)-1], 1e-12, "last center is 10^11.1 yr")

	// Constant 0.1 dex spacing.
	for i := 1; i < len(c); i++ {
		assert.InDelta(t, agegrid.LogStep, math.Log10(c[i]/c[i-1]), 1e-12, "log spacing at %d", i)
	}
}

// TestAgeBinWidths_Formula checks the first bins against the closed form.
func TestAgeBinWidths_Formula(t *testing.T) {
	w := agegrid.AgeBinWidths()
	require.Len(t, w, agegrid.NumBins)

	assert.InEpsilon(t, math.Pow(10, 6.05), w[0], 1e-12, "dt[0] = 10^6.05")
	assert.InEpsilon(t, math.Pow(10, 6.25)-math.Pow(10, 6.15), w[1], 1e-12, "dt[1]")
	assert.InEpsilon(t, math.Pow(10, 11.25)-math.Pow(10, 11.15), w[51], 1e-12, "dt[51]")
	for i, v := range w {
		assert.Greater(t, v, 0.0, "width %d must be positive", i)
	}
}

// TestAgeBinWidths_Span verifies the widths telescope to the covered span.
func TestAgeBinWidths_Span(t *testing.T) {
	var sum float64
	for _, v := range agegrid.AgeBinWidths() {
		sum += v
	}
	want := math.Pow(10, 6.05) + math.Pow(10, 11.25) - math.Pow(10, 6.15)

	assert.InEpsilon(t, want, sum, 1e-12, "widths must telescope")
	assert.InEpsilon(t, want, agegrid.Span(), 1e-12, "Span agrees with the sum")
}

// TestAccessors_ReturnCopies ensures callers cannot mutate the shared grid.
func TestAccessors_ReturnCopies(t *testing.T) {
	w := agegrid.AgeBinWidths()
	c := agegrid.AgeBinCenters()
	w[0], c[0] = -1, -1

	assert.Greater(t, agegrid.AgeBinWidths()[0], 0.0, "widths must be immutable")
	assert.Greater(t, agegrid.AgeBinCenters()[0], 0.0, "centers must be immutable")
}

// TestCutoffIndex covers the onset index for typical, decade and horizon ages.
func TestCutoffIndex(t *testing.T) {
	cases := []struct {
		name string
		age  float64
		want int
	}{
		{"30Myr", 30, 15},
		{"10Myr decade", 10, 10},
		{"100Myr decade", 100, 20},
		{"1Gyr decade", 1000, 30},
		{"sub-Myr", 0.5, -3},
		{"horizon", math.Pow(10, 5.1), 51},
		{"beyond horizon", 2e5, 54},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, agegrid.CutoffIndex(tc.age))
		})
	}
	assert.Equal(t, agegrid.NumBins-1, agegrid.CutoffIndex(agegrid.HorizonMyr()), "horizon is the last representable age")
}

// TestCutoffIndex_ConsistentWithCenters: an age just past center i admits bins 0..i.
func TestCutoffIndex_ConsistentWithCenters(t *testing.T) {
	c := agegrid.AgeBinCenters()
	for i := 0; i < agegrid.NumBins-1; i++ {
		assert.Equal(t, i+1, agegrid.CutoffIndex(c[i]*1.01), "age just after center %d", i)
	}
}
