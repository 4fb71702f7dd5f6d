package grid_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sedmaker/grid"
	"github.com/katalvlaran/sedmaker/spectra"
)

func TestWriteSED_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.sed")
	s := spectra.Spectrum{Wavelength: []float64{1, 2}, Flux: []float64{0.5, 1234.5}}
	require.NoError(t, grid.WriteSED(path, s))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"1.000000000000000000e+00 5.000000000000000000e-01\n"+
			"2.000000000000000000e+00 1.234500000000000000e+03\n",
		string(got))
}

func TestWriteSED_Mismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.sed")
	err := grid.WriteSED(path, spectra.Spectrum{Wavelength: []float64{1}, Flux: []float64{1, 2}})
	assert.ErrorIs(t, err, spectra.ErrDimensionMismatch)
	assert.NoFileExists(t, path)
}

func TestWriteCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.param")
	sed := filepath.Join(dir, "a.sed")
	require.NoError(t, grid.WriteCatalog(path, []string{sed}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sed+"   AS\n", string(got))

	require.NoError(t, grid.WriteCatalog(path, nil))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}
