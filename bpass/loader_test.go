package bpass_test

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/sedmaker/agegrid"
	"github.com/katalvlaran/sedmaker/bpass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// synthFile renders n data rows; row i has flux i*100+j in bin j.
func synthFile(n int, wavelength bool) string {
	var b strings.Builder
	b.WriteString("# synthetic library\n")
	for i := 0; i < n; i++ {
		if wavelength {
			fmt.Fprintf(&b, "%d.0", (i+1)*10)
		}
		for j := 0; j < agegrid.NumBins; j++ {
			if wavelength || j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%.6e", float64(i*100+j))
		}
		b.WriteByte('\n')
		if i == 1 {
			b.WriteString("\n") // stray blank line
		}
	}

	return b.String()
}

func TestReadTable_Full(t *testing.T) {
	tbl, err := bpass.ReadTable(strings.NewReader(synthFile(5, false)), bpass.FullWindow, false)
	require.NoError(t, err)
	assert.Equal(t, 5, tbl.Rows())
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, tbl.Wavelength())

	col, err := tbl.Column(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 103, 203, 303, 403}, col)
}

func TestReadTable_Window(t *testing.T) {
	w := bpass.Window{Start: 1, Stop: 8, Stride: 3}
	tbl, err := bpass.ReadTable(strings.NewReader(synthFile(10, false)), w, false)
	require.NoError(t, err)

	// rows 1, 4, 7
	assert.Equal(t, []float64{2, 5, 8}, tbl.Wavelength())
	col, err := tbl.Column(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 400, 700}, col)
}

func TestReadTable_WavelengthColumn(t *testing.T) {
	tbl, err := bpass.ReadTable(strings.NewReader(synthFile(3, true)), bpass.FullWindow, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, tbl.Wavelength())

	col, err := tbl.Column(51)
	require.NoError(t, err)
	assert.Equal(t, []float64{51, 151, 251}, col)

	// same content read without the flag has 53 fields per row
	_, err = bpass.ReadTable(strings.NewReader(synthFile(3, true)), bpass.FullWindow, false)
	assert.ErrorIs(t, err, bpass.ErrMalformedTable)
}

func TestReadTable_Malformed(t *testing.T) {
	short := strings.Repeat("1 ", agegrid.NumBins-1) + "\n"
	_, err := bpass.ReadTable(strings.NewReader(short), bpass.FullWindow, false)
	assert.ErrorIs(t, err, bpass.ErrMalformedTable)

	bad := strings.Repeat("1 ", agegrid.NumBins-1) + "x\n"
	_, err = bpass.ReadTable(strings.NewReader(bad), bpass.FullWindow, false)
	assert.ErrorIs(t, err, bpass.ErrMalformedTable)

	nan := strings.Repeat("1 ", agegrid.NumBins-1) + "NaN\n"
	_, err = bpass.ReadTable(strings.NewReader(nan), bpass.FullWindow, false)
	assert.ErrorIs(t, err, bpass.ErrMalformedTable)

	_, err = bpass.ReadTable(strings.NewReader(synthFile(2, false)), bpass.Window{Start: 5, Stride: 1}, false)
	assert.ErrorIs(t, err, bpass.ErrMalformedTable, "empty selection")
}

func TestWindow_Validate(t *testing.T) {
	require.NoError(t, bpass.FullWindow.Validate())
	require.NoError(t, bpass.Window{Start: 0, Stop: 6000, Stride: 1}.Validate())

	for _, w := range []bpass.Window{
		{Start: -1, Stride: 1},
		{Start: 0, Stride: 0},
		{Start: 0, Stride: -2},
		{Start: 10, Stop: 10, Stride: 1},
	} {
		assert.ErrorIs(t, w.Validate(), bpass.ErrInvalidWindow, w.String())
	}

	_, err := bpass.ReadTable(strings.NewReader(""), bpass.Window{}, false)
	assert.ErrorIs(t, err, bpass.ErrInvalidWindow)
}

func TestLibrary_Paths(t *testing.T) {
	lib := bpass.Library{Root: "/data", Version: "2.1", IMF: "imf135_300"}
	require.NoError(t, lib.Validate())
	assert.Equal(t, filepath.Join("/data", "BPASS", "BPASSv2.1_imf135_300"), lib.Dir())
	assert.Equal(t, filepath.Join(lib.Dir(), "spectra-bin.z014.dat"), lib.SpectraPath("014", true))
	assert.Equal(t, filepath.Join(lib.Dir(), "spectra.zem5.dat"), lib.SpectraPath("em5", false))
}

func TestLibrary_Validate(t *testing.T) {
	assert.ErrorIs(t, bpass.Library{IMF: "imf135_300"}.Validate(), bpass.ErrInvalidLibrary)
	assert.ErrorIs(t, bpass.Library{Version: "2.2", IMF: "kroupa"}.Validate(), bpass.ErrUnknownLabel)
}

func TestLibrary_Load(t *testing.T) {
	lib := bpass.Library{Root: t.TempDir(), Version: "2.2", IMF: "imf_chab300"}
	require.NoError(t, os.MkdirAll(lib.Dir(), 0o755))
	require.NoError(t, os.WriteFile(lib.SpectraPath("020", true), []byte(synthFile(4, false)), 0o644))

	tbl, err := lib.Load("020", true, bpass.Window{Stop: 2, Stride: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Rows())

	_, err = lib.Load("020", false, bpass.FullWindow)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = lib.Load("20", true, bpass.FullWindow)
	assert.ErrorIs(t, err, bpass.ErrUnknownLabel)

	_, err = lib.Load("020", true, bpass.Window{})
	assert.ErrorIs(t, err, bpass.ErrInvalidWindow)
}
