package grid_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sedmaker/bpass"
	"github.com/katalvlaran/sedmaker/grid"
	"github.com/katalvlaran/sedmaker/sfh"
)

const fullGrid = `
library {
  root    = "/data"
  version = "2.1"
  imf     = "imf135_300"
}

window {
  start  = 0
  stop   = 6000
  stride = 2
}

output {
  dir     = "SED/imf135_300"
  catalog = "BPASS_imf135_300_expi"
}

metallicities = all_metallicities
binaries      = [false, true]
workers       = 4
on_error      = "skip"

sfh "exponential" {
  ages = [10, 20, 50]
  rate = 1
  taus = [30, -60]
}

sfh "constant" {
  ages = [100]
  rate = 2
}
`

const minimalGrid = `
library {
  root    = "/data"
  version = "2.2"
  imf     = "imf_chab300"
}
output {
  dir     = "out"
  catalog = "cat"
}
metallicities = ["014"]
sfh "lin" {
  ages   = [30]
  rate   = 1
  slopes = [0.01]
}
`

func TestParseConfig_Full(t *testing.T) {
	cfg, err := grid.ParseConfig([]byte(fullGrid), "full.hcl")
	require.NoError(t, err)

	assert.Equal(t, bpass.Library{Root: "/data", Version: "2.1", IMF: "imf135_300"}, cfg.Library)
	assert.Equal(t, bpass.Window{Start: 0, Stop: 6000, Stride: 2}, cfg.Window)
	assert.Equal(t, "SED/imf135_300", cfg.OutputDir)
	assert.Equal(t, "BPASS_imf135_300_expi", cfg.Catalog)
	assert.Equal(t, bpass.Metallicities(), cfg.Metallicities)
	assert.Equal(t, []bool{false, true}, cfg.Binaries)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, grid.PolicySkip, cfg.OnError)
	assert.Equal(t, grid.NoNormalize, cfg.NormalizeRow)

	want := []grid.SFHGrid{
		{Family: sfh.FamilyExponential, Ages: []float64{10, 20, 50}, Rate: 1, Params: []float64{30, -60}},
		{Family: sfh.FamilyConstant, Ages: []float64{100}, Rate: 2},
	}
	if diff := cmp.Diff(want, cfg.SFH); diff != "" {
		t.Errorf("SFH blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := grid.ParseConfig([]byte(minimalGrid), "min.hcl")
	require.NoError(t, err)

	assert.Equal(t, bpass.FullWindow, cfg.Window)
	assert.Equal(t, []bool{false, true}, cfg.Binaries)
	assert.Equal(t, grid.DefaultWorkers, cfg.Workers)
	assert.Equal(t, grid.PolicyAbort, cfg.OnError)
	require.Len(t, cfg.SFH, 1)
	assert.Equal(t, sfh.FamilyLinear, cfg.SFH[0].Family)
	assert.Equal(t, []float64{0.01}, cfg.SFH[0].Params)
}

func TestParseConfig_NormalizeAndWindowStride(t *testing.T) {
	src := `
library {
  root    = "."
  version = "2.2"
  imf     = "imf100_100"
  wavelength_column = true
}
window {
  stop = 100
}
output {
  dir           = "out"
  catalog       = "cat"
  normalize_row = 5
}
metallicities = ["em5", "040"]
binaries      = [true]
sfh "constant" {
  ages = [10]
  rate = 1
}
`
	cfg, err := grid.ParseConfig([]byte(src), "n.hcl")
	require.NoError(t, err)
	assert.True(t, cfg.Library.WavelengthColumn)
	assert.Equal(t, bpass.Window{Start: 0, Stop: 100, Stride: 1}, cfg.Window)
	assert.Equal(t, 5, cfg.NormalizeRow)
	assert.Equal(t, []bool{true}, cfg.Binaries)
}

func TestParseConfig_Errors(t *testing.T) {
	base := func(body string) string {
		return `
library {
  root    = "/data"
  version = "2.1"
  imf     = "imf135_300"
}
output {
  dir     = "out"
  catalog = "cat"
}
` + body
	}

	cases := []struct {
		name string
		src  string
		is   []error
	}{
		{"syntax", "library {", []error{grid.ErrConfig}},
		{"unknown attribute", base(`metallicities = ["014"]
colour = "red"
sfh "constant" {
  ages = [1]
  rate = 1
}`), []error{grid.ErrConfig}},
		{"unknown metallicity", base(`metallicities = ["14"]
sfh "constant" {
  ages = [1]
  rate = 1
}`), []error{grid.ErrConfig, bpass.ErrUnknownLabel}},
		{"unknown family", base(`metallicities = ["014"]
sfh "delayed" {
  ages = [1]
  rate = 1
}`), []error{grid.ErrConfig, sfh.ErrUnknownFamily}},
		{"exponential without taus", base(`metallicities = ["014"]
sfh "exponential" {
  ages = [1]
  rate = 1
}`), []error{grid.ErrConfig, grid.ErrEmptyGrid}},
		{"constant with taus", base(`metallicities = ["014"]
sfh "constant" {
  ages = [1]
  rate = 1
  taus = [5]
}`), []error{grid.ErrConfig}},
		{"no sfh", base(`metallicities = ["014"]`), []error{grid.ErrConfig, grid.ErrEmptyGrid}},
		{"empty metallicities", base(`metallicities = []
sfh "constant" {
  ages = [1]
  rate = 1
}`), []error{grid.ErrConfig, grid.ErrEmptyGrid}},
		{"duplicate metallicity", base(`metallicities = ["014", "014"]
sfh "constant" {
  ages = [1]
  rate = 1
}`), []error{grid.ErrConfig}},
		{"bad policy", base(`metallicities = ["014"]
on_error = "retry"
sfh "constant" {
  ages = [1]
  rate = 1
}`), []error{grid.ErrConfig}},
		{"zero workers", base(`metallicities = ["014"]
workers = 0
sfh "constant" {
  ages = [1]
  rate = 1
}`), []error{grid.ErrConfig}},
		{"zero stride", base(`metallicities = ["014"]
window {
  stride = 0
}
sfh "constant" {
  ages = [1]
  rate = 1
}`), []error{grid.ErrConfig, bpass.ErrInvalidWindow}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.ParseConfig([]byte(tc.src), tc.name+".hcl")
			require.Error(t, err)
			for _, target := range tc.is {
				assert.ErrorIs(t, err, target)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.hcl")
	require.NoError(t, os.WriteFile(path, []byte(minimalGrid), 0o644))

	cfg, err := grid.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "cat", cfg.Catalog)

	_, err = grid.LoadConfig(filepath.Join(dir, "missing.hcl"))
	assert.ErrorIs(t, err, grid.ErrConfig)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestEvalContext_Vocabulary(t *testing.T) {
	ctx := grid.EvalContext()
	mets := ctx.Variables["all_metallicities"]
	imfs := ctx.Variables["all_imfs"]
	assert.Equal(t, len(bpass.Metallicities()), mets.LengthInt())
	assert.Equal(t, len(bpass.IMFs()), imfs.LengthInt())
}
