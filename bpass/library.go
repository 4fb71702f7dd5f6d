// SPDX-License-Identifier: MIT

package bpass

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sedmaker/spectra"
)

const (
	opLoad     = "Load"
	opValidate = "Validate"
	opReadTab  = "ReadTable"
)

// Library locates one BPASS release/IMF combination on disk.
type Library struct {
	Root             string // directory that contains the BPASS/ tree
	Version          string // release tag, e.g. "2.1" or "2.2.1"
	IMF              string // IMF label, see IMFs()
	WavelengthColumn bool   // files carry a leading wavelength column
}

// Validate checks that the library names a known IMF and a version.
func (l Library) Validate() error {
	if l.Version == "" {
		return bpassErrorf(opValidate, "version", fmt.Errorf("empty version: %w", ErrInvalidLibrary))
	}
	if err := CheckIMF(l.IMF); err != nil {
		return bpassErrorf(opValidate, "imf", err)
	}

	return nil
}

// Dir returns <Root>/BPASS/BPASSv<Version>_<IMF>.
func (l Library) Dir() string {
	return filepath.Join(l.Root, "BPASS", fmt.Sprintf("BPASSv%s_%s", l.Version, l.IMF))
}

// SpectraFile returns the file name for a metallicity and population type:
// spectra-bin.z<met>.dat for binaries, spectra.z<met>.dat otherwise.
func SpectraFile(metallicity string, binaries bool) string {
	if binaries {
		return "spectra-bin.z" + metallicity + ".dat"
	}

	return "spectra.z" + metallicity + ".dat"
}

// SpectraPath joins Dir and SpectraFile.
func (l Library) SpectraPath(metallicity string, binaries bool) string {
	return filepath.Join(l.Dir(), SpectraFile(metallicity, binaries))
}

// Load reads the spectra file for (metallicity, binaries) through window.
//
// Errors: ErrUnknownLabel, ErrInvalidLibrary, ErrInvalidWindow,
// ErrMalformedTable, and wrapped *fs.PathError from os.Open.
func (l Library) Load(metallicity string, binaries bool, w Window) (*spectra.Table, error) {
	if err := CheckMetallicity(metallicity); err != nil {
		return nil, bpassErrorf(opLoad, metallicity, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, bpassErrorf(opLoad, metallicity, err)
	}

	path := l.SpectraPath(metallicity, binaries)
	f, err := os.Open(path)
	if err != nil {
		return nil, bpassErrorf(opLoad, metallicity, err)
	}
	defer f.Close()

	tbl, err := ReadTable(f, w, l.WavelengthColumn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return tbl, nil
}
