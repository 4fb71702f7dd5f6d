// SPDX-License-Identifier: MIT

package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/sedmaker/spectra"
)

// catalogTag marks an entry as an SED template in the .param catalogs.
const catalogTag = "AS"

// WriteSED writes s to path as "wavelength flux" rows in %.18e, matching
// numpy.savetxt output so existing fitting codes read it unchanged.
func WriteSED(path string, s spectra.Spectrum) (err error) {
	if len(s.Wavelength) != len(s.Flux) {
		return fmt.Errorf("grid.WriteSED(%s): %d wavelengths for %d fluxes: %w",
			path, len(s.Wavelength), len(s.Flux), spectra.ErrDimensionMismatch)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("grid.WriteSED: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("grid.WriteSED: %w", cerr)
		}
	}()

	if err = EncodeSED(f, s); err != nil {
		return fmt.Errorf("grid.WriteSED(%s): %w", path, err)
	}

	return nil
}

// EncodeSED writes the WriteSED rows of s to out.
func EncodeSED(out io.Writer, s spectra.Spectrum) error {
	if len(s.Wavelength) != len(s.Flux) {
		return fmt.Errorf("%d wavelengths for %d fluxes: %w", len(s.Wavelength), len(s.Flux), spectra.ErrDimensionMismatch)
	}

	w := bufio.NewWriter(out)
	buf := make([]byte, 0, 64)
	for i := range s.Flux {
		buf = strconv.AppendFloat(buf[:0], s.Wavelength[i], 'e', 18, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, s.Flux[i], 'e', 18, 64)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return w.Flush()
}

// WriteCatalog writes one "<absolute path>   AS" line per SED file.
func WriteCatalog(path string, files []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("grid.WriteCatalog: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("grid.WriteCatalog: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, sed := range files {
		abs, aerr := filepath.Abs(sed)
		if aerr != nil {
			return fmt.Errorf("grid.WriteCatalog(%s): %w", sed, aerr)
		}
		if _, err = fmt.Fprintf(w, "%s   %s\n", abs, catalogTag); err != nil {
			return fmt.Errorf("grid.WriteCatalog(%s): %w", path, err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("grid.WriteCatalog(%s): %w", path, err)
	}

	return nil
}
