// SPDX-License-Identifier: MIT

package bpass

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sedmaker/agegrid"
	"github.com/katalvlaran/sedmaker/spectra"
)

// maxLineBytes bounds one data line; 53 numbers in %.18e take ~1.3 KiB.
const maxLineBytes = 1 << 20

// ReadTable parses whitespace-delimited rows from r into a spectra.Table.
//
// Implementation:
//   - Stage 1: scan lines; blank lines and lines starting with '#' are not
//     data rows and do not advance the row index.
//   - Stage 2: apply w to the data-row index; stop reading past w.Stop.
//   - Stage 3: parse 52 fluxes (53 fields with wavelengthColumn, the first
//     being the wavelength in Å). Without the column the wavelength of data
//     row i is i+1 Å.
//
// Errors:
//   - ErrInvalidWindow for a bad window.
//   - ErrMalformedTable for a bad number, wrong field count or empty selection.
//   - Read errors from r, wrapped.
//
// Complexity: O(rows·52) time, O(selected·52) space.
func ReadTable(r io.Reader, w Window, wavelengthColumn bool) (*spectra.Table, error) {
	if err := w.Validate(); err != nil {
		return nil, bpassErrorf(opReadTab, w.String(), err)
	}

	want := agegrid.NumBins
	if wavelengthColumn {
		want++
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		rows    [][]float64
		wl      []float64
		lineNo  int
		dataIdx = -1
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		dataIdx++

		keep, done := w.selects(dataIdx)
		if done {
			break
		}
		if !keep {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != want {
			return nil, bpassErrorf(opReadTab, fmt.Sprintf("line %d", lineNo),
				fmt.Errorf("%d fields, want %d: %w", len(fields), want, ErrMalformedTable))
		}

		vals := make([]float64, want)
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, bpassErrorf(opReadTab, fmt.Sprintf("line %d col %d", lineNo, j+1),
					fmt.Errorf("%w: %w", err, ErrMalformedTable))
			}
			vals[j] = v
		}

		if wavelengthColumn {
			wl = append(wl, vals[0])
			rows = append(rows, vals[1:])
		} else {
			wl = append(wl, float64(dataIdx+1))
			rows = append(rows, vals)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, bpassErrorf(opReadTab, fmt.Sprintf("line %d", lineNo+1), err)
	}
	if len(rows) == 0 {
		return nil, bpassErrorf(opReadTab, w.String(), fmt.Errorf("no rows selected: %w", ErrMalformedTable))
	}

	tbl, err := spectra.NewTableFromRows(rows, wl)
	if err != nil {
		return nil, bpassErrorf(opReadTab, w.String(), fmt.Errorf("%w: %w", err, ErrMalformedTable))
	}

	return tbl, nil
}
