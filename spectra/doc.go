// SPDX-License-Identifier: MIT

// Package spectra holds spectral tables and the convolution engine that
// turns a star-formation history into an integrated spectrum.
//
// A Table is a W×52 matrix: row w is one wavelength sample, column i is the
// flux per unit star formation of a simple stellar population in age bin i.
// Convolve weights each column by the mass formed in that bin,
//
//	weight[i]   = AgeBinWidths()[i] · rates[i]        (years · M☉/yr)
//	Spectrum[w] = Σ_i table[w][i] · weight[i]
//
// which is one matrix–vector product, O(W·52).
//
// Tables are borrowed read-only for the duration of a call and may be
// shared between goroutines; Convolve never mutates its inputs.
package spectra
