// SPDX-License-Identifier: MIT

// Package agegrid provides the fixed logarithmic age grid of BPASS-style
// spectral libraries: 52 age bins whose representative ages run from
// 10^6 yr to 10^11.1 yr in steps of 0.1 dex.
//
// Two views of the grid are exposed:
//
//	AgeBinWidths()  — the duration of each bin in years, used as the
//	                  integration weight when convolving a star-formation
//	                  history with the library;
//	AgeBinCenters() — the representative age of each bin in Myr, at which
//	                  star-formation histories are evaluated.
//
// The grid is computed once at package initialisation and never mutated;
// accessors return fresh copies, so it is safe to use from any number of
// goroutines without locking.
//
// Usage:
//
//	widths := agegrid.AgeBinWidths()
//	centers := agegrid.AgeBinCenters()
//	imax := agegrid.CutoffIndex(30) // bins younger than 30 Myr: 0..imax-1
package agegrid
