// SPDX-License-Identifier: MIT

// Package bpass knows the naming conventions and file layout of BPASS
// spectral libraries.
//
// Label vocabulary:
//
//	metallicity  em5 em4 001 002 003 004 006 010 014 020 030 040
//	IMF          imf_chab100 imf_chab300 imf100_100 imf100_300 imf135_100
//	             imf135_300 imf135all_100 imf170_100 imf170_300
//
// Labels are compared exactly: "14" is not "014", "Em5" is not "em5".
//
// On disk a library lives under
//
//	<Root>/BPASS/BPASSv<Version>_<IMF>/spectra[-bin].z<met>.dat
//
// where each data line holds whitespace-separated numbers: optionally a
// wavelength in Å, then the 52 age-bin fluxes. Load and ReadTable turn such
// a file (or any io.Reader) into a spectra.Table, keeping only the rows
// selected by a Window.
package bpass
