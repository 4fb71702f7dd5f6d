// SPDX-License-Identifier: MIT

// Package grid runs batches of SED syntheses described by an HCL file.
//
// A grid file names one BPASS library, a row window, an output location and
// the cartesian product to compute:
//
//	metallicity × binaries × sfh block × age × (tau | slope)
//
// Plan expands that product in a fixed order and derives one output file
// name per job. Runner loads every (metallicity, binaries) table once,
// synthesizes its jobs on a bounded errgroup, writes one two-column .sed
// file per job, then the .param catalogs and a YAML manifest.
//
// Failures follow the configured policy: "abort" stops at the first error,
// "skip" logs it, records it in the manifest and carries on.
package grid
