// Package sedmaker turns BPASS age-binned spectral libraries into galaxy
// spectral energy distributions (SEDs) under parametric star-formation
// histories.
//
// What is in the box?
//
//	• Age grid: the 52 log-spaced BPASS age bins, their widths and the
//	  age→bin cutoff rule
//	• Star-formation histories: constant, linear and exponential shapes
//	  evaluated on that grid
//	• Convolution: SED[w] = Σ_i table[w][i] · width[i] · SFR[i]
//	• Library access: BPASS label vocabulary, on-disk layout and a
//	  windowed table loader
//	• Grid driver: HCL-described batches with a bounded worker pool,
//	  .sed files, .param catalogs and a YAML manifest
//
// Packages:
//
//	agegrid/       — bin centers, widths, CutoffIndex
//	sfh/           — Spec (Constant, Linear, Exponential), Evaluate
//	matrix/        — Dense storage, MatVec / VecMul kernels
//	spectra/       — Table, Convolve, Synthesize, Spectrum
//	bpass/         — labels, Library, Window, ReadTable
//	grid/          — Config (HCL), Plan, Runner, writers, Manifest
//	cmd/sedmaker/  — the command-line front end
//
// Quick example:
//
//	tbl, _ := bpass.Library{Root: "/data", Version: "2.1", IMF: "imf135_300"}.
//		Load("014", true, bpass.Window{Stop: 6000, Stride: 1})
//	sed, sfr, _ := spectra.Synthesize(sfh.Exponential{Age: 100, Rate0: 1, Tau: 300}, tbl)
//
//	go install github.com/katalvlaran/sedmaker/cmd/sedmaker@latest
package sedmaker
