// Package matrix provides the dense, row-major storage and reduction
// kernels behind spectral tables.
//
// The matrix package provides:
//
//   - Dense: a W×N row-major float64 matrix with safe At/Set accessors,
//     a copying Col reader and a finite-only numeric policy.
//   - NewDenseFromRows: ingestion of parsed rows with ragged-row and NaN/Inf
//     detection.
//   - MatVec / VecMul: the two kernels the convolution engine is built from
//     (weight vector = widths ⊙ rates, spectrum = table · weights).
//
// All errors are sentinels from errors.go, wrapped with operation context;
// match them with errors.Is.
package matrix
