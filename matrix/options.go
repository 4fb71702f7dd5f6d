// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - Policy is per-instance: a Dense remembers whether it rejects NaN/Inf,
//     and Clone preserves it.
package matrix

import "math"

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
// Spectral fluxes must be finite, so this is on.
const DefaultValidateNaNInf = true

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
