// Package sfh evaluates analytic star-formation histories (SFH) on the
// 52-bin library age grid.
//
// 🚀 What is an SFH here?
//
//	A star-formation rate (M☉/yr) as a function of lookback time. A galaxy
//	observed `Age` Myr after star formation switched on contains, in the
//	age bin centered at c Myr, stars that formed t = Age − c Myr after the
//	onset. Bins with c ≥ Age were never populated.
//
// ✨ Families (a closed, tagged set):
//   - Constant{Age, Rate}            — Rate for every populated bin.
//   - Linear{Age, Rate0, Slope}      — Rate0 + Slope·t, clamped at zero.
//   - Exponential{Age, Rate0, Tau}   — Rate0·exp(t/Tau); Tau>0 rises toward
//     the present, Tau<0 declines.
//
// Every family shares one zero-clamp policy: a bin in the future of the
// onset, or whose raw rate is non-positive, contributes exactly zero.
//
// ⚙️ Usage:
//
//	centers := agegrid.AgeBinCenters()
//	rates, err := sfh.Evaluate(sfh.Exponential{Age: 20, Rate0: 1, Tau: -5}, centers)
//	if errors.Is(err, sfh.ErrInvalidParameter) {
//	  // reject this grid point
//	}
//
// All validation happens before any computation and is reported through
// the sentinels in errors.go; nothing is silently defaulted.
package sfh
