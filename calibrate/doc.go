// Package calibrate implements the calibration engine: the conversion
// of an uncalibrated radiocarbon measurement into a probability
// distribution over calendar ages, against a piecewise-linear
// calibration curve.
//
// Algorithm
//
//  1. Apply the reservoir/regional offset: y′ = y − ΔR,
//     σ′ = √(σ² + σ_ΔR²).
//  2. Resolve the working curve: the table as-is for C14-age input,
//     its InF14C/InPMC copy for fraction- or percent-modern input. When
//     no curve is supplied at all, a synthetic identity curve spanning
//     y′ ± 4σ′ degenerates calibration into placing the plain input
//     distribution on a calendar axis.
//  3. Detect postbomb intrusion: when the 3σ′ envelope reaches past the
//     modern end of a curve with no postbomb rows, fail with
//     ErrPostbombRequired unless suppressed with WithPostbomb.
//  4. Evaluate the likelihood at every curve row, under the normal
//     model (measurement and curve sigmas added in quadrature) or the
//     heavier-tailed Student-t model with shape parameters a, b
//     (defaults 3 and 4), which downweights outliers.
//  5. Re-interpolate onto a regular grid when a step is requested.
//  6. Normalize to total mass 1 (default on).
//  7. Trim tail points below threshold × peak; renormalize over the
//     truncated support (deliberately a second, different pass; disable
//     with WithoutRenormalizeAfterTrim for historical parity).
//  8. Optionally transform the axis from cal BP to BC/AD.
//
// Errors:
//
//	– ErrBadMeasurement     non-positive measurement sigma.
//	– ErrPostbombRequired   recoverable: retry with WithPostbomb or a
//	                        postbomb-glued table.
//	– ErrDegenerateDensity  the likelihood places zero mass on the curve.
//
// A measurement may legitimately yield a single-point density (a very
// narrow or off-plateau date); the engine never returns an empty one.
package calibrate
