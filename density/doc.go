// Package density provides the discretely sampled probability density
// value type produced by calibration, and the analyzer operations that
// summarize one: point estimates, highest-posterior-density (HPD)
// interval sets, and overlap between two densities.
//
// What
//
//   - Density: parallel (x, p) columns with x strictly increasing and
//     p ≥ 0. A value type: no identity, freely copyable, produced
//     fresh by every calculation. Operations return new densities.
//   - Point estimates: probability-weighted mean, interpolated median
//     of the cumulative curve, mode (first maximum), and the midpoint
//     of the HPD span at a coverage.
//   - HPD: rank grid points by probability descending, accumulate mass
//     to the requested coverage, then read the surviving points back in
//     age order as disjoint contiguous intervals. Multi-modal curves
//     (wiggles) routinely yield 1–4 intervals at 95%.
//   - Overlap: resample two densities onto a common support, report the
//     pointwise-minimum shared mass and whether the HPD sets intersect.
//
// Regridding policy
//
//	HPD first re-grids the density to a constant step so each point
//	carries comparable mass. When the natural support would produce
//	fewer than MinBins points, the density is re-gridded to a fixed
//	larger bin count instead, avoiding degenerate single-bin ranges
//	for very narrow distributions.
//
// This package knows nothing about curves or radiocarbon: any producer
// of a valid Density can use the analyzer.
package density
