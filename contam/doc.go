// Package contam models carbon contamination as a linear mixture in
// fraction-modern space, with analytic or Monte Carlo uncertainty
// propagation.
//
// Forward model
//
//	F_obs = (1 − frac)·F_true + frac·F_contam
//
// Contaminate applies the forward model: a true age plus a
// contamination fraction and contaminant activity yields the observed
// age. Clean inverts it for the true age given a known contamination
// percentage. MuckFraction and MuckActivity solve the same equation
// for the contamination required to explain an observed/target age
// pair: direct algebraic inverses, no search. A contaminant known
// only by its own age converts to activity with realm.C14ToF14CPoint.
//
// Propagation modes
//
//   - Analytic: first-order delta-method propagation through the
//     mixture partial derivatives. Fast and exact for small relative
//     uncertainties.
//   - Monte Carlo: N independent normal draws per input parameter
//     (default 10000), mixed pointwise and summarized as mean/sd. The
//     linearization behind the analytic mode breaks down when any
//     input uncertainty is large relative to its mean or the fraction
//     sits near 0 or 1, so the engine switches to Monte Carlo on its
//     own when any input's coefficient of variation exceeds the
//     configured threshold (default 0.3) or the fraction is within one
//     sigma of either bound. WithMonteCarlo forces the switch.
//
// Determinism
//
//	Monte Carlo draws come from an injected seedable source
//	(golang.org/x/exp/rand); seed 0 selects a fixed default seed, so
//	default runs are reproducible. Draws that produce a non-positive
//	mixture are discarded and reported in Result.Warnings; if every
//	draw is discarded the engine degrades to analytic propagation with
//	a warning rather than failing.
//
// No curve is involved anywhere in this package: contamination is pure
// realm arithmetic.
package contam
