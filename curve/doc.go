// Package curve provides the immutable calibration-curve table and the
// accessor operations the calibration engine builds on.
//
// What
//
//   - Table: rows of (calendar age, curve mean, curve sigma), strictly
//     ordered by ascending calendar age, deep-copied on construction and
//     never mutated afterwards. Safe to share read-only across
//     goroutines with no synchronization.
//   - Forward lookup: piecewise-linear interpolation of mean and sigma
//     at any calendar age, with a configurable out-of-range rule
//     (RuleError returns ErrOutOfRange, RuleClamp returns the nearest
//     boundary row).
//   - Inverse lookup: all calendar ages at which the piecewise-linear
//     curve crosses a given C14 value. Wiggles and plateaux produce
//     zero, one or many crossings; results come back ascending.
//   - Resample: a constant-spacing copy of the table, neutralizing the
//     native non-uniform row density (1 yr near present, 20 yr beyond
//     25 kyr) before probability-mass work.
//   - Smooth: a centered moving average of mean and sigma, modelling
//     time-averaged material such as peat or multi-ring wood.
//   - Glue: concatenation of a postbomb table below a conventional one,
//     for measurements that span the AD 1950 transition.
//   - Provider / Registry: an enumerated curve ID resolved against
//     in-memory tables; the core never inspects filenames and performs
//     no I/O.
//
// Realm copies
//
//	InF14C and InPMC return converted copies of a table whose value
//	column holds fraction modern or percent modern instead of C14 age.
//	The calibration engine uses them when the likelihood must compare
//	like with like in a non-age realm.
//
// Errors (sentinel):
//
//	– ErrTooFewRows     construction with fewer than two rows.
//	– ErrUnsortedAges   calendar ages not strictly increasing.
//	– ErrNegativeSigma  a negative curve uncertainty.
//	– ErrLengthMismatch column slices of unequal length.
//	– ErrOutOfRange     forward lookup outside the table under RuleError.
//	– ErrBadStep        non-positive resampling step.
//	– ErrBadWindow      non-positive smoothing window.
//	– ErrNilTable       a nil *Table argument.
//	– ErrBadGlue        postbomb table does not extend below the target.
//	– ErrUnknownCurve   unregistered curve ID.
//	– ErrNoPostbomb     postbomb requested for an ID with no companion.
package curve
