// Package realm converts values between radiocarbon realms (conventional
// C14 age, fraction modern F14C, percent modern pMC, delta notation D14C)
// and between calendar realms (cal BP, BC/AD, b2k).
//
// What
//
//   - Calendar arithmetic: cal BP ↔ BC/AD (1950 − calBP, with optional
//     historical year numbering that skips year zero) and cal BP ↔ b2k
//     (calBP + 50).
//   - Radiocarbon arithmetic: C14 age ↔ F14C via the Libby mean-life
//     (8033 yr), F14C ↔ pMC (×100), and F14C ↔ D14C against a curve
//     baseline at a reference calendar age.
//   - First-order (delta-method) error propagation on every conversion;
//     passing a nil sigma slice converts means only.
//
// Asymmetry
//
//	Calendar ages convert to C14 ages only through a calibration curve
//	(package curve). F14C, pMC and D14C have no direct calendar
//	conversion: they always route through C14 age first. This package
//	therefore never takes a curve table, only a pre-resolved baseline
//	value for D14C.
//
// Vector contract
//
//	All conversions operate on slices; a scalar is the length-1 case.
//	Paired slices (value, sigma) must have equal length. Scalar
//	convenience wrappers exist for the C14 ↔ F14C pair, which other
//	packages use in closed-form arithmetic.
//
// Errors (sentinel):
//
//	– ErrNegativeSigma   if any sigma is negative.
//	– ErrNonPositiveF14C if F14C ≤ 0 reaches the logarithmic inverse.
//	– ErrLengthMismatch  if paired slices differ in length.
//
// Conversions never return NaN or Inf for invalid input; they fail with
// a typed error at the call that detects the problem.
package realm
