package realm

import "math"

// CalBPToBCAD converts calendar ages from cal BP to BC/AD.
//
// Astronomical numbering (default): BC/AD = 1950 − calBP.
// Historical numbering (WithSkipYearZero): results ≤ 0 shift down one
// year, so astronomical year 0 becomes −1 (1 BC).
//
// Complexity: O(n).
func CalBPToBCAD(calBP []float64, opts ...Option) []float64 {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	out := make([]float64, len(calBP))
	for i, t := range calBP {
		a := PresentBCAD - t
		if cfg.SkipYearZero && a <= 0 {
			a--
		}
		out[i] = a
	}

	return out
}

// BCADToCalBP converts calendar ages from BC/AD to cal BP, inverting
// CalBPToBCAD under the same year-numbering option.
//
// Complexity: O(n).
func BCADToCalBP(bcad []float64, opts ...Option) []float64 {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	out := make([]float64, len(bcad))
	for i, a := range bcad {
		if cfg.SkipYearZero && a <= 0 {
			a++
		}
		out[i] = PresentBCAD - a
	}

	return out
}

// CalBPToB2K converts cal BP ages to b2k (years before AD 2000).
func CalBPToB2K(calBP []float64) []float64 {
	out := make([]float64, len(calBP))
	for i, t := range calBP {
		out[i] = t + B2KOffset
	}

	return out
}

// B2KToCalBP converts b2k ages back to cal BP.
func B2KToCalBP(b2k []float64) []float64 {
	out := make([]float64, len(b2k))
	for i, t := range b2k {
		out[i] = t - B2KOffset
	}

	return out
}

// C14ToF14C converts conventional C14 ages to fraction modern F14C:
//
//	F14C    = exp(−age / 8033)
//	sigmaF  = F14C · sigmaAge / 8033   (first-order propagation)
//
// sigma may be nil to convert means only (the returned sigma slice is
// then nil). Negative sigma values fail with ErrNegativeSigma; mismatched
// slice lengths fail with ErrLengthMismatch.
//
// Complexity: O(n).
func C14ToF14C(age, sigma []float64) ([]float64, []float64, error) {
	if err := checkPair(age, sigma); err != nil {
		return nil, nil, err
	}
	f := make([]float64, len(age))
	for i, a := range age {
		f[i] = math.Exp(-a / LibbyMeanLife)
	}
	if sigma == nil {
		return f, nil, nil
	}
	fs := make([]float64, len(age))
	for i, s := range sigma {
		fs[i] = f[i] * s / LibbyMeanLife
	}

	return f, fs, nil
}

// F14CToC14 converts fraction modern F14C to conventional C14 ages:
//
//	age      = −8033 · ln(F14C)
//	sigmaAge = 8033 · sigmaF / F14C
//
// Any F14C ≤ 0 fails with ErrNonPositiveF14C (the logarithm is
// undefined); sigma may be nil to convert means only.
//
// Complexity: O(n).
func F14CToC14(f, sigma []float64) ([]float64, []float64, error) {
	if err := checkPair(f, sigma); err != nil {
		return nil, nil, err
	}
	age := make([]float64, len(f))
	for i, v := range f {
		if v <= 0 {
			return nil, nil, ErrNonPositiveF14C
		}
		age[i] = -LibbyMeanLife * math.Log(v)
	}
	if sigma == nil {
		return age, nil, nil
	}
	as := make([]float64, len(f))
	for i, s := range sigma {
		as[i] = LibbyMeanLife * s / f[i]
	}

	return age, as, nil
}

// F14CToPMC converts fraction modern to percent modern carbon (×100).
// sigma may be nil; negative sigma fails with ErrNegativeSigma.
func F14CToPMC(f, sigma []float64) ([]float64, []float64, error) {
	return scale(f, sigma, 100)
}

// PMCToF14C converts percent modern carbon to fraction modern (÷100).
// sigma may be nil; negative sigma fails with ErrNegativeSigma.
func PMCToF14C(pmc, sigma []float64) ([]float64, []float64, error) {
	return scale(pmc, sigma, 0.01)
}

// F14CToD14C converts fraction modern values to delta notation against
// the curve baseline at a reference calendar age:
//
//	D14C = (F14C / Fcurve − 1) · 1000
//
// curveF is the curve's F14C-equivalent at the anchor age and curveSigma
// its uncertainty (0 for an exact baseline). Input and baseline
// uncertainties combine in quadrature, scaled by the partial
// derivatives. curveF ≤ 0 fails with ErrNonPositiveF14C.
//
// Complexity: O(n).
func F14CToD14C(f, sigma []float64, curveF, curveSigma float64) ([]float64, []float64, error) {
	if err := checkPair(f, sigma); err != nil {
		return nil, nil, err
	}
	if curveF <= 0 {
		return nil, nil, ErrNonPositiveF14C
	}
	if curveSigma < 0 {
		return nil, nil, ErrNegativeSigma
	}
	d := make([]float64, len(f))
	for i, v := range f {
		d[i] = (v/curveF - 1) * 1000
	}
	if sigma == nil {
		return d, nil, nil
	}
	ds := make([]float64, len(f))
	for i, s := range sigma {
		// ∂D/∂F = 1000/Fc, ∂D/∂Fc = −1000·F/Fc².
		dF := 1000 * s / curveF
		dFc := 1000 * f[i] * curveSigma / (curveF * curveF)
		ds[i] = math.Hypot(dF, dFc)
	}

	return d, ds, nil
}

// D14CToF14C converts delta-notation values back to fraction modern
// against the curve baseline at the same reference calendar age,
// inverting F14CToD14C with quadrature propagation.
//
// Complexity: O(n).
func D14CToF14C(d, sigma []float64, curveF, curveSigma float64) ([]float64, []float64, error) {
	if err := checkPair(d, sigma); err != nil {
		return nil, nil, err
	}
	if curveF <= 0 {
		return nil, nil, ErrNonPositiveF14C
	}
	if curveSigma < 0 {
		return nil, nil, ErrNegativeSigma
	}
	f := make([]float64, len(d))
	for i, v := range d {
		f[i] = (v/1000 + 1) * curveF
	}
	if sigma == nil {
		return f, nil, nil
	}
	fs := make([]float64, len(d))
	for i, s := range sigma {
		dD := curveF * s / 1000
		dFc := (d[i]/1000 + 1) * curveSigma
		fs[i] = math.Hypot(dD, dFc)
	}

	return f, fs, nil
}

// C14ToF14CPoint is the scalar form of C14ToF14C, used by closed-form
// callers (contamination arithmetic). The caller is responsible for
// sigma ≥ 0.
func C14ToF14CPoint(age, sigma float64) (float64, float64) {
	f := math.Exp(-age / LibbyMeanLife)

	return f, f * sigma / LibbyMeanLife
}

// F14CToC14Point is the scalar form of F14CToC14.
// Fails with ErrNonPositiveF14C for f ≤ 0.
func F14CToC14Point(f, sigma float64) (float64, float64, error) {
	if f <= 0 {
		return 0, 0, ErrNonPositiveF14C
	}

	return -LibbyMeanLife * math.Log(f), LibbyMeanLife * sigma / f, nil
}

// scale applies a linear factor to a (value, sigma) pair vector.
func scale(v, sigma []float64, k float64) ([]float64, []float64, error) {
	if err := checkPair(v, sigma); err != nil {
		return nil, nil, err
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * k
	}
	if sigma == nil {
		return out, nil, nil
	}
	os := make([]float64, len(v))
	for i, s := range sigma {
		os[i] = s * k
	}

	return out, os, nil
}

// checkPair validates a (value, sigma) slice pair: equal lengths when
// sigma is present, and no negative sigma.
func checkPair(v, sigma []float64) error {
	if sigma == nil {
		return nil
	}
	if len(sigma) != len(v) {
		return ErrLengthMismatch
	}
	for _, s := range sigma {
		if s < 0 {
			return ErrNegativeSigma
		}
	}

	return nil
}
