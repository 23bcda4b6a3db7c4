package contam

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/c14/realm"
)

// Contaminate applies the forward mixture model: a true C14 age with
// its error, a contamination fraction with its error, and the
// contaminant's F14C activity with its error yield the observed C14
// age and error.
//
// Propagation is analytic unless the configuration or the CV rule
// selects Monte Carlo (see the package docs). Result.Mode records the
// path taken.
//
// Errors: ErrFractionOutOfRange, ErrBadSigma, realm.ErrNonPositiveF14C
// when the mixture activity collapses to zero or below.
func Contaminate(age, ageSigma, frac, fracSigma, contamF14C, contamSigma float64, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(frac, fracSigma, ageSigma, contamSigma); err != nil {
		return Result{}, err
	}

	fTrue, sTrue := realm.C14ToF14CPoint(age, ageSigma)

	if cfg.ForceMonteCarlo || needMonteCarlo(cfg, age, ageSigma, frac, fracSigma, contamF14C, contamSigma) {
		mix := func(a, fr, fc float64) (float64, bool) {
			f := (1-fr)*math.Exp(-a/realm.LibbyMeanLife) + fr*fc

			return f, f > 0
		}
		res, ok := monteCarlo(cfg, age, ageSigma, frac, fracSigma, contamF14C, contamSigma, mix)
		if ok {
			return res, nil
		}
		// Degraded: fall through to analytic with the warnings kept.
		analytic, err := contaminateAnalytic(fTrue, sTrue, frac, fracSigma, contamF14C, contamSigma)
		if err != nil {
			return Result{}, err
		}
		analytic.Warnings = res.Warnings

		return analytic, nil
	}

	return contaminateAnalytic(fTrue, sTrue, frac, fracSigma, contamF14C, contamSigma)
}

// Clean inverts the forward model: given an observed age and the
// contamination fraction to remove, recover the true age.
//
// The fraction must lie in [0, 1): removing 100% contamination leaves
// no sample. Errors otherwise as Contaminate.
func Clean(age, ageSigma, frac, fracSigma, contamF14C, contamSigma float64, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(frac, fracSigma, ageSigma, contamSigma); err != nil {
		return Result{}, err
	}
	if frac == 1 {
		return Result{}, ErrFractionOutOfRange
	}

	fObs, sObs := realm.C14ToF14CPoint(age, ageSigma)

	if cfg.ForceMonteCarlo || needMonteCarlo(cfg, age, ageSigma, frac, fracSigma, contamF14C, contamSigma) {
		mix := func(a, fr, fc float64) (float64, bool) {
			if fr >= 1 {
				return 0, false
			}
			f := (math.Exp(-a/realm.LibbyMeanLife) - fr*fc) / (1 - fr)

			return f, f > 0
		}
		res, ok := monteCarlo(cfg, age, ageSigma, frac, fracSigma, contamF14C, contamSigma, mix)
		if ok {
			return res, nil
		}
		analytic, err := cleanAnalytic(fObs, sObs, frac, fracSigma, contamF14C, contamSigma)
		if err != nil {
			return Result{}, err
		}
		analytic.Warnings = res.Warnings

		return analytic, nil
	}

	return cleanAnalytic(fObs, sObs, frac, fracSigma, contamF14C, contamSigma)
}

// MuckFraction solves the mixture for the contamination fraction
// required to turn a target (true) age into the observed age, given
// the contaminant's activity. Pure algebra:
//
//	frac = (F_obs − F_target) / (F_contam − F_target)
//
// The computed fraction is returned even when it falls outside [0, 1],
// paired with ErrFractionOutOfRange, so callers can report
// infeasible scenarios.
//
// Errors: ErrNoSolution when the contaminant activity equals the
// target's (the mixture cannot move the age).
func MuckFraction(observedAge, targetAge, contamF14C float64) (float64, error) {
	fObs := math.Exp(-observedAge / realm.LibbyMeanLife)
	fTarget := math.Exp(-targetAge / realm.LibbyMeanLife)
	if contamF14C == fTarget {
		return 0, ErrNoSolution
	}

	frac := (fObs - fTarget) / (contamF14C - fTarget)
	if frac < 0 || frac > 1 {
		return frac, fmt.Errorf("%w: required fraction %.4g", ErrFractionOutOfRange, frac)
	}

	return frac, nil
}

// MuckActivity solves the mixture for the contaminant activity
// required to turn a target age into the observed age, given the
// contamination fraction:
//
//	F_contam = (F_obs − (1 − frac)·F_target) / frac
//
// Errors: ErrNoSolution for frac == 0 (no contaminant to solve for),
// ErrFractionOutOfRange for frac outside (0, 1].
func MuckActivity(observedAge, targetAge, frac float64) (float64, error) {
	if frac == 0 {
		return 0, ErrNoSolution
	}
	if frac < 0 || frac > 1 {
		return 0, ErrFractionOutOfRange
	}
	fObs := math.Exp(-observedAge / realm.LibbyMeanLife)
	fTarget := math.Exp(-targetAge / realm.LibbyMeanLife)

	return (fObs - (1-frac)*fTarget) / frac, nil
}

// contaminateAnalytic propagates the forward mixture to an observed
// age via the partial derivatives
// ∂F/∂F_true = 1−frac, ∂F/∂frac = F_contam−F_true, ∂F/∂F_contam = frac.
func contaminateAnalytic(fTrue, sTrue, frac, fracSigma, fc, sc float64) (Result, error) {
	fObs := (1-frac)*fTrue + frac*fc
	sObs := math.Sqrt(
		sq((1-frac)*sTrue) + sq((fc-fTrue)*fracSigma) + sq(frac*sc),
	)

	mean, sigma, err := realm.F14CToC14Point(fObs, sObs)
	if err != nil {
		return Result{}, err
	}

	return Result{Mean: mean, Sigma: sigma, Mode: ModeAnalytic}, nil
}

// cleanAnalytic propagates the inverse mixture via
// ∂F/∂F_obs = 1/(1−frac), ∂F/∂frac = (F_obs−F_contam)/(1−frac)²,
// ∂F/∂F_contam = −frac/(1−frac).
func cleanAnalytic(fObs, sObs, frac, fracSigma, fc, sc float64) (Result, error) {
	inv := 1 / (1 - frac)
	fTrue := (fObs - frac*fc) * inv
	sTrue := math.Sqrt(
		sq(sObs*inv) + sq((fObs-fc)*inv*inv*fracSigma) + sq(frac*inv*sc),
	)

	mean, sigma, err := realm.F14CToC14Point(fTrue, sTrue)
	if err != nil {
		return Result{}, err
	}

	return Result{Mean: mean, Sigma: sigma, Mode: ModeAnalytic}, nil
}

// monteCarlo draws the three input parameters from independent normal
// distributions, applies mix per draw, and summarizes the surviving
// ages. Returns ok=false (with warnings populated) when no draw
// survives, signalling the caller to degrade to analytic propagation.
func monteCarlo(cfg Options, age, ageSigma, frac, fracSigma, fc, sc float64,
	mix func(a, fr, fcs float64) (float64, bool)) (Result, bool) {
	rng := rngFromSeed(cfg.Seed)
	ages := make([]float64, 0, cfg.Iterations)
	invalid := 0

	drawAge := normal(age, ageSigma, rng)
	drawFrac := normal(frac, fracSigma, rng)
	drawFC := normal(fc, sc, rng)
	for i := 0; i < cfg.Iterations; i++ {
		f, ok := mix(drawAge(), drawFrac(), drawFC())
		if !ok {
			invalid++

			continue
		}
		ages = append(ages, -realm.LibbyMeanLife*math.Log(f))
	}

	res := Result{Mode: ModeMonteCarlo}
	if invalid > 0 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("contam: discarded %d of %d draws with non-positive mixture activity", invalid, cfg.Iterations))
	}
	if len(ages) == 0 {
		res.Warnings = append(res.Warnings,
			"contam: no valid Monte Carlo draws; degraded to analytic propagation")

		return res, false
	}

	res.Mean = stat.Mean(ages, nil)
	res.Sigma = stat.StdDev(ages, nil)

	return res, true
}

// normal returns a deterministic sampler for N(mu, sigma); a zero
// sigma yields the constant mu.
func normal(mu, sigma float64, rng *rand.Rand) func() float64 {
	if sigma == 0 {
		return func() float64 { return mu }
	}
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: rng}

	return dist.Rand
}

// needMonteCarlo applies the linearization-breakdown rule: any input's
// coefficient of variation above the threshold, or a fraction within
// one sigma of the [0, 1] bounds.
func needMonteCarlo(cfg Options, age, ageSigma, frac, fracSigma, fc, sc float64) bool {
	if fracSigma > 0 && (frac-fracSigma < 0 || frac+fracSigma > 1) {
		return true
	}
	if cv(frac, fracSigma) > cfg.CVThreshold || cv(fc, sc) > cfg.CVThreshold {
		return true
	}

	// The CV of F_true under age uncertainty is sigmaAge/8033 exactly.
	return ageSigma/realm.LibbyMeanLife > cfg.CVThreshold
}

// cv returns sigma/|mean|, treating a zero mean with positive sigma as
// infinite variation.
func cv(mean, sigma float64) float64 {
	if sigma == 0 {
		return 0
	}
	if mean == 0 {
		return math.Inf(1)
	}

	return sigma / math.Abs(mean)
}

// validate applies the shared domain checks.
func validate(frac, fracSigma, ageSigma, contamSigma float64) error {
	if frac < 0 || frac > 1 {
		return ErrFractionOutOfRange
	}
	if fracSigma < 0 || ageSigma < 0 || contamSigma < 0 {
		return ErrBadSigma
	}

	return nil
}

// sq squares a float64.
func sq(x float64) float64 { return x * x }
