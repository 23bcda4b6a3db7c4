// Package contam type declarations: propagation modes, options,
// results and sentinel errors.
package contam

import "errors"

// Sentinel errors for contamination arithmetic.
var (
	// ErrFractionOutOfRange indicates a contamination fraction outside
	// [0, 1] (Clean additionally rejects exactly 1, which would divide
	// the mixture by zero).
	ErrFractionOutOfRange = errors.New("contam: contamination fraction must be within [0, 1]")

	// ErrBadSigma indicates a negative uncertainty term.
	ErrBadSigma = errors.New("contam: sigma must be non-negative")

	// ErrNoSolution indicates a mixture equation with no solution for
	// the requested unknown (observed, target and contaminant activity
	// coincide, or a zero fraction given for MuckActivity).
	ErrNoSolution = errors.New("contam: mixture equation has no solution")
)

// Mode records which propagation path produced a Result.
type Mode int

const (
	// ModeAnalytic is first-order delta-method propagation.
	ModeAnalytic Mode = iota

	// ModeMonteCarlo is sampled propagation with N normal draws.
	ModeMonteCarlo
)

// String implements fmt.Stringer for diagnostics.
func (m Mode) String() string {
	if m == ModeMonteCarlo {
		return "monte-carlo"
	}

	return "analytic"
}

// DefaultIterations is the Monte Carlo draw count unless overridden.
const DefaultIterations = 10000

// DefaultCVThreshold is the coefficient-of-variation bound above which
// the engine abandons the analytic linearization for Monte Carlo.
const DefaultCVThreshold = 0.3

// Options configures propagation.
//
// ForceMonteCarlo always uses Monte Carlo, ignoring the CV rule.
// Iterations is the Monte Carlo draw count (default 10000). Seed is the
// RNG seed; 0 selects the fixed default seed, so the zero value is
// still deterministic. CVThreshold is the coefficient-of-variation
// switch point (default 0.3).
type Options struct {
	ForceMonteCarlo bool
	Iterations      int
	Seed            uint64
	CVThreshold     float64
}

// Option represents a functional option for contamination calls.
type Option func(*Options)

// WithMonteCarlo forces Monte Carlo propagation.
func WithMonteCarlo() Option {
	return func(o *Options) {
		o.ForceMonteCarlo = true
	}
}

// WithIterations sets the Monte Carlo draw count. Values < 1 panic
// (programmer error).
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("contam: iterations must be positive")
		}
		o.Iterations = n
	}
}

// WithSeed sets the Monte Carlo seed for reproducible draws.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithCVThreshold overrides the analytic/Monte-Carlo switch point.
// Non-positive thresholds panic (programmer error).
func WithCVThreshold(cv float64) Option {
	return func(o *Options) {
		if cv <= 0 {
			panic("contam: CV threshold must be positive")
		}
		o.CVThreshold = cv
	}
}

// DefaultOptions returns the default propagation configuration.
func DefaultOptions() Options {
	return Options{
		ForceMonteCarlo: false,
		Iterations:      DefaultIterations,
		Seed:            0,
		CVThreshold:     DefaultCVThreshold,
	}
}

// Result is a propagated (mean, sigma) age with provenance: which mode
// produced it and any degradations encountered on the way. Warnings is
// nil on a clean run.
type Result struct {
	Mean     float64
	Sigma    float64
	Mode     Mode
	Warnings []string
}
