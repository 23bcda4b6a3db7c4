// Package calibrate type declarations: Measurement, likelihood models,
// realms, options and sentinel errors.
package calibrate

import "errors"

// Sentinel errors returned by the calibration engine.
var (
	// ErrBadMeasurement indicates a measurement with sigma ≤ 0.
	ErrBadMeasurement = errors.New("calibrate: measurement sigma must be positive")

	// ErrPostbombRequired indicates that the measurement's 3σ envelope
	// intrudes into the postbomb (post-AD 1950) region but the working
	// curve carries no postbomb rows. Recoverable: retry with a glued
	// postbomb table, or suppress with WithPostbomb.
	ErrPostbombRequired = errors.New("calibrate: postbomb curve required")

	// ErrDegenerateDensity indicates a likelihood that places zero
	// probability mass anywhere on the supplied curve.
	ErrDegenerateDensity = errors.New("calibrate: density has zero total mass")
)

// Measurement is an uncalibrated (mean, error) pair: a radiocarbon age
// or its realm equivalent with a one-sigma laboratory uncertainty.
// Mean may be negative (postbomb ages, delta notation); Sigma must be
// positive.
type Measurement struct {
	Mean  float64
	Sigma float64
}

// Likelihood selects the probability model comparing a measurement
// with a curve row.
type Likelihood int

const (
	// Normal evaluates a normal pdf with measurement and curve sigmas
	// combined in quadrature.
	Normal Likelihood = iota

	// StudentT evaluates the heavier-tailed two-parameter kernel
	// (b + (y−µ)²/(2σ²))^−(a+½), reducing outlier influence on
	// interval width.
	StudentT
)

// Realm identifies the realm the measurement (and therefore the
// likelihood comparison) is expressed in.
type Realm int

const (
	// RealmC14 compares conventional C14 ages (the default).
	RealmC14 Realm = iota

	// RealmF14C compares fraction modern values against an InF14C copy
	// of the curve.
	RealmF14C

	// RealmPMC compares percent modern values against an InPMC copy of
	// the curve.
	RealmPMC
)

// Default shape parameters of the Student-t likelihood.
const (
	DefaultStudentTA = 3.0
	DefaultStudentTB = 4.0
)

// DefaultTrimThreshold is the default tail-trimming cutoff, as a
// fraction of the density's peak probability.
const DefaultTrimThreshold = 1e-5

// Options configures a calibration run. Zero values are filled by
// DefaultOptions; use the functional With* constructors on Calibrate.
//
// Likelihood selects Normal or StudentT, with TA/TB the Student-t shape
// parameters (3, 4 unless set). Realm is the realm of the measurement
// and the likelihood comparison. DeltaR/DeltaRSigma are the reservoir
// offset and its uncertainty, in the measurement's realm. Step is the
// output grid spacing; 0 keeps the curve-native (possibly non-uniform)
// calendar axis. Normalize scales the density to total mass 1,
// TrimThreshold cuts tails as a fraction of the peak, and
// RenormalizeAfterTrim re-normalizes over the truncated support.
// AllowPostbomb suppresses ErrPostbombRequired; AsBCAD emits the axis
// in BC/AD instead of cal BP.
type Options struct {
	Likelihood           Likelihood
	TA                   float64
	TB                   float64
	Realm                Realm
	DeltaR               float64
	DeltaRSigma          float64
	Step                 float64
	Normalize            bool
	TrimThreshold        float64
	RenormalizeAfterTrim bool
	AllowPostbomb        bool
	AsBCAD               bool
}

// Option represents a functional option for Calibrate.
type Option func(*Options)

// WithStudentT switches to the Student-t likelihood with shape
// parameters a, b. Non-positive shapes panic (programmer error).
func WithStudentT(a, b float64) Option {
	return func(o *Options) {
		if a <= 0 || b <= 0 {
			panic("calibrate: Student-t shape parameters must be positive")
		}
		o.Likelihood = StudentT
		o.TA = a
		o.TB = b
	}
}

// WithRealm sets the measurement realm.
func WithRealm(r Realm) Option {
	return func(o *Options) {
		o.Realm = r
	}
}

// WithDeltaR sets the reservoir offset applied before calibration.
// A negative sigma panics (programmer error).
func WithDeltaR(deltaR, sigma float64) Option {
	return func(o *Options) {
		if sigma < 0 {
			panic("calibrate: deltaR sigma must be non-negative")
		}
		o.DeltaR = deltaR
		o.DeltaRSigma = sigma
	}
}

// WithStep re-grids the output density to a constant calendar spacing.
// Non-positive steps panic (programmer error).
func WithStep(step float64) Option {
	return func(o *Options) {
		if step <= 0 {
			panic("calibrate: step must be positive")
		}
		o.Step = step
	}
}

// WithoutNormalize leaves the density unnormalized (raw likelihood).
func WithoutNormalize() Option {
	return func(o *Options) {
		o.Normalize = false
	}
}

// WithTrimThreshold overrides the tail-trimming cutoff. Negative
// thresholds panic (programmer error); 0 disables trimming.
func WithTrimThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold < 0 {
			panic("calibrate: trim threshold must be non-negative")
		}
		o.TrimThreshold = threshold
	}
}

// WithoutRenormalizeAfterTrim keeps the trimmed density summing to its
// post-trim mass, for exact parity with historical outputs.
func WithoutRenormalizeAfterTrim() Option {
	return func(o *Options) {
		o.RenormalizeAfterTrim = false
	}
}

// WithPostbomb suppresses the postbomb-required check, accepting that
// mass beyond the curve's modern end is truncated.
func WithPostbomb() Option {
	return func(o *Options) {
		o.AllowPostbomb = true
	}
}

// WithBCAD emits the output axis in BC/AD (astronomical numbering).
func WithBCAD() Option {
	return func(o *Options) {
		o.AsBCAD = true
	}
}

// DefaultOptions returns the default calibration configuration:
// normal likelihood, C14 realm, no offset, curve-native grid,
// normalized, trimmed at DefaultTrimThreshold with renormalization,
// postbomb check armed, cal BP axis.
func DefaultOptions() Options {
	return Options{
		Likelihood:           Normal,
		TA:                   DefaultStudentTA,
		TB:                   DefaultStudentTB,
		Realm:                RealmC14,
		DeltaR:               0,
		DeltaRSigma:          0,
		Step:                 0,
		Normalize:            true,
		TrimThreshold:        DefaultTrimThreshold,
		RenormalizeAfterTrim: true,
		AllowPostbomb:        false,
		AsBCAD:               false,
	}
}
