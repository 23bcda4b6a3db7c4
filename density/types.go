// Package density type declarations: Density, Interval, HPD options
// and sentinel errors.
package density

import "errors"

// Sentinel errors for density construction and analysis.
var (
	// ErrEmptyDensity indicates a density with no points.
	ErrEmptyDensity = errors.New("density: must contain at least one point")

	// ErrLengthMismatch indicates x and p columns of unequal length.
	ErrLengthMismatch = errors.New("density: x and p must have equal length")

	// ErrUnsortedX indicates x values that are not strictly increasing.
	ErrUnsortedX = errors.New("density: x must be strictly increasing")

	// ErrNegativeProb indicates a negative probability value.
	ErrNegativeProb = errors.New("density: probabilities must be non-negative")

	// ErrZeroMass indicates a density whose total probability mass is
	// zero, which cannot be normalized or summarized.
	ErrZeroMass = errors.New("density: total probability mass is zero")

	// ErrBadStep indicates a non-positive regrid step.
	ErrBadStep = errors.New("density: step must be positive")

	// ErrBadCoverage indicates an HPD coverage outside (0, 1].
	ErrBadCoverage = errors.New("density: coverage must be in (0, 1]")
)

// Axis labels of the density interchange shape, consumed by external
// plotting and reporting collaborators.
const (
	XLabelCalBP = "cal BP"
	XLabelBCAD  = "BC/AD"
	PLabel      = "prob"
)

// Density is an ordered, discretely sampled probability density:
// X strictly increasing, P ≥ 0 elementwise. Construct with New or take
// one from the calibration engine. Value semantics: methods never
// mutate the receiver.
//
// The axis label of the interchange shape ("cal BP" or "BC/AD")
// travels in XLabel; the probability column is always labelled "prob".
type Density struct {
	X      []float64
	P      []float64
	XLabel string
}

// Interval is one contiguous HPD range: calendar ages From ≤ To whose
// enclosed probability mass is Percent (of the whole density, as a
// percentage). A single-point interval has From == To and reports that
// point's own mass.
type Interval struct {
	From    float64
	To      float64
	Percent float64
}

// HPDOptions configures HPD interval derivation.
//
// Step is the target regrid spacing in x units (default 1). When the
// natural support holds fewer than MinBins steps (default 20), the
// density is re-gridded to FallbackBins points (default 200) instead of
// Step spacing. Precision is the number of decimal places for interval
// percentages (default 1).
type HPDOptions struct {
	Step         float64
	MinBins      int
	FallbackBins int
	Precision    int
}

// HPDOption represents a functional option for HPD derivation.
type HPDOption func(*HPDOptions)

// WithStep sets the regrid spacing. Must be positive; non-positive
// values panic (programmer error).
func WithStep(step float64) HPDOption {
	return func(o *HPDOptions) {
		if step <= 0 {
			panic(ErrBadStep.Error())
		}
		o.Step = step
	}
}

// WithPrecision sets the decimal places used when rounding interval
// percentages. Negative values panic (programmer error).
func WithPrecision(digits int) HPDOption {
	return func(o *HPDOptions) {
		if digits < 0 {
			panic("density: precision must be non-negative")
		}
		o.Precision = digits
	}
}

// WithFallbackBins sets the adaptive regrid bin count used for narrow
// supports. Values < 2 panic (programmer error).
func WithFallbackBins(bins int) HPDOption {
	return func(o *HPDOptions) {
		if bins < 2 {
			panic("density: fallback bins must be at least 2")
		}
		o.FallbackBins = bins
	}
}

// DefaultHPDOptions returns the default HPD configuration:
// Step 1, MinBins 20, FallbackBins 200, Precision 1.
func DefaultHPDOptions() HPDOptions {
	return HPDOptions{
		Step:         1,
		MinBins:      20,
		FallbackBins: 200,
		Precision:    1,
	}
}
