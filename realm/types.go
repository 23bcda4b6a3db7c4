// Package realm defines constants, options and sentinel errors for
// realm conversions.
package realm

import "errors"

// Physical and calendar constants shared by all conversions.
const (
	// LibbyMeanLife is the Libby mean-life of radiocarbon in years,
	// derived from the conventional Libby half-life of 5568 yr
	// (5568 / ln 2). All C14 ↔ F14C conversions use this constant.
	LibbyMeanLife = 8033.0

	// PresentBCAD is the calendar anchor of the cal BP scale:
	// cal BP 0 corresponds to AD 1950.
	PresentBCAD = 1950.0

	// B2KOffset shifts cal BP onto the b2k scale (years before AD 2000).
	B2KOffset = 50.0
)

// Sentinel errors returned by realm conversions.
var (
	// ErrNegativeSigma indicates a negative uncertainty term.
	ErrNegativeSigma = errors.New("realm: sigma must be non-negative")

	// ErrNonPositiveF14C indicates an F14C value ≤ 0 reaching the
	// logarithmic inverse, for which a C14 age is undefined.
	ErrNonPositiveF14C = errors.New("realm: F14C must be positive")

	// ErrLengthMismatch indicates paired slices of unequal length.
	ErrLengthMismatch = errors.New("realm: paired slices must have equal length")
)

// Options configures calendar-realm conversions.
//
// SkipYearZero – if true, BC/AD values follow historical year numbering,
// which has no year 0: astronomical year 0 is rendered as 1 BC (−1) and
// every earlier year shifts by one. The default (false) is astronomical
// numbering, where year 0 exists and the conversion is a pure offset.
type Options struct {
	SkipYearZero bool
}

// Option represents a functional option for calendar conversions.
type Option func(*Options)

// WithSkipYearZero enables historical year numbering (no year 0 BC/AD).
func WithSkipYearZero() Option {
	return func(o *Options) {
		o.SkipYearZero = true
	}
}

// DefaultOptions returns the default conversion options:
// astronomical year numbering (year 0 permitted).
func DefaultOptions() Options {
	return Options{SkipYearZero: false}
}
