// Package curve type declarations: Table, Point, extrapolation rules,
// curve identifiers and sentinel errors.
package curve

import "errors"

// Sentinel errors for curve operations.
var (
	// ErrNilTable indicates a nil *Table argument.
	ErrNilTable = errors.New("curve: table is nil")

	// ErrTooFewRows indicates a table with fewer than two rows, on which
	// piecewise-linear interpolation is undefined.
	ErrTooFewRows = errors.New("curve: table needs at least two rows")

	// ErrUnsortedAges indicates calendar ages that are not strictly
	// increasing (duplicates included).
	ErrUnsortedAges = errors.New("curve: calendar ages must be strictly increasing")

	// ErrNegativeSigma indicates a negative curve uncertainty.
	ErrNegativeSigma = errors.New("curve: sigma must be non-negative")

	// ErrLengthMismatch indicates column slices of unequal length.
	ErrLengthMismatch = errors.New("curve: column slices must have equal length")

	// ErrOutOfRange indicates a forward lookup outside the table's
	// calendar range under RuleError. Under RuleClamp this condition is
	// not an error; the boundary row is returned instead.
	ErrOutOfRange = errors.New("curve: calendar age outside table range")

	// ErrBadStep indicates a non-positive resampling step.
	ErrBadStep = errors.New("curve: resampling step must be positive")

	// ErrBadWindow indicates a non-positive smoothing window.
	ErrBadWindow = errors.New("curve: smoothing window must be positive")

	// ErrBadGlue indicates a postbomb table that does not extend below
	// the youngest row of the table being glued onto.
	ErrBadGlue = errors.New("curve: postbomb table does not extend below target table")

	// ErrUnknownCurve indicates a curve ID with no registered table.
	ErrUnknownCurve = errors.New("curve: unknown curve ID")

	// ErrNoPostbomb indicates a postbomb request for a curve ID that has
	// no registered postbomb companion.
	ErrNoPostbomb = errors.New("curve: no postbomb companion registered")
)

// Point is one interpolated (or raw) curve row.
type Point struct {
	// CalBP is the calendar age in cal BP.
	CalBP float64

	// Value is the curve mean at CalBP. For a conventional table this is
	// a C14 age; for InF14C / InPMC copies it is F14C or pMC.
	Value float64

	// Sigma is the curve uncertainty at CalBP, in the same realm as Value.
	Sigma float64
}

// ExtrapolationRule controls forward lookups outside the table range.
//
//   - RuleError: out-of-range ages fail with ErrOutOfRange.
//   - RuleClamp: out-of-range ages return the nearest boundary row;
//     this is defined behavior, not an error.
type ExtrapolationRule int

const (
	// RuleError rejects out-of-range lookups with ErrOutOfRange.
	RuleError ExtrapolationRule = iota

	// RuleClamp clamps out-of-range lookups to the table boundary.
	RuleClamp
)

// ID is an enumerated calibration-curve identifier. The core never maps
// identifiers to files; a Provider resolves them to in-memory tables.
type ID string

// Conventional curve families and their common postbomb zones.
const (
	IntCal20 ID = "IntCal20"
	Marine20 ID = "Marine20"
	SHCal20  ID = "SHCal20"

	// Postbomb zone identifiers, usable as standalone curve IDs when a
	// measurement is known to be entirely post-1950.
	NHZone1  ID = "NHZ1"
	NHZone2  ID = "NHZ2"
	NHZone3  ID = "NHZ3"
	SHZone12 ID = "SHZ1-2"
	SHZone3  ID = "SHZ3"
)

// GetOptions configures Provider.Get.
//
// Postbomb     – glue the ID's postbomb companion below the table.
// ResampleStep – if > 0, resample the result to this constant spacing.
type GetOptions struct {
	Postbomb     bool
	ResampleStep float64
}

// Provider resolves curve IDs to ready-to-use tables. Implementations
// own loading and caching; the core only consumes the resulting Table.
type Provider interface {
	Get(id ID, opts GetOptions) (*Table, error)
}
