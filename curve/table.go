package curve

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/c14/realm"
)

// Table is an immutable calibration-curve table: parallel columns of
// calendar age (cal BP, strictly increasing), curve mean and curve
// sigma. Construct with New; all operations return fresh tables and
// never mutate the receiver, so one Table may back any number of
// concurrent calibrations.
type Table struct {
	calBP []float64
	value []float64
	sigma []float64
}

// New builds a Table from three column slices, validating shape and
// ordering, and deep-copies the input so later caller mutations cannot
// corrupt the table.
//
// Errors: ErrLengthMismatch, ErrTooFewRows, ErrUnsortedAges,
// ErrNegativeSigma.
//
// Complexity: O(n).
func New(calBP, value, sigma []float64) (*Table, error) {
	if len(value) != len(calBP) || len(sigma) != len(calBP) {
		return nil, ErrLengthMismatch
	}
	if len(calBP) < 2 {
		return nil, ErrTooFewRows
	}
	for i := 1; i < len(calBP); i++ {
		if calBP[i] <= calBP[i-1] {
			return nil, fmt.Errorf("%w: row %d (%v after %v)", ErrUnsortedAges, i, calBP[i], calBP[i-1])
		}
	}
	for i, s := range sigma {
		if s < 0 {
			return nil, fmt.Errorf("%w: row %d", ErrNegativeSigma, i)
		}
	}
	t := &Table{
		calBP: make([]float64, len(calBP)),
		value: make([]float64, len(calBP)),
		sigma: make([]float64, len(calBP)),
	}
	copy(t.calBP, calBP)
	copy(t.value, value)
	copy(t.sigma, sigma)

	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.calBP) }

// Row returns row i as a Point. Panics on out-of-bounds i, matching
// slice semantics (programmer error, not a data condition).
func (t *Table) Row(i int) Point {
	return Point{CalBP: t.calBP[i], Value: t.value[i], Sigma: t.sigma[i]}
}

// MinCalBP returns the youngest calendar age in the table.
func (t *Table) MinCalBP() float64 { return t.calBP[0] }

// MaxCalBP returns the oldest calendar age in the table.
func (t *Table) MaxCalBP() float64 { return t.calBP[len(t.calBP)-1] }

// CalBP returns a copy of the calendar-age column.
func (t *Table) CalBP() []float64 {
	out := make([]float64, len(t.calBP))
	copy(out, t.calBP)

	return out
}

// At returns the piecewise-linearly interpolated (mean, sigma) at the
// given calendar age. Out-of-range ages follow rule: RuleError fails
// with ErrOutOfRange, RuleClamp returns the nearest boundary row.
//
// Complexity: O(log n) via binary search over the age column.
func (t *Table) At(calBP float64, rule ExtrapolationRule) (Point, error) {
	n := len(t.calBP)
	if calBP < t.calBP[0] || calBP > t.calBP[n-1] {
		if rule == RuleClamp {
			if calBP < t.calBP[0] {
				return t.Row(0), nil
			}

			return t.Row(n - 1), nil
		}

		return Point{}, fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfRange, calBP, t.calBP[0], t.calBP[n-1])
	}

	// First index with calBP[i] >= x; x is in range, so 0 <= i <= n-1.
	i := sort.SearchFloat64s(t.calBP, calBP)
	if i < n && t.calBP[i] == calBP {
		return t.Row(i), nil
	}

	lo, hi := t.Row(i-1), t.Row(i)
	w := (calBP - lo.CalBP) / (hi.CalBP - lo.CalBP)

	return Point{
		CalBP: calBP,
		Value: lo.Value + w*(hi.Value-lo.Value),
		Sigma: lo.Sigma + w*(hi.Sigma-lo.Sigma),
	}, nil
}

// AtAll is the vector form of At: one Point per input age, same rule
// for all. The first out-of-range age under RuleError aborts the call.
//
// Complexity: O(m log n).
func (t *Table) AtAll(calBP []float64, rule ExtrapolationRule) ([]Point, error) {
	out := make([]Point, len(calBP))
	for i, x := range calBP {
		p, err := t.At(x, rule)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}

	return out, nil
}

// CalendarAgesOf returns every calendar age at which the piecewise-
// linear curve mean crosses the given value, in ascending order.
// Plateaux and wiggles legitimately produce multiple crossings; a value
// the curve never reaches produces an empty (non-nil) slice.
//
// A segment lying exactly flat on the value contributes its start age
// only, so adjacent segments sharing a crossing vertex do not duplicate.
//
// Complexity: O(n).
func (t *Table) CalendarAgesOf(value float64) []float64 {
	ages := make([]float64, 0, 4)
	for i := 0; i+1 < len(t.calBP); i++ {
		a, b := t.value[i], t.value[i+1]
		if (value-a)*(value-b) > 0 {
			continue // value strictly outside this segment
		}

		var cross float64
		if a == b {
			cross = t.calBP[i]
		} else {
			w := (value - a) / (b - a)
			cross = t.calBP[i] + w*(t.calBP[i+1]-t.calBP[i])
		}
		if n := len(ages); n > 0 && math.Abs(ages[n-1]-cross) < 1e-9 {
			continue // shared vertex between consecutive segments
		}
		ages = append(ages, cross)
	}

	return ages
}

// Resample returns a copy of the table re-gridded to constant spacing
// step over the same calendar range, with mean and sigma linearly
// interpolated at each new grid age. The last native age is appended
// when the grid does not land on it, so the range is preserved exactly.
//
// Errors: ErrBadStep for step ≤ 0.
//
// Complexity: O(m log n) for m output rows.
func (t *Table) Resample(step float64) (*Table, error) {
	if step <= 0 {
		return nil, ErrBadStep
	}
	start, end := t.calBP[0], t.calBP[len(t.calBP)-1]
	n := int(math.Floor((end-start)/step)) + 1
	grid := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		grid = append(grid, start+float64(i)*step)
	}
	if grid[len(grid)-1] < end {
		grid = append(grid, end)
	}

	out := &Table{
		calBP: grid,
		value: make([]float64, len(grid)),
		sigma: make([]float64, len(grid)),
	}
	for i, x := range grid {
		p, err := t.At(x, RuleError)
		if err != nil {
			return nil, err // unreachable: grid spans the native range
		}
		out.value[i] = p.Value
		out.sigma[i] = p.Sigma
	}

	return out, nil
}

// Smooth returns a copy of the table in which each row's mean and sigma
// are replaced by the unweighted average over all rows within ±window/2
// calendar years of that row. This models time-averaging of accumulated
// material (peat growth, multi-ring wood samples).
//
// Errors: ErrBadWindow for window ≤ 0.
//
// Complexity: O(n · k) for k rows per window (windows are small
// relative to the table in practice).
func (t *Table) Smooth(window float64) (*Table, error) {
	if window <= 0 {
		return nil, ErrBadWindow
	}
	half := window / 2
	out := &Table{
		calBP: append([]float64(nil), t.calBP...),
		value: make([]float64, len(t.calBP)),
		sigma: make([]float64, len(t.calBP)),
	}
	lo := 0
	for i, x := range t.calBP {
		for t.calBP[lo] < x-half {
			lo++
		}
		var sumV, sumS float64
		n := 0
		for j := lo; j < len(t.calBP) && t.calBP[j] <= x+half; j++ {
			sumV += t.value[j]
			sumS += t.sigma[j]
			n++
		}
		out.value[i] = sumV / float64(n)
		out.sigma[i] = sumS / float64(n)
	}

	return out, nil
}

// Glue concatenates a postbomb table below the receiver: postbomb rows
// strictly younger than the receiver's youngest age, then the receiver.
// The result stays strictly increasing by construction.
//
// Errors: ErrNilTable for a nil postbomb; ErrBadGlue when no postbomb
// row lies below the receiver's range.
//
// Complexity: O(n + m).
func (t *Table) Glue(postbomb *Table) (*Table, error) {
	if postbomb == nil {
		return nil, ErrNilTable
	}
	cut := sort.SearchFloat64s(postbomb.calBP, t.calBP[0])
	if cut == 0 {
		return nil, ErrBadGlue
	}
	// Exclude a postbomb row exactly equal to the boundary age.
	if postbomb.calBP[cut-1] == t.calBP[0] {
		cut--
		if cut == 0 {
			return nil, ErrBadGlue
		}
	}

	out := &Table{
		calBP: make([]float64, 0, cut+len(t.calBP)),
		value: make([]float64, 0, cut+len(t.calBP)),
		sigma: make([]float64, 0, cut+len(t.calBP)),
	}
	out.calBP = append(append(out.calBP, postbomb.calBP[:cut]...), t.calBP...)
	out.value = append(append(out.value, postbomb.value[:cut]...), t.value...)
	out.sigma = append(append(out.sigma, postbomb.sigma[:cut]...), t.sigma...)

	return out, nil
}

// InF14C returns a copy of the table with the value column converted
// from C14 age to fraction modern and sigma propagated accordingly.
// The calendar column is unchanged.
//
// Complexity: O(n).
func (t *Table) InF14C() *Table {
	out := &Table{
		calBP: append([]float64(nil), t.calBP...),
		value: make([]float64, len(t.calBP)),
		sigma: make([]float64, len(t.calBP)),
	}
	for i := range t.calBP {
		out.value[i], out.sigma[i] = realm.C14ToF14CPoint(t.value[i], t.sigma[i])
	}

	return out
}

// InPMC returns a copy of the table with the value column converted
// from C14 age to percent modern carbon (100 × F14C).
//
// Complexity: O(n).
func (t *Table) InPMC() *Table {
	out := t.InF14C()
	for i := range out.value {
		out.value[i] *= 100
		out.sigma[i] *= 100
	}

	return out
}
