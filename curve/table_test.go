// Package curve_test verifies Table construction, lookup, inverse
// crossings, resampling, smoothing and gluing.
package curve_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/c14/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newWiggleTable builds a small synthetic curve with a plateau-like
// wiggle around C14 = 130, so a 130 ± 10 measurement is multi-modal.
func newWiggleTable(t *testing.T) *curve.Table {
	t.Helper()
	tbl, err := curve.New(
		[]float64{0, 100, 200, 300, 400, 500},
		[]float64{100, 150, 110, 160, 120, 200},
		[]float64{10, 10, 10, 10, 10, 10},
	)
	require.NoError(t, err)

	return tbl
}

// TestNew_Validation covers the construction error taxonomy.
func TestNew_Validation(t *testing.T) {
	_, err := curve.New([]float64{0, 1}, []float64{1}, []float64{1, 1})
	assert.ErrorIs(t, err, curve.ErrLengthMismatch, "short value column")

	_, err = curve.New([]float64{0}, []float64{1}, []float64{1})
	assert.ErrorIs(t, err, curve.ErrTooFewRows, "single-row table")

	_, err = curve.New([]float64{0, 0}, []float64{1, 2}, []float64{1, 1})
	assert.ErrorIs(t, err, curve.ErrUnsortedAges, "duplicate ages")

	_, err = curve.New([]float64{1, 0}, []float64{1, 2}, []float64{1, 1})
	assert.ErrorIs(t, err, curve.ErrUnsortedAges, "descending ages")

	_, err = curve.New([]float64{0, 1}, []float64{1, 2}, []float64{1, -1})
	assert.ErrorIs(t, err, curve.ErrNegativeSigma, "negative sigma")
}

// TestNew_DeepCopies verifies the table is insulated from later caller
// mutation of the input slices.
func TestNew_DeepCopies(t *testing.T) {
	ages := []float64{0, 100}
	vals := []float64{50, 60}
	sigs := []float64{5, 5}
	tbl, err := curve.New(ages, vals, sigs)
	require.NoError(t, err)

	vals[0] = 9999
	p, err := tbl.At(0, curve.RuleError)
	require.NoError(t, err)
	assert.Equal(t, 50.0, p.Value, "table must not alias caller slices")
}

// TestAt_Interpolation checks exact rows, midpoints, and both
// extrapolation rules.
func TestAt_Interpolation(t *testing.T) {
	tbl := newWiggleTable(t)

	p, err := tbl.At(100, curve.RuleError)
	require.NoError(t, err)
	assert.Equal(t, 150.0, p.Value, "exact row hit")

	p, err = tbl.At(50, curve.RuleError)
	require.NoError(t, err)
	assert.Equal(t, 125.0, p.Value, "midpoint of 100→150 segment")
	assert.Equal(t, 10.0, p.Sigma, "constant sigma interpolates to itself")

	_, err = tbl.At(-10, curve.RuleError)
	assert.ErrorIs(t, err, curve.ErrOutOfRange, "RuleError rejects out-of-range")

	p, err = tbl.At(-10, curve.RuleClamp)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.CalBP, "RuleClamp clamps to the young boundary")
	assert.Equal(t, 100.0, p.Value)

	p, err = tbl.At(9999, curve.RuleClamp)
	require.NoError(t, err)
	assert.Equal(t, 500.0, p.CalBP, "RuleClamp clamps to the old boundary")
}

// TestAtAll_Vector verifies the vector lookup and its abort-on-error
// contract under RuleError.
func TestAtAll_Vector(t *testing.T) {
	tbl := newWiggleTable(t)

	pts, err := tbl.AtAll([]float64{0, 50, 500}, curve.RuleError)
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.Equal(t, 125.0, pts[1].Value)

	_, err = tbl.AtAll([]float64{0, -1}, curve.RuleError)
	assert.ErrorIs(t, err, curve.ErrOutOfRange)
}

// TestCalendarAgesOf_MultiValued verifies that a plateau value yields
// every crossing in ascending order, and a never-reached value none.
func TestCalendarAgesOf_MultiValued(t *testing.T) {
	tbl := newWiggleTable(t)

	ages := tbl.CalendarAgesOf(130)
	want := []float64{60, 150, 240, 375, 412.5}
	require.Len(t, ages, len(want), "five crossings through the wiggle")
	for i := range want {
		assert.InDelta(t, want[i], ages[i], 1e-9)
	}

	assert.Empty(t, tbl.CalendarAgesOf(5000), "value the curve never reaches")

	// A crossing exactly at a shared vertex must not duplicate.
	ages = tbl.CalendarAgesOf(150)
	for i := 1; i < len(ages); i++ {
		assert.Greater(t, ages[i], ages[i-1], "strictly ascending, no duplicates")
	}
}

// TestResample_ConstantSpacing verifies grid spacing, range
// preservation and interpolated values.
func TestResample_ConstantSpacing(t *testing.T) {
	tbl := newWiggleTable(t)

	out, err := tbl.Resample(50)
	require.NoError(t, err)
	require.Equal(t, 11, out.Len(), "0..500 by 50")
	assert.Equal(t, 0.0, out.MinCalBP())
	assert.Equal(t, 500.0, out.MaxCalBP())

	p, err := out.At(50, curve.RuleError)
	require.NoError(t, err)
	assert.Equal(t, 125.0, p.Value, "resampled row matches native interpolation")

	// A step that does not divide the range keeps the final native age.
	out, err = tbl.Resample(300)
	require.NoError(t, err)
	assert.Equal(t, 500.0, out.MaxCalBP(), "range end appended")

	_, err = tbl.Resample(0)
	assert.ErrorIs(t, err, curve.ErrBadStep)
}

// TestSmooth_MovingAverage verifies the centered unweighted window.
func TestSmooth_MovingAverage(t *testing.T) {
	tbl, err := curve.New(
		[]float64{0, 100, 200},
		[]float64{0, 100, 200},
		[]float64{2, 4, 6},
	)
	require.NoError(t, err)

	out, err := tbl.Smooth(200)
	require.NoError(t, err)

	assert.Equal(t, 50.0, out.Row(0).Value, "edge row averages itself and one neighbor")
	assert.Equal(t, 100.0, out.Row(1).Value, "interior row averages full window")
	assert.Equal(t, 150.0, out.Row(2).Value)
	assert.Equal(t, 3.0, out.Row(0).Sigma, "sigma is averaged the same way")

	_, err = tbl.Smooth(-1)
	assert.ErrorIs(t, err, curve.ErrBadWindow)
}

// TestGlue_Postbomb verifies the postbomb concatenation contract.
func TestGlue_Postbomb(t *testing.T) {
	main := newWiggleTable(t)
	pb, err := curve.New(
		[]float64{-60, -30, 0},
		[]float64{-500, -400, 95},
		[]float64{5, 5, 5},
	)
	require.NoError(t, err)

	glued, err := main.Glue(pb)
	require.NoError(t, err)
	assert.Equal(t, -60.0, glued.MinCalBP())
	assert.Equal(t, 500.0, glued.MaxCalBP())
	// The postbomb row at the shared boundary age 0 is dropped.
	assert.Equal(t, main.Len()+2, glued.Len())
	assert.Equal(t, 100.0, mustAt(t, glued, 0).Value, "boundary row comes from the main table")

	_, err = main.Glue(nil)
	assert.ErrorIs(t, err, curve.ErrNilTable)

	// A "postbomb" table entirely inside the main range cannot glue.
	inside, err := curve.New([]float64{10, 20}, []float64{1, 2}, []float64{1, 1})
	require.NoError(t, err)
	_, err = main.Glue(inside)
	assert.ErrorIs(t, err, curve.ErrBadGlue)
}

// TestInF14C_And_InPMC verifies the realm-converted copies.
func TestInF14C_And_InPMC(t *testing.T) {
	tbl := newWiggleTable(t)

	f := tbl.InF14C()
	wantF := math.Exp(-100.0 / 8033)
	assert.InDelta(t, wantF, f.Row(0).Value, 1e-12)
	assert.InDelta(t, wantF*10/8033, f.Row(0).Sigma, 1e-12)

	p := tbl.InPMC()
	assert.InDelta(t, 100*wantF, p.Row(0).Value, 1e-10)

	// The original table is untouched.
	assert.Equal(t, 100.0, tbl.Row(0).Value)
}

// TestTable_ConcurrentReads shares one table across goroutines with no
// synchronization, per the read-only lifecycle contract.
func TestTable_ConcurrentReads(t *testing.T) {
	tbl := newWiggleTable(t)
	const workers = 64

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(k int) {
			defer wg.Done()
			p, err := tbl.At(float64(k%500), curve.RuleError)
			assert.NoError(t, err)
			assert.False(t, math.IsNaN(p.Value))
			_ = tbl.CalendarAgesOf(130)
		}(i)
	}
	wg.Wait()
}

// mustAt is a test helper for infallible lookups.
func mustAt(t *testing.T, tbl *curve.Table, age float64) curve.Point {
	t.Helper()
	p, err := tbl.At(age, curve.RuleError)
	require.NoError(t, err)

	return p
}
