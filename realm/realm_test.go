// Package realm_test verifies realm conversions and their error
// propagation against closed-form expectations.
package realm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/c14/realm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// TestCalBP_BCAD_RoundTrip verifies BCADToCalBP(CalBPToBCAD(t)) == t
// for ages on both sides of the AD 1950 anchor, in astronomical mode.
func TestCalBP_BCAD_RoundTrip(t *testing.T) {
	in := []float64{-30, 0, 130, 1949, 1950, 1951, 5000, 26000}

	got := realm.BCADToCalBP(realm.CalBPToBCAD(in))
	require.Len(t, got, len(in))
	for i := range in {
		assert.InDelta(t, in[i], got[i], eps, "round trip at calBP=%v", in[i])
	}
}

// TestCalBP_BCAD_RoundTrip_SkipYearZero verifies that the round trip
// holds under historical year numbering as well, including the ages
// that straddle the missing year 0.
func TestCalBP_BCAD_RoundTrip_SkipYearZero(t *testing.T) {
	in := []float64{1948, 1949, 1950, 1951, 1952, 3000}

	bcad := realm.CalBPToBCAD(in, realm.WithSkipYearZero())
	got := realm.BCADToCalBP(bcad, realm.WithSkipYearZero())
	for i := range in {
		assert.InDelta(t, in[i], got[i], eps, "round trip at calBP=%v", in[i])
	}
}

// TestCalBPToBCAD_SkipYearZero_ShiftsBCYears checks the one-year shift:
// astronomical year 0 (calBP 1950) must render as 1 BC, i.e. −1.
func TestCalBPToBCAD_SkipYearZero_ShiftsBCYears(t *testing.T) {
	out := realm.CalBPToBCAD([]float64{1950, 1951, 1949}, realm.WithSkipYearZero())

	assert.Equal(t, -1.0, out[0], "calBP 1950 is 1 BC under historical numbering")
	assert.Equal(t, -2.0, out[1], "calBP 1951 is 2 BC under historical numbering")
	assert.Equal(t, 1.0, out[2], "AD years are unaffected")
}

// TestCalBP_B2K verifies the fixed 50-year offset in both directions.
func TestCalBP_B2K(t *testing.T) {
	b2k := realm.CalBPToB2K([]float64{0, 100})
	assert.Equal(t, []float64{50, 150}, b2k)
	assert.Equal(t, []float64{0, 100}, realm.B2KToCalBP(b2k))
}

// TestC14_F14C_RoundTrip verifies F14CToC14(C14ToF14C(age)) == age and
// that the propagated sigma matches the delta-method expectation.
func TestC14_F14C_RoundTrip(t *testing.T) {
	age := []float64{-500, 0, 130, 2000, 5000, 40000}
	sigma := []float64{10, 15, 10, 30, 20, 500}

	f, fs, err := realm.C14ToF14C(age, sigma)
	require.NoError(t, err)
	back, bs, err := realm.F14CToC14(f, fs)
	require.NoError(t, err)

	for i := range age {
		assert.InDelta(t, age[i], back[i], 1e-6, "age round trip at %v", age[i])
		assert.InDelta(t, sigma[i], bs[i], 1e-6, "sigma round trip at %v", age[i])
	}

	// Spot check the forward values at 2000 ± 30 against the closed form.
	assert.InDelta(t, 0.7796010329065692, f[3], 1e-12)
	assert.InDelta(t, 0.002911493960811288, fs[3], 1e-12)
}

// TestC14ToF14C_MeansOnly verifies that a nil sigma slice converts
// means only and returns a nil sigma result.
func TestC14ToF14C_MeansOnly(t *testing.T) {
	f, fs, err := realm.C14ToF14C([]float64{5000}, nil)
	require.NoError(t, err)
	assert.Nil(t, fs)
	assert.InDelta(t, 0.53663749618842, f[0], 1e-12)
}

// TestF14CToC14_NonPositive verifies the typed domain error for the
// logarithmic inverse: no NaN, no Inf, a sentinel.
func TestF14CToC14_NonPositive(t *testing.T) {
	_, _, err := realm.F14CToC14([]float64{0.5, 0}, nil)
	assert.ErrorIs(t, err, realm.ErrNonPositiveF14C)

	_, _, err = realm.F14CToC14([]float64{-0.1}, nil)
	assert.ErrorIs(t, err, realm.ErrNonPositiveF14C)

	_, _, err = realm.F14CToC14Point(0, 1)
	assert.ErrorIs(t, err, realm.ErrNonPositiveF14C)
}

// TestPairValidation verifies ErrNegativeSigma and ErrLengthMismatch
// fire at the call that detects them.
func TestPairValidation(t *testing.T) {
	_, _, err := realm.C14ToF14C([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, realm.ErrLengthMismatch)

	_, _, err = realm.C14ToF14C([]float64{1}, []float64{-1})
	assert.ErrorIs(t, err, realm.ErrNegativeSigma)

	_, _, err = realm.F14CToPMC([]float64{1}, []float64{-0.5})
	assert.ErrorIs(t, err, realm.ErrNegativeSigma)
}

// TestF14C_PMC verifies the trivial ×100 scale and its linear sigma.
func TestF14C_PMC(t *testing.T) {
	pmc, ps, err := realm.F14CToPMC([]float64{0.5, 1.2}, []float64{0.01, 0.02})
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 120}, pmc)
	assert.Equal(t, []float64{1, 2}, ps)

	f, fs, err := realm.PMCToF14C(pmc, ps)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, f[0], eps)
	assert.InDelta(t, 0.01, fs[0], eps)
}

// TestF14C_D14C_RoundTrip verifies the delta-notation conversion and
// its inverse against one hand-computed anchor.
func TestF14C_D14C_RoundTrip(t *testing.T) {
	const curveF, curveSigma = 0.55, 0.002

	d, ds, err := realm.F14CToD14C([]float64{0.5}, []float64{0.004}, curveF, curveSigma)
	require.NoError(t, err)
	assert.InDelta(t, -90.90909090909093, d[0], 1e-9, "D14C of F=0.5 against Fc=0.55")

	// Quadrature of the two partial-derivative terms.
	want := math.Hypot(1000*0.004/curveF, 1000*0.5*curveSigma/(curveF*curveF))
	assert.InDelta(t, want, ds[0], 1e-9)

	f, _, err := realm.D14CToF14C(d, ds, curveF, curveSigma)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, f[0], 1e-12, "mean round trip")
}

// TestF14CToD14C_BadBaseline verifies baseline validation.
func TestF14CToD14C_BadBaseline(t *testing.T) {
	_, _, err := realm.F14CToD14C([]float64{0.5}, nil, 0, 0)
	assert.ErrorIs(t, err, realm.ErrNonPositiveF14C)

	_, _, err = realm.D14CToF14C([]float64{10}, nil, 0.5, -1)
	assert.ErrorIs(t, err, realm.ErrNegativeSigma)
}
