package calibrate_test

import (
	"testing"

	"github.com/katalvlaran/c14/calibrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestYoungerOlder_Complement verifies Older == 1 − Younger across
// thresholds.
func TestYoungerOlder_Complement(t *testing.T) {
	tbl := newIdentityTable(t, 0, 1000, 10, 0)
	m := calibrate.Measurement{Mean: 500, Sigma: 30}

	for _, at := range []float64{400, 500, 560, 0, 1000} {
		younger, err := calibrate.Younger(at, m, tbl)
		require.NoError(t, err)
		older, err := calibrate.Older(at, m, tbl)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, younger+older, 1e-12, "complement at %v", at)
	}
}

// TestYounger_CumulativeShape verifies monotonicity and the boundary
// clamps of the cumulative readout.
func TestYounger_CumulativeShape(t *testing.T) {
	tbl := newIdentityTable(t, 0, 1000, 10, 0)
	m := calibrate.Measurement{Mean: 500, Sigma: 30}

	below, err := calibrate.Younger(100, m, tbl)
	require.NoError(t, err)
	assert.Zero(t, below, "threshold below the calibrated support")

	above, err := calibrate.Younger(900, m, tbl)
	require.NoError(t, err)
	assert.Equal(t, 1.0, above, "threshold above the calibrated support")

	mid, err := calibrate.Younger(500, m, tbl)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mid, 0.08, "roughly half the mass sits below the peak")

	prev := -1.0
	for _, at := range []float64{350, 450, 500, 550, 650} {
		y, err := calibrate.Younger(at, m, tbl)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, y, prev, "cumulative mass is monotone")
		prev = y
	}
}

// TestYounger_ErrorsPropagate verifies engine failures surface.
func TestYounger_ErrorsPropagate(t *testing.T) {
	tbl := newIdentityTable(t, 0, 1000, 10, 0)

	_, err := calibrate.Younger(100, calibrate.Measurement{Mean: 50, Sigma: 0}, tbl)
	assert.ErrorIs(t, err, calibrate.ErrBadMeasurement)
}
