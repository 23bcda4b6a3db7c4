package calibrate

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/c14/curve"
	"github.com/katalvlaran/c14/density"
	"github.com/katalvlaran/c14/realm"
)

// nullCurveRows is the row count of the synthetic identity curve used
// in null-curve mode.
const nullCurveRows = 321

// Calibrate converts an uncalibrated measurement into a calibrated
// probability density over calendar ages, following the staged
// algorithm documented on the package.
//
// tbl may be nil (null-curve mode): the measurement's plain
// distribution is placed directly on the calendar axis over
// mean ± 4σ, for non-radiocarbon normally distributed input.
//
// Returns a Density with XLabel "cal BP" (or "BC/AD" under WithBCAD),
// never empty.
//
// Errors: ErrBadMeasurement, ErrPostbombRequired (recoverable),
// ErrDegenerateDensity, plus regrid failures.
//
// Complexity: O(n log n) in the working-curve row count.
func Calibrate(m Measurement, tbl *curve.Table, opts ...Option) (density.Density, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return calibrate(m, tbl, cfg)
}

// calibrate is the option-resolved engine shared with Younger/Older.
func calibrate(m Measurement, tbl *curve.Table, cfg Options) (density.Density, error) {
	if m.Sigma <= 0 {
		return density.Density{}, ErrBadMeasurement
	}

	// Stage 1: reservoir offset.
	y := m.Mean - cfg.DeltaR
	s := math.Hypot(m.Sigma, cfg.DeltaRSigma)

	// Stage 2: resolve the working curve.
	var work *curve.Table
	if tbl == nil {
		work = identityCurve(y, s)
	} else {
		switch cfg.Realm {
		case RealmF14C:
			work = tbl.InF14C()
		case RealmPMC:
			work = tbl.InPMC()
		default:
			work = tbl
		}

		// Stage 3: postbomb detection. A table whose calendar axis
		// already extends below 0 cal BP carries postbomb rows.
		if !cfg.AllowPostbomb && work.MinCalBP() >= 0 && intrudesPostbomb(y, s, cfg.Realm) {
			return density.Density{}, ErrPostbombRequired
		}
	}

	// Stage 4: likelihood over the curve rows.
	n := work.Len()
	xs := make([]float64, n)
	ps := make([]float64, n)
	for i := 0; i < n; i++ {
		row := work.Row(i)
		xs[i] = row.CalBP
		ps[i] = likelihood(y, s, row, cfg)
	}
	d := density.Density{X: xs, P: ps, XLabel: density.XLabelCalBP}

	// Stage 5: regrid to a regular calendar axis when requested.
	if cfg.Step > 0 {
		regridded, err := d.Regrid(cfg.Step)
		if err != nil {
			return density.Density{}, err
		}
		d = regridded
	}

	if d.Sum() == 0 {
		return density.Density{}, ErrDegenerateDensity
	}

	// Stage 6: first normalization pass.
	if cfg.Normalize {
		normalized, err := d.Normalize()
		if err != nil {
			return density.Density{}, err
		}
		d = normalized
	}

	// Stage 7: trim tails, then the (deliberate) second normalization
	// pass over the truncated support only.
	if cfg.TrimThreshold > 0 {
		d = d.Trim(cfg.TrimThreshold)
		if cfg.Normalize && cfg.RenormalizeAfterTrim {
			normalized, err := d.Normalize()
			if err != nil {
				return density.Density{}, err
			}
			d = normalized
		}
	}

	// Stage 8: calendar-axis transform.
	if cfg.AsBCAD {
		d = toBCAD(d)
	}

	return d, nil
}

// likelihood evaluates one curve row under the configured model.
func likelihood(y, s float64, row curve.Point, cfg Options) float64 {
	variance := s*s + row.Sigma*row.Sigma
	if cfg.Likelihood == StudentT {
		dev := y - row.Value

		return math.Pow(cfg.TB+dev*dev/(2*variance), -(cfg.TA + 0.5))
	}

	return distuv.Normal{Mu: row.Value, Sigma: math.Sqrt(variance)}.Prob(y)
}

// intrudesPostbomb reports whether the 3σ envelope of the offset-
// adjusted measurement reaches past the modern boundary of its realm:
// 0 for C14 ages, 1 for F14C, 100 for pMC.
func intrudesPostbomb(y, s float64, r Realm) bool {
	switch r {
	case RealmF14C:
		return y+3*s > 1
	case RealmPMC:
		return y+3*s > 100
	default:
		return y-3*s < 0
	}
}

// identityCurve synthesizes the null-curve-mode pseudo-curve: the curve
// value equals the calendar age itself, spanning mean ± 4σ with zero
// curve uncertainty.
func identityCurve(y, s float64) *curve.Table {
	lo, hi := y-4*s, y+4*s
	step := (hi - lo) / float64(nullCurveRows-1)
	ages := make([]float64, nullCurveRows)
	sigmas := make([]float64, nullCurveRows)
	for i := range ages {
		ages[i] = lo + float64(i)*step
	}
	tbl, err := curve.New(ages, ages, sigmas)
	if err != nil {
		// Unreachable: s > 0 guarantees a strictly increasing axis.
		panic(err)
	}

	return tbl
}

// toBCAD transforms the density axis from cal BP to BC/AD
// (astronomical numbering) and restores ascending x order.
func toBCAD(d density.Density) density.Density {
	n := len(d.X)
	out := density.Density{
		X:      make([]float64, n),
		P:      make([]float64, n),
		XLabel: density.XLabelBCAD,
	}
	bcad := realm.CalBPToBCAD(d.X)
	for i := 0; i < n; i++ {
		out.X[i] = bcad[n-1-i]
		out.P[i] = d.P[n-1-i]
	}

	return out
}
