package calibrate

import "github.com/katalvlaran/c14/curve"

// Younger returns the probability that the calibrated calendar age of
// the measurement is younger than (or equal to) the given threshold,
// i.e. the calibrated distribution's cumulative mass at calendar ages
// ≤ calBP. The threshold is always in cal BP, regardless of axis
// options. Thresholds below the calibrated support return 0; above
// it, 1.
//
// Errors: as Calibrate.
func Younger(calBP float64, m Measurement, tbl *curve.Table, opts ...Option) (float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	// The cumulative readout needs a normalized cal BP axis.
	cfg.AsBCAD = false
	cfg.Normalize = true
	cfg.RenormalizeAfterTrim = true

	d, err := calibrate(m, tbl, cfg)
	if err != nil {
		return 0, err
	}

	if calBP < d.X[0] {
		return 0, nil
	}
	cum := 0.0
	for i, p := range d.P {
		if d.X[i] > calBP {
			// Fractional share of the step that straddles the threshold.
			if i > 0 {
				frac := (calBP - d.X[i-1]) / (d.X[i] - d.X[i-1])
				cum += frac * p
			}

			return cum, nil
		}
		cum += p
	}

	return 1, nil
}

// Older returns the complement of Younger: the probability that the
// calibrated calendar age is older than the threshold. By construction
// Older + Younger == 1 for any input.
//
// Errors: as Calibrate.
func Older(calBP float64, m Measurement, tbl *curve.Table, opts ...Option) (float64, error) {
	younger, err := Younger(calBP, m, tbl, opts...)
	if err != nil {
		return 0, err
	}

	return 1 - younger, nil
}
