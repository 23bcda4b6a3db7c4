package calibrate_test

import (
	"fmt"

	"github.com/katalvlaran/c14/calibrate"
	"github.com/katalvlaran/c14/curve"
)

// ExampleCalibrate calibrates a radiocarbon date against a small
// synthetic curve and summarizes the result.
//
// Scenario:
//
//	A linear curve (C14 age == calendar age) turns calibration into
//	placing the measurement's own normal distribution on the calendar
//	axis, so the mode lands exactly on the measured age.
func ExampleCalibrate() {
	ages := make([]float64, 101)
	sigmas := make([]float64, 101)
	for i := range ages {
		ages[i] = float64(i * 10)
	}
	tbl, err := curve.New(ages, ages, sigmas)
	if err != nil {
		fmt.Println("bad table:", err)

		return
	}

	d, err := calibrate.Calibrate(calibrate.Measurement{Mean: 500, Sigma: 30}, tbl)
	if err != nil {
		fmt.Println("calibration failed:", err)

		return
	}

	mode, _ := d.Mode()
	fmt.Printf("axis: %s\n", d.XLabel)
	fmt.Printf("mode: %.0f\n", mode)
	fmt.Printf("mass: %.2f\n", d.Sum())
	// Output:
	// axis: cal BP
	// mode: 500
	// mass: 1.00
}
