package contam_test

import (
	"fmt"

	"github.com/katalvlaran/c14/contam"
)

// ExampleContaminate shows the canonical textbook case: 1% modern
// contamination makes a 5000 BP date look roughly 70 years younger.
func ExampleContaminate() {
	res, err := contam.Contaminate(5000, 20, 0.01, 0, 1, 0)
	if err != nil {
		fmt.Println("contamination failed:", err)

		return
	}
	fmt.Printf("observed: %.0f ± %.0f C14 BP (%s)\n", res.Mean, res.Sigma, res.Mode)
	// Output:
	// observed: 4931 ± 20 C14 BP (analytic)
}

// ExampleMuckFraction solves for the contamination needed to explain
// an observed/target age pair.
func ExampleMuckFraction() {
	frac, err := contam.MuckFraction(4931, 5000, 1)
	if err != nil {
		fmt.Println("no feasible contamination:", err)

		return
	}
	fmt.Printf("required fraction: %.1f%%\n", 100*frac)
	// Output:
	// required fraction: 1.0%
}
