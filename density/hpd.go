package density

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// HPD derives the highest-posterior-density interval set at the given
// coverage (e.g. 0.95).
//
// Algorithm:
//  1. Re-grid to constant spacing (Step). When the natural support
//     holds fewer than MinBins steps, re-grid to FallbackBins points
//     instead, so each grid point carries comparable mass.
//  2. Normalize to total mass 1.
//  3. Rank points by probability descending (ties broken by x
//     ascending for determinism) and accumulate mass until the
//     coverage is reached; every accumulated point is "in".
//  4. Read the in/out flags back in x order and emit one Interval per
//     contiguous in-run, with its enclosed mass as a rounded
//     percentage of the whole.
//
// The set's total mass is ≥ coverage and exceeds it by at most one
// grid point's probability.
//
// Errors: ErrBadCoverage, ErrEmptyDensity, ErrZeroMass.
//
// Complexity: O(m log m) for m grid points.
func (d Density) HPD(coverage float64, opts ...HPDOption) ([]Interval, error) {
	if coverage <= 0 || coverage > 1 {
		return nil, ErrBadCoverage
	}
	if d.Len() == 0 {
		return nil, ErrEmptyDensity
	}
	cfg := DefaultHPDOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	work, err := d.hpdGrid(cfg)
	if err != nil {
		return nil, err
	}
	if work.Len() == 1 {
		// Degenerate support: the single point carries all the mass.
		return []Interval{{From: work.X[0], To: work.X[0], Percent: roundTo(100, cfg.Precision)}}, nil
	}

	// Rank by probability descending, x ascending on ties.
	order := make([]int, work.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if work.P[order[a]] != work.P[order[b]] {
			return work.P[order[a]] > work.P[order[b]]
		}

		return work.X[order[a]] < work.X[order[b]]
	})

	in := make([]bool, work.Len())
	cum := 0.0
	for _, k := range order {
		in[k] = true
		cum += work.P[k]
		if cum >= coverage {
			break
		}
	}

	// Contiguous in-runs become intervals.
	var out []Interval
	for i := 0; i < work.Len(); {
		if !in[i] {
			i++

			continue
		}
		j := i
		mass := 0.0
		for j < work.Len() && in[j] {
			mass += work.P[j]
			j++
		}
		out = append(out, Interval{
			From:    work.X[i],
			To:      work.X[j-1],
			Percent: roundTo(100*mass, cfg.Precision),
		})
		i = j
	}

	return out, nil
}

// Midpoint returns the midpoint of the full span of the HPD interval
// set at the given coverage: (first.From + last.To) / 2.
func (d Density) Midpoint(coverage float64, opts ...HPDOption) (float64, error) {
	ivs, err := d.HPD(coverage, opts...)
	if err != nil {
		return 0, err
	}

	return (ivs[0].From + ivs[len(ivs)-1].To) / 2, nil
}

// Overlap resamples the receiver and other onto their common support,
// reports the pointwise-minimum shared mass, and declares overlap true
// when the two HPD interval sets at the given coverage intersect.
//
// Densities with disjoint supports overlap trivially false with zero
// shared mass. Shared mass is computed on the common grid after
// normalizing each density over that grid.
//
// Errors: ErrBadCoverage, ErrEmptyDensity, ErrZeroMass.
func (d Density) Overlap(other Density, coverage float64, opts ...HPDOption) (bool, float64, error) {
	if d.Len() == 0 || other.Len() == 0 {
		return false, 0, ErrEmptyDensity
	}
	cfg := DefaultHPDOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	lo := math.Max(d.X[0], other.X[0])
	hi := math.Min(d.X[len(d.X)-1], other.X[len(other.X)-1])

	var shared float64
	if lo < hi {
		pa := sampleOn(d, lo, hi, cfg.Step)
		pb := sampleOn(other, lo, hi, cfg.Step)
		sa, sb := floats.Sum(pa), floats.Sum(pb)
		if sa > 0 && sb > 0 {
			floats.Scale(1/sa, pa)
			floats.Scale(1/sb, pb)
			for i := range pa {
				shared += math.Min(pa[i], pb[i])
			}
		}
	}

	ia, err := d.HPD(coverage, opts...)
	if err != nil {
		return false, 0, err
	}
	ib, err := other.HPD(coverage, opts...)
	if err != nil {
		return false, 0, err
	}
	for _, a := range ia {
		for _, b := range ib {
			if a.From <= b.To && b.From <= a.To {
				return true, shared, nil
			}
		}
	}

	return false, shared, nil
}

// hpdGrid applies the adaptive regridding policy: Step spacing when the
// support is wide enough, FallbackBins points otherwise.
func (d Density) hpdGrid(cfg HPDOptions) (Density, error) {
	if d.Len() == 1 {
		return d.Normalize()
	}
	span := d.X[len(d.X)-1] - d.X[0]
	step := cfg.Step
	if span/step+1 < float64(cfg.MinBins) {
		step = span / float64(cfg.FallbackBins-1)
	}
	work, err := d.Regrid(step)
	if err != nil {
		return Density{}, err
	}

	return work.Normalize()
}

// sampleOn linearly interpolates d's probabilities on the grid
// [lo, hi] with the given step (hi appended when the grid misses it).
func sampleOn(d Density, lo, hi, step float64) []float64 {
	n := int(math.Floor((hi-lo)/step)) + 1
	grid := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		grid = append(grid, lo+float64(i)*step)
	}
	if grid[len(grid)-1] < hi {
		grid = append(grid, hi)
	}

	out := make([]float64, len(grid))
	if d.Len() == 1 {
		return out
	}
	seg := 0
	for i, x := range grid {
		if x < d.X[0] || x > d.X[len(d.X)-1] {
			continue // outside support: zero
		}
		for seg+2 < len(d.X) && d.X[seg+1] < x {
			seg++
		}
		out[i] = lerp(d.X[seg], d.P[seg], d.X[seg+1], d.P[seg+1], x)
	}

	return out
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, digits int) float64 {
	k := math.Pow(10, float64(digits))

	return math.Round(v*k) / k
}
