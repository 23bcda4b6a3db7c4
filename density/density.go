package density

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// New builds a Density from parallel x and p columns, validating shape,
// ordering and non-negativity. The slices are deep-copied.
//
// Errors: ErrEmptyDensity, ErrLengthMismatch, ErrUnsortedX,
// ErrNegativeProb.
//
// Complexity: O(n).
func New(x, p []float64) (Density, error) {
	if len(x) == 0 {
		return Density{}, ErrEmptyDensity
	}
	if len(p) != len(x) {
		return Density{}, ErrLengthMismatch
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return Density{}, ErrUnsortedX
		}
	}
	for _, v := range p {
		if v < 0 {
			return Density{}, ErrNegativeProb
		}
	}
	d := Density{
		X: make([]float64, len(x)),
		P: make([]float64, len(p)),
	}
	copy(d.X, x)
	copy(d.P, p)

	return d, nil
}

// Len returns the number of sampled points.
func (d Density) Len() int { return len(d.X) }

// Sum returns the total probability mass.
func (d Density) Sum() float64 { return floats.Sum(d.P) }

// Normalize returns a copy whose probabilities sum to 1.
//
// Errors: ErrEmptyDensity, ErrZeroMass.
func (d Density) Normalize() (Density, error) {
	if d.Len() == 0 {
		return Density{}, ErrEmptyDensity
	}
	total := d.Sum()
	if total == 0 {
		return Density{}, ErrZeroMass
	}
	out := d.clone()
	floats.Scale(1/total, out.P)

	return out, nil
}

// Trim returns a copy with leading and trailing points below
// threshold × max(p) removed. Interior dips survive: only the tails are
// cut, preserving multi-modal shapes. When every point falls below the
// threshold the single highest point is kept, so the result is never
// empty (minimum-support guarantee).
//
// Complexity: O(n).
func (d Density) Trim(threshold float64) Density {
	if d.Len() == 0 {
		return d
	}
	cut := threshold * floats.Max(d.P)

	lo := 0
	for lo < len(d.P) && d.P[lo] < cut {
		lo++
	}
	if lo == len(d.P) {
		// All mass below threshold: keep the argmax point.
		k := argmax(d.P)

		return Density{X: []float64{d.X[k]}, P: []float64{d.P[k]}, XLabel: d.XLabel}
	}
	hi := len(d.P) - 1
	for hi > lo && d.P[hi] < cut {
		hi--
	}

	out := Density{
		X:      append([]float64(nil), d.X[lo:hi+1]...),
		P:      append([]float64(nil), d.P[lo:hi+1]...),
		XLabel: d.XLabel,
	}

	return out
}

// Regrid returns a copy re-interpolated onto a constant-step grid over
// the same x range. The range end is appended when the grid does not
// land on it. A single-point density is returned unchanged.
//
// Errors: ErrBadStep.
//
// Complexity: O(m + n) for m output points.
func (d Density) Regrid(step float64) (Density, error) {
	if step <= 0 {
		return Density{}, ErrBadStep
	}
	if d.Len() <= 1 {
		return d.clone(), nil
	}

	start, end := d.X[0], d.X[len(d.X)-1]
	n := int(math.Floor((end-start)/step)) + 1
	grid := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		grid = append(grid, start+float64(i)*step)
	}
	if grid[len(grid)-1] < end {
		grid = append(grid, end)
	}

	out := Density{
		X:      grid,
		P:      make([]float64, len(grid)),
		XLabel: d.XLabel,
	}
	seg := 0
	for i, x := range grid {
		for seg+2 < len(d.X) && d.X[seg+1] < x {
			seg++
		}
		out.P[i] = lerp(d.X[seg], d.P[seg], d.X[seg+1], d.P[seg+1], x)
	}

	return out, nil
}

// Mean returns the probability-weighted mean Σ(x·p)/Σp.
//
// Errors: ErrEmptyDensity, ErrZeroMass.
func (d Density) Mean() (float64, error) {
	if d.Len() == 0 {
		return 0, ErrEmptyDensity
	}
	if d.Sum() == 0 {
		return 0, ErrZeroMass
	}

	return stat.Mean(d.X, d.P), nil
}

// Median returns the x at which the cumulative probability first
// reaches half the total mass, linearly interpolated on the cumulative
// curve and clamped to the support boundaries.
//
// Errors: ErrEmptyDensity, ErrZeroMass.
func (d Density) Median() (float64, error) {
	if d.Len() == 0 {
		return 0, ErrEmptyDensity
	}
	total := d.Sum()
	if total == 0 {
		return 0, ErrZeroMass
	}

	half := total / 2
	cum := 0.0
	for i, p := range d.P {
		next := cum + p
		if next >= half {
			if i == 0 || p == 0 {
				return d.X[i], nil
			}
			// Interpolate within the step that crosses the half mass.
			frac := (half - cum) / p

			return d.X[i-1] + frac*(d.X[i]-d.X[i-1]), nil
		}
		cum = next
	}

	return d.X[len(d.X)-1], nil
}

// Mode returns the x of the maximum probability, first occurrence on
// ties.
//
// Errors: ErrEmptyDensity.
func (d Density) Mode() (float64, error) {
	if d.Len() == 0 {
		return 0, ErrEmptyDensity
	}

	return d.X[argmax(d.P)], nil
}

// clone returns a deep copy of the density.
func (d Density) clone() Density {
	return Density{
		X:      append([]float64(nil), d.X...),
		P:      append([]float64(nil), d.P...),
		XLabel: d.XLabel,
	}
}

// argmax returns the index of the first maximum of p.
func argmax(p []float64) int {
	k := 0
	for i, v := range p {
		if v > p[k] {
			k = i
		}
	}

	return k
}

// lerp linearly interpolates the value at x between (x0,y0) and (x1,y1).
// Callers guarantee x0 < x1 and x within [x0, x1] up to grid rounding;
// values outside clamp to the nearer endpoint.
func lerp(x0, y0, x1, y1, x float64) float64 {
	if x <= x0 {
		return y0
	}
	if x >= x1 {
		return y1
	}

	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}
