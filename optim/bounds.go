package optim

import (
	"fmt"
	"math"
)

// Bounds holds box constraints Lower[i] <= x[i] <= Upper[i].
type Bounds struct {
	Lower []float64
	Upper []float64
}

// Dim returns the number of constrained coordinates.
func (b Bounds) Dim() int {
	return len(b.Lower)
}

// Validate checks that the bounds are well formed.
func (b Bounds) Validate() error {
	if len(b.Lower) != len(b.Upper) {
		return fmt.Errorf("%w: %d lower and %d upper values", ErrBounds, len(b.Lower), len(b.Upper))
	}
	if len(b.Lower) == 0 {
		return fmt.Errorf("%w: no coordinates", ErrBounds)
	}
	for i := range b.Lower {
		lo, hi := b.Lower[i], b.Upper[i]
		if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			return fmt.Errorf("%w: coordinate %d is not finite", ErrBounds, i)
		}
		if lo > hi {
			return fmt.Errorf("%w: coordinate %d has lower %g > upper %g", ErrBounds, i, lo, hi)
		}
	}
	return nil
}

// Contains reports whether x lies inside the box.
func (b Bounds) Contains(x []float64) bool {
	if len(x) != len(b.Lower) {
		return false
	}
	for i, v := range x {
		if !(v >= b.Lower[i] && v <= b.Upper[i]) {
			return false
		}
	}
	return true
}

// Clamp returns a copy of x projected onto the box.
func (b Bounds) Clamp(x []float64) []float64 {
	out := make([]float64, len(x))
	b.clampInto(out, x)
	return out
}

func (b Bounds) clampInto(dst, x []float64) {
	for i, v := range x {
		dst[i] = math.Max(b.Lower[i], math.Min(b.Upper[i], v))
	}
}

// outside returns the squared Euclidean distance from x to the box.
func (b Bounds) outside(x []float64) float64 {
	d := 0.0
	for i, v := range x {
		switch {
		case v < b.Lower[i]:
			d += (b.Lower[i] - v) * (b.Lower[i] - v)
		case v > b.Upper[i]:
			d += (v - b.Upper[i]) * (v - b.Upper[i])
		}
	}
	return d
}

func checkProblem(x0 []float64, b Bounds) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if len(x0) != b.Dim() {
		return fmt.Errorf("%w: start point has %d values, bounds have %d", ErrDimension, len(x0), b.Dim())
	}
	return nil
}
