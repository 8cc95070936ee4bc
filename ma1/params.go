package ma1

import (
	"fmt"
	"math"

	"github.com/sartorproj/goma/optim"
)

// Params is an MA(1) parameter set.
type Params struct {
	Mu    float64 // process mean
	Theta float64 // moving-average coefficient
	Sigma float64 // innovation standard deviation
}

// DefaultGuess returns the starting point (0, 0, 1).
func DefaultGuess() Params {
	return Params{Mu: 0, Theta: 0, Sigma: 1}
}

func (p Params) vector() []float64 {
	return []float64{p.Mu, p.Theta, p.Sigma}
}

func paramsFromVector(v []float64) Params {
	return Params{Mu: v[0], Theta: v[1], Sigma: v[2]}
}

func (p Params) finite() bool {
	for _, v := range p.vector() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (p Params) String() string {
	return fmt.Sprintf("mu=%.4f theta=%.4f sigma=%.4f", p.Mu, p.Theta, p.Sigma)
}

// Bounds are box constraints on the parameters.
type Bounds struct {
	Lower Params
	Upper Params
}

// DefaultBounds returns mu in [-5, 5], theta in [-0.99, 0.99] and
// sigma in [1e-3, 5].
func DefaultBounds() Bounds {
	return Bounds{
		Lower: Params{Mu: -5, Theta: -0.99, Sigma: 1e-3},
		Upper: Params{Mu: 5, Theta: 0.99, Sigma: 5},
	}
}

// Validate checks that the bounds are finite, ordered and keep sigma positive.
func (b Bounds) Validate() error {
	if !b.Lower.finite() || !b.Upper.finite() {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidInput)
	}
	if b.Lower.Mu > b.Upper.Mu || b.Lower.Theta > b.Upper.Theta || b.Lower.Sigma > b.Upper.Sigma {
		return fmt.Errorf("%w: lower bound exceeds upper bound", ErrInvalidInput)
	}
	if b.Lower.Sigma <= 0 {
		return fmt.Errorf("%w: sigma lower bound must be positive, got %g", ErrInvalidInput, b.Lower.Sigma)
	}
	return nil
}

// Contains reports whether p lies inside the bounds.
func (b Bounds) Contains(p Params) bool {
	return b.box().Contains(p.vector())
}

// Clamp returns p projected onto the bounds.
func (b Bounds) Clamp(p Params) Params {
	return paramsFromVector(b.box().Clamp(p.vector()))
}

func (b Bounds) box() optim.Bounds {
	return optim.Bounds{Lower: b.Lower.vector(), Upper: b.Upper.vector()}
}

// Side tells which bound, if any, a parameter converged to.
type Side int

const (
	Interior Side = iota
	AtLower
	AtUpper
)

func (s Side) String() string {
	switch s {
	case AtLower:
		return "lower"
	case AtUpper:
		return "upper"
	}
	return "interior"
}

// BoundaryFlags records which parameters ended on a bound.
type BoundaryFlags struct {
	Mu    Side
	Theta Side
	Sigma Side
}

// Any reports whether any parameter ended on a bound.
func (f BoundaryFlags) Any() bool {
	return f.Mu != Interior || f.Theta != Interior || f.Sigma != Interior
}

func (f BoundaryFlags) String() string {
	if !f.Any() {
		return "none"
	}
	s := ""
	add := func(name string, side Side) {
		if side == Interior {
			return
		}
		if s != "" {
			s += ","
		}
		s += name + "=" + side.String()
	}
	add("mu", f.Mu)
	add("theta", f.Theta)
	add("sigma", f.Sigma)
	return s
}

// boundaryFlags reports the parameters of p within tol*(upper-lower) of a bound.
func boundaryFlags(p Params, b Bounds, tol float64) BoundaryFlags {
	side := func(v, lo, hi float64) Side {
		eps := tol * (hi - lo)
		switch {
		case v <= lo+eps:
			return AtLower
		case v >= hi-eps:
			return AtUpper
		}
		return Interior
	}
	return BoundaryFlags{
		Mu:    side(p.Mu, b.Lower.Mu, b.Upper.Mu),
		Theta: side(p.Theta, b.Lower.Theta, b.Upper.Theta),
		Sigma: side(p.Sigma, b.Lower.Sigma, b.Upper.Sigma),
	}
}
