package optim

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	// ErrDimension is returned when the start point and bounds disagree in size.
	ErrDimension = errors.New("optim: dimension mismatch")
	// ErrBounds is returned for malformed box constraints.
	ErrBounds = errors.New("optim: invalid bounds")
	// ErrUnknownMethod is returned by ByName for unrecognized method names.
	ErrUnknownMethod = errors.New("optim: unknown method")
)

// Objective is a scalar function of a parameter vector.
// Implementations must not retain or modify x.
type Objective func(x []float64) float64

// Minimizer finds a local minimum of f inside the box b, starting at x0.
type Minimizer interface {
	Minimize(f Objective, x0 []float64, b Bounds) (*Result, error)
}

// MinimizerFunc adapts an ordinary function to the Minimizer interface.
type MinimizerFunc func(f Objective, x0 []float64, b Bounds) (*Result, error)

// Minimize calls fn(f, x0, b).
func (fn MinimizerFunc) Minimize(f Objective, x0 []float64, b Bounds) (*Result, error) {
	return fn(f, x0, b)
}

// Status describes how a minimization run ended.
type Status int

const (
	Converged Status = iota
	IterationLimit
	EvaluationLimit
	RuntimeLimit
	Failure
)

// OK reports whether the run converged.
func (s Status) OK() bool {
	return s == Converged
}

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case IterationLimit:
		return "iteration limit"
	case EvaluationLimit:
		return "evaluation limit"
	case RuntimeLimit:
		return "runtime limit"
	case Failure:
		return "failure"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of a minimization run.
type Result struct {
	X           []float64 // best point found, inside the bounds
	F           float64   // objective at X
	Status      Status
	Iterations  int
	Evaluations int
	Runtime     time.Duration
}

// Settings limits the work a minimizer may do.
// Zero fields fall back to DefaultSettings.
type Settings struct {
	MaxIterations  int
	MaxEvaluations int
	Runtime        time.Duration // zero means no limit
	Tolerance      float64       // absolute change in objective treated as convergence
}

// DefaultSettings returns the settings used when none are given.
func DefaultSettings() Settings {
	return Settings{
		MaxIterations:  2000,
		MaxEvaluations: 20000,
		Tolerance:      1e-10,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.MaxIterations <= 0 {
		s.MaxIterations = d.MaxIterations
	}
	if s.MaxEvaluations <= 0 {
		s.MaxEvaluations = d.MaxEvaluations
	}
	if s.Tolerance <= 0 {
		s.Tolerance = d.Tolerance
	}
	return s
}

// Method names accepted by ByName.
const (
	MethodNelderMead        = "neldermead"
	MethodLBFGS             = "lbfgs"
	MethodProjectedGradient = "projgrad"
)

// Methods lists the names accepted by ByName.
func Methods() []string {
	return []string{MethodNelderMead, MethodLBFGS, MethodProjectedGradient}
}

// ByName returns the minimizer registered under name.
func ByName(name string, settings Settings) (Minimizer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MethodNelderMead, "nelder-mead", "":
		return &NelderMead{Settings: settings}, nil
	case MethodLBFGS, "l-bfgs":
		return &LBFGS{Settings: settings}, nil
	case MethodProjectedGradient, "projected-gradient":
		return &ProjectedGradient{Settings: settings}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// counter wraps an objective and counts evaluations.
type counter struct {
	f Objective
	n int
}

func (c *counter) eval(x []float64) float64 {
	c.n++
	v := c.f(x)
	if math.IsNaN(v) {
		return math.Inf(1)
	}
	return v
}
