package optim

import (
	"math"
	"time"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"
)

// penaltyWeight scales the squared distance outside the box.
const penaltyWeight = 1e4

// penalized evaluates f at the projection of x onto b and adds a quadratic
// penalty for the distance outside the box.
func penalized(f func([]float64) float64, b Bounds) func([]float64) float64 {
	buf := make([]float64, b.Dim())
	return func(x []float64) float64 {
		b.clampInto(buf, x)
		v := f(buf)
		if math.IsInf(v, 1) {
			return v
		}
		return v + penaltyWeight*b.outside(x)
	}
}

// runGonum drives a gonum method over the penalized objective and converts
// its result into a Result inside the box.
func runGonum(method optimize.Method, grad bool, f Objective, x0 []float64, b Bounds, s Settings) (*Result, error) {
	if err := checkProblem(x0, b); err != nil {
		return nil, err
	}
	s = s.withDefaults()
	c := &counter{f: f}
	obj := penalized(c.eval, b)

	problem := optimize.Problem{Func: obj}
	if grad {
		fdSettings := &fd.Settings{Formula: fd.Central}
		problem.Grad = func(dst, x []float64) {
			fd.Gradient(dst, obj, x, fdSettings)
		}
	}

	settings := &optimize.Settings{
		MajorIterations: s.MaxIterations,
		FuncEvaluations: s.MaxEvaluations,
		Runtime:         s.Runtime,
		Concurrent:      1,
		Converger: &optimize.FunctionConverge{
			Absolute:   s.Tolerance,
			Iterations: 50,
		},
	}

	start := time.Now()
	res, err := optimize.Minimize(problem, b.Clamp(x0), settings, method)
	if res == nil {
		return nil, err
	}

	x := b.Clamp(res.X)
	fx := c.eval(x)
	out := &Result{
		X:           x,
		F:           fx,
		Status:      convertStatus(res.Status),
		Iterations:  res.MajorIterations,
		Evaluations: c.n,
		Runtime:     time.Since(start),
	}

	if err != nil && out.Status == Converged {
		out.Status = Failure
	}
	// Line searches stall on the flat ridge the projection creates at an
	// active bound; accept the point when the projected gradient vanishes.
	if out.Status == Failure && projectedGradientNorm(f, x, b) < 1e-4 {
		out.Status = Converged
	}
	return out, nil
}

func convertStatus(s optimize.Status) Status {
	switch s {
	case optimize.Success, optimize.FunctionThreshold, optimize.FunctionConvergence,
		optimize.GradientThreshold, optimize.StepConvergence, optimize.MethodConverge:
		return Converged
	case optimize.IterationLimit:
		return IterationLimit
	case optimize.FunctionEvaluationLimit, optimize.GradientEvaluationLimit, optimize.HessianEvaluationLimit:
		return EvaluationLimit
	case optimize.RuntimeLimit:
		return RuntimeLimit
	}
	return Failure
}

// projectedGradientNorm is the infinity norm of the gradient of f at x after
// zeroing components that point out of the box at an active bound.
func projectedGradientNorm(f Objective, x []float64, b Bounds) float64 {
	inside := func(y []float64) float64 {
		return f(b.Clamp(y))
	}
	g := fd.Gradient(nil, inside, x, &fd.Settings{Formula: fd.Central})

	norm := 0.0
	for i, gi := range g {
		if math.IsNaN(gi) {
			return math.Inf(1)
		}
		if x[i] <= b.Lower[i] && gi > 0 {
			continue
		}
		if x[i] >= b.Upper[i] && gi < 0 {
			continue
		}
		norm = math.Max(norm, math.Abs(gi))
	}
	return norm
}
