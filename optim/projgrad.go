package optim

import (
	"math"
	"time"

	"gonum.org/v1/gonum/diff/fd"
)

// ProjectedGradient minimizes by taking finite-difference gradient steps and
// clamping each step back into the box. The step length grows after a
// successful step and is halved until the objective decreases.
type ProjectedGradient struct {
	Settings Settings
	// Step is the initial step length; zero means 0.1.
	Step float64
}

// Minimize implements Minimizer.
func (m *ProjectedGradient) Minimize(f Objective, x0 []float64, b Bounds) (*Result, error) {
	if err := checkProblem(x0, b); err != nil {
		return nil, err
	}
	s := m.Settings.withDefaults()
	step := m.Step
	if step <= 0 {
		step = 0.1
	}

	c := &counter{f: f}
	inside := func(y []float64) float64 {
		return c.eval(b.Clamp(y))
	}
	fdSettings := &fd.Settings{Formula: fd.Central}

	start := time.Now()
	x := b.Clamp(x0)
	fx := c.eval(x)
	grad := make([]float64, len(x))
	cand := make([]float64, len(x))
	status := IterationLimit

	iter := 0
	for ; iter < s.MaxIterations; iter++ {
		if c.n >= s.MaxEvaluations {
			status = EvaluationLimit
			break
		}
		if s.Runtime > 0 && time.Since(start) > s.Runtime {
			status = RuntimeLimit
			break
		}

		fd.Gradient(grad, inside, x, fdSettings)

		improved := false
		fc := fx
		for try := 0; try < 40; try++ {
			for i := range x {
				cand[i] = x[i] - step*grad[i]
			}
			b.clampInto(cand, cand)
			fc = c.eval(cand)
			if fc < fx {
				improved = true
				break
			}
			step /= 2
		}

		if !improved {
			// No descent direction left inside the box.
			status = Converged
			break
		}

		delta := fx - fc
		copy(x, cand)
		fx = fc
		step = math.Min(step*1.5, 1e3)

		if delta < s.Tolerance {
			status = Converged
			break
		}
	}

	return &Result{
		X:           x,
		F:           fx,
		Status:      status,
		Iterations:  iter,
		Evaluations: c.n,
		Runtime:     time.Since(start),
	}, nil
}
