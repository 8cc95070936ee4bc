package optim

import "gonum.org/v1/gonum/optimize"

// LBFGS minimizes with limited-memory BFGS using central-difference gradients.
type LBFGS struct {
	Settings Settings
	// Store is the number of past updates kept; zero uses gonum's default.
	Store int
}

// Minimize implements Minimizer.
func (m *LBFGS) Minimize(f Objective, x0 []float64, b Bounds) (*Result, error) {
	method := &optimize.LBFGS{Store: m.Store}
	return runGonum(method, true, f, x0, b, m.Settings)
}
