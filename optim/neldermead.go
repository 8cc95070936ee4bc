package optim

import "gonum.org/v1/gonum/optimize"

// NelderMead minimizes with the downhill simplex method.
type NelderMead struct {
	Settings Settings
	// SimplexSize is the initial simplex edge length; zero uses gonum's default.
	SimplexSize float64
}

// Minimize implements Minimizer.
func (m *NelderMead) Minimize(f Objective, x0 []float64, b Bounds) (*Result, error) {
	method := &optimize.NelderMead{SimplexSize: m.SimplexSize}
	return runGonum(method, false, f, x0, b, m.Settings)
}
