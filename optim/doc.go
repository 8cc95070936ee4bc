// Package optim provides bounded local minimizers for small parameter vectors.
//
// Every minimizer implements the Minimizer interface: given an objective, a
// starting point and box constraints, it returns the best point it found.
// The returned point always lies inside the box. Failing to converge is not
// an error; it is reported through Result.Status so the caller can decide
// whether the best point is usable.
//
// # Methods
//
//   - NelderMead: derivative-free simplex search (gonum optimize)
//   - LBFGS: quasi-Newton with finite-difference gradients (gonum optimize)
//   - ProjectedGradient: gradient steps projected back into the box
//
// NelderMead and LBFGS are unconstrained methods. They see the objective
// evaluated at the nearest point inside the box plus a quadratic penalty on
// the distance outside it, and their final point is clamped.
//
// Any function with the right shape can be used through MinimizerFunc:
//
//	var m optim.Minimizer = optim.MinimizerFunc(myMinimize)
package optim
