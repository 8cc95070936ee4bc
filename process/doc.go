// Package process simulates and inverts first-order moving-average processes.
//
// An MA(1) process with mean mu and coefficient theta is driven by an
// innovation sequence eps:
//
//	x[0] = mu + eps[0]
//	x[t] = mu + eps[t] + theta*eps[t-1]
//
// SimulateMA1 runs this recurrence forward. Whiten runs it backwards and
// recovers the innovations implied by an observed sequence:
//
//	eps[0] = x[0] - mu
//	eps[t] = x[t] - mu - theta*eps[t-1]
//
// The two are exact inverses of each other for any mu and theta, so
//
//	process.Whiten(process.SimulateMA1(eps, mu, theta), mu, theta)
//
// returns eps up to floating-point rounding.
//
// # Generating Data
//
// Innovations draws a reproducible Gaussian sequence from a seed:
//
//	eps := process.Innovations(200, 1.0, 42)
//	x := process.SimulateMA1(eps, 0.0, 0.7)
//
// SimulateAR1 builds the AR(1) process driven by the same shocks, which is
// useful for contrasting how a shock propagates under each model.
package process
