// Package goma provides maximum-likelihood estimation of first-order
// moving-average (MA(1)) models.
//
// # Features
//
//   - Forward simulation and inverse reconstruction of MA(1) residuals
//   - Conditional Gaussian likelihood and bounded numerical fitting
//   - Pluggable bounded minimizers (Nelder-Mead, L-BFGS, projected gradient)
//   - Boundary and convergence reporting, restarts, concurrent batch fits
//   - Residual diagnostics (ACF, Ljung-Box, Durbin-Watson)
//
// # Quick Start
//
// Simulate data and fit it:
//
//	eps := process.Innovations(200, 1.0, 42)
//	x := process.SimulateMA1(eps, 0.0, 0.7)
//
//	res, err := ma1.New(ma1.DefaultConfig()).Fit(x)
//	if err != nil && !errors.Is(err, ma1.ErrNotConverged) {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Params)
//
// # Packages
//
//   - process: MA(1)/AR(1) simulation and residual reconstruction
//   - ma1: the estimator
//   - optim: bounded minimizers
//   - stats: residual diagnostics
//   - timeseries: series value type
//   - config: YAML estimator configuration
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
package goma
