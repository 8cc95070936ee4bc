// Package ma1 estimates first-order moving-average models by maximum
// likelihood.
//
// An MA(1) process is described by three parameters: the mean mu, the
// moving-average coefficient theta and the innovation standard deviation
// sigma. Given an observed sequence, the estimator reconstructs the implied
// innovations for a candidate parameter set (see the process package) and
// scores them with the Gaussian negative log-likelihood
//
//	nll = n/2 * ln(2*pi*sigma^2) + sum(eps[t]^2) / (2*sigma^2)
//
// The likelihood is conditional on eps[0] = x[0] - mu; it is not the exact
// MA(1) likelihood a Kalman filter would give.
//
// # Basic Usage
//
//	est := ma1.New(ma1.DefaultConfig())
//	res, err := est.Fit(values)
//	switch {
//	case errors.Is(err, ma1.ErrNotConverged):
//	    // res holds the best point found; treat with care
//	case err != nil:
//	    log.Fatal(err)
//	}
//	fmt.Printf("mu=%.3f theta=%.3f sigma=%.3f\n",
//	    res.Params.Mu, res.Params.Theta, res.Params.Sigma)
//
// # Boundary Convergence
//
// Estimation is box constrained (by default mu in [-5, 5], theta in
// [-0.99, 0.99], sigma in [1e-3, 5]). A result sitting on a bound is
// returned normally with Result.Boundary set; it usually means the model or
// the bounds do not suit the data.
//
// # Restarts and Batches
//
// The likelihood surface need not be convex in theta. FitBest runs the
// estimator from several starting points and keeps the best local optimum.
// FitAll fits many independent series concurrently.
package ma1
