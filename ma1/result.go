package ma1

import (
	"errors"
	"math"
	"time"

	"github.com/sartorproj/goma/optim"
	"github.com/sartorproj/goma/process"
	"github.com/sartorproj/goma/stats"
	"github.com/sartorproj/goma/timeseries"
)

// numParams is the number of estimated parameters (mu, theta, sigma).
const numParams = 3

// Result is the outcome of one estimation run.
type Result struct {
	Params    Params
	NegLogLik float64
	LogLik    float64
	AIC       float64
	AICc      float64 // Corrected AIC for small sample sizes
	BIC       float64

	// Residuals are the innovations reconstructed at Params.
	Residuals []float64
	// FittedValues are the one-step predictions x[t] - Residuals[t].
	FittedValues []float64
	NObs         int

	Status      optim.Status
	Converged   bool
	Boundary    BoundaryFlags
	Iterations  int
	Evaluations int
	Runtime     time.Duration

	LjungBox     *stats.LjungBoxResult // nil for fewer than 10 observations
	DurbinWatson *stats.DurbinWatsonResult
}

func newResult(x []float64, p Params, res *optim.Result, cfg Config) *Result {
	n := len(x)
	resid := process.Whiten(x, p.Mu, p.Theta)
	fitted := make([]float64, n)
	for i := range x {
		fitted[i] = x[i] - resid[i]
	}

	r := &Result{
		Params:       p,
		Residuals:    resid,
		FittedValues: fitted,
		NObs:         n,
		Status:       res.Status,
		Converged:    res.Status.OK(),
		Boundary:     boundaryFlags(p, cfg.Bounds, cfg.BoundaryTolerance),
		Iterations:   res.Iterations,
		Evaluations:  res.Evaluations,
		Runtime:      res.Runtime,
	}
	r.NegLogLik = NegLogLikelihood(x, p)
	r.calculateIC()

	// theta is the only coefficient the residual test should discount
	r.LjungBox = stats.LjungBox(timeseries.New(resid), cfg.DiagnosticLags, 1)
	r.DurbinWatson = stats.DurbinWatson(resid)
	return r
}

// calculateIC calculates AIC, AICc, and BIC.
func (r *Result) calculateIC() {
	r.LogLik = -r.NegLogLik

	k := float64(numParams)
	n := float64(r.NObs)

	// AIC = -2*loglik + 2*k
	r.AIC = -2*r.LogLik + 2*k

	if n-k-1 > 0 {
		r.AICc = r.AIC + 2*k*(k+1)/(n-k-1)
	} else {
		r.AICc = math.Inf(1)
	}

	// BIC = -2*loglik + k*log(n)
	r.BIC = -2*r.LogLik + k*math.Log(n)
}

// Predict generates forecasts for the specified number of steps ahead.
// The first step carries theta times the last residual; later steps
// revert to the mean.
func (r *Result) Predict(steps int) ([]float64, error) {
	if steps < 1 {
		return nil, errors.New("steps must be at least 1")
	}
	if len(r.Residuals) == 0 {
		return nil, errors.New("result has no residuals")
	}

	forecasts := make([]float64, steps)
	for h := range forecasts {
		forecasts[h] = r.Params.Mu
	}
	forecasts[0] += r.Params.Theta * r.Residuals[len(r.Residuals)-1]
	return forecasts, nil
}
