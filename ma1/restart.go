package ma1

import (
	"errors"
	"math"

	"github.com/sartorproj/goma/stats"
	"github.com/sartorproj/goma/timeseries"
)

// MomentGuess returns a method-of-moments starting point for x, clamped into
// b. theta solves r1 = theta/(1+theta^2) on the invertible branch, where r1
// is the lag-1 sample autocorrelation; |r1| >= 0.5 has no invertible
// solution and maps to the edge of the invertible region.
func MomentGuess(x []float64, b Bounds) Params {
	s := timeseries.New(x)
	p := Params{Mu: s.Mean(), Sigma: 1}

	if acf := stats.ACF(s, 1); len(acf) > 1 {
		r1 := acf[1]
		switch {
		case r1 >= 0.5:
			p.Theta = 0.99
		case r1 <= -0.5:
			p.Theta = -0.99
		case r1 != 0:
			p.Theta = (1 - math.Sqrt(1-4*r1*r1)) / (2 * r1)
		}
	}

	if sd := s.Std(); sd > 0 {
		p.Sigma = sd / math.Sqrt(1+p.Theta*p.Theta)
	}
	return b.Clamp(p)
}

// FitBest fits x from the configured guess, the moment guess and any extra
// guesses, and returns the converged result with the lowest negative
// log-likelihood. When no start converges it returns the best of the
// unconverged results with an error wrapping ErrNotConverged.
func (e *Estimator) FitBest(x []float64, guesses ...Params) (*Result, error) {
	if err := checkObservations(x); err != nil {
		return nil, err
	}

	starts := append([]Params{e.cfg.Guess, MomentGuess(x, e.cfg.Bounds)}, guesses...)

	var best, fallback *Result
	var fallbackErr error
	for i, g := range starts {
		r, err := e.fitFrom(x, g)
		switch {
		case err == nil:
			if best == nil || r.NegLogLik < best.NegLogLik {
				best = r
			}
		case errors.Is(err, ErrNotConverged):
			if fallback == nil || r.NegLogLik < fallback.NegLogLik {
				fallback, fallbackErr = r, err
			}
		default:
			return nil, err
		}
		e.logger().Debug().Int("start", i).Str("guess", g.String()).Err(err).Msg("MA(1) restart finished")
	}

	if best != nil {
		return best, nil
	}
	return fallback, fallbackErr
}
