package ma1

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goma/process"
)

// NegLogLikelihood returns the conditional Gaussian negative log-likelihood
// of observations x under p. It is +Inf when sigma is not positive or a
// parameter is not finite.
func NegLogLikelihood(x []float64, p Params) float64 {
	return negLogLik(x, nil, p)
}

// negLogLik evaluates the likelihood, reusing buf for the residuals.
func negLogLik(x, buf []float64, p Params) float64 {
	if !p.finite() || p.Sigma <= 0 {
		return math.Inf(1)
	}
	eps := process.WhitenInto(buf, x, p.Mu, p.Theta)
	return gaussianNLL(len(x), floats.Dot(eps, eps), p.Sigma)
}

func gaussianNLL(n int, sumSq, sigma float64) float64 {
	v := sigma * sigma
	nll := 0.5*float64(n)*math.Log(2*math.Pi*v) + sumSq/(2*v)
	if math.IsNaN(nll) {
		return math.Inf(1)
	}
	return nll
}
