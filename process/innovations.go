package process

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Innovations draws n independent N(0, sigma^2) values from a source seeded
// with seed. The same seed always yields the same sequence.
func Innovations(n int, sigma float64, seed uint64) []float64 {
	if n <= 0 {
		return []float64{}
	}

	dist := distuv.Normal{
		Mu:    0,
		Sigma: sigma,
		Src:   rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}

	eps := make([]float64, n)
	for i := range eps {
		eps[i] = dist.Rand()
	}
	return eps
}
