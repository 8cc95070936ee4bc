// Package stats provides statistical tests and functions for residual analysis.
package stats

import (
	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goma/timeseries"
)

// ACF returns the sample autocorrelations of series for lags 0 to maxLag.
// maxLag is capped at Len()-1. It returns nil for a constant series or a
// negative maxLag.
func ACF(series *timeseries.Series, maxLag int) []float64 {
	n := series.Len()
	maxLag = min(maxLag, n-1)
	if maxLag < 0 {
		return nil
	}

	centered := make([]float64, n)
	copy(centered, series.Values)
	floats.AddConst(-series.Mean(), centered)

	c0 := floats.Dot(centered, centered)
	if c0 == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := range acf {
		acf[k] = floats.Dot(centered[k:], centered[:n-k]) / c0
	}
	return acf
}
