// Package timeseries provides the series value type shared by the estimator
// and the diagnostics.
package timeseries

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Series is a named observed sequence indexed by position.
type Series struct {
	Values []float64
	Name   string
}

// New creates a series from values.
func New(values []float64) *Series {
	return &Series{Values: values}
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// Std calculates the sample standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// FirstNonFinite returns the index of the first NaN or infinite value,
// or -1 when every value is finite.
func (s *Series) FirstNonFinite() int {
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}
