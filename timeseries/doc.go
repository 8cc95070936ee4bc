// Package timeseries provides the Series type used to hand observed data to
// the estimator and the residual diagnostics.
//
// # Creating a Series
//
//	values := []float64{1.2, -0.5, 0.3, 0.8, -1.1}
//	series := timeseries.New(values)
//	series.Name = "demand"
//
// # Basic Statistics
//
//	mean := series.Mean()
//	std := series.Std()
//
// # Validation
//
//	if i := series.FirstNonFinite(); i >= 0 {
//	    // series.Values[i] is NaN or infinite
//	}
package timeseries
