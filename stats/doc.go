// Package stats provides residual diagnostics for fitted moving-average models.
//
// # Autocorrelation
//
//	acf := stats.ACF(series, 20)
//	// acf[0] == 1, acf[k] is the lag-k sample autocorrelation
//
// # Residual Tests
//
// A well-specified model leaves residuals that look like white noise:
//
//	// Ljung-Box test
//	// H0: no autocorrelation up to the given lag
//	lb := stats.LjungBox(residSeries, 10, 1)
//	if lb.PValue < 0.05 {
//	    // Residuals are autocorrelated; the model misses structure
//	}
//
//	// Durbin-Watson statistic, near 2 when there is no lag-1 correlation
//	dw := stats.DurbinWatson(residuals)
package stats
