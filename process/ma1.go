package process

// Whiten reconstructs the innovation sequence implied by observations x under
// an MA(1) process with mean mu and coefficient theta.
//
// residual[0] depends only on x[0] and mu; residual[t] depends on x[t], mu,
// theta and residual[t-1]. The recurrence is defined for any theta, including
// values outside the invertible region.
func Whiten(x []float64, mu, theta float64) []float64 {
	return WhitenInto(nil, x, mu, theta)
}

// WhitenInto is like Whiten but writes into dst when it has enough capacity.
// The returned slice has length len(x).
func WhitenInto(dst, x []float64, mu, theta float64) []float64 {
	n := len(x)
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	if n == 0 {
		return dst
	}

	prev := x[0] - mu
	dst[0] = prev
	for t := 1; t < n; t++ {
		prev = x[t] - mu - theta*prev
		dst[t] = prev
	}
	return dst
}

// SimulateMA1 generates observations of an MA(1) process from innovations eps.
func SimulateMA1(eps []float64, mu, theta float64) []float64 {
	n := len(eps)
	x := make([]float64, n)
	if n == 0 {
		return x
	}

	x[0] = mu + eps[0]
	for t := 1; t < n; t++ {
		x[t] = mu + eps[t] + theta*eps[t-1]
	}
	return x
}

// SimulateAR1 generates an AR(1) process driven by innovations eps.
// The mean only enters through the first observation; later values follow
// x[t] = phi*x[t-1] + eps[t].
func SimulateAR1(eps []float64, mu, phi float64) []float64 {
	n := len(eps)
	x := make([]float64, n)
	if n == 0 {
		return x
	}

	x[0] = mu + eps[0]
	for t := 1; t < n; t++ {
		x[t] = phi*x[t-1] + eps[t]
	}
	return x
}
