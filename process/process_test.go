package process

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitenRecurrence(t *testing.T) {
	x := []float64{1.2, -0.5, 0.3, 0.8, -1.1}
	mu, theta := 0.25, -0.4

	eps := Whiten(x, mu, theta)
	require.Len(t, eps, len(x))

	assert.Equal(t, x[0]-mu, eps[0])
	for i := 1; i < len(x); i++ {
		assert.Equal(t, x[i]-mu-theta*eps[i-1], eps[i], "step %d", i)
	}
}

func TestWhitenBaseCaseIgnoresTheta(t *testing.T) {
	x := []float64{3.5, 1, 2}
	for _, theta := range []float64{-5, -0.99, 0, 0.5, 0.99, 7} {
		eps := Whiten(x, 1.5, theta)
		assert.Equal(t, 2.0, eps[0], "theta=%v", theta)
	}
}

func TestWhitenEmpty(t *testing.T) {
	assert.Empty(t, Whiten(nil, 0, 0.5))
	assert.Empty(t, SimulateMA1(nil, 0, 0.5))
	assert.Empty(t, SimulateAR1(nil, 0, 0.5))
}

func TestWhitenDeterministic(t *testing.T) {
	x := Innovations(64, 1, 3)
	a := Whiten(x, 0.1, 0.6)
	b := Whiten(x, 0.1, 0.6)
	assert.Equal(t, a, b)
}

func TestWhitenIntoReusesBuffer(t *testing.T) {
	x := []float64{1, 2, 3}
	buf := make([]float64, 0, 8)

	out := WhitenInto(buf, x, 0, 0.5)
	require.Len(t, out, 3)
	assert.Same(t, &buf[:1][0], &out[0])
	assert.Equal(t, Whiten(x, 0, 0.5), out)

	small := make([]float64, 1)
	out = WhitenInto(small, x, 0, 0.5)
	assert.Len(t, out, 3)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		mu    float64
		theta float64
		seed  uint64
	}{
		{"zero mean", 0, 0.7, 1},
		{"negative theta", 2.5, -0.8, 2},
		{"white noise", -1, 0, 3},
		{"near unit", 0.3, 0.98, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eps := Innovations(300, 1.3, tt.seed)
			x := SimulateMA1(eps, tt.mu, tt.theta)
			got := Whiten(x, tt.mu, tt.theta)

			require.Len(t, got, len(eps))
			for i := range eps {
				assert.InDelta(t, eps[i], got[i], 1e-9, "index %d", i)
			}
		})
	}
}

func TestSimulateMA1(t *testing.T) {
	eps := []float64{1, -1, 2}
	x := SimulateMA1(eps, 10, 0.5)
	assert.Equal(t, []float64{11, 9.5, 11.5}, x)
}

func TestSimulateAR1(t *testing.T) {
	eps := []float64{1, 0, 0, 2}
	x := SimulateAR1(eps, 1, 0.5)
	// mu only enters the first value
	assert.Equal(t, []float64{2, 1, 0.5, 2.25}, x)
}

func TestInnovations(t *testing.T) {
	a := Innovations(2000, 2, 99)
	b := Innovations(2000, 2, 99)
	c := Innovations(2000, 2, 100)

	require.Len(t, a, 2000)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	mean, ss := 0.0, 0.0
	for _, v := range a {
		mean += v
	}
	mean /= float64(len(a))
	for _, v := range a {
		ss += (v - mean) * (v - mean)
	}
	sd := math.Sqrt(ss / float64(len(a)-1))

	assert.InDelta(t, 0, mean, 0.2)
	assert.InDelta(t, 2, sd, 0.2)

	assert.Empty(t, Innovations(0, 1, 1))
	assert.Empty(t, Innovations(-3, 1, 1))
}
