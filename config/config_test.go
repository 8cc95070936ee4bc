package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goma/ma1"
	"github.com/sartorproj/goma/optim"
)

func TestDefaultMatchesEstimatorDefaults(t *testing.T) {
	cfg, err := Default().ToEstimator()
	require.NoError(t, err)

	d := ma1.DefaultConfig()
	assert.Equal(t, d.Guess, cfg.Guess)
	assert.Equal(t, d.Bounds, cfg.Bounds)
	assert.Equal(t, d.BoundaryTolerance, cfg.BoundaryTolerance)
	assert.Equal(t, d.DiagnosticLags, cfg.DiagnosticLags)
	assert.IsType(t, &optim.NelderMead{}, cfg.Minimizer)
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	data := []byte(`
optimizer:
  method: lbfgs
  max_iterations: 500
  runtime: 2s
bounds:
  theta:
    min: -0.9
    max: 0.9
restarts:
  - {mu: 0.5, theta: 0.5, sigma: 1}
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "lbfgs", cfg.Optimizer.Method)
	assert.Equal(t, 500, cfg.Optimizer.MaxIterations)
	assert.Equal(t, 2*time.Second, cfg.Optimizer.Runtime)
	assert.Equal(t, optim.DefaultSettings().MaxEvaluations, cfg.Optimizer.MaxEvaluations)
	assert.Equal(t, Range{Min: -0.9, Max: 0.9}, cfg.Bounds.Theta)
	assert.Equal(t, Range{Min: -5, Max: 5}, cfg.Bounds.Mu)
	assert.Equal(t, []ma1.Params{{Mu: 0.5, Theta: 0.5, Sigma: 1}}, cfg.RestartGuesses())

	est, err := cfg.ToEstimator()
	require.NoError(t, err)
	m, ok := est.Minimizer.(*optim.LBFGS)
	require.True(t, ok)
	assert.Equal(t, 500, m.Settings.MaxIterations)
	assert.Equal(t, 0.9, est.Bounds.Upper.Theta)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"syntax", "optimizer: [unterminated"},
		{"unknown method", "optimizer:\n  method: annealing\n"},
		{"inverted bounds", "bounds:\n  mu: {min: 1, max: -1}\n"},
		{"nonpositive sigma", "bounds:\n  sigma: {min: 0, max: 5}\n"},
		{"guess outside", "guess: {mu: 0, theta: 2, sigma: 1}\n"},
		{"restart outside", "restarts:\n  - {mu: 9, theta: 0, sigma: 1}\n"},
		{"tolerance", "boundary_tolerance: 0.7\n"},
		{"zero tolerance", "boundary_tolerance: 0\n"},
		{"lags", "diagnostic_lags: -1\n"},
		{"zero lags", "diagnostic_lags: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimator.yaml")
	require.NoError(t, os.WriteFile(path, []byte("guess: {mu: 0.1, theta: 0.2, sigma: 0.5}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Guess{Mu: 0.1, Theta: 0.2, Sigma: 0.5}, cfg.Guess)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadedConfigFits(t *testing.T) {
	cfg, err := Parse([]byte("optimizer:\n  method: projgrad\n"))
	require.NoError(t, err)
	est, err := cfg.ToEstimator()
	require.NoError(t, err)

	res, err := ma1.New(est).Fit([]float64{1.2, -0.5, 0.3, 0.8, -1.1, 0.4, -0.2})
	if err != nil {
		require.ErrorIs(t, err, ma1.ErrNotConverged)
	}
	require.NotNil(t, res)
	assert.Positive(t, res.Params.Sigma)
}
