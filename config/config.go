// Package config loads estimator settings from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sartorproj/goma/ma1"
	"github.com/sartorproj/goma/optim"
)

// EstimatorConfig is the YAML form of an estimator configuration.
// Omitted keys keep the values from Default.
type EstimatorConfig struct {
	Guess             Guess           `yaml:"guess"`
	Bounds            BoundsConfig    `yaml:"bounds"`
	Optimizer         OptimizerConfig `yaml:"optimizer"`
	BoundaryTolerance float64         `yaml:"boundary_tolerance"`
	DiagnosticLags    int             `yaml:"diagnostic_lags"`
	Restarts          []Guess         `yaml:"restarts,omitempty"` // extra starting points for FitBest
}

// Guess is a parameter set.
type Guess struct {
	Mu    float64 `yaml:"mu"`
	Theta float64 `yaml:"theta"`
	Sigma float64 `yaml:"sigma"`
}

// Range is a closed interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// BoundsConfig holds the box constraints per parameter.
type BoundsConfig struct {
	Mu    Range `yaml:"mu"`
	Theta Range `yaml:"theta"`
	Sigma Range `yaml:"sigma"`
}

// OptimizerConfig selects and limits the minimizer.
type OptimizerConfig struct {
	Method         string        `yaml:"method"`
	MaxIterations  int           `yaml:"max_iterations"`
	MaxEvaluations int           `yaml:"max_evaluations"`
	Tolerance      float64       `yaml:"tolerance"`
	Runtime        time.Duration `yaml:"runtime"`
}

// Default returns the configuration matching ma1.DefaultConfig.
func Default() *EstimatorConfig {
	d := ma1.DefaultConfig()
	s := optim.DefaultSettings()
	return &EstimatorConfig{
		Guess: fromParams(d.Guess),
		Bounds: BoundsConfig{
			Mu:    Range{Min: d.Bounds.Lower.Mu, Max: d.Bounds.Upper.Mu},
			Theta: Range{Min: d.Bounds.Lower.Theta, Max: d.Bounds.Upper.Theta},
			Sigma: Range{Min: d.Bounds.Lower.Sigma, Max: d.Bounds.Upper.Sigma},
		},
		Optimizer: OptimizerConfig{
			Method:         optim.MethodNelderMead,
			MaxIterations:  s.MaxIterations,
			MaxEvaluations: s.MaxEvaluations,
			Tolerance:      s.Tolerance,
		},
		BoundaryTolerance: d.BoundaryTolerance,
		DiagnosticLags:    d.DiagnosticLags,
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (*EstimatorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default.
func Parse(data []byte) (*EstimatorConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration without building an estimator.
func (c *EstimatorConfig) Validate() error {
	if _, err := optim.ByName(c.Optimizer.Method, optim.Settings{}); err != nil {
		return err
	}
	b := c.bounds()
	if err := b.Validate(); err != nil {
		return err
	}
	if !b.Contains(c.Guess.params()) {
		return fmt.Errorf("%w: guess outside bounds", ma1.ErrInvalidInput)
	}
	for i, g := range c.Restarts {
		if !b.Contains(g.params()) {
			return fmt.Errorf("%w: restart %d outside bounds", ma1.ErrInvalidInput, i)
		}
	}
	if c.BoundaryTolerance <= 0 || c.BoundaryTolerance >= 0.5 {
		return fmt.Errorf("boundary_tolerance must be in (0, 0.5), got %g", c.BoundaryTolerance)
	}
	if c.DiagnosticLags < 1 {
		return fmt.Errorf("diagnostic_lags must be at least 1, got %d", c.DiagnosticLags)
	}
	return nil
}

// ToEstimator converts c into an ma1.Config.
func (c *EstimatorConfig) ToEstimator() (ma1.Config, error) {
	if err := c.Validate(); err != nil {
		return ma1.Config{}, err
	}
	m, err := optim.ByName(c.Optimizer.Method, optim.Settings{
		MaxIterations:  c.Optimizer.MaxIterations,
		MaxEvaluations: c.Optimizer.MaxEvaluations,
		Tolerance:      c.Optimizer.Tolerance,
		Runtime:        c.Optimizer.Runtime,
	})
	if err != nil {
		return ma1.Config{}, err
	}
	return ma1.Config{
		Guess:             c.Guess.params(),
		Bounds:            c.bounds(),
		Minimizer:         m,
		BoundaryTolerance: c.BoundaryTolerance,
		DiagnosticLags:    c.DiagnosticLags,
	}, nil
}

// RestartGuesses returns the configured extra starting points.
func (c *EstimatorConfig) RestartGuesses() []ma1.Params {
	out := make([]ma1.Params, len(c.Restarts))
	for i, g := range c.Restarts {
		out[i] = g.params()
	}
	return out
}

func (c *EstimatorConfig) bounds() ma1.Bounds {
	return ma1.Bounds{
		Lower: ma1.Params{Mu: c.Bounds.Mu.Min, Theta: c.Bounds.Theta.Min, Sigma: c.Bounds.Sigma.Min},
		Upper: ma1.Params{Mu: c.Bounds.Mu.Max, Theta: c.Bounds.Theta.Max, Sigma: c.Bounds.Sigma.Max},
	}
}

func (g Guess) params() ma1.Params {
	return ma1.Params{Mu: g.Mu, Theta: g.Theta, Sigma: g.Sigma}
}

func fromParams(p ma1.Params) Guess {
	return Guess{Mu: p.Mu, Theta: p.Theta, Sigma: p.Sigma}
}
