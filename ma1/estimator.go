package ma1

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sartorproj/goma/optim"
	"github.com/sartorproj/goma/timeseries"
)

// Config controls an Estimator.
type Config struct {
	// Guess is the starting point. The zero value means DefaultGuess.
	Guess Params
	// Bounds constrain the search. The zero value means DefaultBounds.
	Bounds Bounds
	// Minimizer performs the bounded search. Nil means a Nelder-Mead
	// minimizer with default settings. It must be safe for concurrent use
	// when the config is shared by FitAll.
	Minimizer optim.Minimizer
	// BoundaryTolerance is the fraction of a bound's width within which a
	// parameter is reported as sitting on that bound. Zero means 1e-6.
	BoundaryTolerance float64
	// DiagnosticLags is the number of lags used by the Ljung-Box test on the
	// fitted residuals. Zero means 10.
	DiagnosticLags int
	// Logger receives fit progress and warnings. Nil means the global
	// zerolog logger at the time of the fit.
	Logger *zerolog.Logger
}

// DefaultConfig starts at (0, 0, 1) with DefaultBounds and a Nelder-Mead
// minimizer.
func DefaultConfig() Config {
	return Config{
		Guess:             DefaultGuess(),
		Bounds:            DefaultBounds(),
		Minimizer:         &optim.NelderMead{Settings: optim.DefaultSettings()},
		BoundaryTolerance: 1e-6,
		DiagnosticLags:    10,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Guess == (Params{}) {
		c.Guess = d.Guess
	}
	if c.Bounds == (Bounds{}) {
		c.Bounds = d.Bounds
	}
	if c.Minimizer == nil {
		c.Minimizer = d.Minimizer
	}
	if c.BoundaryTolerance <= 0 {
		c.BoundaryTolerance = d.BoundaryTolerance
	}
	if c.DiagnosticLags <= 0 {
		c.DiagnosticLags = d.DiagnosticLags
	}
	return c
}

// Estimator fits MA(1) models. It holds no state between fits and may be
// used from several goroutines when its Minimizer allows it.
type Estimator struct {
	cfg Config
}

// New creates an Estimator, filling unset fields of cfg with defaults.
func New(cfg Config) *Estimator {
	return &Estimator{cfg: cfg.withDefaults()}
}

// Config returns the effective configuration.
func (e *Estimator) Config() Config {
	return e.cfg
}

func (e *Estimator) logger() *zerolog.Logger {
	if e.cfg.Logger != nil {
		return e.cfg.Logger
	}
	return &log.Logger
}

// Fit estimates MA(1) parameters for the observed sequence x.
//
// An empty or non-finite x yields ErrInvalidInput. A single observation is
// accepted but degenerate. When the minimizer stops without converging Fit
// returns the best result found together with an error wrapping
// ErrNotConverged. x is not modified.
func (e *Estimator) Fit(x []float64) (*Result, error) {
	return e.fitFrom(x, e.cfg.Guess)
}

// FitSeries is Fit applied to the values of s. Log entries carry the
// series name.
func (e *Estimator) FitSeries(s *timeseries.Series) (*Result, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil series", ErrInvalidInput)
	}
	named := e.logger().With().Str("series", s.Name).Logger()
	sub := &Estimator{cfg: e.cfg}
	sub.cfg.Logger = &named
	return sub.fitFrom(s.Values, e.cfg.Guess)
}

func checkObservations(x []float64) error {
	s := timeseries.New(x)
	if s.Len() == 0 {
		return fmt.Errorf("%w: empty observed sequence", ErrInvalidInput)
	}
	if i := s.FirstNonFinite(); i >= 0 {
		return fmt.Errorf("%w: observation %d is not finite", ErrInvalidInput, i)
	}
	return nil
}

func (e *Estimator) fitFrom(x []float64, guess Params) (*Result, error) {
	if err := checkObservations(x); err != nil {
		return nil, err
	}
	bounds := e.cfg.Bounds
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if !bounds.Contains(guess) {
		return nil, fmt.Errorf("%w: initial guess (%s) outside bounds", ErrInvalidInput, guess)
	}
	logger := e.logger()
	if len(x) == 1 {
		logger.Warn().Msg("fitting MA(1) to a single observation; estimates are degenerate")
	}

	data := make([]float64, len(x))
	copy(data, x)

	buf := make([]float64, len(data))
	objective := func(v []float64) float64 {
		return negLogLik(data, buf, paramsFromVector(v))
	}

	res, err := e.cfg.Minimizer.Minimize(objective, guess.vector(), bounds.box())
	if err != nil {
		return nil, fmt.Errorf("ma1: minimizer failed: %w", err)
	}
	if res == nil || len(res.X) != 3 {
		return nil, fmt.Errorf("ma1: minimizer returned a malformed result")
	}

	result := newResult(data, paramsFromVector(res.X), res, e.cfg)

	logger.Debug().
		Int("n", result.NObs).
		Float64("mu", result.Params.Mu).
		Float64("theta", result.Params.Theta).
		Float64("sigma", result.Params.Sigma).
		Float64("nll", result.NegLogLik).
		Str("status", result.Status.String()).
		Int("evaluations", result.Evaluations).
		Msg("MA(1) fit finished")

	if result.Boundary.Any() {
		logger.Warn().
			Str("boundary", result.Boundary.String()).
			Str("params", result.Params.String()).
			Msg("MA(1) fit converged on a parameter bound")
	}

	if !result.Converged {
		return result, fmt.Errorf("%w: %s after %d evaluations", ErrNotConverged, result.Status, result.Evaluations)
	}
	return result, nil
}
