// Package main simulates an MA(1) process, fits it by maximum likelihood and
// reports how closely the fitted residuals track the true shocks.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sartorproj/goma/config"
	"github.com/sartorproj/goma/ma1"
	"github.com/sartorproj/goma/optim"
	"github.com/sartorproj/goma/process"
)

type options struct {
	n          int
	seed       uint64
	mu         float64
	theta      float64
	sigma      float64
	method     string
	configPath string
	restarts   bool
	jsonPath   string
	logLevel   string
}

// Report holds simulation and fit results for JSON export.
type Report struct {
	N         int           `json:"n"`
	Seed      uint64        `json:"seed"`
	True      ParamsJSON    `json:"true"`
	Estimated ParamsJSON    `json:"estimated"`
	NegLogLik float64       `json:"neg_log_lik"`
	AIC       float64       `json:"aic"`
	BIC       float64       `json:"bic"`
	Converged bool          `json:"converged"`
	Status    string        `json:"status"`
	Boundary  string        `json:"boundary"`
	Steps     []StepJSON    `json:"steps"`
	Forecasts []float64     `json:"forecasts"`
	LjungBox  *LjungBoxJSON `json:"ljung_box,omitempty"`
}

// ParamsJSON is a parameter set.
type ParamsJSON struct {
	Mu    float64 `json:"mu"`
	Theta float64 `json:"theta"`
	Sigma float64 `json:"sigma"`
}

// StepJSON is one time step of the simulation.
type StepJSON struct {
	T          int     `json:"t"`
	Shock      float64 `json:"shock"`
	MA         float64 `json:"ma"`
	AR         float64 `json:"ar"`
	FittedEps  float64 `json:"fitted_eps"`
	FittedMean float64 `json:"fitted_mean"`
}

// LjungBoxJSON summarizes the residual autocorrelation test.
type LjungBoxJSON struct {
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
	DOF       int     `json:"dof"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "ma1demo",
		Short: "Simulate and fit an MA(1) process",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(cmd.ErrOrStderr(), opts.logLevel); err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), opts)
		},
		SilenceUsage: true,
	}

	f := cmd.Flags()
	f.IntVar(&opts.n, "n", 20, "number of simulated steps")
	f.Uint64Var(&opts.seed, "seed", 1, "random seed for the innovations")
	f.Float64Var(&opts.mu, "mu", 0, "true process mean")
	f.Float64Var(&opts.theta, "theta", 0.7, "true MA coefficient (also used as the AR coefficient)")
	f.Float64Var(&opts.sigma, "sigma", 1, "true innovation standard deviation")
	f.StringVar(&opts.method, "method", "", "minimizer: "+strings.Join(optim.Methods(), ", "))
	f.StringVar(&opts.configPath, "config", "", "YAML estimator configuration")
	f.BoolVar(&opts.restarts, "restarts", false, "fit from several starting points and keep the best")
	f.StringVar(&opts.jsonPath, "json", "", "write the report as JSON to this file")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	return cmd
}

func setupLogging(w io.Writer, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
	return nil
}

func loadConfig(opts *options) (*config.EstimatorConfig, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if opts.method != "" {
		cfg.Optimizer.Method = opts.method
	}
	return cfg, cfg.Validate()
}

func run(w io.Writer, opts *options) error {
	if opts.n < 1 {
		return fmt.Errorf("--n must be at least 1, got %d", opts.n)
	}

	fileCfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	estCfg, err := fileCfg.ToEstimator()
	if err != nil {
		return err
	}

	eps := process.Innovations(opts.n, opts.sigma, opts.seed)
	ma := process.SimulateMA1(eps, opts.mu, opts.theta)
	ar := process.SimulateAR1(eps, opts.mu, opts.theta)

	log.Info().
		Int("n", opts.n).
		Uint64("seed", opts.seed).
		Str("method", fileCfg.Optimizer.Method).
		Msg("fitting MA(1)")

	est := ma1.New(estCfg)
	var res *ma1.Result
	if opts.restarts {
		res, err = est.FitBest(ma, fileCfg.RestartGuesses()...)
	} else {
		res, err = est.Fit(ma)
	}
	switch {
	case errors.Is(err, ma1.ErrNotConverged):
		log.Warn().Err(err).Msg("reporting best point found")
	case err != nil:
		return err
	}

	report := buildReport(opts, eps, ma, ar, res)
	printReport(w, report)

	if opts.jsonPath != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.jsonPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.jsonPath, err)
		}
		log.Info().Str("path", opts.jsonPath).Msg("report exported")
	}
	return nil
}

func buildReport(opts *options, eps, ma, ar []float64, res *ma1.Result) *Report {
	forecasts, _ := res.Predict(5)

	r := &Report{
		N:    opts.n,
		Seed: opts.seed,
		True: ParamsJSON{Mu: opts.mu, Theta: opts.theta, Sigma: opts.sigma},
		Estimated: ParamsJSON{
			Mu:    res.Params.Mu,
			Theta: res.Params.Theta,
			Sigma: res.Params.Sigma,
		},
		NegLogLik: res.NegLogLik,
		AIC:       res.AIC,
		BIC:       res.BIC,
		Converged: res.Converged,
		Status:    res.Status.String(),
		Boundary:  res.Boundary.String(),
		Forecasts: forecasts,
	}
	for t := range ma {
		r.Steps = append(r.Steps, StepJSON{
			T:          t,
			Shock:      eps[t],
			MA:         ma[t],
			AR:         ar[t],
			FittedEps:  res.Residuals[t],
			FittedMean: res.FittedValues[t],
		})
	}
	if lb := res.LjungBox; lb != nil {
		r.LjungBox = &LjungBoxJSON{Statistic: lb.Statistic, PValue: lb.PValue, DOF: lb.DOF}
	}
	return r
}

func printReport(w io.Writer, r *Report) {
	rule := strings.Repeat("=", 64)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "MA(1) vs AR(1), theta=phi=%.2f, n=%d, seed=%d\n", r.True.Theta, r.N, r.Seed)
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "%4s %10s %10s %10s %12s\n", "t", "shock", "MA x_t", "AR x_t", "fitted eps")
	for _, s := range r.Steps {
		fmt.Fprintf(w, "%4d %10.4f %10.4f %10.4f %12.4f\n", s.T, s.Shock, s.MA, s.AR, s.FittedEps)
	}

	fmt.Fprintln(w, strings.Repeat("-", 64))
	fmt.Fprintf(w, "%-8s %10s %10s\n", "", "true", "estimated")
	fmt.Fprintf(w, "%-8s %10.4f %10.4f\n", "mu", r.True.Mu, r.Estimated.Mu)
	fmt.Fprintf(w, "%-8s %10.4f %10.4f\n", "theta", r.True.Theta, r.Estimated.Theta)
	fmt.Fprintf(w, "%-8s %10.4f %10.4f\n", "sigma", r.True.Sigma, r.Estimated.Sigma)
	fmt.Fprintln(w, strings.Repeat("-", 64))
	fmt.Fprintf(w, "NLL: %.4f  AIC: %.4f  BIC: %.4f\n", r.NegLogLik, r.AIC, r.BIC)
	fmt.Fprintf(w, "Status: %s  Boundary: %s\n", r.Status, r.Boundary)
	if r.LjungBox != nil {
		fmt.Fprintf(w, "Ljung-Box: Q=%.4f p=%.4f dof=%d\n", r.LjungBox.Statistic, r.LjungBox.PValue, r.LjungBox.DOF)
	}
	fmt.Fprintf(w, "Forecasts: %v\n", formatFloats(r.Forecasts))
}

func formatFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.4f", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
