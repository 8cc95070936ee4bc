package ma1

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// FitAll fits each series independently with an Estimator built from cfg,
// running at most workers fits at a time (workers <= 0 means no limit).
// Results are index-aligned with series. Unconverged fits are returned with
// Converged set to false; any other error aborts the batch.
func FitAll(ctx context.Context, cfg Config, series [][]float64, workers int) ([]*Result, error) {
	est := New(cfg)
	results := make([]*Result, len(series))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, x := range series {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := est.Fit(x)
			if err != nil && !errors.Is(err, ErrNotConverged) {
				return fmt.Errorf("series %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
