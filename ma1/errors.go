package ma1

import "errors"

var (
	// ErrInvalidInput is returned for empty or non-finite observations,
	// malformed bounds, or a starting point outside the bounds.
	ErrInvalidInput = errors.New("ma1: invalid input")

	// ErrNotConverged is returned together with a non-nil Result when the
	// minimizer stopped before converging. The Result holds the best point
	// found.
	ErrNotConverged = errors.New("ma1: optimizer did not converge")
)
