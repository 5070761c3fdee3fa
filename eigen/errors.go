// Package eigen: sentinel error set.
// All public entry points return these sentinels (possibly wrapped with an
// operation tag via fmt.Errorf("...: %w", ...)); tests and callers match
// them with errors.Is. The numeric kernels themselves never error on
// degenerate values (zero scales, zero pivots and near-overflow are
// absorbed by documented local fallbacks), so the caller-visible failure
// surface is exactly: bad input shape, nil input, or a blown iteration cap.

package eigen

import "errors"

var (
	// ErrNilMatrix indicates that a nil Matrix was passed to a constructor.
	ErrNilMatrix = errors.New("eigen: nil matrix")

	// ErrNonSquare indicates that the input matrix is not square. Reported
	// before any algorithmic work; no partial decomposition state escapes.
	ErrNonSquare = errors.New("eigen: matrix is not square")

	// ErrNotConverged indicates that a QL or QR sweep exceeded
	// Options.MaxIterations for a single eigenvalue. The reference
	// algorithm iterates unboundedly and trusts convergence; the cap is a
	// liveness guard, so this error only ever fires on pathological
	// floating-point inputs (or an unreasonably small cap).
	ErrNotConverged = errors.New("eigen: eigenvalue iteration failed to converge")
)
