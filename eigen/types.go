// Package eigen: options and shared numeric constants.
package eigen

import "math"

// DefaultMaxIterations is the default per-eigenvalue cap on QL/QR sweeps.
// The classic EISPACK codes converge in a handful of sweeps per eigenvalue
// (30 is the traditional alarm threshold), so 1000 is far beyond anything
// a convergent input can consume; a pathological floating-point edge case
// surfaces ErrNotConverged instead of spinning.
const DefaultMaxIterations = 1000

// machEps is the double-precision machine epsilon (2⁻⁵²), the unit used by
// every relative-negligibility test in the QL and QR iterations.
var machEps = math.Nextafter(1.0, 2.0) - 1.0

// Options configures an eigenvalue decomposition.
//
// Fields:
//   - MaxIterations — per-eigenvalue safety cap on QL/QR sweeps; 0 means
//     unbounded (the reference behavior). The cap never changes numerical
//     output when convergence happens normally; it only converts a
//     would-be infinite loop into ErrNotConverged.
//   - ForceGeneral  — skip the symmetry check and run the Hessenberg/Schur
//     pipeline even for a symmetric matrix. Useful when a matrix is only
//     symmetric by accident of rounding and the general-path conventions
//     (unordered eigenvalues, adjacent conjugate pairs) are wanted.
//
// Example:
//
//	opts := eigen.DefaultOptions()
//	opts.ForceGeneral = true
//	dec, err := eigen.DecomposeWithOptions(A, opts)
type Options struct {
	MaxIterations int
	ForceGeneral  bool
}

// DefaultOptions returns the canonical configuration: bounded iterations,
// automatic symmetry dispatch.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}
