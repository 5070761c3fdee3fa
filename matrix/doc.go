// Package matrix provides the numeric containers and elementary
// linear-algebra kernels used across spectral.
//
// The matrix package provides:
//
//   - The Matrix interface — a uniform abstraction over mutable 2-D float64
//     storage with bounds-checked access and deep cloning.
//   - Dense — a row-major flat-slice implementation, the workhorse storage
//     for every algorithm in this module.
//   - SymDense — a symmetric-packed variant (lower triangle only) for
//     matrices known symmetric by construction; half the memory, mirrored
//     reads and writes.
//   - Central validators and sentinel errors so every kernel fails fast
//     with the same error surface.
//   - Elementary kernels: Add, Sub, Mul, Transpose, Scale, MatVec — each
//     with a Dense fast-path on the flat backing slice and a generic
//     interface fallback.
//
// Dense matrices are best for small-to-moderate n where O(n²) memory is
// acceptable; every routine here is deterministic (fixed loop orders, no
// data-dependent traversal).
//
// See package eigen for the eigenvalue decomposition built on top of
// these containers.
package matrix
