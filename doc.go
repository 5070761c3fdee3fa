// Package spectral is a small, dependency-light toolkit for spectral
// analysis of real square matrices — eigenvalues, eigenvectors, and the
// dense/symmetric-packed containers they operate on.
//
// 🚀 What is spectral?
//
//	A pure-Go port of the classic EISPACK/JAMA eigenvalue machinery:
//		• matrix/ — Matrix interface, row-major Dense, symmetric-packed
//		  SymDense, validators, and elementary linear-algebra kernels
//		• eigen/  — the decomposition engine: Householder tridiagonalization,
//		  implicit-shift QL, Hessenberg reduction, and the Francis
//		  double-shift QR iteration to real Schur form
//
// For any real square A, eigen.Decompose produces a real eigenvector
// matrix V and a block-diagonal D with A·V = V·D: real eigenvalues in
// 1×1 blocks, complex-conjugate pairs a ± ib in 2×2 blocks [a b; -b a].
// If A is symmetric, V is orthogonal and the eigenvalues come back sorted
// ascending.
//
// ✨ Why choose spectral?
//
//   - Faithful numerics – the battle-tested Algol/EISPACK branch structure,
//     including overflow guards and degenerate-subdiagonal handling
//   - Deterministic – fixed loop orders, no randomness, identical results
//     for identical inputs
//   - Pure Go – no cgo, no BLAS/LAPACK binding to ship
//   - Safe – fail-fast validation, sentinel errors, optional iteration cap
//     instead of an unbounded convergence loop
//
// Quick start:
//
//	A, _ := matrix.NewDense(3, 3)
//	... fill A ...
//	dec, err := eigen.Decompose(A)
//	if err != nil { ... }
//	V, d := dec.V(), dec.RealEigenvalues()
//
//	go get github.com/katalvlaran/spectral
package spectral
