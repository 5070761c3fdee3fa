// Package eigen computes the eigenvalue decomposition of a real square
// matrix: eigenvalues (possibly complex, always delivered as real pairs)
// and a real eigenvector matrix V with A·V = V·D.
//
// 🚀 What is eigen?
//
//	A faithful pure-Go rendition of the classic EISPACK/JAMA eigenvalue
//	chain, dispatching on symmetry:
//	  • symmetric A  → Householder tridiagonalization, then implicit-shift
//	    QL with Wilkinson shifts (tred2 + tql2)
//	  • general A    → orthogonal Hessenberg reduction, then the Francis
//	    double-shift QR iteration to real Schur form with complex-pair
//	    back-substitution (orthes + hqr2)
//
// ✨ Key guarantees:
//   - A·V = V·D within rounding, with D block diagonal: real eigenvalues
//     in 1×1 blocks, complex pairs a ± ib in 2×2 blocks [a b; -b a] —
//     V stays real in every case
//   - symmetric inputs: V orthogonal (V·Vᵀ = I), eigenvalues ascending
//   - general inputs: conjugate pairs adjacent, positive imaginary first
//   - deterministic: same input, same output, no randomness
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spectral/eigen"
//
//	dec, err := eigen.Decompose(A)     // symmetry detected automatically
//	if err != nil { ... }
//	V := dec.V()                        // eigenvector matrix (copy)
//	d := dec.RealEigenvalues()          // real parts
//	e := dec.ImagEigenvalues()          // imaginary parts (zero if symmetric)
//	D, _ := dec.D()                     // block-diagonal eigenvalue matrix
//
// Callers that know their matrix is symmetric can pass a *matrix.SymDense
// (or use DecomposeSymmetric) to skip the symmetry scan entirely.
//
// A word of caution inherited from JAMA: for non-symmetric A the matrix V
// may be badly conditioned or even singular, so the validity of
// A = V·D·V⁻¹ depends on the condition number of V. That is the caller's
// responsibility to assess.
//
// Performance: O(n³) time, O(n²) memory for both pipelines. Construction
// is single-threaded; a finished Decomposition is immutable and safe for
// concurrent reads.
package eigen
