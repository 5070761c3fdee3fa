// Package eigen: the decomposition facade.
//
// This file is the only surface client code touches: the construction
// entry points (Decompose, DecomposeWithOptions, DecomposeSymmetric), the
// immutable Decomposition result, and its read accessors. The numeric
// work itself lives in tridiagonal.go/ql.go (symmetric pipeline) and
// hessenberg.go/schur.go (general pipeline).

package eigen

import (
	"fmt"

	"github.com/katalvlaran/spectral/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opDecompose = "Decompose"
	opD         = "D"
)

// eigenErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is keeps matching the sentinel. Use only when
// err != nil.
func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Decomposition holds the result of an eigenvalue decomposition.
//
// All fields are produced once at construction and never mutated
// afterwards; a Decomposition is safe for unlimited concurrent reads.
// Accessors hand out copies, so callers cannot corrupt the result either.
//
// Conventions:
//   - symmetric input: d is non-decreasing, e is all zero, v is orthogonal.
//   - general input: eigenvalues are unordered except that each
//     complex-conjugate pair occupies adjacent indices with the positive
//     imaginary part first (d[i] == d[i+1], e[i] > 0, e[i+1] == -e[i]);
//     the two matching columns of v jointly span the real 2-D invariant
//     subspace of the pair.
type Decomposition struct {
	n         int           // matrix order
	symmetric bool          // which pipeline produced the result
	d         []float64     // real parts of the eigenvalues, length n
	e         []float64     // imaginary parts of the eigenvalues, length n
	v         *matrix.Dense // eigenvector matrix, n×n
}

// Decompose computes the eigenvalue decomposition of the real square
// matrix a under DefaultOptions: symmetry is detected by exact elementwise
// comparison (a *matrix.SymDense short-circuits to the symmetric path) and
// the matching pipeline runs to convergence.
//
// The engine copies a on entry and never aliases caller-owned storage.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotConverged.
// Complexity: O(n³) time, O(n²) memory.
func Decompose(a matrix.Matrix) (*Decomposition, error) {
	return DecomposeWithOptions(a, DefaultOptions())
}

// DecomposeWithOptions is Decompose with an explicit Options value.
//
// Implementation:
//   - Stage 1: Validate a non-nil and square; classify symmetric/general
//     (skipped when opts.ForceGeneral is set).
//   - Stage 2: Copy a into an engine-owned Dense buffer and run exactly one
//     pipeline to completion: tridiagonalize→QL for symmetric input,
//     Hessenberg→Schur/QR for general input.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotConverged.
// Determinism: fixed loop orders throughout; identical inputs yield
// identical results.
// Complexity: O(n³) time, O(n²) memory.
func DecomposeWithOptions(a matrix.Matrix, opts Options) (*Decomposition, error) {
	// Validate shape before any algorithmic work.
	if a == nil {
		return nil, eigenErrorf(opDecompose, ErrNilMatrix)
	}
	if a.Rows() != a.Cols() {
		return nil, eigenErrorf(opDecompose, ErrNonSquare)
	}

	// Classify: forced general, declared symmetric, or exact scan.
	symmetric := false
	if !opts.ForceGeneral {
		var err error
		if symmetric, err = matrix.IsSymmetric(a); err != nil {
			return nil, eigenErrorf(opDecompose, err)
		}
	}

	// Copy the input; the engine never aliases caller storage.
	work, err := cloneToDense(a)
	if err != nil {
		return nil, eigenErrorf(opDecompose, err)
	}

	return decompose(work, symmetric, opts.MaxIterations)
}

// DecomposeSymmetric decomposes a matrix already declared symmetric by its
// packed storage type, skipping the symmetry scan and forcing the
// symmetric pipeline (ascending eigenvalues, orthogonal V).
//
// Errors: ErrNilMatrix, ErrNotConverged.
// Complexity: O(n³) time, O(n²) memory.
func DecomposeSymmetric(a *matrix.SymDense) (*Decomposition, error) {
	// Validate presence; squareness holds by construction for SymDense.
	if a == nil {
		return nil, eigenErrorf(opDecompose, ErrNilMatrix)
	}

	// Unpack into a dense engine-owned buffer.
	work, err := cloneToDense(a)
	if err != nil {
		return nil, eigenErrorf(opDecompose, err)
	}

	return decompose(work, true, DefaultOptions().MaxIterations)
}

// decompose runs the selected pipeline over the engine-owned buffer.
// work doubles as the eigenvector accumulator on the symmetric path and as
// the Hessenberg/Schur scratch H on the general path.
func decompose(work *matrix.Dense, symmetric bool, maxIter int) (*Decomposition, error) {
	n := work.Rows()
	dec := &Decomposition{
		n:         n,
		symmetric: symmetric,
		d:         make([]float64, n),
		e:         make([]float64, n),
	}

	if symmetric {
		// Symmetric path: the input copy becomes V in place.
		vd := work.Data()
		tridiagonalize(vd, dec.d, dec.e, n)
		if err := tridiagonalQL(vd, dec.d, dec.e, n, maxIter); err != nil {
			return nil, eigenErrorf(opDecompose, err)
		}
		dec.v = work

		return dec, nil
	}

	// General path: the input copy is the Hessenberg scratch H; V is
	// accumulated separately (the reducer initializes it to identity).
	v, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, eigenErrorf(opDecompose, err)
	}
	ort := make([]float64, n) // Householder scale scratch, transient
	hessenberg(work.Data(), v.Data(), ort, n)
	if err = schurForm(work.Data(), v.Data(), dec.d, dec.e, n, maxIter); err != nil {
		return nil, eigenErrorf(opDecompose, err)
	}
	dec.v = v // H is discarded with work; only V survives

	return dec, nil
}

// cloneToDense copies any Matrix into a fresh Dense buffer.
// Fast-path: *Dense clones its flat slice; the generic path (SymDense or a
// caller-supplied layout) walks At/Set in fixed i→j order.
func cloneToDense(a matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := a.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}

	rows, cols := a.Rows(), a.Cols()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Set(%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}

// N returns the matrix order.
// Complexity: O(1).
func (dec *Decomposition) N() int {
	return dec.n
}

// IsSymmetric reports which pipeline produced the result: true means the
// symmetric conventions apply (ascending eigenvalues, orthogonal V).
// Complexity: O(1).
func (dec *Decomposition) IsSymmetric() bool {
	return dec.symmetric
}

// RealEigenvalues returns a copy of the real parts of the eigenvalues.
// Symmetric input: non-decreasing. General input: unordered except that
// conjugate pairs are adjacent with the positive-imaginary entry first.
// Complexity: O(n).
func (dec *Decomposition) RealEigenvalues() []float64 {
	out := make([]float64, dec.n)
	copy(out, dec.d)

	return out
}

// ImagEigenvalues returns a copy of the imaginary parts of the
// eigenvalues; all zero for symmetric input, and ±v at the two indices of
// each conjugate pair for general input.
// Complexity: O(n).
func (dec *Decomposition) ImagEigenvalues() []float64 {
	out := make([]float64, dec.n)
	copy(out, dec.e)

	return out
}

// V returns a copy of the eigenvector matrix. Columns match the eigenvalue
// order of RealEigenvalues/ImagEigenvalues; for a conjugate pair the two
// columns span the pair's real invariant subspace.
// Complexity: O(n²) for the copy.
func (dec *Decomposition) V() *matrix.Dense {
	return dec.v.Clone().(*matrix.Dense)
}

// D synthesizes the block-diagonal eigenvalue matrix from (d, e):
// diagonal entries d[i]; for a conjugate pair a ± ib at indices i, i+1 the
// off-diagonal entries are D[i,i+1] = b and D[i+1,i] = -b, giving 2×2
// blocks [a b; -b a]. This keeps both V and D real with A·V = V·D.
// Complexity: O(n²) time and memory (built on demand, not stored).
func (dec *Decomposition) D() (*matrix.Dense, error) {
	out, err := matrix.NewDense(dec.n, dec.n)
	if err != nil {
		return nil, eigenErrorf(opD, err)
	}
	data := out.Data()
	for i := 0; i < dec.n; i++ {
		data[i*dec.n+i] = dec.d[i]
		if dec.e[i] > 0 {
			data[i*dec.n+i+1] = dec.e[i]
		} else if dec.e[i] < 0 {
			data[i*dec.n+i-1] = dec.e[i]
		}
	}

	return out, nil
}
