// Package matrix: symmetric-packed storage.
//
// SymDense stores only the lower triangle of an n×n symmetric matrix in a
// packed row-major slice, halving memory while keeping the Matrix contract:
// At(i, j) and At(j, i) always agree, and a single Set updates both mirror
// positions at once. It is the natural input type for callers that know
// their matrix is symmetric by construction: the eigen facade skips the
// elementwise symmetry scan for it and goes straight down the symmetric
// pipeline.

package matrix

import "fmt"

// symErrorf wraps an underlying error with SymDense method context.
func symErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("SymDense.%s(%d,%d): %w", method, row, col, err)
}

// SymDense is a symmetric n×n matrix packed as the lower triangle in
// row-major order: element (i, j) with j ≤ i lives at i*(i+1)/2 + j,
// and (i, j) with j > i aliases (j, i). data has length n*(n+1)/2.
type SymDense struct {
	n    int       // matrix order (rows == cols == n)
	data []float64 // packed lower triangle, length n*(n+1)/2
}

// NewSymDense creates an n×n symmetric-packed matrix initialized to zeros.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate the packed triangle.
// Complexity: O(n²) time and memory (half the storage of Dense).
func NewSymDense(n int) (*SymDense, error) {
	// Validate order
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Allocate packed storage for the lower triangle
	return &SymDense{n: n, data: make([]float64, n*(n+1)/2)}, nil
}

// Rows returns the matrix order.
// Complexity: O(1).
func (m *SymDense) Rows() int {
	return m.n // square by construction
}

// Cols returns the matrix order.
// Complexity: O(1).
func (m *SymDense) Cols() int {
	return m.n // square by construction
}

// indexOf computes the packed index for (row, col), mirroring the upper
// triangle onto the lower one, or returns ErrOutOfRange.
// Complexity: O(1).
func (m *SymDense) indexOf(row, col int) (int, error) {
	// Validate both indices against the order
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, symErrorf("At", row, col, ErrOutOfRange)
	}
	// Mirror the upper triangle: (i, j) with j > i aliases (j, i)
	if col > row {
		row, col = col, row
	}

	// Packed row-major lower-triangle offset
	return row*(row+1)/2 + col, nil
}

// At retrieves the element at (row, col); At(i, j) == At(j, i) always.
// Complexity: O(1).
func (m *SymDense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col) AND its mirror (col, row) in one write,
// since both map to the same packed cell. Symmetry can never be broken
// through this method.
// Complexity: O(1).
func (m *SymDense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the SymDense matrix.
// Complexity: O(n²) time and memory for the packed copy.
func (m *SymDense) Clone() Matrix {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &SymDense{n: m.n, data: copyData}
}

// IsSymmetric reports whether m equals its own transpose, by EXACT
// elementwise equality (no tolerance). The exact check is deliberate:
// the eigen dispatch must be bitwise-reproducible, and a tolerance here
// would silently reroute near-symmetric matrices between two pipelines
// with different output conventions.
//
// Stage 1 (Validate): m non-nil and square.
// Stage 2 (Execute): compare the strict upper triangle against its mirror.
//
// Returns ErrNilMatrix or ErrDimensionMismatch from validation; *SymDense
// short-circuits to true (symmetric by construction).
// Complexity: O(n²) worst case, O(1) for SymDense.
func IsSymmetric(m Matrix) (bool, error) {
	// Validate non-nil and square via the canonical composite
	if err := ValidateSquareNonNil(m); err != nil {
		return false, err
	}
	// Packed storage is symmetric by construction
	if _, ok := m.(*SymDense); ok {
		return true, nil
	}

	n := m.Rows()
	// Dense fast-path: compare flat mirror positions directly
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if d.data[i*n+j] != d.data[j*n+i] {
					return false, nil
				}
			}
		}

		return true, nil
	}

	// Fallback: generic interface path via At
	var upper, lower float64
	var err error
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if upper, err = m.At(i, j); err != nil {
				return false, fmt.Errorf("IsSymmetric: At(%d,%d): %w", i, j, err)
			}
			if lower, err = m.At(j, i); err != nil {
				return false, fmt.Errorf("IsSymmetric: At(%d,%d): %w", j, i, err)
			}
			if upper != lower {
				return false, nil
			}
		}
	}

	return true, nil
}
