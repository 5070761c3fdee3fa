package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/matrix"
)

// opaque hides the concrete *Dense type behind the bare interface, forcing
// kernels down their generic At/Set fallback path.
type opaque struct{ matrix.Matrix }

// fill builds a Dense from a row-slice literal.
func fill(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// assertEqualMatrix compares two matrices elementwise, exactly.
func assertEqualMatrix(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	require.Equal(t, len(want[0]), got.Cols())
	for i, row := range want {
		for j, w := range row {
			v, err := got.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, w, v, "mismatch at (%d,%d)", i, j)
		}
	}
}

// TestAddSub verifies elementwise sum/difference on both the Dense
// fast-path and the generic fallback.
func TestAddSub(t *testing.T) {
	a := fill(t, [][]float64{{1, 2}, {3, 4}})
	b := fill(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assertEqualMatrix(t, [][]float64{{6, 8}, {10, 12}}, sum)

	diff, err := matrix.Sub(opaque{a}, b) // generic path
	require.NoError(t, err)
	assertEqualMatrix(t, [][]float64{{-4, -4}, {-4, -4}}, diff)

	// Error surface: nil and shape mismatch.
	_, err = matrix.Add(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	c := fill(t, [][]float64{{1, 2, 3}})
	_, err = matrix.Add(a, c)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul verifies matrix multiplication on both paths and its validators.
func TestMul(t *testing.T) {
	a := fill(t, [][]float64{{1, 2}, {3, 4}})
	b := fill(t, [][]float64{{0, 1}, {1, 0}})

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assertEqualMatrix(t, [][]float64{{2, 1}, {4, 3}}, prod)

	prodGeneric, err := matrix.Mul(opaque{a}, opaque{b})
	require.NoError(t, err)
	assertEqualMatrix(t, [][]float64{{2, 1}, {4, 3}}, prodGeneric)

	rect := fill(t, [][]float64{{1, 2, 3}})
	_, err = matrix.Mul(a, rect)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "inner dimensions must match")
	_, err = matrix.Mul(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTransposeScale verifies mᵀ and alpha*m, including non-square shapes.
func TestTransposeScale(t *testing.T) {
	a := fill(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assertEqualMatrix(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at)

	atGeneric, err := matrix.Transpose(opaque{a})
	require.NoError(t, err)
	assertEqualMatrix(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, atGeneric)

	scaled, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	assertEqualMatrix(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}, scaled)

	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scale(nil, 1)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec verifies y = m*x on both paths and the vector validators.
func TestMatVec(t *testing.T) {
	a := fill(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	x := []float64{1, -1}

	y, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1}, y)

	yGeneric, err := matrix.MatVec(opaque{a}, x)
	require.NoError(t, err)
	assert.Equal(t, y, yGeneric)

	_, err = matrix.MatVec(a, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "vector length must match Cols")
	_, err = matrix.MatVec(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestOps_SymDenseOperand verifies that kernels accept the packed variant
// through the generic path.
func TestOps_SymDenseOperand(t *testing.T) {
	s, err := matrix.NewSymDense(2)
	require.NoError(t, err)
	require.NoError(t, s.Set(0, 0, 1))
	require.NoError(t, s.Set(1, 0, 2))
	require.NoError(t, s.Set(1, 1, 3))

	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	prod, err := matrix.Mul(s, id)
	require.NoError(t, err)
	assertEqualMatrix(t, [][]float64{{1, 2}, {2, 3}}, prod)
}
