package eigen_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/matrix"
)

// denseFrom builds a Dense from a row-slice literal, failing the test on
// any construction error.
func denseFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err, "NewDense should accept positive dimensions")
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// maxAbsDiff returns the largest elementwise |a-b| between two matrices of
// equal shape.
func maxAbsDiff(t *testing.T, a, b matrix.Matrix) float64 {
	t.Helper()
	diff, err := matrix.Sub(a, b)
	require.NoError(t, err, "Sub requires equal shapes")
	maxAbs := 0.0
	var v float64
	for i := 0; i < diff.Rows(); i++ {
		for j := 0; j < diff.Cols(); j++ {
			v, err = diff.At(i, j)
			require.NoError(t, err)
			if math.Abs(v) > maxAbs {
				maxAbs = math.Abs(v)
			}
		}
	}

	return maxAbs
}

// requireAVEqualsVD checks the defining residual A·V = V·D within a
// tolerance scaled by the magnitude of A.
func requireAVEqualsVD(t *testing.T, a matrix.Matrix, dec *eigen.Decomposition) {
	t.Helper()
	v := dec.V()
	d, err := dec.D()
	require.NoError(t, err)

	av, err := matrix.Mul(a, v)
	require.NoError(t, err)
	vd, err := matrix.Mul(v, d)
	require.NoError(t, err)

	// Scale the tolerance by the input magnitude so large random matrices
	// are judged relatively.
	scale := 1.0
	var x float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, err = a.At(i, j)
			require.NoError(t, err)
			if math.Abs(x) > scale {
				scale = math.Abs(x)
			}
		}
	}
	assert.LessOrEqual(t, maxAbsDiff(t, av, vd), 1e-8*scale*float64(a.Rows()),
		"A·V must equal V·D within rounding")
}

// requireOrthogonal checks V·Vᵀ = I within tolerance.
func requireOrthogonal(t *testing.T, v *matrix.Dense) {
	t.Helper()
	vt, err := matrix.Transpose(v)
	require.NoError(t, err)
	vvt, err := matrix.Mul(v, vt)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(v.Rows())
	require.NoError(t, err)
	assert.LessOrEqual(t, maxAbsDiff(t, vvt, id), 1e-10,
		"eigenvector matrix of a symmetric input must be orthogonal")
}

// requireConjugatePairOrder checks the general-path ordering invariant:
// whenever Im[i] != 0, indices i and i+1 hold a conjugate pair with the
// positive imaginary part first.
func requireConjugatePairOrder(t *testing.T, re, im []float64) {
	t.Helper()
	for i := 0; i < len(im); i++ {
		if im[i] == 0 {
			continue
		}
		require.Less(t, i, len(im)-1, "a conjugate pair cannot start at the last index")
		assert.Equal(t, re[i], re[i+1], "conjugate pair must share its real part")
		assert.Greater(t, im[i], 0.0, "positive imaginary part must come first")
		assert.Equal(t, -im[i], im[i+1], "pair must carry ±v at adjacent indices")
		i++ // skip the partner
	}
}

// TestDecompose_NilMatrix verifies the nil-input sentinel.
func TestDecompose_NilMatrix(t *testing.T) {
	_, err := eigen.Decompose(nil)
	assert.ErrorIs(t, err, eigen.ErrNilMatrix, "nil input must error ErrNilMatrix")
}

// TestDecompose_NonSquare verifies that a rectangular input fails before
// any algorithmic work.
func TestDecompose_NonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = eigen.Decompose(m)
	assert.ErrorIs(t, err, eigen.ErrNonSquare, "2×3 input must error ErrNonSquare")
}

// TestDecompose_Symmetric3x3 runs the classic JAMA symmetric regression
// matrix: symmetric flag, ascending eigenvalues, orthogonal V, A·V = V·D.
func TestDecompose_Symmetric3x3(t *testing.T) {
	a := denseFrom(t, [][]float64{{4, 1, 1}, {1, 2, 3}, {1, 3, 6}})

	dec, err := eigen.Decompose(a)
	require.NoError(t, err)

	assert.True(t, dec.IsSymmetric(), "exactly symmetric input must take the symmetric path")
	re := dec.RealEigenvalues()
	for i := 1; i < len(re); i++ {
		assert.LessOrEqual(t, re[i-1], re[i], "symmetric eigenvalues must be non-decreasing")
	}
	for _, im := range dec.ImagEigenvalues() {
		assert.Zero(t, im, "symmetric input has no imaginary parts")
	}
	requireOrthogonal(t, dec.V())
	requireAVEqualsVD(t, a, dec)
}

// TestDecompose_ConjugatePairs4x4 runs the JAMA near-skew 4×4 matrix whose
// tiny ±2e-7 entries force the general path and produce complex pairs.
func TestDecompose_ConjugatePairs4x4(t *testing.T) {
	a := denseFrom(t, [][]float64{
		{0, 1, 0, 0},
		{1, 0, 2e-7, 0},
		{0, -2e-7, 0, 1},
		{0, 0, 1, 0},
	})

	dec, err := eigen.Decompose(a)
	require.NoError(t, err)

	assert.False(t, dec.IsSymmetric(), "the ±2e-7 asymmetry must be detected exactly")
	requireConjugatePairOrder(t, dec.RealEigenvalues(), dec.ImagEigenvalues())
	requireAVEqualsVD(t, a, dec)
}

// TestDecompose_SubdiagonalShift6x6 runs the 6×6 nilpotent shift matrix, a
// known hard case for the QR family: all true eigenvalues are zero, and
// the computed ones must stay inside a radius of 0.0032.
func TestDecompose_SubdiagonalShift6x6(t *testing.T) {
	a := denseFrom(t, [][]float64{
		{0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 1, 0},
	})

	dec, err := eigen.Decompose(a)
	require.NoError(t, err)

	const radius = 0.0032
	for i, re := range dec.RealEigenvalues() {
		assert.Less(t, math.Abs(re), radius, "real part %d exceeds the known radius", i)
	}
	for i, im := range dec.ImagEigenvalues() {
		assert.Less(t, math.Abs(im), radius, "imaginary part %d exceeds the known radius", i)
	}
}

// TestDecompose_HangRegression5x5 runs the sparse 5×5 matrix from the JAMA
// mailing list on which early QL/QR ports used to hang; it must terminate
// and still satisfy A·V = V·D.
func TestDecompose_HangRegression5x5(t *testing.T) {
	a := denseFrom(t, [][]float64{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1},
		{0, 0, 0, 1, 0},
		{1, 1, 0, 0, 1},
		{1, 0, 1, 0, 1},
	})

	dec, err := eigen.Decompose(a)
	require.NoError(t, err)
	requireAVEqualsVD(t, a, dec)
}

// TestDecompose_ForceGeneral runs the near-symmetric 4×4 regression matrix
// down the general pipeline via ForceGeneral, matching the original
// harness which forces the nonsymmetric constructor for it.
func TestDecompose_ForceGeneral(t *testing.T) {
	a := denseFrom(t, [][]float64{
		{1, 0, -7.49881e-33, -1},
		{3.74939e-33, 1, 1.2326e-32, -3.74939e-33},
		{-7.49881e-33, 1.2326e-32, 1, 7.49881e-33},
		{-1, -3.74939e-33, 1.2326e-32, 1},
	})

	opts := eigen.DefaultOptions()
	opts.ForceGeneral = true
	dec, err := eigen.DecomposeWithOptions(a, opts)
	require.NoError(t, err)

	assert.False(t, dec.IsSymmetric(), "ForceGeneral must report the general path")
	assert.Less(t, math.Abs(dec.RealEigenvalues()[0]), 1e-15, "first eigenvalue must vanish")
	assert.Less(t, math.Abs(dec.ImagEigenvalues()[0]), 1e-15, "first eigenvalue must be real")
}

// TestDecompose_Identity checks the trivial spectrum of the identity.
func TestDecompose_Identity(t *testing.T) {
	for _, n := range []int{1, 2, 5, 9} {
		id, err := matrix.NewIdentity(n)
		require.NoError(t, err)

		dec, err := eigen.Decompose(id)
		require.NoError(t, err)

		assert.True(t, dec.IsSymmetric())
		for _, re := range dec.RealEigenvalues() {
			assert.InDelta(t, 1.0, re, 1e-12, "identity eigenvalues are all 1")
		}
		d, err := dec.D()
		require.NoError(t, err)
		assert.LessOrEqual(t, maxAbsDiff(t, d, id), 1e-12, "D of the identity is the identity")
		requireOrthogonal(t, dec.V())
	}
}

// TestDecompose_ZeroMatrix checks the all-zero input: the classifier sees
// a (trivially) symmetric matrix and the spectrum is entirely zero. The
// forced-general 1×1 case additionally covers the zero-norm shortcut that
// skips back-substitution.
func TestDecompose_ZeroMatrix(t *testing.T) {
	z, err := matrix.NewDense(4, 4)
	require.NoError(t, err)

	dec, err := eigen.Decompose(z)
	require.NoError(t, err)

	assert.True(t, dec.IsSymmetric(), "the zero matrix is exactly symmetric")
	for i := 0; i < 4; i++ {
		assert.Zero(t, dec.RealEigenvalues()[i])
		assert.Zero(t, dec.ImagEigenvalues()[i])
	}
	requireAVEqualsVD(t, z, dec)

	// Zero norm on the general path: back-substitution is skipped and V
	// stays the identity.
	z1, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	opts := eigen.DefaultOptions()
	opts.ForceGeneral = true
	dec, err = eigen.DecomposeWithOptions(z1, opts)
	require.NoError(t, err)
	assert.Zero(t, dec.RealEigenvalues()[0])
	v00, err := dec.V().At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v00)
}

// TestDecompose_OneByOne checks the smallest legal input.
func TestDecompose_OneByOne(t *testing.T) {
	a := denseFrom(t, [][]float64{{7}})

	dec, err := eigen.Decompose(a)
	require.NoError(t, err)

	assert.Equal(t, []float64{7}, dec.RealEigenvalues())
	assert.Equal(t, []float64{0}, dec.ImagEigenvalues())
	v, err := dec.V().At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, math.Abs(v), 1e-15, "1×1 eigenvector is ±1")
}

// TestDecomposeSymmetric_PackedInput verifies that the packed constructor
// skips classification, forces the symmetric path, and agrees with the
// dense constructor on the same values.
func TestDecomposeSymmetric_PackedInput(t *testing.T) {
	rows := [][]float64{{4, 1, 1}, {1, 2, 3}, {1, 3, 6}}
	packed, err := matrix.NewSymDense(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j <= i; j++ {
			require.NoError(t, packed.Set(i, j, rows[i][j]))
		}
	}

	fromPacked, err := eigen.DecomposeSymmetric(packed)
	require.NoError(t, err)
	fromDense, err := eigen.Decompose(denseFrom(t, rows))
	require.NoError(t, err)

	assert.True(t, fromPacked.IsSymmetric())
	assert.Equal(t, fromDense.RealEigenvalues(), fromPacked.RealEigenvalues(),
		"packed and dense constructors must agree exactly")

	_, err = eigen.DecomposeSymmetric(nil)
	assert.ErrorIs(t, err, eigen.ErrNilMatrix)
}

// TestDecompose_Deterministic verifies that two constructions from the
// same input agree exactly: the algorithm has no hidden state.
func TestDecompose_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a, err := matrix.NewDense(12, 12)
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			require.NoError(t, a.Set(i, j, rng.NormFloat64()))
		}
	}

	first, err := eigen.Decompose(a)
	require.NoError(t, err)
	second, err := eigen.Decompose(a)
	require.NoError(t, err)

	assert.Equal(t, first.RealEigenvalues(), second.RealEigenvalues())
	assert.Equal(t, first.ImagEigenvalues(), second.ImagEigenvalues())
	assert.Zero(t, maxAbsDiff(t, first.V(), second.V()), "V must be bitwise reproducible")
}

// TestDecompose_RandomSymmetric stresses the symmetric pipeline on seeded
// random symmetric matrices of moderate order.
func TestDecompose_RandomSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{20, 33} {
		a, err := matrix.NewDense(n, n)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := 0; j <= i; j++ {
				v := rng.NormFloat64()
				require.NoError(t, a.Set(i, j, v))
				require.NoError(t, a.Set(j, i, v))
			}
		}

		dec, err := eigen.Decompose(a)
		require.NoError(t, err)
		assert.True(t, dec.IsSymmetric())
		requireOrthogonal(t, dec.V())
		requireAVEqualsVD(t, a, dec)
	}
}

// TestDecompose_RandomNonsymmetric stresses the general pipeline on seeded
// random matrices: residual and conjugate-pair ordering.
func TestDecompose_RandomNonsymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{20, 31} {
		a, err := matrix.NewDense(n, n)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.NoError(t, a.Set(i, j, rng.NormFloat64()))
			}
		}

		dec, err := eigen.Decompose(a)
		require.NoError(t, err)
		assert.False(t, dec.IsSymmetric(), "a random dense matrix is not exactly symmetric")
		requireConjugatePairOrder(t, dec.RealEigenvalues(), dec.ImagEigenvalues())
		requireAVEqualsVD(t, a, dec)
	}
}

// TestDecompose_IterationCap verifies the liveness guard on the sparse
// 5×5 matrix that historically stalled QL/QR ports: its roots need more
// than one QR sweep per deflation, so a cap of 1 must surface
// ErrNotConverged instead of spinning.
func TestDecompose_IterationCap(t *testing.T) {
	a := denseFrom(t, [][]float64{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1},
		{0, 0, 0, 1, 0},
		{1, 1, 0, 0, 1},
		{1, 0, 1, 0, 1},
	})

	opts := eigen.DefaultOptions()
	opts.MaxIterations = 1
	_, err := eigen.DecomposeWithOptions(a, opts)
	assert.ErrorIs(t, err, eigen.ErrNotConverged, "a one-sweep cap must trip on a slow-converging input")

	// The same input converges under the default cap.
	dec, err := eigen.Decompose(a)
	require.NoError(t, err)
	requireAVEqualsVD(t, a, dec)
}

// TestDecomposition_AccessorsAreCopies verifies that mutating accessor
// results cannot corrupt the decomposition.
func TestDecomposition_AccessorsAreCopies(t *testing.T) {
	a := denseFrom(t, [][]float64{{2, 1}, {1, 2}})
	dec, err := eigen.Decompose(a)
	require.NoError(t, err)

	re := dec.RealEigenvalues()
	re[0] = math.NaN()
	assert.False(t, math.IsNaN(dec.RealEigenvalues()[0]), "RealEigenvalues must return a copy")

	v := dec.V()
	require.NoError(t, v.Set(0, 0, math.NaN()))
	fresh, err := dec.V().At(0, 0)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(fresh), "V must return a copy")
}
