// Package eigen: symmetric Householder reduction to tridiagonal form.
package eigen

import "math"

// tridiagonalize reduces a symmetric matrix to tridiagonal form by a
// sequence of Householder reflections, processing rows from last to first,
// and then accumulates the stored reflections (in reverse) into the true
// orthogonal transform.
//
// This is derived from the Algol procedure tred2 by Bowdler, Martin,
// Reinsch, and Wilkinson, Handbook for Auto. Comp., Vol. II — Linear
// Algebra, and the corresponding Fortran subroutine in EISPACK.
//
// Contract:
//   - v: row-major n×n flat buffer holding the symmetric input; overwritten
//     with the accumulated orthogonal transform (not yet diagonalizing).
//   - d: length-n output, receives the tridiagonal diagonal.
//   - e: length-n output, receives the off-diagonal; e[0] is fixed to 0
//     since the first off-diagonal has no predecessor.
//
// Numeric policy: each reflection first scales its subvector by the sum of
// absolute values; a zero scale means a zero-norm subvector, handled as a
// degenerate pass-through so no division can blow up.
// Complexity: O(n³) time, O(1) extra memory.
func tridiagonalize(v, d, e []float64, n int) {
	var i, j, k int
	var scale, h, f, g, hh float64

	// Seed d with the last row of V.
	for j = 0; j < n; j++ {
		d[j] = v[(n-1)*n+j]
	}

	// Householder reduction, last row to first.
	for i = n - 1; i > 0; i-- {
		// Scale to avoid under/overflow.
		scale = 0.0
		h = 0.0
		for k = 0; k < i; k++ {
			scale += math.Abs(d[k])
		}
		if scale == 0.0 {
			// Degenerate subvector: no reflection needed, copy through.
			e[i] = d[i-1]
			for j = 0; j < i; j++ {
				d[j] = v[(i-1)*n+j]
				v[i*n+j] = 0.0
				v[j*n+i] = 0.0
			}
		} else {
			// Generate the Householder vector.
			for k = 0; k < i; k++ {
				d[k] /= scale
				h += d[k] * d[k]
			}
			f = d[i-1]
			g = math.Sqrt(h)
			if f > 0 {
				g = -g // sign chosen to avoid cancellation
			}
			e[i] = scale * g
			h -= f * g
			d[i-1] = f - g
			for j = 0; j < i; j++ {
				e[j] = 0.0
			}

			// Apply the similarity transformation to remaining columns.
			for j = 0; j < i; j++ {
				f = d[j]
				v[j*n+i] = f
				g = e[j] + v[j*n+j]*f
				for k = j + 1; k <= i-1; k++ {
					g += v[k*n+j] * d[k]
					e[k] += v[k*n+j] * f
				}
				e[j] = g
			}
			f = 0.0
			for j = 0; j < i; j++ {
				e[j] /= h
				f += e[j] * d[j]
			}
			hh = f / (h + h)
			for j = 0; j < i; j++ {
				e[j] -= hh * d[j]
			}
			for j = 0; j < i; j++ {
				f = d[j]
				g = e[j]
				for k = j; k <= i-1; k++ {
					v[k*n+j] -= f*e[k] + g*d[k]
				}
				d[j] = v[(i-1)*n+j]
				v[i*n+j] = 0.0
			}
		}
		d[i] = h
	}

	// Accumulate transformations: apply the stored reflections in reverse
	// to build the true orthogonal transform in V.
	for i = 0; i < n-1; i++ {
		v[(n-1)*n+i] = v[i*n+i]
		v[i*n+i] = 1.0
		h = d[i+1]
		if h != 0.0 {
			for k = 0; k <= i; k++ {
				d[k] = v[k*n+i+1] / h
			}
			for j = 0; j <= i; j++ {
				g = 0.0
				for k = 0; k <= i; k++ {
					g += v[k*n+i+1] * v[k*n+j]
				}
				for k = 0; k <= i; k++ {
					v[k*n+j] -= g * d[k]
				}
			}
		}
		for k = 0; k <= i; k++ {
			v[k*n+i+1] = 0.0
		}
	}
	for j = 0; j < n; j++ {
		d[j] = v[(n-1)*n+j]
		v[(n-1)*n+j] = 0.0
	}
	v[(n-1)*n+n-1] = 1.0
	e[0] = 0.0
}
