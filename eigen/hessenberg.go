// Package eigen: nonsymmetric reduction to upper Hessenberg form.
package eigen

import "math"

// hessenberg reduces a general matrix to upper Hessenberg form by
// Householder column eliminations, then builds the accumulated orthogonal
// transform into V by reapplying the stored reflections in reverse.
//
// This is derived from the Algol procedures orthes and ortran by Martin
// and Wilkinson, Handbook for Auto. Comp., Vol. II — Linear Algebra, and
// the corresponding Fortran subroutines in EISPACK.
//
// Contract:
//   - h: row-major n×n flat buffer holding a copy of the input; overwritten
//     with the upper Hessenberg form (the sub-subdiagonal entries keep the
//     scaled reflector data that the backfill pass consumes).
//   - v: n×n flat buffer; initialized to identity here and overwritten with
//     the orthogonal similarity transform. This is an intermediate basis;
//     the Schur iteration keeps updating it.
//   - ort: length-n transient scratch for Householder scales.
//
// The transform is accumulated AFTER the reduction (compute-then-backfill):
// accumulating during the forward pass would corrupt the reflector data
// still stored in the reduced columns.
// Complexity: O(n³) time, O(1) extra memory beyond ort.
func hessenberg(h, v, ort []float64, n int) {
	var i, j, m int
	var scale, hh, g, f float64

	low := 0
	high := n - 1

	for m = low + 1; m <= high-1; m++ {
		// Scale the subcolumn below the subdiagonal.
		scale = 0.0
		for i = m; i <= high; i++ {
			scale += math.Abs(h[i*n+m-1])
		}
		if scale != 0.0 {
			// Compute the Householder transformation.
			hh = 0.0
			for i = high; i >= m; i-- {
				ort[i] = h[i*n+m-1] / scale
				hh += ort[i] * ort[i]
			}
			g = math.Sqrt(hh)
			if ort[m] > 0 {
				g = -g // sign chosen to avoid cancellation
			}
			hh -= ort[m] * g
			ort[m] -= g

			// Apply the Householder similarity transformation
			// H = (I - u·uᵀ/h)·H·(I - u·uᵀ/h).
			for j = m; j < n; j++ {
				f = 0.0
				for i = high; i >= m; i-- {
					f += ort[i] * h[i*n+j]
				}
				f /= hh
				for i = m; i <= high; i++ {
					h[i*n+j] -= f * ort[i]
				}
			}
			for i = 0; i <= high; i++ {
				f = 0.0
				for j = high; j >= m; j-- {
					f += ort[j] * h[i*n+j]
				}
				f /= hh
				for j = m; j <= high; j++ {
					h[i*n+j] -= f * ort[j]
				}
			}
			ort[m] *= scale
			h[m*n+m-1] = scale * g
		}
	}

	// Accumulate transformations (Algol's ortran): start from identity and
	// reapply the stored reflections in reverse order.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				v[i*n+j] = 1.0
			} else {
				v[i*n+j] = 0.0
			}
		}
	}
	for m = high - 1; m >= low+1; m-- {
		if h[m*n+m-1] != 0.0 {
			for i = m + 1; i <= high; i++ {
				ort[i] = h[i*n+m-1]
			}
			for j = m; j <= high; j++ {
				g = 0.0
				for i = m; i <= high; i++ {
					g += ort[i] * v[i*n+j]
				}
				// Double division avoids possible underflow.
				g = (g / ort[m]) / h[m*n+m-1]
				for i = m; i <= high; i++ {
					v[i*n+j] += g * ort[i]
				}
			}
		}
	}
}
