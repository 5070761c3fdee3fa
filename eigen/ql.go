// Package eigen: symmetric tridiagonal QL iteration.
package eigen

import "math"

// tridiagonalQL diagonalizes a symmetric tridiagonal matrix (d, e) by the
// implicit-shift QL algorithm with Wilkinson shifts, accumulating every
// elementary plane rotation into V so its columns become the eigenvectors,
// and finishes with an ascending selection sort of d (V columns swapped in
// lockstep).
//
// This is derived from the Algol procedure tql2 by Bowdler, Martin,
// Reinsch, and Wilkinson, Handbook for Auto. Comp., Vol. II — Linear
// Algebra, and the corresponding Fortran subroutine in EISPACK.
//
// Contract:
//   - d, e: tridiagonal form from tridiagonalize; on return d holds the
//     eigenvalues in non-decreasing order and e is all zero.
//   - v: the orthogonal transform from tridiagonalize; on return its
//     columns are the eigenvectors matching d.
//   - maxIter: per-eigenvalue cap on QL sweeps; 0 disables the cap.
//
// Convergence test: |e[l]| ≤ eps·tst1, where tst1 is the running maximum
// of |d|+|e| over processed indices, a relative, norm-scaled criterion.
// The shift uses math.Hypot, never a naive sqrt(a²+b²), so it cannot
// overflow; a zero e[l] denominator is unreachable here because the sweep
// only starts when |e[l]| is above the negligibility threshold.
// Complexity: O(n³) time dominated by rotation accumulation into V.
func tridiagonalQL(v, d, e []float64, n, maxIter int) error {
	var i, k, l, m, iter int
	var f, tst1, g, p, r, dl1, h, c, c2, c3, el1, s, s2 float64

	// Shift e left by one to align e[l] with the subdiagonal under d[l].
	for i = 1; i < n; i++ {
		e[i-1] = e[i]
	}
	e[n-1] = 0.0

	f = 0.0
	tst1 = 0.0
	eps := machEps
	for l = 0; l < n; l++ {
		// Find a small subdiagonal element.
		tst1 = math.Max(tst1, math.Abs(d[l])+math.Abs(e[l]))
		m = l
		for m < n {
			if math.Abs(e[m]) <= eps*tst1 {
				break
			}
			m++
		}

		// If m == l, d[l] is already an eigenvalue; otherwise iterate.
		if m > l {
			iter = 0
			for {
				iter++
				if maxIter > 0 && iter > maxIter {
					return ErrNotConverged
				}

				// Compute the implicit (Wilkinson) shift.
				g = d[l]
				p = (d[l+1] - g) / (2.0 * e[l])
				r = math.Hypot(p, 1.0)
				if p < 0 {
					r = -r
				}
				d[l] = e[l] / (p + r)
				d[l+1] = e[l] * (p + r)
				dl1 = d[l+1]
				h = g - d[l]
				for i = l + 2; i < n; i++ {
					d[i] -= h
				}
				f += h

				// Implicit QL transformation.
				p = d[m]
				c = 1.0
				c2 = c
				c3 = c
				el1 = e[l+1]
				s = 0.0
				s2 = 0.0
				for i = m - 1; i >= l; i-- {
					c3 = c2
					c2 = c
					s2 = s
					g = c * e[i]
					h = c * p
					r = math.Hypot(p, e[i])
					e[i+1] = s * r
					s = e[i] / r
					c = p / r
					p = c*d[i] - s*g
					d[i+1] = h + s*(c*g+s*d[i])

					// Accumulate the plane rotation into columns i, i+1 of V.
					for k = 0; k < n; k++ {
						h = v[k*n+i+1]
						v[k*n+i+1] = s*v[k*n+i] + c*h
						v[k*n+i] = c*v[k*n+i] - s*h
					}
				}
				p = -s * s2 * c3 * el1 * e[l] / dl1
				e[l] = s * p
				d[l] = c * p

				// Check for convergence.
				if math.Abs(e[l]) <= eps*tst1 {
					break
				}
			}
		}
		d[l] += f
		e[l] = 0.0
	}

	// Sort eigenvalues ascending, swapping eigenvector columns in lockstep.
	for i = 0; i < n-1; i++ {
		k = i
		p = d[i]
		for j := i + 1; j < n; j++ {
			if d[j] < p {
				k = j
				p = d[j]
			}
		}
		if k != i {
			d[k] = d[i]
			d[i] = p
			for j := 0; j < n; j++ {
				v[j*n+i], v[j*n+k] = v[j*n+k], v[j*n+i]
			}
		}
	}

	return nil
}
