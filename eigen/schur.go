// Package eigen: nonsymmetric reduction from Hessenberg to real Schur
// form: the double-shift implicit QR iteration, eigenvector
// back-substitution, and the basis back-transform.
package eigen

import "math"

// schurForm reduces an upper Hessenberg matrix to real quasi-triangular
// Schur form by the Francis double-shift QR iteration, extracting real
// eigenvalues and 2×2-block complex-conjugate pairs into (d, e), then
// back-substitutes for the eigenvectors of the Schur form (solving a 2×2
// complex system per row for conjugate pairs) and back-transforms them
// through the accumulated orthogonal basis in V.
//
// This is derived from the Algol procedure hqr2 by Martin and Wilkinson,
// Handbook for Auto. Comp., Vol. II — Linear Algebra, and the
// corresponding Fortran subroutine in EISPACK, including the later fix
// that substitutes the full matrix norm when a deflation-scan denominator
// vanishes.
//
// Contract:
//   - h: row-major n×n flat buffer holding the Hessenberg form from
//     hessenberg; destroyed (it becomes Schur-form scratch and then the
//     back-substitution workspace).
//   - v: the orthogonal transform from hessenberg; on return its columns
//     are the eigenvectors of the original matrix, ordered like (d, e).
//   - d, e: length-n outputs, real and imaginary eigenvalue parts; each
//     conjugate pair lands on adjacent indices, +imag first.
//   - maxIter: per-deflation cap on QR sweeps; 0 disables the cap.
//
// Numeric policy: every potentially degenerate division falls back to an
// epsilon-scaled substitute (eps·norm) instead of propagating NaN/Inf, and
// back-substitution rescales any column whose magnitude would square past
// representable range. A zero matrix norm skips back-substitution
// entirely.
// Complexity: O(n³) time, O(1) extra memory.
func schurForm(h, v, d, e []float64, nn, maxIter int) error {
	var i, j, k, l, m int
	var p, q, r, s, z, t, w, x, y float64

	// Active range of the deflation state machine. No balancing step is
	// applied, so low/high always span the whole matrix; they are kept
	// because the deflation and back-transform logic is phrased in terms
	// of them.
	n := nn - 1
	low := 0
	high := nn - 1
	eps := machEps
	exshift := 0.0

	// Store any roots isolated outside [low, high] and compute the norm.
	norm := 0.0
	for i = 0; i < nn; i++ {
		if i < low || i > high {
			d[i] = h[i*nn+i]
			e[i] = 0.0
		}
		for j = max(i-1, 0); j < nn; j++ {
			norm += math.Abs(h[i*nn+j])
		}
	}

	// Outer loop over the eigenvalue index.
	iter := 0
	for n >= low {
		// Look for a single small subdiagonal element.
		l = n
		for l > low {
			s = math.Abs(h[(l-1)*nn+l-1]) + math.Abs(h[l*nn+l])
			if s == 0.0 {
				s = norm
			}
			if math.Abs(h[l*nn+l-1]) < eps*s {
				break
			}
			l--
		}

		if l == n {
			// One root found.
			h[n*nn+n] += exshift
			d[n] = h[n*nn+n]
			e[n] = 0.0
			n--
			iter = 0
		} else if l == n-1 {
			// Two roots found: real pair or complex-conjugate pair,
			// decided by the discriminant of the trailing 2×2 block.
			w = h[n*nn+n-1] * h[(n-1)*nn+n]
			p = (h[(n-1)*nn+n-1] - h[n*nn+n]) / 2.0
			q = p*p + w
			z = math.Sqrt(math.Abs(q))
			h[n*nn+n] += exshift
			h[(n-1)*nn+n-1] += exshift
			x = h[n*nn+n]

			if q >= 0 {
				// Real pair.
				if p >= 0 {
					z = p + z
				} else {
					z = p - z
				}
				d[n-1] = x + z
				d[n] = d[n-1]
				if z != 0.0 {
					d[n] = x - w/z
				}
				e[n-1] = 0.0
				e[n] = 0.0
				x = h[n*nn+n-1]
				s = math.Abs(x) + math.Abs(z)
				p = x / s
				q = z / s
				r = math.Sqrt(p*p + q*q)
				p /= r
				q /= r

				// Row modification.
				for j = n - 1; j < nn; j++ {
					z = h[(n-1)*nn+j]
					h[(n-1)*nn+j] = q*z + p*h[n*nn+j]
					h[n*nn+j] *= q
					h[n*nn+j] -= p * z
				}

				// Column modification.
				for i = 0; i <= n; i++ {
					z = h[i*nn+n-1]
					h[i*nn+n-1] = q*z + p*h[i*nn+n]
					h[i*nn+n] *= q
					h[i*nn+n] -= p * z
				}

				// Accumulate transformations.
				for i = low; i <= high; i++ {
					z = v[i*nn+n-1]
					v[i*nn+n-1] = q*z + p*v[i*nn+n]
					v[i*nn+n] *= q
					v[i*nn+n] -= p * z
				}
			} else {
				// Complex pair, recorded with +imag first.
				d[n-1] = x + p
				d[n] = x + p
				e[n-1] = z
				e[n] = -z
			}
			n -= 2
			iter = 0
		} else {
			// No convergence yet: form the double-shift estimate from the
			// trailing 2×2 block.
			x = h[n*nn+n]
			y = 0.0
			w = 0.0
			if l < n {
				y = h[(n-1)*nn+n-1]
				w = h[n*nn+n-1] * h[(n-1)*nn+n]
			}

			// Wilkinson's original ad hoc shift after 10 stagnant sweeps.
			if iter == 10 {
				exshift += x
				for i = low; i <= n; i++ {
					h[i*nn+i] -= x
				}
				s = math.Abs(h[n*nn+n-1]) + math.Abs(h[(n-1)*nn+n-2])
				x = 0.75 * s
				y = x
				w = -0.4375 * s * s
			}

			// MATLAB's secondary ad hoc shift after 30 stagnant sweeps.
			if iter == 30 {
				s = (y - x) / 2.0
				s *= s
				s += w
				if s > 0 {
					s = math.Sqrt(s)
					if y < x {
						s = -s
					}
					s = x - w/((y-x)/2.0+s)
					for i = low; i <= n; i++ {
						h[i*nn+i] -= s
					}
					exshift += s
					x = 0.964
					y = 0.964
					w = 0.964
				}
			}

			iter++
			if maxIter > 0 && iter > maxIter {
				return ErrNotConverged
			}

			// Look for two consecutive small subdiagonal elements to start
			// the bulge chase.
			m = n - 2
			for m >= l {
				z = h[m*nn+m]
				r = x - z
				s = y - z
				p = (r*s-w)/h[(m+1)*nn+m] + h[m*nn+m+1]
				q = h[(m+1)*nn+m+1] - z - r - s
				r = h[(m+2)*nn+m+1]
				s = math.Abs(p) + math.Abs(q) + math.Abs(r)
				p /= s
				q /= s
				r /= s
				if m == l {
					break
				}
				if math.Abs(h[m*nn+m-1])*(math.Abs(q)+math.Abs(r)) <
					eps*(math.Abs(p)*(math.Abs(h[(m-1)*nn+m-1])+math.Abs(z)+
						math.Abs(h[(m+1)*nn+m+1]))) {
					break
				}
				m--
			}

			for i = m + 2; i <= n; i++ {
				h[i*nn+i-2] = 0.0
				if i > m+2 {
					h[i*nn+i-3] = 0.0
				}
			}

			// Double QR step involving rows l..n and columns m..n.
			for k = m; k <= n-1; k++ {
				notlast := k != n-1
				if k != m {
					p = h[k*nn+k-1]
					q = h[(k+1)*nn+k-1]
					if notlast {
						r = h[(k+2)*nn+k-1]
					} else {
						r = 0.0
					}
					x = math.Abs(p) + math.Abs(q) + math.Abs(r)
					if x == 0.0 {
						continue
					}
					p /= x
					q /= x
					r /= x
				}
				s = math.Sqrt(p*p + q*q + r*r)
				if p < 0 {
					s = -s
				}
				if s != 0 {
					if k != m {
						h[k*nn+k-1] = -s * x
					} else if l != m {
						h[k*nn+k-1] = -h[k*nn+k-1]
					}
					p += s
					x = p / s
					y = q / s
					z = r / s
					q /= p
					r /= p

					// Row modification.
					for j = k; j < nn; j++ {
						p = h[k*nn+j] + q*h[(k+1)*nn+j]
						if notlast {
							p += r * h[(k+2)*nn+j]
							h[(k+2)*nn+j] -= p * z
						}
						h[k*nn+j] -= p * x
						h[(k+1)*nn+j] -= p * y
					}

					// Column modification.
					for i = 0; i <= min(n, k+3); i++ {
						p = x*h[i*nn+k] + y*h[i*nn+k+1]
						if notlast {
							p += z * h[i*nn+k+2]
							h[i*nn+k+2] -= p * r
						}
						h[i*nn+k] -= p
						h[i*nn+k+1] -= p * q
					}

					// Accumulate transformations.
					for i = low; i <= high; i++ {
						p = x*v[i*nn+k] + y*v[i*nn+k+1]
						if notlast {
							p += z * v[i*nn+k+2]
							v[i*nn+k+2] -= p * r
						}
						v[i*nn+k] -= p
						v[i*nn+k+1] -= p * q
					}
				}
			}
		}
	}

	// Backsubstitute to find the vectors of the upper triangular form.
	// A zero norm means the matrix was all zero: every vector is trivial.
	if norm == 0.0 {
		return nil
	}

	for idx := nn - 1; idx >= 0; idx-- {
		p = d[idx]
		q = e[idx]

		if q == 0 {
			// Real vector.
			l = idx
			h[idx*nn+idx] = 1.0
			for i = idx - 1; i >= 0; i-- {
				w = h[i*nn+i] - p
				r = 0.0
				for j = l; j <= idx; j++ {
					r += h[i*nn+j] * h[j*nn+idx]
				}
				if e[i] < 0.0 {
					// Part of a conjugate block: carry (w, r) to the
					// paired row below.
					z = w
					s = r
				} else {
					l = i
					if e[i] == 0.0 {
						if w != 0.0 {
							h[i*nn+idx] = -r / w
						} else {
							// Zero pivot: substitute an epsilon-scaled norm.
							h[i*nn+idx] = -r / (eps * norm)
						}
					} else {
						// Solve the real 2×2 block equations.
						x = h[i*nn+i+1]
						y = h[(i+1)*nn+i]
						q = (d[i]-p)*(d[i]-p) + e[i]*e[i]
						t = (x*s - z*r) / q
						h[i*nn+idx] = t
						if math.Abs(x) > math.Abs(z) {
							h[(i+1)*nn+idx] = (-r - w*t) / x
						} else {
							h[(i+1)*nn+idx] = (-s - y*t) / z
						}
					}

					// Overflow control.
					t = math.Abs(h[i*nn+idx])
					if (eps*t)*t > 1 {
						for j = i; j <= idx; j++ {
							h[j*nn+idx] /= t
						}
					}
				}
			}
		} else if q < 0 {
			// Complex vector: the pair occupies columns idx-1 (real part)
			// and idx (imaginary part).
			l = idx - 1

			// Last vector component imaginary, so the matrix is triangular.
			if math.Abs(h[idx*nn+idx-1]) > math.Abs(h[(idx-1)*nn+idx]) {
				h[(idx-1)*nn+idx-1] = q / h[idx*nn+idx-1]
				h[(idx-1)*nn+idx] = -(h[idx*nn+idx] - p) / h[idx*nn+idx-1]
			} else {
				c := complex(0.0, -h[(idx-1)*nn+idx]) /
					complex(h[(idx-1)*nn+idx-1]-p, q)
				h[(idx-1)*nn+idx-1] = real(c)
				h[(idx-1)*nn+idx] = imag(c)
			}
			h[idx*nn+idx-1] = 0.0
			h[idx*nn+idx] = 1.0
			for i = idx - 2; i >= 0; i-- {
				var ra, sa, vr, vi float64
				ra = 0.0
				sa = 0.0
				for j = l; j <= idx; j++ {
					ra += h[i*nn+j] * h[j*nn+idx-1]
					sa += h[i*nn+j] * h[j*nn+idx]
				}
				w = h[i*nn+i] - p

				if e[i] < 0.0 {
					// Carry to the paired row below.
					z = w
					r = ra
					s = sa
				} else {
					l = i
					if e[i] == 0 {
						c := complex(-ra, -sa) / complex(w, q)
						h[i*nn+idx-1] = real(c)
						h[i*nn+idx] = imag(c)
					} else {
						// Solve the complex 2×2 block equations.
						x = h[i*nn+i+1]
						y = h[(i+1)*nn+i]
						vr = (d[i]-p)*(d[i]-p) + e[i]*e[i] - q*q
						vi = (d[i] - p) * 2.0 * q
						if vr == 0.0 && vi == 0.0 {
							// Degenerate denominator: epsilon-scaled substitute.
							vr = eps * norm * (math.Abs(w) + math.Abs(q) +
								math.Abs(x) + math.Abs(y) + math.Abs(z))
						}
						c := complex(x*r-z*ra+q*sa, x*s-z*sa-q*ra) /
							complex(vr, vi)
						h[i*nn+idx-1] = real(c)
						h[i*nn+idx] = imag(c)
						if math.Abs(x) > math.Abs(z)+math.Abs(q) {
							h[(i+1)*nn+idx-1] = (-ra - w*h[i*nn+idx-1] + q*h[i*nn+idx]) / x
							h[(i+1)*nn+idx] = (-sa - w*h[i*nn+idx] - q*h[i*nn+idx-1]) / x
						} else {
							c = complex(-r-y*h[i*nn+idx-1], -s-y*h[i*nn+idx]) /
								complex(z, q)
							h[(i+1)*nn+idx-1] = real(c)
							h[(i+1)*nn+idx] = imag(c)
						}
					}

					// Overflow control.
					t = math.Max(math.Abs(h[i*nn+idx-1]), math.Abs(h[i*nn+idx]))
					if (eps*t)*t > 1 {
						for j = i; j <= idx; j++ {
							h[j*nn+idx-1] /= t
							h[j*nn+idx] /= t
						}
					}
				}
			}
		}
	}

	// Vectors of isolated roots copy straight across.
	for i = 0; i < nn; i++ {
		if i < low || i > high {
			for j = i; j < nn; j++ {
				v[i*nn+j] = h[i*nn+j]
			}
		}
	}

	// Back-transform to get the eigenvectors of the original matrix.
	for j = nn - 1; j >= low; j-- {
		for i = low; i <= high; i++ {
			z = 0.0
			for k = low; k <= min(j, high); k++ {
				z += v[i*nn+k] * h[k*nn+j]
			}
			v[i*nn+j] = z
		}
	}

	return nil
}
