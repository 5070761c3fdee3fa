package eigen_test

import (
	"fmt"

	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/matrix"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDecompose
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Decompose the symmetric 2×2 matrix
//	  A = | 2 1 |
//	      | 1 2 |
//	whose exact spectrum is {1, 3}.
//
// Because A equals its transpose elementwise, the symmetric pipeline runs:
// eigenvalues come back ascending, imaginary parts are all zero, and the
// eigenvector matrix is orthogonal.
//
// Complexity: O(n³) time, O(n²) memory.
func ExampleDecompose() {
	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 0, 2)
	_ = a.Set(0, 1, 1)
	_ = a.Set(1, 0, 1)
	_ = a.Set(1, 1, 2)

	dec, err := eigen.Decompose(a)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("symmetric=%v\n", dec.IsSymmetric())
	for i, re := range dec.RealEigenvalues() {
		fmt.Printf("λ%d = %.4f\n", i, re)
	}
	// Output:
	// symmetric=true
	// λ0 = 1.0000
	// λ1 = 3.0000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDecompose_complexPair
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Decompose the plane rotation
//	  A = | 0 -1 |
//	      | 1  0 |
//	whose spectrum is the conjugate pair ±i.
//
// The general pipeline reports the pair on adjacent indices with the
// positive imaginary part first; V stays real, and the pair occupies a
// 2×2 block [a b; -b a] in the block-diagonal D.
func ExampleDecompose_complexPair() {
	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 1, -1)
	_ = a.Set(1, 0, 1)

	dec, err := eigen.Decompose(a)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	re, im := dec.RealEigenvalues(), dec.ImagEigenvalues()
	fmt.Printf("symmetric=%v\n", dec.IsSymmetric())
	for i := range re {
		fmt.Printf("λ%d = %.4f%+.4fi\n", i, re[i], im[i])
	}
	// Output:
	// symmetric=false
	// λ0 = 0.0000+1.0000i
	// λ1 = 0.0000-1.0000i
}
