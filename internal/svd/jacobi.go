// Package svd implements singular value decomposition of dense channel
// matrices via the classical Jacobi eigenvalue algorithm, and the
// truncated low-rank reconstruction used for image compression.
package svd

import (
	"math"

	"github.com/yamirghofran/TinyIMG/internal/mat"
)

// EigenSymmetric diagonalizes the symmetric matrix a in place using the
// classical cyclic Jacobi method: each iteration locates the largest
// off-diagonal entry and applies the plane rotation that zeroes it.
//
// The solver stops when every off-diagonal magnitude falls below tol,
// or after maxIter rotations, whichever comes first. Convergence within
// the cap is not guaranteed; callers must tolerate approximate
// eigenpairs.
//
// It returns the diagonal of a (eigenvalues, unsorted) and the
// accumulated rotation matrix whose columns are the corresponding
// eigenvectors.
func EigenSymmetric(a *mat.Dense, tol float64, maxIter int) ([]float64, *mat.Dense) {
	n := a.Rows()
	vecs := mat.Identity(n)

	for iter := 0; iter < maxIter; iter++ {
		// Largest off-diagonal pivot. The matrix is symmetric, so
		// scanning the upper triangle is enough.
		p, q := 0, 1
		var largest float64
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				if v := math.Abs(a.At(i, j)); v > largest {
					largest = v
					p, q = i, j
				}
			}
		}
		if largest < tol {
			break
		}

		// Rotation angle that zeroes a[p][q] under the similarity
		// transform A <- G^T A G.
		theta := 0.5 * math.Atan2(2*a.At(p, q), a.At(q, q)-a.At(p, p))
		c := math.Cos(theta)
		s := math.Sin(theta)

		// Column update: A <- A G.
		for i := 0; i < n; i++ {
			aip := a.At(i, p)
			aiq := a.At(i, q)
			a.Set(i, p, c*aip-s*aiq)
			a.Set(i, q, s*aip+c*aiq)
		}
		// Row update: A <- G^T A.
		for i := 0; i < n; i++ {
			api := a.At(p, i)
			aqi := a.At(q, i)
			a.Set(p, i, c*api-s*aqi)
			a.Set(q, i, s*api+c*aqi)
		}
		// Accumulate eigenvectors: V <- V G.
		for i := 0; i < n; i++ {
			vip := vecs.At(i, p)
			viq := vecs.At(i, q)
			vecs.Set(i, p, c*vip-s*viq)
			vecs.Set(i, q, s*vip+c*viq)
		}
	}

	eig := make([]float64, n)
	for i := 0; i < n; i++ {
		eig[i] = a.At(i, i)
	}
	return eig, vecs
}
