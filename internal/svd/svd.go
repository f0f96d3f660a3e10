package svd

import (
	"math"

	"github.com/yamirghofran/TinyIMG/internal/mat"
)

// degenerateEps is the singular value magnitude below which a retained
// spectrum is considered empty; see LowRank.
const degenerateEps = 1e-6

// Decompose factorizes a as U * diag(S) * V^T with k = min(rows, cols)
// singular triples. S is sorted descending; columns of U (rows x k) and
// V (cols x k) are unit L2 norm up to solver tolerance and
// sign-normalized so the first significant element of each U column is
// positive.
//
// The eigen problem is built on the smaller Gram matrix: A^T A when
// cols <= rows, A A^T otherwise. tol and maxIter configure the Jacobi
// solver (see EigenSymmetric); tol also decides when a singular value is
// too small to divide by, in which case the derived column stays zero.
func Decompose(a *mat.Dense, tol float64, maxIter int) (u *mat.Dense, s []float64, v *mat.Dense) {
	rows, cols := a.Rows(), a.Cols()
	k := min(rows, cols)

	// Covariance of the smaller dimension keeps the eigen problem at
	// k x k.
	useATA := cols <= rows
	var cov *mat.Dense
	if useATA {
		cov = a.ATA()
	} else {
		cov = a.AAT()
	}

	eig, vecs := EigenSymmetric(cov, tol, maxIter)

	// Singular values from eigenvalues. Tiny negatives can appear from
	// round-off, hence the absolute value.
	s = make([]float64, k)
	for i := 0; i < k; i++ {
		s[i] = math.Sqrt(math.Abs(eig[i]))
	}

	// Stable descending order: swap only on strict <, preserving the
	// original order of ties. Eigenvector columns are permuted
	// identically.
	for i := 0; i < k-1; i++ {
		for j := i + 1; j < k; j++ {
			if s[i] < s[j] {
				s[i], s[j] = s[j], s[i]
				vecs.SwapCols(i, j)
			}
		}
	}

	// The eigenvectors are one factor directly; the other follows from
	// the defining relations A v_j = s_j u_j and A^T u_j = s_j v_j.
	if useATA {
		v = vecs
		u = deriveFactor(a, v, s, tol)
	} else {
		u = vecs
		v = deriveFactor(a.T(), u, s, tol)
	}

	// Re-normalize both factors, folding removed norms back into S so
	// the product U diag(S) V^T is preserved.
	for j := 0; j < k; j++ {
		if n := u.ColNorm(j); n > tol {
			u.ScaleCol(j, 1/n)
			s[j] *= n
		}
		if n := v.ColNorm(j); n > tol {
			v.ScaleCol(j, 1/n)
			s[j] *= n
		}
	}

	// Sign convention: make the first significant element of each U
	// column positive, flipping the matching V column to compensate.
	for j := 0; j < k; j++ {
		for i := 0; i < rows; i++ {
			e := u.At(i, j)
			if math.Abs(e) <= tol {
				continue
			}
			if e < 0 {
				u.ScaleCol(j, -1)
				v.ScaleCol(j, -1)
			}
			break
		}
	}

	return u, s, v
}

// deriveFactor computes the missing SVD factor column-wise as
// a * vecs[:,j] / s[j]. Columns whose singular value is below tol are
// left zero instead of dividing by a vanishing quantity.
func deriveFactor(a, vecs *mat.Dense, s []float64, tol float64) *mat.Dense {
	rows := a.Rows()
	k := len(s)
	out := mat.NewDense(rows, k)

	for j := 0; j < k; j++ {
		if s[j] < tol {
			continue
		}
		inv := 1 / s[j]
		for i := 0; i < rows; i++ {
			var sum float64
			for l := 0; l < a.Cols(); l++ {
				sum += a.At(i, l) * vecs.At(l, j)
			}
			out.Set(i, j, sum*inv)
		}
	}
	return out
}

// LowRank returns the rank-k approximation of a obtained by keeping the
// k largest singular triples of its Jacobi SVD.
//
// If none of the retained singular values exceeds 1e-6 the decomposition
// is degenerate and a clone of the input is returned unchanged.
func LowRank(a *mat.Dense, k int, tol float64, maxIter int) *mat.Dense {
	rows, cols := a.Rows(), a.Cols()
	if maxRank := min(rows, cols); k > maxRank {
		k = maxRank
	}

	u, s, v := Decompose(a, tol, maxIter)

	retained := false
	for i := 0; i < k; i++ {
		if s[i] > degenerateEps {
			retained = true
			break
		}
	}
	if !retained {
		return a.Clone()
	}

	out := mat.NewDense(rows, cols)
	for i := 0; i < k; i++ {
		if s[i] <= degenerateEps {
			break // spectrum is sorted; nothing significant remains
		}
		for y := 0; y < rows; y++ {
			uy := s[i] * u.At(y, i)
			if uy == 0 {
				continue
			}
			for x := 0; x < cols; x++ {
				out.Set(y, x, out.At(y, x)+uy*v.At(x, i))
			}
		}
	}
	return out
}
