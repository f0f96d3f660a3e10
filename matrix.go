package tinyimg

import "math"

// Affine represents a 2D affine transformation as a 3x3 homogeneous
// matrix in row-major order:
//
//	| m00  m01  m02 |
//	| m10  m11  m12 |
//	| m20  m21  m22 |
//
// Only the top-left 2x2 linear part participates in inversion during
// resampling; transforms are applied in image-centered coordinates, so
// the translation column stays zero for every built-in constructor.
//
// Affine is a value type: constructors build a new matrix and Multiply
// returns a new matrix, never mutating its operands.
type Affine [3][3]float64

// Identity returns the identity transformation (no change).
func Identity() Affine {
	return Affine{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Rotate returns a rotation by angle degrees around the image center.
// Positive angles rotate counter-clockwise.
func Rotate(degrees float64) Affine {
	radians := degrees * (math.Pi / 180)
	cos := math.Cos(radians)
	sin := math.Sin(radians)

	a := Identity()
	a[0][0] = cos
	a[0][1] = -sin
	a[1][0] = sin
	a[1][1] = cos
	return a
}

// Scale returns a scaling transformation by (sx, sy) around the image
// center. Use negative values to flip the image.
func Scale(sx, sy float64) Affine {
	a := Identity()
	a[0][0] = sx
	a[1][1] = sy
	return a
}

// Flip returns a mirroring transformation. horizontal mirrors across the
// vertical axis, vertical across the horizontal axis.
func Flip(horizontal, vertical bool) Affine {
	a := Identity()
	if horizontal {
		a[0][0] = -1
	}
	if vertical {
		a[1][1] = -1
	}
	return a
}

// Shear returns a shearing transformation.
// kx controls horizontal shear (skew along the x-axis).
// ky controls vertical shear (skew along the y-axis).
func Shear(kx, ky float64) Affine {
	a := Identity()
	a[0][1] = kx
	a[1][0] = ky
	return a
}

// Multiply returns the matrix product a * other.
// The result applies 'other' first, then 'a'.
func (a Affine) Multiply(other Affine) Affine {
	var out Affine
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[i][k] * other[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Det returns the determinant of the 2x2 linear part.
// A magnitude below the resampler's singularity threshold means the
// transform cannot be inverted and resampling leaves pixels zero.
func (a Affine) Det() float64 {
	return a[0][0]*a[1][1] - a[0][1]*a[1][0]
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (a Affine) IsIdentity() bool {
	return a == Identity()
}
