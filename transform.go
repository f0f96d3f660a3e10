package tinyimg

import "math"

// singularEps is the determinant magnitude below which the 2x2 linear
// part of a transform is treated as non-invertible.
const singularEps = 1e-6

// Transform applies an affine transformation to src and returns the
// result as a new pixmap with the same dimensions and channel count.
//
// Resampling is done by inverse mapping in image-centered coordinates:
// for every destination pixel the 2x2 linear part is inverted
// analytically and the mapped source location is sampled with bilinear
// interpolation, independently per channel.
//
// Destination pixels stay zero when the transform is singular
// (|det| < 1e-6) or when the mapped source coordinate falls outside
// [0, w-2] x [0, h-2]. The upper bound is exclusive of the last source
// row and column, so even an identity transform zeroes the final
// row/column of the output.
func Transform(src *Pixmap, m Affine) (*Pixmap, error) {
	if src == nil {
		return nil, ErrNilPixmap
	}

	dst, err := NewPixmap(src.width, src.height, src.channels)
	if err != nil {
		return nil, err
	}

	// Singular transforms have no inverse; every destination pixel
	// keeps its zero default.
	det := m.Det()
	if math.Abs(det) < singularEps {
		return dst, nil
	}

	// Analytic inverse of the 2x2 linear part.
	invDet := 1.0 / det
	ia := m[1][1] * invDet
	ib := -m[0][1] * invDet
	ic := -m[1][0] * invDet
	id := m[0][0] * invDet

	centerX := float64(src.width) / 2
	centerY := float64(src.height) / 2

	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			// Shift to transform-centered coordinates and map the
			// destination pixel back to its source location.
			cx := float64(x) - centerX
			cy := float64(y) - centerY

			srcX := ia*cx + ib*cy + centerX
			srcY := ic*cx + id*cy + centerY

			// The last source row/column is never sampled: bilinear
			// interpolation needs the full 2x2 neighborhood.
			if srcX < 0 || srcX >= float64(src.width-1) ||
				srcY < 0 || srcY >= float64(src.height-1) {
				continue
			}

			x0 := int(srcX)
			y0 := int(srcY)
			x1 := x0 + 1
			y1 := y0 + 1

			fx := srcX - float64(x0)
			fy := srcY - float64(y0)

			srcRow0 := (y0*src.width + x0) * src.channels
			srcRow1 := (y1*src.width + x0) * src.channels
			dstOff := (y*src.width + x) * src.channels

			for c := 0; c < src.channels; c++ {
				p00 := float64(src.data[srcRow0+c])
				p01 := float64(src.data[(y0*src.width+x1)*src.channels+c])
				p10 := float64(src.data[srcRow1+c])
				p11 := float64(src.data[(y1*src.width+x1)*src.channels+c])

				v := (1-fx)*(1-fy)*p00 +
					fx*(1-fy)*p01 +
					(1-fx)*fy*p10 +
					fx*fy*p11

				dst.data[dstOff+c] = uint8(v)
			}
		}
	}

	return dst, nil
}
