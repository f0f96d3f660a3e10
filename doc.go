// Package tinyimg provides a pixel-buffer processing kernel for raster
// images: affine geometric transforms with inverse-mapped bilinear
// resampling, and lossy rank-reduced compression based on a Jacobi
// singular value decomposition.
//
// # Quick Start
//
//	import tinyimg "github.com/yamirghofran/TinyIMG"
//
//	// Wrap a host pixel surface (row-major, channel-interleaved bytes)
//	src, err := tinyimg.FromBytes(pixels, width, height, 4)
//
//	// Rotate 90 degrees around the image center
//	dst, err := tinyimg.Transform(src, tinyimg.Rotate(90))
//
//	// Keep half of the singular spectrum per channel
//	out, err := tinyimg.Compress(src, 0.5)
//
// Output dimensions always equal input dimensions. Channel counts 1
// (grayscale), 3 (RGB) and 4 (RGBA) are supported.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Pixmap, Affine, Transform, Compress, ApplyFilter
//   - Internal: mat (dense float64 matrices), svd (Jacobi eigen solver
//     and truncated SVD reconstruction)
//
// All operations are synchronous and CPU-bound. They share no mutable
// state, so independent buffers may be processed concurrently from
// multiple goroutines without locking.
//
// # Numerical Behavior
//
// Numeric degeneracy (singular transforms, vanishing singular values,
// non-converged Jacobi sweeps) is handled by documented local fallbacks
// rather than errors: affected destination pixels stay zero, exhausted
// singular columns are zeroed, and degenerate channels are copied
// unchanged. Convergence tolerance and the rotation cap are configurable
// through Options on Compress.
package tinyimg
