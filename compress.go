package tinyimg

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/yamirghofran/TinyIMG/internal/mat"
	"github.com/yamirghofran/TinyIMG/internal/svd"
)

// ErrInvalidRatio is returned when the compression ratio is outside (0, 1].
var ErrInvalidRatio = errors.New("tinyimg: compression ratio must be in (0, 1]")

// Compress returns a lossy rank-reduced approximation of src computed
// independently per channel via a Jacobi singular value decomposition.
//
// ratio controls how much of the singular spectrum survives: each
// channel keeps k = clamp(round(min(w,h)*ratio), 1, min(w,h)) singular
// triples. ratio 1 keeps the full spectrum (near-lossless up to solver
// tolerance and byte quantization).
//
// Channels whose retained spectrum is numerically empty are copied
// unchanged rather than reconstructed. Per-channel temporaries are
// released before the next channel begins, so peak working memory is
// O(w*h) floats regardless of channel count.
func Compress(src *Pixmap, ratio float64, opts ...Option) (*Pixmap, error) {
	if src == nil {
		return nil, ErrNilPixmap
	}
	if math.IsNaN(ratio) || ratio <= 0 || ratio > 1 {
		return nil, ErrInvalidRatio
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dst, err := NewPixmap(src.width, src.height, src.channels)
	if err != nil {
		return nil, err
	}

	maxRank := min(src.width, src.height)
	k := int(math.Round(float64(maxRank) * ratio))
	if k < 1 {
		k = 1
	}
	if k > maxRank {
		k = maxRank
	}

	Logger().Debug("svd compress",
		"width", src.width, "height", src.height,
		"channels", src.channels, "rank", k)
	debug := Logger().Enabled(context.Background(), slog.LevelDebug)

	for c := 0; c < src.channels; c++ {
		channel := mat.NewDense(src.height, src.width)
		for y := 0; y < src.height; y++ {
			for x := 0; x < src.width; x++ {
				channel.Set(y, x, float64(src.data[(y*src.width+x)*src.channels+c]))
			}
		}

		approx := svd.LowRank(channel, k, o.tolerance, o.maxIterations)

		if debug {
			var sq float64
			for y := 0; y < src.height; y++ {
				for x := 0; x < src.width; x++ {
					d := approx.At(y, x) - channel.At(y, x)
					sq += d * d
				}
			}
			Logger().Debug("svd channel",
				"channel", c, "rank", k, "residual", math.Sqrt(sq))
		}

		for y := 0; y < src.height; y++ {
			for x := 0; x < src.width; x++ {
				v := approx.At(y, x)
				if v < 0 {
					v = 0
				} else if v > 255 {
					v = 255
				}
				dst.data[(y*src.width+x)*src.channels+c] = uint8(v)
			}
		}
	}

	return dst, nil
}
