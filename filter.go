package tinyimg

import (
	"errors"
	"fmt"
)

// ErrUnknownFilter is returned when a filter value or name is not recognized.
var ErrUnknownFilter = errors.New("tinyimg: unknown filter")

// Filter identifies one of the built-in 3x3 convolution kernels.
type Filter uint8

const (
	// FilterBlur is a uniform 3x3 box blur.
	FilterBlur Filter = iota

	// FilterSharpen amplifies the center pixel against its neighbors.
	FilterSharpen

	// FilterEdge is a Laplacian edge detector; flat regions go to zero.
	FilterEdge

	// FilterEmboss produces a directional relief effect.
	FilterEmboss
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterBlur:
		return "blur"
	case FilterSharpen:
		return "sharpen"
	case FilterEdge:
		return "edge"
	case FilterEmboss:
		return "emboss"
	default:
		return "unknown"
	}
}

// ParseFilter returns the filter named by s.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "blur":
		return FilterBlur, nil
	case "sharpen":
		return FilterSharpen, nil
	case "edge":
		return FilterEdge, nil
	case "emboss":
		return FilterEmboss, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
	}
}

// kernel returns the 3x3 convolution weights in row-major order.
func (f Filter) kernel() ([9]float64, bool) {
	switch f {
	case FilterBlur:
		return [9]float64{
			1 / 9.0, 1 / 9.0, 1 / 9.0,
			1 / 9.0, 1 / 9.0, 1 / 9.0,
			1 / 9.0, 1 / 9.0, 1 / 9.0,
		}, true
	case FilterSharpen:
		return [9]float64{
			0, -1, 0,
			-1, 5, -1,
			0, -1, 0,
		}, true
	case FilterEdge:
		return [9]float64{
			-1, -1, -1,
			-1, 8, -1,
			-1, -1, -1,
		}, true
	case FilterEmboss:
		return [9]float64{
			-2, -1, 0,
			-1, 1, 1,
			0, 1, 2,
		}, true
	default:
		return [9]float64{}, false
	}
}

// ApplyFilter convolves src with the 3x3 kernel of f and returns the
// result as a new pixmap with the same dimensions and channel count.
//
// Sampling is edge-clamped, results are rounded and clamped to [0, 255].
// For 4-channel images the alpha channel passes through untouched.
func ApplyFilter(src *Pixmap, f Filter) (*Pixmap, error) {
	if src == nil {
		return nil, ErrNilPixmap
	}
	kernel, ok := f.kernel()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFilter, f)
	}

	dst, err := NewPixmap(src.width, src.height, src.channels)
	if err != nil {
		return nil, err
	}

	// Color channels to convolve; alpha (channel 3) is copied as-is.
	colorChannels := src.channels
	if src.channels == 4 {
		colorChannels = 3
	}

	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			off := (y*src.width + x) * src.channels

			for c := 0; c < colorChannels; c++ {
				var sum float64
				for fy := 0; fy < 3; fy++ {
					sy := clampInt(y+fy-1, 0, src.height-1)
					for fx := 0; fx < 3; fx++ {
						sx := clampInt(x+fx-1, 0, src.width-1)
						sample := float64(src.data[(sy*src.width+sx)*src.channels+c])
						sum += sample * kernel[fy*3+fx]
					}
				}
				dst.data[off+c] = uint8(clampInt(int(sum+0.5), 0, 255))
			}

			if src.channels == 4 {
				dst.data[off+3] = src.data[off+3]
			}
		}
	}

	return dst, nil
}

// clampInt clamps v to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
