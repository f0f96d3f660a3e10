package tinyimg

import "errors"

// Argument errors shared by the package entry points.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("tinyimg: invalid dimensions")

	// ErrInvalidChannels is returned when the channel count is not 1, 3 or 4.
	ErrInvalidChannels = errors.New("tinyimg: channel count must be 1, 3 or 4")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("tinyimg: data buffer too small")

	// ErrNilPixmap is returned when an operation receives a nil pixmap.
	ErrNilPixmap = errors.New("tinyimg: nil pixmap")
)

// Pixmap represents a rectangular pixel buffer with 1 (grayscale),
// 3 (RGB) or 4 (RGBA) interleaved channels per pixel.
//
// Pixel data is stored row-major: the byte for channel ch of pixel (x, y)
// lives at (y*width+x)*channels + ch. Values are in [0, 255].
//
// A Pixmap is exclusively owned by its creator. Operations never mutate
// their input; they allocate and return a fresh Pixmap.
type Pixmap struct {
	width    int
	height   int
	channels int
	data     []uint8
}

// NewPixmap creates a zero-initialized pixmap with the given dimensions
// and channel count.
func NewPixmap(width, height, channels int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if channels != 1 && channels != 3 && channels != 4 {
		return nil, ErrInvalidChannels
	}
	return &Pixmap{
		width:    width,
		height:   height,
		channels: channels,
		data:     make([]uint8, width*height*channels),
	}, nil
}

// FromBytes creates a pixmap by copying pixel data from a host surface.
// data must hold at least width*height*channels bytes in row-major,
// channel-interleaved order; extra bytes are ignored.
func FromBytes(data []uint8, width, height, channels int) (*Pixmap, error) {
	p, err := NewPixmap(width, height, channels)
	if err != nil {
		return nil, err
	}
	if len(data) < len(p.data) {
		return nil, ErrDataTooSmall
	}
	copy(p.data, data)
	return p, nil
}

// Width returns the width of the pixmap in pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap in pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// Channels returns the number of interleaved channels per pixel.
func (p *Pixmap) Channels() int {
	return p.channels
}

// Bounds returns the pixmap dimensions as (width, height).
func (p *Pixmap) Bounds() (int, int) {
	return p.width, p.height
}

// Data returns the raw pixel data slice. Modifying it modifies the pixmap.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{
		width:    p.width,
		height:   p.height,
		channels: p.channels,
		data:     data,
	}
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if the coordinates are out of bounds.
func (p *Pixmap) PixelOffset(x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return -1
	}
	return (y*p.width + x) * p.channels
}

// At returns the value of channel ch at pixel (x, y).
// Returns 0 if the coordinates or channel are out of range.
func (p *Pixmap) At(x, y, ch int) uint8 {
	if ch < 0 || ch >= p.channels {
		return 0
	}
	offset := p.PixelOffset(x, y)
	if offset < 0 {
		return 0
	}
	return p.data[offset+ch]
}

// Set assigns value v to channel ch at pixel (x, y).
// Out-of-range coordinates or channels are ignored.
func (p *Pixmap) Set(x, y, ch int, v uint8) {
	if ch < 0 || ch >= p.channels {
		return
	}
	offset := p.PixelOffset(x, y)
	if offset < 0 {
		return
	}
	p.data[offset+ch] = v
}

// Clear sets all pixels to zero.
func (p *Pixmap) Clear() {
	clear(p.data)
}

// Fill sets every channel of every pixel to v.
func (p *Pixmap) Fill(v uint8) {
	for i := range p.data {
		p.data[i] = v
	}
}
