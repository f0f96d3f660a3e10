package tinyimg

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// FromImage creates a pixmap from an image. Grayscale images become
// single-channel pixmaps; everything else is converted to 4-channel
// RGBA (non-premultiplied). Images with empty bounds are rejected with
// ErrInvalidDimensions.
func FromImage(img image.Image) (*Pixmap, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if gray, ok := img.(*image.Gray); ok {
		p, err := NewPixmap(width, height, 1)
		if err != nil {
			return nil, err
		}
		for y := 0; y < height; y++ {
			copy(p.data[y*width:(y+1)*width],
				gray.Pix[y*gray.Stride:y*gray.Stride+width])
		}
		return p, nil
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Copy(nrgba, image.Point{}, img, bounds, draw.Src, nil)

	p, err := NewPixmap(width, height, 4)
	if err != nil {
		return nil, err
	}
	copy(p.data, nrgba.Pix)
	return p, nil
}

// ToImage converts the pixmap to a standard library image: image.Gray
// for single-channel pixmaps, image.NRGBA otherwise (3-channel pixmaps
// get an opaque alpha).
func (p *Pixmap) ToImage() image.Image {
	switch p.channels {
	case 1:
		img := image.NewGray(image.Rect(0, 0, p.width, p.height))
		for y := 0; y < p.height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+p.width],
				p.data[y*p.width:(y+1)*p.width])
		}
		return img
	case 3:
		img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
		for i := 0; i < p.width*p.height; i++ {
			img.Pix[i*4+0] = p.data[i*3+0]
			img.Pix[i*4+1] = p.data[i*3+1]
			img.Pix[i*4+2] = p.data[i*3+2]
			img.Pix[i*4+3] = 255
		}
		return img
	default:
		img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
		copy(img.Pix, p.data)
		return img
	}
}

// LoadImage loads an image from the given file path, auto-detecting the
// format from its content. Formats beyond PNG must be registered by the
// caller (for example by importing image/jpeg or golang.org/x/image/bmp
// for their side effects).
func LoadImage(path string) (*Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("tinyimg: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("tinyimg: decode: %w", err)
	}
	return FromImage(img)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}
