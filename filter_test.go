package tinyimg

import (
	"errors"
	"testing"
)

func TestFilterString(t *testing.T) {
	tests := []struct {
		f    Filter
		want string
	}{
		{FilterBlur, "blur"},
		{FilterSharpen, "sharpen"},
		{FilterEdge, "edge"},
		{FilterEmboss, "emboss"},
		{Filter(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Filter(%d).String() = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestParseFilter(t *testing.T) {
	for _, f := range []Filter{FilterBlur, FilterSharpen, FilterEdge, FilterEmboss} {
		got, err := ParseFilter(f.String())
		if err != nil {
			t.Errorf("ParseFilter(%q) error = %v", f.String(), err)
		}
		if got != f {
			t.Errorf("ParseFilter(%q) = %v, want %v", f.String(), got, f)
		}
	}

	if _, err := ParseFilter("sepia"); !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("ParseFilter(\"sepia\") error = %v, want %v", err, ErrUnknownFilter)
	}
}

func TestApplyFilterUnknown(t *testing.T) {
	src, err := NewPixmap(3, 3, 1)
	if err != nil {
		t.Fatalf("NewPixmap() error = %v", err)
	}
	if _, err := ApplyFilter(src, Filter(99)); !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("ApplyFilter(unknown) error = %v, want %v", err, ErrUnknownFilter)
	}
	if _, err := ApplyFilter(nil, FilterBlur); !errors.Is(err, ErrNilPixmap) {
		t.Errorf("ApplyFilter(nil) error = %v, want %v", err, ErrNilPixmap)
	}
}

func TestApplyFilterFlatRegions(t *testing.T) {
	// On a constant image, kernels that sum to 1 reproduce the constant
	// and the Laplacian edge kernel goes to zero. Edge-clamped sampling
	// keeps this true on the borders too.
	tests := []struct {
		name   string
		filter Filter
		want   uint8
	}{
		{"blur preserves flat", FilterBlur, 100},
		{"sharpen preserves flat", FilterSharpen, 100},
		{"edge flattens to zero", FilterEdge, 0},
		{"emboss preserves flat", FilterEmboss, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewPixmap(5, 4, 1)
			if err != nil {
				t.Fatalf("NewPixmap() error = %v", err)
			}
			src.Fill(100)

			dst, err := ApplyFilter(src, tt.filter)
			if err != nil {
				t.Fatalf("ApplyFilter() error = %v", err)
			}
			for i, v := range dst.Data() {
				if v != tt.want {
					t.Fatalf("Data()[%d] = %d, want %d", i, v, tt.want)
				}
			}
		})
	}
}

func TestApplyFilterBlurImpulse(t *testing.T) {
	// A 3x3 image with a single impulse of 90 at the center averages to
	// exactly 10 everywhere: every destination pixel's clamped 3x3
	// neighborhood contains the center sample exactly once.
	src, err := NewPixmap(3, 3, 1)
	if err != nil {
		t.Fatalf("NewPixmap() error = %v", err)
	}
	src.Set(1, 1, 0, 90)

	dst, err := ApplyFilter(src, FilterBlur)
	if err != nil {
		t.Fatalf("ApplyFilter() error = %v", err)
	}
	for i, v := range dst.Data() {
		if v != 10 {
			t.Errorf("Data()[%d] = %d, want 10", i, v)
		}
	}
}

func TestApplyFilterAlphaPassthrough(t *testing.T) {
	src, err := NewPixmap(4, 4, 4)
	if err != nil {
		t.Fatalf("NewPixmap() error = %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, 0, uint8(x*60))
			src.Set(x, y, 3, uint8(200+x+y))
		}
	}

	dst, err := ApplyFilter(src, FilterEdge)
	if err != nil {
		t.Fatalf("ApplyFilter() error = %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got, want := dst.At(x, y, 3), src.At(x, y, 3); got != want {
				t.Errorf("alpha at (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestApplyFilterClampsRange(t *testing.T) {
	// Sharpen on a checkerboard drives sums outside [0, 255]; results
	// must clamp, not wrap.
	src, err := NewPixmap(4, 4, 1)
	if err != nil {
		t.Fatalf("NewPixmap() error = %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if (x+y)%2 == 0 {
				src.Set(x, y, 0, 255)
			}
		}
	}

	dst, err := ApplyFilter(src, FilterSharpen)
	if err != nil {
		t.Fatalf("ApplyFilter() error = %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := dst.At(x, y, 0)
			if got != 0 && got != 255 {
				t.Errorf("pixel (%d,%d) = %d, want 0 or 255 after clamping", x, y, got)
			}
		}
	}
}
