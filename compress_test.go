package tinyimg

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestCompressInvalidRatio(t *testing.T) {
	src, err := NewPixmap(4, 4, 1)
	if err != nil {
		t.Fatalf("NewPixmap() error = %v", err)
	}

	tests := []struct {
		name  string
		ratio float64
	}{
		{"zero", 0},
		{"negative", -0.5},
		{"above one", 1.01},
		{"nan", math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compress(src, tt.ratio); !errors.Is(err, ErrInvalidRatio) {
				t.Errorf("Compress(ratio=%v) error = %v, want %v", tt.ratio, err, ErrInvalidRatio)
			}
		})
	}

	if _, err := Compress(nil, 0.5); !errors.Is(err, ErrNilPixmap) {
		t.Errorf("Compress(nil) error = %v, want %v", err, ErrNilPixmap)
	}
}

func TestCompressRank1Of2x2(t *testing.T) {
	// [[10, 20], [30, 40]] at ratio 0.5 keeps k=1 singular triple. The
	// best rank-1 approximation is [[12.74, 18.07], [28.79, 40.85]]
	// (hand-computed from the dominant eigenpair of A^T A), which
	// truncates to the bytes below.
	src, err := FromBytes([]uint8{10, 20, 30, 40}, 2, 2, 1)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}

	dst, err := Compress(src, 0.5)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	want := []uint8{12, 18, 28, 40}
	for i, v := range dst.Data() {
		if v != want[i] {
			t.Errorf("Data()[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestCompressFullRatioNearLossless(t *testing.T) {
	src := gradientPixmap(t, 6, 6)

	dst, err := Compress(src, 1.0,
		WithTolerance(1e-12), WithMaxIterations(10000))
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	// Full-spectrum reconstruction is exact up to solver tolerance;
	// truncation to byte may still round one unit down.
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			got := int(dst.At(x, y, 0))
			want := int(src.At(x, y, 0))
			if diff := got - want; diff < -1 || diff > 1 {
				t.Errorf("pixel (%d,%d) = %d, want %d +/- 1", x, y, got, want)
			}
		}
	}
}

// sse returns the summed squared pixel error between two same-shape pixmaps.
func sse(a, b *Pixmap) float64 {
	var sum float64
	ad, bd := a.Data(), b.Data()
	for i := range ad {
		d := float64(ad[i]) - float64(bd[i])
		sum += d * d
	}
	return sum
}

func TestCompressErrorGrowsAsRatioShrinks(t *testing.T) {
	// Full-rank textured image: low ratios must discard real spectrum.
	src, err := NewPixmap(8, 8, 1)
	if err != nil {
		t.Fatalf("NewPixmap() error = %v", err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, 0, uint8((x*31+y*57+x*y*13)%251))
		}
	}

	opts := []Option{WithTolerance(1e-12), WithMaxIterations(10000)}

	full, err := Compress(src, 1.0, opts...)
	if err != nil {
		t.Fatalf("Compress(1.0) error = %v", err)
	}
	half, err := Compress(src, 0.5, opts...)
	if err != nil {
		t.Fatalf("Compress(0.5) error = %v", err)
	}
	eighth, err := Compress(src, 0.125, opts...)
	if err != nil {
		t.Fatalf("Compress(0.125) error = %v", err)
	}

	errFull, errHalf, errEighth := sse(src, full), sse(src, half), sse(src, eighth)
	if errFull > errHalf {
		t.Errorf("sse(ratio=1.0) = %v > sse(ratio=0.5) = %v", errFull, errHalf)
	}
	if errHalf > errEighth {
		t.Errorf("sse(ratio=0.5) = %v > sse(ratio=0.125) = %v", errHalf, errEighth)
	}
	if errEighth <= errFull {
		t.Errorf("sse(ratio=0.125) = %v, want strictly above sse(ratio=1.0) = %v",
			errEighth, errFull)
	}
}

func TestCompressDegenerateChannel(t *testing.T) {
	// An all-zero channel has an empty singular spectrum; the channel is
	// copied unchanged instead of reconstructed.
	src, err := NewPixmap(5, 5, 1)
	if err != nil {
		t.Fatalf("NewPixmap() error = %v", err)
	}

	dst, err := Compress(src, 0.8)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	for i, v := range dst.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %d, want 0 (degenerate channel copied)", i, v)
		}
	}
}

func TestCompressPreservesShape(t *testing.T) {
	for _, channels := range []int{1, 3, 4} {
		p, err := NewPixmap(6, 4, channels)
		if err != nil {
			t.Fatalf("NewPixmap() error = %v", err)
		}
		p.Fill(128)

		dst, err := Compress(p, 0.5)
		if err != nil {
			t.Fatalf("Compress() error = %v", err)
		}
		if w, h := dst.Bounds(); w != 6 || h != 4 || dst.Channels() != channels {
			t.Errorf("output shape = (%d, %d, %d), want (6, 4, %d)",
				w, h, dst.Channels(), channels)
		}
	}
}

func TestCompressDoesNotMutateInput(t *testing.T) {
	src := gradientPixmap(t, 4, 4)
	before := make([]uint8, len(src.Data()))
	copy(before, src.Data())

	if _, err := Compress(src, 0.25); err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	for i, v := range src.Data() {
		if v != before[i] {
			t.Fatalf("input mutated at %d: %d != %d", i, v, before[i])
		}
	}
}

func TestCompressDebugLogsPerChannel(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)

	src, err := NewPixmap(4, 4, 3)
	if err != nil {
		t.Fatalf("NewPixmap() error = %v", err)
	}
	for i := range src.Data() {
		src.Data()[i] = uint8(i * 7)
	}

	if _, err := Compress(src, 0.5); err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	out := buf.String()
	for c := 0; c < 3; c++ {
		if want := fmt.Sprintf("channel=%d", c); !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "residual="); got != 3 {
		t.Errorf("residual records = %d, want one per channel (3):\n%s", got, out)
	}
}
