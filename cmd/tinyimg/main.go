// Command tinyimg applies geometric transforms, convolution filters and
// SVD compression to raster images.
//
// Supported input formats: PNG, JPEG, BMP, TIFF. Output is always PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	tinyimg "github.com/yamirghofran/TinyIMG"
)

func main() {
	var (
		input   = flag.String("input", "", "input image (png, jpeg, bmp, tiff)")
		output  = flag.String("output", "out.png", "output PNG file")
		ops     = flag.String("ops", "", "comma-separated operations: rotate, scale, flip, shear, compress, blur, sharpen, edge, emboss")
		angle   = flag.Float64("angle", 90, "rotation angle in degrees")
		sx      = flag.Float64("sx", 1, "horizontal scale factor")
		sy      = flag.Float64("sy", 1, "vertical scale factor")
		kx      = flag.Float64("kx", 0, "horizontal shear factor")
		ky      = flag.Float64("ky", 0, "vertical shear factor")
		horiz   = flag.Bool("horizontal", true, "flip across the vertical axis")
		vert    = flag.Bool("vertical", false, "flip across the horizontal axis")
		ratio   = flag.Float64("ratio", 0.5, "compression ratio in (0, 1]")
		tol     = flag.Float64("tol", 0, "Jacobi convergence tolerance (0 = default)")
		iters   = flag.Int("iters", 0, "Jacobi rotation cap (0 = default)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *input == "" || *ops == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		tinyimg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	img, err := tinyimg.LoadImage(*input)
	if err != nil {
		log.Fatalf("load %s: %v", *input, err)
	}

	var opts []tinyimg.Option
	if *tol > 0 {
		opts = append(opts, tinyimg.WithTolerance(*tol))
	}
	if *iters > 0 {
		opts = append(opts, tinyimg.WithMaxIterations(*iters))
	}

	for _, op := range strings.Split(*ops, ",") {
		switch op = strings.TrimSpace(op); op {
		case "rotate":
			img, err = tinyimg.Transform(img, tinyimg.Rotate(*angle))
		case "scale":
			img, err = tinyimg.Transform(img, tinyimg.Scale(*sx, *sy))
		case "flip":
			img, err = tinyimg.Transform(img, tinyimg.Flip(*horiz, *vert))
		case "shear":
			img, err = tinyimg.Transform(img, tinyimg.Shear(*kx, *ky))
		case "compress":
			img, err = tinyimg.Compress(img, *ratio, opts...)
		case "blur", "sharpen", "edge", "emboss":
			var f tinyimg.Filter
			f, err = tinyimg.ParseFilter(op)
			if err == nil {
				img, err = tinyimg.ApplyFilter(img, f)
			}
		default:
			log.Fatalf("unknown operation %q", op)
		}
		if err != nil {
			log.Fatalf("%s: %v", op, err)
		}
	}

	if err := img.SavePNG(*output); err != nil {
		log.Fatalf("save %s: %v", *output, err)
	}

	w, h := img.Bounds()
	log.Printf("wrote %s (%dx%d, %d channels)", *output, w, h, img.Channels())
}
