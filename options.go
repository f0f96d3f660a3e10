package tinyimg

// Option configures the numerical behavior of Compress.
// Use functional options to adjust the Jacobi eigen solver.
//
// Example:
//
//	// Default solver settings
//	out, err := tinyimg.Compress(src, 0.5)
//
//	// Tighter convergence for high-fidelity reconstruction
//	out, err := tinyimg.Compress(src, 0.5,
//	    tinyimg.WithTolerance(1e-12),
//	    tinyimg.WithMaxIterations(5000))
type Option func(*options)

// options holds optional solver configuration for Compress.
type options struct {
	tolerance     float64
	maxIterations int
}

// defaultOptions returns the default solver options.
func defaultOptions() options {
	return options{
		tolerance:     defaultTolerance,
		maxIterations: defaultMaxIterations,
	}
}

// Default Jacobi solver settings. The off-diagonal tolerance and the
// rotation cap bound the eigen solver's work; past the cap the solver
// returns approximate eigenpairs and compression proceeds with them.
const (
	defaultTolerance     = 1e-9
	defaultMaxIterations = 120
)

// WithTolerance sets the Jacobi convergence tolerance: the solver stops
// once every off-diagonal entry of the working matrix is below tol in
// magnitude. Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithMaxIterations caps the number of Jacobi rotations per channel.
// Non-positive values are ignored.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}
