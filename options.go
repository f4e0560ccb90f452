package triwarp

import (
	"fmt"
	"strings"
)

// Option configures Warp and NewWarper.
//
// Example:
//
//	// Tight output, single-threaded, box-filtered reduced level
//	out, err := triwarp.Warp(src, c, triwarp.Trilinear,
//	    triwarp.WithBounds(triwarp.BoundsTight),
//	    triwarp.WithWorkers(1),
//	    triwarp.WithKernel(triwarp.KernelBox))
type Option func(*options)

// options holds the optional warp configuration.
type options struct {
	workers int
	kernel  Kernel
	bounds  Bounds
}

// defaultOptions returns the default warp options.
func defaultOptions() options {
	return options{
		workers: 0, // GOMAXPROCS
		kernel:  KernelBiLinear,
		bounds:  BoundsCanvas,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Bounds selects the extent of the output buffer.
type Bounds uint8

const (
	// BoundsCanvas sizes the output like the source canvas; output pixel
	// (x, y) is canvas pixel (x, y). This is the default.
	BoundsCanvas Bounds = iota

	// BoundsTight sizes the output to the destination triangle's pixel
	// bounding box, Triangle.Bounds. Output pixel (x, y) is canvas pixel
	// (x+Min.X, y+Min.Y), and the triangle may extend past the canvas.
	BoundsTight
)

// String returns the lower-case name of the bounds mode.
func (b Bounds) String() string {
	switch b {
	case BoundsCanvas:
		return "canvas"
	case BoundsTight:
		return "tight"
	default:
		return "unknown"
	}
}

// WithWorkers sets the number of goroutines used by the raster loop.
// Zero or negative means GOMAXPROCS; 1 renders on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithKernel sets the filter used to build the half-resolution level.
func WithKernel(k Kernel) Option {
	return func(o *options) {
		o.kernel = k
	}
}

// WithBounds sets the extent of the output buffer.
func WithBounds(b Bounds) Option {
	return func(o *options) {
		o.bounds = b
	}
}

// ParseBounds parses "canvas" or "tight", ignoring case.
func ParseBounds(s string) (Bounds, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "canvas":
		return BoundsCanvas, nil
	case "tight":
		return BoundsTight, nil
	default:
		return 0, fmt.Errorf("triwarp: unknown bounds %q", s)
	}
}
