// Package field computes Mandelbrot escape-iteration fields: dense grids of
// escape counts for a rectangular window of the complex plane.
package field

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidRegion reports a sampling window whose x or y interval is
	// degenerate, inverted or not finite.
	ErrInvalidRegion = errors.New("field: invalid region")

	// ErrInvalidResolution reports a grid with fewer than one sample on
	// either axis.
	ErrInvalidResolution = errors.New("field: invalid resolution")

	// ErrInvalidIterationBudget reports an escape-time cutoff below one.
	ErrInvalidIterationBudget = errors.New("field: invalid iteration budget")
)

// Params describes a single field computation. Min and Max are the lower-left
// and upper-right corners of the sampled window, so the x interval is
// [real(Min), real(Max)] and the y interval [imag(Min), imag(Max)]. Nx and Ny
// set the number of samples per axis and MaxIter the escape-time cutoff.
// Smooth selects the fractional escape-count correction.
type Params struct {
	Min, Max complex128
	Nx, Ny   int
	MaxIter  int
	Smooth   bool
}

// Resolution returns a copy of p with Nx and Ny derived from a single sample
// budget: the longer side of the window gets res samples and the shorter side
// is scaled down by the aspect ratio, never below one sample.
func (p Params) Resolution(res int) Params {
	p.Nx, p.Ny = res, res

	w := real(p.Max) - real(p.Min)
	h := imag(p.Max) - imag(p.Min)
	if res < 1 || !(w > 0) || !(h > 0) {
		// Leave the square grid in place; validation reports the bad
		// interval or budget with a proper error.
		return p
	}

	if w >= h {
		p.Ny = scaled(res, h/w)
	} else {
		p.Nx = scaled(res, w/h)
	}
	return p
}

func scaled(res int, aspect float64) int {
	n := int(float64(res) * aspect)
	if n < 1 {
		n = 1
	}
	return n
}

func (p Params) validate() error {
	for _, b := range []float64{real(p.Min), real(p.Max), imag(p.Min), imag(p.Max)} {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("%w: bounds must be finite, got min %v max %v", ErrInvalidRegion, p.Min, p.Max)
		}
	}
	if !(real(p.Min) < real(p.Max)) {
		return fmt.Errorf("%w: x interval [%g, %g]", ErrInvalidRegion, real(p.Min), real(p.Max))
	}
	if !(imag(p.Min) < imag(p.Max)) {
		return fmt.Errorf("%w: y interval [%g, %g]", ErrInvalidRegion, imag(p.Min), imag(p.Max))
	}
	if p.Nx < 1 || p.Ny < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidResolution, p.Nx, p.Ny)
	}
	if p.MaxIter < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidIterationBudget, p.MaxIter)
	}
	return nil
}

// linspace fills n evenly spaced values over [lo, hi]. A single-sample axis
// degenerates to lo alone.
func linspace(lo, hi float64, n int) []float64 {
	v := make([]float64, n)
	if n == 1 {
		v[0] = lo
		return v
	}
	step := (hi - lo) / float64(n-1)
	for i := range v {
		v[i] = lo + float64(i)*step
	}
	return v
}
