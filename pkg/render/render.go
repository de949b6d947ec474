// Package render turns escape-iteration views into palette-indexed images.
// A Renderer carries default drawing options; each render call may override
// them for its own duration only, so a shared Renderer never leaks one
// caller's overrides into the next call.
package render

import (
	"errors"
	"image"
	"image/color"
	"math"
	"sync"

	"mandelfield/pkg/field"
	"mandelfield/pkg/palette"
)

// ErrEmptyPalette reports a render attempt without at least one band color
// and the in-set entry.
var ErrEmptyPalette = errors.New("render: palette needs at least two colors")

// Options are the drawing defaults a Renderer holds between calls. The final
// palette entry is reserved for in-set points; the rest are the escape bands.
type Options struct {
	Palette   []color.Color
	Transform Transform
	Axes      bool
}

// Option overrides a single drawing option for one render call.
type Option func(*Options)

// WithPalette swaps the color sequence.
func WithPalette(p []color.Color) Option {
	return func(o *Options) { o.Palette = p }
}

// WithTransform selects the pointwise transform applied before binning.
func WithTransform(t Transform) Option {
	return func(o *Options) { o.Transform = t }
}

// WithAxes toggles the tick frame. Axes are suppressed by default.
func WithAxes(on bool) Option {
	return func(o *Options) { o.Axes = on }
}

// Renderer renders views with a persistent set of default options.
type Renderer struct {
	mu   sync.Mutex
	opts Options
}

// New returns a Renderer with the stock palette, no transform and no axes,
// then applies opts as its new defaults.
func New(opts ...Option) *Renderer {
	r := &Renderer{opts: Options{Palette: palette.Default, Transform: None}}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

// Render paints v as an image, one pixel per sample, with the y axis
// increasing upward. Overrides apply to this call alone: the renderer's
// defaults are snapshotted first and restored on every exit path.
func (r *Renderer) Render(v *field.View, overrides ...Option) (image.Image, error) {
	r.mu.Lock()
	saved := r.opts
	defer func() {
		r.opts = saved
		r.mu.Unlock()
	}()

	for _, o := range overrides {
		o(&r.opts)
	}

	if len(r.opts.Palette) < 2 {
		return nil, ErrEmptyPalette
	}
	if r.opts.Transform < None || r.opts.Transform > Log {
		return nil, ErrUnrecognizedTransform
	}

	return r.paint(v, r.opts), nil
}

// paint maps every cell to a palette index. Sentinel cells take the final
// entry, decided on the raw value before any transform. Escaped cells are
// transformed and linearly binned over the finite range the transformed
// values span; non-finite results (1/0, ln 0) clamp to the nearest bin end.
func (r *Renderer) paint(v *field.View, o Options) image.Image {
	nx, ny := v.Nx(), v.Ny()
	bands := o.Palette[:len(o.Palette)-1]
	inSet := o.Palette[len(o.Palette)-1]

	lo, hi := escapedRange(v, o.Transform)

	img := image.NewNRGBA(image.Rect(0, 0, nx, ny))
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			// Row i is column x[i]; flip j so y grows upward in the image.
			px, py := i, ny-1-j

			if v.InSet(i, j) {
				img.Set(px, py, inSet)
				continue
			}
			img.Set(px, py, bands[bin(o.Transform.Apply(v.At(i, j)), lo, hi, len(bands))])
		}
	}

	if o.Axes {
		drawAxes(img, inSet)
	}
	return img
}

// escapedRange finds the span of finite transformed values over the escaped
// cells. A view with no escaped cells, or none with a finite transform,
// reports a degenerate range and every cell bins to zero.
func escapedRange(v *field.View, t Transform) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := 0; i < v.Nx(); i++ {
		for j := 0; j < v.Ny(); j++ {
			if v.InSet(i, j) {
				continue
			}
			tv := t.Apply(v.At(i, j))
			if math.IsInf(tv, 0) || math.IsNaN(tv) {
				continue
			}
			lo = math.Min(lo, tv)
			hi = math.Max(hi, tv)
		}
	}
	return lo, hi
}

// bin maps a transformed value to a band index in [0, n). Values outside
// [lo, hi] (including infinities from the transform) clamp to the ends.
func bin(tv, lo, hi float64, n int) int {
	if !(hi > lo) {
		return 0
	}
	if !(tv > lo) {
		return 0
	}
	if !(tv < hi) {
		return n - 1
	}
	return int((tv - lo) / (hi - lo) * float64(n-1))
}

// drawAxes frames the image with a one-pixel border and quarter ticks. No
// text labels; the frame only marks the sample extents.
func drawAxes(img *image.NRGBA, c color.Color) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	for x := 0; x < w; x++ {
		img.Set(x, 0, c)
		img.Set(x, h-1, c)
	}
	for y := 0; y < h; y++ {
		img.Set(0, y, c)
		img.Set(w-1, y, c)
	}

	const tick = 4
	for q := 1; q < 4; q++ {
		x := q * (w - 1) / 4
		y := q * (h - 1) / 4
		for d := 0; d < tick && d < h; d++ {
			img.Set(x, h-1-d, c)
		}
		for d := 0; d < tick && d < w; d++ {
			img.Set(d, y, c)
		}
	}
}

// Solid returns a uniform w by h image. Tiles that lie entirely outside the
// escape disc render this way without computing a field.
func Solid(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}
