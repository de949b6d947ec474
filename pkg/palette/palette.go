// Package palette builds the cyclic color ramps used to paint escape-count
// fields. Short anchor lists are expanded by perceptual interpolation and
// mirrored into an oscillating band sequence, with a dedicated final entry
// reserved for points inside the set.
package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// minRamp is the smallest expanded ramp: anchor lists shorter than this are
// interpolated up to exactly this many colors before folding.
const minRamp = 50

// Ramp expands anchors into n colors by piecewise blending in Lab space,
// which keeps the perceived brightness ramping evenly where plain RGB
// interpolation would turn muddy. Anchor colors that land exactly on a ramp
// position are passed through untouched.
func Ramp(anchors []color.Color, n int) []color.Color {
	out := make([]color.Color, 0, n)
	if len(anchors) == 0 || n < 1 {
		return out
	}

	cs := make([]colorful.Color, len(anchors))
	for i, a := range anchors {
		c, _ := colorful.MakeColor(a)
		cs[i] = c
	}

	if len(cs) == 1 || n == 1 {
		for i := 0; i < n; i++ {
			out = append(out, cs[0])
		}
		return out
	}

	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1) * float64(len(cs)-1)
		seg := int(t)
		if seg > len(cs)-2 {
			seg = len(cs) - 2
		}

		switch frac := t - float64(seg); frac {
		case 0:
			out = append(out, cs[seg])
		case 1:
			out = append(out, cs[seg+1])
		default:
			out = append(out, cs[seg].BlendLab(cs[seg+1], frac).Clamped())
		}
	}
	return out
}

// Cyclic builds the full escape palette from anchors: the anchors are ramped
// to at least minRamp entries, the ramp and its reverse are laid end to end
// folds times so escape bands oscillate instead of wrapping with a hard seam,
// and inSet is appended as the final entry reserved for the sentinel value.
// The result is 2*len(ramp)*folds + 1 colors. folds below one is treated
// as one.
func Cyclic(anchors []color.Color, folds int, inSet color.Color) []color.Color {
	if folds < 1 {
		folds = 1
	}

	ramp := anchors
	if len(ramp) < minRamp {
		ramp = Ramp(anchors, minRamp)
	}

	out := make([]color.Color, 0, 2*len(ramp)*folds+1)
	for f := 0; f < folds; f++ {
		out = append(out, ramp...)
		for i := len(ramp) - 1; i >= 0; i-- {
			out = append(out, ramp[i])
		}
	}
	return append(out, inSet)
}
