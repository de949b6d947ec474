package render

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Transform is the closed set of pointwise transforms applied to field
// values before color binning. Anything outside the set is rejected when
// parsed, never silently defaulted.
type Transform int

const (
	// None leaves escape counts untouched.
	None Transform = iota

	// Inverse maps v to 1/v, pulling detail out of the low counts near
	// the exterior.
	Inverse

	// Log maps v to ln v, evening out the dynamic range near the set
	// boundary where counts explode.
	Log
)

// ErrUnrecognizedTransform reports a transform name outside the closed set.
var ErrUnrecognizedTransform = errors.New("render: unrecognized transform")

// ParseTransform maps a transform name to its enumeration value. The empty
// name means None.
func ParseTransform(name string) (Transform, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return None, nil
	case "inverse":
		return Inverse, nil
	case "log":
		return Log, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnrecognizedTransform, name)
}

func (t Transform) String() string {
	switch t {
	case Inverse:
		return "inverse"
	case Log:
		return "log"
	default:
		return "none"
	}
}

// Apply transforms a single field value. Inverse and Log can produce
// infinities for zero counts; binning clamps those to the range ends.
func (t Transform) Apply(v float64) float64 {
	switch t {
	case Inverse:
		return 1 / v
	case Log:
		return math.Log(v)
	default:
		return v
	}
}
