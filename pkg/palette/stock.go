package palette

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// InSetColor paints points that never escaped. Black keeps the interior
// reading as a silhouette against any ramp.
var InSetColor color.Color = color.Black

// BackgroundColor is the solid fill for tiles that lie entirely outside the
// |c| <= 2 disc and never need computing. It matches the dark end of the
// default ramp so those tiles blend into their neighbors.
var BackgroundColor color.Color = color.RGBA{0x00, 0x07, 0x64, 0xff}

var (
	// Default is the classic deep-blue to gold ramp.
	Default = Cyclic(mustAnchors("#000764", "#206bcb", "#edffff", "#ffaa00", "#310230"), 2, InSetColor)

	// Fire ramps through embers to white heat.
	Fire = Cyclic(mustAnchors("#1f0c00", "#7a1e00", "#e85d04", "#ffba08", "#fff3d6"), 2, InSetColor)

	// Ice is the cold counterpart of Fire.
	Ice = Cyclic(mustAnchors("#03045e", "#0077b6", "#00b4d8", "#90e0ef", "#f0fbff"), 2, InSetColor)
)

var stock = map[string][]color.Color{
	"default": Default,
	"fire":    Fire,
	"ice":     Ice,
}

// Named returns a stock palette by name.
func Named(name string) ([]color.Color, error) {
	p, ok := stock[name]
	if !ok {
		return nil, fmt.Errorf("palette: unknown palette %q (have %v)", name, Names())
	}
	return p, nil
}

// Names lists the stock palette names in stable order.
func Names() []string {
	names := make([]string, 0, len(stock))
	for name := range stock {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustAnchors(hexes ...string) []color.Color {
	anchors := make([]color.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("palette: bad stock anchor %q: %v", h, err))
		}
		anchors[i] = c
	}
	return anchors
}
