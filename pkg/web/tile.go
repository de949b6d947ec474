package web

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"mandelfield/pkg/field"
)

const (
	// TotalUnits is the width of the plane covered by the tile grid: the
	// Mandelbrot set lives inside |c| <= 2, so the map spans [-2, 2] on
	// both axes.
	TotalUnits = 4.0

	// GlobalMin is the lower-left corner of the covered plane.
	GlobalMin = -2 - 2i

	// TileWidth is the width and height of a rendered tile in pixels.
	TileWidth = 256
)

// Iteration budget per zoom level. Deeper tiles sit closer to the boundary
// and need more iterations before banding washes out.
const (
	baseIter    = 128
	iterPerZoom = 64
	maxIterCap  = 4096
)

// Tile addresses one square of the slippy map. The grid is centered: at any
// zoom there are 2^(zoom+1) tiles per axis and tile (0, 0) has the origin at
// its lower-left corner, so coordinates run negative as well as positive.
type Tile struct {
	Zoom int `json:"zoom"`
	X    int `json:"x"`
	Y    int `json:"y"`
}

// RequestToTile parses the zoom/y/x URL parameters into a Tile.
func RequestToTile(r *http.Request) (*Tile, error) {
	zoom, err := strconv.Atoi(chi.URLParam(r, "zoom"))
	if err != nil {
		return nil, err
	}

	x, err := strconv.Atoi(chi.URLParam(r, "x"))
	if err != nil {
		return nil, err
	}

	y, err := strconv.Atoi(chi.URLParam(r, "y"))
	if err != nil {
		return nil, err
	}

	return &Tile{Zoom: zoom, X: x, Y: y}, nil
}

// tileCount is the number of tiles along each axis at this zoom level.
func (t *Tile) tileCount() float64 {
	return math.Pow(2, float64(t.Zoom+1))
}

// units is the span of the plane this tile covers on each axis.
func (t *Tile) units() float64 {
	return TotalUnits / t.tileCount()
}

// Min returns the lower-left corner of the tile in plane coordinates. The
// tile count is always even and tile 0,0 meets the origin, so the offset
// recenters the (possibly negative) tile index onto GlobalMin.
func (t *Tile) Min() complex128 {
	offset := t.tileCount() / 2
	stride := t.units()

	r := real(GlobalMin) + (float64(t.X)+offset)*stride
	i := imag(GlobalMin) + (float64(t.Y)+offset)*stride
	return complex(r, i)
}

// Max returns the upper-right corner of the tile in plane coordinates.
func (t *Tile) Max() complex128 {
	min := t.Min()
	stride := t.units()
	return complex(real(min)+stride, imag(min)+stride)
}

// PPU returns the tile resolution in pixels per plane unit.
func (t *Tile) PPU() float64 {
	return TileWidth / t.units()
}

// MaxIter returns the iteration budget for this tile's zoom level.
func (t *Tile) MaxIter() int {
	iter := baseIter + iterPerZoom*t.Zoom
	if iter > maxIterCap {
		return maxIterCap
	}
	if iter < baseIter {
		return baseIter
	}
	return iter
}

// IsBackground reports whether the tile lies entirely outside the |c| <= 2
// disc. Every sample in such a tile escapes on its first test, so the tile
// renders as a solid background square without computing a field.
func (t *Tile) IsBackground() bool {
	min, max := t.Min(), t.Max()

	// Distance from the origin to the nearest point of the tile rectangle.
	dx := math.Max(0, math.Max(real(min), -real(max)))
	dy := math.Max(0, math.Max(imag(min), -imag(max)))
	return dx*dx+dy*dy > 4
}

// Params returns the field computation for this tile: one sample per pixel
// with the zoom-scaled iteration budget.
func (t *Tile) Params() field.Params {
	return field.Params{
		Min:     t.Min(),
		Max:     t.Max(),
		Nx:      TileWidth,
		Ny:      TileWidth,
		MaxIter: t.MaxIter(),
		Smooth:  true,
	}
}

// Filename returns the cache file name for this tile.
func (t *Tile) Filename() string {
	return fmt.Sprintf("%d.%d.%d.png", t.Zoom, t.Y, t.X)
}

// Path returns the cache directory for this tile, relative to the cache root.
func (t *Tile) Path() string {
	return fmt.Sprintf("%d/%d", t.Zoom, t.Y)
}

func (t *Tile) String() string {
	return fmt.Sprint("zoom:", t.Zoom, " x:", t.X, " y:", t.Y, " ppu:", t.PPU(), " min:", t.Min(), " max:", t.Max())
}
