package web

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
)

func TestTileExtents(t *testing.T) {
	type tc struct {
		tile     Tile
		min, max complex128
	}

	tests := map[string]tc{
		"origin tile zoom 0": {
			tile: Tile{Zoom: 0, X: 0, Y: 0},
			min:  0 + 0i, max: 2 + 2i,
		},
		"lower-left tile zoom 0": {
			tile: Tile{Zoom: 0, X: -1, Y: -1},
			min:  -2 - 2i, max: 0 + 0i,
		},
		"origin tile zoom 2": {
			tile: Tile{Zoom: 2, X: 0, Y: 0},
			min:  0 + 0i, max: 0.5 + 0.5i,
		},
		"negative tile zoom 2": {
			tile: Tile{Zoom: 2, X: -4, Y: 1},
			min:  -2 + 0.5i, max: -1.5 + 1i,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.tile.Min(); !closeEnough(got, tt.min) {
				t.Errorf("Min() = %v, want %v", got, tt.min)
			}
			if got := tt.tile.Max(); !closeEnough(got, tt.max) {
				t.Errorf("Max() = %v, want %v", got, tt.max)
			}
		})
	}
}

func closeEnough(a, b complex128) bool {
	return math.Abs(real(a)-real(b)) < 1e-12 && math.Abs(imag(a)-imag(b)) < 1e-12
}

func TestTileGridCoversPlane(t *testing.T) {
	// At every zoom the grid spans exactly [-2, 2] on both axes.
	for zoom := 0; zoom <= 6; zoom++ {
		count := int(math.Pow(2, float64(zoom+1)))
		first := Tile{Zoom: zoom, X: -count / 2, Y: -count / 2}
		last := Tile{Zoom: zoom, X: count/2 - 1, Y: count/2 - 1}

		if got := first.Min(); !closeEnough(got, GlobalMin) {
			t.Errorf("zoom %d: first tile Min() = %v, want %v", zoom, got, GlobalMin)
		}
		if got := last.Max(); !closeEnough(got, 2+2i) {
			t.Errorf("zoom %d: last tile Max() = %v, want 2+2i", zoom, got)
		}
	}
}

func TestTileIsBackground(t *testing.T) {
	type tc struct {
		tile Tile
		want bool
	}

	tests := map[string]tc{
		"contains the set":   {tile: Tile{Zoom: 1, X: -1, Y: 0}, want: false},
		"touches the disc":   {tile: Tile{Zoom: 1, X: 1, Y: 1}, want: false},
		"far outside corner": {tile: Tile{Zoom: 3, X: 7, Y: 7}, want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.tile.IsBackground(); got != tt.want {
				t.Errorf("IsBackground() = %v, want %v (tile %v)", got, tt.want, &tt.tile)
			}
		})
	}
}

func TestTileMaxIter(t *testing.T) {
	if got := (&Tile{Zoom: 0}).MaxIter(); got != baseIter {
		t.Errorf("zoom 0 MaxIter() = %d, want %d", got, baseIter)
	}
	if got := (&Tile{Zoom: 2}).MaxIter(); got != baseIter+2*iterPerZoom {
		t.Errorf("zoom 2 MaxIter() = %d, want %d", got, baseIter+2*iterPerZoom)
	}
	if got := (&Tile{Zoom: 100}).MaxIter(); got != maxIterCap {
		t.Errorf("zoom 100 MaxIter() = %d, want cap %d", got, maxIterCap)
	}
}

func TestRequestToTile(t *testing.T) {
	var tile *Tile
	var parseErr error

	r := chi.NewRouter()
	r.Get("/tile/{zoom}/{y}/{x}/", func(w http.ResponseWriter, req *http.Request) {
		tile, parseErr = RequestToTile(req)
	})

	req := httptest.NewRequest("GET", "/tile/3/-2/5/", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	if parseErr != nil {
		t.Fatal(parseErr)
	}
	want := Tile{Zoom: 3, X: 5, Y: -2}
	if *tile != want {
		t.Errorf("RequestToTile() = %+v, want %+v", *tile, want)
	}

	req = httptest.NewRequest("GET", "/tile/abc/0/0/", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	if parseErr == nil {
		t.Error("RequestToTile() accepted a non-numeric zoom")
	}
}

func TestTileCachePaths(t *testing.T) {
	tile := &Tile{Zoom: 4, X: -3, Y: 7}
	if got, want := tile.Filename(), "4.7.-3.png"; got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
	if got, want := tile.Path(), "4/7"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
