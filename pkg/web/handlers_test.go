package web

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/valve"

	"mandelfield/pkg/render"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	return &Server{
		valve:    valve.New(),
		cache:    cache,
		renderer: render.New(),
	}
}

func tileRouter(s *Server) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/tile/{zoom}/{y}/{x}/", s.serveTile())
	return r
}

func getTile(t *testing.T, r http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", url, nil))
	return w
}

func TestServeTileRendersPNG(t *testing.T) {
	s := testServer(t)
	r := tileRouter(s)

	w := getTile(t, r, "/tile/0/0/-1/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != TileWidth || b.Dy() != TileWidth {
		t.Errorf("tile is %dx%d, want %dx%d", b.Dx(), b.Dy(), TileWidth, TileWidth)
	}
}

func TestServeTileCachesResult(t *testing.T) {
	s := testServer(t)
	r := tileRouter(s)

	first := getTile(t, r, "/tile/0/0/0/")
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", first.Code)
	}

	tile := &Tile{Zoom: 0, X: 0, Y: 0}
	cached, err := s.cache.Get(tile)
	if err != nil {
		t.Fatalf("tile was not cached: %v", err)
	}
	if !bytes.Equal(cached, first.Body.Bytes()) {
		t.Error("cached bytes differ from the served response")
	}

	// The second request must come straight from the cache.
	second := getTile(t, r, "/tile/0/0/0/")
	if !bytes.Equal(second.Body.Bytes(), first.Body.Bytes()) {
		t.Error("second response differs from the first")
	}
}

func TestServeTileBackgroundSkipsCache(t *testing.T) {
	s := testServer(t)
	r := tileRouter(s)

	// A tile far outside the escape disc renders solid and is never stored.
	w := getTile(t, r, "/tile/3/7/7/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if _, err := s.cache.Get(&Tile{Zoom: 3, X: 7, Y: 7}); err == nil {
		t.Error("background tile was cached")
	}
}

func TestServeTileRejectsBadParams(t *testing.T) {
	s := testServer(t)
	r := tileRouter(s)

	if w := getTile(t, r, "/tile/abc/0/0/"); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
