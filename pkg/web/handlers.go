package web

import (
	"bytes"
	"image"
	"log"
	"net/http"
	"strconv"

	"github.com/foolin/goview"

	"mandelfield/pkg/field"
	"mandelfield/pkg/palette"
	"mandelfield/pkg/render"
)

func (s *Server) serveIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zoom := s.defaultZoom
		rl := s.defaultReal
		im := s.defaultImag

		if q := r.URL.Query().Get("zoom"); q != "" {
			if v, err := strconv.Atoi(q); err == nil {
				zoom = v
			}
		}
		if q := r.URL.Query().Get("real"); q != "" {
			if v, err := strconv.ParseFloat(q, 64); err == nil {
				rl = v
			}
		}
		if q := r.URL.Query().Get("imag"); q != "" {
			if v, err := strconv.ParseFloat(q, 64); err == nil {
				im = v
			}
		}

		err := goview.Render(w, http.StatusOK, "index.html", goview.M{
			"host":     s.host + ":" + s.port,
			"zoom":     zoom,
			"real":     rl,
			"imag":     im,
			"tileSize": TileWidth,
		})
		if err != nil {
			http.Error(w, "render index: "+err.Error(), 500)
		}
	}
}

// serveTile answers one tile request: solid fill for tiles outside the
// escape disc, cached bytes when the tile was rendered before, otherwise a
// fresh computation gated through the valve so shutdown can drain it.
func (s *Server) serveTile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tile, err := RequestToTile(r)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}

		// Tiles entirely outside |c| <= 2 never need computing.
		if tile.IsBackground() {
			writePNG(w, render.Solid(TileWidth, TileWidth, palette.BackgroundColor))
			return
		}

		redo := r.URL.Query().Get("redo") != ""
		if !redo {
			if data, err := s.cache.Get(tile); err == nil {
				writeBytes(w, data)
				return
			}
		}

		if err := s.valve.Open(); err != nil {
			http.Error(w, "server is shutting down", http.StatusServiceUnavailable)
			return
		}
		defer s.valve.Close()

		data, err := s.renderTile(tile)
		if err != nil {
			log.Println("[web] failed to render tile: ", tile, err)
			http.Error(w, err.Error(), 500)
			return
		}

		if err := s.cache.Put(tile, data); err != nil {
			// Serve the tile anyway; only the next request pays again.
			log.Println("[web] failed to cache tile: ", tile, err)
		}

		writeBytes(w, data)
	}
}

// renderTile computes the tile's field and paints it. The valve context
// cancels the computation between row blocks on shutdown.
func (s *Server) renderTile(tile *Tile) ([]byte, error) {
	v, err := field.ComputeContext(s.valve.Context(), tile.Params())
	if err != nil {
		return nil, err
	}

	img, err := s.renderer.Render(v)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := render.EncodePNG(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePNG(w http.ResponseWriter, img image.Image) {
	buf := &bytes.Buffer{}
	if err := render.EncodePNG(buf, img); err != nil {
		http.Error(w, "unable to encode image: "+err.Error(), 500)
		return
	}
	writeBytes(w, buf.Bytes())
}

func writeBytes(w http.ResponseWriter, b []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	if _, err := w.Write(b); err != nil {
		log.Println("[web] unable to write tile response: ", err)
	}
}
