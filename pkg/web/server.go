// Package web serves the Mandelbrot field as a slippy-map tile server: a
// Leaflet index page plus an endpoint that computes, renders and caches one
// PNG tile per request.
package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/valve"
	"github.com/joho/godotenv"

	"mandelfield/pkg/render"
)

// Server is the tile web server. Configuration comes from the environment;
// see checkEnv for the required variables.
type Server struct {
	host        string
	port        string
	defaultZoom int
	defaultReal float64
	defaultImag float64

	valve    *valve.Valve
	cache    *Cache
	renderer *render.Renderer
}

// Run reads the configuration from the environment, configures routes and
// listens for requests until SIGINT or SIGTERM, then drains in-flight tile
// computations through the valve before returning.
func (s *Server) Run() error {
	if err := s.config(); err != nil {
		return err
	}

	r := s.routes()

	srv := &http.Server{Addr: ":" + s.port, Handler: r}
	errc := make(chan error, 1)
	go func() {
		log.Println("[web] listening and serving on :" + s.port)
		errc <- srv.ListenAndServe()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case <-sigChan:
		log.Println("[web] received termination request")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("[web] server shutdown: ", err)
	}

	log.Print("[web] draining in-flight tiles ...")
	s.valve.Shutdown(10 * time.Second)
	log.Println(" done")
	return nil
}

func (s *Server) config() error {
	if err := s.checkEnv(); err != nil {
		return err
	}

	s.host = os.Getenv("MANDEL_HOSTNAME")
	s.port = os.Getenv("MANDEL_PORT")

	var err error
	s.defaultZoom, err = strconv.Atoi(os.Getenv("MANDEL_DEFAULT_ZOOM"))
	if err != nil {
		return errors.New("MANDEL_DEFAULT_ZOOM is not an integer")
	}
	s.defaultReal, err = strconv.ParseFloat(os.Getenv("MANDEL_DEFAULT_REAL"), 64)
	if err != nil {
		return errors.New("MANDEL_DEFAULT_REAL is not a number")
	}
	s.defaultImag, err = strconv.ParseFloat(os.Getenv("MANDEL_DEFAULT_IMAG"), 64)
	if err != nil {
		return errors.New("MANDEL_DEFAULT_IMAG is not a number")
	}

	s.cache, err = NewCache(os.Getenv("MANDEL_TILE_PATH"))
	if err != nil {
		return err
	}

	s.valve = valve.New()
	s.renderer = render.New()

	return nil
}

func (s *Server) checkEnv() error {
	godotenv.Load()

	for _, name := range []string{
		"MANDEL_HOSTNAME",
		"MANDEL_PORT",
		"MANDEL_TILE_PATH",
		"MANDEL_DEFAULT_ZOOM",
		"MANDEL_DEFAULT_REAL",
		"MANDEL_DEFAULT_IMAG",
	} {
		if os.Getenv(name) == "" {
			return errors.New(name + " is not set")
		}
	}

	return nil
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Get("/", s.serveIndex())
	r.Get("/tile/{zoom}/{y}/{x}/", s.serveTile())

	return r
}
