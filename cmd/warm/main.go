// Command warm walks the tile grid zoom by zoom and requests every tile from
// a running serve instance, so the disk cache is populated before visitors
// arrive. Tiles entirely outside the escape disc are skipped; the server
// would answer them with a solid fill it never caches anyway.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/joho/godotenv"
	"github.com/valyala/fasthttp"

	"mandelfield/pkg/web"
)

func main() {
	godotenv.Load()

	minZoom := flag.Int("min-zoom", 0, "zoom level to start requesting tiles at")
	maxZoom := flag.Int("max-zoom", 4, "deepest zoom level to request")
	host := flag.String("host", defaultHost(), "base URL of the tile server")
	flag.Parse()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	spin := spinner.New(spinner.CharSets[43], 100*time.Millisecond)
	spin.Start()
	defer spin.Stop()

	client := &fasthttp.Client{}
	requested, failed, skipped := 0, 0, 0

	for zoom := *minZoom; zoom <= *maxZoom; zoom++ {
		count := int(math.Pow(2, float64(zoom+1)))

		for x := -count / 2; x < count/2; x++ {
			for y := -count / 2; y < count/2; y++ {
				select {
				case <-sigChan:
					log.Println("[warm] received termination request")
					return
				default:
				}

				tile := &web.Tile{Zoom: zoom, X: x, Y: y}
				if tile.IsBackground() {
					skipped++
					continue
				}

				url := fmt.Sprintf("%s/tile/%d/%d/%d/", *host, tile.Zoom, tile.Y, tile.X)
				status, _, err := client.GetTimeout(nil, url, 5*time.Minute)
				if err != nil || status != fasthttp.StatusOK {
					log.Println("[warm] failed: ", url, status, err)
					failed++
					continue
				}
				requested++
			}
		}

		log.Println("[warm] zoom", zoom, "done. requested:", requested, "failed:", failed, "skipped:", skipped)
	}
}

func defaultHost() string {
	if port := os.Getenv("MANDEL_PORT"); port != "" {
		return "http://127.0.0.1:" + port
	}
	return "http://127.0.0.1:8080"
}
