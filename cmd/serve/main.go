// Command serve runs the tile web server. Configuration comes from the
// environment (or a .env file); see pkg/web for the variable list.
package main

import (
	"log"

	"mandelfield/pkg/web"
)

func main() {
	s := web.Server{}
	if err := s.Run(); err != nil {
		log.Fatal(err)
	}
}
