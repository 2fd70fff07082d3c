// Command server runs the EDGE portfolio HTTP API.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"

	"github.com/edgeskills/edge-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("run: %v", err)
	}
}
