// Command server runs the trip planning HTTP API.
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables;
// see config.example.yaml for the full reference.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/seongjinkim/tripday-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
