// Command cleanup clears cached weather digests from plans whose trip has
// already ended. A forecast for a finished trip is dead weight; clearing it
// keeps plan payloads small. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/seongjinkim/tripday-backend/internal/adapter/postgres"
	"github.com/seongjinkim/tripday-backend/internal/app"
	"github.com/seongjinkim/tripday-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	tag, err := pool.Exec(ctx, `
		UPDATE plans
		SET weather_max_temp = NULL,
		    weather_min_temp = NULL,
		    weather_description = NULL
		WHERE end_date < current_date
		  AND weather_description IS NOT NULL`)
	if err != nil {
		logger.Error("clear stale weather digests", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleared stale weather digests", slog.Int64("plans", tag.RowsAffected()))
}
