// Package app wires configuration, storage, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/seongjinkim/tripday-backend/internal/adapter/postgres"
	pgbudget "github.com/seongjinkim/tripday-backend/internal/adapter/postgres/budget"
	pgpacking "github.com/seongjinkim/tripday-backend/internal/adapter/postgres/packing"
	pgplace "github.com/seongjinkim/tripday-backend/internal/adapter/postgres/place"
	pgplan "github.com/seongjinkim/tripday-backend/internal/adapter/postgres/plan"
	pgreview "github.com/seongjinkim/tripday-backend/internal/adapter/postgres/review"
	pgschedule "github.com/seongjinkim/tripday-backend/internal/adapter/postgres/schedule"
	"github.com/seongjinkim/tripday-backend/internal/adapter/provider/openmeteo"
	"github.com/seongjinkim/tripday-backend/internal/config"
	"github.com/seongjinkim/tripday-backend/internal/service/budget"
	"github.com/seongjinkim/tripday-backend/internal/service/packing"
	"github.com/seongjinkim/tripday-backend/internal/service/place"
	"github.com/seongjinkim/tripday-backend/internal/service/plan"
	"github.com/seongjinkim/tripday-backend/internal/service/review"
	"github.com/seongjinkim/tripday-backend/internal/service/schedule"
	"github.com/seongjinkim/tripday-backend/internal/service/share"
	"github.com/seongjinkim/tripday-backend/internal/transport/middleware"
	"github.com/seongjinkim/tripday-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires services and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := Migrate(cfg.Database.DSN, defaultMigrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	planRepo := pgplan.New(pool)
	placeRepo := pgplace.New(pool)
	scheduleRepo := pgschedule.New(pool)
	budgetRepo := pgbudget.New(pool)
	packingRepo := pgpacking.New(pool)
	reviewRepo := pgreview.New(pool)
	txManager := postgres.NewTxManager(pool)

	weather := openmeteo.NewProvider(cfg.Weather, logger)

	planSvc := plan.NewService(logger, planRepo, txManager, weather)
	placeSvc := place.NewService(logger, placeRepo, planRepo)
	scheduleSvc := schedule.NewService(logger, scheduleRepo, placeRepo, planRepo)
	budgetSvc := budget.NewService(logger, budgetRepo, planRepo)
	packingSvc := packing.NewService(logger, packingRepo, planRepo)
	reviewSvc := review.NewService(logger, reviewRepo, planRepo)
	shareSvc := share.NewService(logger, planRepo,
		cfg.Share.TokenSecret, cfg.Share.TokenIssuer, cfg.Share.TokenTTL)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Plans:    rest.NewPlanHandler(logger, planSvc, shareSvc),
		Places:   rest.NewPlaceHandler(logger, placeSvc),
		Schedule: rest.NewScheduleHandler(logger, scheduleSvc),
		Budget:   rest.NewBudgetHandler(logger, budgetSvc),
		Packing:  rest.NewPackingHandler(logger, packingSvc),
		Reviews:  rest.NewReviewHandler(logger, reviewSvc),
	})

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Identity,
		middleware.Logger(logger),
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.Server.RateLimitPerMinute > 0 {
		rateLimiter = middleware.NewRateLimiter(5 * time.Minute)
		defer rateLimiter.Stop()
		mws = append(mws, rateLimiter.Limit(cfg.Server.RateLimitPerMinute))
	}

	handler := middleware.Chain(mws...)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
