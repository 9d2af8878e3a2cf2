// Package app assembles the service: configuration, logging, storage,
// domain services, HTTP transport and background jobs.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/questlinehq/questline-backend/internal/adapter/objectstore"
	"github.com/questlinehq/questline-backend/internal/adapter/postgres"
	"github.com/questlinehq/questline-backend/internal/adapter/postgres/achievement"
	activityrepo "github.com/questlinehq/questline-backend/internal/adapter/postgres/activity"
	"github.com/questlinehq/questline-backend/internal/adapter/postgres/participation"
	questrepo "github.com/questlinehq/questline-backend/internal/adapter/postgres/quest"
	userrepo "github.com/questlinehq/questline-backend/internal/adapter/postgres/user"
	"github.com/questlinehq/questline-backend/internal/adapter/treasury"
	"github.com/questlinehq/questline-backend/internal/auth"
	"github.com/questlinehq/questline-backend/internal/config"
	activitysvc "github.com/questlinehq/questline-backend/internal/service/activity"
	questsvc "github.com/questlinehq/questline-backend/internal/service/quest"
	"github.com/questlinehq/questline-backend/internal/transport/middleware"
	"github.com/questlinehq/questline-backend/internal/transport/rest"
	"github.com/questlinehq/questline-backend/internal/worker"
)

// Run is the application entry point. It wires every layer together and
// serves HTTP until the context is cancelled or the server fails; on
// cancellation it drains in-flight requests within the shutdown timeout.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting questline backend",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		logger.Info("database migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	quests := questrepo.New(pool)
	participations := participation.New(pool)
	achievements := achievement.New(pool)
	activities := activityrepo.New(pool)
	users := userrepo.New(pool)
	txManager := postgres.NewTxManager(pool, cfg.Database.TxTimeout)

	treasuryClient := treasury.NewClient(
		cfg.Reward.BaseURL,
		cfg.Reward.ServiceToken,
		cfg.Reward.DispatchTimeout,
		logger,
	)

	questService := questsvc.NewService(
		logger,
		quests,
		participations,
		achievements,
		activities,
		users,
		treasuryClient,
		txManager,
		cfg.Reward.DispatchTimeout,
	)
	activityService := activitysvc.NewService(logger, activities)

	verifier := auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	deps := rest.RouterDeps{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Quests:   rest.NewQuestHandler(questService, logger),
		Activity: rest.NewActivityHandler(activityService, logger),
		APIChain: middleware.Chain(
			middleware.RequestID(),
			middleware.Recovery(logger),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(verifier),
		),
	}

	if cfg.ObjectStore.Enabled() {
		store, err := objectstore.New(ctx, cfg.ObjectStore, logger)
		if err != nil {
			return fmt.Errorf("create object store: %w", err)
		}
		deps.Uploads = rest.NewUploadHandler(store, cfg.ObjectStore.MaxUploadBytes, logger)

		if cfg.Server.UploadRateLimit > 0 {
			limiter := middleware.NewRateLimiter(time.Minute)
			defer limiter.Stop()
			deps.UploadLimit = limiter.Limit(cfg.Server.UploadRateLimit)
		}
	} else {
		logger.Warn("object store not configured, proof uploads disabled")
	}

	expirer := worker.NewExpirer(questService, cfg.Worker.ExpiryInterval, logger)
	if err := expirer.Start(); err != nil {
		return fmt.Errorf("start expiry worker: %w", err)
	}
	defer func() {
		if err := expirer.Stop(); err != nil {
			logger.Error("stop expiry worker", slog.String("error", err.Error()))
		}
	}()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
