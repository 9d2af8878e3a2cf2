// Command expire-quests performs one expiry sweep: every ACTIVE quest whose
// deadline has passed is flipped to EXPIRED. It is intended for installations
// that run the sweep from an external cron job instead of the in-process
// worker.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/questlinehq/questline-backend/internal/adapter/postgres"
	questrepo "github.com/questlinehq/questline-backend/internal/adapter/postgres/quest"
	"github.com/questlinehq/questline-backend/internal/app"
	"github.com/questlinehq/questline-backend/internal/config"
)

func main() {
	_ = godotenv.Load()

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

	quests := questrepo.New(pool)

	expired, err := quests.ExpireDue(ctx, time.Now().UTC())
	if err != nil {
		logger.Error("expiry sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("expiry sweep completed", slog.Int64("expired", expired))
}
