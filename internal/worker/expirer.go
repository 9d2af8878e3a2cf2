// Package worker hosts the in-process background jobs that run alongside
// the HTTP server.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// sweepTimeout bounds a single expiry pass so a stuck sweep cannot pile up
// behind the next tick.
const sweepTimeout = 30 * time.Second

type questExpirer interface {
	ExpireQuests(ctx context.Context) (int64, error)
}

// Expirer periodically flips ACTIVE quests past their deadline to EXPIRED.
// Reads always treat an overdue quest as expired regardless of this sweep;
// the job only reconciles the stored status.
type Expirer struct {
	svc      questExpirer
	interval time.Duration
	log      *slog.Logger
	sched    gocron.Scheduler
}

// NewExpirer creates an Expirer that sweeps every interval.
func NewExpirer(svc questExpirer, interval time.Duration, logger *slog.Logger) *Expirer {
	return &Expirer{
		svc:      svc,
		interval: interval,
		log:      logger.With("worker", "expirer"),
	}
}

// Start registers the sweep job and launches the scheduler. The first sweep
// runs immediately so a restart catches up on quests that expired while the
// process was down.
func (e *Expirer) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(e.interval),
		gocron.NewTask(e.sweep),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("register expiry job: %w", err)
	}

	e.sched = sched
	sched.Start()
	e.log.Info("expiry worker started", "interval", e.interval.String())
	return nil
}

// Stop shuts the scheduler down, waiting for an in-flight sweep to finish.
func (e *Expirer) Stop() error {
	if e.sched == nil {
		return nil
	}
	if err := e.sched.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}
	return nil
}

func (e *Expirer) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	n, err := e.svc.ExpireQuests(ctx)
	if err != nil {
		e.log.ErrorContext(ctx, "expiry sweep failed", "error", err)
		return
	}
	if n > 0 {
		e.log.InfoContext(ctx, "quests expired", "count", n)
	}
}
