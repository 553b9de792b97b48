package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"restaurant_manager/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

// PromotionSweepSpec runs the promotion sweep every 5 minutes.
const PromotionSweepSpec = "*/5 * * * *"

// DefaultStaleAfter is how long an order may stay pending before it is cancelled.
const DefaultStaleAfter = 24 * time.Hour

// Store is what the maintenance jobs touch; database.Store implements it.
type Store interface {
	DeactivateExpiredPromotions(ctx context.Context, now time.Time) (int64, error)
	CancelStaleTransactions(ctx context.Context, before time.Time) (int64, error)
}

type Runner struct {
	store      Store
	log        *slog.Logger
	now        func() time.Time
	staleAfter time.Duration
}

func New(store Store, log *slog.Logger) *Runner {
	if log == nil {
		log = utils.DiscardLogger()
	}
	return &Runner{store: store, log: log, now: time.Now, staleAfter: DefaultStaleAfter}
}

// ExpirePromotions deactivates every active promotion whose validUntil has passed.
func (r *Runner) ExpirePromotions(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	n, err := r.store.DeactivateExpiredPromotions(ctx, r.now())
	if err != nil {
		r.log.Error("expire promotions failed", "error", err)
		return
	}
	if n > 0 {
		r.log.Info("promotions expired", "count", n)
	}
}

// CancelStaleOrders cancels orders still pending after staleAfter.
func (r *Runner) CancelStaleOrders(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	n, err := r.store.CancelStaleTransactions(ctx, r.now().Add(-r.staleAfter))
	if err != nil {
		r.log.Error("cancel stale orders failed", "error", err)
		return
	}
	if n > 0 {
		r.log.Info("stale orders cancelled", "count", n)
	}
}

// Run schedules both jobs and blocks until ctx is done, then waits for running jobs.
func (r *Runner) Run(ctx context.Context) error {
	cronLog := cron.PrintfLogger(slog.NewLogLogger(r.log.Handler(), slog.LevelWarn))
	sweeper := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)
	if _, err := sweeper.AddFunc(PromotionSweepSpec, func() { r.ExpirePromotions(ctx) }); err != nil {
		return fmt.Errorf("schedule promotion sweep: %w", err)
	}

	daily, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	_, err = daily.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 5, 0))),
		gocron.NewTask(func() { r.CancelStaleOrders(ctx) }),
		gocron.WithName("cancel-stale-orders"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = daily.Shutdown()
		return fmt.Errorf("schedule stale order cleanup: %w", err)
	}

	// catch up on anything that expired while the server was down
	r.ExpirePromotions(ctx)

	sweeper.Start()
	daily.Start()
	r.log.Info("jobs started", "promotionSweep", PromotionSweepSpec, "staleOrders", "daily 00:05 UTC")

	<-ctx.Done()
	<-sweeper.Stop().Done()
	if err := daily.Shutdown(); err != nil {
		return fmt.Errorf("stop scheduler: %w", err)
	}
	r.log.Info("jobs stopped")
	return nil
}
