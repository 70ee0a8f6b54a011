package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"

	"github.com/robfig/cron/v3"
)

// DefaultStatsSchedule recounts the delivery cards every five minutes.
const DefaultStatsSchedule = "0 */5 * * * *"

// StatsRefresher recounts and stores the delivery stats snapshot.
type StatsRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshDeliveryStatsCommand) (delivery.Stats, error)
}

// DeliveryStatsJob keeps the delivery stats snapshot fresh.
// The schedule is a six-field cron expression (seconds first).
type DeliveryStatsJob struct {
	handler  StatsRefresher
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryStatsJob falls back to DefaultStatsSchedule when schedule is empty.
// timeout bounds a single refresh; zero means no bound.
func NewDeliveryStatsJob(
	handler StatsRefresher,
	schedule string,
	timeout time.Duration,
	logger *slog.Logger,
) *DeliveryStatsJob {
	if schedule == "" {
		schedule = DefaultStatsSchedule
	}
	return &DeliveryStatsJob{
		handler:  handler,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_stats_job"),
	}
}

// Start registers the refresh on the schedule and starts the scheduler.
func (j *DeliveryStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery stats job started", "schedule", j.schedule)
	return nil
}

// Run performs one refresh. A failed refresh keeps the previous snapshot.
func (j *DeliveryStatsJob) Run(ctx context.Context) {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	stats, err := j.handler.Handle(ctx, commands.NewRefreshDeliveryStatsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery stats refresh failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Delivery stats refreshed", "total", stats.Total, "pending", stats.Pending)
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *DeliveryStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery stats job stopped")
}
