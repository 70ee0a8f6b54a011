package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	deliveryStatsJob *DeliveryStatsJob
}

// NewJobManager wires the stats job to its command handler.
func NewJobManager(
	refreshStatsHandler StatsRefresher,
	statsSchedule string,
	statsTimeout time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryStatsJob: NewDeliveryStatsJob(refreshStatsHandler, statsSchedule, statsTimeout, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryStatsJob.Stop()
}
