// Package jobs provides scheduled background tasks for the back-of-house
// API, implemented with github.com/robfig/cron/v3. The only job today is
// OrderStatsJob, a read-only reporter of per-status order counts.
package jobs

import (
	"fmt"
	"log/slog"

	"backhouse/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderStatsJob *OrderStatsJob
}

// NewJobManager creates a job manager with all required jobs.
// Takes the order listing query handler to wire up the stats reporter.
func NewJobManager(
	listOrdersHandler queries.ListOrdersQueryHandler,
	statsSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderStatsJob: NewOrderStatsJob(listOrdersHandler, statsSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order stats job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatsJob.Stop()
}
