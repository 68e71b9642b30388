package jobs

import (
	"context"
	"log/slog"

	"backhouse/internal/core/application/usecases/queries"
	"backhouse/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OrderStatsJob periodically logs how many orders sit in each lifecycle
// status. It is read-only: the stores are never mutated from the schedule.
type OrderStatsJob struct {
	handler  queries.ListOrdersQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatsJob creates a job that reports order counts per status on the
// given cron schedule (with a seconds field, e.g. "0 * * * * *" for every
// minute).
func NewOrderStatsJob(handler queries.ListOrdersQueryHandler, schedule string, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_stats_job"),
	}
}

// Start begins the reporting schedule.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		orders, err := j.handler.Handle(ctx, queries.NewListOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
			return
		}

		counts := CountByStatus(orders)
		j.logger.InfoContext(ctx, "Order stats",
			"total", len(orders),
			"pending", counts[order.Pending],
			"preparing", counts[order.Preparing],
			"out_for_delivery", counts[order.OutForDelivery],
			"delivered", counts[order.Delivered],
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reporting schedule.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}

// CountByStatus tallies orders per lifecycle status.
func CountByStatus(orders []*order.Order) map[order.Status]int {
	counts := make(map[order.Status]int)
	for _, o := range orders {
		counts[o.Status()]++
	}
	return counts
}
