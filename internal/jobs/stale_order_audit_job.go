package jobs

import (
	"context"
	"log/slog"
	"time"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// staleOrderAge is how long an order may stay pending before the audit
// job flags it.
const staleOrderAge = 24 * time.Hour

// StaleOrderAuditJob watches for orders stuck in the pending status.
// Runs every five minutes and logs a warning per stale order so the
// operations team can chase unfulfilled orders.
type StaleOrderAuditJob struct {
	handler queries.ListOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderAuditJob creates a job that flags long-pending orders.
func NewStaleOrderAuditJob(handler queries.ListOrdersQueryHandler, logger *slog.Logger) *StaleOrderAuditJob {
	return &StaleOrderAuditJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_audit_job"),
	}
}

// Start begins the audit job to run every five minutes.
func (j *StaleOrderAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewListOrdersQuery(order.StatusPending.String(), nil, queries.MaxPageSize, 0)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order audit job failed to build query", "error", err)
			return
		}

		summaries, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order audit job failed", "error", err)
			return
		}

		cutoff := time.Now().UTC().Add(-staleOrderAge)
		for _, summary := range summaries {
			if summary.CreatedAt.Before(cutoff) {
				j.logger.WarnContext(ctx, "Order pending for too long",
					"order_id", summary.ID.String(),
					"customer_id", summary.CustomerID.String(),
					"created_at", summary.CreatedAt,
				)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order audit job started (running every five minutes)")
	return nil
}

// Stop stops the audit job.
func (j *StaleOrderAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order audit job stopped")
}
