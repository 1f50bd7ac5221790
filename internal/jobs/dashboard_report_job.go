package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DashboardReportJob periodically logs the order dashboard summary.
// Runs every minute so operators can follow order volume per status
// from the logs without hitting the admin API.
type DashboardReportJob struct {
	handler queries.GetDashboardSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDashboardReportJob creates a job that reports order counts per status.
func NewDashboardReportJob(handler queries.GetDashboardSummaryQueryHandler, logger *slog.Logger) *DashboardReportJob {
	return &DashboardReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dashboard_report_job"),
	}
}

// Start begins the dashboard report job to run at the top of every minute.
func (j *DashboardReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		summary, err := j.handler.Handle(ctx, queries.NewGetDashboardSummaryQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Dashboard report job failed", "error", err)
			return
		}

		attrs := []any{"total_orders", summary.TotalOrders}
		for _, bucket := range summary.StatusCounts {
			attrs = append(attrs, "orders_"+bucket.Status, bucket.Count)
		}
		j.logger.InfoContext(ctx, "Order dashboard summary", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard report job started (running every minute)")
	return nil
}

// Stop stops the dashboard report job.
func (j *DashboardReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dashboard report job stopped")
}
