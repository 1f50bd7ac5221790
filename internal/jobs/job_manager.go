package jobs

import (
	"fmt"
	"log/slog"

	"shop/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dashboardReportJob *DashboardReportJob
	staleOrderAuditJob *StaleOrderAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	dashboardHandler queries.GetDashboardSummaryQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dashboardReportJob: NewDashboardReportJob(dashboardHandler, logger),
		staleOrderAuditJob: NewStaleOrderAuditJob(listOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dashboardReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start dashboard report job: %w", err)
	}

	if err := jm.staleOrderAuditJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dashboardReportJob.Stop()
		return fmt.Errorf("failed to start stale order audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderAuditJob.Stop()
	jm.dashboardReportJob.Stop()
}
