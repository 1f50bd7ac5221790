// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order management.
//
// # Available Jobs
//
// 1. DashboardReportJob - Runs every minute to log order counts per status
// 2. StaleOrderAuditJob - Runs every five minutes to flag orders stuck in the pending status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dashboardHandler, listOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log failures and keep running on the next tick
// - Failed job starts will stop any already running jobs
package jobs
