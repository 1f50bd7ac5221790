package queries

import (
	"errors"

	"shop/internal/pkg/guard"
)

var (
	ErrGetDashboardSummaryQueryIsNotConstructed = errors.New(
		"GetDashboardSummaryQuery must be created via NewGetDashboardSummaryQuery constructor",
	)
)

// GetDashboardSummaryQuery retrieves order counts per status for the admin
// dashboard and the periodic report job. Parameterless.
type GetDashboardSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardSummaryQuery creates a dashboard summary query.
func NewGetDashboardSummaryQuery() GetDashboardSummaryQuery {
	return GetDashboardSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardSummaryQueryIsNotConstructed)
}

// StatusCountResponse is one status bucket of the dashboard summary.
type StatusCountResponse struct {
	Status string
	Count  int64
}

// DashboardSummaryResponse aggregates the order table by status.
// TotalOrders is the sum over all buckets.
type DashboardSummaryResponse struct {
	TotalOrders  int64
	StatusCounts []StatusCountResponse
}
