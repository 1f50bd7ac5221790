package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDashboardSummaryQueryHandler serves the per-status order counts.
type GetDashboardSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardSummaryQueryHandler creates a handler for dashboard summaries.
func NewGetDashboardSummaryQueryHandler(db *gorm.DB) GetDashboardSummaryQueryHandler {
	return GetDashboardSummaryQueryHandler{db: db}
}

// Handle executes the summary query. Buckets come back sorted by status
// name so repeated calls produce stable output.
func (h GetDashboardSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardSummaryQuery,
) (*DashboardSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := DashboardSummaryResponse{
		StatusCounts: make([]StatusCountResponse, 0),
	}

	for rows.Next() {
		var bucket StatusCountResponse
		if err = rows.Scan(&bucket.Status, &bucket.Count); err != nil {
			return nil, err
		}

		summary.TotalOrders += bucket.Count
		summary.StatusCounts = append(summary.StatusCounts, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &summary, nil
}
