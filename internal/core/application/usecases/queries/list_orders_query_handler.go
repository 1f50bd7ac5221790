package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler serves the admin order listing straight from the
// database. Filtering happens in SQL; no rows are post-filtered in memory.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for admin order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are ordered newest first and
// paged by the query's limit and offset.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			customer_id,
			address,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE 1=1
	`
	args := make([]any, 0, 4)

	if query.Status() != "" {
		sql += " AND status = ?"
		args = append(args, query.Status())
	}
	if query.CustomerID() != nil {
		sql += " AND customer_id = ?"
		args = append(args, query.CustomerID().Bytes())
	}

	sql += " ORDER BY created_at DESC, id LIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			customerID uuid.UUID
			address    string
			status     string
			createdAt  time.Time
			updatedAt  time.Time
		)

		if err = rows.Scan(&id, &customerID, &address, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, OrderSummaryResponse{
			ID:         orderID,
			CustomerID: ownerID,
			Address:    address,
			Status:     status,
			CreatedAt:  createdAt,
			UpdatedAt:  updatedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
