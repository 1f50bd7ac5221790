package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler serves a customer's own order listing.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order listings.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the listing query scoped to the query's customer.
// An unknown customer yields an empty slice, not an error.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
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
		WHERE customer_id = ?
	`
	args := []any{query.CustomerID().Bytes()}

	if query.Status() != "" {
		sql += " AND status = ?"
		args = append(args, query.Status())
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
