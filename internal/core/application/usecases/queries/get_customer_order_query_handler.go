package queries

import (
	"context"

	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerOrderQueryHandler serves a customer's own order detail view.
type GetCustomerOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrderQueryHandler creates a handler for customer order detail queries.
func NewGetCustomerOrderQueryHandler(db *gorm.DB) GetCustomerOrderQueryHandler {
	return GetCustomerOrderQueryHandler{db: db}
}

// Handle executes the detail query.
// Returns ObjectNotFoundError when the order does not exist and
// PermissionDeniedError when it belongs to a different customer. The
// existence check runs first, so a missing order is never reported as a
// permission problem.
func (h GetCustomerOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrderQuery,
) (*OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	details, err := loadOrderDetails(ctx, h.db, query.OrderID())
	if err != nil {
		return nil, err
	}

	if !details.CustomerID.IsEqual(query.CustomerID()) {
		return nil, errs.NewPermissionDeniedError("order", query.OrderID().String())
	}

	return details, nil
}
