package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerAddressesQueryHandler serves the distinct delivery addresses
// of one customer.
type GetCustomerAddressesQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerAddressesQueryHandler creates a handler for customer address listings.
func NewGetCustomerAddressesQueryHandler(db *gorm.DB) GetCustomerAddressesQueryHandler {
	return GetCustomerAddressesQueryHandler{db: db}
}

// Handle executes the address query. Deduplication happens in SQL; a
// customer with no orders gets an empty slice.
func (h GetCustomerAddressesQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerAddressesQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT address
		FROM orders
		WHERE customer_id = ?
		ORDER BY address
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]string, 0)
	for rows.Next() {
		var address string
		if err = rows.Scan(&address); err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}
