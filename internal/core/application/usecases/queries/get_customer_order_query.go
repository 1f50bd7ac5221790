package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrGetCustomerOrderQueryIsNotConstructed = errors.New(
		"GetCustomerOrderQuery must be created via NewGetCustomerOrderQuery constructor",
	)
)

// GetCustomerOrderQuery retrieves one order on behalf of a customer.
// Existence is decided before ownership: a missing order reads as not
// found, an order owned by someone else as permission denied.
type GetCustomerOrderQuery struct {
	customerID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrderQuery creates a customer order detail query.
func NewGetCustomerOrderQuery(customerID, orderID kernel.UUID) (GetCustomerOrderQuery, error) {
	if err := errors.Join(customerID.Validate(), orderID.Validate()); err != nil {
		return GetCustomerOrderQuery{}, err
	}

	return GetCustomerOrderQuery{
		customerID: customerID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrderQueryIsNotConstructed)
}

// CustomerID returns the identifier of the requesting customer.
func (q GetCustomerOrderQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderID returns the identifier of the order to fetch.
func (q GetCustomerOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
