package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrGetCustomerAddressesQueryIsNotConstructed = errors.New(
		"GetCustomerAddressesQuery must be created via NewGetCustomerAddressesQuery constructor",
	)
)

// GetCustomerAddressesQuery retrieves the distinct delivery addresses a
// customer has used across their orders, for address-book style reuse at
// checkout.
type GetCustomerAddressesQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerAddressesQuery creates a customer address listing query.
func NewGetCustomerAddressesQuery(customerID kernel.UUID) (GetCustomerAddressesQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerAddressesQuery{}, err
	}

	return GetCustomerAddressesQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerAddressesQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerAddressesQueryIsNotConstructed)
}

// CustomerID returns the identifier of the requesting customer.
func (q GetCustomerAddressesQuery) CustomerID() kernel.UUID {
	return q.customerID
}
