package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery retrieves the orders belonging to one customer.
// Authorization lives in the query itself: the customer ID becomes a WHERE
// clause, so foreign orders never leave the database.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID
	status     string
	limit      int
	offset     int

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a customer order listing query.
// Status is an optional filter; paging follows the same defaults and caps
// as the admin listing.
func NewGetCustomerOrdersQuery(customerID kernel.UUID, status string, limit, offset int) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	if limit < 0 {
		return GetCustomerOrdersQuery{}, errs.NewValueIsInvalidError("limit")
	}
	if offset < 0 {
		return GetCustomerOrdersQuery{}, errs.NewValueIsInvalidError("offset")
	}

	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		status:     status,
		limit:      limit,
		offset:     offset,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the identifier of the requesting customer.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Status returns the optional status filter, empty for "all".
func (q GetCustomerOrdersQuery) Status() string {
	return q.status
}

// Limit returns the effective page size.
func (q GetCustomerOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the page offset.
func (q GetCustomerOrdersQuery) Offset() int {
	return q.offset
}
