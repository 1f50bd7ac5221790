package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

const (
	// DefaultPageSize applies when a list query is built with limit 0.
	DefaultPageSize = 50
	// MaxPageSize caps the page size any caller can request.
	MaxPageSize = 200
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves a page of orders for the admin listing.
// Status and customer filters are optional; an empty status and a nil
// customer ID mean "all orders". The status filter string is passed to
// SQL as-is, consistent with status being unvalidated on the admin path.
//
// Example:
//
//	query, err := NewListOrdersQuery("shipped", nil, 20, 0)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	status     string
	customerID *kernel.UUID
	limit      int
	offset     int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an admin order listing query.
// A zero limit falls back to DefaultPageSize; limits above MaxPageSize
// are clamped. Negative limit or offset is rejected.
func NewListOrdersQuery(status string, customerID *kernel.UUID, limit, offset int) (ListOrdersQuery, error) {
	if limit < 0 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("limit")
	}
	if offset < 0 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("offset")
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return ListOrdersQuery{
		status:     status,
		customerID: customerID,
		limit:      limit,
		offset:     offset,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter, empty for "all".
func (q ListOrdersQuery) Status() string {
	return q.status
}

// CustomerID returns the optional customer filter, nil for "all".
func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// Limit returns the effective page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the page offset.
func (q ListOrdersQuery) Offset() int {
	return q.offset
}

// OrderSummaryResponse is one row of an order listing. Payments and
// delivery history are omitted; they belong to the detail queries.
type OrderSummaryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Address    string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
