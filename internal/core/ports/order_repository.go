// Package ports defines the contracts between the order use-case layer and
// infrastructure: the persistence repository, the unit of work, and the
// order-event publisher. These interfaces enable dependency inversion and
// testability; the concrete implementations live under internal/adapters.
package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Read-side listings (admin lists, customer order lists, distinct addresses)
// are served by the query handlers directly and are not part of this contract.
//
// All methods may fail with a persistence error that the use-case layer does
// not catch; it propagates untouched to the caller.
type OrderRepository interface {
	// Add persists a new order aggregate, including its payments and
	// delivery history.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. New payments
	// and delivery events are appended; existing child rows are never
	// rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, with its
	// payments and delivery history loaded. Returns an ObjectNotFoundError
	// when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
