package queries

import (
	"encoding/json"
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with payments and delivery history for
// the admin detail view. No ownership check applies on this path.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates an admin order detail query.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderDetailsResponse is the full order view: the order row plus its
// payments and delivery history, both in chronological order.
type OrderDetailsResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	Address         string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Payments        []PaymentResponse
	DeliveryHistory []DeliveryEventResponse
}

// PaymentResponse is one payment row of an order detail.
// TransactionID and RawPayload are nil when the stored values are NULL.
type PaymentResponse struct {
	ID            kernel.UUID
	Provider      string
	Method        string
	AmountMinor   int64
	Status        string
	TransactionID *string
	RawPayload    json.RawMessage
	CreatedAt     time.Time
}

// DeliveryEventResponse is one delivery history entry of an order detail.
type DeliveryEventResponse struct {
	Status     string
	Location   string
	Note       string
	OccurredAt time.Time
}
