package ports

import (
	"context"
	"time"
)

// Order event types published on status changes.
const (
	EventTypeOrderCreated       = "order.created"
	EventTypeOrderCancelled     = "order.cancelled"
	EventTypeOrderStatusChanged = "order.status_changed"
)

// OrderChangedEvent is the payload published when an order's status changes.
// Consumers outside this service (notifications, analytics) subscribe to it;
// nothing in this service reads it back.
type OrderChangedEvent struct {
	EventType  string    `json:"event_type"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderEventPublisher publishes order lifecycle events after a successful
// commit. Publishing is best-effort: a failure is logged by the caller and
// never surfaced to the client, so a lost event cannot fail a request.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
	Close() error
}
