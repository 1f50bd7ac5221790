package commands

import (
	"context"
	"log/slog"
	"time"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// publishOrderChanged sends a best-effort order event after a successful
// commit. A publish failure is logged and swallowed: a lost event must never
// fail a request that already committed.
func publishOrderChanged(
	ctx context.Context,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
	eventType string,
	aggregate *order.Order,
) {
	if publisher == nil {
		return
	}

	event := ports.OrderChangedEvent{
		EventType:  eventType,
		OrderID:    aggregate.ID().String(),
		CustomerID: aggregate.CustomerID().String(),
		Status:     aggregate.Status().String(),
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.PublishOrderChanged(ctx, event); err != nil {
		logger.ErrorContext(ctx, "failed to publish order event",
			"event_type", eventType,
			"order_id", event.OrderID,
			"error", err,
		)
	}
}
