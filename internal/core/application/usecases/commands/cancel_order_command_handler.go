package commands

import (
	"context"
	"log/slog"

	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

// CancelOrderCommandHandler handles customer-initiated order cancellation.
// Checks run in a fixed sequence: existence, then ownership, then state.
// A missing order yields NotFound before ownership is ever considered, and a
// foreign order yields PermissionDenied even when it is already cancelled.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// The publisher may be nil when event publishing is disabled.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the cancellation command.
// Fails with ObjectNotFoundError when the order does not exist, with
// PermissionDeniedError when the caller is not the owner, and with
// InvalidStateError when the order is no longer pending.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.IsOwnedBy(cmd.CustomerID()) {
		return errs.NewPermissionDeniedError("order", cmd.OrderID().String())
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, h.logger, ports.EventTypeOrderCancelled, aggregate)
	return nil
}
