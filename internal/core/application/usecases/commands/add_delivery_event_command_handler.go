package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// AddDeliveryEventCommandHandler appends a delivery history entry to an
// existing order. History is append-only; nothing is ever rewritten.
type AddDeliveryEventCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddDeliveryEventCommandHandler creates a handler for delivery history appends.
func NewAddDeliveryEventCommandHandler(uowFactory OrderUoWFactory) AddDeliveryEventCommandHandler {
	return AddDeliveryEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery history command.
// Fails with ObjectNotFoundError when the referenced order does not exist.
func (h *AddDeliveryEventCommandHandler) Handle(ctx context.Context, cmd AddDeliveryEventCommand) error {
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

	event, err := order.NewDeliveryEvent(cmd.Status(), cmd.Location(), cmd.Note())
	if err != nil {
		return err
	}

	aggregate.AppendDeliveryEvent(event)

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
