package commands

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// AddPaymentCommandHandler appends a payment record to an existing order.
// The payment gets a freshly generated identifier; field values are mapped
// one-to-one with no transformation.
type AddPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddPaymentCommandHandler creates a handler for recording payments.
func NewAddPaymentCommandHandler(uowFactory OrderUoWFactory) AddPaymentCommandHandler {
	return AddPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command.
// Fails with ObjectNotFoundError when the referenced order does not exist.
func (h *AddPaymentCommandHandler) Handle(ctx context.Context, cmd AddPaymentCommand) error {
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

	payment, err := order.NewPayment(
		kernel.NewUUID(),
		cmd.Provider(),
		cmd.Method(),
		cmd.AmountMinor(),
		cmd.Status(),
		cmd.TransactionID(),
		cmd.RawPayload(),
	)
	if err != nil {
		return err
	}

	aggregate.AddPayment(payment)

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
