package commands

import (
	"encoding/json"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrAddPaymentCommandIsNotConstructed = errors.New(
		"AddPaymentCommand must be created via NewAddPaymentCommand constructor",
	)
)

// AddPaymentCommand represents an admin request to attach a payment record to
// an order. TransactionID and rawPayload are optional; when omitted they are
// normalized to nil and end up as NULL in storage, when supplied they are
// stored verbatim. The amount is not checked for positivity at this layer.
type AddPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	provider      string
	method        string
	amountMinor   int64
	status        string
	transactionID *string
	rawPayload    json.RawMessage

	guard guard.ConstructorGuard
}

// NewAddPaymentCommand creates a command to record a payment against an order.
// Provider, method, and status are required; transactionID and rawPayload may
// be nil.
func NewAddPaymentCommand(
	orderID kernel.UUID,
	provider string,
	method string,
	amountMinor int64,
	status string,
	transactionID *string,
	rawPayload json.RawMessage,
) (AddPaymentCommand, error) {
	cmd := AddPaymentCommand{
		amountMinor:   amountMinor,
		transactionID: transactionID,
		rawPayload:    rawPayload,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequired("provider", provider, &cmd.provider),
		cmd.setRequired("method", method, &cmd.method),
		cmd.setRequired("payment status", status, &cmd.status),
	); err != nil {
		return AddPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPaymentCommand) Validate() error {
	return c.guard.Validate(ErrAddPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the payment.
func (c AddPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Provider returns the payment provider name.
func (c AddPaymentCommand) Provider() string {
	return c.provider
}

// Method returns the payment method.
func (c AddPaymentCommand) Method() string {
	return c.method
}

// AmountMinor returns the amount in minor currency units.
func (c AddPaymentCommand) AmountMinor() int64 {
	return c.amountMinor
}

// Status returns the provider-reported payment status.
func (c AddPaymentCommand) Status() string {
	return c.status
}

// TransactionID returns the optional provider transaction ID.
func (c AddPaymentCommand) TransactionID() *string {
	return c.transactionID
}

// RawPayload returns the optional opaque provider payload.
func (c AddPaymentCommand) RawPayload() json.RawMessage {
	return c.rawPayload
}

func (c *AddPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddPaymentCommand) setRequired(paramName, value string, target *string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}

	*target = value
	return nil
}
