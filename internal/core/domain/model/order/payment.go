package order

import (
	"encoding/json"
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// Payment is a payment record belonging to exactly one order. The transaction
// ID and the raw provider payload are optional: when the provider does not
// supply them they are stored as NULL, and when supplied they are stored
// verbatim with no transformation. The raw payload is an opaque JSON value
// kept for audit and debugging only; this layer never interprets it.
//
// The amount is not validated here. Amount constraints are a concern of the
// caller and the database schema, matching the admin trust boundary of the
// rest of the aggregate.
type Payment struct {
	id            kernel.UUID
	provider      string
	method        string
	amountMinor   int64
	status        string
	transactionID *string
	rawPayload    json.RawMessage
	createdAt     time.Time
}

// NewPayment creates a payment record with a fresh creation timestamp.
// Provider, method, and status are required; transactionID and rawPayload may
// be nil.
func NewPayment(
	id kernel.UUID,
	provider string,
	method string,
	amountMinor int64,
	status string,
	transactionID *string,
	rawPayload json.RawMessage,
) (Payment, error) {
	if err := errors.Join(
		id.Validate(),
		requireString("provider", provider),
		requireString("method", method),
		requireString("payment status", status),
	); err != nil {
		return Payment{}, err
	}

	return Payment{
		id:            id,
		provider:      provider,
		method:        method,
		amountMinor:   amountMinor,
		status:        status,
		transactionID: transactionID,
		rawPayload:    rawPayload,
		createdAt:     time.Now().UTC(),
	}, nil
}

// RestorePayment reconstructs a payment from persistence without re-validation
// beyond the identifier. Used by the repository's DTO mapping.
func RestorePayment(
	id kernel.UUID,
	provider string,
	method string,
	amountMinor int64,
	status string,
	transactionID *string,
	rawPayload json.RawMessage,
	createdAt time.Time,
) (Payment, error) {
	if err := id.Validate(); err != nil {
		return Payment{}, err
	}

	return Payment{
		id:            id,
		provider:      provider,
		method:        method,
		amountMinor:   amountMinor,
		status:        status,
		transactionID: transactionID,
		rawPayload:    rawPayload,
		createdAt:     createdAt,
	}, nil
}

// ID returns the payment's unique identifier.
func (p Payment) ID() kernel.UUID {
	return p.id
}

// Provider returns the payment provider name.
func (p Payment) Provider() string {
	return p.provider
}

// Method returns the payment method.
func (p Payment) Method() string {
	return p.method
}

// AmountMinor returns the amount in minor currency units.
func (p Payment) AmountMinor() int64 {
	return p.amountMinor
}

// Status returns the provider-reported payment status.
func (p Payment) Status() string {
	return p.status
}

// TransactionID returns the provider transaction ID, nil when absent.
func (p Payment) TransactionID() *string {
	return p.transactionID
}

// RawPayload returns the opaque provider payload, nil when absent.
func (p Payment) RawPayload() json.RawMessage {
	return p.rawPayload
}

// CreatedAt returns the payment creation time.
func (p Payment) CreatedAt() time.Time {
	return p.createdAt
}

func requireString(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
