package order

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for a customer order. It carries the owning
// customer, the delivery address, the lifecycle status, the collection of
// payments, and the append-only delivery history.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a valid owning customer
//   - Must have a non-empty delivery address
//   - Starts in Pending status; only pending orders can be cancelled by the owner
//   - Payments and delivery events are append-only
//
// Admin status writes via SetStatus apply unconditionally: no enum check, no
// transition guard. The caller owns that constraint (see Status).
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	address         string
	status          Status
	payments        []Payment
	deliveryHistory []DeliveryEvent
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewOrder creates a new pending order owned by the given customer.
func NewOrder(id kernel.UUID, customerID kernel.UUID, address string) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its payments
// and delivery history. The status must be non-empty but is otherwise accepted
// verbatim, since admin-set values are opaque to this layer.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	address string,
	status Status,
	payments []Payment,
	deliveryHistory []DeliveryEvent,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		payments:        payments,
		deliveryHistory: deliveryHistory,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddress(address),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Call this when receiving orders across layer boundaries.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the owning customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Address returns the delivery address recorded at creation.
func (o *Order) Address() string {
	return o.address
}

// Status returns the current order status.
func (o *Order) Status() Status {
	return o.status
}

// Payments returns a copy of the order's payment records.
func (o *Order) Payments() []Payment {
	out := make([]Payment, len(o.payments))
	copy(out, o.payments)
	return out
}

// DeliveryHistory returns a copy of the delivery history, in append order.
func (o *Order) DeliveryHistory() []DeliveryEvent {
	out := make([]DeliveryEvent, len(o.deliveryHistory))
	copy(out, o.deliveryHistory)
	return out
}

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether the order belongs to the given customer.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// Cancel transitions the order from Pending to Cancelled.
// This is the only status transition a customer may trigger. Any current
// status other than Pending yields an InvalidStateError; from the customer's
// perspective every non-pending state is terminal.
func (o *Order) Cancel() error {
	if !o.status.IsPending() {
		return errs.NewInvalidStateError("order status", o.status.String())
	}

	o.status = StatusCancelled
	o.touch()
	return nil
}

// SetStatus writes the given status unconditionally. Used by admin operations
// only: there is no transition guard, so even a cancelled order can be moved
// to any non-empty status. Rejects only the empty string.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.touch()
	return nil
}

// AddPayment appends a payment record to the order.
func (o *Order) AddPayment(payment Payment) {
	o.payments = append(o.payments, payment)
	o.touch()
}

// AppendDeliveryEvent appends an entry to the delivery history.
func (o *Order) AppendDeliveryEvent(event DeliveryEvent) {
	o.deliveryHistory = append(o.deliveryHistory, event)
	o.touch()
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}
