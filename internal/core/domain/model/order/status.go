package order

import (
	"shop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as observable from this
// layer. Only two values carry meaning here: Pending is the initial state set
// at creation, and Cancelled is the single transition a customer may trigger.
//
// Every other value is written by admin operations and treated as an opaque
// string: there is no enum validation and no transition guard on the admin
// path, so an admin can move even a cancelled order to any status. The legal
// vocabulary is constrained by the caller, not by this layer. That unguarded
// trust boundary is inherited behavior, kept as-is rather than silently fixed.
type Status string

const (
	// StatusPending is the initial status of every order. Pending orders are
	// the only orders a customer may cancel.
	StatusPending Status = "pending"

	// StatusCancelled is set when the owning customer cancels a pending order.
	// From the customer's perspective this state is terminal.
	StatusCancelled Status = "cancelled"

	// The remaining constants name statuses this layer only ever writes on
	// behalf of an admin and never inspects. They exist for fixtures and
	// readability; nothing rejects a status outside this list.
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

// String returns the raw status string.
func (s Status) String() string {
	return string(s)
}

// IsPending reports whether the order is still cancellable by its owner.
func (s Status) IsPending() bool {
	return s == StatusPending
}

// Validate rejects only the empty string. Any non-empty status is
// admin-settable per the layer's contract.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}
