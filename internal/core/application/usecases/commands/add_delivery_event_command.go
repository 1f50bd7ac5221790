package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrAddDeliveryEventCommandIsNotConstructed = errors.New(
		"AddDeliveryEventCommand must be created via NewAddDeliveryEventCommand constructor",
	)
)

// AddDeliveryEventCommand represents an admin request to append an entry to an
// order's delivery history. The status value is free-form, like every other
// admin-written status in this layer; location and note are optional.
type AddDeliveryEventCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	status   string
	location string
	note     string

	guard guard.ConstructorGuard
}

// NewAddDeliveryEventCommand creates a command to append a delivery history entry.
func NewAddDeliveryEventCommand(orderID kernel.UUID, status, location, note string) (AddDeliveryEventCommand, error) {
	cmd := AddDeliveryEventCommand{
		location: location,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return AddDeliveryEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDeliveryEventCommand) Validate() error {
	return c.guard.Validate(ErrAddDeliveryEventCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose history grows.
func (c AddDeliveryEventCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the status marker of the entry.
func (c AddDeliveryEventCommand) Status() string {
	return c.status
}

// Location returns the optional location of the entry.
func (c AddDeliveryEventCommand) Location() string {
	return c.location
}

// Note returns the optional free-form note.
func (c AddDeliveryEventCommand) Note() string {
	return c.note
}

func (c *AddDeliveryEventCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddDeliveryEventCommand) setStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}

	c.status = status
	return nil
}
