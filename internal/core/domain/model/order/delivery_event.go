package order

import "time"

// DeliveryEvent is one entry of an order's delivery history: a status marker
// with an optional location and note. Entries are append-only and ordered by
// their creation time; the status value is not checked against any vocabulary,
// mirroring the admin trust boundary of status writes.
type DeliveryEvent struct {
	status     string
	location   string
	note       string
	occurredAt time.Time
}

// NewDeliveryEvent creates a history entry stamped with the current time.
// Status is required; location and note may be empty.
func NewDeliveryEvent(status, location, note string) (DeliveryEvent, error) {
	if err := requireString("delivery status", status); err != nil {
		return DeliveryEvent{}, err
	}

	return DeliveryEvent{
		status:     status,
		location:   location,
		note:       note,
		occurredAt: time.Now().UTC(),
	}, nil
}

// RestoreDeliveryEvent reconstructs a history entry from persistence.
func RestoreDeliveryEvent(status, location, note string, occurredAt time.Time) DeliveryEvent {
	return DeliveryEvent{
		status:     status,
		location:   location,
		note:       note,
		occurredAt: occurredAt,
	}
}

// Status returns the status recorded by this entry.
func (e DeliveryEvent) Status() string {
	return e.status
}

// Location returns the location recorded by this entry, possibly empty.
func (e DeliveryEvent) Location() string {
	return e.location
}

// Note returns the free-form note, possibly empty.
func (e DeliveryEvent) Note() string {
	return e.note
}

// OccurredAt returns the entry's creation time.
func (e DeliveryEvent) OccurredAt() time.Time {
	return e.occurredAt
}
