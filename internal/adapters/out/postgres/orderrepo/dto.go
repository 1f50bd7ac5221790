// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and their database rows.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Payments and delivery events live in child tables keyed by order ID.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Address    string
	Status     string    `gorm:"index"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false"`

	Payments       []PaymentDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	DeliveryEvents []DeliveryEventDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// PaymentDTO represents one payment row. TransactionID and RawPayload are
// nullable; the raw payload is stored as jsonb exactly as received.
type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	Provider      string
	Method        string
	AmountMinor   int64
	Status        string
	TransactionID *string
	RawPayload    []byte    `gorm:"type:jsonb"`
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

// DeliveryEventDTO represents one delivery history row. The surrogate key
// exists only for storage; the domain orders entries by occurrence time.
type DeliveryEventDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Status     string
	Location   string
	Note       string
	OccurredAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "delivery_events".
func (DeliveryEventDTO) TableName() string {
	return "delivery_events"
}

// fromDomain converts an order aggregate to its database representation,
// including payment and delivery history child rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	payments := aggregate.Payments()
	paymentDTOs := make([]PaymentDTO, 0, len(payments))
	for _, p := range payments {
		paymentDTOs = append(paymentDTOs, PaymentDTO{
			ID:            p.ID().Bytes(),
			OrderID:       orderID,
			Provider:      p.Provider(),
			Method:        p.Method(),
			AmountMinor:   p.AmountMinor(),
			Status:        p.Status(),
			TransactionID: p.TransactionID(),
			RawPayload:    p.RawPayload(),
			CreatedAt:     p.CreatedAt(),
		})
	}

	history := aggregate.DeliveryHistory()
	eventDTOs := make([]DeliveryEventDTO, 0, len(history))
	for _, e := range history {
		eventDTOs = append(eventDTOs, DeliveryEventDTO{
			OrderID:    orderID,
			Status:     e.Status(),
			Location:   e.Location(),
			Note:       e.Note(),
			OccurredAt: e.OccurredAt(),
		})
	}

	return OrderDTO{
		ID:             orderID,
		CustomerID:     aggregate.CustomerID().Bytes(),
		Address:        aggregate.Address(),
		Status:         aggregate.Status().String(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Payments:       paymentDTOs,
		DeliveryEvents: eventDTOs,
	}
}

// toDomain converts database rows back to an order aggregate using
// RestoreOrder. Child rows must already be loaded into the DTO.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	payments := make([]order.Payment, 0, len(dto.Payments))
	for _, p := range dto.Payments {
		paymentID, idErr := kernel.UUIDFromBytes(p.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		payment, restoreErr := order.RestorePayment(
			paymentID,
			p.Provider,
			p.Method,
			p.AmountMinor,
			p.Status,
			p.TransactionID,
			p.RawPayload,
			p.CreatedAt,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		payments = append(payments, payment)
	}

	history := make([]order.DeliveryEvent, 0, len(dto.DeliveryEvents))
	for _, e := range dto.DeliveryEvents {
		history = append(history, order.RestoreDeliveryEvent(e.Status, e.Location, e.Note, e.OccurredAt))
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.Address,
		order.Status(dto.Status),
		payments,
		history,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
