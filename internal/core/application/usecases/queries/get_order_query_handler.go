package queries

import (
	"context"
	"database/sql"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler serves the admin order detail view.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for admin order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the detail query.
// Returns ObjectNotFoundError when no order has the given ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadOrderDetails(ctx, h.db, query.OrderID())
}

// loadOrderDetails assembles the full order view in three reads: the order
// row, its payments, and its delivery history. Shared by the admin and
// customer detail handlers; the ownership decision stays with the caller.
func loadOrderDetails(ctx context.Context, db *gorm.DB, orderID kernel.UUID) (*OrderDetailsResponse, error) {
	details, err := loadOrderRow(ctx, db, orderID)
	if err != nil {
		return nil, err
	}

	if details.Payments, err = loadPayments(ctx, db, orderID); err != nil {
		return nil, err
	}
	if details.DeliveryHistory, err = loadDeliveryHistory(ctx, db, orderID); err != nil {
		return nil, err
	}

	return details, nil
}

func loadOrderRow(ctx context.Context, db *gorm.DB, orderID kernel.UUID) (*OrderDetailsResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			address,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}

	var (
		id         uuid.UUID
		customerID uuid.UUID
		details    OrderDetailsResponse
	)

	err = rows.Scan(&id, &customerID, &details.Address, &details.Status, &details.CreatedAt, &details.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if details.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if details.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return nil, err
	}

	return &details, rows.Err()
}

func loadPayments(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]PaymentResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			provider,
			method,
			amount_minor,
			status,
			transaction_id,
			raw_payload,
			created_at
		FROM payments
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentResponse, 0)
	for rows.Next() {
		var (
			id            uuid.UUID
			payment       PaymentResponse
			transactionID sql.NullString
			rawPayload    []byte
		)

		err = rows.Scan(
			&id,
			&payment.Provider,
			&payment.Method,
			&payment.AmountMinor,
			&payment.Status,
			&transactionID,
			&rawPayload,
			&payment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if payment.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if transactionID.Valid {
			payment.TransactionID = &transactionID.String
		}
		if len(rawPayload) > 0 {
			payment.RawPayload = rawPayload
		}

		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

func loadDeliveryHistory(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]DeliveryEventResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			status,
			location,
			note,
			occurred_at
		FROM delivery_events
		WHERE order_id = ?
		ORDER BY occurred_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]DeliveryEventResponse, 0)
	for rows.Next() {
		var event DeliveryEventResponse

		if err = rows.Scan(&event.Status, &event.Location, &event.Note, &event.OccurredAt); err != nil {
			return nil, err
		}

		history = append(history, event)
	}

	return history, rows.Err()
}
