package order_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "12 Market Street")
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("valid order starts pending", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()

		o, err := order.NewOrder(id, customerID, "12 Market Street")
		require.NoError(t, err)

		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Empty(t, o.Payments())
		assert.Empty(t, o.DeliveryHistory())
	})

	t.Run("empty address is rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero customer id is rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, "12 Market Street")
		require.Error(t, err)
	})
}

func TestOrder_Validate_NotConstructed(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending order becomes cancelled", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("second cancel fails with invalid state", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		err := o.Cancel()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("non-pending statuses are terminal for the customer", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusProcessing,
			order.StatusShipped,
			order.StatusDelivered,
			order.Status("on-hold"),
		} {
			o := newPendingOrder(t)
			require.NoError(t, o.SetStatus(status))

			err := o.Cancel()
			require.Error(t, err, "status %s", status)
			assert.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})
}

func TestOrder_SetStatus_Unguarded(t *testing.T) {
	t.Run("accepts any non-empty status", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.SetStatus(order.Status("weird-custom-status")))
		assert.Equal(t, order.Status("weird-custom-status"), o.Status())
	})

	t.Run("moves a cancelled order back to any status", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		require.NoError(t, o.SetStatus(order.StatusShipped))
		assert.Equal(t, order.StatusShipped, o.Status())
	})

	t.Run("rejects the empty string", func(t *testing.T) {
		o := newPendingOrder(t)
		require.Error(t, o.SetStatus(""))
	})
}

func TestOrder_IsOwnedBy(t *testing.T) {
	customerID := kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, "12 Market Street")
	require.NoError(t, err)

	assert.True(t, o.IsOwnedBy(customerID))
	assert.False(t, o.IsOwnedBy(kernel.NewUUID()))
}

func TestOrder_AddPayment(t *testing.T) {
	o := newPendingOrder(t)

	payment, err := order.NewPayment(kernel.NewUUID(), "stripe", "card", 2599, "captured", nil, nil)
	require.NoError(t, err)

	o.AddPayment(payment)

	payments := o.Payments()
	require.Len(t, payments, 1)
	assert.Equal(t, "stripe", payments[0].Provider())
	assert.Nil(t, payments[0].TransactionID())
	assert.Nil(t, payments[0].RawPayload())
}

func TestOrder_AppendDeliveryEvent(t *testing.T) {
	o := newPendingOrder(t)

	first, err := order.NewDeliveryEvent("packed", "warehouse 3", "")
	require.NoError(t, err)
	second, err := order.NewDeliveryEvent("shipped", "hub", "left the warehouse")
	require.NoError(t, err)

	o.AppendDeliveryEvent(first)
	o.AppendDeliveryEvent(second)

	history := o.DeliveryHistory()
	require.Len(t, history, 2)
	assert.Equal(t, "packed", history[0].Status())
	assert.Equal(t, "shipped", history[1].Status())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round trip preserves state", func(t *testing.T) {
		original := newPendingOrder(t)
		require.NoError(t, original.SetStatus(order.StatusShipped))

		restored, err := order.RestoreOrder(
			original.ID(),
			original.CustomerID(),
			original.Address(),
			original.Status(),
			original.Payments(),
			original.DeliveryHistory(),
			original.CreatedAt(),
			original.UpdatedAt(),
		)
		require.NoError(t, err)

		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, order.StatusShipped, restored.Status())
		assert.Equal(t, original.Address(), restored.Address())
	})

	t.Run("empty status is rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "12 Market Street",
			"", nil, nil, time.Now(), time.Now(),
		)
		require.Error(t, err)
	})
}
