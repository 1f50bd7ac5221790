package queries_test

import (
	"testing"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerOrderQuery_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	query, err := queries.NewGetCustomerOrderQuery(customerID, orderID)
	require.NoError(t, err)
	assert.Equal(t, customerID, query.CustomerID())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewGetCustomerOrderQuery_InvalidIDs(t *testing.T) {
	_, err := queries.NewGetCustomerOrderQuery(kernel.UUID{}, kernel.NewUUID())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetCustomerOrderQuery(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetCustomerAddressesQuery_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	query, err := queries.NewGetCustomerAddressesQuery(customerID)
	require.NoError(t, err)
	assert.Equal(t, customerID, query.CustomerID())
}

func TestNewGetCustomerAddressesQuery_InvalidCustomerID(t *testing.T) {
	_, err := queries.NewGetCustomerAddressesQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetDashboardSummaryQuery_Validate(t *testing.T) {
	query := queries.NewGetDashboardSummaryQuery()
	require.NoError(t, query.Validate())

	notConstructed := queries.GetDashboardSummaryQuery{}
	require.Error(t, notConstructed.Validate())
}
