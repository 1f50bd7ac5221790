package queries_test

import (
	"testing"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery_Defaults(t *testing.T) {
	query, err := queries.NewListOrdersQuery("", nil, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, query.Status())
	assert.Nil(t, query.CustomerID())
	assert.Equal(t, queries.DefaultPageSize, query.Limit())
	assert.Zero(t, query.Offset())
}

func TestNewListOrdersQuery_WithFilters(t *testing.T) {
	customerID := kernel.NewUUID()
	query, err := queries.NewListOrdersQuery("shipped", &customerID, 20, 40)
	require.NoError(t, err)
	assert.Equal(t, "shipped", query.Status())
	require.NotNil(t, query.CustomerID())
	assert.True(t, query.CustomerID().IsEqual(customerID))
	assert.Equal(t, 20, query.Limit())
	assert.Equal(t, 40, query.Offset())
}

func TestNewListOrdersQuery_ClampsLimit(t *testing.T) {
	query, err := queries.NewListOrdersQuery("", nil, queries.MaxPageSize+1, 0)
	require.NoError(t, err)
	assert.Equal(t, queries.MaxPageSize, query.Limit())
}

func TestNewListOrdersQuery_NegativeLimit(t *testing.T) {
	_, err := queries.NewListOrdersQuery("", nil, -1, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListOrdersQuery_NegativeOffset(t *testing.T) {
	_, err := queries.NewListOrdersQuery("", nil, 0, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListOrdersQuery_InvalidCustomerID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := queries.NewListOrdersQuery("", &invalidID, 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestListOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.ListOrdersQuery{}
	require.Error(t, query.Validate())
}
