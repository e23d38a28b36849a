package order_test

import (
	"testing"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/order"
	"caramelt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

func newTestItem(t *testing.T, unitPrice float64, quantity int) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Caramel Cake", mustMoney(t, unitPrice), quantity)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("computes_line_total", func(t *testing.T) {
		item := newTestItem(t, 10.00, 2)

		assert.Equal(t, "20.00", item.LineTotal().String())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "10.00", item.UnitPrice().String())
	})

	t.Run("rejects_zero_quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Cake", mustMoney(t, 10), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Cake", mustMoney(t, 10), -3)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_product_name", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "", mustMoney(t, 10), 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_missing_product_id", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := order.NewItem(kernel.NewUUID(), zeroID, "Cake", mustMoney(t, 10), 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestItem_ChangeQuantity(t *testing.T) {
	item := newTestItem(t, 10.00, 2)

	t.Run("recomputes_line_total", func(t *testing.T) {
		require.NoError(t, item.ChangeQuantity(5))

		assert.Equal(t, 5, item.Quantity())
		assert.Equal(t, "50.00", item.LineTotal().String())
	})

	t.Run("rejects_invalid_quantity_and_keeps_state", func(t *testing.T) {
		require.Error(t, item.ChangeQuantity(0))

		assert.Equal(t, 5, item.Quantity())
		assert.Equal(t, "50.00", item.LineTotal().String())
	})
}

func TestItem_ChangeUnitPrice(t *testing.T) {
	item := newTestItem(t, 10.00, 2)

	require.NoError(t, item.ChangeUnitPrice(mustMoney(t, 12.50)))

	assert.Equal(t, "12.50", item.UnitPrice().String())
	assert.Equal(t, "25.00", item.LineTotal().String())
}

func TestRestoreItem_RecomputesLineTotal(t *testing.T) {
	// The stored line total is never trusted; restoring recomputes it from
	// quantity and the unit price snapshot.
	item, err := order.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), "Cake", mustMoney(t, 10.00), 3)

	require.NoError(t, err)
	assert.Equal(t, "30.00", item.LineTotal().String())
}

func TestItem_Validate(t *testing.T) {
	var item *order.Item
	require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
}
