package order_test

import (
	"testing"
	"time"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/order"
	"caramelt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	item := newTestItem(t, 10.00, 2)
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.GenerateCode(),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		nil,
		order.PaymentMethodCash,
		[]*order.Item{item},
	)
	require.NoError(t, err)
	return o
}

// orderInStatus walks a fresh order through the workflow until it reaches
// the requested status.
func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := newTestOrder(t)
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	prepDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	switch status {
	case order.PendingAdminAcceptance:
	case order.Accepted:
		require.NoError(t, o.Accept(prepDate, now, order.DefaultMinPrepDays))
	case order.PaidConfirmed:
		require.NoError(t, o.Accept(prepDate, now, order.DefaultMinPrepDays))
		require.NoError(t, o.MarkPaid(nil, now))
	case order.Delivered, order.NotDelivered, order.Returned:
		require.NoError(t, o.Accept(prepDate, now, order.DefaultMinPrepDays))
		require.NoError(t, o.MarkPaid(nil, now))
		require.NoError(t, o.Complete(status))
	case order.Cancelled:
		require.NoError(t, o.Cancel(nil))
	default:
		t.Fatalf("cannot build order in status %s", status)
	}
	require.Equal(t, status, o.Status())
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_pending_and_unpaid", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.PendingAdminAcceptance, o.Status())
		assert.False(t, o.IsPaid())
		assert.Nil(t, o.PaidAt())
		assert.Nil(t, o.ConfirmedPrepDate())
		assert.NotEmpty(t, o.Code())
	})

	t.Run("rejects_empty_cart", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.GenerateCode(),
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			nil, order.PaymentMethodCash, nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_unknown_payment_method", func(t *testing.T) {
		item := newTestItem(t, 10, 1)
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.GenerateCode(),
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			nil, order.PaymentMethod("credit_card"), []*order.Item{item},
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_code", func(t *testing.T) {
		item := newTestItem(t, 10, 1)
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "",
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			nil, order.PaymentMethodCash, []*order.Item{item},
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Accept(t *testing.T) {
	// Spec example: MIN_PREP_DAYS=2, today=2024-01-10.
	now := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)

	t.Run("rejects_date_inside_lead_time", func(t *testing.T) {
		o := newTestOrder(t)
		tooSoon := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)

		err := o.Accept(tooSoon, now, 2)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.PendingAdminAcceptance, o.Status())
		assert.Nil(t, o.ConfirmedPrepDate())
	})

	t.Run("accepts_date_at_the_floor", func(t *testing.T) {
		o := newTestOrder(t)
		floor := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

		require.NoError(t, o.Accept(floor, now, 2))

		assert.Equal(t, order.Accepted, o.Status())
		require.NotNil(t, o.ConfirmedPrepDate())
		assert.Equal(t, floor, *o.ConfirmedPrepDate())
	})

	t.Run("invalid_transition_from_other_states", func(t *testing.T) {
		for _, s := range []order.Status{order.Accepted, order.PaidConfirmed, order.Cancelled, order.Delivered} {
			o := orderInStatus(t, s)
			err := o.Accept(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), now, 2)
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "from %s", s)
			assert.Equal(t, s, o.Status(), "state unchanged after rejected accept")
		}
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("sets_paid_flags_together", func(t *testing.T) {
		o := orderInStatus(t, order.Accepted)
		comment := "transfer received"

		require.NoError(t, o.MarkPaid(&comment, now))

		assert.Equal(t, order.PaidConfirmed, o.Status())
		assert.True(t, o.IsPaid())
		require.NotNil(t, o.PaidAt())
		assert.Equal(t, now.UTC(), *o.PaidAt())
		require.NotNil(t, o.AdminComment())
		assert.Equal(t, comment, *o.AdminComment())
	})

	t.Run("nil_comment_keeps_previous", func(t *testing.T) {
		o := orderInStatus(t, order.Accepted)

		require.NoError(t, o.MarkPaid(nil, now))

		assert.Nil(t, o.AdminComment())
	})

	t.Run("invalid_from_pending", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.MarkPaid(nil, now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.False(t, o.IsPaid())
		assert.Nil(t, o.PaidAt())
	})
}

func TestOrder_Complete(t *testing.T) {
	for _, outcome := range []order.Status{order.Delivered, order.NotDelivered, order.Returned} {
		t.Run(outcome.String(), func(t *testing.T) {
			o := orderInStatus(t, order.PaidConfirmed)
			require.NoError(t, o.Complete(outcome))
			assert.Equal(t, outcome, o.Status())
		})
	}

	t.Run("invalid_before_payment", func(t *testing.T) {
		o := orderInStatus(t, order.Accepted)
		err := o.Complete(order.Delivered)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Accepted, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("from_every_non_cancelled_state", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PendingAdminAcceptance, order.Accepted, order.PaidConfirmed,
			order.Delivered, order.NotDelivered, order.Returned,
		} {
			o := orderInStatus(t, s)
			require.NoError(t, o.Cancel(nil), "from %s", s)
			assert.Equal(t, order.Cancelled, o.Status())
		}
	})

	t.Run("stores_reason_as_admin_comment", func(t *testing.T) {
		o := newTestOrder(t)
		reason := "customer asked to cancel"

		require.NoError(t, o.Cancel(&reason))

		require.NotNil(t, o.AdminComment())
		assert.Equal(t, reason, *o.AdminComment())
	})

	t.Run("already_cancelled_is_a_conflict", func(t *testing.T) {
		o := orderInStatus(t, order.Cancelled)
		require.ErrorIs(t, o.Cancel(nil), errs.ErrConflict)
	})
}

func TestOrder_Uncancel(t *testing.T) {
	t.Run("resets_to_pending", func(t *testing.T) {
		o := orderInStatus(t, order.Cancelled)

		require.NoError(t, o.Uncancel())

		assert.Equal(t, order.PendingAdminAcceptance, o.Status())
	})

	t.Run("invalid_from_non_cancelled_states", func(t *testing.T) {
		o := orderInStatus(t, order.Accepted)
		require.ErrorIs(t, o.Uncancel(), errs.ErrInvalidTransition)
		assert.Equal(t, order.Accepted, o.Status())
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("edit_item_recomputes_line_total", func(t *testing.T) {
		o := newTestOrder(t)
		itemID := o.Items()[0].ID()
		quantity := 4

		require.NoError(t, o.EditItem(itemID, &quantity, nil))

		assert.Equal(t, 4, o.Items()[0].Quantity())
		assert.Equal(t, "40.00", o.Items()[0].LineTotal().String())
	})

	t.Run("edit_item_allowed_after_payment", func(t *testing.T) {
		// Deliberate escape hatch: item edits are unguarded by status.
		o := orderInStatus(t, order.PaidConfirmed)
		itemID := o.Items()[0].ID()
		price := mustMoney(t, 8.00)

		require.NoError(t, o.EditItem(itemID, nil, &price))

		assert.Equal(t, "16.00", o.Items()[0].LineTotal().String())
	})

	t.Run("edit_unknown_item_is_not_found", func(t *testing.T) {
		o := newTestOrder(t)
		quantity := 2

		err := o.EditItem(kernel.NewUUID(), &quantity, nil)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("edit_rejects_invalid_quantity", func(t *testing.T) {
		o := newTestOrder(t)
		itemID := o.Items()[0].ID()
		quantity := 0

		err := o.EditItem(itemID, &quantity, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 2, o.Items()[0].Quantity())
	})

	t.Run("remove_item", func(t *testing.T) {
		o := newTestOrder(t)
		itemID := o.Items()[0].ID()

		require.NoError(t, o.RemoveItem(itemID))

		assert.Empty(t, o.Items())
		require.ErrorIs(t, o.RemoveItem(itemID), errs.ErrObjectNotFound)
	})
}

func TestOrder_Total(t *testing.T) {
	itemA := newTestItem(t, 10.00, 2)
	itemB := newTestItem(t, 3.50, 3)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), order.GenerateCode(),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		nil, order.PaymentMethodManualTransfer, []*order.Item{itemA, itemB},
	)
	require.NoError(t, err)

	assert.Equal(t, "30.50", o.Total().String())
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	paidAt := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	confirmed := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	t.Run("restores_full_state", func(t *testing.T) {
		item := newTestItem(t, 10, 1)

		o, err := order.RestoreOrder(
			id, customerID, "CM-TEST1234",
			time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			&confirmed, nil, order.PaymentMethodCash,
			order.PaidConfirmed, true, &paidAt, nil, created,
			[]*order.Item{item},
		)

		require.NoError(t, err)
		assert.Equal(t, order.PaidConfirmed, o.Status())
		assert.True(t, o.IsPaid())
		assert.Equal(t, created, o.CreatedAt())
	})

	t.Run("allows_empty_items", func(t *testing.T) {
		o, err := order.RestoreOrder(
			id, customerID, "CM-TEST1234",
			time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			nil, nil, order.PaymentMethodCash,
			order.PendingAdminAcceptance, false, nil, nil, created,
			nil,
		)

		require.NoError(t, err)
		assert.Empty(t, o.Items())
		assert.Equal(t, "0.00", o.Total().String())
	})

	t.Run("rejects_paid_flag_without_timestamp", func(t *testing.T) {
		item := newTestItem(t, 10, 1)

		_, err := order.RestoreOrder(
			id, customerID, "CM-TEST1234",
			time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			nil, nil, order.PaymentMethodCash,
			order.PaidConfirmed, true, nil, nil, created,
			[]*order.Item{item},
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		item := newTestItem(t, 10, 1)

		_, err := order.RestoreOrder(
			id, customerID, "CM-TEST1234",
			time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			nil, nil, order.PaymentMethodCash,
			order.Unknown, false, nil, nil, created,
			[]*order.Item{item},
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGenerateCode(t *testing.T) {
	t.Run("has_expected_shape", func(t *testing.T) {
		code := order.GenerateCode()

		assert.Len(t, code, 11)
		assert.Equal(t, "CM-", code[:3])
	})

	t.Run("codes_differ", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			code := order.GenerateCode()
			assert.False(t, seen[code], "duplicate code %s", code)
			seen[code] = true
		}
	})
}

func TestValidatePrepDate(t *testing.T) {
	now := time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)

	t.Run("floor_is_start_of_day_plus_lead", func(t *testing.T) {
		assert.Equal(t,
			time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
			order.MinPrepDate(now, 2))
	})

	t.Run("rejects_below_floor", func(t *testing.T) {
		err := order.ValidatePrepDate("requestedPrepDate",
			time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), now, 2)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("accepts_at_floor", func(t *testing.T) {
		require.NoError(t, order.ValidatePrepDate("requestedPrepDate",
			time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), now, 2))
	})
}
