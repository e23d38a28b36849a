package order_test

import (
	"testing"

	"caramelt/internal/core/domain/model/order"
	"caramelt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.PendingAdminAcceptance,
		order.Accepted,
		order.PaidConfirmed,
		order.Delivered,
		order.NotDelivered,
		order.Returned,
		order.Cancelled,
	}
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.PendingAdminAcceptance, "PENDING_ADMIN_ACCEPTANCE"},
		{order.Accepted, "ACCEPTED"},
		{order.PaidConfirmed, "PAID_CONFIRMED"},
		{order.Delivered, "DELIVERED"},
		{order.NotDelivered, "NOT_DELIVERED"},
		{order.Returned, "RETURNED"},
		{order.Cancelled, "CANCELLED"},
		{order.Unknown, "UNKNOWN"},
		{order.Status(99), "UNKNOWN"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_valid_statuses", func(t *testing.T) {
		for _, s := range allStatuses() {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_names", func(t *testing.T) {
		_, err := order.StatusFromString("SHIPPED")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.StatusFromString("UNKNOWN")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range allStatuses() {
		require.NoError(t, s.Validate())
	}
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_Accept(t *testing.T) {
	t.Run("from_pending", func(t *testing.T) {
		next, err := order.PendingAdminAcceptance.Accept()
		require.NoError(t, err)
		assert.Equal(t, order.Accepted, next)
	})

	t.Run("from_any_other_state_fails", func(t *testing.T) {
		for _, s := range allStatuses() {
			if s == order.PendingAdminAcceptance {
				continue
			}
			_, err := s.Accept()
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "from %s", s)
		}
	})
}

func TestStatus_ConfirmPayment(t *testing.T) {
	t.Run("from_accepted", func(t *testing.T) {
		next, err := order.Accepted.ConfirmPayment()
		require.NoError(t, err)
		assert.Equal(t, order.PaidConfirmed, next)
	})

	t.Run("from_any_other_state_fails", func(t *testing.T) {
		for _, s := range allStatuses() {
			if s == order.Accepted {
				continue
			}
			_, err := s.ConfirmPayment()
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "from %s", s)
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	outcomes := []order.Status{order.Delivered, order.NotDelivered, order.Returned}

	t.Run("paid_confirmed_reaches_every_outcome", func(t *testing.T) {
		for _, outcome := range outcomes {
			next, err := order.PaidConfirmed.Complete(outcome)
			require.NoError(t, err)
			assert.Equal(t, outcome, next)
		}
	})

	t.Run("rejects_non_outcome_targets", func(t *testing.T) {
		_, err := order.PaidConfirmed.Complete(order.Accepted)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.PaidConfirmed.Complete(order.Cancelled)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("from_any_other_state_fails", func(t *testing.T) {
		for _, s := range allStatuses() {
			if s == order.PaidConfirmed {
				continue
			}
			_, err := s.Complete(order.Delivered)
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "from %s", s)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("from_every_state_except_cancelled", func(t *testing.T) {
		for _, s := range allStatuses() {
			if s == order.Cancelled {
				continue
			}
			next, err := s.Cancel()
			require.NoError(t, err, "from %s", s)
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("already_cancelled_is_a_conflict", func(t *testing.T) {
		_, err := order.Cancelled.Cancel()
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestStatus_Uncancel(t *testing.T) {
	t.Run("from_cancelled", func(t *testing.T) {
		next, err := order.Cancelled.Uncancel()
		require.NoError(t, err)
		assert.Equal(t, order.PendingAdminAcceptance, next)
	})

	t.Run("from_any_other_state_fails", func(t *testing.T) {
		for _, s := range allStatuses() {
			if s == order.Cancelled {
				continue
			}
			_, err := s.Uncancel()
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "from %s", s)
		}
	})
}

func TestStatus_IsOutcome(t *testing.T) {
	assert.True(t, order.Delivered.IsOutcome())
	assert.True(t, order.NotDelivered.IsOutcome())
	assert.True(t, order.Returned.IsOutcome())
	assert.False(t, order.PendingAdminAcceptance.IsOutcome())
	assert.False(t, order.Cancelled.IsOutcome())
}
