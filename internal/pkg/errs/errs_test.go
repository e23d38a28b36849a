package errs_test

import (
	"errors"
	"testing"

	"caramelt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: email", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("missing field")
		err := errs.NewValueIsRequiredErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: email (cause: missing field)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("must be a positive integer")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, "value is invalid: quantity (cause: must be a positive integer)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats_bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "line\nbreak", 0, 10)
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "line break")
	})
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: record not found)",
			err.Error())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("PendingAdminAcceptance", "PaidConfirmed")

	assert.Equal(t, "PendingAdminAcceptance", err.From)
	assert.Equal(t, "PaidConfirmed", err.To)
	assert.Equal(t,
		"invalid status transition: cannot move from PendingAdminAcceptance to PaidConfirmed",
		err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewConflictError("order is already cancelled")

		assert.Equal(t, "conflict: order is already cancelled", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("1 order item references product")
		err := errs.NewConflictErrorWithCause("product has orders", cause)

		assert.Equal(t, "conflict: product has orders (cause: 1 order item references product)", err.Error())
	})
}

func TestErrorsCanBeClassified(t *testing.T) {
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsInvalidError("price"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 0, 1, 10), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewObjectNotFoundError("productId", "p1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewInvalidTransitionError("Cancelled", "Accepted"), errs.ErrInvalidTransition)
	require.ErrorIs(t, errs.NewConflictError("already cancelled"), errs.ErrConflict)
}
