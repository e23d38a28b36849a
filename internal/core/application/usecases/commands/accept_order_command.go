package commands

import (
	"errors"
	"time"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/pkg/errs"
	"caramelt/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents an admin accepting a pending order with a
// confirmed preparation date.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	confirmedPrepDate time.Time

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept a pending order.
// The lead-time check on the date belongs to the handler, which knows the
// configured minimum.
func NewAcceptOrderCommand(orderID kernel.UUID, confirmedPrepDate time.Time) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setConfirmedPrepDate(confirmedPrepDate),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) OrderID() kernel.UUID         { return c.orderID }
func (c AcceptOrderCommand) ConfirmedPrepDate() time.Time { return c.confirmedPrepDate }

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setConfirmedPrepDate(confirmedPrepDate time.Time) error {
	if confirmedPrepDate.IsZero() {
		return errs.NewValueIsRequiredError("confirmedPrepDate")
	}

	c.confirmedPrepDate = confirmedPrepDate
	return nil
}
