package commands

import (
	"errors"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/pkg/errs"
	"caramelt/internal/pkg/guard"
)

var ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
	"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
)

// UpdateOrderDetailsCommand represents an admin partial edit of an order's
// customer details and notes. Nil fields are left unchanged; whatsapp and
// notes use double pointers so an explicit null can clear them.
type UpdateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	fullName *string
	email    *string
	phone    *string
	whatsapp **string
	notes    **string

	guard guard.ConstructorGuard
}

// NewUpdateOrderDetailsCommand creates a command for an order detail edit.
// At least one field must be present.
func NewUpdateOrderDetailsCommand(
	orderID kernel.UUID,
	fullName, email, phone *string,
	whatsapp, notes **string,
) (UpdateOrderDetailsCommand, error) {
	cmd := UpdateOrderDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	if fullName == nil && email == nil && phone == nil && whatsapp == nil && notes == nil {
		return UpdateOrderDetailsCommand{}, errs.NewValueIsRequiredErrorWithCause("body",
			errors.New("at least one field must be provided"))
	}

	cmd.fullName = fullName
	cmd.email = email
	cmd.phone = phone
	cmd.whatsapp = whatsapp
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

func (c UpdateOrderDetailsCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderDetailsCommand) FullName() *string    { return c.fullName }
func (c UpdateOrderDetailsCommand) Email() *string       { return c.email }
func (c UpdateOrderDetailsCommand) Phone() *string       { return c.phone }
func (c UpdateOrderDetailsCommand) Whatsapp() **string   { return c.whatsapp }
func (c UpdateOrderDetailsCommand) Notes() **string      { return c.notes }

func (c *UpdateOrderDetailsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
