package commands

import (
	"errors"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/pkg/errs"
	"caramelt/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents an admin partial edit of a catalog
// product. Nil fields are left unchanged; imageURL uses a double pointer so
// an explicit null can clear the image reference.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        *string
	description *string
	price       *kernel.Money
	imageURL    **string
	isActive    *bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command for a product patch.
// At least one field must be present.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name, description *string,
	price *kernel.Money,
	imageURL **string,
	isActive *bool,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return UpdateProductCommand{}, err
	}

	if name == nil && description == nil && price == nil && imageURL == nil && isActive == nil {
		return UpdateProductCommand{}, errs.NewValueIsRequiredErrorWithCause("body",
			errors.New("at least one field must be provided"))
	}

	cmd.name = name
	cmd.description = description
	cmd.price = price
	cmd.imageURL = imageURL
	cmd.isActive = isActive
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.UUID { return c.productID }
func (c UpdateProductCommand) Name() *string          { return c.name }
func (c UpdateProductCommand) Description() *string   { return c.description }
func (c UpdateProductCommand) Price() *kernel.Money   { return c.price }
func (c UpdateProductCommand) ImageURL() **string     { return c.imageURL }
func (c UpdateProductCommand) IsActive() *bool        { return c.isActive }

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
