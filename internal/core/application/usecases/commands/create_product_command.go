package commands

import (
	"errors"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/pkg/errs"
	"caramelt/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents an admin adding a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       kernel.Money
	imageURL    *string
	isActive    bool

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
// Name and description are required; price may be zero.
func NewCreateProductCommand(
	productID kernel.UUID,
	name, description string,
	price kernel.Money,
	imageURL *string,
	isActive bool,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setDescription(description),
		price.Validate(),
	); err != nil {
		return CreateProductCommand{}, err
	}

	cmd.price = price
	cmd.imageURL = imageURL
	cmd.isActive = isActive
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }
func (c CreateProductCommand) Name() string           { return c.name }
func (c CreateProductCommand) Description() string    { return c.description }
func (c CreateProductCommand) Price() kernel.Money    { return c.price }
func (c CreateProductCommand) ImageURL() *string      { return c.imageURL }
func (c CreateProductCommand) IsActive() bool         { return c.isActive }

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}
