package product

import (
	"errors"
	"time"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a catalog entry the storefront sells. Orders never reference a
// Product directly for pricing: order items copy its name and price at
// checkout time, so later edits here leave historical orders untouched.
//
// Invariants:
//   - name and description are required
//   - price is non-negative Money
//   - only active products are sellable
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	imageURL    *string
	isActive    bool
	createdAt   time.Time

	isConstructed bool
}

// NewProduct creates a catalog entry. New products default to active unless
// deactivated afterwards; price may be zero while the admin fills in details.
func NewProduct(id kernel.UUID, name, description string, price kernel.Money, imageURL *string, isActive bool) (*Product, error) {
	p := &Product{
		isActive:      isActive,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setDescription(description),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	p.imageURL = imageURL
	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id kernel.UUID, name, description string, price kernel.Money, imageURL *string, isActive bool, createdAt time.Time) (*Product, error) {
	p, err := NewProduct(id, name, description, price, imageURL, isActive)
	if err != nil {
		return nil, err
	}

	p.createdAt = createdAt
	return p, nil
}

// Validate ensures the instance was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID      { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Price() kernel.Money  { return p.price }
func (p *Product) ImageURL() *string    { return p.imageURL }
func (p *Product) IsActive() bool       { return p.isActive }
func (p *Product) CreatedAt() time.Time { return p.createdAt }

// Rename changes the display name.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// ChangeDescription replaces the description.
func (p *Product) ChangeDescription(description string) error {
	return p.setDescription(description)
}

// ChangePrice replaces the price. Existing order items keep their snapshots.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

// SetImageURL replaces the image reference; nil clears it.
func (p *Product) SetImageURL(imageURL *string) {
	p.imageURL = imageURL
}

// SetActive toggles storefront visibility.
func (p *Product) SetActive(active bool) {
	p.isActive = active
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
