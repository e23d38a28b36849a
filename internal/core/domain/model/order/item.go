package order

import (
	"errors"
	"fmt"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is one line of an order. Product name and unit price are snapshots
// copied from the catalog at checkout time: later product edits must not
// change historical orders. The line total always equals
// quantity * unit price snapshot and is recomputed on every mutation.
type Item struct {
	id          kernel.UUID
	productID   kernel.UUID
	productName string
	unitPrice   kernel.Money
	quantity    int
	lineTotal   kernel.Money

	isConstructed bool
}

// NewItem creates a line item with snapshots taken from the given product
// data. Quantity must be a positive integer.
func NewItem(id, productID kernel.UUID, productName string, unitPrice kernel.Money, quantity int) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.recomputeLineTotal()
	return item, nil
}

// RestoreItem reconstructs a line item from persistence. The line total is
// recomputed rather than trusted, keeping the invariant intact even if the
// stored value drifted.
func RestoreItem(id, productID kernel.UUID, productName string, unitPrice kernel.Money, quantity int) (*Item, error) {
	return NewItem(id, productID, productName, unitPrice, quantity)
}

// Validate ensures the instance was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID         { return i.id }
func (i *Item) ProductID() kernel.UUID  { return i.productID }
func (i *Item) ProductName() string     { return i.productName }
func (i *Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i *Item) Quantity() int           { return i.quantity }
func (i *Item) LineTotal() kernel.Money { return i.lineTotal }

// ChangeQuantity updates the quantity and recomputes the line total.
func (i *Item) ChangeQuantity(quantity int) error {
	if err := i.setQuantity(quantity); err != nil {
		return err
	}
	i.recomputeLineTotal()
	return nil
}

// ChangeUnitPrice overrides the unit price snapshot and recomputes the line
// total. This is an admin escape hatch; checkout never calls it.
func (i *Item) ChangeUnitPrice(unitPrice kernel.Money) error {
	if err := i.setUnitPrice(unitPrice); err != nil {
		return err
	}
	i.recomputeLineTotal()
	return nil
}

func (i *Item) recomputeLineTotal() {
	i.lineTotal = i.unitPrice.MulInt(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	i.productID = productID
	return nil
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not a positive integer", quantity))
	}
	i.quantity = quantity
	return nil
}
