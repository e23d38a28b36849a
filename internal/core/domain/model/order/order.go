package order

import (
	"errors"
	"fmt"
	"time"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// DefaultMinPrepDays is the fallback minimum lead time between "now" and an
// acceptable preparation date when no configuration is provided.
const DefaultMinPrepDays = 2

// MinPrepDate returns the earliest acceptable preparation date:
// the start of today plus minPrepDays days.
func MinPrepDate(now time.Time, minPrepDays int) time.Time {
	year, month, day := now.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	return startOfDay.AddDate(0, 0, minPrepDays)
}

// ValidatePrepDate rejects preparation dates earlier than today plus
// minPrepDays. Used for both the customer's requested date at checkout and
// the admin's confirmed date on acceptance.
func ValidatePrepDate(paramName string, date, now time.Time, minPrepDays int) error {
	minDate := MinPrepDate(now, minPrepDays)
	if date.Before(minDate) {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("preparation date must be at least %d days from today", minPrepDays))
	}
	return nil
}

// Order is the aggregate root for a customer order. It owns the line items
// and the status workflow; all mutations go through its methods so the
// workflow invariants hold.
//
// Invariants:
//   - status transitions follow the Status state machine
//   - isPaid and paidAt are set together, only on entering PaidConfirmed
//   - confirmedPrepDate is set only on entering Accepted and honors the
//     minimum preparation lead time
//   - every item's line total equals quantity times its unit price snapshot
type Order struct {
	id                kernel.UUID
	customerID        kernel.UUID
	code              string
	requestedPrepDate time.Time
	confirmedPrepDate *time.Time
	notes             *string
	paymentMethod     PaymentMethod
	status            Status
	isPaid            bool
	paidAt            *time.Time
	adminComment      *string
	createdAt         time.Time
	items             []*Item

	isConstructed bool
}

// NewOrder creates an order in PendingAdminAcceptance with at least one
// line item. The requested preparation date is taken as already validated
// against the lead-time floor (checkout owns that check so its error carries
// the caller-facing parameter name).
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	code string,
	requestedPrepDate time.Time,
	notes *string,
	paymentMethod PaymentMethod,
	items []*Item,
) (*Order, error) {
	o := &Order{
		status:        PendingAdminAcceptance,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCode(code),
		o.setRequestedPrepDate(requestedPrepDate),
		paymentMethod.Validate(),
		o.setItems(items, false),
	); err != nil {
		return nil, err
	}

	o.paymentMethod = paymentMethod
	o.notes = notes
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status, the paid fields, and an empty item list (items
// can all be deleted by the admin escape hatch after creation).
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	code string,
	requestedPrepDate time.Time,
	confirmedPrepDate *time.Time,
	notes *string,
	paymentMethod PaymentMethod,
	status Status,
	isPaid bool,
	paidAt *time.Time,
	adminComment *string,
	createdAt time.Time,
	items []*Item,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCode(code),
		o.setRequestedPrepDate(requestedPrepDate),
		paymentMethod.Validate(),
		status.Validate(),
		o.setItems(items, true),
	); err != nil {
		return nil, err
	}

	if isPaid != (paidAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("paidAt",
			errors.New("isPaid and paidAt must be set together"))
	}

	o.paymentMethod = paymentMethod
	o.status = status
	o.confirmedPrepDate = confirmedPrepDate
	o.notes = notes
	o.isPaid = isPaid
	o.paidAt = paidAt
	o.adminComment = adminComment
	return o, nil
}

// Validate ensures the instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID               { return o.id }
func (o *Order) CustomerID() kernel.UUID       { return o.customerID }
func (o *Order) Code() string                  { return o.code }
func (o *Order) RequestedPrepDate() time.Time  { return o.requestedPrepDate }
func (o *Order) ConfirmedPrepDate() *time.Time { return o.confirmedPrepDate }
func (o *Order) Notes() *string                { return o.notes }
func (o *Order) PaymentMethod() PaymentMethod  { return o.paymentMethod }
func (o *Order) Status() Status                { return o.status }
func (o *Order) IsPaid() bool                  { return o.isPaid }
func (o *Order) PaidAt() *time.Time            { return o.paidAt }
func (o *Order) AdminComment() *string         { return o.adminComment }
func (o *Order) CreatedAt() time.Time          { return o.createdAt }
func (o *Order) Items() []*Item                { return o.items }

// Total sums the line totals of all items.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Accept moves the order from PendingAdminAcceptance to Accepted and stores
// the admin's confirmed preparation date. The date must be at least
// minPrepDays days after the start of "now"'s day.
func (o *Order) Accept(confirmedPrepDate, now time.Time, minPrepDays int) error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	if err := ValidatePrepDate("confirmedPrepDate", confirmedPrepDate, now, minPrepDays); err != nil {
		return err
	}

	o.status = newStatus
	o.confirmedPrepDate = &confirmedPrepDate
	return nil
}

// MarkPaid moves the order from Accepted to PaidConfirmed, setting the paid
// flag and timestamp together. The optional admin comment replaces any
// previous one. Notification dispatch is the caller's concern and never
// affects this transition.
func (o *Order) MarkPaid(adminComment *string, now time.Time) error {
	newStatus, err := o.status.ConfirmPayment()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.isPaid = true
	paidAt := now.UTC()
	o.paidAt = &paidAt
	if adminComment != nil {
		o.adminComment = adminComment
	}
	return nil
}

// Complete moves the order from PaidConfirmed to one of the terminal
// outcomes: Delivered, NotDelivered or Returned.
func (o *Order) Complete(outcome Status) error {
	newStatus, err := o.status.Complete(outcome)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order to Cancelled from any other state. An optional
// reason is stored as the admin comment.
func (o *Order) Cancel(reason *string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	if reason != nil {
		o.adminComment = reason
	}
	return nil
}

// Uncancel resets a cancelled order back to PendingAdminAcceptance. Other
// fields are left as they were; the workflow re-runs from the start.
func (o *Order) Uncancel() error {
	newStatus, err := o.status.Uncancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// UpdateNotes replaces the customer notes. No transition constraints.
func (o *Order) UpdateNotes(notes *string) {
	o.notes = notes
}

// EditItem updates the quantity and/or unit price snapshot of one line item
// and recomputes its total. Deliberately unguarded by order status: this is
// the admin escape hatch outside the formal workflow.
func (o *Order) EditItem(itemID kernel.UUID, quantity *int, unitPrice *kernel.Money) error {
	item, err := o.findItem(itemID)
	if err != nil {
		return err
	}

	if quantity != nil {
		if err := item.ChangeQuantity(*quantity); err != nil {
			return err
		}
	}
	if unitPrice != nil {
		if err := item.ChangeUnitPrice(*unitPrice); err != nil {
			return err
		}
	}
	return nil
}

// RemoveItem deletes one line item. Like EditItem, unguarded by status.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	for i, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("orderItemId", itemID.String())
}

func (o *Order) findItem(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderItemId", itemID.String())
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("orderCode")
	}
	o.code = code
	return nil
}

func (o *Order) setRequestedPrepDate(requestedPrepDate time.Time) error {
	if requestedPrepDate.IsZero() {
		return errs.NewValueIsRequiredError("requestedPrepDate")
	}
	o.requestedPrepDate = requestedPrepDate
	return nil
}

func (o *Order) setItems(items []*Item, allowEmpty bool) error {
	if len(items) == 0 {
		if !allowEmpty {
			return errs.NewValueIsRequiredErrorWithCause("items",
				errors.New("cart cannot be empty"))
		}
		o.items = []*Item{}
		return nil
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
