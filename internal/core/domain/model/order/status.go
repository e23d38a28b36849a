package order

import (
	"fmt"

	"caramelt/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the fulfilment workflow.
//
// State transitions:
//
//	PendingAdminAcceptance ──> Accepted ──> PaidConfirmed ──┬──> Delivered
//	          ▲                                             ├──> NotDelivered
//	          │                                             └──> Returned
//	          └───── Uncancel ────── Cancelled ◄── (any other state)
//
// Cancelled is reachable from every state except itself; Uncancel is the
// single backward edge.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// PendingAdminAcceptance is the initial status of a checked-out order,
	// waiting for an admin to accept or cancel it.
	PendingAdminAcceptance

	// Accepted means an admin confirmed the order and set a preparation date.
	Accepted

	// PaidConfirmed means the admin recorded the customer's payment.
	PaidConfirmed

	// Delivered is a terminal outcome: the order reached the customer.
	Delivered

	// NotDelivered is a terminal outcome: delivery was attempted and failed.
	NotDelivered

	// Returned is a terminal outcome: the order came back after delivery.
	Returned

	// Cancelled is reachable from any other state; Uncancel restores the
	// order to PendingAdminAcceptance.
	Cancelled
)

// Wire names match the persisted/API representation of each status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                "UNKNOWN",
		PendingAdminAcceptance: "PENDING_ADMIN_ACCEPTANCE",
		Accepted:               "ACCEPTED",
		PaidConfirmed:          "PAID_CONFIRMED",
		Delivered:              "DELIVERED",
		NotDelivered:           "NOT_DELIVERED",
		Returned:               "RETURNED",
		Cancelled:              "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingAdminAcceptance: "PENDING_ADMIN_ACCEPTANCE",
		Accepted:               "ACCEPTED",
		PaidConfirmed:          "PAID_CONFIRMED",
		Delivered:              "DELIVERED",
		NotDelivered:           "NOT_DELIVERED",
		Returned:               "RETURNED",
		Cancelled:              "CANCELLED",
	}
}

// StatusFromString parses a wire name back into a Status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined workflow states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer and
// is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsOutcome reports whether the status is one of the terminal delivery
// outcomes reachable from PaidConfirmed.
func (s Status) IsOutcome() bool {
	return s == Delivered || s == NotDelivered || s == Returned
}

// Accept transitions the status to Accepted.
//
// Valid only from PendingAdminAcceptance.
func (s Status) Accept() (Status, error) {
	if s != PendingAdminAcceptance {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Accepted.String())
	}
	return Accepted, nil
}

// ConfirmPayment transitions the status to PaidConfirmed.
//
// Valid only from Accepted.
func (s Status) ConfirmPayment() (Status, error) {
	if s != Accepted {
		return Unknown, errs.NewInvalidTransitionError(s.String(), PaidConfirmed.String())
	}
	return PaidConfirmed, nil
}

// Complete transitions the status to one of the terminal outcomes.
//
// Valid only from PaidConfirmed, and only to Delivered, NotDelivered or
// Returned.
func (s Status) Complete(outcome Status) (Status, error) {
	if !outcome.IsOutcome() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("outcome",
			fmt.Errorf("%s is not a delivery outcome", outcome.String()))
	}
	if s != PaidConfirmed {
		return Unknown, errs.NewInvalidTransitionError(s.String(), outcome.String())
	}
	return outcome, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from any state except Cancelled itself, which yields a Conflict so
// callers can distinguish the already-cancelled case.
func (s Status) Cancel() (Status, error) {
	if s == Cancelled {
		return Unknown, errs.NewConflictError("order is already cancelled")
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Cancelled, nil
}

// Uncancel transitions the status back to PendingAdminAcceptance.
//
// Valid only from Cancelled. This is the only backward edge in the graph.
func (s Status) Uncancel() (Status, error) {
	if s != Cancelled {
		return Unknown, errs.NewInvalidTransitionError(s.String(), PendingAdminAcceptance.String())
	}
	return PendingAdminAcceptance, nil
}
