// Package order implements the Order aggregate root, its line items and the
// status state machine that drives the admin fulfilment workflow.
//
// The package includes:
//   - Order: the aggregate root holding customer reference, dates, payment
//     state, admin annotations and line items
//   - Item: a line item carrying product name/price snapshots taken at
//     checkout time
//   - Status: a state machine enforcing the fulfilment workflow
//
// Key business rules:
//   - status moves forward only, except the explicit Uncancel path
//     (Cancelled back to PendingAdminAcceptance)
//   - accepting an order requires a confirmed preparation date at least
//     MIN_PREP_DAYS days ahead
//   - paid flags are set together, only on entering PaidConfirmed
//   - a line item's total always equals quantity times its unit price
//     snapshot, and snapshots never track later product edits
package order
