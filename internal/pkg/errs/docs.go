// Package errs provides the standardized error types used across the
// application.
//
// Each error kind follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsInvalid) for errors.Is checks
//   - a struct type carrying the error details
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The kinds map onto the caller-facing taxonomy: required/invalid/out-of-range
// values are caller-fixable validation failures, ObjectNotFound marks an
// absent entity, InvalidTransition marks an order workflow violation, and
// Conflict marks operations blocked by dependent state (already cancelled,
// product still referenced by order items).
package errs
