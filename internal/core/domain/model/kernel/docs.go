// Package kernel provides the core domain primitives shared by all
// aggregates in the storefront.
//
// The package includes:
//   - UUID: a value object for entity identifiers with validation and comparison
//   - Money: a decimal value object for prices, snapshots and line totals
//
// Both primitives are immutable and must be created through their
// constructor functions; the zero values are invalid and fail Validate.
package kernel
