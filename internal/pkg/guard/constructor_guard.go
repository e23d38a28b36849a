// Package guard implements the constructor guard pattern used by value
// objects, commands and queries to detect zero-value instances that bypassed
// their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// error is provided for a zero-value instance.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their constructor
// from zero values. Embed one and set it with NewConstructorGuard inside
// the constructor; Validate then fails for any zero-value instance.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects and validationError
// (or ErrDefaultConstructorGuard when nil) for zero values.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
