// Package guard detects value objects, commands and queries that were not built
// through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose zero value is invalid. Only
// NewConstructorGuard sets the flag, so a zero-value struct fails Validate.
//
// Example:
//
//	var ErrPartNotConstructed = errors.New("Part must be created via NewPart")
//
//	type Part struct {
//	    id    string
//	    guard guard.ConstructorGuard
//	}
//
//	func (p Part) Validate() error {
//	    return p.guard.Validate(ErrPartNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
