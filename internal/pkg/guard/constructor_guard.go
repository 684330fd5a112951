// Package guard enforces constructor usage for commands, queries, and value objects.
// A zero-value struct fails validation, which prevents callers from bypassing the
// validation performed in constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is provided
// and the guarded object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// Embed it in a struct and set it via NewConstructorGuard inside the constructor;
// Validate then rejects any instance that skipped the constructor.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects. For zero values it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
