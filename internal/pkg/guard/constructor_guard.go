// Package guard provides ConstructorGuard, a marker that lets value types detect
// whether they were built through their constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands and queries. Its zero value reports
// "not constructed"; NewConstructorGuard reports "constructed".
//
//	type ListDishesQuery struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewListDishesQuery() ListDishesQuery {
//	    return ListDishesQuery{guard: guard.NewConstructorGuard()}
//	}
//
//	func (q ListDishesQuery) Validate() error {
//	    return q.guard.Validate(ErrListDishesQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
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
