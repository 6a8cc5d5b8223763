// Package queries contains read operations for retrieving system state.
// Queries go through the read-side ports and never open a unit of work.
package queries

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var (
	ErrListDishesQueryIsNotConstructed = errors.New(
		"ListDishesQuery must be created via NewListDishesQuery constructor",
	)
)

// ListDishesQuery retrieves the whole menu in insertion order.
//
// Example:
//
//	query := NewListDishesQuery()
//	handler := NewListDishesQueryHandler(reader)
//
//	dishes, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list dishes: %w", err)
//	}
type ListDishesQuery struct {
	guard guard.ConstructorGuard
}

func NewListDishesQuery() ListDishesQuery {
	return ListDishesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDishesQuery) Validate() error {
	return q.guard.Validate(ErrListDishesQueryIsNotConstructed)
}
