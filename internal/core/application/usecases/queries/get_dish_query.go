package queries

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var (
	ErrGetDishQueryIsNotConstructed = errors.New(
		"GetDishQuery must be created via NewGetDishQuery constructor",
	)
)

// GetDishQuery retrieves one dish by the id taken from the route.
type GetDishQuery struct {
	dishID string

	guard guard.ConstructorGuard
}

func NewGetDishQuery(dishID string) GetDishQuery {
	return GetDishQuery{
		dishID: dishID,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDishQuery) Validate() error {
	return q.guard.Validate(ErrGetDishQueryIsNotConstructed)
}

func (q GetDishQuery) DishID() string {
	return q.dishID
}
