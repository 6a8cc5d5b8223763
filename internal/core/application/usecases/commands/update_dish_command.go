package commands

import (
	"errors"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/pkg/guard"
)

var (
	ErrUpdateDishCommandIsNotConstructed = errors.New(
		"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
	)
)

// UpdateDishCommand replaces the four mutable fields of the dish named by the route.
type UpdateDishCommand struct {
	dishID string
	data   pipeline.Payload

	guard guard.ConstructorGuard
}

// NewUpdateDishCommand keeps dishID as received from the route; an unknown or blank id
// is reported by the Exists check as not found.
func NewUpdateDishCommand(dishID string, data pipeline.Payload) UpdateDishCommand {
	return UpdateDishCommand{
		dishID: dishID,
		data:   data,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

func (c UpdateDishCommand) DishID() string {
	return c.dishID
}

func (c UpdateDishCommand) Data() pipeline.Payload {
	return c.data
}
