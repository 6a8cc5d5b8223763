package commands

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand removes the order named by the route. Only pending orders can go.
type DeleteOrderCommand struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID string) DeleteOrderCommand {
	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() string {
	return c.orderID
}
