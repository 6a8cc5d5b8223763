package commands

import (
	"errors"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand replaces deliverTo, mobileNumber, status and dishes of the order
// named by the route.
type UpdateOrderCommand struct {
	orderID string
	data    pipeline.Payload

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(orderID string, data pipeline.Payload) UpdateOrderCommand {
	return UpdateOrderCommand{
		orderID: orderID,
		data:    data,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() string {
	return c.orderID
}

func (c UpdateOrderCommand) Data() pipeline.Payload {
	return c.data
}
