package commands

import (
	"errors"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand carries the request payload for a new order.
//
// Example:
//
//	cmd := NewCreateOrderCommand(pipeline.Payload{
//	    "deliverTo":    "308 Negra Arroyo Lane, Albuquerque, NM",
//	    "mobileNumber": "(505) 143-3369",
//	    "dishes":       []any{map[string]any{"dishId": "1", "quantity": 2.0}},
//	})
//	created, err := handler.Handle(ctx, cmd)
//	// created.Status() == order.Pending
type CreateOrderCommand struct {
	data pipeline.Payload

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(data pipeline.Payload) CreateOrderCommand {
	return CreateOrderCommand{
		data:  data,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Data() pipeline.Payload {
	return c.data
}
