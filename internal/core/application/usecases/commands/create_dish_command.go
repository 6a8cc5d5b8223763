package commands

import (
	"errors"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/pkg/guard"
)

var (
	ErrCreateDishCommandIsNotConstructed = errors.New(
		"CreateDishCommand must be created via NewCreateDishCommand constructor",
	)
)

// CreateDishCommand carries the request payload for a new dish. The payload is not
// checked here; the handler runs it through CreateDishChecks.
//
// Example:
//
//	cmd := NewCreateDishCommand(pipeline.Payload{
//	    "name": "Dolcelatte and chickpea spaghetti",
//	    "description": "Spaghetti topped with a blend of dolcelatte and fresh chickpeas",
//	    "price": 19.0,
//	    "image_url": "https://images.example.com/spaghetti.jpg",
//	})
//	created, err := handler.Handle(ctx, cmd)
type CreateDishCommand struct {
	data pipeline.Payload

	guard guard.ConstructorGuard
}

func NewCreateDishCommand(data pipeline.Payload) CreateDishCommand {
	return CreateDishCommand{
		data:  data,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

func (c CreateDishCommand) Data() pipeline.Payload {
	return c.data
}
